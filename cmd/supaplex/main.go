// supaplex is a terminal Supaplex: a deterministic tile simulation with a
// Bubble Tea front end, an SSH server and a results store.
//
// Usage:
//
//	supaplex list                 - List levels and game modes
//	supaplex play [level]         - Play the campaign (or practice a level)
//	supaplex menu                 - Pick levels interactively
//	supaplex run <level>          - Run a level headless with scripted input
//	supaplex serve                - Start SSH server for remote play
//	supaplex results [level]      - Show recorded attempts
//	supaplex schema               - Print the JSON Schema of YAML level files
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--preset <name>     - Speed preset: slow, normal, fast, fixed
//	--levels <dir>      - Level directory (default: built-in levels)
//	--db <dsn>          - Results store: SQLite path or postgres:// URL
//	--fps <rate>        - Override the tick rate
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-supaplex/internal/config"
	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagLevels   string
	flagDB       string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

// Loaded by setup before any subcommand runs.
var (
	appConfig config.SupaplexConfig
	appLevels []levels.Level
	logger    *log.Logger
	logFile   io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "supaplex",
	Short: "Supaplex in your terminal",
	Long: `Supaplex is a terminal rendition of the classic tile puzzle game:
eat bases, collect infotrons, dodge zonks and enemies, reach the exit.

Available commands:
  list     - Show levels and game modes
  play     - Play the campaign or practice one level
  menu     - Interactive level picker
  run      - Run a level headless with scripted input
  serve    - Start SSH server for remote play
  results  - View recorded attempts
  schema   - Print the JSON Schema of YAML level files
  config   - Print the effective configuration

Examples:
  supaplex list
  supaplex play
  supaplex play 03 --practice
  supaplex run 01 --script "4R2D" --log-level debug
  supaplex serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagPreset, "preset", "", "Speed preset: slow, normal, fast, fixed")
	pf.StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in levels)")
	pf.StringVar(&flagDB, "db", "", "Results store: SQLite path or postgres:// URL")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (ticks per second)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger, loads the config and the levels, and configures
// the game package.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	logger, err = newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}

	appConfig, err = loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"tick_rate", appConfig.Simulation.TickRate,
		"speed", appConfig.Simulation.Speed,
		"levels", appConfig.Levels.Path,
	)

	// These commands do not need levels.
	if cmd == schemaCmd || cmd == configCmd {
		return nil
	}

	appLevels, err = levels.Resolve(appConfig.Levels.Path, logger)
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}

	supaplex.SetLevels(appLevels)
	supaplex.SetRules(appConfig.SimRules())
	supaplex.SetStartLevel(appConfig.Levels.Start)
	return nil
}

// newLogger creates the process logger. Without a log file it writes to
// stderr.
func newLogger(level, path string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		logFile = f
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "supaplex",
		Level:           lvl,
	}), nil
}

// tuiLogger returns the logger for code that runs while the full-screen UI
// owns the terminal: the log file when there is one, otherwise nothing.
func tuiLogger() *log.Logger {
	if flagLogFile == "" {
		return log.New(io.Discard)
	}
	return logger
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig() (config.SupaplexConfig, error) {
	cfg, err := config.LoadSupaplex(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.SpeedPreset(flagPreset)); err != nil {
			return cfg, err
		}
	}
	if flagFPS > 0 {
		cfg.Simulation.TickRate = flagFPS
	}
	if flagLevels != "" {
		cfg.Levels.Path = flagLevels
	}
	if flagDB != "" {
		cfg.Storage.DSN = flagDB
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtimeConfig returns the game runtime config sized to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appConfig.Simulation.TickRate,
		Speed:    appConfig.Simulation.Speed,
		Seed:     time.Now().UnixNano(),
	}
}

// openStore opens the results store. A store that cannot be opened is
// reported and play continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DSN)
	if err != nil {
		logger.Warn("could not open results database", "dsn", appConfig.Storage.DSN, "error", err)
		return nil
	}
	return store
}
