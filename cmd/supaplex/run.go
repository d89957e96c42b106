package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/sim"
)

var (
	flagScript   string
	flagSettle   int
	flagMaxTicks uint64
	flagSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run <level>",
	Short: "Run a level headless with scripted input",
	Long: `Run a level without a terminal UI, feeding it a scripted input.

Each script letter is one move: U, D, L, R walk; lower case snaps; '.'
waits. A count may precede a letter. The run prints the final state;
--log-level debug logs every simulation event.

Examples:
  supaplex run 01 --script "4R2D"
  supaplex run 02 --script "R.r3D" --settle 120 --log-level debug
  supaplex run 01 --script "10R" --preset fixed --save`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagScript, "script", "", "Input script")
	runCmd.Flags().IntVar(&flagSettle, "settle", 60, "Idle ticks to run after the script")
	runCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = no limit)")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Record the outcome in the results store")
}

func runRun(_ *cobra.Command, args []string) error {
	lvl, err := levels.Find(appLevels, args[0])
	if err != nil {
		return err
	}

	steps, err := parseScript(flagScript)
	if err != nil {
		return err
	}

	opts := runOptions{
		Rules:    appConfig.SimRules(),
		Speed:    appConfig.Simulation.Speed,
		TickRate: appConfig.Simulation.TickRate,
		Settle:   flagSettle,
		MaxTicks: flagMaxTicks,
	}
	report, err := runScript(lvl, steps, opts, logger)
	if err != nil {
		return err
	}

	s := report.Snapshot
	fmt.Printf("Level %s (%s): %s after %d ticks\n", lvl.ID, lvl.Name, s.Status, s.Tick)
	fmt.Printf("  Infotrons needed: %d\n", max(s.InfotronsRequired, 0))
	fmt.Printf("  Red disks:        %d\n", s.RedDisks)
	if s.PlayerAlive {
		fmt.Printf("  Player at:        %v\n", s.Player)
	}
	fmt.Printf("  Events:           %d\n", report.Events)

	if flagSave && s.Status != sim.StatusActive {
		store := openStore()
		if store == nil {
			return fmt.Errorf("results store unavailable")
		}
		defer store.Close()

		_, err := store.SaveResult(core.LevelResult{
			LevelID:   lvl.ID,
			LevelName: lvl.Name,
			Status:    s.Status.String(),
			Ticks:     s.Tick,
			RedDisks:  s.RedDisks,
		})
		if err != nil {
			return err
		}
		logger.Info("result saved", "level", lvl.ID, "status", s.Status)
	}
	return nil
}
