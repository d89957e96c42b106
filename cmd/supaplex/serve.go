package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Supaplex SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level picker.
Results are stored per-server (all users share the same board).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.supaplex/host_key

Examples:
  supaplex serve                           # Listen on :23234 with auto-generated key
  supaplex serve --ssh :2222               # Listen on port 2222
  supaplex serve --host-key ./my_host_key  # Use specific host key
  supaplex serve --db postgres://localhost/supaplex?sslmode=disable

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	srvCfg := appConfig.Server
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleMinutes = flagIdleTimeout
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = appConfig.Simulation.TickRate
	runtime.Speed = appConfig.Simulation.Speed

	cfg := tui.SSHServerConfig{
		Address:     srvCfg.Address,
		HostKeyPath: srvCfg.HostKeyPath,
		DSN:         appConfig.Storage.DSN,
		IdleTimeout: time.Duration(srvCfg.IdleMinutes) * time.Minute,
		Runtime:     runtime,
		HoldTicks:   appConfig.Input.HoldTicks,
		Levels:      appLevels,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("levels loaded", "count", len(appLevels))
	fmt.Printf("Connect with: ssh localhost -p <port> (listening on %s)\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
