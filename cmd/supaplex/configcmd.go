package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-supaplex/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file, the preset and the
command line overrides are applied. The output is valid YAML and can be
saved as ~/.supaplex/configs/supaplex.yaml.

Examples:
  supaplex config
  supaplex config --preset fast > ~/.supaplex/configs/supaplex.yaml`,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	data, err := config.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
