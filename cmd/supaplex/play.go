package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/platform/tui"
	"github.com/vovakirdan/tui-supaplex/internal/registry"
)

var flagPractice bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign or practice a level",
	Long: `Start playing. Without --practice the campaign runs every level in
order, starting from the given level or the configured start level.
With --practice only the given level is played.

Controls:
  Arrows/WASD  - Move
  Space+dir    - Snap (eat or collect without moving)
  P            - Pause
  R            - Restart the level
  Esc/B        - Leave the game
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  supaplex play
  supaplex play 03
  supaplex play 03 --practice
  supaplex play --preset fast
  supaplex play --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels interactively",
	Long: `Start in interactive menu mode.

Choose the campaign or a single level to practice. Levels you finished are
marked with their best time. After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Results board
  Q            - Quit`,
	RunE: runMenu,
}

func init() {
	playCmd.Flags().BoolVar(&flagPractice, "practice", false, "Play only the given level")
}

func runPlay(_ *cobra.Command, args []string) error {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if _, err := levels.Find(appLevels, levelID); err != nil {
			return fmt.Errorf("%w (run 'supaplex list' to see levels)", err)
		}
	}

	gameID := "supaplex"
	if flagPractice {
		gameID = "supaplex_practice"
	}

	game, err := registry.CreateAt(gameID, levelID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, runtimeConfig(), tuiSettings())
	return err
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(appLevels, store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsResults {
			goBack, err := tui.RunResults(appLevels, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.CreateAt(menuResult.GameID, menuResult.LevelID)
		if err != nil {
			return err
		}
		back, err := tui.Run(game, store, cfg, tuiSettings())
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}

// tuiSettings returns the front end settings from the loaded config.
func tuiSettings() tui.Settings {
	return tui.Settings{
		HoldTicks: appConfig.Input.HoldTicks,
		Logger:    tuiLogger(),
	}
}
