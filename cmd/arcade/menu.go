package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxarcade/internal/platform/tui"
	"github.com/vovakirdan/boxarcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Browse replays
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --record --db ./replays.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagRecord, "record", false, "Save each session's inputs as a replay")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsReplays {
			goBack, err := tui.RunReplays(store, flagConfig, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("replay browser failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.CreateConfigured(menuResult.GameID, flagConfig)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// A fresh seed per game unless one was pinned on the command line
		cfg.Seed = flagSeed

		res, err := tui.Run(game, cfg, tui.Options{
			Hold:   flagHold,
			Record: flagRecord,
			Store:  store,
		})
		if err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
		}
		if res.SaveErr != nil {
			logger.Error("could not save replay", "error", res.SaveErr)
		}
	}
}
