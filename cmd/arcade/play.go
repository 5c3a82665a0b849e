package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/platform/tui"
	"github.com/vovakirdan/boxarcade/internal/registry"
	"github.com/vovakirdan/boxarcade/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Platformer controls:
  A/D        - Move left/right
  W          - Jump

Pong controls:
  W/S        - Left paddle
  Up/Down    - Right paddle

Host controls:
  P          - Pause
  R          - Restart
  Esc/B      - End game, press again to leave
  Q/Ctrl+C   - Quit
  Ctrl+S     - Screenshot to ~/.arcade/screenshots

Examples:
  arcade play platformer
  arcade play pong --seed 42
  arcade play platformer --record
  arcade play platformer --config ./my-level.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session's inputs as a replay")
}

// runtimeConfig builds the runtime config from global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	return cfg
}

// openStore opens the replay database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	logger := newLogger()

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.CreateConfigured(gameID, flagConfig)
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagRecord {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}

	// No logger while the alternate screen is up; results are reported after.
	res, err := tui.Run(game, runtimeConfig(), tui.Options{
		Hold:   flagHold,
		Record: flagRecord,
		Store:  store,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	reportSession(logger, gameID, res)
	return nil
}

// reportSession logs the final score and any replays saved during play.
func reportSession(logger *log.Logger, gameID string, res tui.Result) {
	logger.Info("session ended", "game", gameID, "score", tui.FormatScores(res.State.Scores), "ticks", res.State.Tick)
	for _, id := range res.Replays {
		logger.Info("replay saved", "id", id, "hint", fmt.Sprintf("arcade replay %d", id))
	}
	if res.SaveErr != nil {
		logger.Error("could not save replay", "error", res.SaveErr)
	}
}
