package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/boxarcade/internal/platform/tui"
	"github.com/vovakirdan/boxarcade/internal/registry"
	"github.com/vovakirdan/boxarcade/internal/storage"
)

var (
	flagBrowse      bool
	flagReplayLimit int
	flagSnapshot    bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays [game]",
	Short: "List recorded replays",
	Long: `List replays stored in the database, newest first.

Examples:
  arcade replays
  arcade replays pong --limit 5
  arcade replays --browse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded replay headlessly",
	Long: `Re-run a stored replay without a terminal UI and print the final
scores. The game is configured from --config, so pass the same file the
session was recorded with.

Examples:
  arcade replay 3
  arcade replay 3 --snapshot`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive replay browser")
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of replays to list")
	replayCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Print the final entity state as YAML")
}

func runReplays(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	if flagBrowse {
		cfg := runtimeConfig()
		_, err := tui.RunReplays(store, flagConfig, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	entries, err := store.ListReplays(context.Background(), gameID, flagReplayLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'arcade play <game> --record' to save one.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tGame\tSeed\tTicks\tKeys\tDate")
	fmt.Fprintln(w, "  --\t----\t----\t-----\t----\t----")
	for _, e := range entries {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%d\t%d\t%s\n",
			e.ID, e.GameID, e.Seed, e.Ticks, e.Events, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runReplay(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid replay id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	state, game, err := tui.SimulateStored(context.Background(), store, id, flagConfig)
	if err != nil {
		return err
	}

	fmt.Printf("Replay %d - %s\n", id, game.Title())
	fmt.Printf("  Ticks: %d\n", state.Tick)
	fmt.Printf("  Score: %s\n", tui.FormatScores(state.Scores))

	if !flagSnapshot {
		return nil
	}
	s, ok := game.(registry.Snapshotter)
	if !ok {
		return nil
	}
	out, err := yaml.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	fmt.Println()
	fmt.Print(string(out))
	return nil
}
