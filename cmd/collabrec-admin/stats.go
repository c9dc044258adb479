package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/collabrec/internal/domain/generation"
	"github.com/kailas-cloud/collabrec/internal/usecase/corpus"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build a corpus generation offline and print its statistics",
	Long:  "Reads the store the same way the service does, builds one generation locally and prints its size. Nothing is published.",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, r, _, err := connect(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := offlineStats(ctx, r, time.Now().UTC())
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func offlineStats(ctx context.Context, r repos, now time.Time) (generation.Stats, error) {
	snap, err := corpus.NewLoader(r.projects, r.users, r.apps).Load(ctx)
	if err != nil {
		return generation.Stats{}, fmt.Errorf("load corpus: %w", err)
	}
	return corpus.Build(snap, "offline", now).Stats(), nil
}
