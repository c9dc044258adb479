package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load users, projects, tasks and applications from a JSON fixture",
	Long:  "Writes every entity of the fixture to the document store. Existing records are kept unless --overwrite is set.",
	RunE:  runSeed,
}

var (
	seedIn        string
	seedOverwrite bool
)

func init() {
	seedCmd.Flags().StringVarP(&seedIn, "in", "i", "", "Path to fixture JSON file (required)")
	seedCmd.Flags().BoolVar(&seedOverwrite, "overwrite", false, "Replace records that already exist")

	if err := seedCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	e, err := readFixture(seedIn)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, r, logger, err := connect(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	defer func() { _ = logger.Sync() }()

	counts, err := seed(ctx, r, e, seedOverwrite)
	for _, c := range counts {
		logger.Info("seeded", zap.String("kind", c.Kind), zap.Int("written", c.Written), zap.Int("skipped", c.Skipped))
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
