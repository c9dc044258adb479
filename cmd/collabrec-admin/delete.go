package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/collabrec/internal/domain"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete one stored record",
	RunE:  runDelete,
}

var (
	deleteKind string
	deleteID   string
)

func init() {
	deleteCmd.Flags().StringVarP(&deleteKind, "kind", "k", "", "Record kind: user, project, task or application (required)")
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "Record ID (required)")

	for _, name := range []string{"kind", "id"} {
		if err := deleteCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, r, _, err := connect(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := deleteRecord(ctx, r, deleteKind, deleteID); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", deleteKind, deleteID)
	return err
}

// deleteRecord removes one record, failing with domain.ErrNotFound when it is absent.
func deleteRecord(ctx context.Context, r repos, kind, id string) error {
	var (
		exists func(context.Context, string) (bool, error)
		del    func(context.Context, string) error
	)
	switch kind {
	case "user":
		exists, del = r.users.Exists, r.users.Delete
	case "project":
		exists, del = r.projects.Exists, r.projects.Delete
	case "task":
		exists, del = r.projects.TaskExists, r.projects.DeleteTask
	case "application":
		exists, del = r.apps.Exists, r.apps.Delete
	default:
		return fmt.Errorf("unknown kind %q: %w", kind, domain.ErrInvalidRequest)
	}

	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return del(ctx, id)
}
