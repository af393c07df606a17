package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"task-triage/internal/task"
)

func newDeleteCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withCore(cmd, func(ctx context.Context, core *Core) error {
				err := core.Tasks.Delete(ctx, args[0])
				if errors.Is(err, task.ErrNotFound) {
					return fmt.Errorf("task %s not found", args[0])
				}
				if err != nil {
					return fmt.Errorf("deleting task: %w", err)
				}
				outf(cmd, "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newClearCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withCore(cmd, func(ctx context.Context, core *Core) error {
				if err := core.Tasks.Clear(ctx); err != nil {
					return fmt.Errorf("clearing tasks: %w", err)
				}
				outln(cmd, "All tasks deleted.")
				return nil
			})
		},
	}
}
