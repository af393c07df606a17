package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"task-triage/internal/model"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func newListCmd(o *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatTable, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
			}

			return o.withCore(cmd, func(ctx context.Context, core *Core) error {
				tasks, err := core.Tasks.List(ctx)
				if err != nil {
					return fmt.Errorf("listing tasks: %w", err)
				}
				return writeTasks(cmd, format, tasks)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "output format: table, json or yaml")
	return cmd
}

func writeTasks(cmd *cobra.Command, format string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case formatYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return err
		}
		return enc.Close()
	default:
		if len(tasks) == 0 {
			outln(cmd, "No tasks.")
			return nil
		}
		outln(cmd, renderTable(tasks))
		return nil
	}
}
