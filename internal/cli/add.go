package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"task-triage/internal/task"
)

func newAddCmd(o *rootOptions) *cobra.Command {
	var analyze bool

	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add tasks, one per argument or one per stdin line",
		Long: `Add tasks. Each argument becomes a task; with no arguments, each
non-empty line read from stdin becomes a task.

Tasks are scored locally right away. With --analyze the command also waits
for the remote backend to assess them.`,
		Example: `  triage add "deploy hotfix today" "plan Q3 roadmap"
  cat todo.txt | triage add --analyze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, "\n")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				raw = string(b)
			}

			return o.withCore(cmd, func(ctx context.Context, core *Core) error {
				out, err := core.Tasks.CreateBulk(ctx, task.CreateBulkInput{RawText: raw})
				if err != nil {
					return fmt.Errorf("adding tasks: %w", err)
				}

				outf(cmd, "Added %d task(s):\n", len(out.Tasks))
				outln(cmd, renderTable(out.Tasks))

				if !analyze {
					if out.Queued {
						outln(cmd, "Run `triage analyze` to fetch remote assessments.")
					}
					return nil
				}
				return runAnalyze(ctx, cmd, core)
			})
		},
	}
	cmd.Flags().BoolVar(&analyze, "analyze", false, "wait for remote analysis after adding")
	return cmd
}
