package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"task-triage/internal/analyzer"
)

func newAnalyzeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Send every task without a remote assessment to the backend and wait",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withCore(cmd, func(ctx context.Context, core *Core) error {
				return runAnalyze(ctx, cmd, core)
			})
		},
	}
}

func runAnalyze(ctx context.Context, cmd *cobra.Command, core *Core) error {
	out, err := core.Tasks.Analyze(ctx)
	if errors.Is(err, analyzer.ErrNotConfigured) {
		return errors.New("no backend configured, run `triage configure --provider <kind> --api-key <key>` first")
	}
	if err != nil {
		return fmt.Errorf("analyzing tasks: %w", err)
	}

	if out.Queued == 0 {
		outln(cmd, "Nothing to analyze.")
		return nil
	}
	outf(cmd, "Analyzed %d of %d task(s).\n", out.Analyzed, out.Queued)
	return nil
}
