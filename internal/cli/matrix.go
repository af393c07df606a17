package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newMatrixCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show tasks in the urgency/importance quadrants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withCore(cmd, func(ctx context.Context, core *Core) error {
				m, err := core.Tasks.Matrix(ctx)
				if err != nil {
					return fmt.Errorf("building matrix: %w", err)
				}
				outln(cmd, renderMatrix(m))
				return nil
			})
		},
	}
}
