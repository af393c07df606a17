package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPurgeCacheCmd(o *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "purge-cache",
		Short: "Remove expired cached responses (or all of them with --all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.withCore(cmd, func(ctx context.Context, core *Core) error {
				if all {
					if err := core.Cache.Clear(ctx); err != nil {
						return fmt.Errorf("clearing cache: %w", err)
					}
					outln(cmd, "Cache cleared.")
					return nil
				}

				n, err := core.Cache.PurgeExpired(ctx)
				if err != nil {
					return fmt.Errorf("purging cache: %w", err)
				}
				outf(cmd, "Removed %d expired entr%s.\n", n, plural(n, "y", "ies"))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "remove every entry, not only expired ones")
	return cmd
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
