package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-triage/internal/model"
	"task-triage/internal/settings"
)

func newConfigureCmd(o *rootOptions) *cobra.Command {
	var (
		provider string
		apiKey   string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Select the remote analysis backend",
		Long: `Select the remote analysis backend and store its key.

An empty --api-key clears the selection so only local scoring is used.
Without flags the current status is printed.`,
		Example: `  triage configure --provider anthropic --api-key "$ANTHROPIC_API_KEY"
  triage configure --api-key ""`,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cmd.Flags().Changed("provider") || cmd.Flags().Changed("api-key")

			return o.withCore(cmd, func(ctx context.Context, core *Core) error {
				if changed {
					p := model.Provider(strings.ToLower(provider))
					err := core.Settings.Configure(ctx, p, apiKey)
					if errors.Is(err, settings.ErrInvalidProvider) {
						return fmt.Errorf("unknown provider %q (want anthropic, openai or gemini)", provider)
					}
					if err != nil {
						return fmt.Errorf("configuring backend: %w", err)
					}
				}

				st := core.Settings.Status(ctx)
				if !st.Configured {
					outln(cmd, "Backend: not configured (local scoring only)")
					return nil
				}
				outf(cmd, "Backend: %s\n", st.Provider)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "backend kind: anthropic, openai or gemini")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "backend API key (empty clears)")
	return cmd
}
