package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"task-triage/internal/scoring"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "score <text>",
		Short:   "Score text with the local heuristic without storing it",
		Example: `  triage score "URGENT: fix the production outage before the client demo"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := scoring.ScoreText(strings.Join(args, " "))
			outf(cmd, "score:      %d\n", r.Score)
			outf(cmd, "category:   %s\n", categoryStyle(r.Category).Render(string(r.Category)))
			outf(cmd, "urgency:    %d/5\n", r.Urgency)
			outf(cmd, "importance: %d/5\n", r.Importance)
			return nil
		},
	}
}
