package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"task-triage/internal/cache"
	"task-triage/internal/settings"
	"task-triage/internal/task"
)

var (
	appVersion = "dev"
	appCommit  = "none"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit string) {
	appVersion = version
	appCommit = commit
}

// Core is the part of the wired application the commands drive.
type Core struct {
	Tasks    task.UseCase
	Settings settings.UseCase
	Cache    cache.Cache
	Close    func(ctx context.Context) error
}

// Opener builds a Core from the config file at path.
type Opener func(ctx context.Context, path string, verbose bool) (*Core, error)

type rootOptions struct {
	open       Opener
	configPath string
	verbose    bool
}

// withCore opens the store, runs fn and closes it again.
func (o *rootOptions) withCore(cmd *cobra.Command, fn func(ctx context.Context, core *Core) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	core, err := o.open(ctx, o.configPath, o.verbose)
	if err != nil {
		return err
	}
	defer func() {
		if core.Close != nil {
			_ = core.Close(context.WithoutCancel(ctx))
		}
	}()

	return fn(ctx, core)
}

// NewRootCmd assembles the triage command tree.
func NewRootCmd(open Opener) *cobra.Command {
	o := &rootOptions{open: open}

	root := &cobra.Command{
		Use:   "triage",
		Short: "Score and triage tasks into the urgency/importance matrix",
		Long: `triage scores free-text tasks with a local keyword heuristic and,
when a backend is configured, refines them with a remote language model.

Tasks live in the same sqlite store the HTTP service uses.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&o.configPath, "config", "c", "", "path to config.yaml")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log pipeline activity to stderr")

	root.AddCommand(
		newVersionCmd(),
		newScoreCmd(),
		newAddCmd(o),
		newListCmd(o),
		newMatrixCmd(o),
		newDeleteCmd(o),
		newClearCmd(o),
		newAnalyzeCmd(o),
		newPurgeCacheCmd(o),
		newConfigureCmd(o),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			outf(cmd, "triage %s\ncommit: %s\n", appVersion, appCommit)
		},
	}
}

func outf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}

func outln(cmd *cobra.Command, a ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}
