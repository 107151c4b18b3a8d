package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli"
	"github.com/thenoetrevino/tack/internal/cli/configcmd"
	"github.com/thenoetrevino/tack/internal/cli/handler"
	"github.com/thenoetrevino/tack/internal/cli/seed"
	"github.com/thenoetrevino/tack/internal/cli/task"
	"github.com/thenoetrevino/tack/internal/launcher"
)

// NewRootCmd builds the tack command tree. Without a subcommand it opens
// the interactive task board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tack",
		Short: "Tack - a terminal task list",
		Long: `Tack is a terminal task list. Run it without arguments for the
interactive board, or use the task commands from scripts.`,
		Args:          handler.UsageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(seed.SeedCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.WithExitCode(cli.ExitUsage, fmt.Errorf("%w\nRun '%s --help' for usage", err, cmd.CommandPath()))
	})

	return rootCmd
}

// Execute runs the command tree and reports errors commands did not
// already print
func Execute(ctx context.Context) error {
	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
