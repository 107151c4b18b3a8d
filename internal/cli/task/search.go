package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli/handler"
)

// SearchCmd returns the task search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find tasks by title or description",
		Long: `Find tasks whose title or description contains the query, ignoring case.

Examples:
  tack task search milk
  tack task search "call mom" --quiet
`,
		Args: handler.UsageArgs(cobra.ExactArgs(1)),
		RunE: handler.Command(runSearch),
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func runSearch(ctx context.Context, env *handler.Env) error {
	return printTasks(env, env.Tasks().SearchTasks(ctx, env.Args[0]))
}
