package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli/handler"
	"github.com/thenoetrevino/tack/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in order",
		Long: `List all tasks in insertion order.

Examples:
  tack task list
  tack task list --open
  tack task list --done --json
`,
		Args: handler.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(runList),
	}

	cmd.Flags().Bool("done", false, "Only completed tasks")
	cmd.Flags().Bool("open", false, "Only open tasks")
	cmd.MarkFlagsMutuallyExclusive("done", "open")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runList(ctx context.Context, env *handler.Env) error {
	onlyDone, err := env.Flags.ParseBool("done")
	if err != nil {
		return env.Usage(err)
	}
	onlyOpen, err := env.Flags.ParseBool("open")
	if err != nil {
		return env.Usage(err)
	}

	tasks := env.Tasks().ListTasks(ctx)
	if onlyDone || onlyOpen {
		tasks = filterCompleted(tasks, onlyDone)
	}

	return printTasks(env, tasks)
}

// filterCompleted keeps tasks whose completion state equals completed
func filterCompleted(tasks []models.Task, completed bool) []models.Task {
	filtered := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Completed == completed {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
