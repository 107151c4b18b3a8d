package task

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli/handler"
)

// DeleteCmd returns the task rm subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <task_id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task immediately. There is no confirmation and no undo.

Examples:
  tack task rm 7
`,
		Args: handler.UsageArgs(cobra.ExactArgs(1)),
		RunE: handler.Command(runDelete),
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func runDelete(ctx context.Context, env *handler.Env) error {
	taskID, err := env.Flags.ParseTaskID(env.Args)
	if err != nil {
		return env.Usage(err)
	}

	if err := env.Tasks().DeleteTask(ctx, taskID); err != nil {
		return env.Fail(taskID, err)
	}

	if env.Formatter.Quiet {
		fmt.Println(taskID)
		return nil
	}

	if env.Formatter.JSON {
		return env.Formatter.Encode(map[string]any{
			"success": true,
			"task_id": taskID,
		})
	}

	fmt.Printf("Task %s deleted\n", taskID)
	return nil
}
