package task

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli/handler"
	"github.com/thenoetrevino/tack/internal/cli/styles"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed, or open again with --undo.

Examples:
  # Complete a task
  tack task done 7

  # Reopen it
  tack task done 7 --undo

  # JSON output for agents
  tack task done 7 --json
`,
		Args: handler.UsageArgs(cobra.ExactArgs(1)),
		RunE: handler.Command(runDone),
	}

	cmd.Flags().Bool("undo", false, "Mark the task open again")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runDone(ctx context.Context, env *handler.Env) error {
	taskID, err := env.Flags.ParseTaskID(env.Args)
	if err != nil {
		return env.Usage(err)
	}
	undo, err := env.Flags.ParseBool("undo")
	if err != nil {
		return env.Usage(err)
	}
	completed := !undo

	before, err := env.Tasks().GetTask(ctx, taskID)
	if err != nil {
		return env.Fail(taskID, err)
	}

	task, err := env.Tasks().SetCompleted(ctx, taskID, completed)
	if err != nil {
		return env.Fail(taskID, err)
	}

	state := "done"
	if !completed {
		state = "open"
	}
	if before.Completed == completed {
		// Still exit successfully
		fmt.Fprintf(os.Stderr, "Task %s is already %s\n", taskID, state)
	}

	return printTask(env, task, fmt.Sprintf("Task %s marked %s", styles.TitleStyle.Render(task.ID), state))
}
