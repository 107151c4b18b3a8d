package task

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli"
	"github.com/thenoetrevino/tack/internal/cli/handler"
	"github.com/thenoetrevino/tack/internal/cli/styles"
	taskservice "github.com/thenoetrevino/tack/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task_id>",
		Short: "Change a task's title or description",
		Long: `Change the title and/or description of a task. Completion is kept.

Examples:
  tack task edit 7 --title="Buy oat milk"
  tack task edit 7 --description=""
  cat notes.md | tack task edit 7 --description=-
`,
		Args: handler.UsageArgs(cobra.ExactArgs(1)),
		RunE: handler.Command(runEdit),
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runEdit(ctx context.Context, env *handler.Env) error {
	taskID, err := env.Flags.ParseTaskID(env.Args)
	if err != nil {
		return env.Usage(err)
	}

	title, err := env.Flags.ParseChangedString("title")
	if err != nil {
		return env.Usage(err)
	}
	description, err := env.Flags.ParseDescription("description")
	if err != nil {
		if fmtErr := env.Formatter.Error("STDIN_READ_ERROR", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Reported(cli.ExitDataErr, err)
	}
	if title == nil && description == nil {
		return env.Usage(errors.New("nothing to change: pass --title and/or --description"))
	}

	task, err := env.Tasks().UpdateTask(ctx, taskservice.UpdateTaskRequest{
		TaskID:      taskID,
		Title:       title,
		Description: description,
	})
	if err != nil {
		return env.Fail(taskID, err)
	}

	return printTask(env, task, styles.SuccessStyle.Render("Updated")+" "+styles.RenderTaskLine(task))
}
