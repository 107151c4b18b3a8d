package task

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli"
	"github.com/thenoetrevino/tack/internal/cli/handler"
	"github.com/thenoetrevino/tack/internal/cli/styles"
	taskservice "github.com/thenoetrevino/tack/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new task to the end of the list.

Examples:
  # Simple task (human-readable output)
  tack task add --title="Buy milk"

  # With a markdown description read from stdin
  echo "- 2L\n- oat" | tack task add --title="Buy milk" --description=-

  # Quiet mode for bash capture
  TASK_ID=$(tack task add --title="Buy milk" --quiet)
`,
		Args: handler.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(runAdd),
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	handler.AddOutputFlags(cmd)

	return cmd
}

func runAdd(ctx context.Context, env *handler.Env) error {
	title, err := env.Flags.ParseStringOptional("title")
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

	req := taskservice.CreateTaskRequest{Title: title}
	if description != nil {
		req.Description = *description
	}

	task, err := env.Tasks().CreateTask(ctx, req)
	if err != nil {
		return env.Fail("", err)
	}

	return printTask(env, task, styles.SuccessStyle.Render("Created")+" "+styles.RenderTaskLine(task))
}
