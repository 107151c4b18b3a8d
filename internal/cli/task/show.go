package task

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli/handler"
	"github.com/thenoetrevino/tack/internal/cli/styles"
	"github.com/thenoetrevino/tack/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show one task with its description",
		Args:  handler.UsageArgs(cobra.ExactArgs(1)),
		RunE:  handler.Command(runShow),
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func runShow(ctx context.Context, env *handler.Env) error {
	taskID, err := env.Flags.ParseTaskID(env.Args)
	if err != nil {
		return env.Usage(err)
	}

	task, err := env.Tasks().GetTask(ctx, taskID)
	if err != nil {
		return env.Fail(taskID, err)
	}

	return printTask(env, task, renderTaskCard(task))
}

// renderTaskCard renders the human-readable view of a single task
func renderTaskCard(task models.Task) string {
	status := "open"
	if task.Completed {
		status = "done"
	}

	description := strings.TrimSpace(task.Description)
	if description == "" {
		description = styles.SubtitleStyle.Render("No description")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(task.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.LabelStyle.Render("ID: ") + styles.ValueStyle.Render(task.ID))
	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("Status: ") + styles.ValueStyle.Render(styles.StatusMark(task)+" "+status))
	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(description)

	return styles.RenderCard(b.String())
}
