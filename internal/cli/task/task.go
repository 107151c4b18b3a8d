package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli/handler"
	"github.com/thenoetrevino/tack/internal/cli/styles"
	"github.com/thenoetrevino/tack/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SearchCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// printTask writes one task in the format the flags asked for
func printTask(env *handler.Env, task models.Task, human string) error {
	if env.Formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}

	if env.Formatter.JSON {
		return env.Formatter.Encode(map[string]any{
			"success": true,
			"task":    task,
		})
	}

	styles.Println(human)
	return nil
}

// printTasks writes a list of tasks in the format the flags asked for
func printTasks(env *handler.Env, tasks []models.Task) error {
	if env.Formatter.Quiet {
		for _, task := range tasks {
			fmt.Println(task.ID)
		}
		return nil
	}

	if env.Formatter.JSON {
		if tasks == nil {
			tasks = []models.Task{}
		}
		return env.Formatter.Encode(map[string]any{
			"success": true,
			"tasks":   tasks,
		})
	}

	// Human-readable output
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	for _, task := range tasks {
		styles.Println(styles.RenderTaskLine(task))
	}
	return nil
}
