// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli"
	"github.com/thenoetrevino/tack/internal/models"
	taskservice "github.com/thenoetrevino/tack/internal/services/task"
)

// Env is what a command body receives: the CLI, its output formatter and
// the parsed arguments.
type Env struct {
	CLI       *cli.CLI
	Formatter *cli.OutputFormatter
	Flags     *FlagParser
	Args      []string
}

// Tasks returns the task service of the CLI's app
func (e *Env) Tasks() taskservice.Service {
	return e.CLI.App.TaskService
}

// AddOutputFlags registers the agent-friendly output flags every command takes
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Command wraps common command execution logic: output flags, CLI setup
// and teardown. Returns a cobra RunE compatible function.
func Command(run func(ctx context.Context, env *Env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		parser := NewFlagParser(cmd)
		jsonOutput, quietMode, err := parser.OutputFormats()
		if err != nil {
			return cli.WithExitCode(cli.ExitUsage, err)
		}
		formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return cli.Reported(cli.ExitError, err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("Error closing CLI", "error", err)
			}
		}()

		return run(ctx, &Env{
			CLI:       cliInstance,
			Formatter: formatter,
			Flags:     parser,
			Args:      args,
		})
	}
}

// Usage reports a usage error and returns it with the usage exit code
func (e *Env) Usage(err error) error {
	if fmtErr := e.Formatter.Error("USAGE_ERROR", err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return cli.Reported(cli.ExitUsage, err)
}

// Fail reports a task operation error and returns it with the matching
// exit code.
func (e *Env) Fail(taskID string, err error) error {
	code, exit, message, suggestion := "SAVE_ERROR", cli.ExitError, err.Error(), ""

	switch {
	case errors.Is(err, models.ErrTaskNotFound):
		code, exit = "TASK_NOT_FOUND", cli.ExitNotFound
		message = fmt.Sprintf("task %s not found", taskID)
		suggestion = "Use 'tack task list' to see task IDs"
	case errors.Is(err, models.ErrEmptyTitle):
		code, exit = "INVALID_TITLE", cli.ExitValidation
		suggestion = "Provide a non-blank --title"
	case errors.Is(err, taskservice.ErrInvalidTaskID):
		code, exit = "INVALID_TASK_ID", cli.ExitUsage
	}

	if fmtErr := e.Formatter.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return cli.Reported(exit, err)
}

// UsageArgs wraps a cobra argument validator so its errors exit with the
// usage code.
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return cli.WithExitCode(cli.ExitUsage, err)
		}
		return nil
	}
}
