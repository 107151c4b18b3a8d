package task

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tack/internal/cli"
	"github.com/thenoetrevino/tack/internal/testutil"
	clitest "github.com/thenoetrevino/tack/internal/testutil/cli"
)

func TestDoneTask(t *testing.T) {
	app := testutil.NewTestApp(t, "", testutil.Tasks("Buy milk", "Walk dog")...)
	ctx := context.Background()

	output, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{"2", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["task"].(map[string]any)["completed"])

	task, err := app.TaskService.GetTask(ctx, "2")
	require.NoError(t, err)
	assert.True(t, task.Completed)

	// Already done: still succeeds, state unchanged
	output, err = clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{"2", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(output))
	task, _ = app.TaskService.GetTask(ctx, "2")
	assert.True(t, task.Completed)

	output, err = clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{"2", "--undo"})
	require.NoError(t, err)
	assert.Contains(t, output, "marked open")
	task, _ = app.TaskService.GetTask(ctx, "2")
	assert.False(t, task.Completed)
}

func TestDoneTask_NotFound(t *testing.T) {
	app := testutil.NewTestApp(t, "", testutil.Tasks("Buy milk")...)

	output, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{"99", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	result := testutil.ParseJSON(t, output)
	errData := result["error"].(map[string]any)
	assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	assert.Equal(t, "task 99 not found", errData["message"])
}

func TestEditTask(t *testing.T) {
	tasks := testutil.Tasks("Buy milk")
	tasks[0].Completed = true
	tasks[0].Description = "2L"
	app := testutil.NewTestApp(t, "", tasks...)
	ctx := context.Background()

	_, err := clitest.ExecuteCLICommand(t, app, EditCmd(), []string{"1", "--title", " Buy oat milk "})
	require.NoError(t, err)

	task, err := app.TaskService.GetTask(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", task.Title)
	assert.Equal(t, "2L", task.Description, "unset flags are left alone")
	assert.True(t, task.Completed)

	_, err = clitest.ExecuteCLICommand(t, app, EditCmd(), []string{"1", "--description", ""})
	require.NoError(t, err)
	task, _ = app.TaskService.GetTask(ctx, "1")
	assert.Empty(t, task.Description)
}

func TestEditTask_Negative(t *testing.T) {
	app := testutil.NewTestApp(t, "", testutil.Tasks("Buy milk")...)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"nothing to change", []string{"1"}, cli.ExitUsage},
		{"blank title", []string{"1", "--title", "  "}, cli.ExitValidation},
		{"unknown id", []string{"42", "--title", "x"}, cli.ExitNotFound},
		{"missing id", []string{"--title", "x"}, cli.ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, EditCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
		})
	}

	task, err := app.TaskService.GetTask(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
}

func TestDeleteTask(t *testing.T) {
	app := testutil.NewTestApp(t, "", testutil.Tasks("Buy milk", "Walk dog")...)

	output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"1", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "1", result["task_id"])

	remaining := app.TaskService.ListTasks(context.Background())
	require.Len(t, remaining, 1)
	assert.Equal(t, "Walk dog", remaining[0].Title)

	_, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"1"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestShowTask(t *testing.T) {
	tasks := testutil.Tasks("Plan trip")
	tasks[0].Description = "pack light"
	app := testutil.NewTestApp(t, "", tasks...)

	output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Plan trip")
	assert.Contains(t, output, "pack light")
	assert.Contains(t, output, "○ open")

	output, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"1", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "pack light", result["task"].(map[string]any)["description"])
}

func TestChangesReachStorage(t *testing.T) {
	cfg := testutil.TestConfig(t, "")
	first := testutil.NewTestAppWithConfig(t, cfg)

	output, err := clitest.ExecuteCLICommand(t, first, AddCmd(), []string{"--title", "persist me", "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(output)
	require.NoError(t, first.Close())

	second := testutil.NewTestAppWithConfig(t, cfg)
	task, err := second.TaskService.GetTask(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "persist me", task.Title)
}
