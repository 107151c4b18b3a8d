package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tack/internal/cli"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"task", "add"},
		{"task", "list"},
		{"task", "rm"},
		{"task", "delete"},
		{"seed"},
		{"config", "path"},
	} {
		found, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.NotEqual(t, root, found, path)
	}
}

func TestExecute_UsageErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"config", "path", "--bogus"}},
		{"stray argument", []string{"stray"}},
		{"missing task id", []string{"task", "done"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCmd()
			root.SetArgs(tt.args)
			err := root.ExecuteContext(context.Background())
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
			assert.False(t, cli.IsReported(err))
		})
	}
}
