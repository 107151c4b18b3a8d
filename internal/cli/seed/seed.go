// Package seed holds the command that imports starter tasks on demand.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli"
	"github.com/thenoetrevino/tack/internal/cli/handler"
)

var errNoSeedURL = errors.New("no seed URL configured")

// importResult is what a seed run reports back
type importResult struct {
	Imported int    `json:"imported"`
	Skipped  bool   `json:"skipped"`
	URL      string `json:"url"`
}

// GetID lets quiet mode print the imported count
func (r importResult) GetID() string {
	return strconv.Itoa(r.Imported)
}

func (r importResult) String() string {
	switch {
	case r.Skipped:
		return "Task list is not empty, nothing to import"
	case r.Imported == 0:
		return fmt.Sprintf("No tasks to import from %s", r.URL)
	}
	return fmt.Sprintf("Imported %d tasks from %s", r.Imported, r.URL)
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import starter tasks into an empty list",
		Long: `Fetch starter tasks from the configured seed endpoint.

The import only happens when the task list is empty; otherwise the command
succeeds without touching anything. The endpoint comes from TACK_SEED_URL or
seed.url in the config file.

Examples:
  TACK_SEED_URL=https://jsonplaceholder.typicode.com/todos tack seed
  tack seed --json
`,
		Args: handler.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(runSeed),
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func runSeed(ctx context.Context, env *handler.Env) error {
	application := env.CLI.App

	url := application.SeedURL()
	if url == "" {
		if fmtErr := env.Formatter.ErrorWithSuggestion("NO_SEED_URL", errNoSeedURL.Error(),
			"Set TACK_SEED_URL or seed.url in the config file"); fmtErr != nil {
			return fmtErr
		}
		return cli.Reported(cli.ExitUsage, errNoSeedURL)
	}

	result := importResult{URL: url}
	if application.Store().Len() > 0 {
		result.Skipped = true
		return env.Formatter.Success(result)
	}

	tasks, err := application.FetchSeed(ctx)
	if err != nil {
		if fmtErr := env.Formatter.Error("SEED_FAILED", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Reported(cli.ExitError, fmt.Errorf("seed import failed: %w", err))
	}

	applied, err := application.ApplySeed(tasks)
	if err != nil {
		return env.Fail("", err)
	}

	switch {
	case applied:
		result.Imported = len(tasks)
	case application.Store().Len() > 0:
		// Tasks were added while the fetch ran
		result.Skipped = true
	}
	return env.Formatter.Success(result)
}
