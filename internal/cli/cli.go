package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tack/internal/app"
	"github.com/thenoetrevino/tack/internal/cli/styles"
	"github.com/thenoetrevino/tack/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when the app was injected by the caller, who closes it
	owned bool
}

type appContextKey struct{}

// WithApp returns a context carrying an already built app.
// Commands run under it use that app instead of opening storage themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey{}, a)
}

// NewCLI loads the configuration and opens the configured storage
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	styles.Init(cfg.ColorScheme)
	return &CLI{App: application, Config: cfg, owned: true}, nil
}

// GetCLIFromContext returns a CLI over the app injected with WithApp, or
// builds a new one from the user's configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appContextKey{}).(*app.App); ok && a != nil {
		cfg := a.Config()
		if cfg == nil {
			cfg = config.Default()
		}
		styles.Init(cfg.ColorScheme)
		return &CLI{App: a, Config: cfg}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
