// Package configcmd holds the commands that inspect the configuration file.
package configcmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tack/internal/cli"
	"github.com/thenoetrevino/tack/internal/cli/handler"
	"github.com/thenoetrevino/tack/internal/config"
	"gopkg.in/yaml.v3"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(PathCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// PathCmd prints where the config file is read from
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  handler.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := outputFormatter(cmd)
			if err != nil {
				return err
			}

			path, err := config.Path()
			if err != nil {
				return fail(formatter, err)
			}
			_, statErr := os.Stat(path)
			exists := statErr == nil

			if formatter.JSON {
				return formatter.Encode(map[string]any{
					"success": true,
					"path":    path,
					"exists":  exists,
				})
			}
			fmt.Println(path)
			return nil
		},
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

// ShowCmd prints the effective configuration: file values merged with
// environment overrides and defaults.
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  handler.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fail(&cli.OutputFormatter{}, fmt.Errorf("failed to load config: %w", err))
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fail(&cli.OutputFormatter{}, err)
			}
			fmt.Print(string(data))
			return nil
		},
	}
}

// InitCmd writes the default configuration to the config path
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write the default configuration to the config path so it can be edited.

An existing file is left alone unless --force is given.`,
		Args: handler.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := outputFormatter(cmd)
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")

			path, err := config.Path()
			if err != nil {
				return fail(formatter, err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				err := fmt.Errorf("config file already exists: %s", path)
				if fmtErr := formatter.ErrorWithSuggestion("CONFIG_EXISTS", err.Error(),
					"Use --force to overwrite it"); fmtErr != nil {
					return fmtErr
				}
				return cli.Reported(cli.ExitUsage, err)
			}

			if err := config.Default().Save(); err != nil {
				return fail(formatter, fmt.Errorf("failed to write config: %w", err))
			}

			if formatter.Quiet {
				fmt.Println(path)
				return nil
			}
			if formatter.JSON {
				return formatter.Encode(map[string]any{
					"success": true,
					"path":    path,
				})
			}
			fmt.Printf("Wrote default config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	handler.AddOutputFlags(cmd)
	return cmd
}

func outputFormatter(cmd *cobra.Command) (*cli.OutputFormatter, error) {
	jsonOutput, quietMode, err := handler.NewFlagParser(cmd).OutputFormats()
	if err != nil {
		return nil, cli.WithExitCode(cli.ExitUsage, err)
	}
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}, nil
}

func fail(formatter *cli.OutputFormatter, err error) error {
	if fmtErr := formatter.Error("CONFIG_ERROR", err.Error()); fmtErr != nil {
		return errors.Join(err, fmtErr)
	}
	return cli.Reported(cli.ExitError, err)
}
