// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseTaskID extracts the task ID from the first positional argument
func (p *FlagParser) ParseTaskID(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("task ID is required")
	}
	taskID := strings.TrimSpace(args[0])
	if taskID == "" {
		return "", fmt.Errorf("task ID is required")
	}
	return taskID, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ParseChangedString returns the flag value and whether it was set at all,
// so an explicitly empty value can be told apart from an absent flag.
func (p *FlagParser) ParseChangedString(flagName string) (*string, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return nil, nil
	}
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return &value, nil
}

// ParseDescription extracts a description flag. A value of "-" reads the
// description from stdin.
func (p *FlagParser) ParseDescription(flagName string) (*string, error) {
	value, err := p.ParseChangedString(flagName)
	if err != nil || value == nil || *value != "-" {
		return value, err
	}
	data, err := io.ReadAll(p.cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read description from stdin: %w", err)
	}
	description := string(data)
	return &description, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
