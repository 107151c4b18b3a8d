package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments or an empty task ID.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable stdin.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: a title that is blank after trimming.
	ExitValidation = 5
)

// CodedError carries the process exit code for a failed command.
// Commands return it instead of calling os.Exit so they stay testable.
type CodedError struct {
	Code int
	Err  error

	// Reported is set when the command already printed the error
	Reported bool
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so main exits with code
func WithExitCode(code int, err error) error {
	if err == nil {
		err = fmt.Errorf("exit status %d", code)
	}
	return &CodedError{Code: code, Err: err}
}

// Reported is WithExitCode for errors the command already wrote out through
// its OutputFormatter. main prints every other error to stderr.
func Reported(code int, err error) error {
	coded := WithExitCode(code, err).(*CodedError)
	coded.Reported = true
	return coded
}

// IsReported reports whether err was already shown to the user
func IsReported(err error) bool {
	var coded *CodedError
	return errors.As(err, &coded) && coded.Reported
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitError
}
