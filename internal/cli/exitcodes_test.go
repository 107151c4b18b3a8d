package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	sentinel := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", sentinel, ExitError},
		{"coded", WithExitCode(ExitNotFound, sentinel), ExitNotFound},
		{"wrapped coded", fmt.Errorf("outer: %w", WithExitCode(ExitValidation, sentinel)), ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestCodedErrorUnwraps(t *testing.T) {
	sentinel := errors.New("boom")
	err := WithExitCode(ExitUsage, sentinel)

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "exit status 4", WithExitCode(ExitDataErr, nil).Error())
}

func TestReported(t *testing.T) {
	sentinel := errors.New("boom")

	err := Reported(ExitNotFound, sentinel)
	assert.True(t, IsReported(err))
	assert.True(t, IsReported(fmt.Errorf("outer: %w", err)))
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.ErrorIs(t, err, sentinel)

	assert.False(t, IsReported(WithExitCode(ExitUsage, sentinel)))
	assert.False(t, IsReported(sentinel))
	assert.False(t, IsReported(nil))
}
