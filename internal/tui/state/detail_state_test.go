package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailStateOpenClose(t *testing.T) {
	s := NewDetailState()
	assert.False(t, s.IsOpen())

	s.Open("abc")
	assert.True(t, s.IsOpen())
	assert.Equal(t, "abc", s.TaskID)

	s.Close()
	assert.False(t, s.IsOpen())
}

func TestDetailStateResizeKeepsMinimum(t *testing.T) {
	s := NewDetailState()
	s.Resize(0, -3)
	assert.Equal(t, 1, s.Viewport.Width())
	assert.Equal(t, 1, s.Viewport.Height())

	s.Resize(40, 12)
	assert.Equal(t, 40, s.Viewport.Width())
	assert.Equal(t, 12, s.Viewport.Height())
}
