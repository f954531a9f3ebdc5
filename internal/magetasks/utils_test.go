package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"exec.ErrNotFound", exec.ErrNotFound, true},
		{"wrapped exec.ErrNotFound", fmt.Errorf("run: %w", exec.ErrNotFound), true},
		{"executable file not found", errors.New("executable file not found"), true},
		{"no such file or directory", errors.New("no such file or directory"), true},
		{"other error", errors.New("some other error"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCommandNotFound(tt.err))
		})
	}
}

func TestRun_MissingCommand(t *testing.T) {
	out := captureOutput(t, true, func() {
		err := Run("Missing tool", "tint-definitely-not-installed")
		assert.True(t, IsCommandNotFound(err))
	})
	assert.Equal(t, "i Missing tool\n", out)
}

func TestOptional_WarnsForMissingTool(t *testing.T) {
	out := captureOutput(t, true, func() {
		err := optional("Tool", "example.com/tool@latest", exec.ErrNotFound)
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})
	assert.Contains(t, out, "Tool not found (install: go install example.com/tool@latest)")

	err := optional("Tool", "x", errors.New("exit status 1"))
	assert.EqualError(t, err, "Tool failed: exit status 1")
	assert.NoError(t, optional("Tool", "x", nil))
}
