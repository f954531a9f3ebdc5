package magetasks

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Run prints label and runs the command with its output attached to Output.
func Run(label, name string, args ...string) error {
	PrintInfo(label)
	cmd := exec.Command(name, args...)
	cmd.Stdout = Output
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if !IsCommandNotFound(err) {
			PrintError(label + " failed")
		}
		return err
	}
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and platform-specific string fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory")
}
