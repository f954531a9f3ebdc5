package magetasks

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// BuildAll builds the tint binary with version information.
func BuildAll() error {
	PrintH2Header("Build")

	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		ModulePath, gitVersion(), gitCommit(), time.Now().UTC().Format(time.RFC3339))

	if err := Run("Building tint", "go", "build", "-ldflags", ldflags, "-o", BinPath, "./cmd/tint"); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	PrintSuccess("Built: " + BinPath)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")
	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	_ = os.Remove("coverage.out")
	PrintSuccess("Cleaned build artifacts")
	return nil
}

func gitVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty", "--match=v*").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

func gitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
