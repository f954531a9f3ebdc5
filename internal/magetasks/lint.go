package magetasks

import (
	"errors"
	"fmt"
)

const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs all linters. Missing optional linters are skipped.
func LintAll() error {
	PrintH2Header("Lint")
	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet, LintStaticcheck, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat checks code formatting.
func LintFormat() error {
	return Run("Go Format", "go", "fmt", "./...")
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return optional("Staticcheck", "honnef.co/go/tools/cmd/staticcheck@latest",
		Run("Staticcheck", "staticcheck", "./..."))
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return optional("Golangci-lint", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		Run("Golangci-lint", "golangci-lint", "run", golangciDisabled, "--timeout=5m", "./..."))
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return optional("Golangci-lint", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		Run("Golangci-lint Fix", "golangci-lint", "run", "--fix", golangciDisabled, "--timeout=5m", "./..."))
}

// optional turns a missing tool into a warning with install instructions.
func optional(tool, pkg string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsCommandNotFound(err):
		PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", tool, pkg))
		return err
	default:
		return fmt.Errorf("%s failed: %w", tool, err)
	}
}
