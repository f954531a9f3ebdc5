// Package version reports the build information of the tint binary.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time:
//
//	-X github.com/dkoosis/tint/internal/version.Version=v1.2.3
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build information for `tint version`.
func String() string {
	return fmt.Sprintf("tint %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
