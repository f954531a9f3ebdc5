// Package magetasks provides organized build tasks for the tint project.
//
// This package contains the build, test and lint tasks used by the
// Magefile. Task output is written with tint's own markup console.
package magetasks
