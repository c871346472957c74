// Package version holds build-time version information.
// The variables are populated via -ldflags at build time.
package version

import "runtime"

var (
	// GitRelease is the release tag (e.g. v0.3.0).
	GitRelease = "dev"
	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"
	// GitCommitDate is the commit date.
	GitCommitDate = "unknown"
	// GoInfo is the Go toolchain the binary was built with.
	GoInfo = runtime.Version()
)
