// Package version provides build-time version information.
// The variables are set via ldflags during build.
package version

// These variables are set at build time via -ldflags
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "1.0.0"

	// GitCommit is the short git commit hash
	GitCommit = "unknown"

	// BuildTime is the build timestamp in RFC3339 format
	BuildTime = "unknown"
)
