// Package version records the CLI version string.
package version

// Version is the reocities CLI version. Release builds override it via
// -ldflags "-X github.com/reocities/cli/internal/version.Version=<v>".
var Version = "1.0.0"
