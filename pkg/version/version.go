// Package version exposes build-time version metadata for the huruf binary.
package version

// Version is the semantic version of the build. It is overridden at build
// time via -ldflags "-X github.com/hurufapp/huruf/pkg/version.Version=...".
var Version = "0.1.0-dev" //nolint:gochecknoglobals // Set by the linker at build time.

// GetVersion returns the current build version string.
func GetVersion() string {
	return Version
}
