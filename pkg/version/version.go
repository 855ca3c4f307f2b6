// Package version exposes build version information set via -ldflags.
package version

import "runtime/debug"

// Set at build time:
//
//	go build -ldflags "-X github.com/rshade/vlist/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version = ""
	commit  = ""
)

// GetVersion returns the build version, falling back to the module version
// recorded in the binary and finally to "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// GetCommit returns the git commit the binary was built from, if known.
func GetCommit() string {
	return commit
}
