// Package version reports the build version of cableviz.
package version

import "runtime/debug"

// Set at build time with -ldflags "-X github.com/econum/cableviz/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Linker-provided values.
var (
	version = ""
	commit  = ""
)

const develVersion = "dev"

// GetVersion returns the linker-provided version, else the module version
// embedded by go install, else "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return develVersion
}

// GetCommit returns the linker-provided commit, or "".
func GetCommit() string {
	return commit
}
