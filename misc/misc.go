// Package misc keeps build time information about the program.
package misc

import (
	"runtime/debug"
)

// set by linker.
var (
	version = "dev"
	githash = "unknown"
)

const appName = "mdflow"

// GetAppName returns short program name used for logs, reports and temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, falling back to module build information
// when binary was built without linker flags.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetGitHash returns source revision program was built from.
func GetGitHash() string {
	if githash != "unknown" {
		return githash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return githash
}
