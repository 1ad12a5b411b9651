// Package misc holds small helpers shared across commands.
package misc

import (
	"runtime/debug"
)

const appName = "docwalk"

// GetAppName returns the program name used for logging, config and
// auxiliary file names.
func GetAppName() string {
	return appName
}

// GetVersion returns the module version recorded in build info, or a
// placeholder for local builds.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "development"
}

// GetGitHash returns the vcs revision recorded in build info.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
