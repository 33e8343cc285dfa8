// Package buildinfo exposes the version stamped into the binary.
//
// Release builds set the variables through ldflags, for example:
//
//	go build -ldflags "-X github.com/moharchaudhuri17/tidytuesday/pkg/buildinfo.Version=v0.3.0"
//
// Development builds fall back to the VCS metadata the Go toolchain
// embeds on its own.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version of the release.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

func init() {
	if Commit != "none" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			Commit = s.Value
		case "vcs.time":
			Date = s.Value
		}
	}
}

// String formats the build information for the version command.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
