// Package version holds build metadata, set via ldflags:
//
//	go build -ldflags "-X git.home.luguber.info/inful/sitenav/internal/version.Version=v0.3.0"
package version

import "fmt"

// Version is the release version.
var Version = "unknown"

// Build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return fmt.Sprintf("sitenav %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
