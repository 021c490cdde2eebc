package version

import "fmt"

// Version is set via build-time ldflags in release builds:
// go build -ldflags "-X git.home.luguber.info/inful/trakai/internal/version.Version=v1.0.0".
var Version = "dev"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns the one-line version banner printed by `trakai --version`.
func String() string {
	return fmt.Sprintf("trakai %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
