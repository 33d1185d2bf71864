package version

import "fmt"

// Set with -ldflags "-X github.com/itsmostafa/mdbook-summary-generate/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
