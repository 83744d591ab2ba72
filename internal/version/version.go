// Package version holds build information injected at link time.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/docrender/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/docrender/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/docrender/internal/version.Date={{.Date}}
)
