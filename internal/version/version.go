// Package version reports build metadata stamped by the linker.
package version

// These variables are populated by the Go linker (LDFLAGS) at build time:
//
//	go build -ldflags "-X github.com/dkoosis/rspecsum/internal/version.Version=v1.0.0"
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// String formats the build metadata on one line.
func String() string {
	return Version + " (" + CommitHash + ", built " + BuildDate + ")"
}
