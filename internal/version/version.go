// Package version holds build-time identifying information, overridden
// via -ldflags at release build time.
package version

// Version, Commit and Date are set with -ldflags "-X ..." at build time;
// they default to placeholders for local (go run/go build) use.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
