// Package buildinfo carries the version stamped into release binaries.
//
// Release builds set the variables through ldflags:
//
//	go build -ldflags "-X github.com/mindweave/mindweave/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/mindweave/mindweave/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/mindweave/mindweave/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Defaults apply to plain `go build` binaries without ldflags.
var (
	// Version is the semantic version, e.g. "v1.2.3".
	Version = "dev"

	// Commit is the git commit SHA of the build.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String formats the build information for logs and diagnostics.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
