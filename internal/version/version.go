// Package version exposes build metadata injected via -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X .../internal/version.Commit=$(git rev-parse HEAD)"
var (
	Commit    = ""
	BuildTime = ""
)

// String renders the version for --version output. Commit-hash based; stride
// has no semver releases.
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return "dev (unreleased build)"
	}
	return fmt.Sprintf("dev+%s (built %s)", commit, BuildTime)
}
