// SPDX-License-Identifier: MIT

// Package version carries build information injected with -ldflags, e.g.
//
//	-X github.com/ManuGH/epgclean/internal/version.Version=v1.2.0
package version

import "fmt"

var (
	// Version is the release tag of the build.
	Version = "dev"

	// Commit is the git short hash of the build.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String renders the one-line version banner.
func String() string {
	return fmt.Sprintf("epgclean %s (commit: %s, built: %s)", Version, Commit, Date)
}
