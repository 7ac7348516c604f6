package version

import "fmt"

// Build metadata, overridable with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/swbparts/internal/version.Version=1.0.0"
var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	// Author and Year appear in the banner copyright line and PDF metadata
	Author = "Alexius Academia"
	Year   = "2025"
)

// String returns the version line printed by the version command
func String() string {
	return fmt.Sprintf("swbparts v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}

// Copyright returns the copyright notice shown under the banner
func Copyright() string {
	return fmt.Sprintf("Copyright © %s %s. All rights reserved.", Year, Author)
}
