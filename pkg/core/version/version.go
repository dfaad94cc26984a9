// ============================================================================
// wlang - Front end for the while teaching language
// ============================================================================
//
// Package:     version
// Description: Central version information for the tool and its front ends
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Tool version
	Tool = "0.1.0"

	// Front end versions; they change whenever the accepted language or the
	// tree shape changes
	Descent    = "0.1.0"
	Participle = "0.1.0"
)

// Build information, overridden with -ldflags at release time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// BackendVersion returns the version for a given front end name
func BackendVersion(name string) string {
	switch name {
	case "descent":
		return Descent
	case "participle":
		return Participle
	default:
		return Tool
	}
}
