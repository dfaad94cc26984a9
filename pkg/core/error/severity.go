// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for structured errors. The logger
//              uses it to pick the level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect the result
	SeverityLow Severity = iota

	// SeverityMedium indicates an error caused by user input
	SeverityMedium

	// SeverityHigh indicates an error that prevents the tool from working
	SeverityHigh

	// SeverityCritical indicates an internal inconsistency
	SeverityCritical
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true for severities that indicate a defect rather than bad input
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeInvalidTree, CodeBackendMismatch:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeIO:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeTrailingInput:
		return SeverityLow
	case CodeInputTooLarge, CodeInvalidInput:
		return SeverityMedium
	default:
		return SeverityMedium
	}
}
