// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across wlang so that front end
//              diagnostics, configuration problems and I/O failures can be
//              classified and logged consistently.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial code set for the language front end

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIO           Code = "IO_ERROR"

	// Front end
	CodeLexical         Code = "LEXICAL"
	CodeSyntax          Code = "SYNTAX"
	CodeTrailingInput   Code = "TRAILING_INPUT"
	CodeInputTooLarge   Code = "INPUT_TOO_LARGE"
	CodeInvalidTree     Code = "INVALID_TREE"
	CodeBackendMismatch Code = "BACKEND_MISMATCH"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeIO,
		CodeLexical, CodeSyntax, CodeTrailingInput, CodeInputTooLarge, CodeInvalidTree, CodeBackendMismatch,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeTrailingInput, CodeInputTooLarge, CodeInvalidTree, CodeBackendMismatch:
		return "frontend"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeIO:
		return "io"
	default:
		return "generic"
	}
}
