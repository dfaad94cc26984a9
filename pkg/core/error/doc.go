// Package error provides the structured error type used across wlang.
//
// Package: error
// Title: wlang Structured Errors
// Description: Errors carrying a code, a severity, details and the failing
//              operation. Wrap keeps the code of front end diagnostics so
//              callers can test for it with HasCode.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
package error
