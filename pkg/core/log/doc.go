// Package log provides structured logging for wlang.
//
// Package: log
// Title: wlang Structured Logging
// Description: Structured logger with levels, contextual fields, several
//              output formats and integration with the structured error
//              package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Features:
// - JSON, text and logfmt formats
// - Levels trace to fatal plus audit entries that are always written
// - Immutable derivation with WithField, WithFields, WithName and WithCorrelationID
// - LogError picks the level from the severity of structured errors
// - Timers that log the duration of an operation
//
// Usage:
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//	})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
package log
