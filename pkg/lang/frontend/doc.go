// File: doc.go
// Title: Front End Package Documentation
// Description: Engine combining both parser back ends with logging,
//              caching and output rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine implementation

/*
Package frontend is the entry point used by the wlang command.

An Engine selects a back end ("descent" or "participle"), validates every
tree it returns, logs each run under its own correlation ID and optionally
memoizes accepted programs. Render produces the indented, canonical, JSON
and YAML output formats; CrossCheck runs both back ends and reports whether
they agree.

	engine, err := frontend.NewEngine(frontend.Options{Backend: frontend.BackendDescent})
	res, err := engine.Parse(ctx, source)
	text, err := frontend.Render(res.Program, frontend.FormatIndented, nil)
*/
package frontend
