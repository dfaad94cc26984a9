// File: crosscheck.go
// Title: Back End Cross-Check
// Description: Runs both back ends on the same input and compares their
//              results. The back ends agree when both fail, or when both
//              succeed with identical renderings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial cross-check

package frontend

import (
	"context"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
	mdwlog "github.com/msto63/wlang/pkg/core/log"
	"github.com/msto63/wlang/pkg/lang/ast"
)

// Outcome is the result of one back end in a cross-check
type Outcome struct {
	Backend   Backend
	Canonical string
	Indented  string
	Err       error
}

// OK reports whether the back end accepted the input
func (o *Outcome) OK() bool {
	return o.Err == nil
}

// CheckResult holds both outcomes of a cross-check
type CheckResult struct {
	Descent    *Outcome
	Participle *Outcome
}

// Agree reports whether both back ends produced the same verdict and tree
func (r *CheckResult) Agree() bool {
	if !r.Descent.OK() || !r.Participle.OK() {
		return r.Descent.OK() == r.Participle.OK()
	}
	return r.Descent.Canonical == r.Participle.Canonical &&
		r.Descent.Indented == r.Participle.Indented
}

// CrossCheck parses input with both back ends. The returned error is
// non-nil only on disagreement and carries CodeBackendMismatch.
func (e *Engine) CrossCheck(ctx context.Context, input string) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &CheckResult{
		Descent:    e.outcome(ctx, BackendDescent, input),
		Participle: e.outcome(ctx, BackendParticiple, input),
	}

	if result.Agree() {
		e.logger.Debug("Back ends agree", mdwlog.Fields{"accepted": result.Descent.OK()})
		return result, nil
	}

	err := mdwerror.New("back ends disagree").
		WithCode(mdwerror.CodeBackendMismatch).
		WithOperation("frontend.CrossCheck").
		WithDetail("descent_ok", result.Descent.OK()).
		WithDetail("participle_ok", result.Participle.OK())
	e.logger.LogError(err)
	return result, err
}

func (e *Engine) outcome(ctx context.Context, backend Backend, input string) *Outcome {
	out := &Outcome{Backend: backend}
	res, err := e.ParseWith(ctx, backend, input)
	if err != nil {
		out.Err = err
		return out
	}
	out.Canonical = ast.Canonical(res.Program)
	out.Indented = ast.Indented(res.Program)
	return out
}
