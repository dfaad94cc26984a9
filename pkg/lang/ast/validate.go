// File: validate.go
// Title: AST Structural Validation
// Description: Checks that a tree satisfies the structural invariants
//              every parser-built tree holds, for trees assembled by hand.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial validation

package ast

import (
	"fmt"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
)

// Validate returns an error describing the first invariant violation
// found in the tree rooted at n, or nil if the tree is well formed.
func Validate(n Node) error {
	v := &validator{}
	v.check(n, "program")
	return v.err
}

type validator struct {
	err error
}

func (v *validator) fail(path, format string, args ...interface{}) {
	if v.err != nil {
		return
	}
	v.err = mdwerror.Newf("invalid tree at %s: %s", path, fmt.Sprintf(format, args...)).
		WithCode(mdwerror.CodeInvalidTree).
		WithOperation("ast.Validate").
		WithDetail("path", path)
}

func (v *validator) check(n Node, path string) {
	if v.err != nil {
		return
	}
	if isNil(n) {
		v.fail(path, "missing node")
		return
	}

	switch n := n.(type) {
	case *Program:
		v.check(n.Body, path+".body")
	case *Statements:
		if len(n.Items) == 0 {
			v.fail(path, "empty statement sequence")
			return
		}
		for i, st := range n.Items {
			v.check(st, fmt.Sprintf("%s[%d]", path, i))
		}
	case *IfThen:
		v.check(n.Condition, path+".condition")
		v.check(n.Then, path+".then")
	case *IfThenElse:
		v.check(n.Condition, path+".condition")
		v.check(n.Then, path+".then")
		v.check(n.Else, path+".else")
	case *While:
		v.check(n.Condition, path+".condition")
		v.check(n.Body, path+".body")
	case *Assign:
		v.check(n.Target, path+".target")
		v.check(n.Value, path+".value")
	case *Read:
		v.check(n.Target, path+".target")
	case *Write:
		v.check(n.Value, path+".value")
	case *Comparison:
		if !n.Op.Valid() {
			v.fail(path, "unknown relational operator %q", n.Op)
			return
		}
		v.check(n.Left, path+".left")
		v.check(n.Right, path+".right")
	case *BinaryExpr:
		if !n.Op.Valid() {
			v.fail(path, "unknown arithmetic operator %q", n.Op)
			return
		}
		v.check(n.Left, path+".left")
		v.check(n.Right, path+".right")
	case *NumberLiteral:
		if !isDigits(n.Text) {
			v.fail(path, "number %q is not a non-empty digit string", n.Text)
		}
	case *Identifier:
		if !isLower(n.Text) {
			v.fail(path, "identifier %q is not a non-empty lowercase letter string", n.Text)
		}
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLower(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
