// File: convert.go
// Title: Grammar To AST Conversion
// Description: Lowers participle parse results into the shared syntax
//              tree, folding operator chains to the left and rejecting
//              reserved words used as identifiers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial conversion

package grammar

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
	"github.com/msto63/wlang/pkg/lang/ast"
	"github.com/msto63/wlang/pkg/lang/parser"
)

type converter struct{}

func (c converter) program(p *program) (*ast.Program, error) {
	body, err := c.statements(p.Body)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Body: body}, nil
}

func (c converter) statements(s *statements) (*ast.Statements, error) {
	items := make([]ast.Statement, 0, 1+len(s.Tail))
	for _, st := range append([]*statement{s.Head}, s.Tail...) {
		node, err := c.statement(st)
		if err != nil {
			return nil, err
		}
		items = append(items, node)
	}
	return &ast.Statements{Items: items}, nil
}

func (c converter) statement(s *statement) (ast.Statement, error) {
	switch {
	case s.If != nil:
		return c.ifStatement(s.If)
	case s.While != nil:
		cond, err := c.comparison(s.While.Cond)
		if err != nil {
			return nil, err
		}
		body, err := c.statements(s.While.Body)
		if err != nil {
			return nil, err
		}
		return &ast.While{Condition: cond, Body: body}, nil
	case s.Read != nil:
		target, err := c.identifier(s.Read.Target, s.Read.Pos)
		if err != nil {
			return nil, err
		}
		return &ast.Read{Target: target}, nil
	case s.Write != nil:
		value, err := c.expression(s.Write.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Write{Value: value}, nil
	case s.Assign != nil:
		target, err := c.identifier(s.Assign.Target, s.Assign.Pos)
		if err != nil {
			return nil, err
		}
		value, err := c.expression(s.Assign.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: target, Value: value}, nil
	default:
		return nil, mdwerror.New("empty statement alternative").WithCode(mdwerror.CodeInternal)
	}
}

func (c converter) ifStatement(s *ifStmt) (ast.Statement, error) {
	cond, err := c.comparison(s.Cond)
	if err != nil {
		return nil, err
	}
	then, err := c.statements(s.Then)
	if err != nil {
		return nil, err
	}
	if s.Else == nil {
		return &ast.IfThen{Condition: cond, Then: then}, nil
	}
	els, err := c.statements(s.Else)
	if err != nil {
		return nil, err
	}
	return &ast.IfThenElse{Condition: cond, Then: then, Else: els}, nil
}

func (c converter) comparison(cmp *comparison) (*ast.Comparison, error) {
	left, err := c.expression(cmp.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.expression(cmp.Right)
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{Left: left, Op: ast.RelOp(cmp.Op), Right: right}, nil
}

func (c converter) expression(e *expression) (ast.Expression, error) {
	left, err := c.term(e.Head)
	if err != nil {
		return nil, err
	}
	for _, tail := range e.Tail {
		right, err := c.term(tail.Term)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: ast.ArithOp(tail.Op), Right: right}
	}
	return left, nil
}

func (c converter) term(t *term) (ast.Expression, error) {
	left, err := c.factor(t.Head)
	if err != nil {
		return nil, err
	}
	for _, tail := range t.Tail {
		right, err := c.factor(tail.Factor)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: ast.ArithOp(tail.Op), Right: right}
	}
	return left, nil
}

func (c converter) factor(f *factor) (ast.Expression, error) {
	switch {
	case f.Sub != nil:
		return c.expression(f.Sub)
	case f.Number != nil:
		return &ast.NumberLiteral{Text: *f.Number}, nil
	case f.Ident != nil:
		id, err := c.identifier(*f.Ident, f.Pos)
		if err != nil {
			return nil, err
		}
		return id, nil
	default:
		return nil, mdwerror.New("empty factor alternative").WithCode(mdwerror.CodeInternal)
	}
}

func (c converter) identifier(text string, pos lexer.Position) (*ast.Identifier, error) {
	if parser.IsKeyword(text) {
		return nil, &Error{
			Message: fmt.Sprintf("reserved word %q used as identifier", text),
			Offset:  pos.Offset,
			Line:    pos.Line,
			Column:  pos.Column,
		}
	}
	return &ast.Identifier{Text: text}, nil
}
