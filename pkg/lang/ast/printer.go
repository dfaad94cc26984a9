// File: printer.go
// Title: AST Pretty-Printer
// Description: Renders syntax trees as indentation-leveled text, one node
//              per line, and as a single-line canonical form. Both
//              renderings are pure functions of the tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial printer implementation

package ast

import (
	"fmt"
	"strings"
)

// IndentUnit is the indentation added per tree level
const IndentUnit = "    "

// Role classifies a rendered line for styling
type Role int

const (
	// RoleConstruct marks statement and sequence labels
	RoleConstruct Role = iota
	// RoleOperator marks operator symbols of comparisons and binary expressions
	RoleOperator
	// RoleLeaf marks numbers and identifiers
	RoleLeaf
)

// Styler decorates the text of one rendered line. It must not add newlines.
type Styler func(role Role, text string) string

// Indented renders n with one line per node. A Program contributes no line
// of its own; its Statements start at level 0.
func Indented(n Node) string {
	return IndentedStyled(n, nil)
}

// IndentedStyled is Indented with every label passed through style
func IndentedStyled(n Node, style Styler) string {
	var b strings.Builder
	p := &indentPrinter{out: &b, style: style}
	p.print(n, 0)
	return b.String()
}

type indentPrinter struct {
	out   *strings.Builder
	style Styler
}

func (p *indentPrinter) line(level int, role Role, text string) {
	if p.style != nil {
		text = p.style(role, text)
	}
	p.out.WriteString(strings.Repeat(IndentUnit, level))
	p.out.WriteString(text)
	p.out.WriteByte('\n')
}

func (p *indentPrinter) print(n Node, level int) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		p.print(n.Body, level)
	case *Statements:
		p.line(level, RoleConstruct, "Statements")
		for _, st := range n.Items {
			p.print(st, level+1)
		}
	case *IfThen:
		p.line(level, RoleConstruct, "If")
		p.print(n.Condition, level+1)
		p.print(n.Then, level+1)
	case *IfThenElse:
		p.line(level, RoleConstruct, "If-Else")
		p.print(n.Condition, level+1)
		p.print(n.Then, level+1)
		p.print(n.Else, level+1)
	case *While:
		p.line(level, RoleConstruct, "While")
		p.print(n.Condition, level+1)
		p.print(n.Body, level+1)
	case *Assign:
		p.line(level, RoleConstruct, "Assign")
		p.print(n.Target, level+1)
		p.print(n.Value, level+1)
	case *Read:
		p.line(level, RoleConstruct, "Read")
		p.print(n.Target, level+1)
	case *Write:
		p.line(level, RoleConstruct, "Write")
		p.print(n.Value, level+1)
	case *Comparison:
		p.line(level, RoleOperator, string(n.Op))
		p.print(n.Left, level+1)
		p.print(n.Right, level+1)
	case *BinaryExpr:
		p.line(level, RoleOperator, string(n.Op))
		p.print(n.Left, level+1)
		p.print(n.Right, level+1)
	case *NumberLiteral:
		p.line(level, RoleLeaf, n.Text)
	case *Identifier:
		p.line(level, RoleLeaf, n.Text)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

// Canonical renders n on a single line mirroring the grammar. Binary
// expressions are always parenthesized so precedence is explicit.
func Canonical(n Node) string {
	var b strings.Builder
	writeCanonical(&b, n)
	return b.String()
}

func writeCanonical(b *strings.Builder, n Node) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		writeCanonical(b, n.Body)
	case *Statements:
		for i, st := range n.Items {
			if i > 0 {
				b.WriteString("; ")
			}
			writeCanonical(b, st)
		}
	case *IfThen:
		b.WriteString("if ")
		writeCanonical(b, n.Condition)
		b.WriteString(" then ")
		writeCanonical(b, n.Then)
		b.WriteString(" end")
	case *IfThenElse:
		b.WriteString("if ")
		writeCanonical(b, n.Condition)
		b.WriteString(" then ")
		writeCanonical(b, n.Then)
		b.WriteString(" else ")
		writeCanonical(b, n.Else)
		b.WriteString(" end")
	case *While:
		b.WriteString("while ")
		writeCanonical(b, n.Condition)
		b.WriteString(" do ")
		writeCanonical(b, n.Body)
		b.WriteString(" end")
	case *Assign:
		writeCanonical(b, n.Target)
		b.WriteString(":=")
		writeCanonical(b, n.Value)
	case *Read:
		b.WriteString("read ")
		writeCanonical(b, n.Target)
	case *Write:
		b.WriteString("write ")
		writeCanonical(b, n.Value)
	case *Comparison:
		writeCanonical(b, n.Left)
		b.WriteString(string(n.Op))
		writeCanonical(b, n.Right)
	case *BinaryExpr:
		b.WriteByte('(')
		writeCanonical(b, n.Left)
		b.WriteString(string(n.Op))
		writeCanonical(b, n.Right)
		b.WriteByte(')')
	case *NumberLiteral:
		b.WriteString(n.Text)
	case *Identifier:
		b.WriteString(n.Text)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}
