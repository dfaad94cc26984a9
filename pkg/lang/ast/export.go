// File: export.go
// Title: AST Export
// Description: Converts syntax trees into a generic, serializable shape
//              used for JSON and YAML output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial export support

package ast

// Tree is the serializable form of a node
type Tree struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*Tree `json:"children,omitempty" yaml:"children,omitempty"`
}

// Export converts the tree rooted at n. Operators and leaf texts are
// carried in Text; a nil node exports as nil.
func Export(n Node) *Tree {
	if isNil(n) {
		return nil
	}

	t := &Tree{Kind: KindName(n)}
	switch n := n.(type) {
	case *Comparison:
		t.Text = string(n.Op)
	case *BinaryExpr:
		t.Text = string(n.Op)
	case *NumberLiteral:
		t.Text = n.Text
	case *Identifier:
		t.Text = n.Text
	}

	for _, c := range Children(n) {
		t.Children = append(t.Children, Export(c))
	}
	return t
}

// KindName returns the variant name of n
func KindName(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *Statements:
		return "Statements"
	case *IfThen:
		return "IfThen"
	case *IfThenElse:
		return "IfThenElse"
	case *While:
		return "While"
	case *Assign:
		return "Assign"
	case *Read:
		return "Read"
	case *Write:
		return "Write"
	case *Comparison:
		return "Comparison"
	case *BinaryExpr:
		return "BinaryExpr"
	case *NumberLiteral:
		return "NumberLiteral"
	case *Identifier:
		return "Identifier"
	default:
		return "Unknown"
	}
}
