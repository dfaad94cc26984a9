// File: walk.go
// Title: AST Traversal
// Description: Depth-first traversal over syntax trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial traversal helpers

package ast

// Children returns the direct children of n in source order. Absent
// (nil) children are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(children ...Node) {
		for _, c := range children {
			if !isNil(c) {
				out = append(out, c)
			}
		}
	}

	switch n := n.(type) {
	case *Program:
		add(n.Body)
	case *Statements:
		for _, st := range n.Items {
			add(st)
		}
	case *IfThen:
		add(n.Condition, n.Then)
	case *IfThenElse:
		add(n.Condition, n.Then, n.Else)
	case *While:
		add(n.Condition, n.Body)
	case *Assign:
		add(n.Target, n.Value)
	case *Read:
		add(n.Target)
	case *Write:
		add(n.Value)
	case *Comparison:
		add(n.Left, n.Right)
	case *BinaryExpr:
		add(n.Left, n.Right)
	}
	return out
}

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node. If f returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Count returns the number of nodes in the tree rooted at n
func Count(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}

// isNil reports whether n is nil or a typed nil pointer
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Program:
		return n == nil
	case *Statements:
		return n == nil
	case *IfThen:
		return n == nil
	case *IfThenElse:
		return n == nil
	case *While:
		return n == nil
	case *Assign:
		return n == nil
	case *Read:
		return n == nil
	case *Write:
		return n == nil
	case *Comparison:
		return n == nil
	case *BinaryExpr:
		return n == nil
	case *NumberLiteral:
		return n == nil
	case *Identifier:
		return n == nil
	}
	return false
}
