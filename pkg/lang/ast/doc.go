// File: doc.go
// Title: While Language AST Package Documentation
// Description: Syntax tree node types, printers and traversal helpers for
//              while language programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST implementation

/*
Package ast defines the syntax tree of while language programs.

The node set is closed: Statement and Expression are sealed interfaces
implemented only by the types of this package. Trees are plain values; the
printers and Inspect never modify them, so one tree can be rendered any
number of times and shared between goroutines.

Renderings:

  • Indented: one node per line, four spaces per level, the external format
  • IndentedStyled: Indented with a Styler hook per line (used for colour)
  • Canonical: a single line that parses back to the same tree

Validate checks the structural invariants of a tree, Export converts it into
a generic Tree for JSON and YAML output.
*/
package ast
