// File: nodes.go
// Title: AST Node Definitions
// Description: Defines the node variants of the while language syntax tree.
//              The variant set is closed: only types in this package
//              implement Node, so a type switch over the variants listed
//              here is exhaustive.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST node definitions

package ast

// Node is implemented by every tree node
type Node interface {
	node()
}

// Statement is a node that may appear in a Statements sequence
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that yields a value
type Expression interface {
	Node
	expressionNode()
}

// RelOp is a relational operator of a Comparison
type RelOp string

// Relational operators
const (
	Less      RelOp = "<"
	Equal     RelOp = "="
	Greater   RelOp = ">"
	LessEq    RelOp = "<="
	NotEqual  RelOp = "!="
	GreaterEq RelOp = ">="
)

// Valid reports whether o is one of the six relational operators
func (o RelOp) Valid() bool {
	switch o {
	case Less, Equal, Greater, LessEq, NotEqual, GreaterEq:
		return true
	default:
		return false
	}
}

// ArithOp is an arithmetic operator of a BinaryExpr
type ArithOp string

// Arithmetic operators
const (
	Add ArithOp = "+"
	Sub ArithOp = "-"
	Mul ArithOp = "*"
	Div ArithOp = "/"
)

// Valid reports whether o is one of the four arithmetic operators
func (o ArithOp) Valid() bool {
	switch o {
	case Add, Sub, Mul, Div:
		return true
	default:
		return false
	}
}

// Program is the root of every tree
type Program struct {
	Body *Statements
}

// Statements is a non-empty sequence of statements separated by ';'
type Statements struct {
	Items []Statement
}

// IfThen is an if statement without else branch
type IfThen struct {
	Condition *Comparison
	Then      *Statements
}

// IfThenElse is an if statement with else branch
type IfThenElse struct {
	Condition *Comparison
	Then      *Statements
	Else      *Statements
}

// While is a pre-tested loop
type While struct {
	Condition *Comparison
	Body      *Statements
}

// Assign stores the value of an expression in a variable
type Assign struct {
	Target *Identifier
	Value  Expression
}

// Read reads a number into a variable
type Read struct {
	Target *Identifier
}

// Write prints the value of an expression
type Write struct {
	Value Expression
}

// Comparison is exactly one relational test between two expressions
type Comparison struct {
	Left  Expression
	Op    RelOp
	Right Expression
}

// BinaryExpr is an arithmetic operation
type BinaryExpr struct {
	Left  Expression
	Op    ArithOp
	Right Expression
}

// NumberLiteral is a non-empty string of decimal digits
type NumberLiteral struct {
	Text string
}

// Identifier is a non-empty string of lowercase letters
type Identifier struct {
	Text string
}

func (*Program) node()       {}
func (*Statements) node()    {}
func (*IfThen) node()        {}
func (*IfThenElse) node()    {}
func (*While) node()         {}
func (*Assign) node()        {}
func (*Read) node()          {}
func (*Write) node()         {}
func (*Comparison) node()    {}
func (*BinaryExpr) node()    {}
func (*NumberLiteral) node() {}
func (*Identifier) node()    {}

func (*IfThen) statementNode()     {}
func (*IfThenElse) statementNode() {}
func (*While) statementNode()      {}
func (*Assign) statementNode()     {}
func (*Read) statementNode()       {}
func (*Write) statementNode()      {}

func (*BinaryExpr) expressionNode()    {}
func (*NumberLiteral) expressionNode() {}
func (*Identifier) expressionNode()    {}
