// File: token.go
// Title: Token Kinds and Token Table
// Description: Defines the token kinds of the while language and the
//              ordered token table used by the scanner. Table order breaks
//              ties between equally long matches, which is how keywords win
//              over identifiers of the same text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial token definitions

package parser

import (
	"fmt"
	"regexp"
)

// Kind identifies the category of a token
type Kind int

const (
	// EOF is the end-of-input sentinel. It is never produced by the token table.
	EOF Kind = iota

	// Keywords
	DO
	ELSE
	END
	IF
	THEN
	WHILE
	READ
	WRITE

	// Punctuation and operators
	SEM  // ;
	BEC  // :=
	LESS // <
	EQ   // =
	GRTR // >
	LEQ  // <=
	NEQ  // !=
	GEQ  // >=
	ADD  // +
	SUB  // -
	MUL  // *
	DIV  // /
	LPAR // (
	RPAR // )

	// Carriers of text
	NUM
	ID
)

var kindNames = [...]string{
	EOF:   "EOF",
	DO:    "DO",
	ELSE:  "ELSE",
	END:   "END",
	IF:    "IF",
	THEN:  "THEN",
	WHILE: "WHILE",
	READ:  "READ",
	WRITE: "WRITE",
	SEM:   "SEM",
	BEC:   "BEC",
	LESS:  "LESS",
	EQ:    "EQ",
	GRTR:  "GRTR",
	LEQ:   "LEQ",
	NEQ:   "NEQ",
	GEQ:   "GEQ",
	ADD:   "ADD",
	SUB:   "SUB",
	MUL:   "MUL",
	DIV:   "DIV",
	LPAR:  "LPAR",
	RPAR:  "RPAR",
	NUM:   "NUM",
	ID:    "ID",
}

// String returns the diagnostic name of the kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// HasLexeme reports whether tokens of this kind retain their matched text
func (k Kind) HasLexeme() bool {
	return k == NUM || k == ID
}

// Token is one lexical unit. Lexeme is set only for NUM and ID tokens.
type Token struct {
	Kind   Kind
	Lexeme string
	Offset int // byte offset of the first character in the input
}

// String returns the token as printed by token dumps: the kind, followed by
// the lexeme for NUM and ID tokens
func (t Token) String() string {
	if t.Kind.HasLexeme() {
		return t.Kind.String() + " " + t.Lexeme
	}
	return t.Kind.String()
}

// Rule is one entry of the token table
type Rule struct {
	Kind    Kind
	Pattern string
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// rules is the token table. Order matters: on equal match length the
// earlier rule wins.
var rules = []Rule{
	{DO, `do`},
	{ELSE, `else`},
	{END, `end`},
	{IF, `if`},
	{THEN, `then`},
	{WHILE, `while`},
	{READ, `read`},
	{WRITE, `write`},
	{SEM, `;`},
	{BEC, `:=`},
	{LESS, `<`},
	{EQ, `=`},
	{GRTR, `>`},
	{LEQ, `<=`},
	{NEQ, `!=`},
	{GEQ, `>=`},
	{ADD, `\+`},
	{SUB, `-`},
	{MUL, `\*`},
	{DIV, `/`},
	{LPAR, `\(`},
	{RPAR, `\)`},
	{NUM, `[0-9]+`},
	{ID, `[a-z]+`},
}

var table = compileRules(rules)

func compileRules(rs []Rule) []compiledRule {
	out := make([]compiledRule, len(rs))
	for i, r := range rs {
		out[i] = compiledRule{Rule: r, re: regexp.MustCompile(`^(?:` + r.Pattern + `)`)}
	}
	return out
}

// TokenTable returns a copy of the ordered token table
func TokenTable() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Keywords returns the reserved words of the language
func Keywords() []string {
	return []string{"do", "else", "end", "if", "then", "while", "read", "write"}
}

// IsKeyword reports whether s is a reserved word
func IsKeyword(s string) bool {
	for _, kw := range Keywords() {
		if kw == s {
			return true
		}
	}
	return false
}
