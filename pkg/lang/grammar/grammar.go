// File: grammar.go
// Title: Declarative While Language Grammar
// Description: Describes the while language as annotated Go structs for
//              participle. Keywords are matched by literal value against
//              identifier tokens, which keeps the lexer a plain
//              longest-match scanner over letters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial grammar

package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// whitespace mirrors unicode.IsSpace
var whileLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Num", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Op", Pattern: `:=|<=|>=|!=|[-+*/<>=;()]`},
	{Name: "Whitespace", Pattern: `[\s\v\x1c-\x1f\x{85}\p{Zs}\x{2028}\x{2029}]+`},
})

type program struct {
	Pos  lexer.Position
	Body *statements `@@`
}

type statements struct {
	Head *statement   `@@`
	Tail []*statement `( ";" @@ )*`
}

type statement struct {
	If     *ifStmt     `  @@`
	While  *whileStmt  `| @@`
	Read   *readStmt   `| @@`
	Write  *writeStmt  `| @@`
	Assign *assignStmt `| @@`
}

type ifStmt struct {
	Cond *comparison `"if" @@`
	Then *statements `"then" @@`
	Else *statements `( "else" @@ )? "end"`
}

type whileStmt struct {
	Cond *comparison `"while" @@`
	Body *statements `"do" @@ "end"`
}

type readStmt struct {
	Pos    lexer.Position
	Target string `"read" @Ident`
}

type writeStmt struct {
	Value *expression `"write" @@`
}

type assignStmt struct {
	Pos    lexer.Position
	Target string      `@Ident ":="`
	Value  *expression `@@`
}

type comparison struct {
	Left  *expression `@@`
	Op    string      `@( "<=" | ">=" | "!=" | "<" | ">" | "=" )`
	Right *expression `@@`
}

type expression struct {
	Head *term    `@@`
	Tail []*opTerm `@@*`
}

type opTerm struct {
	Op   string `@( "+" | "-" )`
	Term *term  `@@`
}

type term struct {
	Head *factor     `@@`
	Tail []*opFactor `@@*`
}

type opFactor struct {
	Op     string  `@( "*" | "/" )`
	Factor *factor `@@`
}

type factor struct {
	Pos    lexer.Position
	Sub    *expression `  "(" @@ ")"`
	Number *string     `| @Num`
	Ident  *string     `| @Ident`
}
