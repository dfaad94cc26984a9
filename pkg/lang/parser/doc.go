// File: doc.go
// Title: While Language Parser Package Documentation
// Description: Scanner and recursive descent parser for the while teaching
//              language. Converts program text into syntax trees and reports
//              the first lexical or syntax error with its position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

/*
Package parser turns while language source text into an *ast.Program.

It includes:

  • The ordered Token Table and the Kind enumeration
  • A Scanner with one token of lookahead and maximal munch matching
  • A recursive descent parser with one procedure per nonterminal
  • Diagnostics (*Error) with the exact one-line wording of the language

Tokens are recognized by trying every Token Table entry at the cursor and
keeping the longest match; on equal length the earlier entry wins, so
"whilex" is a single ID while "<=" is LEQ. Whitespace between tokens is
skipped.

Parsing stops at the first error; there is no recovery:

	prog, err := parser.Parse("read n; write n*n")
	if err != nil {
		fmt.Println(err) // e.g. syntax error: token in [ID, LPAR, NUM] expected but EOF found
	}

A Parser holds no per-parse state and may be shared between goroutines.
*/
package parser
