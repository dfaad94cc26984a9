// File: errors.go
// Title: Front End Diagnostics
// Description: Defines the error value returned for lexical errors,
//              syntax errors and trailing input. The message wording is
//              stable and shared by every front end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial diagnostics

package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
)

// ErrorKind classifies a diagnostic
type ErrorKind int

const (
	// LexicalError means no table entry matches at the cursor
	LexicalError ErrorKind = iota
	// SyntaxError means the lookahead is not in the expected set
	SyntaxError
	// TrailingInputError means a complete program was followed by more tokens
	TrailingInputError
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case SyntaxError:
		return "syntax"
	case TrailingInputError:
		return "trailing-input"
	default:
		return "unknown"
	}
}

// Error is a front end diagnostic. Parsing stops at the first one.
type Error struct {
	Kind ErrorKind

	// Remaining is the unconsumed input at the failure point (lexical errors)
	Remaining string

	// Expected is sorted by name (syntax errors)
	Expected []Kind

	// Found is the offending lookahead (syntax and trailing input errors)
	Found Kind

	Offset int
	Line   int
	Column int
}

// Error renders the diagnostic
func (e *Error) Error() string {
	switch e.Kind {
	case LexicalError:
		return fmt.Sprintf("lexical error: no token found at the start of %s", e.Remaining)
	case TrailingInputError:
		return fmt.Sprintf("syntax error: end of input expected but token %s found", e.Found)
	default:
		names := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			names[i] = k.String()
		}
		return fmt.Sprintf("syntax error: token in [%s] expected but %s found",
			strings.Join(names, ", "), e.Found)
	}
}

// Code maps the diagnostic onto the shared error code set
func (e *Error) Code() mdwerror.Code {
	switch e.Kind {
	case LexicalError:
		return mdwerror.CodeLexical
	case TrailingInputError:
		return mdwerror.CodeTrailingInput
	default:
		return mdwerror.CodeSyntax
	}
}

// NewLexicalError builds a lexical error for input at byte offset
func NewLexicalError(input string, offset int) *Error {
	line, col := Position(input, offset)
	return &Error{
		Kind:      LexicalError,
		Remaining: input[offset:],
		Offset:    offset,
		Line:      line,
		Column:    col,
	}
}

// NewSyntaxError builds a syntax error. The expected set is deduplicated
// and sorted by name.
func NewSyntaxError(input string, offset int, found Kind, expected ...Kind) *Error {
	line, col := Position(input, offset)
	return &Error{
		Kind:     SyntaxError,
		Expected: sortKinds(expected),
		Found:    found,
		Offset:   offset,
		Line:     line,
		Column:   col,
	}
}

// NewTrailingInputError builds the error for tokens after a complete program
func NewTrailingInputError(input string, offset int, found Kind) *Error {
	line, col := Position(input, offset)
	return &Error{
		Kind:   TrailingInputError,
		Found:  found,
		Offset: offset,
		Line:   line,
		Column: col,
	}
}

// Position converts a byte offset into a 1-based line and column. The
// column counts runes.
func Position(input string, offset int) (line, column int) {
	if offset > len(input) {
		offset = len(input)
	}
	prefix := input[:offset]
	line = strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	column = utf8.RuneCountInString(prefix[lineStart:]) + 1
	return line, column
}

func sortKinds(kinds []Kind) []Kind {
	seen := make(map[Kind]bool, len(kinds))
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}
