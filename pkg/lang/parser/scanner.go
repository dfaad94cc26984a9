// File: scanner.go
// Title: While Language Scanner
// Description: Splits source text into tokens on demand. The scanner keeps
//              exactly one token of lookahead, computed eagerly, and applies
//              maximal munch with table-order tie-breaking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial scanner implementation

package parser

import (
	"unicode"
	"unicode/utf8"

	mdwlog "github.com/msto63/wlang/pkg/core/log"
)

// Scanner produces tokens from an input string one at a time
type Scanner struct {
	input  string
	cursor int
	ahead  Token
	logger *mdwlog.Logger
}

// NewScanner creates a scanner and computes the first lookahead. It fails
// with a lexical error if the first token cannot be recognized.
func NewScanner(input string) (*Scanner, error) {
	s := &Scanner{input: input}
	tok, err := s.next()
	if err != nil {
		return nil, err
	}
	s.ahead = tok
	return s, nil
}

// traced makes the scanner log every consumed token when logger has the
// trace level enabled
func (s *Scanner) traced(logger *mdwlog.Logger) *Scanner {
	if logger != nil && logger.IsLevelEnabled(mdwlog.LevelTrace) {
		s.logger = logger
	}
	return s
}

// Lookahead returns the kind of the next unconsumed token, EOF at end of input
func (s *Scanner) Lookahead() Kind {
	return s.ahead.Kind
}

// Peek returns the next unconsumed token without consuming it
func (s *Scanner) Peek() Token {
	return s.ahead
}

// Consume returns the lookahead if its kind is one of expected and
// advances to the following token. Otherwise it returns a syntax error
// naming the expected kinds.
func (s *Scanner) Consume(expected ...Kind) (Token, error) {
	tok := s.ahead
	if !containsKind(expected, tok.Kind) {
		return Token{}, s.Unexpected(expected...)
	}

	next, err := s.next()
	if err != nil {
		return Token{}, err
	}
	s.ahead = next

	if s.logger != nil {
		s.logger.Trace("Token consumed", mdwlog.Fields{
			"kind":   tok.Kind.String(),
			"lexeme": tok.Lexeme,
			"offset": tok.Offset,
		})
	}
	return tok, nil
}

// Unexpected builds the syntax error for the current lookahead
func (s *Scanner) Unexpected(expected ...Kind) *Error {
	return NewSyntaxError(s.input, s.ahead.Offset, s.ahead.Kind, expected...)
}

// next skips whitespace and recognizes one token at the cursor
func (s *Scanner) next() (Token, error) {
	s.skipWhitespace()
	if s.cursor >= len(s.input) {
		return Token{Kind: EOF, Offset: len(s.input)}, nil
	}

	rest := s.input[s.cursor:]
	best, longest := -1, 0
	for i := range table {
		loc := table[i].re.FindStringIndex(rest)
		if loc != nil && loc[1] > longest {
			best, longest = i, loc[1]
		}
	}
	if best < 0 {
		return Token{}, NewLexicalError(s.input, s.cursor)
	}

	tok := Token{Kind: table[best].Kind, Offset: s.cursor}
	if tok.Kind.HasLexeme() {
		tok.Lexeme = rest[:longest]
	}
	s.cursor += longest
	return tok, nil
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.cursor:])
		if !IsWhitespace(r) {
			return
		}
		s.cursor += size
	}
}

// IsWhitespace reports whether r separates tokens: Unicode white space plus
// the ASCII separators U+001C to U+001F
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}
