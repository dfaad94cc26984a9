// File: parser.go
// Title: Participle Front End
// Description: Second front end for the while language, generated from
//              the declarative grammar. It produces the same syntax trees
//              as the hand-written recursive descent parser and serves as
//              a cross-check for it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial participle front end

package grammar

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	mdwerror "github.com/msto63/wlang/pkg/core/error"
	mdwlog "github.com/msto63/wlang/pkg/core/log"
	"github.com/msto63/wlang/pkg/lang/ast"
	"github.com/msto63/wlang/pkg/lang/parser"
)

// Error is a syntax error reported by the participle front end. Lexical
// errors are reported as *parser.Error so both front ends word them alike.
type Error struct {
	Message string
	Offset  int
	Line    int
	Column  int
	cause   error
}

// Error renders the diagnostic
func (e *Error) Error() string {
	return fmt.Sprintf("syntax error: %d:%d: %s", e.Line, e.Column, e.Message)
}

// Unwrap returns the participle error, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Code maps the diagnostic onto the shared error code set
func (e *Error) Code() mdwerror.Code {
	return mdwerror.CodeSyntax
}

// Options configures the participle front end
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// Parser parses while language programs with participle
type Parser struct {
	logger  *mdwlog.Logger
	options Options
	parser  *participle.Parser[program]
}

// New builds the grammar and returns a parser
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = parser.DefaultMaxInputLength
	}
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.New("max input length must not be negative").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("grammar.New")
	}

	built, err := participle.Build[program](
		participle.Lexer(whileLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(3),
	)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to build grammar").
			WithCode(mdwerror.CodeInternal).
			WithOperation("grammar.New")
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "participle-parser"),
		options: opts,
		parser:  built,
	}, nil
}

// Parse parses a complete program
func (p *Parser) Parse(input string) (*ast.Program, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, mdwerror.Newf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength).
			WithCode(mdwerror.CodeInputTooLarge).
			WithOperation("grammar.Parse")
	}

	p.logger.Debug("Starting parse", mdwlog.Fields{"input_length": len(input)})

	raw, err := p.parser.ParseString("", input)
	if err != nil {
		err = classify(input, err)
		p.logger.Debug("Parse failed", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}

	prog, err := converter{}.program(raw)
	if err != nil {
		p.logger.Debug("Conversion failed", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}

	p.logger.Debug("Parse completed", mdwlog.Fields{"statements": len(prog.Body.Items)})
	return prog, nil
}

// EBNF returns the grammar in EBNF notation
func (p *Parser) EBNF() string {
	return p.parser.String()
}

// Parse parses input with default options
func Parse(input string) (*ast.Program, error) {
	p, err := New(Options{Logger: mdwlog.Discard()})
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

func classify(input string, err error) error {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return parser.NewLexicalError(input, lexErr.Pos.Offset)
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return &Error{
			Message: perr.Message(),
			Offset:  pos.Offset,
			Line:    pos.Line,
			Column:  pos.Column,
			cause:   err,
		}
	}

	return &Error{Message: err.Error(), cause: err}
}
