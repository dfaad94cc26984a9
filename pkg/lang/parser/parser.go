// File: parser.go
// Title: While Language Recursive Descent Parser
// Description: Builds syntax trees from while language source using one
//              procedure per grammar nonterminal and a single token of
//              lookahead. All per-parse state lives in a context value, so
//              a Parser may be used from several goroutines at once.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	mdwerror "github.com/msto63/wlang/pkg/core/error"
	mdwlog "github.com/msto63/wlang/pkg/core/log"
	"github.com/msto63/wlang/pkg/lang/ast"
)

// DefaultMaxInputLength bounds the input accepted when Options leaves it unset
const DefaultMaxInputLength = 1 << 20

// Parser parses while language programs
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int
}

// New creates a new parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.New("max input length must not be negative").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "descent-parser"),
		options: opts,
	}, nil
}

// Parse parses a complete program. On failure the returned error is a
// *Error for diagnostics, or a structured error for oversized input.
func (p *Parser) Parse(input string) (*ast.Program, error) {
	if err := p.checkLength(input); err != nil {
		return nil, err
	}

	p.logger.Debug("Starting parse", mdwlog.Fields{"input_length": len(input)})

	prog, err := parseProgram(input, p.logger)
	if err != nil {
		p.logger.Debug("Parse failed", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}

	p.logger.Debug("Parse completed", mdwlog.Fields{
		"statements": len(prog.Body.Items),
		"nodes":      ast.Count(prog),
	})
	return prog, nil
}

// Tokenize scans the whole input and returns its tokens, excluding EOF
func (p *Parser) Tokenize(input string) ([]Token, error) {
	if err := p.checkLength(input); err != nil {
		return nil, err
	}
	return tokenize(input, p.logger)
}

func (p *Parser) checkLength(input string) error {
	if len(input) > p.options.MaxInputLength {
		return mdwerror.Newf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength).
			WithCode(mdwerror.CodeInputTooLarge).
			WithOperation("parser.Parse").
			WithDetails(map[string]interface{}{
				"length":     len(input),
				"max_length": p.options.MaxInputLength,
			})
	}
	return nil
}

// Parse parses input with default options
func Parse(input string) (*ast.Program, error) {
	p, err := New(Options{Logger: mdwlog.Discard()})
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// Tokenize scans input with default options
func Tokenize(input string) ([]Token, error) {
	p, err := New(Options{Logger: mdwlog.Discard()})
	if err != nil {
		return nil, err
	}
	return p.Tokenize(input)
}

func tokenize(input string, logger *mdwlog.Logger) ([]Token, error) {
	s, err := NewScanner(input)
	if err != nil {
		return nil, err
	}
	s.traced(logger)

	var tokens []Token
	for s.Lookahead() != EOF {
		tok, err := s.Consume(s.Lookahead())
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// descent is the per-parse context: the scanner is its only state
type descent struct {
	scanner *Scanner
}

func parseProgram(input string, logger *mdwlog.Logger) (*ast.Program, error) {
	s, err := NewScanner(input)
	if err != nil {
		return nil, err
	}
	s.traced(logger)
	d := &descent{scanner: s}

	body, err := d.statements()
	if err != nil {
		return nil, err
	}

	if s.Lookahead() != EOF {
		return nil, NewTrailingInputError(input, s.Peek().Offset, s.Lookahead())
	}
	return &ast.Program{Body: body}, nil
}

// statements: statement (';' statement)*
func (d *descent) statements() (*ast.Statements, error) {
	first, err := d.statement()
	if err != nil {
		return nil, err
	}

	items := []ast.Statement{first}
	for d.scanner.Lookahead() == SEM {
		if _, err := d.scanner.Consume(SEM); err != nil {
			return nil, err
		}
		st, err := d.statement()
		if err != nil {
			return nil, err
		}
		items = append(items, st)
	}
	return &ast.Statements{Items: items}, nil
}

func (d *descent) statement() (ast.Statement, error) {
	switch d.scanner.Lookahead() {
	case IF:
		return d.ifStatement()
	case WHILE:
		return d.whileStatement()
	case ID:
		return d.assignment()
	case READ:
		return d.readStatement()
	case WRITE:
		return d.writeStatement()
	default:
		return nil, d.scanner.Unexpected(IF, WHILE, ID)
	}
}

// if comparison then statements (else statements)? end
func (d *descent) ifStatement() (ast.Statement, error) {
	if _, err := d.scanner.Consume(IF); err != nil {
		return nil, err
	}
	cond, err := d.comparison()
	if err != nil {
		return nil, err
	}
	if _, err := d.scanner.Consume(THEN); err != nil {
		return nil, err
	}
	then, err := d.statements()
	if err != nil {
		return nil, err
	}

	tok, err := d.scanner.Consume(ELSE, END)
	if err != nil {
		return nil, err
	}
	if tok.Kind == END {
		return &ast.IfThen{Condition: cond, Then: then}, nil
	}

	els, err := d.statements()
	if err != nil {
		return nil, err
	}
	if _, err := d.scanner.Consume(END); err != nil {
		return nil, err
	}
	return &ast.IfThenElse{Condition: cond, Then: then, Else: els}, nil
}

// while comparison do statements end
func (d *descent) whileStatement() (ast.Statement, error) {
	if _, err := d.scanner.Consume(WHILE); err != nil {
		return nil, err
	}
	cond, err := d.comparison()
	if err != nil {
		return nil, err
	}
	if _, err := d.scanner.Consume(DO); err != nil {
		return nil, err
	}
	body, err := d.statements()
	if err != nil {
		return nil, err
	}
	if _, err := d.scanner.Consume(END); err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body}, nil
}

// identifier ':=' expression
func (d *descent) assignment() (ast.Statement, error) {
	target, err := d.identifier()
	if err != nil {
		return nil, err
	}
	if _, err := d.scanner.Consume(BEC); err != nil {
		return nil, err
	}
	value, err := d.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Target: target, Value: value}, nil
}

func (d *descent) readStatement() (ast.Statement, error) {
	if _, err := d.scanner.Consume(READ); err != nil {
		return nil, err
	}
	target, err := d.identifier()
	if err != nil {
		return nil, err
	}
	return &ast.Read{Target: target}, nil
}

func (d *descent) writeStatement() (ast.Statement, error) {
	if _, err := d.scanner.Consume(WRITE); err != nil {
		return nil, err
	}
	value, err := d.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Write{Value: value}, nil
}

var relOps = map[Kind]ast.RelOp{
	LESS: ast.Less,
	EQ:   ast.Equal,
	GRTR: ast.Greater,
	LEQ:  ast.LessEq,
	NEQ:  ast.NotEqual,
	GEQ:  ast.GreaterEq,
}

var arithOps = map[Kind]ast.ArithOp{
	ADD: ast.Add,
	SUB: ast.Sub,
	MUL: ast.Mul,
	DIV: ast.Div,
}

// expression relop expression
func (d *descent) comparison() (*ast.Comparison, error) {
	left, err := d.expression()
	if err != nil {
		return nil, err
	}
	op, err := d.scanner.Consume(LESS, EQ, GRTR, LEQ, NEQ, GEQ)
	if err != nil {
		return nil, err
	}
	right, err := d.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{Left: left, Op: relOps[op.Kind], Right: right}, nil
}

// term (('+' | '-') term)*, folded to the left
func (d *descent) expression() (ast.Expression, error) {
	left, err := d.term()
	if err != nil {
		return nil, err
	}
	for k := d.scanner.Lookahead(); k == ADD || k == SUB; k = d.scanner.Lookahead() {
		op, err := d.scanner.Consume(ADD, SUB)
		if err != nil {
			return nil, err
		}
		right, err := d.term()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: arithOps[op.Kind], Right: right}
	}
	return left, nil
}

// factor (('*' | '/') factor)*, folded to the left
func (d *descent) term() (ast.Expression, error) {
	left, err := d.factor()
	if err != nil {
		return nil, err
	}
	for k := d.scanner.Lookahead(); k == MUL || k == DIV; k = d.scanner.Lookahead() {
		op, err := d.scanner.Consume(MUL, DIV)
		if err != nil {
			return nil, err
		}
		right, err := d.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: arithOps[op.Kind], Right: right}
	}
	return left, nil
}

// '(' expression ')' | number | identifier
func (d *descent) factor() (ast.Expression, error) {
	switch d.scanner.Lookahead() {
	case LPAR:
		if _, err := d.scanner.Consume(LPAR); err != nil {
			return nil, err
		}
		inner, err := d.expression()
		if err != nil {
			return nil, err
		}
		if _, err := d.scanner.Consume(RPAR); err != nil {
			return nil, err
		}
		return inner, nil
	case NUM:
		tok, err := d.scanner.Consume(NUM)
		if err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Text: tok.Lexeme}, nil
	case ID:
		id, err := d.identifier()
		if err != nil {
			return nil, err
		}
		return id, nil
	default:
		return nil, d.scanner.Unexpected(LPAR, NUM, ID)
	}
}

func (d *descent) identifier() (*ast.Identifier, error) {
	tok, err := d.scanner.Consume(ID)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Text: tok.Lexeme}, nil
}
