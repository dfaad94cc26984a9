// File: frontend.go
// Title: While Language Front End Engine
// Description: Coordinates the two parser back ends, tokenization and
//              tree rendering behind one engine. Every run carries a
//              correlation ID so log lines of one parse can be grouped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine implementation

package frontend

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/wlang/pkg/core/cache"
	mdwerror "github.com/msto63/wlang/pkg/core/error"
	mdwlog "github.com/msto63/wlang/pkg/core/log"
	"github.com/msto63/wlang/pkg/lang/ast"
	"github.com/msto63/wlang/pkg/lang/grammar"
	"github.com/msto63/wlang/pkg/lang/parser"
)

// Backend names a parser implementation
type Backend string

const (
	// BackendDescent is the hand-written recursive descent parser
	BackendDescent Backend = "descent"
	// BackendParticiple is the grammar-driven participle parser
	BackendParticiple Backend = "participle"
)

// Backends lists the supported back ends
var Backends = []Backend{BackendDescent, BackendParticiple}

// ParseBackend converts a configuration value into a Backend
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}
	return "", mdwerror.Newf("unknown backend %q", name).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("frontend.ParseBackend")
}

// Options configures the engine
type Options struct {
	// Logger for front end operations (defaults to the default logger)
	Logger *mdwlog.Logger

	// Backend used by Parse (default: descent)
	Backend Backend

	// MaxInputLength limits accepted input in bytes (default: 1 MiB)
	MaxInputLength int

	// CacheSize enables memoization of accepted programs per back end and
	// input (default: 0, disabled). Cached trees are shared and must not
	// be modified.
	CacheSize int
}

// Engine parses, tokenizes and renders while language programs
type Engine struct {
	descent    *parser.Parser
	participle *grammar.Parser
	cache      *cache.Cache[*ast.Program]
	logger     *mdwlog.Logger
	options    Options
}

// Result is the outcome of a successful parse
type Result struct {
	ID       string
	Backend  Backend
	Program  *ast.Program
	Duration time.Duration
	Cached   bool
}

// NewEngine creates an engine with both back ends initialized
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:         mdwlog.GetDefault(),
		Backend:        BackendDescent,
		MaxInputLength: parser.DefaultMaxInputLength,
	}
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.Backend != "" {
			if _, err := ParseBackend(string(provided.Backend)); err != nil {
				return nil, err
			}
			options.Backend = provided.Backend
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		if provided.CacheSize > 0 {
			options.CacheSize = provided.CacheSize
		}
	}

	logger := options.Logger.WithField("component", "frontend")

	descent, err := parser.New(parser.Options{Logger: logger, MaxInputLength: options.MaxInputLength})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize descent parser").WithOperation("frontend.NewEngine")
	}
	gp, err := grammar.New(grammar.Options{Logger: logger, MaxInputLength: options.MaxInputLength})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize participle parser").WithOperation("frontend.NewEngine")
	}

	logger.Debug("Front end initialized", mdwlog.Fields{
		"backend":          string(options.Backend),
		"max_input_length": options.MaxInputLength,
		"cache_size":       options.CacheSize,
	})

	engine := &Engine{
		descent:    descent,
		participle: gp,
		logger:     logger,
		options:    options,
	}
	if options.CacheSize > 0 {
		engine.cache = cache.New[*ast.Program](cache.Config{MaxItems: options.CacheSize})
	}
	return engine, nil
}

// Backend returns the back end used by Parse
func (e *Engine) Backend() Backend {
	return e.options.Backend
}

// Parse parses input with the configured back end
func (e *Engine) Parse(ctx context.Context, input string) (*Result, error) {
	return e.ParseWith(ctx, e.options.Backend, input)
}

// ParseWith parses input with the given back end. Diagnostics are returned
// unchanged so their wording reaches the caller as produced.
func (e *Engine) ParseWith(ctx context.Context, backend Backend, input string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	logger := e.logger.WithCorrelationID(id).WithField("backend", string(backend))
	timer := logger.StartTimer("parse")

	var (
		prog *ast.Program
		hit  bool
		err  error
	)
	if e.cache != nil {
		prog, hit, err = e.cache.GetOrSet(cache.Key(string(backend), input), func() (*ast.Program, error) {
			return e.run(backend, input)
		})
		timer.WithField("cache_hit", hit)
	} else {
		prog, err = e.run(backend, input)
	}

	if err != nil {
		timer.WithField("outcome", "rejected").StopWithError(err)
		logger.LogError(mdwerror.Wrap(err, "parse failed").
			WithOperation("frontend.Parse").
			WithDetails(map[string]interface{}{
				"backend":      string(backend),
				"input_length": len(input),
			}))
		return nil, err
	}

	duration := timer.WithField("outcome", "accepted").Stop()
	return &Result{ID: id, Backend: backend, Program: prog, Duration: duration, Cached: hit}, nil
}

func (e *Engine) run(backend Backend, input string) (*ast.Program, error) {
	var (
		prog *ast.Program
		err  error
	)
	switch backend {
	case BackendDescent:
		prog, err = e.descent.Parse(input)
	case BackendParticiple:
		prog, err = e.participle.Parse(input)
	default:
		_, err = ParseBackend(string(backend))
	}
	if err != nil {
		return nil, err
	}

	if err := ast.Validate(prog); err != nil {
		return nil, mdwerror.Wrap(err, "back end produced an invalid tree").WithCode(mdwerror.CodeInternal)
	}
	return prog, nil
}

// Tokenize returns the token sequence of input, excluding EOF
func (e *Engine) Tokenize(ctx context.Context, input string) ([]parser.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens, err := e.descent.Tokenize(input)
	if err != nil {
		e.logger.LogError(mdwerror.Wrap(err, "tokenize failed").WithOperation("frontend.Tokenize"))
		return nil, err
	}
	return tokens, nil
}

// CacheStats returns hit and miss counts of the parse cache, zero if disabled
func (e *Engine) CacheStats() (hits, misses int64) {
	if e.cache == nil {
		return 0, 0
	}
	hits, misses, _ = e.cache.Stats()
	return hits, misses
}

// Grammar returns the EBNF of the participle grammar
func (e *Engine) Grammar() string {
	return e.participle.EBNF()
}
