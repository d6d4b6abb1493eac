// Package app is the single programmatic entry point spec.md §6 describes
// as "exposed to the embedding shell": parse an instance, bind it into a
// Problem, dispatch to a solver, and render the resulting report as text.
// A CLI or any other host wraps this; the package itself never touches a
// terminal or the filesystem.
package app

import (
	"context"
	"time"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/matching"
	"github.com/arcpost/arcpost/parser"
	"github.com/arcpost/arcpost/problem"
	"github.com/arcpost/arcpost/route"
	"github.com/arcpost/arcpost/solver"
	"github.com/rs/zerolog"
)

// Option configures a Solve call.
type Option func(*config)

type config struct {
	logger   zerolog.Logger
	matching matching.Implementation
	ctx      context.Context
	timeout  time.Duration
	name     string
}

// WithLogger directs the parser's and the solver's structured log output
// to l, in place of the default no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMatching forces the min-cost perfect matching implementation parity
// repair uses, overriding the default Auto selection.
func WithMatching(impl matching.Implementation) Option {
	return func(c *config) { c.matching = impl }
}

// WithContext derives the solve's cancellation token from ctx instead of
// context.Background.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithTimeout bounds the solve at d, feeding the same cooperative
// cancellation token a WithContext deadline would.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithInstanceName sets the name the rendered report identifies the
// instance by (the CLI passes the instance file's base name). Defaults to
// "instance" when unset.
func WithInstanceName(name string) Option {
	return func(c *config) { c.name = name }
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   zerolog.Nop(),
		matching: matching.Auto,
		ctx:      context.Background(),
		name:     "instance",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Solve parses instanceText, builds its Problem, dispatches to the solver
// named by solverID (1..7, §6), and returns the rendered route.Report text.
// Every returned error is one of apperr's six kinds, unwrapped, so a
// caller can branch on errors.As directly.
func Solve(solverID int, instanceText string, opts ...Option) (string, error) {
	cfg := newConfig(opts...)

	ctx := cfg.ctx
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	g, err := parser.Parse(instanceText, parser.WithLogger(cfg.logger))
	if err != nil {
		return "", err
	}

	p, err := problem.New(g)
	if err != nil {
		return "", apperr.NewParseError(0, "instance has no depot declared", err)
	}

	solveOpts := solver.Options{
		Logger:   cfg.logger,
		Matching: cfg.matching,
		Cancel:   solver.NewCancelToken(ctx),
	}

	r, err := solver.Solve(p, solverID, solveOpts)
	if err != nil {
		return "", err
	}

	if err := r.Validate(p); err != nil {
		return "", apperr.NewInternalInvariantViolation("solved route failed validation", err)
	}

	rep, err := route.NewReport(cfg.name, solver.Name(solverID), r, p)
	if err != nil {
		return "", err
	}

	return rep.String(), nil
}

// Validate parses instanceText and reports only whether it is well-formed,
// for the CLI's parse-only `validate` subcommand. It never builds a
// Problem or runs a solver.
func Validate(instanceText string, opts ...Option) error {
	cfg := newConfig(opts...)
	_, err := parser.Parse(instanceText, parser.WithLogger(cfg.logger))

	return err
}
