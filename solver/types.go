// Package solver defines tunable options and error definitions
// for the breadth-first Tower of Hanoi solver.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hanoi/puzzle"
)

// Sentinel errors for solver execution.
var (
	// ErrInvalidInput is returned when the start or target state is
	// malformed: wrong length, or a peg id outside [0, pegs).
	// Detected eagerly; the search never starts.
	ErrInvalidInput = errors.New("solver: invalid start or target state")

	// ErrNoPath is returned when the work queue empties without ever
	// reaching the target: it is unreachable in the puzzle graph.
	ErrNoPath = errors.New("solver: target unreachable from start")

	// ErrBrokenChain indicates that the predecessor chain of the target
	// vertex does not match its distance. It signals an internal
	// bookkeeping defect, never a user error.
	ErrBrokenChain = errors.New("solver: predecessor chain inconsistent with distance")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrVertexLimit is returned when the search discovers more distinct
	// states than WithMaxVertices allows.
	ErrVertexLimit = errors.New("solver: vertex limit exceeded")
)

// Option configures the solver via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxVertices, if > 0, bounds the number of distinct states the
	// search may discover before failing with ErrVertexLimit.
	// A value of 0 explicitly disables the limit.
	MaxVertices int

	// OnEnqueue is called when a state is first discovered and enqueued.
	// Receives the state and its distance from the start.
	OnEnqueue func(st puzzle.State, dist int)

	// OnDequeue is called immediately before a state is expanded.
	OnDequeue func(st puzzle.State, dist int)

	// OnVisit is called when expanding a state. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(st puzzle.State, dist int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - no vertex limit (MaxVertices == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxVertices: 0,
		OnEnqueue:   func(puzzle.State, int) {},
		OnDequeue:   func(puzzle.State, int) {},
		OnVisit:     func(puzzle.State, int) error { return nil },
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxVertices bounds the number of distinct states the search may
// discover.
//
//	n > 0:  fail with ErrVertexLimit past n states
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxVertices cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.MaxVertices = 0
		default:
			o.MaxVertices = n
		}
	}
}

// WithOnEnqueue registers a callback to run when a state is discovered.
func WithOnEnqueue(fn func(st puzzle.State, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run before a state is expanded.
func WithOnDequeue(fn func(st puzzle.State, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on expansion; returning an
// error from this callback stops the search.
func WithOnVisit(fn func(st puzzle.State, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a solved puzzle:
//   - Distance: minimum number of moves from start to target.
//   - Moves: the moves in execution order; len(Moves) == Distance.
//   - Explored: distinct states discovered while searching.
type Result struct {
	Distance int
	Moves    []puzzle.Move
	Explored int
}
