// Package solver computes minimum-move solutions for the generalized
// Tower of Hanoi puzzle by breadth-first search over the implicit state
// graph induced by puzzle.LegalMoves.
package solver

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/hanoi/puzzle"
)

// walker encapsulates mutable search state.
type walker struct {
	pegs   int
	opts   Options
	ctx    context.Context
	store  *VertexStore
	queue  *linkedlistqueue.Queue
	target puzzle.State
}

// Solve finds a shortest sequence of legal single-disk moves
// transforming start into target on a board of disks disks and pegs
// pegs, applying any number of functional Options.
//
// Returns ErrInvalidInput for malformed states (checked before any
// search), ErrNoPath when no move sequence reaches target,
// ErrOptionViolation for bad options, ErrVertexLimit when
// WithMaxVertices is exceeded, a context error on cancellation, or any
// user-supplied hook error. On success, Result.Moves applied in order
// to start yields exactly target, and len(Result.Moves) == Result.Distance.
func Solve(disks, pegs int, start, target puzzle.State, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := validate(disks, pegs, start, target); err != nil {
		return nil, err
	}

	w := &walker{
		pegs:   pegs,
		opts:   o,
		ctx:    o.Ctx,
		store:  NewVertexStore(),
		queue:  linkedlistqueue.New(),
		target: target,
	}

	goal, err := w.run(start)
	if err != nil {
		return nil, err
	}
	moves, err := Reconstruct(goal)
	if err != nil {
		return nil, err
	}

	return &Result{Distance: goal.Dist, Moves: moves, Explored: w.store.Len()}, nil
}

// validate rejects malformed inputs before the search starts.
// Every failure wraps ErrInvalidInput together with the specific
// puzzle sentinel, so errors.Is matches either.
func validate(disks, pegs int, start, target puzzle.State) error {
	if disks < 1 {
		return fmt.Errorf("%w: %w (%d)", ErrInvalidInput, puzzle.ErrDiskCount, disks)
	}
	if pegs < 1 {
		return fmt.Errorf("%w: %w (%d)", ErrInvalidInput, puzzle.ErrPegCount, pegs)
	}
	if len(start) != disks {
		return fmt.Errorf("%w: start: %w (got %d, want %d)", ErrInvalidInput, puzzle.ErrStateLen, len(start), disks)
	}
	if len(target) != disks {
		return fmt.Errorf("%w: target: %w (got %d, want %d)", ErrInvalidInput, puzzle.ErrStateLen, len(target), disks)
	}
	if err := start.Validate(pegs); err != nil {
		return fmt.Errorf("%w: start: %w", ErrInvalidInput, err)
	}
	if err := target.Validate(pegs); err != nil {
		return fmt.Errorf("%w: target: %w", ErrInvalidInput, err)
	}

	return nil
}

// run performs the breadth-first traversal and returns the settled
// target vertex, or ErrNoPath when the queue empties first.
//
// Termination happens after the dequeued vertex is fully expanded, so
// when start equals target the start vertex itself satisfies the check
// on its first dequeue, with distance 0.
func (w *walker) run(start puzzle.State) (*Vertex, error) {
	w.enqueue(w.store.Resolve(start), 0, nil, puzzle.Move{})

	for !w.queue.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		cur := w.dequeue()
		if err := w.opts.OnVisit(cur.State, cur.Dist); err != nil {
			return nil, fmt.Errorf("solver: OnVisit error at %q: %w", cur.State.Key(), err)
		}
		if err := w.expand(cur); err != nil {
			return nil, err
		}
		cur.Color = Settled
		if cur.State.Equal(w.target) {
			return cur, nil
		}
	}

	return nil, ErrNoPath
}

// enqueue records first-discovery bookkeeping on v, calls OnEnqueue,
// and adds it to the queue. Must only be called on Unvisited vertices.
func (w *walker) enqueue(v *Vertex, dist int, prev *Vertex, last puzzle.Move) {
	v.Color = Frontier
	v.Dist = dist
	v.Prev = prev
	v.LastMove = last
	w.opts.OnEnqueue(v.State, dist)
	w.queue.Enqueue(v)
}

// dequeue pops the next frontier vertex and invokes OnDequeue.
func (w *walker) dequeue() *Vertex {
	item, _ := w.queue.Dequeue()
	v := item.(*Vertex)
	w.opts.OnDequeue(v.State, v.Dist)

	return v
}

// expand resolves every legal neighbor of cur and enqueues each state
// seen for the first time. Vertices already Frontier or Settled are
// left untouched: first discovery wins, which guarantees the BFS
// distance is minimal.
func (w *walker) expand(cur *Vertex) error {
	for _, c := range puzzle.LegalMoves(cur.State, w.pegs) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		next := w.store.Resolve(c.Next)
		if w.opts.MaxVertices > 0 && w.store.Len() > w.opts.MaxVertices {
			return fmt.Errorf("%w: more than %d distinct states discovered", ErrVertexLimit, w.opts.MaxVertices)
		}
		if next.Color != Unvisited {
			continue
		}
		w.enqueue(next, cur.Dist+1, cur, c.Move)
	}

	return nil
}
