package solver

import (
	"fmt"

	"github.com/katalvlaran/hanoi/puzzle"
)

// Reconstruct walks predecessor links backward from goal, collecting
// each vertex's LastMove until reaching the start vertex (the one with
// no predecessor), then reverses the collection into execution order.
//
// The chain length always equals goal.Dist given the search invariants;
// Reconstruct checks this defensively and returns ErrBrokenChain on any
// mismatch rather than producing a silently truncated solution.
// Normally called by Solve; exported for callers driving VertexStore
// and the traversal themselves.
func Reconstruct(goal *Vertex) ([]puzzle.Move, error) {
	moves := make([]puzzle.Move, 0, goal.Dist)
	for cur := goal; cur.Prev != nil; cur = cur.Prev {
		if len(moves) == goal.Dist {
			return nil, fmt.Errorf("%w: chain exceeds distance %d", ErrBrokenChain, goal.Dist)
		}
		moves = append(moves, cur.LastMove)
	}
	if len(moves) != goal.Dist {
		return nil, fmt.Errorf("%w: %d link(s) for distance %d", ErrBrokenChain, len(moves), goal.Dist)
	}

	// reverse into execution order (first move first)
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves, nil
}
