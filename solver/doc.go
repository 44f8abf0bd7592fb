// Package solver provides a minimum-move solver for the generalized
// Tower of Hanoi puzzle: D disks, P pegs (P may exceed the classical 3),
// arbitrary start and target arrangements.
//
// What
//
//   - Treats every arrangement of disks on pegs as a vertex of an
//     implicit graph whose edges are legal single-disk moves
//     (puzzle.LegalMoves), and runs plain breadth-first search over it.
//   - Vertices are materialized lazily by a deduplicating VertexStore;
//     no edge lists are kept, neighbors are regenerated on demand.
//   - Returns a Result containing:
//   - Distance: minimum move count from start to target
//   - Moves: the move sequence in execution order
//   - Explored: distinct states discovered
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state is first discovered)
//   - OnDequeue (immediately before expansion)
//   - OnVisit   (on expansion; may abort with an error)
//   - Honors a vertex-count budget (WithMaxVertices) and context
//     cancellation (WithContext).
//
// Why
//
//   - BFS on an unweighted graph yields provably minimal distances:
//     distance and predecessor are assigned exactly once, at first
//     discovery, and never revised.
//   - The predecessor links double as the solution: walking them
//     backward from the target and reversing gives the move list.
//
// Determinism
//
//	puzzle.LegalMoves emits neighbors in disk-rank, then
//	destination-peg order, so discovery order, vertex indices, and the
//	reported solution are fully reproducible.
//
// Complexity (N = reachable states ≤ P^D, D disks, P pegs)
//
//   - Time:   O(N · D·P·D · log N)  (expansion per state, tree resolve)
//   - Memory: O(N · D)              (one stored State per vertex)
//
// The whole reachable graph is held in memory; this is a puzzle-sized
// solver, not one for disk counts where P^D explodes.
//
// Concurrency
//
//	A search is single-threaded and synchronous: VertexStore, Vertex,
//	and the queue have a single owner and are never shared. Independent
//	searches may of course run on separate goroutines.
//
// Usage
//
//	res, err := solver.Solve(3, 3,
//	    puzzle.State{0, 0, 0}, // all disks on peg 1
//	    puzzle.State{2, 2, 2}, // all disks on peg 3
//	)
//	if err != nil {
//	    // handle one of:
//	    // ErrInvalidInput, ErrNoPath, ErrOptionViolation,
//	    // ErrVertexLimit, context errors, or hook errors
//	}
//	fmt.Println(res.Distance) // 7
//
// Options
//
//   - DefaultOptions(): background Context, no vertex limit, no-op hooks.
//   - WithContext(ctx):     set a custom context for cancellation.
//   - WithMaxVertices(n):   fail past n distinct states (n>0).
//   - WithOnEnqueue(fn):    hook at first discovery of a state.
//   - WithOnDequeue(fn):    hook immediately before expanding a state.
//   - WithOnVisit(fn):      hook during expansion; error aborts.
//
// Errors
//
//   - ErrInvalidInput    for malformed start/target (checked eagerly).
//   - ErrNoPath          when target is unreachable from start.
//   - ErrOptionViolation for an invalid Option (e.g. negative limit).
//   - ErrVertexLimit     when the state budget is exhausted.
//   - ErrBrokenChain     if reconstruction meets a broken predecessor
//     chain; indicates an internal defect, unreachable in normal use.
//   - Wrapped user-supplied hook errors from OnVisit.
package solver
