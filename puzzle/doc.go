// Package puzzle models the generalized Tower of Hanoi board:
// states, moves, and the legality rule that induces the puzzle graph.
//
// What
//
//   - State: a full assignment of every disk to a peg, indexed by disk
//     rank (0 = smallest). Rank order encodes the stacking constraint
//     directly, so no per-peg stack structure is needed.
//   - Move: relocation of one disk to a destination peg, with 1-based
//     Labels for conventional puzzle notation.
//   - LegalMoves: deterministic enumeration of every legal transition
//     out of a State, each paired with the resulting State.
//   - Apply / Replay: checked move application for validating solutions.
//
// Why
//
//   - The state space of a D-disk, P-peg puzzle is an implicit graph with
//     one vertex per State and one edge per legal move. This package is
//     the neighbor-generation rule of that graph; solver builds and
//     searches it.
//
// Legality
//
//	A disk is movable iff no smaller disk shares its peg (it is topmost).
//	A movable disk may go to any other peg holding no smaller disk.
//	Both tests scan only ranks below the moving disk: O(D) each.
//
// Determinism
//
//	LegalMoves emits candidates in disk-rank-ascending, then
//	destination-peg-ascending order, so traversals built on it are fully
//	reproducible.
//
// Errors
//
//   - ErrDiskCount, ErrPegCount  for non-positive board dimensions.
//   - ErrStateLen                for a state/disk-count mismatch.
//   - ErrPegRange                for a peg id outside [0, pegs).
//   - ErrIllegalMove             for a move violating the stacking rule.
//
// Usage
//
//	start := puzzle.State{0, 0, 0} // three disks, all on peg 0
//	for _, c := range puzzle.LegalMoves(start, 3) {
//	    fmt.Println(c.Move, "->", c.Next)
//	}
package puzzle
