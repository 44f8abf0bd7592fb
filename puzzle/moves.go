package puzzle

import (
	"fmt"
)

// topmost reports whether disk is the smallest-ranked disk on its peg,
// i.e. whether it is exposed and may be picked up.
// Complexity: O(disk).
func (s State) topmost(disk int) bool {
	for i := disk - 1; i >= 0; i-- {
		if s[i] == s[disk] {
			return false
		}
	}

	return true
}

// pegHoldsSmaller reports whether peg carries any disk of rank lower
// than disk, which would forbid placing disk on it.
// Complexity: O(disk).
func (s State) pegHoldsSmaller(disk, peg int) bool {
	for i := disk - 1; i >= 0; i-- {
		if s[i] == peg {
			return true
		}
	}

	return false
}

// LegalMoves enumerates every legal single-disk move out of s on a
// board with pegs pegs, together with the resulting State.
//
// The order is deterministic: disk rank ascending, then destination peg
// ascending. Determinism matters only for reproducible traversal traces,
// never for correctness.
//
// A disk is movable iff it is topmost on its peg; a destination is
// admissible iff it differs from the current peg and holds no smaller
// disk. Complexity: O(D·(D+P·D)) worst case with D disks and P pegs;
// puzzle-sized inputs keep this trivial.
func LegalMoves(s State, pegs int) []Candidate {
	out := make([]Candidate, 0, pegs)
	for disk := range s {
		if !s.topmost(disk) {
			continue
		}
		for peg := 0; peg < pegs; peg++ {
			if peg == s[disk] || s.pegHoldsSmaller(disk, peg) {
				continue
			}
			next := s.Clone()
			next[disk] = peg
			out = append(out, Candidate{Move: Move{Disk: disk, To: peg}, Next: next})
		}
	}

	return out
}

// Apply performs a single move with full legality checking and returns
// the resulting State; s is never mutated. Returns ErrIllegalMove
// (wrapped with detail) when the move violates the stacking rule or
// addresses a nonexistent disk or peg.
func Apply(s State, m Move, pegs int) (State, error) {
	if m.Disk < 0 || m.Disk >= len(s) {
		return nil, fmt.Errorf("%w: no disk of rank %d", ErrIllegalMove, m.Disk)
	}
	if m.To < 0 || m.To >= pegs {
		return nil, fmt.Errorf("%w: no peg %d on a %d-peg board", ErrIllegalMove, m.To, pegs)
	}
	if m.To == s[m.Disk] {
		return nil, fmt.Errorf("%w: disk %d is already on peg %d", ErrIllegalMove, m.Disk, m.To)
	}
	if !s.topmost(m.Disk) {
		return nil, fmt.Errorf("%w: disk %d is covered by a smaller disk", ErrIllegalMove, m.Disk)
	}
	if s.pegHoldsSmaller(m.Disk, m.To) {
		return nil, fmt.Errorf("%w: peg %d holds a disk smaller than %d", ErrIllegalMove, m.To, m.Disk)
	}
	next := s.Clone()
	next[m.Disk] = m.To

	return next, nil
}

// Replay folds Apply over moves starting from start and returns the
// final State. The first illegal move aborts the replay with its
// 0-based position wrapped into the error. Useful for validating a
// solver's output against the move rule it was derived from.
func Replay(start State, moves []Move, pegs int) (State, error) {
	cur := start
	for i, m := range moves {
		next, err := Apply(cur, m, pegs)
		if err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i, err)
		}
		cur = next
	}

	return cur, nil
}
