// Package puzzle defines core types and sentinel errors
// for the generalized Tower of Hanoi state model.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for puzzle state construction and move application.
var (
	// ErrDiskCount indicates a non-positive disk count.
	ErrDiskCount = errors.New("puzzle: disk count must be at least 1")
	// ErrPegCount indicates a non-positive peg count.
	ErrPegCount = errors.New("puzzle: peg count must be at least 1")
	// ErrStateLen indicates a state whose length differs from the disk count.
	ErrStateLen = errors.New("puzzle: state length does not match disk count")
	// ErrPegRange indicates a peg id outside [0, pegs).
	ErrPegRange = errors.New("puzzle: peg id out of range")
	// ErrIllegalMove indicates a move that violates the stacking rule.
	ErrIllegalMove = errors.New("puzzle: illegal move")
)

// State assigns every disk to a peg. The index is the disk rank
// (0 = smallest disk); the value is a peg id in [0, pegs).
// Rank order encodes the stacking constraint: on any peg, the disk with
// the lowest rank present is the topmost disk.
//
// A State is treated as immutable once constructed: operations that
// change the arrangement always return a fresh State.
type State []int

// Clone returns an independent copy of s.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)

	return c
}

// Equal reports whether s and other describe the same arrangement.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string form of s, suitable as an ordered
// map key for state deduplication. Two States yield the same Key
// iff they are Equal.
func (s State) Key() string {
	buf := make([]byte, 0, len(s)*3)
	for i, peg := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(peg), 10)
	}

	return string(buf)
}

// Validate checks that every element of s is a peg id in [0, pegs).
// Returns ErrPegCount for a non-positive peg count and ErrPegRange
// (wrapped with the offending disk and peg) for an out-of-range element.
func (s State) Validate(pegs int) error {
	if pegs < 1 {
		return ErrPegCount
	}
	for i, peg := range s {
		if peg < 0 || peg >= pegs {
			return fmt.Errorf("%w: disk %d on peg %d, want [0,%d)", ErrPegRange, i, peg, pegs)
		}
	}

	return nil
}

// String renders s in conventional 1-based peg notation,
// smallest disk first, e.g. "1 1 3".
func (s State) String() string {
	var b strings.Builder
	for i, peg := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(peg + 1))
	}

	return b.String()
}

// Move relocates one disk to a destination peg. Both fields are
// 0-based; use Labels for the conventional 1-based pair.
type Move struct {
	Disk int // disk rank, 0 = smallest
	To   int // destination peg id
}

// Labels returns the conventional 1-based (disk size, destination peg)
// pair for m, matching puzzle notation where disks and pegs count from 1.
func (m Move) Labels() (disk, peg int) {
	return m.Disk + 1, m.To + 1
}

// String renders m in 1-based notation, e.g. "disk 2 to peg 3".
func (m Move) String() string {
	disk, peg := m.Labels()

	return fmt.Sprintf("disk %d to peg %d", disk, peg)
}

// Candidate is one legal transition out of a State: the Move plus the
// arrangement it produces.
type Candidate struct {
	Move
	Next State
}
