package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanoi/puzzle"
)

func TestState_CloneIsIndependent(t *testing.T) {
	s := puzzle.State{0, 1, 2}
	c := s.Clone()
	c[0] = 2
	assert.Equal(t, puzzle.State{0, 1, 2}, s, "mutating the clone must not touch the original")
	assert.Equal(t, puzzle.State{2, 1, 2}, c)
}

func TestState_Equal(t *testing.T) {
	assert.True(t, puzzle.State{0, 1}.Equal(puzzle.State{0, 1}))
	assert.False(t, puzzle.State{0, 1}.Equal(puzzle.State{1, 0}))
	assert.False(t, puzzle.State{0, 1}.Equal(puzzle.State{0, 1, 0}), "length mismatch is never equal")
	assert.True(t, puzzle.State{}.Equal(puzzle.State{}))
}

func TestState_KeyMatchesEquality(t *testing.T) {
	a := puzzle.State{0, 10, 2}
	b := puzzle.State{0, 10, 2}
	c := puzzle.State{0, 1, 2}
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	// multi-digit peg ids must not collide with concatenations
	assert.NotEqual(t, puzzle.State{1, 2}.Key(), puzzle.State{12}.Key())
}

func TestState_Validate(t *testing.T) {
	assert.NoError(t, puzzle.State{0, 1, 2}.Validate(3))
	assert.ErrorIs(t, puzzle.State{0, 3}.Validate(3), puzzle.ErrPegRange)
	assert.ErrorIs(t, puzzle.State{-1}.Validate(3), puzzle.ErrPegRange)
	assert.ErrorIs(t, puzzle.State{0}.Validate(0), puzzle.ErrPegCount)
}

func TestState_String_OneBased(t *testing.T) {
	assert.Equal(t, "1 1 3", puzzle.State{0, 0, 2}.String())
}

func TestMove_Labels(t *testing.T) {
	m := puzzle.Move{Disk: 2, To: 0}
	disk, peg := m.Labels()
	assert.Equal(t, 3, disk)
	assert.Equal(t, 1, peg)
	assert.Equal(t, "disk 3 to peg 1", m.String())
}

// TestLegalMoves_AllStacked covers the classic opening position: only the
// smallest disk is movable, to each of the other pegs.
func TestLegalMoves_AllStacked(t *testing.T) {
	s := puzzle.State{0, 0, 0}
	got := puzzle.LegalMoves(s, 3)
	require.Len(t, got, 2)

	assert.Equal(t, puzzle.Move{Disk: 0, To: 1}, got[0].Move)
	assert.Equal(t, puzzle.State{1, 0, 0}, got[0].Next)
	assert.Equal(t, puzzle.Move{Disk: 0, To: 2}, got[1].Move)
	assert.Equal(t, puzzle.State{2, 0, 0}, got[1].Next)

	assert.Equal(t, puzzle.State{0, 0, 0}, s, "input state must not be mutated")
}

// TestLegalMoves_CoveredDiskNeverMoves pins the stacking rule: while the
// smaller disk shares its peg, the larger disk is never listed.
func TestLegalMoves_CoveredDiskNeverMoves(t *testing.T) {
	s := puzzle.State{1, 1, 2}
	for _, c := range puzzle.LegalMoves(s, 3) {
		assert.NotEqual(t, 1, c.Disk, "disk 1 is covered by disk 0 on peg 1")
	}
}

// TestLegalMoves_SmallerDiskBlocksDestination pins the placement rule.
func TestLegalMoves_SmallerDiskBlocksDestination(t *testing.T) {
	// disk 0 on peg 2, disk 1 on peg 0: disk 1 may only go to peg 1
	s := puzzle.State{2, 0}
	got := puzzle.LegalMoves(s, 3)
	require.Len(t, got, 3)
	assert.Equal(t, puzzle.Move{Disk: 0, To: 0}, got[0].Move)
	assert.Equal(t, puzzle.Move{Disk: 0, To: 1}, got[1].Move)
	assert.Equal(t, puzzle.Move{Disk: 1, To: 1}, got[2].Move)
}

// TestLegalMoves_Order verifies the deterministic rank-then-peg order.
func TestLegalMoves_Order(t *testing.T) {
	s := puzzle.State{0, 1, 2}
	got := puzzle.LegalMoves(s, 3)
	// disk 0 → pegs 1,2; disk 1 → peg 2 only (peg 0 holds disk 0);
	// disk 2 blocked everywhere but its own peg... peg 0 holds smaller,
	// peg 1 holds smaller, so disk 2 has no move.
	want := []puzzle.Move{
		{Disk: 0, To: 1},
		{Disk: 0, To: 2},
		{Disk: 1, To: 2},
	}
	require.Len(t, got, len(want))
	for i, m := range want {
		assert.Equal(t, m, got[i].Move, "candidate %d", i)
	}
}

func TestLegalMoves_SinglePegHasNoMoves(t *testing.T) {
	assert.Empty(t, puzzle.LegalMoves(puzzle.State{0, 0}, 1))
}

func TestApply_Legal(t *testing.T) {
	s := puzzle.State{0, 0, 0}
	next, err := puzzle.Apply(s, puzzle.Move{Disk: 0, To: 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, puzzle.State{2, 0, 0}, next)
	assert.Equal(t, puzzle.State{0, 0, 0}, s, "Apply must not mutate its input")
}

func TestApply_Illegal(t *testing.T) {
	s := puzzle.State{0, 0}
	cases := []struct {
		name string
		move puzzle.Move
	}{
		{"covered disk", puzzle.Move{Disk: 1, To: 1}},
		{"same peg", puzzle.Move{Disk: 0, To: 0}},
		{"no such disk", puzzle.Move{Disk: 2, To: 1}},
		{"negative disk", puzzle.Move{Disk: -1, To: 1}},
		{"no such peg", puzzle.Move{Disk: 0, To: 3}},
		{"negative peg", puzzle.Move{Disk: 0, To: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzle.Apply(s, tc.move, 3)
			assert.ErrorIs(t, err, puzzle.ErrIllegalMove)
		})
	}

	// destination holding a smaller disk
	_, err := puzzle.Apply(puzzle.State{1, 0}, puzzle.Move{Disk: 1, To: 1}, 3)
	assert.ErrorIs(t, err, puzzle.ErrIllegalMove)
}

func TestReplay_FullSolution(t *testing.T) {
	// the unique 7-move solution of the 3-disk, 3-peg puzzle
	moves := []puzzle.Move{
		{Disk: 0, To: 2}, {Disk: 1, To: 1}, {Disk: 0, To: 1},
		{Disk: 2, To: 2}, {Disk: 0, To: 0}, {Disk: 1, To: 2},
		{Disk: 0, To: 2},
	}
	end, err := puzzle.Replay(puzzle.State{0, 0, 0}, moves, 3)
	require.NoError(t, err)
	assert.Equal(t, puzzle.State{2, 2, 2}, end)
}

func TestReplay_ReportsFailingMove(t *testing.T) {
	moves := []puzzle.Move{
		{Disk: 0, To: 2},
		{Disk: 1, To: 2}, // illegal: peg 2 now holds disk 0
	}
	_, err := puzzle.Replay(puzzle.State{0, 0, 0}, moves, 3)
	require.ErrorIs(t, err, puzzle.ErrIllegalMove)
	assert.Contains(t, err.Error(), "replay move 1")
}

func TestReplay_Empty(t *testing.T) {
	end, err := puzzle.Replay(puzzle.State{1, 2}, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, puzzle.State{1, 2}, end)
}
