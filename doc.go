// Package hanoi is a minimum-move solver for the generalized Tower of
// Hanoi puzzle — any number of disks, any number of pegs, arbitrary
// start and target arrangements.
//
// 🗼 What is hanoi?
//
//	A small, focused library that models the puzzle as an implicit graph
//	and searches it:
//		• puzzle: states, moves, and the stacking-legality rule
//		• solver: lazy vertex store, breadth-first search, and
//		  predecessor-chain reconstruction of the optimal move list
//
// ✨ Why choose hanoi?
//
//   - Provably minimal solutions – plain BFS on the unweighted state graph
//   - Deterministic – reproducible discovery order and move sequences
//   - Bounded – context cancellation and vertex-count budgets built in
//   - Extensible – traversal hooks (OnEnqueue, OnDequeue, OnVisit)
//
// Everything is organized under two library subpackages:
//
//	puzzle/ — State, Move, legality rule, checked replay
//	solver/ — VertexStore, BFS engine, path reconstruction, Solve
//
// The cmd/hanoi binary reads a problem description (disk count, peg
// count, start pegs, target pegs — all 1-based) and prints the optimal
// move list. See the puzzle and solver package docs for the library API.
//
//	go get github.com/katalvlaran/hanoi
package hanoi
