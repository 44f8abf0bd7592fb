package solver

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/hanoi/puzzle"
)

// Color is the BFS processing status of a vertex.
type Color uint8

const (
	// Unvisited means the vertex has not been discovered yet.
	Unvisited Color = iota
	// Frontier means the vertex is enqueued but not yet expanded.
	Frontier
	// Settled means the vertex has been expanded in full.
	Settled
)

// Vertex is one distinct discovered State of the puzzle graph.
// Distance, Prev, and LastMove are set exactly once, when the vertex
// transitions Unvisited → Frontier; first discovery wins, which is what
// makes BFS distances correct.
type Vertex struct {
	// State is the arrangement this vertex represents.
	State puzzle.State
	// Index is a stable integer assigned in discovery order (0, 1, 2, …).
	// Used only as a compact identifier.
	Index int
	// Color is the BFS processing status.
	Color Color
	// Dist is the number of moves from the start state; meaningful only
	// once Color != Unvisited.
	Dist int
	// Prev is the vertex this one was first discovered from; nil for the
	// start vertex. A non-owning reference into the owning VertexStore.
	Prev *Vertex
	// LastMove is the move that produced this vertex from Prev;
	// zero for the start vertex.
	LastMove puzzle.Move
}

// VertexStore is a deduplicating registry mapping each State to its
// unique Vertex, creating vertices lazily on first reference.
//
// The registry is an ordered-key red-black tree over the canonical
// State key, giving O(log N) resolve over N discovered states.
// A VertexStore owns every Vertex it creates for the lifetime of one
// search and must be used from a single goroutine.
type VertexStore struct {
	byKey *redblacktree.Tree
}

// NewVertexStore returns an empty store.
func NewVertexStore() *VertexStore {
	return &VertexStore{byKey: redblacktree.NewWithStringComparator()}
}

// Resolve returns the Vertex registered for s, constructing and
// registering a fresh Unvisited one on first reference. The stored
// State is a private copy, so callers may freely reuse s afterwards.
func (vs *VertexStore) Resolve(s puzzle.State) *Vertex {
	key := s.Key()
	if found, ok := vs.byKey.Get(key); ok {
		return found.(*Vertex)
	}
	v := &Vertex{
		State: s.Clone(),
		Index: vs.byKey.Size(),
		Color: Unvisited,
	}
	vs.byKey.Put(key, v)

	return v
}

// Len returns the number of distinct vertices created so far.
func (vs *VertexStore) Len() int {
	return vs.byKey.Size()
}

// Reset discards every vertex and the creation counter, readying the
// store for an independent search.
func (vs *VertexStore) Reset() {
	vs.byKey.Clear()
}
