// Package core defines the central Graph type over a fixed, pre-sized
// vertex set, and provides thread-safe primitives for building and
// querying it.
//
// Vertices are identified by their index 0..VertexCount-1, assigned once
// at construction; the vertex set never grows or shrinks. Edges are
// directed arcs with int64 weights; an undirected edge is stored as two
// mirrored arcs. Inserting an arc that already exists overwrites its
// weight (last write wins; no parallel edges).
//
// A single sync.RWMutex guards adjacency and the edge counter, so edge
// building may happen across goroutines, and read-only queries (including
// the traversal packages, which keep all working state per call) may run
// concurrently once building is done.
//
// Errors:
//
//	ErrVertexCount      - construction with a vertex count below 1.
//	ErrVertexOutOfRange - a vertex index outside [0, VertexCount).
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexCount indicates a construction attempt with fewer than one vertex.
	ErrVertexCount = errors.New("core: vertex count must be at least 1")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")
)

// Inf is the distance sentinel for vertices a traversal never reached.
const Inf int64 = math.MaxInt64

// None marks the absence of a predecessor in traversal parent links.
const None int = -1

// Arc is a single outgoing adjacency entry: destination vertex and weight.
type Arc struct {
	// To is the destination vertex index.
	To int

	// Weight is the cost of the arc.
	Weight int64
}

// Graph is the core in-memory graph data structure.
//
// The vertex count is fixed at construction. edgeCount counts edge
// *insertion calls*: an undirected insertion writes two arcs but counts
// once. adjacency[v] maps neighbor index to weight.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	vertexCount int // immutable after construction
	edgeCount   int // insertion calls performed so far

	adjacency []map[int]int64 // vertex index → (neighbor → weight)
}

// New creates a Graph with vertexCount vertices, identities
// 0..vertexCount-1, empty adjacency, and zero edges.
// Returns ErrVertexCount if vertexCount < 1.
// Complexity: O(V)
func New(vertexCount int) (*Graph, error) {
	if vertexCount < 1 {
		return nil, ErrVertexCount
	}

	adjacency := make([]map[int]int64, vertexCount)
	for i := range adjacency {
		adjacency[i] = make(map[int]int64)
	}

	return &Graph{
		vertexCount: vertexCount,
		adjacency:   adjacency,
	}, nil
}
