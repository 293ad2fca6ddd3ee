// Package core: Graph method implementations.
//
// This file provides the thread-safe mutation and query operations on the
// Graph type defined in types.go. All index validation happens before any
// state is touched, so a failed call never leaves a partial mutation
// behind. Neighbor enumeration is returned in ascending index order to
// keep traversal results reproducible.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts or overwrites the directed arc src→dst with the given
// weight and increments the edge count. Self-loops are permitted.
// Returns ErrVertexOutOfRange if either index is invalid.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst int, weight int64) error {
	if err := g.checkVertex(src); err != nil {
		return err
	}
	if err := g.checkVertex(dst); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[src][dst] = weight
	g.edgeCount++

	return nil
}

// AddEdgeUndirected inserts or overwrites both arcs a→b and b→a with the
// given weight. The edge count increments by exactly one per call, not one
// per arc; callers counting logical arcs must account for this themselves.
// Returns ErrVertexOutOfRange if either index is invalid.
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeUndirected(a, b int, weight int64) error {
	if err := g.checkVertex(a); err != nil {
		return err
	}
	if err := g.checkVertex(b); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight
	g.edgeCount++

	return nil
}

// VertexCount returns the fixed number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// EdgeCount returns the number of edge-insertion calls performed so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasVertex reports whether v is a valid vertex index for this graph.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.vertexCount
}

// HasEdge reports whether the arc src→dst exists.
// Out-of-range indices simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(src, dst int) bool {
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[src][dst]

	return ok
}

// Weight returns the weight of the arc src→dst and whether it exists.
// Out-of-range indices report a missing arc.
// Complexity: O(1).
func (g *Graph) Weight(src, dst int) (int64, bool) {
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return 0, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[src][dst]

	return w, ok
}

// Neighbors returns the outgoing arcs of v sorted by destination index
// ascending. The slice is freshly allocated and safe to retain.
// Returns ErrVertexOutOfRange if v is invalid.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Neighbors(v int) ([]Arc, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Arc, 0, len(g.adjacency[v]))
	for to, w := range g.adjacency[v] {
		out = append(out, Arc{To: to, Weight: w})
	}
	// Sort by destination to ensure reproducible ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// NeighborIDs returns the destination indices of v's outgoing arcs,
// sorted ascending.
// Returns ErrVertexOutOfRange if v is invalid.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.adjacency[v]))
	for to := range g.adjacency[v] {
		ids = append(ids, to)
	}
	sort.Ints(ids)

	return ids, nil
}

// Degree returns the out-degree of v (the number of distinct destinations,
// a self-loop counting once).
// Returns ErrVertexOutOfRange if v is invalid.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}

// checkVertex validates a vertex index against the fixed vertex range.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.vertexCount {
		return fmt.Errorf("%w: %d (graph has %d vertices)", ErrVertexOutOfRange, v, g.vertexCount)
	}

	return nil
}
