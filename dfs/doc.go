// Package dfs provides iterative, stack-driven depth-first search over a
// core.Graph, returning tree-edge depths, parent links, and visit order.
//
// What
//
//   - Explore vertices along a LIFO stack from a source vertex: structurally
//     the same state machine as package bfs with the queue swapped for a
//     stack (discover on push, finish after a vertex's neighbors are
//     examined).
//   - Returns a Result containing, indexed by vertex:
//   - Order: pop (visit) sequence over reached vertices
//   - Dist: tree-edge depth assigned when the vertex was first pushed
//     (core.Inf if unreached)
//   - Parent: predecessor in the DFS forest (core.None for the source and
//     unreached vertices)
//   - Hooks (OnPush, OnVisit), depth limiting and neighbor filtering mirror
//     package bfs.
//
// Depth semantics
//
//	Dist is the stack-order tree depth, NOT the discovery/finish timestamps
//	of the classic recursive formulation: a vertex's depth is fixed when it
//	is first pushed, and is only meaningful along the specific stack-driven
//	visiting order. Predecessors still form a valid DFS forest. This is the
//	defined behavior, not an approximation of recursive DFS.
//
// Determinism
//
//	Neighbors are pushed in ascending index order, so (being a stack) the
//	highest-indexed unvisited neighbor is explored first and the visit
//	sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log E) including sorted neighbor enumeration
//   - Memory: O(V)
package dfs
