// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing, indexed by vertex:
//   - Order: dequeue sequence over reached vertices
//   - Dist: minimum number of edges from the source (core.Inf if unreached)
//   - Parent: predecessor in the BFS tree (core.None for the source and
//     unreached vertices)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows skipping individual neighbor arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest hop counts in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in ascending index order and BFS
//	enqueues them in that order, so the visit sequence is fully reproducible.
//
// State
//
//	Each call allocates its own per-vertex working state (tricolor marks,
//	distances, parents); nothing is stored on the graph, so concurrent BFS
//	runs over the same built graph are safe.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log E) including sorted neighbor enumeration
//   - Memory: O(V)
package bfs
