// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph, in an all-targets and an early-exit single-target variant,
// plus reachability and path-rendering helpers built on top of them.
//
// The algorithm processes vertices in order of increasing distance using a
// min-heap priority queue, relaxing arcs and updating distances. It uses a
// "lazy" decrease-key strategy: relaxation pushes duplicate heap entries
// instead of adjusting keys in place, and stale entries for vertices that
// were already finalized are skipped when popped.
//
// Precondition
//
//	All edge weights must be non-negative. This is required for
//	correctness but is NOT validated: a graph with negative weights
//	produces unspecified distances. Unreachable targets, zero weights and
//	self-loops are all valid inputs, not errors. Arcs whose weight would
//	push a path sum past the core.Inf sentinel are treated as unreachable
//	rather than allowed to overflow.
//
// Entry points:
//
//   - Dijkstra(g, source):       distances from source to every vertex
//   - DijkstraTo(g, source, t):  stops as soon as t is finalized
//   - Reachable(g, source, t):   -1 or the distance (re-runs DijkstraTo)
//   - PathString(g, source, t):  "0 -> 1 -> 4" rendering of the path
//
// Each call allocates its own per-vertex working state (distances,
// parents, finalized flags), so results never leak between runs and
// concurrent runs over a built graph are safe.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions from the heap.
//   - Each relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor slices.
//   - O(E) worst-case heap entries under lazy decrease-key.
package dijkstra
