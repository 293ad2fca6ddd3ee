// Package jia is a small in-memory graph library over a fixed,
// index-identified vertex set, with the classic traversal and
// shortest-path algorithms.
//
// Vertices are numbered 0..N-1 at construction time and never added or
// removed afterwards; edges are directed or undirected, carry integer
// weights, and may be overwritten (last write wins per ordered pair).
//
// Everything is organized under four subpackages:
//
//	core/     - the Graph type: construction, edge mutation, adjacency queries
//	bfs/      - breadth-first search (unweighted shortest hop counts)
//	dfs/      - iterative depth-first search (stack-order tree depths)
//	dijkstra/ - single-source shortest paths, reachability, path rendering
//
// Each algorithm allocates its own per-call working state, so any number
// of traversals may run concurrently over a graph once edge building is
// done. Results come back as index-addressed slices plus predecessor
// links for path reconstruction.
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╱ │
//	    3   2───4───5⟲
//
//	an undirected graph of six vertices; dijkstra finds 0 -> 5 in four hops.
//
//	go get github.com/mr-pathak/jia
package jia
