// Package dijkstra: configuration options, error definitions and the
// Result type for the shortest-path entry points.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/mr-pathak/jia/core"
)

// Sentinel errors returned by the dijkstra entry points.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange is returned when the source or target index is invalid.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrBadMaxDistance is returned when WithMaxDistance is given a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Option represents a functional option for configuring a run.
type Option func(*Options)

// Options configures the behavior of a Dijkstra run.
type Options struct {
	// MaxDistance caps exploration: vertices whose final distance would
	// exceed it are never finalized. Default math.MaxInt64 (no cap).
	MaxDistance int64

	// OnFinalize is called each time a vertex's distance becomes final,
	// in extraction order. Distances observed here are non-decreasing.
	OnFinalize func(v int, dist int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no distance cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		OnFinalize:  func(int, int64) {},
		err:         nil,
	}
}

// WithMaxDistance sets a maximum distance threshold; vertices whose
// shortest distance would exceed it are not explored.
// A negative value surfaces as ErrBadMaxDistance when the run starts.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithOnFinalize registers a callback observing vertices as they are
// finalized, in extraction order.
func WithOnFinalize(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// Result holds the outcome of a run, indexed by vertex:
//   - Dist: cumulative weight of the shortest path from the source;
//     core.Inf for vertices the run never finalized.
//   - Parent: predecessor on the shortest path; core.None for the source
//     and unfinalized vertices.
//   - Order: finalization sequence; distances along it are non-decreasing.
//   - Target: the early-exit target of DijkstraTo, core.None for the
//     all-targets variant.
//
// For a DijkstraTo result, entries are authoritative only for vertices
// finalized before the target (the Order prefix); later vertices may hold
// tentative distances from relaxations that were never confirmed.
// MaxDistance-capped runs carry no such caveat: candidates beyond the cap
// are never recorded, so every finite Dist entry belongs to a finalized
// vertex.
type Result struct {
	Source int
	Target int
	Dist   []int64
	Parent []int
	Order  []int
}

// Reached reports whether the run finalized a path to v.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != core.Inf
}

// PathTo reconstructs the shortest path from the source vertex to dest,
// in source-to-destination order, without re-running the algorithm.
// Returns an error if dest was not reached by this run.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, dest)
	}
	if r.Dist[dest] == core.Inf {
		return nil, fmt.Errorf("dijkstra: no path to vertex %d", dest)
	}

	// Walk predecessor links back to the source, then reverse. The walk
	// terminates at the source, the only reached vertex with no parent.
	path := []int{}
	for cur := dest; cur != core.None; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
