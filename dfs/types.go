// Package dfs: tunable options, error definitions and the Result type for
// iterative depth-first search over a core.Graph.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/mr-pathak/jia/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange is returned when the source index is invalid.
	ErrVertexOutOfRange = errors.New("dfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnPush is called when a vertex is first discovered and pushed.
	// Receives the vertex index and its tree depth.
	OnPush func(v, depth int)

	// OnVisit is called when a vertex is popped and visited. If it returns
	// an error, DFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this tree depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no filtering, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnPush:         func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPush registers a callback to run when a vertex is discovered.
func WithOnPush(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the DFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given tree depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a DFS traversal, indexed by vertex:
//   - Order: vertices visited, in pop sequence.
//   - Dist: tree-edge depth fixed when the vertex was first pushed;
//     core.Inf if unreached.
//   - Parent: predecessor in the DFS forest; core.None for the source and
//     unreached vertices.
type Result struct {
	Source int
	Order  []int
	Dist   []int64
	Parent []int
}

// Reached reports whether DFS reached vertex v.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != core.Inf
}

// PathTo reconstructs the tree path from the source vertex to dest, in
// source-to-destination order. Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, dest)
	}
	if r.Dist[dest] == core.Inf {
		return nil, fmt.Errorf("dfs: no path to vertex %d", dest)
	}

	path := []int{}
	for cur := dest; cur != core.None; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
