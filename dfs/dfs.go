// Package dfs implements the stack-driven traversal itself; options,
// errors and the Result type live in types.go.
package dfs

import (
	"fmt"

	"github.com/mr-pathak/jia/core"
)

// color is the per-vertex traversal mark: white = unvisited,
// gray = discovered (pushed), black = finished.
type color uint8

const (
	white color = iota
	gray
	black
)

// walker encapsulates mutable DFS state for a single call.
type walker struct {
	graph *core.Graph
	opts  Options
	state []color
	stack []int
	res   *Result
}

// DFS runs iterative depth-first search on g starting from source,
// applying any number of functional Options. Dist holds the tree-edge
// depth at which each vertex was discovered; vertices the search never
// reached keep core.Inf. See the package documentation for how this
// differs from the recursive timestamped formulation.
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func DFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, source)
	}

	// Per-call working state: every vertex starts white, unreached, parentless.
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		state: make([]color, n),
		stack: make([]int, 0, n),
		res: &Result{
			Source: source,
			Order:  make([]int, 0, n),
			Dist:   make([]int64, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Dist[i] = core.Inf
		w.res.Parent[i] = core.None
	}

	// Seed the stack with the source at depth 0 (no parent).
	w.push(source, 0, core.None)

	return w.res, w.loop()
}

// push marks v discovered at depth d, records its parent, calls OnPush,
// and puts it on the stack.
func (w *walker) push(v, d, parent int) {
	w.state[v] = gray
	w.res.Dist[v] = int64(d)
	w.res.Parent[v] = parent
	w.opts.OnPush(v, d)
	w.stack = append(w.stack, v)
}

// loop processes the stack until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.stack) > 0 {
		// cancellation check (once per vertex)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// LIFO pop: the most recently discovered vertex is visited next.
		u := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if err := w.visit(u); err != nil {
			return err
		}
		if err := w.pushNeighbors(u); err != nil {
			return err
		}
		// All neighbors of u examined: u is finished.
		w.state[u] = black
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(u int) error {
	w.res.Order = append(w.res.Order, u)
	if err := w.opts.OnVisit(u, int(w.res.Dist[u])); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %d: %w", u, err)
	}

	return nil
}

// pushNeighbors applies filtering and MaxDepth to u's neighbors and
// pushes each still-white one at depth u+1.
func (w *walker) pushNeighbors(u int) error {
	neighbors, err := w.graph.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", u, err)
	}

	nextDepth := int(w.res.Dist[u]) + 1
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(u, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		if w.state[nbr] == white {
			w.push(nbr, nextDepth, u)
		}
	}

	return nil
}
