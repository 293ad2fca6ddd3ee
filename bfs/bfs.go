// Package bfs implements the queue-driven traversal itself; options,
// errors and the Result type live in types.go.
package bfs

import (
	"fmt"

	"github.com/mr-pathak/jia/core"
)

// color is the per-vertex traversal mark: white = unvisited,
// gray = discovered (enqueued), black = finished.
type color uint8

const (
	white color = iota
	gray
	black
)

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	graph *core.Graph
	opts  Options
	state []color
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from source, applying any
// number of functional Options. On completion Result.Dist holds the
// minimum edge count from source to every reached vertex; vertices the
// search never reached keep core.Inf.
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate source vertex.
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, source)
	}

	// Per-call working state: every vertex starts white, unreached, parentless.
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		state: make([]color, n),
		queue: make([]int, 0, n),
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

	// Seed the queue with the source at depth 0 (no parent).
	w.enqueue(source, 0, core.None)

	return w.res, w.loop()
}

// enqueue marks v discovered at depth d, records its parent, calls
// OnEnqueue, and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.state[v] = gray
	w.res.Dist[v] = int64(d)
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per vertex)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.dequeue()
		if err := w.visit(u); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(u); err != nil {
			return err
		}
		// All neighbors of u processed: u is finished.
		w.state[u] = black
	}

	return nil
}

// dequeue pops the first vertex, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	u := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(u, int(w.res.Dist[u]))

	return u
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(u int) error {
	w.res.Order = append(w.res.Order, u)
	if err := w.opts.OnVisit(u, int(w.res.Dist[u])); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth to u's neighbors and
// enqueues each still-white one at depth u+1.
func (w *walker) enqueueNeighbors(u int) error {
	neighbors, err := w.graph.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", u, err)
	}

	nextDepth := int(w.res.Dist[u]) + 1
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(u, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if w.state[nbr] == white {
			w.enqueue(nbr, nextDepth, u)
		}
	}

	return nil
}
