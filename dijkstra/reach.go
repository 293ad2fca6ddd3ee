// Package dijkstra: reachability and path-string helpers layered on the
// single-target variant.
package dijkstra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mr-pathak/jia/core"
)

// Unreachable is the Reachable return value for targets no path leads to.
const Unreachable int64 = -1

// NoPathMessage is the PathString rendering for unreachable targets.
const NoPathMessage = "no path exists"

// Reachable reports whether target can be reached from source, by running
// the single-target variant from scratch: it is a full shortest-path
// computation, not a cheap lookup, and it never composes with a previous
// run's results. Returns Unreachable (-1) if no path exists, otherwise
// the shortest distance.
func Reachable(g *core.Graph, source, target int, opts ...Option) (int64, error) {
	res, err := DijkstraTo(g, source, target, opts...)
	if err != nil {
		return 0, err
	}
	if res.Dist[target] == core.Inf {
		return Unreachable, nil
	}

	return res.Dist[target], nil
}

// PathString renders the shortest path from source to target as an
// arrow-joined index sequence, e.g. "0 -> 1 -> 4 -> 5", re-running the
// single-target variant internally. Unreachable targets render as
// NoPathMessage; PathString(g, s, s) renders the single-element path.
// The text is presentation only; the ordered id sequence is the contract.
func PathString(g *core.Graph, source, target int, opts ...Option) (string, error) {
	res, err := DijkstraTo(g, source, target, opts...)
	if err != nil {
		return "", err
	}
	if res.Dist[target] == core.Inf {
		return NoPathMessage, nil
	}

	path, err := res.PathTo(target)
	if err != nil {
		// Dist[target] is finite, so the predecessor walk cannot fail.
		return "", fmt.Errorf("dijkstra: path reconstruction: %w", err)
	}

	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> "), nil
}
