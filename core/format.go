// Package core: human-readable adjacency dump.

package core

import (
	"fmt"
	"strings"
)

// String renders the adjacency structure for human inspection: one line
// per vertex, "id: to(weight) ...", neighbors in ascending index order.
// The format is diagnostic output, not a stable contract.
// Complexity: O(V + E log E).
func (g *Graph) String() string {
	var sb strings.Builder

	for v := 0; v < g.vertexCount; v++ {
		fmt.Fprintf(&sb, "%d:", v)
		arcs, _ := g.Neighbors(v) // v is always in range here
		for _, a := range arcs {
			fmt.Fprintf(&sb, " %d(%d)", a.To, a.Weight)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
