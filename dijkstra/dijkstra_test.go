// Package dijkstra_test validates both shortest-path variants: input
// validation, basic and directed topologies, the lazy decrease-key
// revisit policy, early exit, distance caps, and edge cases such as
// self-loops and zero-weight edges.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-pathak/jia/core"
	"github.com/mr-pathak/jia/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs, raised before any work.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	res, err := dijkstra.Dijkstra(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrGraphNil)

	res, err = dijkstra.DijkstraTo(nil, 0, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrGraphNil)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)

	for _, src := range []int{-1, 3, 100} {
		res, err := dijkstra.Dijkstra(g, src)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
	}
}

func TestDijkstraTo_TargetOutOfRange(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)

	res, err := dijkstra.DijkstraTo(g, 0, 3)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
}

func TestDijkstra_BadMaxDistance(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)

	_, err = dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// ------------------------------------------------------------------------
// 2. Basic functionality: small graphs, relaxation correctness.
// ------------------------------------------------------------------------

func TestDijkstra_SimpleTriangle(t *testing.T) {
	// 0-1(1), 1-2(2), 0-2(5): via 1 beats the direct edge.
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 1))
	require.NoError(t, g.AddEdgeUndirected(1, 2, 2))
	require.NoError(t, g.AddEdgeUndirected(0, 2, 5))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 3}, res.Dist)
	assert.Equal(t, core.None, res.Parent[0])
	assert.Equal(t, 0, res.Parent[1])
	assert.Equal(t, 1, res.Parent[2])
	assert.Equal(t, core.None, res.Target)
}

func TestDijkstra_DirectedOneWay(t *testing.T) {
	// 0→1(2), 0→2(1), 2→1(1) is shorter than the direct arc; nothing
	// reaches 0 back.
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1}, res.Dist)

	// From 1 nothing is reachable.
	back, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Inf, back.Dist[0])
	assert.Equal(t, core.Inf, back.Dist[2])
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 0))
	require.NoError(t, g.AddEdgeUndirected(1, 2, 0))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, res.Dist)
}

func TestDijkstra_SelfLoopHasNoEffect(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 0, 3))
	require.NoError(t, g.AddEdgeUndirected(0, 1, 2))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist[0])
	assert.Equal(t, int64(2), res.Dist[1])
	assert.Equal(t, core.None, res.Parent[0])
}

func TestDijkstra_HugeWeightsDoNotOverflow(t *testing.T) {
	// 1→2 carries a weight so large that 5 + weight wraps past MaxInt64;
	// that arc must behave like an unreachable one, and the wrapped
	// negative sum must never win a relaxation.
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, core.Inf-2))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, core.Inf}, res.Dist)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Reached(2))
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g, err := core.New(1)
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, res.Dist)
	assert.Equal(t, []int{0}, res.Order)
}

// ------------------------------------------------------------------------
// 3. Revisit policy: stale heap entries must be skipped, not reprocessed.
// ------------------------------------------------------------------------

func TestDijkstra_LazyDecreaseKeySkipsStaleEntries(t *testing.T) {
	// 0→1(10), 0→2(1), 2→1(1): vertex 1 is pushed at distance 10, then
	// re-pushed at 2; the stale entry surfaces later and must be ignored.
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))

	var finalized []int
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithOnFinalize(func(v int, _ int64) {
		finalized = append(finalized, v)
	}))
	require.NoError(t, err)

	// Each vertex finalized exactly once despite duplicate heap entries.
	assert.Equal(t, []int{0, 2, 1}, finalized)
	assert.Equal(t, finalized, res.Order)
	assert.Equal(t, int64(2), res.Dist[1])
	assert.Equal(t, 2, res.Parent[1])
}

func TestDijkstra_FinalizationOrderIsMonotone(t *testing.T) {
	g, err := core.New(6)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 7))
	require.NoError(t, g.AddEdgeUndirected(0, 2, 9))
	require.NoError(t, g.AddEdgeUndirected(0, 5, 14))
	require.NoError(t, g.AddEdgeUndirected(1, 2, 10))
	require.NoError(t, g.AddEdgeUndirected(1, 3, 15))
	require.NoError(t, g.AddEdgeUndirected(2, 3, 11))
	require.NoError(t, g.AddEdgeUndirected(2, 5, 2))
	require.NoError(t, g.AddEdgeUndirected(3, 4, 6))
	require.NoError(t, g.AddEdgeUndirected(4, 5, 9))

	prev := int64(-1)
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithOnFinalize(func(_ int, d int64) {
		assert.GreaterOrEqual(t, d, prev, "finalization distances must be non-decreasing")
		prev = d
	}))
	require.NoError(t, err)

	// Classic fixture: shortest 0→4 is 0-2-5-4 = 20.
	assert.Equal(t, int64(20), res.Dist[4])
	for v, d := range res.Dist {
		assert.GreaterOrEqual(t, d, int64(0), "dist[%d]", v)
	}
}

// ------------------------------------------------------------------------
// 4. Single-target variant: early exit and consistency with all-targets.
// ------------------------------------------------------------------------

func TestDijkstraTo_StopsAtTarget(t *testing.T) {
	g, err := core.New(5)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	res, err := dijkstra.DijkstraTo(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Dist[2])
	assert.Equal(t, 2, res.Target)
	// Vertices past the target were never finalized.
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, core.Inf, res.Dist[4])
}

func TestDijkstraTo_TargetEqualsSource(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 5))

	res, err := dijkstra.DijkstraTo(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist[0])
	assert.Equal(t, []int{0}, res.Order)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestDijkstraTo_AgreesWithAllTargets(t *testing.T) {
	g, err := core.New(6)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 4))
	require.NoError(t, g.AddEdgeUndirected(0, 2, 2))
	require.NoError(t, g.AddEdgeUndirected(1, 2, 1))
	require.NoError(t, g.AddEdgeUndirected(1, 3, 5))
	require.NoError(t, g.AddEdgeUndirected(2, 3, 8))
	require.NoError(t, g.AddEdgeUndirected(3, 4, 2))
	// vertex 5 stays disconnected

	all, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	for target := 0; target < 6; target++ {
		single, err := dijkstra.DijkstraTo(g, 0, target)
		require.NoError(t, err)
		assert.Equal(t, all.Dist[target], single.Dist[target], "target %d", target)
	}
}

func TestDijkstra_Idempotent(t *testing.T) {
	g, err := core.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 3))
	require.NoError(t, g.AddEdgeUndirected(1, 2, 4))
	require.NoError(t, g.AddEdgeUndirected(0, 3, 10))
	require.NoError(t, g.AddEdgeUndirected(3, 2, 1))

	first, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	second, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Dist, second.Dist)
	assert.Equal(t, first.Parent, second.Parent)
	assert.Equal(t, first.Order, second.Order)
}

// ------------------------------------------------------------------------
// 5. MaxDistance cap.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Linear: 0-1(1)-2(1)-3(1); cap 1 finalizes only 0 and 1.
	g, err := core.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 1))
	require.NoError(t, g.AddEdgeUndirected(1, 2, 1))
	require.NoError(t, g.AddEdgeUndirected(2, 3, 1))

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist[0])
	assert.Equal(t, int64(1), res.Dist[1])
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, core.Inf, res.Dist[2])
	assert.False(t, res.Reached(2))
	assert.False(t, res.Reached(3))
}

func TestDijkstra_MaxDistanceLeavesNoTentativeEntries(t *testing.T) {
	// 0→1(3), 1→2(4), 0→2(10): with cap 2 nothing past the source is
	// finalized, and vertices 1 and 2 must report unreached rather than
	// keep the tentative (and for 2, non-shortest) values relaxation saw.
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(0, 2, 10))

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, []int64{0, core.Inf, core.Inf}, res.Dist)
	assert.False(t, res.Reached(1))
	assert.False(t, res.Reached(2))

	_, err = res.PathTo(2)
	assert.Error(t, err)
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 1))

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.False(t, res.Reached(1))
}

// ------------------------------------------------------------------------
// 6. Path reconstruction on Result.
// ------------------------------------------------------------------------

func TestResult_PathTo(t *testing.T) {
	g, err := core.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeUndirected(0, 1, 1))
	require.NoError(t, g.AddEdgeUndirected(1, 2, 1))
	require.NoError(t, g.AddEdgeUndirected(2, 3, 1))
	require.NoError(t, g.AddEdgeUndirected(0, 3, 10))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = res.PathTo(17)
	assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
}

func TestResult_PathToUnreached(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	_, err = res.PathTo(1)
	assert.Error(t, err)
}
