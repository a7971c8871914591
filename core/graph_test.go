// Package core_test contains unit tests for the mutable-weight Graph:
// construction, edge lookups, and the weight-management operations.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stagecoach/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStagecoachGraph builds a Graph over the canonical topology, failing
// the test on construction errors.
func newStagecoachGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(core.Stagecoach())
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Construction and defaults.
// ------------------------------------------------------------------------

func TestNewGraph_NilTopology(t *testing.T) {
	_, err := core.NewGraph(nil)
	assert.ErrorIs(t, err, core.ErrNilTopology)
}

func TestNewGraph_LoadsDefaultWeights(t *testing.T) {
	g := newStagecoachGraph(t)

	// Spot-check the canonical reference table.
	for _, tc := range []struct {
		from, to core.NodeID
		want     int64
	}{
		{core.NodeA, core.NodeB, 2},
		{core.NodeC, core.NodeF, 3},
		{core.NodeD, core.NodeF, 1},
		{core.NodeE, core.NodeH, 1},
		{core.NodeH, core.NodeJ, 3},
		{core.NodeI, core.NodeJ, 4},
	} {
		got, err := g.Weight(tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "default weight %s→%s", tc.from, tc.to)
	}
}

// ------------------------------------------------------------------------
// 2. OutgoingEdges: stable order, copies, error contract.
// ------------------------------------------------------------------------

func TestOutgoingEdges_StableDeclarationOrder(t *testing.T) {
	g := newStagecoachGraph(t)

	edges, err := g.OutgoingEdges(core.NodeC)
	require.NoError(t, err)

	// C's edges in declaration order: E, F, G. This order is the
	// solver's tie-breaking order, so it is pinned here.
	require.Len(t, edges, 3)
	assert.Equal(t, core.NodeE, edges[0].To)
	assert.Equal(t, core.NodeF, edges[1].To)
	assert.Equal(t, core.NodeG, edges[2].To)

	// A second call observes the identical order.
	again, err := g.OutgoingEdges(core.NodeC)
	require.NoError(t, err)
	assert.Equal(t, edges, again)
}

func TestOutgoingEdges_TargetHasNone(t *testing.T) {
	g := newStagecoachGraph(t)

	edges, err := g.OutgoingEdges(core.NodeJ)
	require.NoError(t, err)
	assert.Empty(t, edges, "the target never has departing edges")
}

func TestOutgoingEdges_UnknownNode(t *testing.T) {
	g := newStagecoachGraph(t)

	_, err := g.OutgoingEdges("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestOutgoingEdges_ReturnsCopies(t *testing.T) {
	g := newStagecoachGraph(t)

	edges, err := g.OutgoingEdges(core.NodeA)
	require.NoError(t, err)
	edges[0].Weight = 999

	got, err := g.Weight(core.NodeA, edges[0].To)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got, "mutating the returned slice must not touch the graph")
}

// ------------------------------------------------------------------------
// 3. SetWeight / Weight: mutation and error contract.
// ------------------------------------------------------------------------

func TestSetWeight_MutatesSingleEdge(t *testing.T) {
	g := newStagecoachGraph(t)

	require.NoError(t, g.SetWeight(core.NodeB, core.NodeF, 9))

	got, err := g.Weight(core.NodeB, core.NodeF)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)

	// The sibling edge is untouched.
	other, err := g.Weight(core.NodeB, core.NodeE)
	require.NoError(t, err)
	assert.Equal(t, int64(7), other)
}

func TestSetWeight_RejectsNegative(t *testing.T) {
	g := newStagecoachGraph(t)

	err := g.SetWeight(core.NodeA, core.NodeB, -3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	// The weight is unchanged after the rejected call.
	got, werr := g.Weight(core.NodeA, core.NodeB)
	require.NoError(t, werr)
	assert.Equal(t, int64(2), got)
}

func TestSetWeight_UnknownNodeOrEdge(t *testing.T) {
	g := newStagecoachGraph(t)

	assert.ErrorIs(t, g.SetWeight("Z", core.NodeB, 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetWeight(core.NodeA, "Z", 1), core.ErrNodeNotFound)

	// Both endpoints exist but no such edge is declared (A skips to H).
	assert.ErrorIs(t, g.SetWeight(core.NodeA, core.NodeH, 1), core.ErrEdgeNotFound)

	_, err := g.Weight(core.NodeB, core.NodeD)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound, "B and D share a stage; no edge exists")
}

// ------------------------------------------------------------------------
// 4. Bulk weight management: defaults, zeroes, random fills.
// ------------------------------------------------------------------------

func TestResetAllWeights_Zeroes(t *testing.T) {
	g := newStagecoachGraph(t)
	g.ResetAllWeights()

	for _, n := range g.Nodes() {
		edges, err := g.OutgoingEdges(n)
		require.NoError(t, err)
		for _, e := range edges {
			assert.Zero(t, e.Weight, "edge %s→%s after reset", e.From, e.To)
		}
	}
}

func TestApplyDefaultWeights_RestoresCanonicalTable(t *testing.T) {
	g := newStagecoachGraph(t)

	// Scribble over the table, then restore.
	g.ResetAllWeights()
	require.NoError(t, g.SetWeight(core.NodeG, core.NodeI, 42))
	g.ApplyDefaultWeights()

	for _, tc := range []struct {
		from, to core.NodeID
		want     int64
	}{
		{core.NodeA, core.NodeD, 3},
		{core.NodeG, core.NodeI, 3},
		{core.NodeF, core.NodeH, 6},
	} {
		got, err := g.Weight(tc.from, tc.to)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "restored weight %s→%s", tc.from, tc.to)
	}
}

func TestApplyRandomWeights_RangeValidation(t *testing.T) {
	g := newStagecoachGraph(t)

	assert.ErrorIs(t, g.ApplyRandomWeights(-1, 5, nil), core.ErrBadWeightRange)
	assert.ErrorIs(t, g.ApplyRandomWeights(6, 5, nil), core.ErrBadWeightRange)
}

func TestApplyRandomWeights_WithinInclusiveRange(t *testing.T) {
	g := newStagecoachGraph(t)
	require.NoError(t, g.ApplyRandomWeights(2, 5, rand.New(rand.NewSource(7))))

	for _, n := range g.Nodes() {
		edges, err := g.OutgoingEdges(n)
		require.NoError(t, err)
		for _, e := range edges {
			assert.GreaterOrEqual(t, e.Weight, int64(2), "edge %s→%s", e.From, e.To)
			assert.LessOrEqual(t, e.Weight, int64(5), "edge %s→%s", e.From, e.To)
		}
	}
}

func TestApplyRandomWeights_DegenerateRangeIsConstant(t *testing.T) {
	g := newStagecoachGraph(t)
	require.NoError(t, g.ApplyRandomWeights(4, 4, nil))

	w, err := g.Weight(core.NodeA, core.NodeB)
	require.NoError(t, err)
	assert.Equal(t, int64(4), w, "min==max pins every weight")
}

// allWeights snapshots every edge weight keyed by endpoints.
func allWeights(t *testing.T, g *core.Graph) map[[2]core.NodeID]int64 {
	t.Helper()
	out := make(map[[2]core.NodeID]int64)
	for _, n := range g.Nodes() {
		edges, err := g.OutgoingEdges(n)
		require.NoError(t, err)
		for _, e := range edges {
			out[[2]core.NodeID{e.From, e.To}] = e.Weight
		}
	}

	return out
}

func TestApplyRandomWeights_DeterministicPerSeed(t *testing.T) {
	g1 := newStagecoachGraph(t)
	g2 := newStagecoachGraph(t)

	require.NoError(t, g1.ApplyRandomWeights(1, 10, rand.New(rand.NewSource(42))))
	require.NoError(t, g2.ApplyRandomWeights(1, 10, rand.New(rand.NewSource(42))))

	assert.Equal(t, allWeights(t, g1), allWeights(t, g2), "same seed ⇒ same assignment")
}

func TestApplyRandomWeights_NilRNGIsReproducible(t *testing.T) {
	g1 := newStagecoachGraph(t)
	g2 := newStagecoachGraph(t)

	require.NoError(t, g1.ApplyRandomWeights(1, 10, nil))
	require.NoError(t, g2.ApplyRandomWeights(1, 10, nil))

	assert.Equal(t, allWeights(t, g1), allWeights(t, g2), "nil RNG falls back to a fixed seed")
}
