package core

import (
	"fmt"
	"math/rand"
	"sync"
)

// defaultRNGSeed is the fixed seed used by ApplyRandomWeights when the
// caller passes a nil RNG. The value is arbitrary but stable to keep
// reproducible defaults.
const defaultRNGSeed int64 = 1

// Graph binds an immutable Topology to the current, mutable edge weights.
//
// The topology (node set, stage partition, edge set) never changes after
// construction; only weights are reassigned. A sync.RWMutex guards the
// weight table, so concurrent reads and weight edits are safe. Callers
// must still not interleave weight edits with an in-flight solve if they
// want the solve to observe one consistent snapshot.
type Graph struct {
	mu   sync.RWMutex
	topo *Topology
	// out mirrors topo's adjacency in declaration order, with live weights.
	out map[NodeID][]Edge
}

// NewGraph creates a Graph over t, initialized with t's canonical
// default weights. Returns ErrNilTopology if t is nil.
//
// Complexity: O(V + E).
func NewGraph(t *Topology) (*Graph, error) {
	if t == nil {
		return nil, ErrNilTopology
	}

	g := &Graph{
		topo: t,
		out:  make(map[NodeID][]Edge, len(t.order)),
	}
	for _, n := range t.order {
		specs := t.out[n]
		if len(specs) == 0 {
			continue
		}
		edges := make([]Edge, len(specs))
		for i, spec := range specs {
			edges[i] = Edge{From: spec.From, To: spec.To, Weight: spec.Default}
		}
		g.out[n] = edges
	}

	return g, nil
}

// Topology returns the immutable topology this graph is built on.
func (g *Graph) Topology() *Topology { return g.topo }

// OutgoingEdges returns copies of all edges departing n, in the stable
// topology declaration order. That order is the deterministic
// tie-breaking order used by solvers.
//
// Returns ErrNodeNotFound if n is outside the fixed node set. The target
// node yields an empty slice and no error.
//
// Complexity: O(deg(n)).
func (g *Graph) OutgoingEdges(n NodeID) ([]Edge, error) {
	if !g.topo.HasNode(n) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, n)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, len(g.out[n]))
	copy(edges, g.out[n])

	return edges, nil
}

// Weight returns the current weight of the edge from→to.
// Returns ErrNodeNotFound for unknown endpoints and ErrEdgeNotFound if
// the topology has no such edge.
//
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to NodeID) (int64, error) {
	if !g.topo.HasNode(from) {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if !g.topo.HasNode(to) {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.out[from] {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// SetWeight reassigns the weight of the edge from→to.
//
// The weight must be a non-negative integer (ErrBadWeight otherwise).
// Only that edge's weight is mutated; no recomputation is triggered —
// solving is always a separate, explicit call.
//
// Complexity: O(deg(from)).
func (g *Graph) SetWeight(from, to NodeID, weight int64) error {
	if !g.topo.HasNode(from) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if !g.topo.HasNode(to) {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	edges := g.out[from]
	for i := range edges {
		if edges[i].To == to {
			edges[i].Weight = weight

			return nil
		}
	}

	return fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// ApplyDefaultWeights resets every edge weight to the topology's
// canonical reference value.
//
// Complexity: O(E).
func (g *Graph) ApplyDefaultWeights() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for n, specs := range g.topo.out {
		edges := g.out[n]
		for i := range edges {
			edges[i].Weight = specs[i].Default
		}
	}
}

// ResetAllWeights sets every edge weight to zero.
//
// Complexity: O(E).
func (g *Graph) ResetAllWeights() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, edges := range g.out {
		for i := range edges {
			edges[i].Weight = 0
		}
	}
}

// ApplyRandomWeights assigns each edge an independently drawn integer
// weight, uniform on the inclusive range [minW, maxW].
//
// The range must satisfy 0 ≤ minW ≤ maxW (ErrBadWeightRange otherwise).
// If rng is nil, a deterministic generator with a fixed seed is used, so
// the default behavior stays reproducible; pass your own *rand.Rand for
// varied draws. Edges are visited in stage-major declaration order, so a
// given RNG state always yields the same assignment.
//
// Complexity: O(E).
func (g *Graph) ApplyRandomWeights(minW, maxW int64, rng *rand.Rand) error {
	if minW < 0 || maxW < minW {
		return fmt.Errorf("%w: min=%d max=%d", ErrBadWeightRange, minW, maxW)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}
	span := maxW - minW + 1

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, n := range g.topo.order {
		edges := g.out[n]
		for i := range edges {
			edges[i].Weight = minW + rng.Int63n(span)
		}
	}

	return nil
}

// Stages returns a copy of the node partition, stage-major.
func (g *Graph) Stages() [][]NodeID { return g.topo.Stages() }

// Nodes returns all node IDs in stage-major declaration order.
func (g *Graph) Nodes() []NodeID { return g.topo.Nodes() }

// StageOf returns the stage index of n, or ErrNodeNotFound.
func (g *Graph) StageOf(n NodeID) (Stage, error) { return g.topo.StageOf(n) }

// StageCount returns the number of stages in the topology.
func (g *Graph) StageCount() int { return g.topo.StageCount() }

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int { return g.topo.EdgeCount() }

// HasNode reports whether n belongs to the fixed node set.
func (g *Graph) HasNode(n NodeID) bool { return g.topo.HasNode(n) }

// Start returns the single node of stage 0.
func (g *Graph) Start() NodeID { return g.topo.Start() }

// Target returns the single node of the last stage.
func (g *Graph) Target() NodeID { return g.topo.Target() }
