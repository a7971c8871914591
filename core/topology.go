package core

import "fmt"

// Topology is the immutable structure of a staged shortest-path problem:
// the partition of nodes into stages, the directed edge set, and the
// canonical default weight table.
//
// A Topology is built once by NewTopology (or the canonical Stagecoach
// constructor) and never mutated afterwards; a Graph holds the mutable
// weights on top of it.
type Topology struct {
	stages  [][]NodeID            // node partition, stage-major
	order   []NodeID              // all nodes in stage-major declaration order
	stageOf map[NodeID]Stage      // node ID → stage index
	out     map[NodeID][]EdgeSpec // node ID → departing edges, declaration order
	edges   int                   // total edge count
}

// NewTopology validates and builds a Topology from a stage partition and
// an ordered edge declaration list.
//
// Validation rules (checked in order):
//  1. At least two stages (ErrTooFewStages).
//  2. Every stage non-empty (ErrEmptyStage).
//  3. The first and last stage hold exactly one node each — the start
//     and the target (ErrAmbiguousEndpoint).
//  4. Node IDs are non-empty and unique across all stages
//     (ErrNodeNotFound, ErrDuplicateNode).
//  5. Every edge references known nodes and connects a node in stage k
//     to a node in stage k+1 (ErrNodeNotFound, ErrCrossStageEdge).
//  6. No (from,to) pair is declared twice (ErrDuplicateEdge).
//  7. Every default weight is non-negative (ErrBadWeight).
//
// Connectivity (every non-target node having an outgoing edge) is NOT a
// construction rule; the solver enforces it at solve time and fails
// loudly with its own sentinel. This keeps sparse topologies buildable
// for testing the solver's contract.
//
// Complexity: O(V + E).
func NewTopology(stages [][]NodeID, edges []EdgeSpec) (*Topology, error) {
	// 1) At least two stages: a start layer and a target layer.
	if len(stages) < 2 {
		return nil, ErrTooFewStages
	}

	// 2-4) Walk the partition, indexing every node by stage.
	t := &Topology{
		stages:  make([][]NodeID, len(stages)),
		stageOf: make(map[NodeID]Stage),
		out:     make(map[NodeID][]EdgeSpec),
	}
	for s, layer := range stages {
		if len(layer) == 0 {
			return nil, fmt.Errorf("%w: stage %d", ErrEmptyStage, s)
		}
		if (s == 0 || s == len(stages)-1) && len(layer) != 1 {
			return nil, fmt.Errorf("%w: stage %d holds %d nodes", ErrAmbiguousEndpoint, s, len(layer))
		}
		t.stages[s] = make([]NodeID, len(layer))
		copy(t.stages[s], layer)
		for _, id := range layer {
			if id == "" {
				return nil, fmt.Errorf("%w: empty node ID in stage %d", ErrNodeNotFound, s)
			}
			if _, dup := t.stageOf[id]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, id)
			}
			t.stageOf[id] = Stage(s)
			t.order = append(t.order, id)
		}
	}

	// 5-7) Walk the edge declarations, preserving their order per origin.
	seen := make(map[[2]NodeID]struct{}, len(edges))
	for _, e := range edges {
		fromStage, ok := t.stageOf[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge origin %q", ErrNodeNotFound, e.From)
		}
		toStage, ok := t.stageOf[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge destination %q", ErrNodeNotFound, e.To)
		}
		if toStage != fromStage+1 {
			return nil, fmt.Errorf("%w: %s→%s (stage %d→%d)", ErrCrossStageEdge, e.From, e.To, fromStage, toStage)
		}
		key := [2]NodeID{e.From, e.To}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, e.From, e.To)
		}
		seen[key] = struct{}{}
		if e.Default < 0 {
			return nil, fmt.Errorf("%w: %s→%s default=%d", ErrBadWeight, e.From, e.To, e.Default)
		}
		t.out[e.From] = append(t.out[e.From], e)
		t.edges++
	}

	return t, nil
}

// Stagecoach returns the canonical stagecoach Topology: five stages, ten
// nodes A..J, and eighteen directed edges with the reference weight table.
//
//	start A; stage 1 = {B,C,D}; stage 2 = {E,F,G}; stage 3 = {H,I}; target J.
//
// The declaration order below is the stable tie-breaking order seen by
// OutgoingEdges. Note the table contains genuine ties (B and C both
// reach the target for the same cost via different neighbors); the
// first-declared edge wins them.
func Stagecoach() *Topology {
	t, err := NewTopology(
		[][]NodeID{
			{NodeA},
			{NodeB, NodeC, NodeD},
			{NodeE, NodeF, NodeG},
			{NodeH, NodeI},
			{NodeJ},
		},
		[]EdgeSpec{
			{NodeA, NodeB, 2}, {NodeA, NodeC, 4}, {NodeA, NodeD, 3},
			{NodeB, NodeE, 7}, {NodeB, NodeF, 4},
			{NodeC, NodeE, 6}, {NodeC, NodeF, 3}, {NodeC, NodeG, 4},
			{NodeD, NodeF, 1}, {NodeD, NodeG, 5},
			{NodeE, NodeH, 1}, {NodeE, NodeI, 6},
			{NodeF, NodeH, 6}, {NodeF, NodeI, 3},
			{NodeG, NodeH, 3}, {NodeG, NodeI, 3},
			{NodeH, NodeJ, 3},
			{NodeI, NodeJ, 4},
		},
	)
	if err != nil {
		// The canonical table is a compile-time constant of this package;
		// failing to build it is a programming error, not a runtime state.
		panic(fmt.Sprintf("core: canonical stagecoach topology is invalid: %v", err))
	}

	return t
}

// StageCount returns the number of stages (layers) in the topology.
func (t *Topology) StageCount() int { return len(t.stages) }

// NodeCount returns the total number of nodes across all stages.
func (t *Topology) NodeCount() int { return len(t.order) }

// EdgeCount returns the total number of directed edges.
func (t *Topology) EdgeCount() int { return t.edges }

// Start returns the single node of stage 0.
func (t *Topology) Start() NodeID { return t.stages[0][0] }

// Target returns the single node of the last stage.
func (t *Topology) Target() NodeID { return t.stages[len(t.stages)-1][0] }

// Stages returns a copy of the node partition, stage-major.
func (t *Topology) Stages() [][]NodeID {
	out := make([][]NodeID, len(t.stages))
	for s, layer := range t.stages {
		out[s] = make([]NodeID, len(layer))
		copy(out[s], layer)
	}

	return out
}

// Nodes returns all node IDs in stage-major declaration order.
func (t *Topology) Nodes() []NodeID {
	out := make([]NodeID, len(t.order))
	copy(out, t.order)

	return out
}

// StageOf returns the stage index of n, or ErrNodeNotFound if n is not
// part of the topology.
func (t *Topology) StageOf(n NodeID) (Stage, error) {
	s, ok := t.stageOf[n]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, n)
	}

	return s, nil
}

// HasNode reports whether n belongs to the topology's fixed node set.
func (t *Topology) HasNode(n NodeID) bool {
	_, ok := t.stageOf[n]

	return ok
}
