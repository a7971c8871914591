package induction

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stagecoach/core"
)

// unsetCost marks a node whose cost-to-go has not been finalized yet.
// It is a sentinel, never a legitimate cost: with non-negative integer
// weights and a bounded stage count, real costs stay far below it.
const unsetCost = int64(math.MaxInt64)

// Solve runs backward induction over the staged graph g and returns the
// complete Result: cost-to-go and next-hop for every node, the optimal
// start→target path, its per-step costs, and the total cost.
//
// Algorithm:
//  1. CostToGo[target] = 0.
//  2. Process stages in strictly decreasing order; every successor is
//     one stage ahead, hence already finalized.
//  3. For each node, relax all outgoing edges with a strict "<", so the
//     first-declared edge wins ties (see package doc).
//  4. Reconstruct the path from the start by following NextHop.
//
// Returns ErrNilGraph for a nil graph and ErrDisconnectedGraph (wrapped
// with the offending node) if any non-target node cannot reach the
// target.
//
// Complexity: O(V + E) time, O(V) space.
func Solve(g *core.Graph) (*Result, error) {
	// 1) Validate the input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Initialize the runner with fresh DP tables; nothing is shared
	//    or cached across calls.
	stages := g.Stages()
	r := &runner{
		g:        g,
		stages:   stages,
		costToGo: make(map[core.NodeID]int64, g.Topology().NodeCount()),
		nextHop:  make(map[core.NodeID]core.NodeID, g.Topology().NodeCount()),
	}
	r.init()

	// 3) Run the backward pass, then rebuild the optimal route.
	if err := r.process(); err != nil {
		return nil, err
	}
	path, stepCosts, err := r.reconstruct()
	if err != nil {
		return nil, err
	}

	// 4) Assemble the immutable result.
	return &Result{
		CostToGo:  r.costToGo,
		NextHop:   r.nextHop,
		Path:      path,
		StepCosts: stepCosts,
		TotalCost: r.costToGo[g.Start()],
	}, nil
}

// runner holds the mutable state for a single backward-induction pass.
type runner struct {
	g        *core.Graph                 // input graph; read-only within Solve
	stages   [][]core.NodeID             // node partition, stage-major
	costToGo map[core.NodeID]int64       // node → minimum cost to the target
	nextHop  map[core.NodeID]core.NodeID // node → optimal neighbor
}

// init seeds the DP tables: every cost starts at the unset sentinel,
// except the target, whose cost-to-go is zero by definition.
func (r *runner) init() {
	for _, layer := range r.stages {
		for _, n := range layer {
			r.costToGo[n] = unsetCost
		}
	}
	r.costToGo[r.g.Target()] = 0
}

// process evaluates the Bellman recurrence in strictly decreasing stage
// order. When a node is reached, every node one stage ahead already has
// a finalized cost; that ordering is what makes a single pass exact.
//
// Within a stage, nodes are evaluated in declaration order. No two nodes
// of one stage are connected, so intra-stage order cannot change any
// cost; fixing it keeps the whole pass deterministic.
func (r *runner) process() error {
	var (
		s    int
		n    core.NodeID
		e    core.Edge
		cand int64
	)
	// Skip the target stage (index StageCount-1); its cost is seeded.
	for s = len(r.stages) - 2; s >= 0; s-- {
		for _, n = range r.stages[s] {
			edges, err := r.g.OutgoingEdges(n)
			if err != nil {
				return fmt.Errorf("induction: reading edges of %q: %w", n, err)
			}
			if len(edges) == 0 {
				// A non-target node must always have a way forward.
				return fmt.Errorf("%w: %q", ErrDisconnectedGraph, n)
			}

			for _, e = range edges {
				// Successor cost is finalized by the stage ordering; an
				// unset successor means it was itself cut off.
				if r.costToGo[e.To] == unsetCost {
					continue
				}
				cand = e.Weight + r.costToGo[e.To]
				// Strict "<" keeps the first-declared edge on ties.
				if cand < r.costToGo[n] {
					r.costToGo[n] = cand
					r.nextHop[n] = e.To
				}
			}
			if r.costToGo[n] == unsetCost {
				return fmt.Errorf("%w: %q", ErrDisconnectedGraph, n)
			}
		}
	}

	return nil
}

// reconstruct follows nextHop from the start node to the target,
// collecting the route and the weight of each traversed edge. The
// layered structure guarantees termination in exactly StageCount-1 hops.
func (r *runner) reconstruct() ([]core.NodeID, []int64, error) {
	var (
		hops    = r.g.StageCount() - 1
		path    = make([]core.NodeID, 0, hops+1)
		steps   = make([]int64, 0, hops)
		current = r.g.Start()
	)
	path = append(path, current)

	for i := 0; i < hops; i++ {
		next, ok := r.nextHop[current]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrDisconnectedGraph, current)
		}
		w, err := r.g.Weight(current, next)
		if err != nil {
			return nil, nil, fmt.Errorf("induction: reading weight %s→%s: %w", current, next, err)
		}
		path = append(path, next)
		steps = append(steps, w)
		current = next
	}

	return path, steps, nil
}
