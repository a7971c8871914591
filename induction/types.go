// Package induction result type and sentinel errors.
package induction

import (
	"errors"

	"github.com/katalvlaran/stagecoach/core"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
	ErrNilGraph = errors.New("induction: graph is nil")

	// ErrDisconnectedGraph indicates that a non-target node has no
	// outgoing edges, violating the staged-topology invariant.
	ErrDisconnectedGraph = errors.New("induction: node has no route to the target")
)

// Result holds the outcome of one backward-induction solve. It is
// derived from the weights the graph held at solve time and is not
// updated afterwards; re-solve after any weight change.
type Result struct {
	// CostToGo maps every node to the minimum cost of reaching the
	// target from it. CostToGo[target] is always 0.
	CostToGo map[core.NodeID]int64

	// NextHop maps every non-target node to the neighbor chosen by the
	// optimal decision at that node. The target has no entry.
	NextHop map[core.NodeID]core.NodeID

	// Path is the optimal route from the start node to the target,
	// obtained by following NextHop. Its length equals the stage count.
	Path []core.NodeID

	// StepCosts holds the weight of each edge traversed along Path, in
	// order; len(StepCosts) == len(Path)-1.
	StepCosts []int64

	// TotalCost is the minimum start→target cost, equal to
	// CostToGo[start] and to the sum of StepCosts.
	TotalCost int64
}
