// Package core defines the central Topology and Graph types for the
// stagecoach problem, and provides thread-safe primitives for reading
// and reassigning edge weights.
//
// Overview:
//
//   - A Topology is the immutable structure of the problem: the node
//     partition into stages, the directed edges (each connecting a node
//     in stage k to a node in stage k+1), and the canonical default
//     weight for every edge. Once built by NewTopology it never changes.
//   - A Graph binds a Topology to the current, mutable edge weights.
//     Weight access uses a sync.RWMutex internally, so reads and weight
//     reassignments are safe across goroutines with minimal contention.
//   - Because every edge advances exactly one stage, the graph is a DAG
//     by construction; no cycle detection is ever needed.
//
// Edge ordering:
//
//   - OutgoingEdges returns a node's departing edges in topology
//     declaration order, and that order is stable across calls. Solvers
//     rely on it as the deterministic tie-breaking order.
//
// Weight management:
//
//   - SetWeight edits a single edge (non-negative integers only).
//   - ApplyDefaultWeights restores the topology's canonical table.
//   - ApplyRandomWeights draws uniform integers from an inclusive range.
//   - ResetAllWeights zeroes every edge.
//
// None of these trigger any recomputation; solving is always an explicit,
// separate call (see the induction package).
//
// Errors (sentinel):
//
//	ErrNilTopology       - nil *Topology passed to NewGraph.
//	ErrNodeNotFound      - referenced node is outside the fixed node set.
//	ErrEdgeNotFound      - referenced edge does not exist in the topology.
//	ErrBadWeight         - attempt to set a negative edge weight.
//	ErrBadWeightRange    - random range violates 0 ≤ min ≤ max.
//	ErrTooFewStages      - topology has fewer than two stages.
//	ErrEmptyStage        - a stage contains no nodes.
//	ErrAmbiguousEndpoint - start or target stage holds more than one node.
//	ErrDuplicateNode     - a node ID appears in more than one stage slot.
//	ErrCrossStageEdge    - an edge does not connect consecutive stages.
//	ErrDuplicateEdge     - the same (from,to) pair is declared twice.
package core
