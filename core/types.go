// Package core types: node and stage identifiers, edges, and the
// sentinel errors shared by Topology and Graph operations.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilTopology indicates a nil *Topology was passed to NewGraph.
	ErrNilTopology = errors.New("core: topology is nil")

	// ErrNodeNotFound indicates an operation referenced a node outside the fixed node set.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an attempt to assign a negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrBadWeightRange indicates a random-weight range violating 0 ≤ min ≤ max.
	ErrBadWeightRange = errors.New("core: weight range must satisfy 0 ≤ min ≤ max")

	// ErrTooFewStages indicates a topology with fewer than two stages.
	ErrTooFewStages = errors.New("core: topology needs at least two stages")

	// ErrEmptyStage indicates a stage with no nodes.
	ErrEmptyStage = errors.New("core: every stage must contain at least one node")

	// ErrAmbiguousEndpoint indicates a start or target stage holding more than one node.
	ErrAmbiguousEndpoint = errors.New("core: start and target stages must hold exactly one node")

	// ErrDuplicateNode indicates a node ID declared in more than one stage slot.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrCrossStageEdge indicates an edge that does not connect stage k to stage k+1.
	ErrCrossStageEdge = errors.New("core: edge must connect consecutive stages")

	// ErrDuplicateEdge indicates the same (from,to) pair declared twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// NodeID identifies a node of the staged graph.
//
// The canonical stagecoach problem uses the ten labels A..J below; a
// Topology may declare any non-empty set of IDs, but the set is fixed
// once the Topology is built.
type NodeID string

// The ten canonical node labels of the stagecoach problem.
const (
	NodeA NodeID = "A"
	NodeB NodeID = "B"
	NodeC NodeID = "C"
	NodeD NodeID = "D"
	NodeE NodeID = "E"
	NodeF NodeID = "F"
	NodeG NodeID = "G"
	NodeH NodeID = "H"
	NodeI NodeID = "I"
	NodeJ NodeID = "J"
)

// Stage is a layer index of the DAG: 0 is the start layer, and the
// highest index is the target layer. Nodes within one stage are never
// connected to each other.
type Stage int

// Edge represents a directed connection between two nodes in
// consecutive stages.
//
// From and To are fixed by the Topology; Weight is the current
// transition cost as held by the owning Graph at the time of the call
// that produced this Edge value.
type Edge struct {
	// From is the origin node ID.
	From NodeID

	// To is the destination node ID, always one stage after From.
	To NodeID

	// Weight is the non-negative transition cost of the edge.
	Weight int64
}

// EdgeSpec declares one directed edge of a Topology together with its
// canonical default weight. The declaration order of EdgeSpecs is
// preserved as the stable ordering of OutgoingEdges.
type EdgeSpec struct {
	// From is the origin node ID.
	From NodeID

	// To is the destination node ID.
	To NodeID

	// Default is the canonical reference weight restored by
	// Graph.ApplyDefaultWeights. Must be non-negative.
	Default int64
}
