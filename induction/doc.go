// Package induction provides a precise implementation of backward
// induction (dynamic programming) for staged shortest-path problems on
// layered DAGs, such as the classic stagecoach problem.
//
// Overview:
//
//   - Solve computes, for every node, the minimum cost-to-go to the
//     target and the next hop chosen by the optimal decision, then
//     reconstructs the optimal start→target route.
//
//   - Nodes are processed in strictly decreasing stage order, so every
//     successor's cost is already finalized when a node is evaluated.
//     That scheduling order is the core correctness invariant of the
//     Bellman recurrence:
//
//     f(n) = min over edges (n,m) of { weight(n,m) + f(m) },  f(target) = 0.
//
// When to use:
//
//   - Any fixed, layered DAG where every edge advances exactly one stage
//     and weights are non-negative integers.
//   - As a teaching-grade reference for Bellman's principle of
//     optimality: every sub-policy of an optimal policy is optimal.
//
// Tie-breaking (documented policy):
//
//   - Candidates are relaxed with a strict "<" over core.OutgoingEdges
//     order, which is the topology declaration order. When several
//     neighbors achieve the identical minimum, the first-declared edge
//     wins. The policy is deterministic and pinned by tests; the
//     canonical weight table contains genuine ties exercising it.
//
// Performance and complexity:
//
//   - Time:  O(V + E) — each node and each edge is examined exactly once.
//   - Space: O(V) for the cost-to-go and next-hop tables.
//   - The DP tables are local to a single Solve call; nothing is cached
//     across calls. Re-solve after any weight change to get a fresh,
//     independent Result.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Solve.
//   - ErrDisconnectedGraph:
//     Returned if a non-target node has no outgoing edges (or no
//     successor with a finalized cost). The staged topology normally
//     makes this impossible — weights cannot remove edges — but the
//     solver checks and fails loudly rather than silently producing an
//     incomplete path.
//
// Thread safety:
//
//   - Solve only reads the graph, through its lock-guarded accessors.
//     Do not reassign weights mid-solve if the solve must observe one
//     consistent snapshot; back-to-back solves are always safe.
//
// See also:
//
//   - core.Topology / core.Graph: topology construction, weight
//     management, and the stable edge ordering Solve relies on.
package induction
