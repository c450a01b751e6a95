// Package ngraph is the neighbourhood-graph representation consumed by the
// MIS decomposition engine.
//
// What:
//
//   - Graph keeps one closed-adjacency row (a vset.Set) per vertex. A vertex is
//     adjacent to itself; the self bit doubles as the "vertex present" marker.
//     A vertex whose row is empty has been removed.
//   - The vertex universe is fixed at construction and equals the number of
//     problem variables; removal never renumbers vertices.
//   - Removal is copy-on-write: Without, WithoutSet and Induced return new
//     graphs that share every untouched row with the receiver. Many pending
//     work-list entries may therefore hold graphs derived from one ancestor
//     without copying the whole matrix per step.
//
// Construction:
//
//   - New / NewEmpty + AddEdge for hand-built graphs.
//   - FromArcs turns causal-graph arcs (pre → succ) into an undirected
//     neighbourhood graph: predecessors and successors both become neighbours.
//   - FromGonum adapts any gonum.org/v1/gonum/graph.Graph.
//
// Complexity (n = universe, d = row words = ⌈n/64⌉):
//
//   - Without: O(deg·d) time, O(n) row headers.
//   - WithoutSet / Induced: O(n·d).
//   - Components: O(n·d).
//   - IsIndependent: O(k·d) for a set of k vertices.
package ngraph
