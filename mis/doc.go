// Package mis finds maximum independent sets of a neighbourhood graph by
// recursive decomposition.
//
// What:
//
//   - The input graph is reduced by five rules, tried in order on every
//     subgraph: trivial base case, split into connected components, vertex
//     domination, degree-3 folding, and maximum-degree branching with mirrors.
//   - Every subgraph produced is an induced subgraph of the input, so it is
//     identified by its vertex-presence pattern. A Registry keyed by the
//     xxhash of that pattern (with exact comparison on collision) turns the
//     recursion tree into a DAG: a subgraph met twice is solved once and
//     gains a second parent ("twin").
//   - Expansion uses an explicit LIFO work-list; once it drains (or the
//     timer fires) leaf results are propagated upward with a FIFO queue.
//     Branch nodes keep their best alternatives; component nodes combine
//     their children's sets.
//   - Each result list is capped at K sets (WithMaxSets). WithFindAll keeps
//     the alternatives of ties between vertices with identical closed
//     neighbourhoods, so several distinct maximum sets can surface.
//
// Timeouts:
//
//   - The Timer (and context) is polled before each expansion and every 64
//     iterations inside the domination scan and the mirror computation. A
//     subgraph whose rule was interrupted stays unexpanded.
//   - Unexpanded subgraphs contribute an empty set. Vertices forced into a
//     result always had their neighbours removed, so partial results are
//     still independent.
//
// Errors:
//
//   - ErrGraphNil, ErrOptionViolation: bad input.
//   - ErrInconsistentFold, ErrInternal: broken engine invariants; treat as
//     critical.
package mis
