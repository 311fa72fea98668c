// Package coloring owns the mutable state of a k-coloring under repair:
// the color assignment, its conflict count, and best-found bookkeeping.
//
// What:
//
//   - Assignment is a slice of colors in [1,k], one per vertex.
//   - State binds an assignment to a graph's adjacency and maintains the
//     conflict count incrementally: EvaluateDelta costs O(deg), ApplyMove O(1).
//   - RecordIfNewBest tracks the lowest conflict count seen, a detached copy
//     of the coloring that achieved it, and the elapsed time at that moment.
//   - Hamming distance between assignments (positions that differ) supports
//     drift and recurrence measurement by search engines. The metric is NOT
//     invariant under global color relabeling: two colorings that are
//     relabelings of each other are distinct points of the space.
//   - RandomAssignment and Greedy produce initial colorings to repair.
//
// Why:
//
//   - Local-search engines probe thousands of single-vertex recolors per
//     second; recomputing conflicts from scratch would dominate the run.
//   - Keeping all coloring primitives in one place gives engines a frozen,
//     minimal contract and keeps them representation-agnostic.
//
// Complexity:
//
//   - NewState: O(V + E) conflict scan.
//   - EvaluateDelta: O(deg(v)). ApplyMove: O(1). Snapshot: O(V).
//   - Hamming / WithinRadius: O(V).
//
// Errors:
//
//   - ErrNilGraph: nil graph handed to a constructor.
//   - ErrTooFewColors: k < 1.
//   - ErrAssignmentLength: assignment length differs from the vertex count.
//   - ErrColorRange: an entry lies outside [1,k].
package coloring
