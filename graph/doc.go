// Package graph provides a compact undirected simple graph over
// integer-indexed vertices, tuned for coloring workloads.
//
// What:
//
//   - Graph stores adjacency lists for vertices 0..n-1; edges are unweighted,
//     loop-free, and unique (simple graph).
//   - Deterministic generators build standard test topologies: Path, Cycle,
//     Complete, CompleteBipartite, and random G(n,p) with a fixed seed.
//   - Adjacency() exports a deep copy so downstream models can own a private
//     view without aliasing the live graph.
//
// Why:
//
//   - Coloring engines need dense integer vertex indices and cheap neighbor
//     scans; string-keyed general graphs pay for flexibility the hot loops
//     never use.
//   - Generators make property tests reproducible: an odd cycle is provably
//     not 2-colorable, a bipartite graph provably is.
//
// Complexity:
//
//   - AddEdge / HasEdge: O(deg) scan (simple-graph uniqueness check).
//   - Neighbors / Degree: O(deg) / O(1).
//   - Generators: O(V + E) for fixed shapes, O(V²) for G(n,p).
//
// Errors:
//
//   - ErrTooFewVertices: requested order is below the generator's minimum.
//   - ErrVertexRange: vertex index outside [0, n).
//   - ErrLoop: self-loop attempted.
//   - ErrDuplicateEdge: edge already present.
//   - ErrProbRange: G(n,p) probability outside [0,1].
package graph
