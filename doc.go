// Package kcolor is an in-memory toolkit for graph k-coloring — from the
// coloring model itself to metaheuristic engines that repair conflicting
// colorings.
//
// 🚀 What is kcolor?
//
//	A compact, deterministic library that brings together:
//		• graph/    — undirected simple graphs over integer vertices + generators
//		              (paths, cycles, complete, bipartite, random G(n,p))
//		• coloring/ — the coloring state: conflict counting, O(deg) move deltas,
//		              Hamming distance between colorings, best-found tracking,
//		              greedy and random initializers
//		• tabucol/  — tabu-search conflict minimization with adaptive tenure,
//		              aspiration, and distance-based region tracking
//
// ✨ Why choose kcolor?
//
//   - Deterministic – every random choice flows from a caller-supplied seed
//   - Rock-solid guarantees – sentinel errors, no panics, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Composable – engines consume a small Model contract, so alternative
//     coloring representations plug in without touching the search code
//
// Quick ASCII example:
//
//	    1───2
//	    │   │        a 4-cycle is 2-colorable: {1,3}→color 1, {2,4}→color 2
//	    4───3
//
// Typical pipeline: build a graph, seed a coloring (greedy or random), then
// hand the state to tabucol to drive the conflict count toward zero.
//
//	go get github.com/katalvlaran/kcolor
package kcolor
