// Package coloring - the State type: live coloring + incremental conflicts.
//
// Contract:
//   - State exclusively owns its assignment; one engine run mutates one State
//     with no concurrent aliasing.
//   - EvaluateDelta never mutates; ApplyMove trusts the caller-supplied delta
//     (the pair is produced together by the engine's candidate evaluation).
//   - Hot-path accessors (Color, EvaluateDelta, ApplyMove) assume in-range
//     arguments; range enforcement happens once at construction.
//
// Complexity:
//   - NewState: O(V + E). EvaluateDelta: O(deg). ApplyMove: O(1).
package coloring

import (
	"time"

	"github.com/katalvlaran/kcolor/graph"
)

// State is a mutable k-coloring of a fixed graph with incremental conflict
// accounting and best-found tracking.
type State struct {
	adj    [][]int // private adjacency copy, indexed by vertex
	k      int     // palette size
	colors []int   // live assignment, entries in [1,k]

	conflicts int // current number of monochromatic edges

	best       int           // lowest conflict count observed
	bestColors []int         // detached copy of the coloring achieving best
	bestAt     time.Duration // elapsed time when best was recorded
	clock      time.Time     // origin for bestAt measurements
}

// NewState binds a validated initial assignment to g's adjacency.
// The assignment is copied; the caller's slice stays untouched.
// The best-found tracker starts at the initial coloring.
func NewState(g *graph.Graph, k int, initial Assignment) (*State, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, ErrTooFewColors
	}
	n := g.VertexCount()
	if err := Validate(initial, n, k); err != nil {
		return nil, err
	}

	s := &State{
		adj:    g.Adjacency(),
		k:      k,
		colors: initial.Clone(),
		clock:  time.Now(),
	}
	s.conflicts = s.countConflicts()
	s.best = s.conflicts
	s.bestColors = initial.Clone()

	return s, nil
}

// VertexCount reports the number of vertices.
func (s *State) VertexCount() int { return len(s.colors) }

// ColorCount reports the palette size k.
func (s *State) ColorCount() int { return s.k }

// Color reports the current color of v. Contract: 0 ≤ v < VertexCount.
func (s *State) Color(v int) int { return s.colors[v] }

// Current exposes the live assignment as a read-only view.
// Callers must not mutate or retain it across moves; use Snapshot for that.
func (s *State) Current() []int { return s.colors }

// Snapshot returns a detached value copy of the current assignment.
func (s *State) Snapshot() []int {
	cp := make([]int, len(s.colors))
	copy(cp, s.colors)

	return cp
}

// Colors returns a detached copy of the current assignment as an Assignment.
func (s *State) Colors() Assignment { return Assignment(s.Snapshot()) }

// Conflicts reports the current number of monochromatic edges.
func (s *State) Conflicts() int { return s.conflicts }

// EvaluateDelta returns the conflict-count change of recoloring v to c,
// without mutating anything. Contract: v in range, c in [1,k].
//
// Complexity: O(deg(v)).
func (s *State) EvaluateDelta(v, c int) int {
	old := s.colors[v]
	if c == old {
		return 0
	}

	var (
		delta int
		i     int
		nc    int // neighbor color
	)
	row := s.adj[v]
	for i = 0; i < len(row); i++ {
		nc = s.colors[row[i]]
		if nc == c {
			delta++ // edge becomes monochromatic
		} else if nc == old {
			delta-- // edge stops being monochromatic
		}
	}

	return delta
}

// ApplyMove recolors v to c and shifts the conflict count by delta.
// Contract: delta == EvaluateDelta(v, c) at call time.
func (s *State) ApplyMove(v, c, delta int) {
	s.colors[v] = c
	s.conflicts += delta
}

// BestConflicts reports the lowest conflict count recorded so far.
func (s *State) BestConflicts() int { return s.best }

// BestColors returns a detached copy of the best coloring recorded so far.
func (s *State) BestColors() Assignment { return Assignment(s.bestColors).Clone() }

// BestElapsed reports the elapsed time at which the best was recorded
// (zero if the initial coloring was never improved).
func (s *State) BestElapsed() time.Duration { return s.bestAt }

// ResetClock restarts the elapsed-time origin used by RecordIfNewBest.
// tabucol.Search calls it at run start, so BestElapsed measures time into
// the run rather than time since construction.
func (s *State) ResetClock() { s.clock = time.Now() }

// RecordIfNewBest captures the current coloring as the new best when its
// conflict count strictly improves on the recorded one. Reports whether a
// record was taken. The recorded count is therefore non-increasing over any
// sequence of calls.
func (s *State) RecordIfNewBest() bool {
	if s.conflicts >= s.best {
		return false
	}
	s.best = s.conflicts
	copy(s.bestColors, s.colors)
	s.bestAt = time.Since(s.clock)

	return true
}

// Distance reports the Hamming distance between two assignments.
// Part of the engine-facing model contract; delegates to Hamming.
func (s *State) Distance(a, b []int) int { return Hamming(a, b) }

// WithinRadius reports whether Hamming(a, b) ≤ radius, consistent with
// Distance by construction.
func (s *State) WithinRadius(a, b []int, radius int) bool { return WithinRadius(a, b, radius) }

// countConflicts performs the full O(V+E) conflict scan used at construction.
// Each undirected edge appears twice in the adjacency copy, so count ordered
// pairs u < w only.
func (s *State) countConflicts() int {
	var (
		total int
		u, i  int
		w     int
	)
	for u = 0; u < len(s.adj); u++ {
		row := s.adj[u]
		for i = 0; i < len(row); i++ {
			w = row[i]
			if u < w && s.colors[u] == s.colors[w] {
				total++
			}
		}
	}

	return total
}
