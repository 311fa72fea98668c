// Package tabucol_test - shared helpers for the black-box engine tests.
// Helpers are intentionally minimal; scenario construction lives in the
// focused test files.
package tabucol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcolor/coloring"
	"github.com/katalvlaran/kcolor/graph"
)

// seedDet is the deterministic seed used across engine tests.
const seedDet = int64(42)

// mustState builds a coloring.State or fails the test.
func mustState(t *testing.T, g *graph.Graph, k int, a coloring.Assignment) *coloring.State {
	t.Helper()
	s, err := coloring.NewState(g, k, a)
	require.NoError(t, err)

	return s
}

// mustRandomState seeds a State with a uniform random assignment.
func mustRandomState(t *testing.T, g *graph.Graph, k int, seed int64) *coloring.State {
	t.Helper()
	a, err := coloring.RandomAssignment(g.VertexCount(), k, seed)
	require.NoError(t, err)

	return mustState(t, g, k, a)
}

// Repeat runs fn n times. Useful for stability checks across seeds.
func Repeat(t *testing.T, n int, fn func(t *testing.T, round int)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t, i)
	}
}

// appliedMove records one ApplyMove call seen by recordingModel.
type appliedMove struct {
	vertex   int
	color    int
	previous int // color of vertex just before the move
	delta    int
}

// recordingModel wraps a State and journals every mutation and every
// best-conflict reading, letting tests assert engine-side invariants
// without reaching into engine internals.
type recordingModel struct {
	*coloring.State
	applied []appliedMove
	bests   []int // BestConflicts after every RecordIfNewBest call
}

func (r *recordingModel) ApplyMove(v, c, delta int) {
	r.applied = append(r.applied, appliedMove{vertex: v, color: c, previous: r.Color(v), delta: delta})
	r.State.ApplyMove(v, c, delta)
}

func (r *recordingModel) RecordIfNewBest() bool {
	improved := r.State.RecordIfNewBest()
	r.bests = append(r.bests, r.State.BestConflicts())

	return improved
}

// requireFreshConflictCount rebuilds a State from the live coloring and
// asserts the incremental conflict count never drifted from ground truth.
func requireFreshConflictCount(t *testing.T, g *graph.Graph, k int, s *coloring.State) {
	t.Helper()
	fresh, err := coloring.NewState(g, k, s.Colors())
	require.NoError(t, err)
	require.Equal(t, fresh.Conflicts(), s.Conflicts(), "incremental conflict accounting drifted")
}
