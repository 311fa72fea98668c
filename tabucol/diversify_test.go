package tabucol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcolor/coloring"
	"github.com/katalvlaran/kcolor/graph"
	"github.com/katalvlaran/kcolor/tabucol"
)

// TestDiversify_ExactStepCount verifies the walk performs exactly
// floor(threshold·n) moves, each strictly changing the vertex's color.
func TestDiversify_ExactStepCount(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		threshold float64
		wantSteps int
	}{
		{"half-of-7", 7, 0.5, 3},
		{"fifth-of-10", 10, 0.2, 2},
		{"full", 6, 1.0, 6},
		{"zero-threshold", 9, 0, 0},
		{"rounds-down", 10, 0.19, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graph.Cycle(tc.n)
			require.NoError(t, err)
			rec := &recordingModel{State: mustRandomState(t, g, 3, seedDet)}

			steps, derr := tabucol.Diversify(rec, tc.threshold, seedDet)
			require.NoError(t, derr)
			require.Equal(t, tc.wantSteps, steps)
			require.Len(t, rec.applied, tc.wantSteps)

			for i, mv := range rec.applied {
				require.NotEqual(t, mv.previous, mv.color,
					"step %d must strictly change the vertex color", i)
			}
		})
	}
}

// TestDiversify_KeepsConflictAccountingConsistent replays the walk and
// compares the incremental count against a from-scratch rebuild.
func TestDiversify_KeepsConflictAccountingConsistent(t *testing.T) {
	const (
		n = 30
		k = 3
	)
	g, err := graph.RandomGnp(n, 0.25, 5)
	require.NoError(t, err)
	s := mustRandomState(t, g, k, seedDet)

	_, err = tabucol.Diversify(s, 1.0, seedDet)
	require.NoError(t, err)
	requireFreshConflictCount(t, g, k, s)
}

// TestDiversify_DeterministicPerSeed: same seed, same state ⇒ same walk.
func TestDiversify_DeterministicPerSeed(t *testing.T) {
	g, err := graph.Cycle(12)
	require.NoError(t, err)

	a := mustRandomState(t, g, 3, 9)
	b := mustRandomState(t, g, 3, 9)

	_, err = tabucol.Diversify(a, 0.5, 17)
	require.NoError(t, err)
	_, err = tabucol.Diversify(b, 0.5, 17)
	require.NoError(t, err)

	require.Equal(t, a.Colors(), b.Colors())
}

// TestDiversify_ErrorSurface pins the sentinel errors.
func TestDiversify_ErrorSurface(t *testing.T) {
	_, err := tabucol.Diversify(nil, 0.5, 1)
	require.ErrorIs(t, err, tabucol.ErrNilModel)

	g, err := graph.Path(3)
	require.NoError(t, err)

	mono := mustState(t, g, 1, coloring.Assignment{1, 1, 1})
	_, err = tabucol.Diversify(mono, 0.5, 1)
	require.ErrorIs(t, err, tabucol.ErrTooFewColors)

	ok := mustState(t, g, 2, coloring.Assignment{1, 2, 1})
	_, err = tabucol.Diversify(ok, -0.1, 1)
	require.ErrorIs(t, err, tabucol.ErrThresholdRange)
	_, err = tabucol.Diversify(ok, 1.01, 1)
	require.ErrorIs(t, err, tabucol.ErrThresholdRange)
}
