package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcolor/coloring"
	"github.com/katalvlaran/kcolor/graph"
)

// TestRandomAssignment_SeededAndInRange verifies determinism per seed and
// the [1,k] range of every entry.
func TestRandomAssignment_SeededAndInRange(t *testing.T) {
	const (
		n = 50
		k = 4
	)
	a, err := coloring.RandomAssignment(n, k, 42)
	require.NoError(t, err)
	b, err := coloring.RandomAssignment(n, k, 42)
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed must reproduce the assignment")

	require.NoError(t, coloring.Validate(a, n, k))

	c, err := coloring.RandomAssignment(n, k, 43)
	require.NoError(t, err)
	require.NotEqual(t, a, c, "different seeds should diverge on 50 entries")

	_, err = coloring.RandomAssignment(0, k, 1)
	require.ErrorIs(t, err, coloring.ErrAssignmentLength)
	_, err = coloring.RandomAssignment(n, 0, 1)
	require.ErrorIs(t, err, coloring.ErrTooFewColors)
}

// TestGreedy_ProperWhenPaletteSuffices: first-fit on a bipartite graph with
// k=2 and on a cycle with k=3 must produce zero conflicts.
func TestGreedy_ProperWhenPaletteSuffices(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*graph.Graph, error)
		k     int
	}{
		{"bipartite-k2", func() (*graph.Graph, error) { return graph.CompleteBipartite(4, 5) }, 2},
		{"odd-cycle-k3", func() (*graph.Graph, error) { return graph.Cycle(7) }, 3},
		{"path-k2", func() (*graph.Graph, error) { return graph.Path(9) }, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			require.NoError(t, err)
			a, err := coloring.Greedy(g, tc.k)
			require.NoError(t, err)
			require.NoError(t, coloring.Validate(a, g.VertexCount(), tc.k))

			s, err := coloring.NewState(g, tc.k, a)
			require.NoError(t, err)
			require.Equal(t, 0, s.Conflicts())
		})
	}
}

// TestGreedy_CompleteAssignmentUnderTightPalette: with k below the chromatic
// number, Greedy still emits a full in-range assignment (repair engines need
// a complete, possibly conflicting, starting point).
func TestGreedy_CompleteAssignmentUnderTightPalette(t *testing.T) {
	g, err := graph.Complete(5) // chromatic number 5
	require.NoError(t, err)

	a, err := coloring.Greedy(g, 3)
	require.NoError(t, err)
	require.NoError(t, coloring.Validate(a, 5, 3))

	s, err := coloring.NewState(g, 3, a)
	require.NoError(t, err)
	require.Greater(t, s.Conflicts(), 0, "K5 with 3 colors must conflict")
}
