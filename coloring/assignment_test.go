package coloring_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcolor/coloring"
)

// TestValidate_Table covers the assignment shape contract.
func TestValidate_Table(t *testing.T) {
	cases := []struct {
		name    string
		a       coloring.Assignment
		n, k    int
		wantErr error
	}{
		{"ok", coloring.Assignment{1, 2, 3}, 3, 3, nil},
		{"ok-boundary", coloring.Assignment{1, 3}, 2, 3, nil},
		{"short", coloring.Assignment{1, 2}, 3, 3, coloring.ErrAssignmentLength},
		{"long", coloring.Assignment{1, 2, 3, 1}, 3, 3, coloring.ErrAssignmentLength},
		{"zero-color", coloring.Assignment{1, 0, 2}, 3, 3, coloring.ErrColorRange},
		{"over-palette", coloring.Assignment{1, 4, 2}, 3, 3, coloring.ErrColorRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := coloring.Validate(tc.a, tc.n, tc.k)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestClone_Detached verifies Clone yields an independent copy.
func TestClone_Detached(t *testing.T) {
	a := coloring.Assignment{1, 2, 3}
	b := a.Clone()
	b[0] = 9
	require.Equal(t, coloring.Assignment{1, 2, 3}, a)

	var nilA coloring.Assignment
	require.Nil(t, nilA.Clone())
}

// TestHamming_MetricAxioms checks identity, symmetry, and hand-computed values.
func TestHamming_MetricAxioms(t *testing.T) {
	x := []int{1, 2, 3, 1}
	y := []int{1, 3, 3, 2}

	require.Equal(t, 0, coloring.Hamming(x, x))
	require.Equal(t, coloring.Hamming(x, y), coloring.Hamming(y, x))
	require.Equal(t, 2, coloring.Hamming(x, y))

	// Length mismatch: surplus positions count in full.
	require.Equal(t, 2, coloring.Hamming([]int{1, 2}, []int{1, 2, 3, 4}))
	require.Equal(t, 3, coloring.Hamming(nil, []int{1, 2, 3}))
}

// TestWithinRadius_ConsistentWithHamming samples random pairs and asserts
// WithinRadius(x, y, r) == (Hamming(x, y) <= r) for every sampled radius.
func TestWithinRadius_ConsistentWithHamming(t *testing.T) {
	const (
		n     = 24
		k     = 4
		pairs = 200
	)
	rng := rand.New(rand.NewSource(7))

	draw := func() []int {
		out := make([]int, n)
		for i := 0; i < n; i++ {
			out[i] = 1 + rng.Intn(k)
		}

		return out
	}

	for p := 0; p < pairs; p++ {
		x, y := draw(), draw()
		d := coloring.Hamming(x, y)
		for r := 0; r <= n; r++ {
			require.Equal(t, d <= r, coloring.WithinRadius(x, y, r),
				"pair %d: d=%d r=%d", p, d, r)
		}
	}

	// Negative radius never matches, even for identical inputs.
	x := draw()
	require.False(t, coloring.WithinRadius(x, x, -1))
}
