// Package tabucol - forced random-walk diversification.
package tabucol

import "math/rand"

// Diversify performs exactly floor(threshold·n) random single-vertex recolor
// moves, each selected uniformly and applied unconditionally — worsening
// deltas included. Every step strictly changes the chosen vertex's color, so
// the walk drifts away from the current coloring at a controlled rate.
//
// Orchestration layers call this between engine runs when the search is
// judged stuck (e.g., high revisit depth); Search can also trigger it
// internally via Options.DiversifyAfterRevisits.
//
// Returns the number of moves performed. Deterministic for a fixed seed
// (seed==0 ⇒ fixed default stream).
//
// Complexity: O(floor(threshold·n) · deg).
func Diversify(m Model, threshold float64, seed int64) (int, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if m.ColorCount() < 2 {
		return 0, ErrTooFewColors
	}
	if threshold < 0 || threshold > 1 {
		return 0, ErrThresholdRange
	}

	steps := int(threshold * float64(m.VertexCount()))

	return diversifyWith(m, rngFromSeed(seed), steps), nil
}

// diversifyWith runs the walk on an existing stream; shared by Diversify and
// the engine's internal trigger. Deltas are evaluated only to keep the
// model's conflict accounting consistent, never to filter.
func diversifyWith(m Model, rng *rand.Rand, steps int) int {
	var (
		i    int
		v, c int
	)
	for i = 0; i < steps; i++ {
		v, c = randomRecolor(m, rng)
		m.ApplyMove(v, c, m.EvaluateDelta(v, c))
	}

	return steps
}
