// Package tabucol - RNG utilities shared by the engine and Diversify.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; each Search run owns
// its own stream, matching the single-threaded execution model.
package tabucol

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// randomRecolor draws a uniform vertex and a uniform color different from its
// current one. Contract: ColorCount ≥ 2 (validated at entry points).
//
// Complexity: O(1).
func randomRecolor(m Model, rng *rand.Rand) (int, int) {
	v := rng.Intn(m.VertexCount())
	cur := m.Color(v)

	// Uniform over [1,k]\{cur}: draw from k-1 slots, shift past the current.
	c := 1 + rng.Intn(m.ColorCount()-1)
	if c >= cur {
		c++
	}

	return v, c
}
