// Package tabucol - random neighbor generation with tabu filtering.
//
// Contract:
//   - propose draws one uniform (vertex, different-color) candidate and
//     evaluates its delta through the model; a tabu-filtered draw yields an
//     explicit "no move", which is distinct from a zero-delta candidate.
//   - Forbidden draws are remembered within the iteration so the engine can
//     aspire to the best of them when no admissible candidate appears.
//   - Admissible draws refresh the tabu entry of the queried pairing to
//     iter+tenure: touched moves cool down anew.
//
// Complexity: O(deg(v)) per draw (delta evaluation dominates).
package tabucol

import "math/rand"

// move is a single-vertex recolor candidate. vertex < 0 encodes "no move".
type move struct {
	vertex int
	color  int
	delta  int // post-conflicts − pre-conflicts; negative improves
}

// noMove is the explicit absent candidate.
var noMove = move{vertex: -1}

// none reports whether m is the absent candidate.
func (m move) none() bool { return m.vertex < 0 }

// sampler draws candidates for one engine run.
type sampler struct {
	model  Model
	memory *tabuMemory
	rng    *rand.Rand

	// bestForbidden is the best tabu-filtered candidate of the current
	// iteration (ties to the most recent draw); reset by beginIteration.
	bestForbidden move
}

// beginIteration clears the per-iteration aspiration scratch.
func (s *sampler) beginIteration() { s.bestForbidden = noMove }

// propose draws one candidate. The boolean reports admissibility: false
// means the pairing is tabu at iter (the candidate is still recorded for
// aspiration); true means the returned move is concrete and its tabu entry
// was refreshed to iter+tenure.
func (s *sampler) propose(iter, tenure int) (move, bool) {
	v, c := randomRecolor(s.model, s.rng)
	cand := move{vertex: v, color: c, delta: s.model.EvaluateDelta(v, c)}

	if s.memory.forbidden(v, c, iter) {
		// Ties favor the most recently drawn forbidden candidate.
		if s.bestForbidden.none() || cand.delta <= s.bestForbidden.delta {
			s.bestForbidden = cand
		}

		return noMove, false
	}

	s.memory.refresh(v, c, iter+tenure)

	return cand, true
}

// aspirate returns the best forbidden candidate drawn this iteration.
// Valid only after at least one propose call; the engine guarantees that.
func (s *sampler) aspirate() move { return s.bestForbidden }
