// Package tabucol - the search loop.
//
// One iteration moves through Seeding → Sampling → Selecting → Applying →
// Bookkeeping; the run terminates on budget exhaustion or a zero-conflict
// coloring. A move and its bookkeeping form one atomic unit of work: the only
// interruption point is the iteration boundary.
//
// Acceptance protocol:
//   - Seeding redraws until a concrete (admissible) candidate appears,
//     bounded by the neighborhood size; if the bound exhausts, every draw was
//     forbidden and the engine aspires to the best forbidden one.
//   - Sampling draws NeighborsPerIteration extra candidates; an admissible
//     candidate with delta ≤ incumbent delta replaces the incumbent (ties
//     favor the most recent draw), and any admissible candidate displaces an
//     aspired incumbent outright — aspiration is a last resort, never a
//     preference.
//   - The selected move is applied regardless of sign: worsening moves are
//     accepted, which is what lets tabu search leave local optima.
//
// Complexity: see doc.go; the loop allocates only on pivot snapshots.
package tabucol

import "time"

// clockResetter is an optional model capability: models that timestamp their
// best records (coloring.State does) get their elapsed-time origin
// re-anchored at run start, so the recorded times measure this run only.
type clockResetter interface {
	ResetClock()
}

// Search improves the model's coloring in place until the iteration budget
// is spent or a conflict-free coloring is found, and reports run provenance.
//
// Preconditions: m non-nil, m.ColorCount() ≥ 2, well-formed opts.
// The model's best-found bookkeeping is expected to start at the initial
// coloring (models constructed over it do this by construction).
func Search(m Model, opts Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if m.ColorCount() < 2 {
		return Result{}, ErrTooFewColors
	}

	var res Result
	res.BestConflicts = m.BestConflicts()
	res.Solved = res.BestConflicts == 0

	// A zero budget performs no moves and reports zero elapsed time; an
	// already-solved model needs no work either.
	if opts.IterationBudget == 0 || res.Solved {
		return res, nil
	}

	var (
		n = m.VertexCount()
		k = m.ColorCount()

		rng    = rngFromSeed(opts.Seed)
		memory = newTabuMemory(n, k)
		smp    = sampler{model: m, memory: memory, rng: rng}

		// One threshold, two roles: R below is the region radius, and a
		// forced diversification walks the same number of recolor steps.
		radius  = int(opts.DiversificationThreshold * float64(n))
		walkLen = radius
		region  = newRegionTracker(m, radius)

		plateau int // m: consecutive accepted zero-delta moves
		tenure  = tenureFor(opts.Tenure, m.Conflicts(), 0)

		// Seeding redraw bound: the whole neighborhood size. The bound only
		// needs to be finite and ≥ 1 — after any draw the sampler holds a
		// forbidden candidate, so aspiration always yields a concrete move.
		seedBound = n * (k - 1)
	)

	if cr, ok := m.(clockResetter); ok {
		cr.ResetClock()
	}
	start := time.Now()

	var iter int
	for iter = 0; iter < opts.IterationBudget; iter++ {
		res.Iterations = iter + 1
		smp.beginIteration()

		// Seeding: redraw until a concrete candidate, bounded by aspiration.
		best := noMove
		var draw int
		for draw = 0; draw < seedBound; draw++ {
			if cand, ok := smp.propose(iter, tenure); ok {
				best = cand
				break
			}
		}
		aspired := best.none()

		// Sampling: extra candidates; ties favor the most recent.
		var extra int
		for extra = 0; extra < opts.NeighborsPerIteration; extra++ {
			cand, ok := smp.propose(iter, tenure)
			if !ok {
				continue
			}
			if aspired {
				// Any admissible candidate beats a pending aspiration.
				best = cand
				aspired = false
				continue
			}
			if cand.delta <= best.delta {
				best = cand
			}
		}

		// Selecting: aspire only when every draw this iteration was tabu.
		if aspired {
			best = smp.aspirate()
			res.Aspirations++
		}

		// Applying: the incumbent is committed regardless of sign.
		m.ApplyMove(best.vertex, best.color, best.delta)
		m.RecordIfNewBest()
		if m.BestConflicts() == 0 {
			break // solution found; bookkeeping is moot
		}

		// Bookkeeping: plateau depth, tenure, tabu mark, region tracking.
		if best.delta == 0 {
			plateau++
		} else {
			plateau = 0
		}
		tenure = tenureFor(opts.Tenure, m.Conflicts(), plateau) + region.revisits
		memory.markColoring(m.Current(), iter, tenure)
		region.observe()

		if opts.DiversifyAfterRevisits > 0 && region.revisits >= opts.DiversifyAfterRevisits {
			diversifyWith(m, rng, walkLen)
			m.RecordIfNewBest()
			region.rebase()
			plateau = 0
			res.Diversifications++
			if m.BestConflicts() == 0 {
				break
			}
		}
	}

	res.BestConflicts = m.BestConflicts()
	res.Solved = res.BestConflicts == 0
	res.Regions = len(region.history)
	res.Elapsed = time.Since(start)

	return res, nil
}
