// Package tabucol - model contract, result type, and sentinel errors.
package tabucol

import (
	"errors"
	"time"
)

// Sentinel errors for engine configuration and invocation.
var (
	// ErrNilModel indicates a nil Model was handed to the engine.
	ErrNilModel = errors.New("tabucol: nil model")
	// ErrTooFewColors indicates a palette of fewer than two colors; a recolor
	// proposal then has no alternative color to pick.
	ErrTooFewColors = errors.New("tabucol: color count must be at least 2")
	// ErrNegativeBudget indicates a negative iteration budget.
	ErrNegativeBudget = errors.New("tabucol: iteration budget must be non-negative")
	// ErrBadNeighborCount indicates a negative neighbors-per-iteration value.
	ErrBadNeighborCount = errors.New("tabucol: neighbors per iteration must be non-negative")
	// ErrThresholdRange indicates a diversification threshold outside [0,1].
	ErrThresholdRange = errors.New("tabucol: diversification threshold out of [0,1]")
	// ErrBadTenure indicates tenure-policy parameters outside their domain.
	ErrBadTenure = errors.New("tabucol: invalid tenure policy parameters")
	// ErrBadRevisitTrigger indicates a negative DiversifyAfterRevisits value.
	ErrBadRevisitTrigger = errors.New("tabucol: diversify-after-revisits must be non-negative")
)

// Model is the coloring state the engine improves in place. One Search run
// exclusively owns one Model; no concurrent aliasing is permitted.
//
// Contract (all methods are O(deg) or cheaper; none may panic for in-range
// arguments):
//   - Color/Current expose the live assignment (entries in [1,ColorCount]);
//     Current is a read-only view, Snapshot a detached value copy.
//   - EvaluateDelta(v,c) returns the conflict-count change of recoloring v
//     to c without mutating; ApplyMove(v,c,delta) commits it.
//   - RecordIfNewBest captures the coloring when Conflicts strictly improves
//     on BestConflicts and reports whether it did; the recorded value is
//     non-increasing over a run.
//   - Distance is a symmetric, non-negative metric over assignments, zero
//     for identical ones; WithinRadius(a,b,r) == (Distance(a,b) ≤ r).
//     The engine treats the metric as a black box (in particular it does not
//     assume invariance under color relabeling).
type Model interface {
	VertexCount() int
	ColorCount() int
	Color(v int) int
	Current() []int
	Snapshot() []int
	Conflicts() int
	BestConflicts() int
	EvaluateDelta(v, newColor int) int
	ApplyMove(v, newColor, delta int)
	RecordIfNewBest() bool
	Distance(a, b []int) int
	WithinRadius(a, b []int, radius int) bool
}

// Result reports what one Search run did. The model itself carries the best
// coloring; Result carries run provenance.
type Result struct {
	// Iterations actually performed (≤ Options.IterationBudget).
	Iterations int
	// BestConflicts is the model's best conflict count at exit.
	BestConflicts int
	// Solved reports whether a zero-conflict coloring was reached.
	Solved bool
	// Aspirations counts iterations whose applied move was forbidden because
	// every candidate drawn that iteration was tabu.
	Aspirations int
	// Diversifications counts engine-triggered random-walk bursts.
	Diversifications int
	// Regions is the number of distinct regions recorded by the tracker.
	Regions int
	// Elapsed is the wall time spent inside the iteration loop.
	Elapsed time.Duration
}
