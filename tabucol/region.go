// Package tabucol - drift and recurrence tracking over the coloring space.
//
// Contract:
//   - The tracker owns value-copied pivot snapshots; a pivot never aliases
//     the live coloring.
//   - Promotion: when the live coloring drifts farther than radius R from
//     the current pivot, the live coloring becomes the new pivot. If it lies
//     within R of any previously recorded region, the revisit depth Tc
//     increments; otherwise Tc resets and the pivot joins the history.
//   - Improvement refresh: when the live conflict count drops below the
//     pivot's recorded one, the pivot follows without any Tc bookkeeping,
//     keeping the tracker anchored to the best-known region.
//
// Complexity: observe O(V) per iteration + O(V·|history|) on promotion.
package tabucol

// regionTracker maintains the current pivot and the history of distinct
// explored regions for one engine run.
type regionTracker struct {
	model  Model
	radius int // R = floor(threshold·n)

	pivot          []int // detached snapshot
	pivotConflicts int   // conflict count at capture time

	history  [][]int // distinct recorded pivots, in recording order
	revisits int     // Tc: consecutive promotions into known regions
}

// newRegionTracker seeds the pivot and the history from the starting
// coloring, which is by definition the first explored region.
func newRegionTracker(m Model, radius int) *regionTracker {
	p := m.Snapshot()

	return &regionTracker{
		model:          m,
		radius:         radius,
		pivot:          p,
		pivotConflicts: m.Conflicts(),
		history:        [][]int{p},
	}
}

// observe applies the per-iteration tracking rules after a move was applied.
func (rt *regionTracker) observe() {
	cur := rt.model.Current()

	if rt.model.Distance(cur, rt.pivot) > rt.radius {
		next := rt.model.Snapshot()
		if rt.nearKnown(next) {
			rt.revisits++
		} else {
			rt.revisits = 0
			rt.history = append(rt.history, next)
		}
		rt.pivot = next
		rt.pivotConflicts = rt.model.Conflicts()

		return
	}

	// Independent of the distance trigger: follow conflict improvements so
	// the pivot tracks the best-known region.
	if rt.model.Conflicts() < rt.pivotConflicts {
		rt.pivot = rt.model.Snapshot()
		rt.pivotConflicts = rt.model.Conflicts()
	}
}

// nearKnown reports whether c lies within the radius of any recorded pivot.
// Scans newest-first: recent regions are the likeliest matches.
func (rt *regionTracker) nearKnown(c []int) bool {
	var i int
	for i = len(rt.history) - 1; i >= 0; i-- {
		if rt.model.WithinRadius(c, rt.history[i], rt.radius) {
			return true
		}
	}

	return false
}

// rebase re-anchors the pivot on the live coloring and clears the revisit
// depth. Called after a forced perturbation teleports the search.
func (rt *regionTracker) rebase() {
	rt.pivot = rt.model.Snapshot()
	rt.pivotConflicts = rt.model.Conflicts()
	rt.revisits = 0
}
