// Package tabucol reduces the conflict count of an existing k-coloring by
// tabu search: iterated single-vertex recoloring with forbidden-move memory,
// adaptive tenure, and distance-based diversification.
//
// What:
//
//   - Search improves a pre-existing coloring held by a Model; it never
//     constructs one from scratch and never adds colors.
//   - Each iteration samples random recolor candidates, filters them through
//     a (vertex, color) tabu table, and applies the best admissible one —
//     worsening moves included; pure descent would not be tabu search.
//   - Aspiration: when every candidate drawn in an iteration is forbidden,
//     the best forbidden one is applied anyway, so the search never stalls.
//   - Tenure (how long a departed color stays forbidden) is either constant
//     or reactive to the conflict count and plateau length; repeated returns
//     into already-explored regions stretch it further.
//   - A region tracker snapshots pivot colorings, measures drift through the
//     model's distance metric, and counts recurrences; Diversify performs a
//     forced random walk to escape a revisited region.
//
// Why:
//
//   - Greedy construction leaves conflicts whenever the palette is tight;
//     local repair with memory is the classic way to close the gap
//     (Hertz & de Werra's TabuCol family).
//
// Complexity:
//
//   - Per iteration: O((1+neighbors)·deg) delta evaluations + O(V) tabu
//     refresh + O(V·|regions|) recurrence check worst case.
//   - Memory: O(V·k) tabu table + O(V) per recorded region.
//
// Errors:
//
//   - ErrNilModel: nil model handed to Search or Diversify.
//   - ErrTooFewColors: fewer than two colors — no alternative color exists.
//   - ErrNegativeBudget / ErrBadNeighborCount / ErrThresholdRange /
//     ErrBadTenure: malformed Options.
//
// Determinism: all randomness flows from Options.Seed (seed==0 ⇒ fixed
// default stream); identical inputs and seed reproduce the run exactly.
package tabucol
