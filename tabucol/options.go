// Package tabucol - engine configuration.
//
// The tenure policy is a closed set of tagged variants dispatched through a
// pure evaluation function (see tenure.go) rather than a caller-supplied
// closure; configurations stay comparable, serializable, and loggable.
package tabucol

// TenureKind selects the tenure policy variant.
type TenureKind int

const (
	// ConstantTenure keeps every forbidden pairing tabu for a fixed number
	// of iterations.
	ConstantTenure TenureKind = iota
	// ReactiveTenure computes A + alpha·conflicts + floor(plateau/MMax):
	// the costlier or flatter the region, the longer moves stay forbidden.
	ReactiveTenure
)

// TenurePolicy is the tagged tenure variant. Use Constant or Reactive to
// build one; the zero value is Constant(0) (no memory effect).
type TenurePolicy struct {
	// Kind discriminates the variant.
	Kind TenureKind
	// Value is the fixed tenure of ConstantTenure.
	Value int
	// A is the base tenure of ReactiveTenure.
	A int
	// Alpha scales the conflict count in ReactiveTenure.
	Alpha float64
	// MMax divides the plateau length in ReactiveTenure (must be ≥ 1).
	MMax int
}

// Constant returns a fixed-tenure policy.
func Constant(value int) TenurePolicy {
	return TenurePolicy{Kind: ConstantTenure, Value: value}
}

// Reactive returns a policy reacting to conflict count and plateau length.
func Reactive(a int, alpha float64, mMax int) TenurePolicy {
	return TenurePolicy{Kind: ReactiveTenure, A: a, Alpha: alpha, MMax: mMax}
}

// Default knobs. Values follow common TabuCol practice: a small constant
// tenure, a modest sample per iteration, and pivots spaced at 10% of n.
const (
	// DefaultIterationBudget bounds one Search invocation.
	DefaultIterationBudget = 10_000
	// DefaultNeighborsPerIteration is the extra sample size per iteration.
	DefaultNeighborsPerIteration = 10
	// DefaultDiversificationThreshold sets R = floor(threshold·n).
	DefaultDiversificationThreshold = 0.1
	// DefaultConstantTenure is the fixed tenure of the default policy.
	DefaultConstantTenure = 7
)

// Options is the engine configuration surface.
type Options struct {
	// IterationBudget caps the number of iterations; 0 performs no moves.
	IterationBudget int
	// NeighborsPerIteration is the number of additional candidates sampled
	// after the seeding draw each iteration.
	NeighborsPerIteration int
	// DiversificationThreshold, as a fraction of the vertex count, fixes
	// both the region radius R = floor(threshold·n) and the length of a
	// diversification walk. Must lie in [0,1].
	DiversificationThreshold float64
	// Tenure selects how long departed colors stay forbidden.
	Tenure TenurePolicy
	// DiversifyAfterRevisits, when positive, makes the engine run a
	// diversification walk once the revisit depth reaches this value.
	// Zero leaves diversification entirely to the orchestration layer.
	DiversifyAfterRevisits int
	// Seed drives all random choices; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{
		IterationBudget:          DefaultIterationBudget,
		NeighborsPerIteration:    DefaultNeighborsPerIteration,
		DiversificationThreshold: DefaultDiversificationThreshold,
		Tenure:                   Constant(DefaultConstantTenure),
	}
}

// validateOptions checks internal consistency of Options without touching
// the model. Only sentinel errors.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.IterationBudget < 0 {
		return ErrNegativeBudget
	}
	if opts.NeighborsPerIteration < 0 {
		return ErrBadNeighborCount
	}
	if opts.DiversificationThreshold < 0 || opts.DiversificationThreshold > 1 {
		return ErrThresholdRange
	}
	if opts.DiversifyAfterRevisits < 0 {
		return ErrBadRevisitTrigger
	}

	switch opts.Tenure.Kind {
	case ConstantTenure:
		if opts.Tenure.Value < 0 {
			return ErrBadTenure
		}
	case ReactiveTenure:
		if opts.Tenure.A < 0 || opts.Tenure.Alpha < 0 || opts.Tenure.MMax < 1 {
			return ErrBadTenure
		}
	default:
		return ErrBadTenure
	}

	return nil
}
