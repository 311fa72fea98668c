// Package tabucol - tenure policy evaluation.
package tabucol

// tenureFor evaluates the tenure policy as a pure function of the current
// conflict count and the plateau length (consecutive zero-delta moves).
// The reactive form is A + floor(alpha·conflicts) + floor(plateau/MMax):
// costly or plateaued regions push moves out of reach for longer.
// The result is clamped to ≥ 0; 0 means no memory effect, not an error.
//
// The engine adds the revisit depth Tc on top of this value before use
// (see search.go), so recurrence into known regions also stretches tenure.
//
// Complexity: O(1).
func tenureFor(p TenurePolicy, conflicts, plateau int) int {
	var v int
	switch p.Kind {
	case ConstantTenure:
		v = p.Value
	case ReactiveTenure:
		v = p.A + int(p.Alpha*float64(conflicts)) + plateau/p.MMax
	}

	if v < 0 {
		v = 0
	}

	return v
}
