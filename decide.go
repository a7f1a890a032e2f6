package cdcl

// Decide implements the solver's decision strategy: deterministic
// and intentionally simple, it picks the smallest-indexed still
// unassigned variable. Tie-breaking is total (ascending variable index),
// so that outputs are reproducible across runs and implementations. The
// caller is responsible for asserting the returned variable true with
// reason ReasonDecision; Decide itself has no side effects.
func Decide(tr *Trail) (Variable, bool) {
	for v := Variable(1); int(v) <= tr.NumVars(); v++ {
		if !tr.IsAssigned(v) {
			return v, true
		}
	}
	return 0, false
}
