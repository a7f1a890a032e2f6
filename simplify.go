package cdcl

// reduceClause evaluates c's literals under tr. It returns the
// subsequence of literals that are still Unassigned, and whether the
// clause is already satisfied by some True literal. Operates on a copy:
// it never touches c or the active formula.
func reduceClause(c Clause, tr *Trail) (unresolved []Literal, satisfied bool) {
	for _, l := range c.Lits {
		switch tr.Eval(l) {
		case True:
			return nil, true
		case Unassigned:
			unresolved = append(unresolved, l)
		case False:
			// Literal is false; drop it from the reduction.
		}
	}
	return unresolved, false
}

// CompactView is the index-free simplification of a formula, used to
// decide termination: satisfied clauses are dropped entirely, and every
// remaining clause is reduced to its unresolved literals. An empty result
// means every original clause is satisfied (A is a model); a result
// containing an empty sub-clause means some clause is falsified.
func CompactView(f *Formula, tr *Trail) [][]Literal {
	view := make([][]Literal, 0, len(f.Clauses))
	for _, c := range f.Clauses {
		lits, satisfied := reduceClause(c, tr)
		if satisfied {
			continue
		}
		view = append(view, lits)
	}
	return view
}

// TraceView is the index-preserving simplification of a formula, used
// for propagation and conflict lookup: it has exactly one entry per active
// clause, with satisfied clauses replaced by an empty placeholder instead
// of being removed, so that clause indices never shift.
func TraceView(f *Formula, tr *Trail) [][]Literal {
	view := make([][]Literal, len(f.Clauses))
	for i, c := range f.Clauses {
		lits, satisfied := reduceClause(c, tr)
		if satisfied {
			view[i] = nil
			continue
		}
		view[i] = lits
	}
	return view
}
