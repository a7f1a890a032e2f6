package cdcl

// Backtrack pops trail entries (unassigning each) until learned is unit
// under the remaining assignment: exactly one of its literals is
// Unassigned and every other literal is False. It reports false if the
// trail empties without ever reaching that state, which the
// driver treats as unsatisfiable — in practice this coincides with
// learned being empty, a case the driver catches before calling
// Backtrack at all.
func Backtrack(tr *Trail, learned Clause) bool {
	for {
		if isUnitUnderAssignment(learned, tr) {
			return true
		}
		if tr.Len() == 0 {
			return false
		}
		tr.Pop()
	}
}

// isUnitUnderAssignment reports whether c has exactly one Unassigned
// literal and every other literal is False under tr.
func isUnitUnderAssignment(c Clause, tr *Trail) bool {
	unassigned := 0
	for _, l := range c.Lits {
		switch tr.Eval(l) {
		case True:
			return false
		case Unassigned:
			unassigned++
		}
	}
	return unassigned == 1
}
