package cdcl

import "github.com/sirupsen/logrus"

// Propagate runs unit propagation to a fixpoint: it repeatedly rebuilds
// the trace view of f under tr and, whenever some clause has exactly one
// remaining literal, forces that literal true and tags the implication
// with the clause's index. Ties are broken by smallest clause index,
// which falls out naturally from scanning the trace view in order.
//
// Propagate never reports a conflict itself; a conflict surfaces only
// once the driver inspects the compact view afterwards. It is
// idempotent: calling it again on a state it already fixed-pointed is a
// no-op.
//
// This rebuilds the full trace view on every round rather than
// maintaining a watch-list index. Two-watched-literal bookkeeping is a
// natural efficiency win this solver deliberately forgoes in favor of
// the simpler, directly-auditable rebuild-each-round approach.
func Propagate(f *Formula, tr *Trail, log *logrus.Entry) int {
	propagated := 0
	for {
		view := TraceView(f, tr)
		idx, lit, found := firstUnit(view)
		if !found {
			return propagated
		}
		v := lit.Var()
		val := True
		if !lit.Positive() {
			val = False
		}
		tr.AssignImplied(v, val, idx)
		propagated++
		if log != nil {
			log.WithFields(logrus.Fields{
				"var":    v,
				"value":  val,
				"clause": idx,
			}).Debug("cdcl: unit propagation")
		}
	}
}

// firstUnit scans view for the lowest-indexed clause with exactly one
// remaining literal.
func firstUnit(view [][]Literal) (idx int, lit Literal, found bool) {
	for i, lits := range view {
		if len(lits) == 1 {
			return i, lits[0], true
		}
	}
	return 0, 0, false
}
