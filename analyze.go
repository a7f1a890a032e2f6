package cdcl

import "github.com/sirupsen/logrus"

// FindConflict returns the lowest-indexed conflicting clause in f: a
// clause is conflicting iff every one of its literals evaluates to False
// under tr (no literal True, none Unassigned). The search runs over the
// unreduced formula, not a simplified view.
func FindConflict(f *Formula, tr *Trail) (idx int, ok bool) {
	for i, c := range f.Clauses {
		if isConflicting(c, tr) {
			return i, true
		}
	}
	return 0, false
}

func isConflicting(c Clause, tr *Trail) bool {
	for _, l := range c.Lits {
		if tr.Eval(l) != False {
			return false
		}
	}
	return true
}

// Analyze performs conflict-driven clause learning: starting from the
// seed clause returned by FindConflict, it walks the trail backwards
// resolving against the reason clause of each implied literal that
// occurs in the accumulating clause D, skipping decisions and literals
// not present in D. The result is a clause entailed by the original
// formula (soundness preserved by resolution) whose every literal is
// falsified under tr, so that backtracking has work to do.
//
// Analyze panics if invoked when no clause is conflicting, and resolve
// panics if a resolution step's operands don't carry exactly one
// complementary occurrence of the pivot variable — both are programmer
// errors this solver fails fast on rather than recovers from; a
// well-formed trail guarantees the latter cannot occur.
func Analyze(f *Formula, tr *Trail, log *logrus.Entry) Clause {
	seedIdx, ok := FindConflict(f, tr)
	if !ok {
		panic("cdcl: Analyze called with no conflicting clause")
	}
	d := NewClause(append([]Literal(nil), f.Clauses[seedIdx].Lits...))

	order := tr.Order()
	for i := len(order) - 1; i >= 0; i-- {
		p := order[i]
		r := tr.ReasonOf(p)
		if r.IsDecision() {
			continue
		}
		if !d.ContainsVar(p) {
			continue
		}
		reasonClause := f.Clauses[int(r)]
		d = resolve(reasonClause, d, p)
		if log != nil {
			log.WithFields(logrus.Fields{
				"pivot":  p,
				"reason": int(r),
				"result": d.String(),
			}).Debug("cdcl: resolution step")
		}
	}

	if d.IsTautology() {
		panic("cdcl: resolution produced a tautological learned clause")
	}
	return d
}

// resolve implements the resolution rule: from (A ∨ v) and (B ∨ ¬v)
// derive (A ∨ B), the set union of a and b with the two complementary
// occurrences of v removed. Exactly one of {+v, -v} must appear in a, and
// b must carry the opposite; any other arrangement panics as a
// programmer error.
func resolve(a, b Clause, v Variable) Clause {
	pos := NewLiteral(v, true)
	neg := NewLiteral(v, false)

	aPos, aNeg := a.ContainsLit(pos), a.ContainsLit(neg)
	bPos, bNeg := b.ContainsLit(pos), b.ContainsLit(neg)

	var dropFromA, dropFromB Literal
	switch {
	case aPos && !aNeg && bNeg && !bPos:
		dropFromA, dropFromB = pos, neg
	case aNeg && !aPos && bPos && !bNeg:
		dropFromA, dropFromB = neg, pos
	default:
		panic("cdcl: resolve requires complementary occurrences of the pivot variable")
	}

	merged := make([]Literal, 0, a.Len()+b.Len())
	for _, l := range a.Lits {
		if l == dropFromA {
			continue
		}
		merged = append(merged, l)
	}
	for _, l := range b.Lits {
		if l == dropFromB {
			continue
		}
		merged = append(merged, l)
	}
	return NewClause(merged)
}
