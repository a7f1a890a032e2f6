package cdcl

import (
	"sort"
	"strings"
)

// Clause is a disjunction of literals, represented as a sorted sequence of
// unique literals: treating a clause as a set rather than a multiset
// makes resolve a plain set union and keeps iteration order, and
// therefore every downstream tie-break, deterministic. The empty clause
// denotes falsity.
type Clause struct {
	Lits []Literal
}

// NewClause builds a Clause from lits, removing duplicate literals and
// sorting by literal value. It does not check for tautologies ({l, ¬l}):
// callers that must reject those (Analyze, on its learned clause) do so
// explicitly.
func NewClause(lits []Literal) Clause {
	if len(lits) == 0 {
		return Clause{}
	}
	uniq := make(map[Literal]struct{}, len(lits))
	out := make([]Literal, 0, len(lits))
	for _, l := range lits {
		if _, ok := uniq[l]; ok {
			continue
		}
		uniq[l] = struct{}{}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return Clause{Lits: out}
}

// Len returns the number of literals in c.
func (c Clause) Len() int { return len(c.Lits) }

// ContainsVar reports whether v appears in c, with either polarity.
func (c Clause) ContainsVar(v Variable) bool {
	for _, l := range c.Lits {
		if l.Var() == v {
			return true
		}
	}
	return false
}

// ContainsLit reports whether the exact literal l appears in c.
func (c Clause) ContainsLit(l Literal) bool {
	for _, m := range c.Lits {
		if m == l {
			return true
		}
	}
	return false
}

// IsTautology reports whether c contains both a variable and its negation.
// A learned clause must never be of this form.
func (c Clause) IsTautology() bool {
	for _, l := range c.Lits {
		if c.ContainsLit(l.Negate()) {
			return true
		}
	}
	return false
}

func (c Clause) String() string {
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		parts[i] = l.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Formula is an ordered, append-only sequence of clauses. Indices of
// original input clauses occupy [0, M); learned clauses are appended at
// indices [M, M+k) and never shift.
type Formula struct {
	Clauses []Clause
}

// NewFormula builds a Formula from a set of original (input) clauses.
func NewFormula(clauses []Clause) *Formula {
	return &Formula{Clauses: clauses}
}

// Len returns the number of active clauses (original plus learned).
func (f *Formula) Len() int { return len(f.Clauses) }

// Learn appends a learned clause to the formula and returns its new,
// stable index.
func (f *Formula) Learn(c Clause) int {
	f.Clauses = append(f.Clauses, c)
	return len(f.Clauses) - 1
}
