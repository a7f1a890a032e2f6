package cdcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewClauseDedupesAndSorts(t *testing.T) {
	c := NewClause([]Literal{3, -1, 1, 3, -2})
	want := []Literal{-2, -1, 1, 3}
	if diff := cmp.Diff(want, c.Lits); diff != "" {
		t.Errorf("NewClause(...).Lits mismatch (-want +got):\n%s", diff)
	}
}

func TestClauseContainsVarAndLit(t *testing.T) {
	c := NewClause([]Literal{1, -2, 3})
	if !c.ContainsVar(2) {
		t.Error("expected clause to contain variable 2")
	}
	if !c.ContainsLit(-2) {
		t.Error("expected clause to contain literal -2")
	}
	if c.ContainsLit(2) {
		t.Error("did not expect clause to contain literal 2")
	}
	if c.ContainsVar(5) {
		t.Error("did not expect clause to contain variable 5")
	}
}

func TestClauseIsTautology(t *testing.T) {
	if !NewClause([]Literal{1, -1, 2}).IsTautology() {
		t.Error("expected {1 -1 2} to be a tautology")
	}
	if NewClause([]Literal{1, 2, -3}).IsTautology() {
		t.Error("did not expect {1 2 -3} to be a tautology")
	}
}

func TestFormulaLearn(t *testing.T) {
	f := NewFormula([]Clause{NewClause([]Literal{1, 2})})
	idx := f.Learn(NewClause([]Literal{-1, -2}))
	if idx != 1 {
		t.Errorf("Learn returned index %d, want 1", idx)
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
	if diff := cmp.Diff([]Literal{-2, -1}, f.Clauses[1].Lits, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("learned clause mismatch (-want +got):\n%s", diff)
	}
}
