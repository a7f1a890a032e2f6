package cdcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCompactViewDropsSatisfiedClauses(t *testing.T) {
	f := NewFormula([]Clause{
		NewClause([]Literal{1, 2}),
		NewClause([]Literal{-1, 3}),
		NewClause([]Literal{-2, -3}),
	})
	tr := NewTrail(3)
	tr.AssignDecision(1, True)

	view := CompactView(f, tr)
	want := [][]Literal{
		{3},
		{-3, -2},
	}
	if diff := cmp.Diff(want, view, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("CompactView mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactViewEmptyMeansModel(t *testing.T) {
	f := NewFormula([]Clause{NewClause([]Literal{1})})
	tr := NewTrail(1)
	tr.AssignDecision(1, True)

	if view := CompactView(f, tr); len(view) != 0 {
		t.Errorf("CompactView = %v, want empty (satisfied formula)", view)
	}
}

func TestCompactViewDetectsConflict(t *testing.T) {
	f := NewFormula([]Clause{NewClause([]Literal{1})})
	tr := NewTrail(1)
	tr.AssignDecision(1, False)

	view := CompactView(f, tr)
	if len(view) != 1 || len(view[0]) != 0 {
		t.Errorf("CompactView = %v, want a single empty sub-clause", view)
	}
}

func TestTraceViewPreservesIndices(t *testing.T) {
	f := NewFormula([]Clause{
		NewClause([]Literal{1, 2}),
		NewClause([]Literal{-1, 3}),
	})
	tr := NewTrail(3)
	tr.AssignDecision(1, True)

	view := TraceView(f, tr)
	if len(view) != 2 {
		t.Fatalf("TraceView has %d entries, want 2 (one per clause)", len(view))
	}
	if view[0] != nil {
		t.Errorf("TraceView[0] = %v, want nil placeholder (satisfied clause)", view[0])
	}
	if diff := cmp.Diff([]Literal{3}, view[1]); diff != "" {
		t.Errorf("TraceView[1] mismatch (-want +got):\n%s", diff)
	}
}
