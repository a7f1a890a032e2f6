package cdcl

import (
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

// Result is the logical outcome of a solve. It is a return value, never
// an error: SAT/UNSAT are not failure modes.
type Result int8

const (
	// ResultUnknown is the zero value and never returned by Solve.
	ResultUnknown Result = iota
	SAT
	UNSAT
	// ConflictLimitExceeded is returned when Options.MaxConflicts is
	// reached without a SAT/UNSAT answer. It is distinct from UNSAT: the
	// formula's satisfiability remains unknown.
	ConflictLimitExceeded
)

func (r Result) String() string {
	switch r {
	case SAT:
		return "SATISFIABLE"
	case UNSAT:
		return "UNSATISFIABLE"
	case ConflictLimitExceeded:
		return "CONFLICT_LIMIT_EXCEEDED"
	default:
		return "UNKNOWN"
	}
}

// Options tunes a solve. The zero value runs to completion with no trace
// logging and no restarts or timeouts; the single addition, MaxConflicts,
// is a resource ceiling, not a heuristic.
type Options struct {
	// Trace enables Debug-level structured logging of propagation,
	// conflict, and resolution steps via Log.
	Trace bool
	// MaxConflicts bounds the number of conflicts the driver will learn
	// from before giving up with ConflictLimitExceeded. Zero means
	// unbounded.
	MaxConflicts int64
	// Log receives trace output when Trace is set. Defaults to the
	// standard logrus logger.
	Log *logrus.Entry
}

// Stats accumulates counters over one solve call, surfaced to callers
// (e.g. the CLI's --stats flag) as a typed struct rather than a bare map.
type Stats struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
	Learned      int64
	MaxTrailLen  int64
}

// Solver owns the active formula, trail and assignment for one solve
// call: single-threaded, synchronous, with no shared state across calls.
type Solver struct {
	numVars int
	formula *Formula
	trail   *Trail
	opts    Options
	stats   Stats
	log     *logrus.Entry
}

// NewSolver builds a Solver over numVars variables and the given original
// clauses.
func NewSolver(numVars int, clauses []Clause, opts Options) *Solver {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Solver{
		numVars: numVars,
		formula: NewFormula(clauses),
		trail:   NewTrail(numVars),
		opts:    opts,
		log:     log,
	}
}

// Stats returns the accumulated search statistics.
func (s *Solver) Stats() Stats { return s.stats }

// Formula returns the active formula, including any learned clauses
// appended so far. Callers must not mutate the returned clauses.
func (s *Solver) Formula() *Formula { return s.formula }

// Solve runs the search driver to completion:
//
//	loop:
//	  propagate
//	  compute compact view
//	  empty view          -> SAT
//	  view has empty entry -> analyze + learn + backtrack (or UNSAT)
//	  otherwise            -> decide
//
// Termination follows because each learned clause forbids at least the
// current assignment's projection onto its variables, and that lattice
// is finite for a finite input.
func (s *Solver) Solve() (Result, []Literal) {
	traceLog := (*logrus.Entry)(nil)
	if s.opts.Trace {
		traceLog = s.log
	}

	for {
		n := Propagate(s.formula, s.trail, traceLog)
		s.stats.Propagations += int64(n)
		if int64(s.trail.Len()) > s.stats.MaxTrailLen {
			s.stats.MaxTrailLen = int64(s.trail.Len())
		}

		view := CompactView(s.formula, s.trail)
		if len(view) == 0 {
			// Every clause is satisfied, but variables not mentioned by
			// any remaining clause may still be unassigned (e.g. a single
			// clause [1, 2] is satisfied as soon as variable 1 is decided
			// true, leaving 2 untouched). A satisfying result must be a
			// total assignment, so extend it with the same deterministic
			// decision rule before returning.
			s.completeAssignment()
			return SAT, s.model()
		}

		conflicted := false
		for _, lits := range view {
			if len(lits) == 0 {
				conflicted = true
				break
			}
		}

		if conflicted {
			s.stats.Conflicts++
			if s.opts.MaxConflicts > 0 && s.stats.Conflicts > s.opts.MaxConflicts {
				return ConflictLimitExceeded, nil
			}
			if traceLog != nil {
				traceLog.Debugf("cdcl: conflict, trail=%s", pretty.Sprint(s.trail.Order()))
			}
			learned := Analyze(s.formula, s.trail, traceLog)
			idx := s.formula.Learn(learned)
			s.stats.Learned++
			if traceLog != nil {
				traceLog.WithFields(logrus.Fields{
					"index":  idx,
					"clause": learned.String(),
				}).Debug("cdcl: learned clause")
			}
			if learned.Len() == 0 {
				return UNSAT, nil
			}
			if ok := Backtrack(s.trail, learned); !ok {
				return UNSAT, nil
			}
			continue
		}

		v, ok := Decide(s.trail)
		if !ok {
			// Compact view is non-empty but every variable is assigned:
			// unreachable for a well-formed formula, since every literal
			// left in the view is unassigned and, with no conflict, the
			// view holds at least one literal.
			panic("cdcl: no unassigned variable but compact view is non-empty")
		}
		s.trail.AssignDecision(v, True)
		s.stats.Decisions++
	}
}

// completeAssignment extends the trail with the same deterministic
// decision rule Decide uses, until every variable has a value. Safe to
// call only once the active formula is already fully satisfied: it never
// triggers propagation or conflict analysis, since a satisfied formula
// stays satisfied regardless of how its remaining free variables are set.
func (s *Solver) completeAssignment() {
	for {
		v, ok := Decide(s.trail)
		if !ok {
			return
		}
		s.trail.AssignDecision(v, True)
		s.stats.Decisions++
	}
}

func (s *Solver) model() []Literal {
	out := make([]Literal, 0, s.numVars)
	for v := Variable(1); int(v) <= s.numVars; v++ {
		if s.trail.ValueOf(v) == True {
			out = append(out, Literal(v))
		} else {
			out = append(out, Literal(-v))
		}
	}
	return out
}

// Solve is the convenience entry point most callers want: given the
// number of variables and a CNF formula as raw signed-integer clauses
// (DIMACS encoding, sans the trailing zero), it returns the logical
// outcome, a satisfying assignment as signed ints in ascending variable
// order (nil on UNSAT / ConflictLimitExceeded), and search statistics.
func Solve(numVars int, rawClauses [][]int, opts Options) (Result, []int, Stats) {
	clauses := make([]Clause, len(rawClauses))
	for i, raw := range rawClauses {
		lits := make([]Literal, len(raw))
		for j, n := range raw {
			if n == 0 {
				panic("cdcl: literal 0 is not a valid literal")
			}
			lits[j] = Literal(n)
		}
		clauses[i] = NewClause(lits)
	}

	sv := NewSolver(numVars, clauses, opts)
	result, model := sv.Solve()
	if result != SAT {
		return result, nil, sv.Stats()
	}
	soln := make([]int, len(model))
	for i, l := range model {
		soln[i] = int(l)
	}
	return result, soln, sv.Stats()
}
