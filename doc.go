// Package cdcl implements the kernel of a conflict-driven clause learning
// (CDCL) SAT solver: a DPLL-style backtracking search over a CNF formula,
// augmented with unit propagation, resolution-based conflict analysis,
// learned-clause accumulation and non-chronological backtracking.
//
// The package is deliberately narrow. DIMACS parsing lives in
// internal/dimacs, the command-line entry point in cmd/cdcl; this package
// only knows about literals, clauses, the trail, and the search loop that
// ties them together.
package cdcl
