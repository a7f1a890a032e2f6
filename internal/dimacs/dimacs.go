// Package dimacs parses and writes the DIMACS CNF format. It is
// deliberately kept separate from package cdcl: the CNF file format is
// an external collaborator of the solver core, not part of it.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors a caller can match with errors.Is.
var (
	ErrMissingHeader     = errors.New("dimacs: missing problem line")
	ErrDuplicateHeader   = errors.New("dimacs: multiple problem lines")
	ErrHeaderAfterClause = errors.New("dimacs: problem line appears after clauses")
	ErrMalformedHeader   = errors.New("dimacs: malformed problem line")
	ErrMalformedClause   = errors.New("dimacs: malformed clause")
	ErrLiteralOutOfRange = errors.New("dimacs: literal out of declared variable range")
	ErrClauseCountMismatch = errors.New("dimacs: clause count does not match problem line")
)

// Formula is a parsed DIMACS instance: the declared variable count and
// the list of clauses, each a slice of non-zero signed integers.
type Formula struct {
	NumVars int
	Clauses [][]int
}

// Parse reads r as DIMACS CNF text, the required subset plus a couple of
// conventional non-standard leniencies: comment lines may appear
// anywhere, and a line holding a lone '%' ends the input. The problem
// line is required; without one Parse returns ErrMissingHeader.
func Parse(r io.Reader) (Formula, error) {
	var (
		numVars    int
		numClauses int
		haveHeader bool
		clauses    [][]int
		current    []int
	)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			// Some CNF distributions attach a trailer after a lone '%'.
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return Formula{}, ErrHeaderAfterClause
			}
			if haveHeader {
				return Formula{}, ErrDuplicateHeader
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return Formula{}, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			var err error
			numVars, err = strconv.Atoi(fields[2])
			if err != nil || numVars < 0 {
				return Formula{}, fmt.Errorf("%w: bad variable count in %q", ErrMalformedHeader, line)
			}
			numClauses, err = strconv.Atoi(fields[3])
			if err != nil || numClauses < 0 {
				return Formula{}, fmt.Errorf("%w: bad clause count in %q", ErrMalformedHeader, line)
			}
			haveHeader = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return Formula{}, fmt.Errorf("%w: %q: %s", ErrMalformedClause, field, err)
			}
			if n == 0 {
				clauses = append(clauses, current)
				current = nil
				continue
			}
			if haveHeader {
				v := n
				if v < 0 {
					v = -v
				}
				if v > numVars {
					return Formula{}, fmt.Errorf("%w: literal %d exceeds declared %d variables", ErrLiteralOutOfRange, n, numVars)
				}
			}
			current = append(current, n)
		}
	}
	if err := s.Err(); err != nil {
		return Formula{}, err
	}
	if len(current) > 0 {
		clauses = append(clauses, current)
	}

	if !haveHeader {
		return Formula{}, ErrMissingHeader
	}
	if len(clauses) != numClauses {
		return Formula{}, fmt.Errorf("%w: header declares %d, found %d", ErrClauseCountMismatch, numClauses, len(clauses))
	}
	return Formula{NumVars: numVars, Clauses: clauses}, nil
}

// Write serializes f back to DIMACS CNF text: a problem line followed by
// one line per clause, each terminated by a 0. Used for round-trip tests
// and the CLI's diagnostic dump of learned clauses.
func Write(w io.Writer, f Formula) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", f.NumVars, len(f.Clauses)); err != nil {
		return err
	}
	for _, clause := range f.Clauses {
		var b strings.Builder
		for _, lit := range clause {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
