// Command cdcl reads a DIMACS CNF file (or stdin) and reports whether it
// is satisfiable, printing a model when it is. It is the CLI entry point,
// an external collaborator of the solver core rather than part of it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dpllgo/cdcl"
	"github.com/dpllgo/cdcl/internal/config"
	"github.com/dpllgo/cdcl/internal/dimacs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "cdcl [input.cnf]",
		Short: "cdcl solves a propositional formula given in DIMACS CNF form",
		Long: `cdcl reads a single CNF problem instance in the DIMACS format.

It writes the output in the conventional way: the first line is
"s SATISFIABLE" or "s UNSATISFIABLE"; when satisfiable, a second line
gives the assignment as "v <lit> ... <lit> 0".

If no input file is given, cdcl reads from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.InputPath = args[0]
			}
			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "trace propagation, conflicts and resolution steps")
	cmd.Flags().BoolVar(&cfg.Stats, "stats", false, "print search statistics to stderr after solving")
	cmd.Flags().Int64Var(&cfg.MaxConflicts, "max-conflicts", 0, "give up after this many conflicts (0 = unbounded)")
	cmd.Flags().StringVar(&cfg.DumpLearned, "dump-learned", "", "write learned clauses to this file in DIMACS form")

	return cmd
}

func run(cfg config.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "cdcl:", err)
		return err
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var r io.Reader = os.Stdin
	if !cfg.ReadsStdin() {
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			fmt.Fprintln(stderr, "cdcl: error opening input file:", err)
			return err
		}
		defer f.Close()
		r = f
	}

	formula, err := dimacs.Parse(r)
	if err != nil {
		fmt.Fprintln(stderr, "cdcl: error reading input file as DIMACS CNF:", err)
		return err
	}

	opts := cdcl.Options{
		Trace:        cfg.Verbose,
		MaxConflicts: cfg.MaxConflicts,
		Log:          logrus.NewEntry(log),
	}
	numOriginal := len(formula.Clauses)
	clauses := make([]cdcl.Clause, numOriginal)
	for i, raw := range formula.Clauses {
		lits := make([]cdcl.Literal, len(raw))
		for j, n := range raw {
			lits[j] = cdcl.Literal(n)
		}
		clauses[i] = cdcl.NewClause(lits)
	}

	solver := cdcl.NewSolver(formula.NumVars, clauses, opts)
	result, model := solver.Solve()
	stats := solver.Stats()

	var assignment []int
	if result == cdcl.SAT {
		assignment = make([]int, len(model))
		for i, l := range model {
			assignment[i] = int(l)
		}
	}

	if cfg.DumpLearned != "" {
		if err := dumpLearned(cfg.DumpLearned, formula.NumVars, solver.Formula(), numOriginal); err != nil {
			fmt.Fprintln(stderr, "cdcl: error writing --dump-learned file:", err)
			return err
		}
	}

	if cfg.Stats {
		log.WithFields(logrus.Fields{
			"decisions":     stats.Decisions,
			"propagations":  stats.Propagations,
			"conflicts":     stats.Conflicts,
			"learned":       stats.Learned,
			"max_trail_len": stats.MaxTrailLen,
			"result":        result.String(),
		}).Info("cdcl: search finished")
	}

	switch result {
	case cdcl.SAT:
		fmt.Fprintln(stdout, "s SATISFIABLE")
		fmt.Fprint(stdout, "v")
		for _, v := range assignment {
			fmt.Fprintf(stdout, " %d", v)
		}
		fmt.Fprintln(stdout, " 0")
	case cdcl.UNSAT:
		fmt.Fprintln(stdout, "s UNSATISFIABLE")
	case cdcl.ConflictLimitExceeded:
		err := fmt.Errorf("cdcl: gave up after %d conflicts", stats.Conflicts)
		fmt.Fprintln(stderr, err)
		return err
	}

	return nil
}

// dumpLearned writes the clauses f accumulated beyond the first
// numOriginal (the input clauses) to path, in DIMACS form.
func dumpLearned(path string, numVars int, f *cdcl.Formula, numOriginal int) error {
	learned := f.Clauses[numOriginal:]
	out := dimacs.Formula{NumVars: numVars, Clauses: make([][]int, len(learned))}
	for i, c := range learned {
		raw := make([]int, c.Len())
		for j, l := range c.Lits {
			raw[j] = int(l)
		}
		out.Clauses[i] = raw
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return dimacs.Write(w, out)
}
