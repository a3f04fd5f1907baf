package sat

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Status int

const (
	Satisfiable Status = iota
	Unsatisfiable
	TimedOut
)

func (status Status) String() string {
	switch status {
	case Satisfiable:
		return "SAT"
	case Unsatisfiable:
		return "UNSAT"
	case TimedOut:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of a single solver run. Solution is only meaningful when Status is Satisfiable
type Result struct {
	Status   Status
	Solution SATSolution
}

type SATSolver interface {
	// Solve runs the solver until it answers or ctx is done. An expired context is reported as a TimedOut result (not as an error) and any partial output is discarded
	Solve(ctx context.Context, sat SAT) (Result, error)
}

var (
	ErrUnknownSolver   = errors.New("unknown solver")
	ErrMalformedOutput = errors.New("malformed solver output")
)

var solvers = map[string]func(path string) SATSolver{
	"glucose": NewGlucoseSolver,
	"kissat":  NewKissatSolver,
	"cadical": NewCadicalSolver,
	"minisat": NewMinisatSolver,
	"slime":   NewSlimeSolver,
	"gini": func(string) SATSolver {
		return NewGiniSolver()
	},
}

// Names returns the registered solver names in lexicographic order
func Names() []string {
	names := lo.Keys(solvers)
	sort.Strings(names)
	return names
}

// NewSolver builds the solver registered under name. The executable path is looked up in paths, falling back to the solver's name (resolved through $PATH)
func NewSolver(name string, paths map[string]string) (SATSolver, error) {
	constructor, ok := solvers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSolver, "%q (valid solvers are %v)", name, Names())
	}

	path, ok := paths[name]
	if !ok || path == "" {
		path = name
	}
	return constructor(path), nil
}
