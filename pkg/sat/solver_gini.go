package sat

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const (
	giniSatisfiable   = 1
	giniUnsatisfiable = -1

	giniPollInterval = 5 * time.Millisecond
)

// giniSolver solves in-process, no executable is required
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(ctx context.Context, sat SAT) (Result, error) {
	g := gini.NewVc(int(sat.Variables), len(sat.Clauses))
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull)
	}

	outcome, err := solver.wait(ctx, g)
	if err != nil {
		return Result{}, err
	}

	switch outcome {
	case giniSatisfiable:
		solution := make(SATSolution, 0, sat.Variables)
		maxVar := int64(g.MaxVar())
		for variable := int64(1); variable <= int64(sat.Variables); variable++ {
			// Variables absent from every clause are unknown to gini, assign them false
			if variable <= maxVar && g.Value(z.Dimacs2Lit(int(variable))) {
				solution = append(solution, variable)
			} else {
				solution = append(solution, -variable)
			}
		}
		return Result{Status: Satisfiable, Solution: solution}, nil
	case giniUnsatisfiable:
		return Result{Status: Unsatisfiable}, nil
	default:
		return Result{Status: TimedOut}, nil
	}
}

// wait polls the background solve until it finishes or ctx is done, in which case the search is stopped
func (solver *giniSolver) wait(ctx context.Context, g *gini.Gini) (int, error) {
	if ctx.Err() != nil {
		return 0, nil
	}

	solve := g.GoSolve()
	ticker := time.NewTicker(giniPollInterval)
	defer ticker.Stop()

	for {
		if outcome, done := solve.Test(); done {
			return outcome, nil
		}
		select {
		case <-ctx.Done():
			solve.Stop()
			return 0, nil
		case <-ticker.C:
		}
	}
}
