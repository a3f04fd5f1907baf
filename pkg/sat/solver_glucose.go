package sat

import "context"

type glucoseSolver struct {
	path string
}

func NewGlucoseSolver(path string) SATSolver {
	return &glucoseSolver{path: path}
}

// Solve feeds the DIMACS into glucose's standard input, "-model" makes glucose print the "v" lines
func (solver *glucoseSolver) Solve(ctx context.Context, sat SAT) (Result, error) {
	return solveThroughStdin(ctx, solver.path, []string{"-verb=0", "-model"}, sat)
}
