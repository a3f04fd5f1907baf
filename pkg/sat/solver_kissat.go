package sat

import "context"

type kissatSolver struct {
	path string
}

func NewKissatSolver(path string) SATSolver {
	return &kissatSolver{path: path}
}

func (solver *kissatSolver) Solve(ctx context.Context, sat SAT) (Result, error) {
	return solveThroughStdin(ctx, solver.path, []string{"-q", "--relaxed"}, sat)
}
