package sat

import "context"

type cadicalSolver struct {
	path string
}

func NewCadicalSolver(path string) SATSolver {
	return &cadicalSolver{path: path}
}

func (solver *cadicalSolver) Solve(ctx context.Context, sat SAT) (Result, error) {
	return solveThroughStdin(ctx, solver.path, []string{"-q"}, sat)
}
