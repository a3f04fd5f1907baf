package sat

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

type slimeSolver struct {
	path string
}

func NewSlimeSolver(path string) SATSolver {
	return &slimeSolver{path: path}
}

// Solve hands slime the DIMACS through a temporary file, the answer comes back competition-style on stdout
func (solver *slimeSolver) Solve(ctx context.Context, sat SAT) (Result, error) {
	tmpFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to create temporary file")
	}
	defer os.Remove(tmpFile.Name())

	if err := sat.WriteDIMACS(tmpFile); err != nil {
		tmpFile.Close()
		return Result{}, errors.Wrap(err, "failed to write DIMACS to temporary file")
	}
	if err := tmpFile.Close(); err != nil {
		return Result{}, errors.Wrap(err, "failed to close temporary file")
	}

	output, exitCode, timedOut, err := execute(ctx, solver.path, []string{tmpFile.Name()}, nil)
	if err != nil {
		return Result{}, err
	} else if timedOut {
		return Result{Status: TimedOut}, nil
	} else if exitCode == exitUnsatisfiable {
		return Result{Status: Unsatisfiable}, nil
	}

	result, err := ParseSolution(output)
	if err != nil {
		return Result{}, errors.Wrap(err, "cannot parse slime output")
	}
	return result, nil
}
