package sat

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
)

type minisatSolver struct {
	path string
}

func NewMinisatSolver(path string) SATSolver {
	return &minisatSolver{path: path}
}

// Solve hands minisat the DIMACS through a temporary file, minisat writes its model into a second one
func (solver *minisatSolver) Solve(ctx context.Context, sat SAT) (Result, error) {
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to create temporary file")
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "minisat_output-*.txt")
	if err != nil {
		inputTempFile.Close()
		return Result{}, errors.Wrap(err, "failed to create temporary file")
	}
	defer os.Remove(outputTempFile.Name())
	defer outputTempFile.Close()

	// Write the DIMACS content to the temporary file
	if err := sat.WriteDIMACS(inputTempFile); err != nil {
		inputTempFile.Close()
		return Result{}, errors.Wrap(err, "failed to write DIMACS to temporary file")
	}
	if err := inputTempFile.Close(); err != nil {
		return Result{}, errors.Wrap(err, "failed to close temporary file")
	}

	_, exitCode, timedOut, err := execute(ctx, solver.path, []string{"-verb=0", inputTempFile.Name(), outputTempFile.Name()}, nil)
	if err != nil {
		return Result{}, err
	} else if timedOut {
		return Result{Status: TimedOut}, nil
	} else if exitCode == exitUnsatisfiable {
		return Result{Status: Unsatisfiable}, nil
	}

	output, err := io.ReadAll(outputTempFile) // Read the output file
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to read output file")
	}
	result, err := parseMinisatSolution(string(output))
	if err != nil {
		return Result{}, errors.Wrap(err, "cannot parse minisat output")
	}
	return result, nil
}
