package sat

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	exitSatisfiable   = 10
	exitUnsatisfiable = 20

	// Time given to a killed solver to release its pipes
	waitDelay = time.Second
)

// ParseSolution reads the competition-style output of a solver ("s" status line, "v" literal lines terminated by 0, "c" comments)
func ParseSolution(solverOutput string) (Result, error) {
	lines := lo.Filter(
		lo.Map(strings.Split(solverOutput, "\n"), func(line string, _ int) string { return strings.TrimSpace(line) }),
		func(line string, _ int) bool { return len(line) > 0 && line[0] != 'c' },
	)
	if len(lines) == 0 {
		return Result{}, errors.Wrap(ErrMalformedOutput, "empty output")
	}

	status := ""
	solution := SATSolution{}
	terminated := false
	for _, line := range lines {
		fields := strings.Fields(line)
		switch fields[0] {
		case "s":
			if len(fields) < 2 {
				return Result{}, errors.Wrapf(ErrMalformedOutput, "status line without status: %q", line)
			}
			status = strings.Join(fields[1:], " ")
		case "v":
			for _, token := range fields[1:] {
				if terminated {
					return Result{}, errors.Wrapf(ErrMalformedOutput, "literal %q after the terminating 0", token)
				}
				value, err := strconv.ParseInt(token, 10, 64)
				if err != nil {
					return Result{}, errors.Wrapf(ErrMalformedOutput, "invalid literal %q", token)
				}
				if value == 0 {
					terminated = true
					continue
				}
				solution = append(solution, value)
			}
		}
	}

	switch status {
	case "UNSATISFIABLE":
		return Result{Status: Unsatisfiable}, nil
	case "UNKNOWN", "INDETERMINATE":
		return Result{Status: TimedOut}, nil
	case "SATISFIABLE", "":
		if !terminated {
			return Result{}, errors.Wrap(ErrMalformedOutput, "missing model or terminating 0")
		}
		return Result{Status: Satisfiable, Solution: solution}, nil
	default:
		return Result{}, errors.Wrapf(ErrMalformedOutput, "unknown status %q", status)
	}
}

// parseMinisatSolution reads minisat's result file: a "SAT", "UNSAT" or "INDET" header followed (if satisfiable) by the zero-terminated model
func parseMinisatSolution(solverOutput string) (Result, error) {
	lines := strings.Split(strings.TrimSpace(solverOutput), "\n")
	switch strings.TrimSpace(lines[0]) {
	case "UNSAT":
		return Result{Status: Unsatisfiable}, nil
	case "INDET":
		return Result{Status: TimedOut}, nil
	case "SAT":
		if len(lines) < 2 {
			return Result{}, errors.Wrap(ErrMalformedOutput, "missing model")
		}
		// Reuse the competition parser by presenting the model as a "v" line
		return ParseSolution("v " + lines[1])
	default:
		return Result{}, errors.Wrapf(ErrMalformedOutput, "unknown minisat header %q", lines[0])
	}
}

// execute runs an external solver feeding stdin into it. When ctx expires the process is killed and timedOut is set, the output must then be discarded
func execute(ctx context.Context, path string, args []string, stdin io.Reader) (stdout string, exitCode int, timedOut bool, err error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin
	cmd.WaitDelay = waitDelay

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if ctx.Err() != nil {
		return "", 0, true, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", 0, false, errors.Wrapf(err, "cannot run %v", path)
		}
		exitCode = exitErr.ExitCode()
		if exitCode != exitSatisfiable && exitCode != exitUnsatisfiable {
			return "", exitCode, false, errors.Wrapf(err, "an error occurred during %v execution: %v", path, stderr.String())
		}
		return stdOut.String(), exitCode, false, nil
	}

	return stdOut.String(), cmd.ProcessState.ExitCode(), false, nil
}

// solveThroughStdin is shared by the solvers which read DIMACS from their standard input and print competition-style output
func solveThroughStdin(ctx context.Context, path string, args []string, sat SAT) (Result, error) {
	var dimacs bytes.Buffer
	if err := sat.WriteDIMACS(&dimacs); err != nil {
		return Result{}, errors.Wrap(err, "cannot serialize DIMACS")
	}

	output, exitCode, timedOut, err := execute(ctx, path, args, &dimacs)
	if err != nil {
		return Result{}, err
	} else if timedOut {
		return Result{Status: TimedOut}, nil
	} else if exitCode == exitUnsatisfiable {
		return Result{Status: Unsatisfiable}, nil
	}

	result, err := ParseSolution(output)
	if err != nil {
		return Result{}, errors.Wrapf(err, "cannot parse %v output", path)
	}
	return result, nil
}
