package main

import (
	"fmt"
	"os"

	"github.com/limaJavier/roundrobin/pkg/sat"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSolveCmd(o *options) *cobra.Command {
	io := &instanceOptions{}
	var outFile string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Schedule a tournament and print it",
		Long: `Compiles the tournament into CNF, runs the configured solver and prints one line per match.

The process exits with 10 when a schedule was found, 20 when none exists, 30 when the solver
timed out and 15 when the decoded schedule breaks a rule.

  $ roundrobin solve --teams 4 --days 6 --solver kissat`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.solve(cmd, io, outFile)
		},
	}

	io.addFlags(cmd)
	cmd.Flags().StringVar(&outFile, "out", "", "file the schedule is written to; standard output when empty")
	return cmd
}

func (o *options) solve(cmd *cobra.Command, io *instanceOptions, outFile string) error {
	inst, err := io.resolve(o.config)
	if err != nil {
		return err
	}
	solver, err := o.config.NewSolver()
	if err != nil {
		return err
	}
	scheduler := newScheduler(solver, inst.fairness)

	ctx, cancel := o.solveContext(cmd.Context())
	defer cancel()
	result, err := scheduler.Build(ctx, inst.input)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"teams":     inst.input.Teams,
		"days":      inst.input.Days,
		"extended":  inst.fairness != nil,
		"solver":    o.config.Solver,
		"variables": result.Variables,
		"clauses":   result.Clauses,
		"status":    result.Status,
	}).Info("instance solved")

	out := cmd.OutOrStdout()
	switch result.Status {
	case sat.Unsatisfiable:
		color.New(color.FgRed).Fprintf(out, "No schedule of %v teams fits in %v days\n", inst.input.Teams, inst.input.Days)
		return exitUnsatisfiable
	case sat.TimedOut:
		color.New(color.FgYellow).Fprintf(out, "The solver timed out after %v\n", o.config.Timeout)
		return exitTimedOut
	}

	if !scheduler.Verify(result.Schedule, inst.input) {
		log.Error("the decoded schedule breaks a scheduling rule")
		return exitUnverified
	}

	rendered, err := result.Schedule.Render(inst.teams)
	if err != nil {
		return err
	}
	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(rendered), 0o644); err != nil {
			return errors.Wrap(err, "cannot write schedule")
		}
	} else {
		fmt.Fprint(out, rendered)
	}
	return exitSatisfiable
}
