package model

import (
	"context"

	"github.com/limaJavier/roundrobin/pkg/sat"
)

type extendedScheduler struct {
	solver   sat.SATSolver
	fairness Fairness
}

// NewExtendedScheduler adds the sunday fairness and no-streak rules to the base round-robin
func NewExtendedScheduler(solver sat.SATSolver, fairness Fairness) Scheduler {
	return &extendedScheduler{
		solver:   solver,
		fairness: fairness,
	}
}

func (scheduler *extendedScheduler) Build(ctx context.Context, modelInput ModelInput) (Result, error) {
	return build(ctx, scheduler.solver, modelInput, &scheduler.fairness)
}

func (scheduler *extendedScheduler) Verify(schedule Schedule, modelInput ModelInput) bool {
	return verify(schedule, modelInput, &scheduler.fairness)
}
