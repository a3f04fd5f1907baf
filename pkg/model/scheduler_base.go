package model

import (
	"context"

	"github.com/limaJavier/roundrobin/pkg/sat"
)

type baseScheduler struct {
	solver sat.SATSolver
}

// NewBaseScheduler schedules a single round-robin: no self-play, one match per team per day and every ordered pair meeting once
func NewBaseScheduler(solver sat.SATSolver) Scheduler {
	return &baseScheduler{
		solver: solver,
	}
}

func (scheduler *baseScheduler) Build(ctx context.Context, modelInput ModelInput) (Result, error) {
	return build(ctx, scheduler.solver, modelInput, nil)
}

func (scheduler *baseScheduler) Verify(schedule Schedule, modelInput ModelInput) bool {
	return verify(schedule, modelInput, nil)
}
