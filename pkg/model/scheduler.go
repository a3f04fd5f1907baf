package model

import (
	"context"

	"github.com/limaJavier/roundrobin/pkg/sat"
)

// Result of a scheduling attempt. Schedule is only set when Status is sat.Satisfiable
type Result struct {
	Status    sat.Status
	Schedule  Schedule
	Variables uint64
	Clauses   uint64
}

type Scheduler interface {
	// Build compiles the instance, solves it and decodes the model. Infeasibility and an expired ctx are reported through Result.Status
	Build(ctx context.Context, modelInput ModelInput) (Result, error)

	// Verify checks a schedule against the scheduling rules without going through the CNF
	Verify(schedule Schedule, modelInput ModelInput) bool
}
