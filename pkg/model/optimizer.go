package model

import (
	"context"
	"fmt"
	"time"

	"github.com/limaJavier/roundrobin/pkg/sat"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Attempt records one feasibility check of the binary search
type Attempt struct {
	Days    uint64
	Status  sat.Status
	Elapsed time.Duration
}

// DayBound is the outcome of the search for a team count.
// When Proven is false, Days was only backed by a timeout: the solver could not rule it out in time, it never produced a schedule for it
type DayBound struct {
	Teams    uint64
	Days     uint64
	Feasible bool
	Proven   bool
	Attempts []Attempt
}

// DayOptimizer searches the minimal number of days of a single round-robin. It relies on feasibility being monotonic in the number of days
type DayOptimizer struct {
	scheduler Scheduler
	timeout   time.Duration
	workers   int
	logger    log.FieldLogger
}

type OptimizerOption func(optimizer *DayOptimizer)

// WithWorkers bounds how many team counts Scan searches simultaneously. Each binary search remains sequential
func WithWorkers(workers int) OptimizerOption {
	return func(optimizer *DayOptimizer) {
		optimizer.workers = max(workers, 1)
	}
}

func WithLogger(logger log.FieldLogger) OptimizerOption {
	return func(optimizer *DayOptimizer) {
		optimizer.logger = logger
	}
}

// NewDayOptimizer bounds every solver run by timeout, a non-positive timeout disables it
func NewDayOptimizer(scheduler Scheduler, timeout time.Duration, options ...OptimizerOption) *DayOptimizer {
	optimizer := &DayOptimizer{
		scheduler: scheduler,
		timeout:   timeout,
		workers:   1,
		logger:    log.StandardLogger(),
	}
	for _, option := range options {
		option(optimizer)
	}
	return optimizer
}

// MinimumDays binary-searches [2(teams-1), teams(teams-1)]. A timed out attempt narrows the search as if it was satisfiable
func (optimizer *DayOptimizer) MinimumDays(ctx context.Context, teams uint64) (DayBound, error) {
	if teams < 2 {
		return DayBound{}, fmt.Errorf("at least two teams are required: %v", teams)
	}

	minDays, maxDays := 2*(teams-1), teams*(teams-1)
	bound := DayBound{Teams: teams, Attempts: make([]Attempt, 0)}
	for minDays <= maxDays {
		days := (minDays + maxDays) / 2

		attempt, err := optimizer.attempt(ctx, ModelInput{Teams: teams, Days: days})
		if err != nil {
			return DayBound{}, err
		}
		bound.Attempts = append(bound.Attempts, attempt)

		switch attempt.Status {
		case sat.Unsatisfiable:
			minDays = days + 1
		case sat.Satisfiable, sat.TimedOut:
			bound.Days = days
			bound.Feasible = true
			bound.Proven = attempt.Status == sat.Satisfiable
			maxDays = days - 1
		}
	}

	optimizer.logger.WithFields(log.Fields{
		"teams":    teams,
		"days":     bound.Days,
		"feasible": bound.Feasible,
		"proven":   bound.Proven,
		"attempts": len(bound.Attempts),
	}).Info("day count search finished")
	return bound, nil
}

// Scan runs MinimumDays for every team count in [minTeams, maxTeams], bounds are returned in increasing team order
func (optimizer *DayOptimizer) Scan(ctx context.Context, minTeams, maxTeams uint64) ([]DayBound, error) {
	if minTeams > maxTeams {
		return nil, fmt.Errorf("empty team range [%v, %v]", minTeams, maxTeams)
	}

	bounds := make([]DayBound, maxTeams-minTeams+1)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(optimizer.workers)
	for teams := minTeams; teams <= maxTeams; teams++ {
		group.Go(func() error {
			bound, err := optimizer.MinimumDays(groupCtx, teams)
			if err != nil {
				return err
			}
			bounds[teams-minTeams] = bound
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return bounds, nil
}

func (optimizer *DayOptimizer) attempt(ctx context.Context, modelInput ModelInput) (Attempt, error) {
	attemptCtx, cancel := ctx, context.CancelFunc(func() {})
	if optimizer.timeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, optimizer.timeout)
	}
	defer cancel()

	start := time.Now()
	result, err := optimizer.scheduler.Build(attemptCtx, modelInput)
	if ctx.Err() != nil { // Cancelled by the caller, not by the attempt's timeout
		return Attempt{}, ctx.Err()
	} else if err != nil {
		return Attempt{}, err
	}

	attempt := Attempt{
		Days:    modelInput.Days,
		Status:  result.Status,
		Elapsed: time.Since(start),
	}
	optimizer.logger.WithFields(log.Fields{
		"teams":   modelInput.Teams,
		"days":    modelInput.Days,
		"status":  attempt.Status,
		"elapsed": attempt.Elapsed,
		"clauses": result.Clauses,
	}).Debug("attempt finished")
	return attempt, nil
}
