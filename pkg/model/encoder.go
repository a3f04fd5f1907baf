package model

import (
	"github.com/limaJavier/roundrobin/pkg/sat"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Family is the group of clauses generated for one scheduling rule
type Family struct {
	Name    string
	Clauses [][]int64
}

// Encode compiles the instance into CNF. A nil fairness encodes the base problem (no self-play, one match per team per day, round-robin coverage);
// otherwise the sunday and streak constraints are appended. Families are returned in the order their clauses appear in the instance
func Encode(input ModelInput, fairness *Fairness) (sat.SAT, []Family, error) {
	if err := input.validate(); err != nil {
		return sat.SAT{}, nil, err
	}

	state := constraintState{
		indexer: newIndexer(input.Teams, input.Days),
		teams:   input.Teams,
		days:    input.Days,
	}
	constraints := baseConstraints
	if fairness != nil {
		if err := fairness.Validate(); err != nil {
			return sat.SAT{}, nil, err
		}
		state.fairness = *fairness
		constraints = extendedConstraints
	}

	satInstance, families := buildSat(state.indexer.Variables(), constraints, state)
	return satInstance, families, nil
}

func buildSat(variables uint64, constraints []constraint, state constraintState) (sat.SAT, []Family) {
	families := make([]Family, len(constraints))

	// Build every family on its own goroutine, each one writes to its own slot so the order is preserved
	var group errgroup.Group
	for i, constraint := range constraints {
		group.Go(func() error {
			families[i] = Family{
				Name:    constraint.name,
				Clauses: constraint.build(state),
			}
			return nil
		})
	}
	group.Wait()

	satInstance := sat.SAT{
		Variables: variables,
		Clauses: make([][]int64, 0, lo.SumBy(families, func(family Family) int {
			return len(family.Clauses)
		})),
	}
	for _, family := range families {
		satInstance.Clauses = append(satInstance.Clauses, family.Clauses...)
	}

	return satInstance, families
}
