package model

import (
	"context"
	"testing"

	"github.com/limaJavier/roundrobin/pkg/sat"

	. "github.com/onsi/gomega"
)

func TestBaseSchedulerThreeTeams(t *testing.T) {
	g := NewWithT(t)
	scheduler := NewBaseScheduler(sat.NewGiniSolver())

	//** Every day hosts at most one match, six days are needed
	input := ModelInput{Teams: 3, Days: 6}
	result, err := scheduler.Build(context.Background(), input)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.Status).To(Equal(sat.Satisfiable))
	g.Expect(result.Schedule).To(HaveLen(6))
	g.Expect(result.Variables).To(Equal(uint64(54)))
	g.Expect(scheduler.Verify(result.Schedule, input)).To(BeTrue())

	for _, days := range []uint64{2, 4, 5} {
		result, err := scheduler.Build(context.Background(), ModelInput{Teams: 3, Days: days})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(result.Status).To(Equal(sat.Unsatisfiable), "%v days", days)
		g.Expect(result.Schedule).To(BeEmpty())
	}
}

func TestBaseSchedulerCoversEveryPair(t *testing.T) {
	g := NewWithT(t)
	scheduler := NewBaseScheduler(sat.NewGiniSolver())

	for _, input := range []ModelInput{{Teams: 2, Days: 2}, {Teams: 4, Days: 6}, {Teams: 5, Days: 12}, {Teams: 6, Days: 14}} {
		result, err := scheduler.Build(context.Background(), input)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(result.Status).To(Equal(sat.Satisfiable), "%+v", input)
		g.Expect(result.Schedule).To(HaveLen(int(input.Teams * (input.Teams - 1))))
		g.Expect(scheduler.Verify(result.Schedule, input)).To(BeTrue(), "%+v", input)

		pairs := make(map[[2]uint64]uint64)
		for _, match := range result.Schedule {
			pairs[[2]uint64{match.Home, match.Away}]++
		}
		for home := range input.Teams {
			for away := range input.Teams {
				if home != away {
					g.Expect(pairs[[2]uint64{home, away}]).To(Equal(uint64(1)))
				}
			}
		}
	}
}

func TestBaseSchedulerMonotonic(t *testing.T) {
	g := NewWithT(t)
	scheduler := NewBaseScheduler(sat.NewGiniSolver())

	for _, teams := range []uint64{3, 4} {
		feasible := false
		for days := uint64(1); days <= teams*(teams-1)+1; days++ {
			result, err := scheduler.Build(context.Background(), ModelInput{Teams: teams, Days: days})
			g.Expect(err).NotTo(HaveOccurred())
			if feasible {
				g.Expect(result.Status).To(Equal(sat.Satisfiable), "%v teams, %v days", teams, days)
			}
			feasible = result.Status == sat.Satisfiable
		}
		g.Expect(feasible).To(BeTrue())
	}
}

func TestExtendedScheduler(t *testing.T) {
	g := NewWithT(t)
	scheduler := NewExtendedScheduler(sat.NewGiniSolver(), DefaultFairness)

	input := ModelInput{Teams: 4, Days: 8}
	result, err := scheduler.Build(context.Background(), input)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.Status).To(Equal(sat.Satisfiable))
	g.Expect(scheduler.Verify(result.Schedule, input)).To(BeTrue())

	for team := range input.Teams {
		home := make([]bool, input.Days)
		away := make([]bool, input.Days)
		for _, match := range result.Schedule {
			if match.Home == team {
				home[match.Day] = true
			} else if match.Away == team {
				away[match.Day] = true
			}
		}
		g.Expect(longestWindowCount(home)).To(BeNumerically("<=", 2))
		g.Expect(longestWindowCount(away)).To(BeNumerically("<=", 2))
	}
}

func TestExtendedSchedulerVerify(t *testing.T) {
	g := NewWithT(t)
	extended := NewExtendedScheduler(sat.NewGiniSolver(), DefaultFairness)
	base := NewBaseScheduler(sat.NewGiniSolver())
	input := ModelInput{Teams: 4, Days: 8}

	g.Expect(extended.Verify(fairSchedule, input)).To(BeTrue())
	g.Expect(base.Verify(fairSchedule, input)).To(BeTrue())

	//** Everything moved to saturdays breaks sunday fairness only
	saturdays := Schedule{
		{Day: 0, Home: 0, Away: 1}, {Day: 0, Home: 2, Away: 3},
		{Day: 2, Home: 0, Away: 2}, {Day: 2, Home: 1, Away: 3},
		{Day: 4, Home: 3, Away: 0}, {Day: 4, Home: 2, Away: 1},
		{Day: 6, Home: 1, Away: 0}, {Day: 6, Home: 3, Away: 2},
		{Day: 8, Home: 2, Away: 0}, {Day: 8, Home: 3, Away: 1},
		{Day: 10, Home: 0, Away: 3}, {Day: 10, Home: 1, Away: 2},
	}
	longer := ModelInput{Teams: 4, Days: 11}
	g.Expect(base.Verify(saturdays, longer)).To(BeTrue())
	g.Expect(extended.Verify(saturdays, longer)).To(BeFalse())
}

func TestVerifyRejections(t *testing.T) {
	g := NewWithT(t)
	input := ModelInput{Teams: 3, Days: 6}
	valid := Schedule{
		{Day: 0, Home: 0, Away: 1}, {Day: 1, Home: 1, Away: 2}, {Day: 2, Home: 2, Away: 0},
		{Day: 3, Home: 1, Away: 0}, {Day: 4, Home: 2, Away: 1}, {Day: 5, Home: 0, Away: 2},
	}
	g.Expect(verify(valid, input, nil)).To(BeTrue())

	replace := func(index int, match Match) Schedule {
		schedule := append(Schedule{}, valid...)
		schedule[index] = match
		return schedule
	}

	// Missing pair
	g.Expect(verify(valid[:5], input, nil)).To(BeFalse())
	// Pair met twice
	g.Expect(verify(append(valid, Match{Day: 5, Home: 0, Away: 1}), input, nil)).To(BeFalse())
	// Team 1 plays twice on day 1
	g.Expect(verify(replace(0, Match{Day: 1, Home: 0, Away: 1}), input, nil)).To(BeFalse())
	// Self-play
	g.Expect(verify(replace(0, Match{Day: 0, Home: 1, Away: 1}), input, nil)).To(BeFalse())
	// Out of range
	g.Expect(verify(replace(0, Match{Day: 6, Home: 0, Away: 1}), input, nil)).To(BeFalse())
	g.Expect(verify(replace(0, Match{Day: 0, Home: 3, Away: 1}), input, nil)).To(BeFalse())
	g.Expect(verify(valid, ModelInput{Teams: 3, Days: 0}, nil)).To(BeFalse())
}

func TestSchedulerCancelled(t *testing.T) {
	g := NewWithT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewBaseScheduler(sat.NewGiniSolver()).Build(ctx, ModelInput{Teams: 8, Days: 14})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.Status).To(Equal(sat.TimedOut))
	g.Expect(result.Schedule).To(BeEmpty())
}

func TestSchedulerInvalidInput(t *testing.T) {
	g := NewWithT(t)

	_, err := NewBaseScheduler(sat.NewGiniSolver()).Build(context.Background(), ModelInput{Teams: 0, Days: 4})
	g.Expect(err).To(HaveOccurred())

	_, err = NewExtendedScheduler(sat.NewGiniSolver(), Fairness{AwayRatio: 2}).Build(context.Background(), ModelInput{Teams: 3, Days: 4})
	g.Expect(err).To(HaveOccurred())
}
