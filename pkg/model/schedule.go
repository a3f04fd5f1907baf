package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/roundrobin/pkg/sat"
)

// Match states that on Day the Home team hosts the Away team
type Match struct {
	Day  uint64
	Home uint64
	Away uint64
}

type Schedule []Match

// decodeSchedule turns every positive literal of the solution into a match, negative literals (absent matches) are ignored
func decodeSchedule(solution sat.SATSolution, indexer indexer) (Schedule, error) {
	schedule := make(Schedule, 0)
	for _, literal := range solution {
		if literal <= 0 {
			continue
		}
		if uint64(literal) > indexer.Variables() {
			return nil, fmt.Errorf("literal %v is out of range [1, %v]", literal, indexer.Variables())
		}
		day, home, away := indexer.Attributes(uint64(literal))
		schedule = append(schedule, Match{Day: day, Home: home, Away: away})
	}
	return schedule, nil
}

// Sorted returns a copy of the schedule ordered by day, then by home team
func (schedule Schedule) Sorted() Schedule {
	sorted := slices.Clone(schedule)
	slices.SortFunc(sorted, func(a, b Match) int {
		if dayComparison := cmp.Compare(a.Day, b.Day); dayComparison != 0 {
			return dayComparison
		}
		return cmp.Compare(a.Home, b.Home)
	})
	return sorted
}

// Render writes one line per match using the teams' names, e.g. "day 0: Lyon (home) vs Paris (away)"
func (schedule Schedule) Render(teams []string) (string, error) {
	var builder strings.Builder
	for _, match := range schedule.Sorted() {
		if match.Home >= uint64(len(teams)) || match.Away >= uint64(len(teams)) {
			return "", fmt.Errorf("match %v references a team missing from the roster (%v teams)", match, len(teams))
		}
		fmt.Fprintf(&builder, "day %d: %v (home) vs %v (away)\n", match.Day, teams[match.Home], teams[match.Away])
	}
	return builder.String(), nil
}
