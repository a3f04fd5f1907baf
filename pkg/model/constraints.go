package model

import "math"

type constraintState struct {
	indexer  indexer
	fairness Fairness

	teams,
	days uint64
}

// constraint is a named generator of a family of clauses
type constraint struct {
	name  string
	build func(state constraintState) [][]int64
}

var (
	baseConstraints = []constraint{
		{name: "no self-play", build: selfPlayConstraints},
		{name: "one match per team per day", build: dailyMatchConstraints},
		{name: "round-robin coverage", build: roundRobinConstraints},
	}
	extendedConstraints = append(baseConstraints[:len(baseConstraints):len(baseConstraints)],
		constraint{name: "sunday fairness", build: sundayConstraints},
		constraint{name: "no streak", build: streakConstraints},
	)
)

// Longest run of consecutive days in which a team may play at most maxStreak home (or away) matches
const (
	streakWindow = 3
	maxStreak    = 2
)

// A team never hosts itself: -m(j, x, x)
func selfPlayConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0, state.days*state.teams)
	for day := range state.days {
		for team := range state.teams {
			clauses = append(clauses, []int64{-int64(state.indexer.Index(day, team, team))})
		}
	}
	return clauses
}

// A team plays at most one match a day, whether at home or away
func dailyMatchConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)
	for day := range state.days {
		for team := range state.teams {
			matches := make([]int64, 0, 2*(state.teams-1))
			for opponent := range state.teams {
				if opponent != team {
					matches = append(matches, int64(state.indexer.Index(day, team, opponent)))
				}
			}
			for opponent := range state.teams {
				if opponent != team {
					matches = append(matches, int64(state.indexer.Index(day, opponent, team)))
				}
			}
			clauses = append(clauses, atMostOne(matches)...)
		}
	}
	return clauses
}

// Every ordered pair of distinct teams meets on exactly one day
func roundRobinConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)
	for team1 := range state.teams {
		for team2 := team1 + 1; team2 < state.teams; team2++ {
			hostedBy1 := make([]int64, 0, state.days)
			hostedBy2 := make([]int64, 0, state.days)
			for day := range state.days {
				hostedBy1 = append(hostedBy1, int64(state.indexer.Index(day, team1, team2)))
				hostedBy2 = append(hostedBy2, int64(state.indexer.Index(day, team2, team1)))
			}
			clauses = append(clauses, atLeastOne(hostedBy1)...)
			clauses = append(clauses, atMostOne(hostedBy1)...)
			clauses = append(clauses, atLeastOne(hostedBy2)...)
			clauses = append(clauses, atMostOne(hostedBy2)...)
		}
	}
	return clauses
}

// Sundays are the odd days (the league plays on weekends, saturday first).
// Each team plays at least ceil(AwayRatio * (teams-1)) of its away matches and ceil(HomeRatio * (teams-1)) of its home matches on sundays
func sundayConstraints(state constraintState) [][]int64 {
	requiredAway := requiredMatches(state.fairness.AwayRatio, state.teams)
	requiredHome := requiredMatches(state.fairness.HomeRatio, state.teams)

	clauses := make([][]int64, 0)
	for team := range state.teams {
		away, home := make([]int64, 0), make([]int64, 0)
		for day := uint64(1); day < state.days; day += 2 {
			for opponent := range state.teams {
				if opponent == team {
					continue
				}
				away = append(away, int64(state.indexer.Index(day, opponent, team)))
				home = append(home, int64(state.indexer.Index(day, team, opponent)))
			}
		}
		clauses = append(clauses, atLeastK(away, requiredAway)...)
		clauses = append(clauses, atLeastK(home, requiredHome)...)
	}
	return clauses
}

// No team plays more than maxStreak away (or home) matches within streakWindow consecutive days
func streakConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)
	if state.days < streakWindow {
		return clauses
	}

	for team := range state.teams {
		for start := range state.days - streakWindow + 1 {
			away, home := make([]int64, 0), make([]int64, 0)
			for day := start; day < start+streakWindow; day++ {
				for opponent := range state.teams {
					if opponent == team {
						continue
					}
					away = append(away, int64(state.indexer.Index(day, opponent, team)))
					home = append(home, int64(state.indexer.Index(day, team, opponent)))
				}
			}
			clauses = append(clauses, atMostK(away, maxStreak)...)
			clauses = append(clauses, atMostK(home, maxStreak)...)
		}
	}
	return clauses
}

func requiredMatches(ratio float64, teams uint64) int {
	return int(math.Ceil(ratio * float64(teams-1)))
}
