package model

import (
	"context"
	"fmt"

	"github.com/limaJavier/roundrobin/pkg/sat"
)

func build(ctx context.Context, solver sat.SATSolver, modelInput ModelInput, fairness *Fairness) (Result, error) {
	//** Build SAT instance
	satInstance, _, err := Encode(modelInput, fairness)
	if err != nil {
		return Result{}, err
	}

	//** Solve SAT instance
	solved, err := solver.Solve(ctx, satInstance)
	if err != nil {
		return Result{}, fmt.Errorf("cannot solve instance with %v teams and %v days: %w", modelInput.Teams, modelInput.Days, err)
	}

	result := Result{
		Status:    solved.Status,
		Variables: satInstance.Variables,
		Clauses:   uint64(len(satInstance.Clauses)),
	}
	if solved.Status != sat.Satisfiable {
		return result, nil
	}

	//** Decode solution
	schedule, err := decodeSchedule(solved.Solution, newIndexer(modelInput.Teams, modelInput.Days))
	if err != nil {
		return Result{}, fmt.Errorf("cannot decode solution: %w", err)
	}
	result.Schedule = schedule
	return result, nil
}

func verify(schedule Schedule, modelInput ModelInput, fairness *Fairness) bool {
	if modelInput.validate() != nil {
		return false
	}
	teams, days := modelInput.Teams, modelInput.Days

	//** Initialize team-assistance (whether a team plays on a given day) and home/away calendars
	assistance := make([][]bool, teams)
	homeCalendar := make([][]bool, teams)
	awayCalendar := make([][]bool, teams)
	for team := range teams {
		assistance[team] = make([]bool, days)
		homeCalendar[team] = make([]bool, days)
		awayCalendar[team] = make([]bool, days)
	}
	played := make(map[[2]uint64]bool)

	for _, match := range schedule {
		// Check that:
		// - Day and teams are within range
		// - A team does not host itself
		// - Neither team already plays that day
		// - The ordered pair has not met yet
		if match.Day >= days || match.Home >= teams || match.Away >= teams ||
			match.Home == match.Away ||
			assistance[match.Home][match.Day] || assistance[match.Away][match.Day] ||
			played[[2]uint64{match.Home, match.Away}] {
			return false
		}

		assistance[match.Home][match.Day] = true
		assistance[match.Away][match.Day] = true
		homeCalendar[match.Home][match.Day] = true
		awayCalendar[match.Away][match.Day] = true
		played[[2]uint64{match.Home, match.Away}] = true
	}

	// Every ordered pair must have met, and since duplicates were rejected, exactly once
	if uint64(len(played)) != teams*(teams-1) {
		return false
	}

	if fairness == nil {
		return true
	}

	requiredAway := requiredMatches(fairness.AwayRatio, teams)
	requiredHome := requiredMatches(fairness.HomeRatio, teams)
	for team := range teams {
		// Sunday fairness
		sundayAway, sundayHome := 0, 0
		for day := uint64(1); day < days; day += 2 {
			if awayCalendar[team][day] {
				sundayAway++
			}
			if homeCalendar[team][day] {
				sundayHome++
			}
		}
		if sundayAway < requiredAway || sundayHome < requiredHome {
			return false
		}

		// Streaks
		if longestWindowCount(homeCalendar[team]) > maxStreak || longestWindowCount(awayCalendar[team]) > maxStreak {
			return false
		}
	}
	return true
}

// longestWindowCount returns the highest number of played days within any streakWindow consecutive days
func longestWindowCount(calendar []bool) int {
	highest := 0
	for start := 0; start+streakWindow <= len(calendar); start++ {
		count := 0
		for _, playing := range calendar[start : start+streakWindow] {
			if playing {
				count++
			}
		}
		highest = max(highest, count)
	}
	return highest
}
