package model

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ModelInput is the size of a scheduling instance
type ModelInput struct {
	Teams uint64
	Days  uint64
}

func (input ModelInput) validate() error {
	if input.Teams == 0 {
		return fmt.Errorf("the number of teams must be positive")
	} else if input.Days == 0 {
		return fmt.Errorf("the number of days must be positive")
	}
	return nil
}

// Fairness parametrizes the sunday constraints: the minimal share of away (resp. home) matches every team plays on sundays
type Fairness struct {
	AwayRatio float64 `mapstructure:"away"`
	HomeRatio float64 `mapstructure:"home"`
}

var DefaultFairness = Fairness{
	AwayRatio: 0.5,
	HomeRatio: 0.4,
}

// Validate checks both ratios lie in [0, 1]
func (fairness Fairness) Validate() error {
	if fairness.AwayRatio < 0 || fairness.AwayRatio > 1 {
		return fmt.Errorf("away ratio must be between 0 and 1: %v", fairness.AwayRatio)
	} else if fairness.HomeRatio < 0 || fairness.HomeRatio > 1 {
		return fmt.Errorf("home ratio must be between 0 and 1: %v", fairness.HomeRatio)
	}
	return nil
}

// LeagueInput is the content of a league file
type LeagueInput struct {
	Teams    []string  `mapstructure:"teams"`
	Days     uint64    `mapstructure:"days"`
	Fairness *Fairness `mapstructure:"fairness"`
}

// ModelInput returns the instance size described by the league
func (league LeagueInput) ModelInput() ModelInput {
	return ModelInput{
		Teams: uint64(len(league.Teams)),
		Days:  league.Days,
	}
}

// TeamsFromFile reads a roster, one team per line (line index is team index). Trailing blank lines are ignored
func TeamsFromFile(file string) ([]string, error) {
	handle, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open roster: %w", err)
	}
	defer handle.Close()

	teams := make([]string, 0)
	scanner := bufio.NewScanner(handle)
	for scanner.Scan() {
		teams = append(teams, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read roster: %w", err)
	}

	// Drop trailing blank lines
	for len(teams) > 0 && strings.TrimSpace(teams[len(teams)-1]) == "" {
		teams = teams[:len(teams)-1]
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("roster %v is empty", file)
	}
	return teams, nil
}

// InputFromJson reads a league file:
//
//	{"teams": ["Lyon", "Paris"], "days": 2, "fairness": {"away": 0.5, "home": 0.4}}
func InputFromJson(file string) (LeagueInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return LeagueInput{}, fmt.Errorf("cannot read league file: %w", err)
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return LeagueInput{}, err
	}

	var league LeagueInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &league,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return LeagueInput{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return LeagueInput{}, fmt.Errorf("invalid league file: %w", err)
	}

	if err := league.ModelInput().validate(); err != nil {
		return LeagueInput{}, err
	}
	if league.Fairness != nil {
		if err := league.Fairness.Validate(); err != nil {
			return LeagueInput{}, err
		}
	}
	return league, nil
}

// DefaultTeams names teams "Team 1" to "Team n"
func DefaultTeams(teams uint64) []string {
	return lo.Times(int(teams), func(i int) string {
		return fmt.Sprintf("Team %d", i+1)
	})
}
