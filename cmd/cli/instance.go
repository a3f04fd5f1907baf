package main

import (
	"github.com/limaJavier/roundrobin/internal/config"
	"github.com/limaJavier/roundrobin/pkg/model"
	"github.com/limaJavier/roundrobin/pkg/sat"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type instanceOptions struct {
	teams    uint64
	days     uint64
	roster   string
	league   string
	extended bool
}

type instance struct {
	teams    []string
	input    model.ModelInput
	fairness *model.Fairness
}

func (io *instanceOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&io.teams, "teams", 0, "number of teams, named Team 1 to Team n")
	cmd.Flags().Uint64Var(&io.days, "days", 0, "number of match days")
	cmd.Flags().StringVar(&io.roster, "roster", "", "file listing one team per line, replaces --teams")
	cmd.Flags().StringVar(&io.league, "league", "", "JSON league file with teams, days and optionally fairness ratios")
	cmd.Flags().BoolVar(&io.extended, "extended", false, "add the sunday fairness and no-streak rules")
}

// resolve picks the teams from (by priority) the league file, the roster flag, the teams flag and the configured roster.
// Days given on the command line override the league's
func (io *instanceOptions) resolve(cfg config.Config) (instance, error) {
	var result instance

	if io.league != "" {
		league, err := model.InputFromJson(io.league)
		if err != nil {
			return instance{}, err
		}
		result.teams = league.Teams
		result.input = league.ModelInput()
		result.fairness = league.Fairness
	} else {
		roster := io.roster
		if roster == "" && io.teams == 0 {
			roster = cfg.Roster
		}

		if roster != "" {
			teams, err := model.TeamsFromFile(roster)
			if err != nil {
				return instance{}, err
			}
			result.teams = teams
		} else {
			result.teams = model.DefaultTeams(io.teams)
		}
		result.input = model.ModelInput{Teams: uint64(len(result.teams))}
	}

	if io.days != 0 {
		result.input.Days = io.days
	}
	if io.extended && result.fairness == nil {
		fairness := cfg.Fairness
		result.fairness = &fairness
	}

	if result.input.Teams == 0 {
		return instance{}, errors.New("no teams: set --teams, --roster or --league")
	} else if result.input.Days == 0 {
		return instance{}, errors.New("no days: set --days or use a league file")
	}
	return result, nil
}

func newScheduler(solver sat.SATSolver, fairness *model.Fairness) model.Scheduler {
	if fairness == nil {
		return model.NewBaseScheduler(solver)
	}
	return model.NewExtendedScheduler(solver, *fairness)
}
