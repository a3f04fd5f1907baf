package main

import (
	"io"

	"github.com/limaJavier/roundrobin/pkg/model"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newOptimizeCmd(o *options) *cobra.Command {
	var (
		minTeams, maxTeams uint64
		workers            int
		extended           bool
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the minimal number of days for a range of team counts",
		Long: `Binary-searches the number of days between 2(n-1) and n(n-1) for every team count n.
A solver timeout counts as feasible, such bounds are reported as unproven.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("min-teams") {
				minTeams = o.config.MinTeams
			}
			if !flags.Changed("max-teams") {
				maxTeams = o.config.MaxTeams
			}
			if !flags.Changed("workers") {
				workers = o.config.Workers
			}

			solver, err := o.config.NewSolver()
			if err != nil {
				return err
			}
			var fairness *model.Fairness
			if extended {
				fairness = &o.config.Fairness
			}

			optimizer := model.NewDayOptimizer(newScheduler(solver, fairness), o.config.Timeout, model.WithWorkers(workers))
			bounds, err := optimizer.Scan(cmd.Context(), minTeams, maxTeams)
			if err != nil {
				return err
			}
			for _, bound := range bounds {
				printBound(cmd.OutOrStdout(), bound)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&minTeams, "min-teams", 0, "smallest team count, minTeams from the config by default")
	cmd.Flags().Uint64Var(&maxTeams, "max-teams", 0, "largest team count, maxTeams from the config by default")
	cmd.Flags().IntVar(&workers, "workers", 0, "team counts searched simultaneously, workers from the config by default")
	cmd.Flags().BoolVar(&extended, "extended", false, "add the sunday fairness and no-streak rules")
	return cmd
}

func printBound(w io.Writer, bound model.DayBound) {
	switch {
	case !bound.Feasible:
		color.New(color.FgRed).Fprintf(w, "%v teams: no schedule within %v days\n", bound.Teams, bound.Teams*(bound.Teams-1))
	case bound.Proven:
		color.New(color.FgGreen).Fprintf(w, "%v teams: %v days\n", bound.Teams, bound.Days)
	default:
		color.New(color.FgYellow).Fprintf(w, "%v teams: %v days (unproven, the solver timed out)\n", bound.Teams, bound.Days)
	}
}
