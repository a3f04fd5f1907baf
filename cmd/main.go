package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/limaJavier/roundrobin/internal/config"
	"github.com/limaJavier/roundrobin/pkg/model"
	"github.com/limaJavier/roundrobin/pkg/sat"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

func main() {
	cfg, err := config.Load(config.Locate())
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	log.SetLevel(cfg.Level())

	solver, err := cfg.NewSolver()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	bold.Println("Single round-robin")
	base := model.NewBaseScheduler(solver)
	schedule(ctx, base, model.ModelInput{Teams: 3, Days: 4})
	schedule(ctx, base, model.ModelInput{Teams: 3, Days: 6})

	bold.Printf("\nMinimal number of days (%v per solver run)\n", cfg.Timeout)
	optimizer := model.NewDayOptimizer(base, cfg.Timeout, model.WithWorkers(runtime.NumCPU()))
	bounds, err := optimizer.Scan(ctx, cfg.MinTeams, cfg.MaxTeams)
	if err != nil {
		log.Fatal(err)
	}
	for _, bound := range bounds {
		note := ""
		if !bound.Proven {
			note = " (at least one solver run timed out)"
		}
		fmt.Printf("%v teams: %v days%v\n", bound.Teams, bound.Days, note)
	}

	bold.Println("\nWith sunday fairness and no streaks")
	schedule(ctx, model.NewExtendedScheduler(solver, cfg.Fairness), model.ModelInput{Teams: 3, Days: 9})
}

func schedule(ctx context.Context, scheduler model.Scheduler, input model.ModelInput) {
	result, err := scheduler.Build(ctx, input)
	if err != nil {
		log.Fatalf("cannot schedule %v teams over %v days: %v", input.Teams, input.Days, err)
	}

	fmt.Printf("%v teams, %v days (%v variables, %v clauses): ", input.Teams, input.Days, result.Variables, result.Clauses)
	if result.Status != sat.Satisfiable {
		red.Println(result.Status)
		return
	}
	green.Println(result.Status)

	if !scheduler.Verify(result.Schedule, input) {
		log.Fatal("verification failed")
	}
	rendered, err := result.Schedule.Render(model.DefaultTeams(input.Teams))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(rendered)
}
