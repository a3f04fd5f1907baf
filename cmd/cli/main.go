package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/limaJavier/roundrobin/internal/config"
	"github.com/limaJavier/roundrobin/pkg/sat"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// exitCode ends the process with a status instead of an error message.
// Codes follow the SAT competition convention, so scripts can treat the CLI like a solver
type exitCode int

const (
	exitSatisfiable   exitCode = 10
	exitUnverified    exitCode = 15
	exitUnsatisfiable exitCode = 20
	exitTimedOut      exitCode = 30
)

func (code exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(code))
}

type options struct {
	configFile string
	logLevel   string
	solver     string
	timeout    time.Duration

	config config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:           "roundrobin",
		Short:         "Schedules round-robin tournaments with SAT solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "path to a JSON config file; config.json next to the executable is used when empty")
	flags.StringVar(&o.logLevel, "log-level", "", "one of panic, fatal, error, warn, info, debug and trace")
	flags.StringVar(&o.solver, "solver", "", fmt.Sprintf("SAT solver, one of %v", sat.Names()))
	flags.DurationVar(&o.timeout, "timeout", 0, "time limit of every solver run, 0 disables it")

	cmd.AddCommand(
		newSolveCmd(o),
		newEncodeCmd(o),
		newOptimizeCmd(o),
	)
	return cmd
}

// load reads the config file and lets explicitly set flags override it
func (o *options) load(cmd *cobra.Command) error {
	file := o.configFile
	if file == "" {
		file = config.Locate()
	}
	loaded, err := config.Load(file)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = o.logLevel
	}
	if flags.Changed("solver") {
		loaded.Solver = o.solver
	}
	if flags.Changed("timeout") {
		loaded.Timeout = o.timeout
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	log.SetLevel(loaded.Level())
	if file != "" {
		log.Debugf("configuration loaded from %v", file)
	}
	o.config = loaded
	return nil
}

// solveContext bounds a single solver run by the configured timeout
func (o *options) solveContext(parent context.Context) (context.Context, context.CancelFunc) {
	if o.config.Timeout > 0 {
		return context.WithTimeout(parent, o.config.Timeout)
	}
	return context.WithCancel(parent)
}
