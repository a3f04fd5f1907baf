package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"time"

	"github.com/limaJavier/roundrobin/pkg/model"
	"github.com/limaJavier/roundrobin/pkg/sat"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const FileName = "config.json"

// Config gathers the settings shared by the commands. Command-line flags take precedence over it
type Config struct {
	Solver      string            `mapstructure:"solver"`
	SolverPaths map[string]string `mapstructure:"solverPaths"`
	Timeout     time.Duration     `mapstructure:"timeout"`
	MinTeams    uint64            `mapstructure:"minTeams"`
	MaxTeams    uint64            `mapstructure:"maxTeams"`
	Workers     int               `mapstructure:"workers"`
	LogLevel    string            `mapstructure:"logLevel"`
	Fairness    model.Fairness    `mapstructure:"fairness"`
	Roster      string            `mapstructure:"roster"`
}

func Default() Config {
	return Config{
		Solver:      "gini",
		SolverPaths: map[string]string{},
		Timeout:     10 * time.Second,
		MinTeams:    3,
		MaxTeams:    10,
		Workers:     1,
		LogLevel:    log.InfoLevel.String(),
		Fairness:    model.DefaultFairness,
	}
}

// Load reads a JSON config file on top of the defaults. Durations are either strings ("1m30s") or seconds
func Load(file string) (Config, error) {
	config := Default()
	if file == "" {
		return config, nil
	}

	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "cannot read config file")
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, errors.Wrapf(err, "cannot parse config file %v", file)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &config,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			secondsToDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %v", file)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Locate returns the config file placed next to the executable, or "" when there is none
func Locate() string {
	executable, err := os.Executable()
	if err != nil {
		return ""
	}
	file := filepath.Join(filepath.Dir(executable), FileName)
	if _, err := os.Stat(file); err != nil {
		return ""
	}
	return file
}

func (config Config) Validate() error {
	if !slices.Contains(sat.Names(), config.Solver) {
		return errors.Wrapf(sat.ErrUnknownSolver, "%q", config.Solver)
	} else if config.MinTeams < 2 {
		return errors.Errorf("minTeams must be at least 2: %v", config.MinTeams)
	} else if config.MinTeams > config.MaxTeams {
		return errors.Errorf("minTeams (%v) exceeds maxTeams (%v)", config.MinTeams, config.MaxTeams)
	} else if config.Workers < 1 {
		return errors.Errorf("workers must be positive: %v", config.Workers)
	} else if config.Timeout < 0 {
		return errors.Errorf("timeout must not be negative: %v", config.Timeout)
	} else if _, err := log.ParseLevel(config.LogLevel); err != nil {
		return errors.Wrap(err, "invalid logLevel")
	}
	return errors.Wrap(config.Fairness.Validate(), "invalid fairness")
}

// Level is the parsed LogLevel, Info when it cannot be parsed
func (config Config) Level() log.Level {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// NewSolver instantiates the configured backend
func (config Config) NewSolver() (sat.SATSolver, error) {
	return sat.NewSolver(config.Solver, config.SolverPaths)
}

func secondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch value := data.(type) {
		case float64:
			return time.Duration(value * float64(time.Second)), nil
		case int:
			return time.Duration(value) * time.Second, nil
		}
		return data, nil
	}
}
