package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/roundrobin/pkg/sat"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	defaultExecutablePath = "../../bin/roundrobin"
	MB                    = 1024
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	timeout
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	timeout:       "timeout",
}

// Exit codes of the solve command
var exitCodes = map[int]ResultType{
	10: solved,
	20: unsatisfiable,
	30: timeout,
}

type Instance struct {
	Teams    uint64
	Days     uint64
	Extended bool
}

type BenchmarkResult struct {
	Solver        string
	Instance      Instance
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	executablePath := flag.String("executable", defaultExecutablePath, "path to the roundrobin CLI")
	timeLimit := flag.Duration("timeout", time.Minute, "time limit of every solver run")
	outFile := flag.String("out", "benchmark_results.csv", "CSV file the results are written to")
	solversFlag := flag.String("solvers", strings.Join(sat.Names(), ","), "comma-separated solvers to benchmark")
	flag.Parse()

	solvers := strings.Split(*solversFlag, ",")
	instances := getInstances()
	results := make([]BenchmarkResult, 0, len(instances)*len(solvers))

	for _, instance := range instances {
		for _, solver := range solvers {
			log.WithFields(log.Fields{
				"teams":    instance.Teams,
				"days":     instance.Days,
				"extended": instance.Extended,
				"solver":   solver,
			}).Info("benchmarking")

			duration, maxMemory, cpuPercentage, result := measure(*executablePath, solver, *timeLimit, instance)
			results = append(results, BenchmarkResult{
				Solver:        solver,
				Instance:      instance,
				Duration:      duration,
				Memory:        maxMemory,
				CpuPercentage: cpuPercentage,
				Result:        result,
			})
		}
	}

	file, err := os.Create(*outFile)
	if err != nil {
		log.Fatalf("cannot create CSV file: %v", err)
	}
	defer file.Close()
	if err := toCsv(file, results); err != nil {
		log.Fatal(err)
	}
}

// getInstances pairs, for every team count, the largest infeasible number of days with the smallest feasible one
func getInstances() []Instance {
	instances := make([]Instance, 0)
	for _, teams := range []uint64{4, 6, 8, 10, 12} {
		minimum := 2 * (teams - 1) // Every team plays each day
		instances = append(instances,
			Instance{Teams: teams, Days: minimum - 1},
			Instance{Teams: teams, Days: minimum},
			Instance{Teams: teams, Days: 2 * minimum, Extended: true},
		)
	}
	return instances
}

func measure(executablePath, solver string, timeLimit time.Duration, instance Instance) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	args := []string{
		"-v", executablePath, "solve",
		"--solver", solver,
		"--timeout", timeLimit.String(),
		"--log-level", "error",
		"--teams", fmt.Sprint(instance.Teams),
		"--days", fmt.Sprint(instance.Days),
	}
	if instance.Extended {
		args = append(args, "--extended")
	}
	cmd := exec.Command("/usr/bin/time", args...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	if cmd.ProcessState == nil {
		log.Fatalf("cannot run /usr/bin/time: %v", stdErr.String())
	}
	result, ok := exitCodes[cmd.ProcessState.ExitCode()]
	if !ok {
		log.Fatalf("solve failed on %+v with solver \"%v\" (exit code %v): %v", instance, solver, cmd.ProcessState.ExitCode(), stdErr.String())
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(w io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(w)

	header := []string{"Solver", "Teams", "Days", "Extended", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Solver,
		fmt.Sprintf("%d", result.Instance.Teams),
		fmt.Sprintf("%d", result.Instance.Days),
		fmt.Sprintf("%v", result.Instance.Extended),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.1f", result.Memory),
		fmt.Sprintf("%d", result.CpuPercentage),
		resultTypes[result.Result],
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

// parseDuration converts /usr/bin/time's elapsed time (h:mm:ss.cc or m:ss.cc) into milliseconds
func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

// Maximum resident set size is reported in KB
func parseMemoryLine(line string) float32 {
	memoryStr := strings.TrimSpace(strings.Split(line, ":")[1])
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / MB
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.TrimSpace(strings.Split(line, ":")[1])
	percentageStr = strings.TrimSuffix(percentageStr, "%")
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
