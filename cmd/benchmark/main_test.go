package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("00:01:01.12"))
	assert.Equal(t, int64(60*60*1000+60*1000+1000+120), parseDuration("01:01:01.12"))
	assert.Equal(t, int64(60*1000+1000+120), parseDuration("1:01.12"))
	assert.Equal(t, int64(120), parseDuration("0:00.12"))
	assert.Equal(t, int64(120), parseDuration("00:00:00.12"))
}

func TestParseTimeLines(t *testing.T) {
	assert.Equal(t, int64(2340), parseDurationLine("\tElapsed (wall clock) time (h:mm:ss or m:ss): 0:02.34"))
	assert.Equal(t, float32(12.5), parseMemoryLine("\tMaximum resident set size (kbytes): 12800"))
	assert.Equal(t, int64(98), parseCpuPercentageLine("\tPercent of CPU this job got: 98%"))
}

func TestGetInstances(t *testing.T) {
	instances := getInstances()

	require.Len(t, instances, 15)
	assert.Equal(t, Instance{Teams: 4, Days: 5}, instances[0])
	assert.Equal(t, Instance{Teams: 4, Days: 6}, instances[1])
	assert.Equal(t, Instance{Teams: 4, Days: 12, Extended: true}, instances[2])
}

func TestToCsv(t *testing.T) {
	var buffer bytes.Buffer
	results := []BenchmarkResult{
		{Solver: "kissat", Instance: Instance{Teams: 6, Days: 10}, Duration: 1520, Memory: 10.3, CpuPercentage: 99, Result: solved},
		{Solver: "gini", Instance: Instance{Teams: 6, Days: 20, Extended: true}, Duration: 60000, Memory: 8, CpuPercentage: 100, Result: timeout},
	}

	require.NoError(t, toCsv(&buffer, results))

	assert.Equal(t, "Solver,Teams,Days,Extended,Duration(ms),Memory(MB),CPU(%),Result\n"+
		"kissat,6,10,false,1520,10.3,99,solved\n"+
		"gini,6,20,true,60000,8.0,100,timeout\n", buffer.String())
}
