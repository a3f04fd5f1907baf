package sat

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDIMACS(t *testing.T) {
	//** Arrange
	instance := SAT{
		Variables: 3,
		Clauses: [][]int64{
			{1, -2},
			{-3},
			{},
		},
	}

	//** Act
	dimacs := instance.ToDIMACS()

	//** Assert
	assert.Equal(t, "p cnf 3 3\n1 -2 0\n-3 0\n0\n", dimacs)
}

func TestToDIMACSLineCountMatchesHeader(t *testing.T) {
	for range 10 {
		instance := generateSATInstance(uint64(rand.IntN(30)+1), rand.IntN(50)+1)

		lines := strings.Split(strings.TrimSuffix(instance.ToDIMACS(), "\n"), "\n")

		assert.Equal(t, len(instance.Clauses)+1, len(lines))
		assert.True(t, strings.HasPrefix(lines[0], "p cnf "))
		for _, line := range lines[1:] {
			assert.True(t, strings.HasSuffix(line, "0"))
		}
	}
}

func TestParseSolution(t *testing.T) {
	t.Run("Satisfiable over several lines", func(t *testing.T) {
		result, err := ParseSolution("c comment\ns SATISFIABLE\nv 1 -2 3\nv -4 5 0\n")

		require.NoError(t, err)
		assert.Equal(t, Satisfiable, result.Status)
		assert.Equal(t, SATSolution{1, -2, 3, -4, 5}, result.Solution)
	})

	t.Run("Model without status line", func(t *testing.T) {
		result, err := ParseSolution("v -1 2 0")

		require.NoError(t, err)
		assert.Equal(t, Satisfiable, result.Status)
		assert.Equal(t, SATSolution{-1, 2}, result.Solution)
	})

	t.Run("Unsatisfiable", func(t *testing.T) {
		result, err := ParseSolution("c glucose\ns UNSATISFIABLE\n")

		require.NoError(t, err)
		assert.Equal(t, Unsatisfiable, result.Status)
		assert.Nil(t, result.Solution)
	})

	t.Run("Unknown", func(t *testing.T) {
		result, err := ParseSolution("s UNKNOWN\n")

		require.NoError(t, err)
		assert.Equal(t, TimedOut, result.Status)
	})

	t.Run("Malformed outputs", func(t *testing.T) {
		outputs := []string{
			"",
			"c only comments\n",
			"s SATISFIABLE\n",
			"s SATISFIABLE\nv 1 -2\n",
			"v 1 x 0\n",
			"v 1 0 2\n",
			"s\n",
			"s MAYBE\nv 1 0\n",
			"garbage\n",
		}
		for _, output := range outputs {
			_, err := ParseSolution(output)
			assert.ErrorIs(t, err, ErrMalformedOutput, "output %q", output)
		}
	})
}

func TestParseMinisatSolution(t *testing.T) {
	result, err := parseMinisatSolution("SAT\n1 -2 3 0\n")
	require.NoError(t, err)
	assert.Equal(t, Satisfiable, result.Status)
	assert.Equal(t, SATSolution{1, -2, 3}, result.Solution)

	result, err = parseMinisatSolution("UNSAT\n")
	require.NoError(t, err)
	assert.Equal(t, Unsatisfiable, result.Status)

	result, err = parseMinisatSolution("INDET\n")
	require.NoError(t, err)
	assert.Equal(t, TimedOut, result.Status)

	_, err = parseMinisatSolution("SAT\n")
	assert.ErrorIs(t, err, ErrMalformedOutput)

	_, err = parseMinisatSolution("")
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestAssertSATSolution(t *testing.T) {
	instance := SAT{Variables: 2, Clauses: [][]int64{{1, 2}, {-1}}}

	assert.True(t, AssertSATSolution(instance, SATSolution{-1, 2}))
	assert.False(t, AssertSATSolution(instance, SATSolution{1, 2}))
	assert.False(t, AssertSATSolution(instance, SATSolution{-1, -2}))
	assert.False(t, AssertSATSolution(instance, SATSolution{-1, 2, -2}))
}

func TestNewSolver(t *testing.T) {
	for _, name := range Names() {
		solver, err := NewSolver(name, map[string]string{})
		assert.NoError(t, err)
		assert.NotNil(t, solver)
	}

	_, err := NewSolver("picosat", nil)
	assert.ErrorIs(t, err, ErrUnknownSolver)
}

func generateSATInstance(literals uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: literals,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		satInstance.Clauses[i] = make([]int64, 0, literals)
		for j := range literals {
			if rand.Float32() < 0.5 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*(1+int64(j)))
			}
		}

		if len(satInstance.Clauses[i]) == 0 {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*(1+rand.Int64N(int64(literals))))
		}
	}

	return satInstance
}
