package sat

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// SATSolution holds the signed literals of a model, positive literals are assigned true
type SATSolution []int64

// SAT is a CNF instance: a conjunction of clauses over variables 1..Variables
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// Transform SAT into DIMACS-CNF string format
func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	s.WriteDIMACS(&builder)
	return builder.String()
}

// WriteDIMACS streams the instance in DIMACS-CNF format: a "p cnf" header followed by one zero-terminated line per clause
func (s SAT) WriteDIMACS(w io.Writer) error {
	writer := bufio.NewWriter(w)
	buffer := make([]byte, 0, 32)

	buffer = append(buffer, "p cnf "...)
	buffer = strconv.AppendUint(buffer, s.Variables, 10)
	buffer = append(buffer, ' ')
	buffer = strconv.AppendInt(buffer, int64(len(s.Clauses)), 10)
	buffer = append(buffer, '\n')
	if _, err := writer.Write(buffer); err != nil {
		return err
	}

	for _, clause := range s.Clauses {
		buffer = buffer[:0]
		for _, literal := range clause {
			buffer = strconv.AppendInt(buffer, literal, 10)
			buffer = append(buffer, ' ')
		}
		buffer = append(buffer, '0', '\n')
		if _, err := writer.Write(buffer); err != nil {
			return err
		}
	}

	return writer.Flush()
}
