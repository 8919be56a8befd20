// This file provides functions for reading truth tables.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxCols bounds the number of truth-table columns we're willing to
// allocate a table for.
const maxCols = 30

// A TruthTable represents a complete truth table with each row marked as
// either true or false.
type TruthTable struct {
	NCols int    // Number of columns (variables)
	TT    []bool // One entry per row, 2^NCols in all
}

// NewTruthTable returns an all-false truth table with a given number of
// columns.
func NewTruthTable(nc int) TruthTable {
	return TruthTable{
		NCols: nc,
		TT:    make([]bool, 1<<uint(nc)),
	}
}

// ValidRows returns the numbers of all true rows in ascending order.
func (tt TruthTable) ValidRows() []uint {
	rows := make([]uint, 0, len(tt.TT))
	for r, v := range tt.TT {
		if v {
			rows = append(rows, uint(r))
		}
	}
	return rows
}

// parseRow parses a row of Booleans, specified in a flexible manner, into one
// or more binary numbers.  It returns the numbers and the total number of bits
// on the line.
func parseRow(s string) ([]uint, int, error) {
	// Discard comments ("#" to the end of the line).
	cIdx := strings.Index(s, "#")
	if cIdx != -1 {
		s = s[:cIdx]
	}

	// Ignore blank lines.
	fields := strings.Fields(s)
	n := len(fields)
	if n == 0 {
		return nil, 0, nil
	}

	// Parse each field in turn.
	vs := make([]uint, 1, 128)
	for _, f := range fields {
		for i := range vs {
			vs[i] <<= 1
		}
		switch strings.ToUpper(f) {
		case "0", "-1", "F", "FALSE":
			// False
		case "1", "T", "TRUE":
			// True
			for i := range vs {
				vs[i] |= 1
			}
		case "*", "-", "?":
			// Don't care
			for i := range vs {
				vs = append(vs, vs[i]|1)
			}
		default:
			return nil, 0, fmt.Errorf("failed to parse %q as a Boolean value", f)
		}
	}
	return vs, n, nil
}

// ReadTruthTable reads a truth table in which each line lists the columns of
// one true row.
func ReadTruthTable(r io.Reader) (TruthTable, error) {
	// Read and parse each line in turn.
	var tt TruthTable
	row := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row++
		vs, nc, err := parseRow(scanner.Text())
		switch {
		case err != nil:
			return TruthTable{}, fmt.Errorf("line %d: %w", row, err)
		case nc == 0:
			// Blank line: ignore.
			continue
		case tt.NCols == 0:
			// First row: Allocate the table.
			if nc > maxCols {
				return TruthTable{}, fmt.Errorf("line %d: %d columns exceeds the maximum of %d", row, nc, maxCols)
			}
			tt = NewTruthTable(nc)
		case nc != tt.NCols:
			// Change in column count: Abort.
			return TruthTable{}, fmt.Errorf("column count changed from %d to %d in line %d", tt.NCols, nc, row)
		}

		// Store the row's value(s).
		for _, v := range vs {
			tt.TT[v] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return TruthTable{}, err
	}
	return tt, nil
}

// ReadTruthTableFile reads a truth table from a named file or, if the name is
// empty, from standard input.
func ReadTruthTableFile(name string, stdin io.Reader) (TruthTable, error) {
	if name == "" {
		return ReadTruthTable(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return TruthTable{}, err
	}
	defer f.Close()
	return ReadTruthTable(f)
}
