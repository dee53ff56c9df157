package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DatasetTable is a read-only table of historical car records. Cells are
// kept exactly as read from the source.
type DatasetTable struct {
	Columns []string
	Rows    [][]string
}

// Head returns the first n rows without copying or altering cell values.
func (t *DatasetTable) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	if n < 0 {
		n = 0
	}
	return t.Rows[:n]
}

// ColumnIndex finds a column by name, ignoring case and surrounding spaces.
func (t *DatasetTable) ColumnIndex(name string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, c := range t.Columns {
		if strings.ToLower(strings.TrimSpace(c)) == want {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

// Numeric returns the parseable values of a column. ok marks which rows
// held a finite number; NaN and infinities count as missing.
func (t *DatasetTable) Numeric(name string) (values []float64, ok []bool, err error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, nil, err
	}
	values = make([]float64, len(t.Rows))
	ok = make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		if idx >= len(row) {
			continue
		}
		v, perr := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values[i] = v
		ok[i] = true
	}
	return values, ok, nil
}

type ScatterPoint struct {
	X float64
	Y float64
}

type ScatterSeries struct {
	XColumn string
	YColumn string
	Points  []ScatterPoint
}

type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}
