package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetTable_NumericSkipsNonFinite(t *testing.T) {
	table := &DatasetTable{
		Columns: []string{"highwaympg", "price"},
		Rows: [][]string{
			{"27", "13495"},
			{"NaN", "13000"},
			{"25", "inf"},
			{"-Infinity", "9000"},
			{"n/a", "1"},
			{" 30 ", "13950"},
		},
	}

	values, ok, err := table.Numeric("highwaympg")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false, false, true}, ok)
	assert.Equal(t, 27.0, values[0])
	assert.Equal(t, 30.0, values[5])

	_, ok, err = table.Numeric("price")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, true, true, true}, ok)
}

func TestDatasetTable_NumericUnknownColumn(t *testing.T) {
	table := &DatasetTable{Columns: []string{"price"}}

	_, _, err := table.Numeric("enginesize")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestDatasetTable_Head(t *testing.T) {
	table := &DatasetTable{Rows: [][]string{{"1"}, {"2"}}}

	assert.Len(t, table.Head(5), 2)
	assert.Len(t, table.Head(1), 1)
	assert.Empty(t, table.Head(-1))
}
