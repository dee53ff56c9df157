package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"car-price-service/internal/core/domain"
)

const carPriceCSV = `car_ID,symboling,CarName,carwidth,curbweight,horsepower,highwaympg,price
1,3,alfa-romero giulia,64.1,2548,111,27,13495
2,3,alfa-romero stelvio,64.1,2548,111,27,16500
3,1,alfa-romero Quadrifoglio,65.5,2823,154,26,16500
4,2,audi 100 ls,66.2,2337,102,30,13950
5,2,audi 100ls,66.4,2824,115,22,17450
6,2,audi fox,66.3,2507,110,25,15250
`

func TestFileRepository_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CarPrice.csv")
	require.NoError(t, os.WriteFile(path, []byte(carPriceCSV), 0o600))

	table, err := NewFileRepository(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"car_ID", "symboling", "CarName", "carwidth", "curbweight", "horsepower", "highwaympg", "price"}, table.Columns)
	require.Len(t, table.Rows, 6)
	assert.Equal(t, []string{"1", "3", "alfa-romero giulia", "64.1", "2548", "111", "27", "13495"}, table.Rows[0])

	head := table.Head(5)
	require.Len(t, head, 5)
	assert.Equal(t, []string{"5", "2", "audi 100ls", "66.4", "2824", "115", "22", "17450"}, head[4])
}

func TestFileRepository_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CarPrice.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"highwaympg", "horsepower", "price"},
		{"27", "111", "13495"},
		{"30", "102", "13950"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := NewFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"highwaympg", "horsepower", "price"}, table.Columns)
	assert.Equal(t, [][]string{{"27", "111", "13495"}, {"30", "102", "13950"}}, table.Rows)
}

func TestFileRepository_Missing(t *testing.T) {
	_, err := NewFileRepository(filepath.Join(t.TempDir(), "CarPrice.csv")).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestFileRepository_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := NewFileRepository(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestUnavailable(t *testing.T) {
	_, err := NewUnavailable().Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestFileRepository_CSVWithByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CarPrice.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeff"+carPriceCSV), 0o600))

	table, err := NewFileRepository(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "car_ID", table.Columns[0])
	idx, err := table.ColumnIndex("car_ID")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, []string{"1", "3", "alfa-romero giulia", "64.1", "2548", "111", "27", "13495"}, table.Rows[0])
}
