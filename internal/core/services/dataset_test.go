package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"car-price-service/internal/core/domain"
	"car-price-service/internal/testutil"
)

func TestDatasetService_Preview_FirstFiveRowsUnmodified(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	table := testutil.CarPriceTable()
	repo.On("Load", mock.Anything).Return(table, nil)
	svc := NewDatasetService(repo)

	cols, rows, err := svc.Preview(context.Background(), DefaultPreviewRows)
	require.NoError(t, err)
	assert.Equal(t, table.Columns, cols)
	require.Len(t, rows, 5)
	assert.Equal(t, testutil.CarPriceTable().Rows[:5], rows)
}

func TestDatasetService_Preview_FewerRowsThanRequested(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	repo.On("Load", mock.Anything).Return(&domain.DatasetTable{Columns: []string{"price"}, Rows: [][]string{{"1"}}}, nil)
	svc := NewDatasetService(repo)

	_, rows, err := svc.Preview(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestDatasetService_Preview_InvalidCount(t *testing.T) {
	svc := NewDatasetService(new(testutil.MockDatasetRepo))

	_, _, err := svc.Preview(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidRowCount)
	_, _, err = svc.Preview(context.Background(), MaxPreviewRows+1)
	assert.ErrorIs(t, err, domain.ErrInvalidRowCount)
}

func TestDatasetService_Preview_Unavailable(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	repo.On("Load", mock.Anything).Return(nil, domain.ErrDatasetUnavailable)
	svc := NewDatasetService(repo)

	_, _, err := svc.Preview(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestDatasetService_Charts(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	repo.On("Load", mock.Anything).Return(testutil.CarPriceTable(), nil).Once()
	svc := NewDatasetService(repo)

	charts, err := svc.Charts(context.Background())
	require.NoError(t, err)
	require.Len(t, charts, 2)

	assert.Equal(t, "highwaympg", charts[0].XColumn)
	assert.Equal(t, "price", charts[0].YColumn)
	// last row has a non-numeric price and is skipped
	require.Len(t, charts[0].Points, 6)
	assert.Equal(t, domain.ScatterPoint{X: 27, Y: 13495}, charts[0].Points[0])

	assert.Equal(t, "horsepower", charts[1].XColumn)
	assert.Equal(t, domain.ScatterPoint{X: 154, Y: 16500}, charts[1].Points[2])
	repo.AssertExpectations(t)
}

func TestDatasetService_Scatter_UnknownColumn(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	repo.On("Load", mock.Anything).Return(testutil.CarPriceTable(), nil)
	svc := NewDatasetService(repo)

	_, err := svc.Scatter(context.Background(), "enginesize", "price")
	assert.ErrorIs(t, err, domain.ErrColumnNotFound)
}

func TestDatasetService_Summary(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	repo.On("Load", mock.Anything).Return(testutil.CarPriceTable(), nil)
	svc := NewDatasetService(repo)

	out, err := svc.Summary(context.Background(), []string{"highwaympg", "price"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 7, out[0].Count)
	assert.InDelta(t, 26.0, out[0].Mean, 1e-9)
	assert.Equal(t, 22.0, out[0].Min)
	assert.Equal(t, 30.0, out[0].Max)

	assert.Equal(t, 6, out[1].Count)
	assert.Equal(t, 13495.0, out[1].Min)
	assert.Equal(t, 17450.0, out[1].Max)
	assert.Greater(t, out[1].StdDev, 0.0)
}
