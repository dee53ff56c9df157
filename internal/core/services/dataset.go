package services

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/ports/output"
)

const (
	DefaultPreviewRows = 5
	MaxPreviewRows     = 100
)

// ChartPairs are the (x, y) columns plotted on the data view.
var ChartPairs = [][2]string{
	{domain.FeatureHighwayMPG, "price"},
	{domain.FeatureHorsepower, "price"},
}

// SummaryColumns are summarized when the caller does not pick columns.
var SummaryColumns = []string{
	domain.FeatureHighwayMPG,
	domain.FeatureCurbWeight,
	domain.FeatureHorsepower,
	domain.FeatureCarWidth,
	"price",
}

// DatasetService serves the exploration views. It never feeds the estimator.
type DatasetService struct {
	repo ports.DatasetRepository
}

func NewDatasetService(repo ports.DatasetRepository) *DatasetService {
	return &DatasetService{repo: repo}
}

// Preview returns the column names and the first n rows as stored.
func (s *DatasetService) Preview(ctx context.Context, n int) ([]string, [][]string, error) {
	if n <= 0 || n > MaxPreviewRows {
		return nil, nil, domain.ErrInvalidRowCount
	}
	table, err := s.repo.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return table.Columns, table.Head(n), nil
}

func (s *DatasetService) Scatter(ctx context.Context, xCol, yCol string) (*domain.ScatterSeries, error) {
	table, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return scatter(table, xCol, yCol)
}

// Charts builds every series in ChartPairs from a single dataset read.
func (s *DatasetService) Charts(ctx context.Context) ([]*domain.ScatterSeries, error) {
	table, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.ScatterSeries, 0, len(ChartPairs))
	for _, p := range ChartPairs {
		series, err := scatter(table, p[0], p[1])
		if err != nil {
			return nil, err
		}
		out = append(out, series)
	}
	return out, nil
}

// Summary computes descriptive statistics over the numeric cells of each column.
func (s *DatasetService) Summary(ctx context.Context, columns []string) ([]domain.ColumnSummary, error) {
	if len(columns) == 0 {
		columns = SummaryColumns
	}
	table, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ColumnSummary, 0, len(columns))
	for _, col := range columns {
		values, ok, err := table.Numeric(col)
		if err != nil {
			return nil, err
		}
		xs := make([]float64, 0, len(values))
		for i, v := range values {
			if ok[i] {
				xs = append(xs, v)
			}
		}

		summary := domain.ColumnSummary{Column: col, Count: len(xs)}
		if len(xs) > 0 {
			summary.Mean, summary.StdDev = stat.MeanStdDev(xs, nil)
			summary.Min = floats.Min(xs)
			summary.Max = floats.Max(xs)
		}
		if len(xs) < 2 {
			summary.StdDev = 0
		}
		out = append(out, summary)
	}
	return out, nil
}

func scatter(table *domain.DatasetTable, xCol, yCol string) (*domain.ScatterSeries, error) {
	xs, xok, err := table.Numeric(xCol)
	if err != nil {
		return nil, err
	}
	ys, yok, err := table.Numeric(yCol)
	if err != nil {
		return nil, err
	}

	series := &domain.ScatterSeries{XColumn: xCol, YColumn: yCol, Points: []domain.ScatterPoint{}}
	for i := range xs {
		if xok[i] && yok[i] {
			series.Points = append(series.Points, domain.ScatterPoint{X: xs[i], Y: ys[i]})
		}
	}
	return series, nil
}
