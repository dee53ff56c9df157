package dto

import "car-price-service/internal/core/domain"

type DatasetPreviewResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type ScatterPointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ScatterSeriesResponse struct {
	X      string            `json:"x"`
	Y      string            `json:"y"`
	Points []ScatterPointDTO `json:"points"`
}

type ChartsResponse struct {
	Charts []ScatterSeriesResponse `json:"charts"`
}

type ColumnSummaryResponse struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type SummaryResponse struct {
	Columns []ColumnSummaryResponse `json:"columns"`
}

func ToScatterSeriesResponse(s *domain.ScatterSeries) ScatterSeriesResponse {
	points := make([]ScatterPointDTO, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, ScatterPointDTO{X: p.X, Y: p.Y})
	}
	return ScatterSeriesResponse{X: s.XColumn, Y: s.YColumn, Points: points}
}

func ToSummaryResponse(in []domain.ColumnSummary) SummaryResponse {
	cols := make([]ColumnSummaryResponse, 0, len(in))
	for _, c := range in {
		cols = append(cols, ColumnSummaryResponse{
			Column: c.Column,
			Count:  c.Count,
			Mean:   c.Mean,
			StdDev: c.StdDev,
			Min:    c.Min,
			Max:    c.Max,
		})
	}
	return SummaryResponse{Columns: cols}
}
