package dto

import (
	"fmt"
	"math"

	"car-price-service/internal/core/domain"
)

const (
	PlotWidth   = 480.0
	PlotHeight  = 300.0
	plotPadding = 30.0
)

// PlotPoint is a scatter point already projected into SVG coordinates.
type PlotPoint struct {
	CX    float64
	CY    float64
	Title string
}

type ScatterPlot struct {
	Title  string
	XLabel string
	YLabel string
	Color  string
	Points []PlotPoint
}

// NewScatterPlot scales a series into a PlotWidth x PlotHeight viewport.
func NewScatterPlot(s *domain.ScatterSeries, color string) ScatterPlot {
	plot := ScatterPlot{
		Title:  fmt.Sprintf("%s vs %s", s.XColumn, s.YColumn),
		XLabel: s.XColumn,
		YLabel: s.YColumn,
		Color:  color,
		Points: make([]PlotPoint, 0, len(s.Points)),
	}
	if len(s.Points) == 0 {
		return plot
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range s.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	for _, p := range s.Points {
		plot.Points = append(plot.Points, PlotPoint{
			CX:    plotPadding + scale(p.X, minX, maxX)*(PlotWidth-2*plotPadding),
			CY:    PlotHeight - plotPadding - scale(p.Y, minY, maxY)*(PlotHeight-2*plotPadding),
			Title: fmt.Sprintf("%s=%g, %s=%g", s.XColumn, p.X, s.YColumn, p.Y),
		})
	}
	return plot
}

// BarPair is one feature of the input-vs-average chart, as percentages of
// the largest value on the shared axis.
type BarPair struct {
	Label      string
	Input      float64
	Average    float64
	InputPct   float64
	AveragePct float64
}

func NewBarChart(rows []ComparisonResponse) []BarPair {
	peak := 0.0
	for _, r := range rows {
		peak = math.Max(peak, math.Max(r.Input, r.Average))
	}

	out := make([]BarPair, 0, len(rows))
	for _, r := range rows {
		bar := BarPair{Label: r.Label, Input: r.Input, Average: r.Average}
		if peak > 0 {
			bar.InputPct = 100 * r.Input / peak
			bar.AveragePct = 100 * r.Average / peak
		}
		out = append(out, bar)
	}
	return out
}

func scale(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}
