package dto

import "car-price-service/internal/core/domain"

// PredictionRequest carries the four inputs. The binding tags are the input
// widgets' ranges; the estimator itself checks nothing.
type PredictionRequest struct {
	HighwayMPG float64 `json:"highwaympg" form:"highwaympg" binding:"required,min=10,max=60"`
	CurbWeight float64 `json:"curbweight" form:"curbweight" binding:"required,min=500,max=3000"`
	Horsepower float64 `json:"horsepower" form:"horsepower" binding:"required,min=50,max=500"`
	CarWidth   float64 `json:"carwidth" form:"carwidth" binding:"required,min=100,max=300"`
}

func (r PredictionRequest) ToFeatureVector() domain.FeatureVector {
	return domain.FeatureVector{
		HighwayMPG: r.HighwayMPG,
		CurbWeight: r.CurbWeight,
		Horsepower: r.Horsepower,
		CarWidth:   r.CarWidth,
	}
}

type FeatureValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type ComparisonResponse struct {
	Feature string  `json:"feature"`
	Label   string  `json:"label"`
	Input   float64 `json:"input"`
	Average float64 `json:"average"`
}

type PredictionResponse struct {
	Price      float64              `json:"price"`
	Formatted  string               `json:"formatted"`
	Features   []FeatureValue       `json:"features"`
	Comparison []ComparisonResponse `json:"comparison"`
}

func ToPredictionResponse(in domain.FeatureVector, est domain.PriceEstimate, cmp []domain.FeatureComparison) PredictionResponse {
	values := in.Values()
	features := make([]FeatureValue, 0, len(values))
	for i, name := range domain.FeatureNames {
		features = append(features, FeatureValue{Name: name, Value: values[i]})
	}

	comparison := make([]ComparisonResponse, 0, len(cmp))
	for _, c := range cmp {
		comparison = append(comparison, ComparisonResponse{
			Feature: c.Feature,
			Label:   c.Label,
			Input:   c.Input,
			Average: c.Average,
		})
	}

	return PredictionResponse{
		Price:      est.Value,
		Formatted:  FormatPrice(est.Value),
		Features:   features,
		Comparison: comparison,
	}
}
