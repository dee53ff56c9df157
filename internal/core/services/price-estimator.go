package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/ports/output"
)

// PriceEstimator turns a FeatureVector into a price using the loaded model.
// It holds no state besides the read-only model handle.
type PriceEstimator struct {
	model ports.PriceModel
}

func NewPriceEstimator(model ports.PriceModel) (*PriceEstimator, error) {
	if model == nil {
		return nil, domain.ErrModelUnavailable
	}
	return &PriceEstimator{model: model}, nil
}

// Estimate returns exactly what the model yields for features. Values are
// neither validated nor clamped.
func (s *PriceEstimator) Estimate(ctx context.Context, features domain.FeatureVector) (domain.PriceEstimate, error) {
	x := features.Values()
	if n := len(s.model.Features()); n != len(x) {
		return domain.PriceEstimate{}, fmt.Errorf("%w: model expects %d features, got %d", domain.ErrShapeMismatch, n, len(x))
	}

	price, err := s.model.Predict(x)
	if err != nil {
		return domain.PriceEstimate{}, fmt.Errorf("predict: %w", err)
	}

	log.WithFields(log.Fields{
		"highwaympg": features.HighwayMPG,
		"curbweight": features.CurbWeight,
		"horsepower": features.Horsepower,
		"carwidth":   features.CarWidth,
		"price":      price,
	}).Debug("price estimated")

	return domain.PriceEstimate{Value: price}, nil
}

// Compare pairs each input feature with its reference average, in feature order.
func (s *PriceEstimator) Compare(features domain.FeatureVector) []domain.FeatureComparison {
	input := features.Values()
	avg := domain.ReferenceAverages.Values()

	out := make([]domain.FeatureComparison, 0, len(domain.FeatureBounds))
	for i, b := range domain.FeatureBounds {
		out = append(out, domain.FeatureComparison{
			Feature: b.Feature,
			Label:   b.Label,
			Input:   input[i],
			Average: avg[i],
		})
	}
	return out
}

func (s *PriceEstimator) Model() domain.ModelInfo {
	return s.model.Info()
}
