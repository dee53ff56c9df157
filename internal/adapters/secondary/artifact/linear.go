package artifact

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/ports/output"
)

// Scaler standardizes inputs as (x - Mean) / Scale before the dot product.
type Scaler struct {
	Mean  []float64
	Scale []float64
}

// LinearModel is a fitted linear regression: intercept + x·coef.
type LinearModel struct {
	features  []string
	coef      *mat.VecDense
	intercept float64
	scaler    *Scaler
	info      domain.ModelInfo
}

var _ ports.PriceModel = (*LinearModel)(nil)

// NewLinearModel validates the fitted parameters against the input schema.
// features must list domain.FeatureNames in the same order.
func NewLinearModel(features []string, coef []float64, intercept float64, scaler *Scaler, source string) (*LinearModel, error) {
	if err := checkFeatureOrder(features); err != nil {
		return nil, err
	}
	if len(coef) != len(features) {
		return nil, fmt.Errorf("%w: %d coefficients for %d features", domain.ErrArtifactFormat, len(coef), len(features))
	}
	if !allFinite(coef) || !allFinite([]float64{intercept}) {
		return nil, fmt.Errorf("%w: non-finite coefficient", domain.ErrArtifactFormat)
	}
	if scaler != nil {
		if len(scaler.Mean) != len(features) || len(scaler.Scale) != len(features) {
			return nil, fmt.Errorf("%w: scaler expects %d/%d values, have %d features",
				domain.ErrArtifactFormat, len(scaler.Mean), len(scaler.Scale), len(features))
		}
		if !allFinite(scaler.Mean) || !allFinite(scaler.Scale) {
			return nil, fmt.Errorf("%w: non-finite scaler value", domain.ErrArtifactFormat)
		}
		for i, s := range scaler.Scale {
			if s == 0 {
				return nil, fmt.Errorf("%w: zero scale for %s", domain.ErrArtifactFormat, features[i])
			}
		}
	}

	var ownScaler *Scaler
	if scaler != nil {
		ownScaler = &Scaler{
			Mean:  append([]float64(nil), scaler.Mean...),
			Scale: append([]float64(nil), scaler.Scale...),
		}
	}

	names := append([]string(nil), features...)
	return &LinearModel{
		features:  names,
		coef:      mat.NewVecDense(len(coef), append([]float64(nil), coef...)),
		intercept: intercept,
		scaler:    ownScaler,
		info: domain.ModelInfo{
			Kind:     domain.ModelKindLinearRegression,
			Features: names,
			Source:   source,
			Scaled:   ownScaler != nil,
		},
	}, nil
}

func (m *LinearModel) Predict(x []float64) (float64, error) {
	if len(x) != m.coef.Len() {
		return 0, fmt.Errorf("%w: model expects %d features, got %d", domain.ErrShapeMismatch, m.coef.Len(), len(x))
	}

	in := mat.NewVecDense(len(x), append([]float64(nil), x...))
	if m.scaler != nil {
		in.SubVec(in, mat.NewVecDense(len(m.scaler.Mean), m.scaler.Mean))
		in.DivElemVec(in, mat.NewVecDense(len(m.scaler.Scale), m.scaler.Scale))
	}

	return m.intercept + mat.Dot(in, m.coef), nil
}

func (m *LinearModel) Features() []string {
	return append([]string(nil), m.features...)
}

func (m *LinearModel) Info() domain.ModelInfo {
	info := m.info
	info.Features = m.Features()
	return info
}

func checkFeatureOrder(features []string) error {
	if len(features) != len(domain.FeatureNames) {
		return fmt.Errorf("%w: artifact declares %v, expected %v", domain.ErrFeatureMismatch, features, domain.FeatureNames)
	}
	for i, name := range domain.FeatureNames {
		if features[i] != name {
			return fmt.Errorf("%w: artifact declares %v, expected %v", domain.ErrFeatureMismatch, features, domain.FeatureNames)
		}
	}
	return nil
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
