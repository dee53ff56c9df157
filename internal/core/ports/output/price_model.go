package ports

import "car-price-service/internal/core/domain"

// PriceModel is a fitted regression loaded once at startup. Implementations
// are never mutated after construction and are safe for concurrent Predict calls.
type PriceModel interface {
	// Predict evaluates the model on x, ordered as Features().
	Predict(x []float64) (float64, error)
	Features() []string
	Info() domain.ModelInfo
}
