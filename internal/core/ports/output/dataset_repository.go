package ports

import (
	"context"

	"car-price-service/internal/core/domain"
)

type DatasetRepository interface {
	Load(ctx context.Context) (*domain.DatasetTable, error)
}
