package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"car-price-service/internal/core/domain"
)

// MockPriceModel is a mock of PriceModel.
type MockPriceModel struct {
	mock.Mock
}

func (m *MockPriceModel) Predict(x []float64) (float64, error) {
	args := m.Called(x)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPriceModel) Features() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockPriceModel) Info() domain.ModelInfo {
	args := m.Called()
	return args.Get(0).(domain.ModelInfo)
}

// MockDatasetRepo is a mock of DatasetRepository.
type MockDatasetRepo struct {
	mock.Mock
}

func (m *MockDatasetRepo) Load(ctx context.Context) (*domain.DatasetTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetTable), args.Error(1)
}

// MockArtifactSource is a mock of ArtifactSource.
type MockArtifactSource struct {
	mock.Mock
}

func (m *MockArtifactSource) Read(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockArtifactSource) Describe() string {
	return m.Called().String(0)
}
