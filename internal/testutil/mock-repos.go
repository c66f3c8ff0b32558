package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tobacco-dashboard-service/internal/domain"
)

// MockDatasetRepo is a testify mock of domain.DatasetRepository.
type MockDatasetRepo struct {
	mock.Mock
}

func (m *MockDatasetRepo) Countries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDatasetRepo) Meta(ctx context.Context, country string) (domain.CountryMeta, error) {
	args := m.Called(ctx, country)
	return args.Get(0).(domain.CountryMeta), args.Error(1)
}

func (m *MockDatasetRepo) Tobacco(ctx context.Context, filter domain.ObservationFilter) ([]domain.Observation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Observation), args.Error(1)
}

func (m *MockDatasetRepo) Mortality(ctx context.Context, filter domain.ObservationFilter) ([]domain.Observation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Observation), args.Error(1)
}

func (m *MockDatasetRepo) Joined(ctx context.Context, filter domain.ObservationFilter) ([]domain.JoinedRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JoinedRow), args.Error(1)
}

func (m *MockDatasetRepo) Counts(ctx context.Context) (domain.DatasetCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DatasetCounts), args.Error(1)
}
