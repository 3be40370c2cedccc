package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iamyashpreet99/pitchside/internal/models"
)

// MockSimulationRepository is a mock implementation of repository.SimulationRepository
type MockSimulationRepository struct {
	mock.Mock
}

func (m *MockSimulationRepository) Insert(ctx context.Context, rec models.SimulationRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSimulationRepository) Get(ctx context.Context, id int64) (*models.SimulationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SimulationRecord), args.Error(1)
}

func (m *MockSimulationRepository) List(ctx context.Context, limit, offset int) ([]models.SimulationRecord, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SimulationRecord), args.Error(1)
}

func (m *MockSimulationRepository) MarkRunning(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSimulationRepository) Complete(ctx context.Context, rec models.SimulationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockSimulationRepository) Fail(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}
