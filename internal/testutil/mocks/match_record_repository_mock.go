package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iamyashpreet99/pitchside/internal/models"
)

// MockMatchRecordRepository is a mock implementation of repository.MatchRecordRepository
type MockMatchRecordRepository struct {
	mock.Mock
}

func (m *MockMatchRecordRepository) Insert(ctx context.Context, rec models.MatchRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMatchRecordRepository) Get(ctx context.Context, id int64) (*models.MatchRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchRecord), args.Error(1)
}

func (m *MockMatchRecordRepository) List(ctx context.Context, filter models.MatchRecordFilter) ([]models.MatchRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchRecord), args.Error(1)
}

func (m *MockMatchRecordRepository) Count(ctx context.Context, filter models.MatchRecordFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}
