package mocks

import (
	"context"
	"time"

	"archivo/internal/stats"
	"github.com/stretchr/testify/mock"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordStats(ctx context.Context, from, to *time.Time) (*stats.RecordStats, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.RecordStats), args.Error(1)
}

func (m *MockStatsRepository) FUIDStats(ctx context.Context, username string) (*stats.FUIDStats, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.FUIDStats), args.Error(1)
}

func (m *MockStatsRepository) PatientStats(ctx context.Context, username string) (*stats.PatientStats, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.PatientStats), args.Error(1)
}

func (m *MockStatsRepository) PatientBirthDates(ctx context.Context, username string) ([]time.Time, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}
