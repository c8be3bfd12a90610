package mocks

import (
	"context"

	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, rec *model.ArchiveRecord, fuidID *int64) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, rec, fuidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockRecordRepository) FindByID(ctx context.Context, id int64) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockRecordRepository) Update(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockRecordRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordRepository) List(ctx context.Context, q grid.Query) (*repository.PageResult[model.ArchiveRecord], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ArchiveRecord]), args.Error(1)
}

func (m *MockRecordRepository) ListUnassigned(ctx context.Context, f repository.CandidateFilter) ([]model.ArchiveRecord, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArchiveRecord), args.Error(1)
}
