package mocks

import (
	"context"

	"archivo/internal/authz"
	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockFUIDRepository struct {
	mock.Mock
}

func (m *MockFUIDRepository) Create(ctx context.Context, f *model.FUID) (*model.FUID, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FUID), args.Error(1)
}

func (m *MockFUIDRepository) FindByID(ctx context.Context, id int64) (*model.FUID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FUID), args.Error(1)
}

func (m *MockFUIDRepository) Update(ctx context.Context, f *model.FUID) (*model.FUID, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FUID), args.Error(1)
}

func (m *MockFUIDRepository) AttachRecord(ctx context.Context, fuidID, recordID int64) error {
	args := m.Called(ctx, fuidID, recordID)
	return args.Error(0)
}

func (m *MockFUIDRepository) List(ctx context.Context, scope authz.FUIDScope, q grid.Query) (*repository.PageResult[model.FUID], error) {
	args := m.Called(ctx, scope, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.FUID]), args.Error(1)
}
