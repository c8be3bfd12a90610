package mocks

import (
	"context"

	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, p *model.PatientRecord) (*model.PatientRecord, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockPatientRepository) FindByConsecutivo(ctx context.Context, consecutivo int64) (*model.PatientRecord, error) {
	args := m.Called(ctx, consecutivo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, p *model.PatientRecord) (*model.PatientRecord, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockPatientRepository) List(ctx context.Context, q grid.Query) (*repository.PageResult[model.PatientRecord], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.PatientRecord]), args.Error(1)
}
