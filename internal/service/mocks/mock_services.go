package mocks

import (
	"context"

	"archivo/internal/authz"
	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/service"
	"archivo/internal/stats"
	"github.com/stretchr/testify/mock"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Create(ctx context.Context, pr authz.Principal, in service.RecordInput, fuidID *int64) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, pr, in, fuidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockRecordService) Get(ctx context.Context, pr authz.Principal, id int64) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, pr, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockRecordService) Update(ctx context.Context, pr authz.Principal, id int64, in service.RecordInput) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, pr, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockRecordService) Delete(ctx context.Context, pr authz.Principal, id int64) error {
	args := m.Called(ctx, pr, id)
	return args.Error(0)
}

func (m *MockRecordService) List(ctx context.Context, q grid.Query) (*service.PageResult[model.ArchiveRecord], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageResult[model.ArchiveRecord]), args.Error(1)
}

type MockFUIDService struct {
	mock.Mock
}

func (m *MockFUIDService) Create(ctx context.Context, pr authz.Principal, in service.FUIDInput) (*model.FUID, error) {
	args := m.Called(ctx, pr, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FUID), args.Error(1)
}

func (m *MockFUIDService) Get(ctx context.Context, pr authz.Principal, id int64) (*model.FUID, error) {
	args := m.Called(ctx, pr, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FUID), args.Error(1)
}

func (m *MockFUIDService) Update(ctx context.Context, pr authz.Principal, id int64, in service.FUIDInput) (*model.FUID, error) {
	args := m.Called(ctx, pr, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FUID), args.Error(1)
}

func (m *MockFUIDService) List(ctx context.Context, pr authz.Principal, q grid.Query) (*service.PageResult[model.FUID], error) {
	args := m.Called(ctx, pr, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageResult[model.FUID]), args.Error(1)
}

func (m *MockFUIDService) Candidates(ctx context.Context, q service.CandidateQuery) ([]model.ArchiveRecord, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArchiveRecord), args.Error(1)
}

func (m *MockFUIDService) AttachRecord(ctx context.Context, pr authz.Principal, fuidID, recordID int64) error {
	args := m.Called(ctx, pr, fuidID, recordID)
	return args.Error(0)
}

func (m *MockFUIDService) CreateRecord(ctx context.Context, pr authz.Principal, fuidID int64, in service.RecordInput) (*model.ArchiveRecord, error) {
	args := m.Called(ctx, pr, fuidID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArchiveRecord), args.Error(1)
}

func (m *MockFUIDService) Export(ctx context.Context, pr authz.Principal, id int64) (*service.ExportFile, error) {
	args := m.Called(ctx, pr, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

func (m *MockFUIDService) Archive(ctx context.Context, pr authz.Principal, id int64) (*service.ArchivedExport, error) {
	args := m.Called(ctx, pr, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchivedExport), args.Error(1)
}

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) Create(ctx context.Context, pr authz.Principal, in service.PatientInput) (*model.PatientRecord, error) {
	args := m.Called(ctx, pr, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockPatientService) Get(ctx context.Context, consecutivo int64) (*model.PatientRecord, error) {
	args := m.Called(ctx, consecutivo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockPatientService) Update(ctx context.Context, pr authz.Principal, consecutivo int64, in service.PatientInput) (*model.PatientRecord, error) {
	args := m.Called(ctx, pr, consecutivo, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PatientRecord), args.Error(1)
}

func (m *MockPatientService) List(ctx context.Context, q grid.Query) (*service.PageResult[model.PatientRecord], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PageResult[model.PatientRecord]), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Series(ctx context.Context) ([]model.Series, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Series), args.Error(1)
}

func (m *MockCatalogService) Subseries(ctx context.Context, seriesID int64) ([]model.Subseries, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subseries), args.Error(1)
}

func (m *MockCatalogService) Usernames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) CheckClassification(ctx context.Context, seriesID int64, subseriesID *int64) error {
	args := m.Called(ctx, seriesID, subseriesID)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Records(ctx context.Context, fechaInicio, fechaFin string) (*stats.RecordStats, error) {
	args := m.Called(ctx, fechaInicio, fechaFin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.RecordStats), args.Error(1)
}

func (m *MockStatsService) FUIDs(ctx context.Context, usuario string) (*stats.FUIDStats, error) {
	args := m.Called(ctx, usuario)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.FUIDStats), args.Error(1)
}

func (m *MockStatsService) Patients(ctx context.Context, usuario string) (*stats.PatientStats, error) {
	args := m.Called(ctx, usuario)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.PatientStats), args.Error(1)
}
