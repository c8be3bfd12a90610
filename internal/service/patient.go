package service

import (
	"context"
	"fmt"

	"archivo/internal/authz"
	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
)

// PatientService implements the patient record sheet use cases. Create and
// Update require the global patient capabilities.
type PatientService interface {
	Create(ctx context.Context, pr authz.Principal, in PatientInput) (*model.PatientRecord, error)
	Get(ctx context.Context, consecutivo int64) (*model.PatientRecord, error)
	Update(ctx context.Context, pr authz.Principal, consecutivo int64, in PatientInput) (*model.PatientRecord, error)
	List(ctx context.Context, q grid.Query) (*PageResult[model.PatientRecord], error)
}

type patientService struct {
	repo   repository.PatientRepository
	policy *authz.Policy
}

// NewPatientService constructs a PatientService.
func NewPatientService(repo repository.PatientRepository, policy *authz.Policy) PatientService {
	return &patientService{repo: repo, policy: policy}
}

func (s *patientService) Create(ctx context.Context, pr authz.Principal, in PatientInput) (*model.PatientRecord, error) {
	if err := s.policy.AuthorizePatient(pr, authz.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}
	p := &model.PatientRecord{CreadoPorID: &pr.ID}
	in.apply(p)

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", mapRepoError(err, "num_identificacion"))
	}
	return created, nil
}

func (s *patientService) Get(ctx context.Context, consecutivo int64) (*model.PatientRecord, error) {
	p, err := s.repo.FindByConsecutivo(ctx, consecutivo)
	if err != nil {
		return nil, mapRepoError(err, "")
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, pr authz.Principal, consecutivo int64, in PatientInput) (*model.PatientRecord, error) {
	if err := s.policy.AuthorizePatient(pr, authz.ActionEdit); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByConsecutivo(ctx, consecutivo)
	if err != nil {
		return nil, mapRepoError(err, "")
	}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}
	in.apply(p)

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update patient %d: %w", consecutivo, mapRepoError(err, "num_identificacion"))
	}
	return updated, nil
}

func (s *patientService) List(ctx context.Context, q grid.Query) (*PageResult[model.PatientRecord], error) {
	res, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return pageFrom(res), nil
}
