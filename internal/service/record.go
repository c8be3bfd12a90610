package service

import (
	"context"
	"fmt"

	"archivo/internal/authz"
	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
)

// PageResult is one grid page as seen by handlers.
type PageResult[T any] struct {
	Items    []T
	Total    int
	Filtered int
}

func pageFrom[T any](res *repository.PageResult[T]) *PageResult[T] {
	return &PageResult[T]{Items: res.Items, Total: res.Total, Filtered: res.Filtered}
}

// RecordService implements the archive record use cases.
type RecordService interface {
	// Create validates in and stores a record owned by pr. When fuidID is set
	// the record is attached to that FUID in the same transaction.
	Create(ctx context.Context, pr authz.Principal, in RecordInput, fuidID *int64) (*model.ArchiveRecord, error)
	Get(ctx context.Context, pr authz.Principal, id int64) (*model.ArchiveRecord, error)
	Update(ctx context.Context, pr authz.Principal, id int64, in RecordInput) (*model.ArchiveRecord, error)
	Delete(ctx context.Context, pr authz.Principal, id int64) error
	List(ctx context.Context, q grid.Query) (*PageResult[model.ArchiveRecord], error)
}

type recordService struct {
	repo    repository.RecordRepository
	catalog CatalogService
	policy  *authz.Policy
}

// NewRecordService constructs a RecordService.
func NewRecordService(repo repository.RecordRepository, catalog CatalogService, policy *authz.Policy) RecordService {
	return &recordService{repo: repo, catalog: catalog, policy: policy}
}

func (s *recordService) validate(ctx context.Context, in *RecordInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	return s.catalog.CheckClassification(ctx, in.SerieID, in.SubserieID)
}

func (s *recordService) Create(ctx context.Context, pr authz.Principal, in RecordInput, fuidID *int64) (*model.ArchiveRecord, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}
	rec := &model.ArchiveRecord{CreadoPorID: &pr.ID}
	in.apply(rec)

	created, err := s.repo.Create(ctx, rec, fuidID)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", mapRepoError(err, "codigo_subserie_id"))
	}
	return created, nil
}

func (s *recordService) Get(ctx context.Context, pr authz.Principal, id int64) (*model.ArchiveRecord, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}
	if err := s.policy.AuthorizeRecord(ctx, pr, authz.ActionView, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Update(ctx context.Context, pr authz.Principal, id int64, in RecordInput) (*model.ArchiveRecord, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}
	if err := s.policy.AuthorizeRecord(ctx, pr, authz.ActionEdit, rec); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}
	in.apply(rec)

	updated, err := s.repo.Update(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("update record %d: %w", id, mapRepoError(err, "codigo_subserie_id"))
	}
	return updated, nil
}

func (s *recordService) Delete(ctx context.Context, pr authz.Principal, id int64) error {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "")
	}
	if err := s.policy.AuthorizeRecord(ctx, pr, authz.ActionDelete, rec); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record %d: %w", id, mapRepoError(err, ""))
	}
	return nil
}

func (s *recordService) List(ctx context.Context, q grid.Query) (*PageResult[model.ArchiveRecord], error) {
	res, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return pageFrom(res), nil
}
