package service

import (
	"context"
	"errors"
	"time"

	"archivo/internal/cache"
	"archivo/internal/config"
	"archivo/internal/model"
	"archivo/internal/repository"
)

// CatalogService serves the series/subseries lookups behind the record forms
// and the user list of the candidate filter.
type CatalogService interface {
	Series(ctx context.Context) ([]model.Series, error)
	Subseries(ctx context.Context, seriesID int64) ([]model.Subseries, error)
	Usernames(ctx context.Context) ([]string, error)
	// CheckClassification validates that seriesID exists and that subseriesID,
	// when set, belongs to it.
	CheckClassification(ctx context.Context, seriesID int64, subseriesID *int64) error
}

type catalogService struct {
	repo      repository.CatalogRepository
	series    *cache.Lookup[struct{}, []model.Series]
	subseries *cache.Lookup[int64, []model.Subseries]
}

// NewCatalogService wraps repo with the expirable lookup cache.
func NewCatalogService(repo repository.CatalogRepository, cfg config.CacheConfig) CatalogService {
	ttl := time.Duration(cfg.TTLSec) * time.Second
	return &catalogService{
		repo:      repo,
		series:    cache.NewLookup[struct{}, []model.Series]("series", 1, ttl),
		subseries: cache.NewLookup[int64, []model.Subseries]("subseries", cfg.Size, ttl),
	}
}

func (s *catalogService) Series(ctx context.Context) ([]model.Series, error) {
	return s.series.GetOrLoad(ctx, struct{}{}, s.repo.ListSeries)
}

func (s *catalogService) Subseries(ctx context.Context, seriesID int64) ([]model.Subseries, error) {
	if seriesID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.subseries.GetOrLoad(ctx, seriesID, func(ctx context.Context) ([]model.Subseries, error) {
		return s.repo.ListSubseries(ctx, seriesID)
	})
}

func (s *catalogService) Usernames(ctx context.Context) ([]string, error) {
	return s.repo.ListUsernames(ctx)
}

// CheckClassification consults the cache first and falls back to the
// repository so catalog rows added within the cache TTL are accepted.
func (s *catalogService) CheckClassification(ctx context.Context, seriesID int64, subseriesID *int64) error {
	all, err := s.Series(ctx)
	if err != nil {
		return err
	}
	if !containsSeries(all, seriesID) {
		ok, err := s.repo.SeriesExists(ctx, seriesID)
		if err != nil {
			return err
		}
		if !ok {
			return fieldError("codigo_serie_id", msgInvalidChoice)
		}
		s.series.Purge()
	}
	if subseriesID == nil {
		return nil
	}

	subs, err := s.Subseries(ctx, seriesID)
	if err != nil {
		return err
	}
	for _, ss := range subs {
		if ss.ID == *subseriesID {
			return nil
		}
	}

	ss, err := s.repo.FindSubseries(ctx, *subseriesID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fieldError("codigo_subserie_id", msgInvalidChoice)
	case err != nil:
		return err
	case ss.SeriesID != seriesID:
		return fieldError("codigo_subserie_id", msgSubseries)
	}
	s.subseries.Purge()
	return nil
}

func containsSeries(all []model.Series, id int64) bool {
	for _, se := range all {
		if se.ID == id {
			return true
		}
	}
	return false
}
