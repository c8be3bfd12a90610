// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and contain no business logic.
package repository

import (
	"context"
	"errors"
	"time"

	"archivo/internal/authz"
	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/stats"
)

var (
	// ErrNotFound is returned when a row looked up by key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write would break a uniqueness rule,
	// such as a record already belonging to another FUID.
	ErrConflict = errors.New("conflict")
	// ErrInvalidReference is returned when a foreign key does not resolve,
	// including a subseries that does not belong to the record's series.
	ErrInvalidReference = errors.New("invalid reference")
)

// PageResult is a generic grid page. Total counts the unfiltered (scoped)
// collection and Filtered the rows left after the grid predicate.
type PageResult[T any] struct {
	Items    []T
	Total    int
	Filtered int
}

// RecordRepository persists archive records.
type RecordRepository interface {
	// Create inserts rec, issues the creator's grants and, when fuidID is set,
	// attaches the record to that FUID, all in one transaction.
	Create(ctx context.Context, rec *model.ArchiveRecord, fuidID *int64) (*model.ArchiveRecord, error)
	FindByID(ctx context.Context, id int64) (*model.ArchiveRecord, error)
	Update(ctx context.Context, rec *model.ArchiveRecord) (*model.ArchiveRecord, error)
	// Delete removes the record and its grants. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q grid.Query) (*PageResult[model.ArchiveRecord], error)
	// ListUnassigned returns records that belong to no FUID.
	ListUnassigned(ctx context.Context, f CandidateFilter) ([]model.ArchiveRecord, error)
}

// CandidateFilter narrows FUID candidate records. Zero values do not filter.
type CandidateFilter struct {
	CreatorID int64
	Creator   string
	From      *time.Time
	To        *time.Time
}

// FUIDRepository persists FUIDs and their record sets.
type FUIDRepository interface {
	// Create inserts f, issues the creator's grants and attaches f.RegistroIDs
	// in one transaction.
	Create(ctx context.Context, f *model.FUID) (*model.FUID, error)
	// FindByID returns the FUID with its records loaded.
	FindByID(ctx context.Context, id int64) (*model.FUID, error)
	// Update saves the header fields and replaces the record set with f.RegistroIDs.
	Update(ctx context.Context, f *model.FUID) (*model.FUID, error)
	AttachRecord(ctx context.Context, fuidID, recordID int64) error
	List(ctx context.Context, scope authz.FUIDScope, q grid.Query) (*PageResult[model.FUID], error)
}

// PatientRepository persists patient record sheets.
type PatientRepository interface {
	Create(ctx context.Context, p *model.PatientRecord) (*model.PatientRecord, error)
	FindByConsecutivo(ctx context.Context, consecutivo int64) (*model.PatientRecord, error)
	Update(ctx context.Context, p *model.PatientRecord) (*model.PatientRecord, error)
	List(ctx context.Context, q grid.Query) (*PageResult[model.PatientRecord], error)
}

// CatalogRepository reads series, subseries and users.
type CatalogRepository interface {
	ListSeries(ctx context.Context) ([]model.Series, error)
	ListSubseries(ctx context.Context, seriesID int64) ([]model.Subseries, error)
	FindSubseries(ctx context.Context, id int64) (*model.Subseries, error)
	SeriesExists(ctx context.Context, id int64) (bool, error)
	ListUsernames(ctx context.Context) ([]string, error)
}

// GrantRepository reads per-object grants.
type GrantRepository interface {
	authz.GrantChecker
}

// StatsRepository runs the grouped counts behind the statistics endpoints.
type StatsRepository interface {
	RecordStats(ctx context.Context, from, to *time.Time) (*stats.RecordStats, error)
	FUIDStats(ctx context.Context, username string) (*stats.FUIDStats, error)
	// PatientStats fills every field except the age summary.
	PatientStats(ctx context.Context, username string) (*stats.PatientStats, error)
	PatientBirthDates(ctx context.Context, username string) ([]time.Time, error)
}
