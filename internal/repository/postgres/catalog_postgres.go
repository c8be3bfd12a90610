package postgres

import (
	"context"
	"database/sql"

	"archivo/internal/model"
	"archivo/internal/repository"
)

// CatalogPostgres reads series, subseries and users.
type CatalogPostgres struct {
	db *sql.DB
}

// NewCatalogPostgres creates a new CatalogPostgres repository.
func NewCatalogPostgres(db *sql.DB) *CatalogPostgres {
	return &CatalogPostgres{db: db}
}

var _ repository.CatalogRepository = (*CatalogPostgres)(nil)

// ListSeries returns every series ordered by code.
func (r *CatalogPostgres) ListSeries(ctx context.Context) ([]model.Series, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, codigo, nombre FROM series ORDER BY codigo`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Series, 0)
	for rows.Next() {
		var s model.Series
		if err := rows.Scan(&s.ID, &s.Code, &s.Name); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// ListSubseries returns the subseries of one series ordered by name.
func (r *CatalogPostgres) ListSubseries(ctx context.Context, seriesID int64) ([]model.Subseries, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, serie_id, codigo, nombre FROM subseries WHERE serie_id = $1 ORDER BY nombre`, seriesID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Subseries, 0)
	for rows.Next() {
		var s model.Subseries
		if err := rows.Scan(&s.ID, &s.SeriesID, &s.Code, &s.Name); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// FindSubseries fetches a subseries by id.
func (r *CatalogPostgres) FindSubseries(ctx context.Context, id int64) (*model.Subseries, error) {
	var s model.Subseries
	err := r.db.QueryRowContext(ctx,
		`SELECT id, serie_id, codigo, nombre FROM subseries WHERE id = $1`, id).
		Scan(&s.ID, &s.SeriesID, &s.Code, &s.Name)
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

// SeriesExists reports whether a series with id exists.
func (r *CatalogPostgres) SeriesExists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM series WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

// ListUsernames returns every username in alphabetical order.
func (r *CatalogPostgres) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
