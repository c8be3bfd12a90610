// Package postgres implements the repository interfaces on PostgreSQL through
// database/sql and the pgx driver. Queries are parameterized and contain no
// business rules beyond what the schema enforces.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"archivo/internal/grid"
	"archivo/internal/repository"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgreSQL error codes mapped to repository errors.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// mapError converts driver errors into repository sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", repository.ErrInvalidReference, pgErr.ConstraintName)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", repository.ErrConflict, pgErr.ConstraintName)
		}
	}
	return err
}

// grantAll issues codenames on one object to userID.
func grantAll(ctx context.Context, q querier, userID int64, objectType string, objectID int64, codenames []string) error {
	const stmt = `
		INSERT INTO object_permissions (user_id, object_type, object_id, codename)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`
	for _, c := range codenames {
		if _, err := q.ExecContext(ctx, stmt, userID, objectType, objectID, c); err != nil {
			return fmt.Errorf("grant %s: %w", c, err)
		}
	}
	return nil
}

// countPage runs the unfiltered and filtered counts of a grid listing.
// from is everything after SELECT ... (FROM, JOINs); scope is the base restriction.
func countPage(ctx context.Context, q querier, from, scope, filter string, args []any, scopeArgs int) (total, filtered int, err error) {
	countTotal := "SELECT COUNT(*) " + from + grid.WhereClause(scope)
	if err = q.QueryRowContext(ctx, countTotal, args[:scopeArgs]...).Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("count total: %w", err)
	}
	if filter == "" {
		return total, total, nil
	}
	countFiltered := "SELECT COUNT(*) " + from + grid.WhereClause(scope, filter)
	if err = q.QueryRowContext(ctx, countFiltered, args...).Scan(&filtered); err != nil {
		return 0, 0, fmt.Errorf("count filtered: %w", err)
	}
	return total, filtered, nil
}
