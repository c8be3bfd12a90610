package postgres

import (
	"context"
	"database/sql"

	"archivo/internal/repository"
)

// GrantPostgres reads per-object grants from object_permissions.
type GrantPostgres struct {
	db *sql.DB
}

// NewGrantPostgres creates a new GrantPostgres repository.
func NewGrantPostgres(db *sql.DB) *GrantPostgres {
	return &GrantPostgres{db: db}
}

var _ repository.GrantRepository = (*GrantPostgres)(nil)

// HasGrant reports whether userID holds codename on the object.
func (r *GrantPostgres) HasGrant(ctx context.Context, userID int64, objectType string, objectID int64, codename string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM object_permissions
			WHERE user_id = $1 AND object_type = $2 AND object_id = $3 AND codename = $4
		)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, userID, objectType, objectID, codename).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
