package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"archivo/internal/repository"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(sql.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t,
		mapError(&pgconn.PgError{Code: "23503", ConstraintName: "registros_codigo_subserie_id_codigo_serie_id_fkey"}),
		repository.ErrInvalidReference)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505"}), repository.ErrConflict)

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
}
