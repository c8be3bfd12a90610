package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivo/internal/model"
	"archivo/internal/repository"
)

func TestCatalogPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCatalogPostgres(db)
	ctx := context.Background()

	t.Run("series", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, codigo, nombre FROM series").
			WillReturnRows(sqlmock.NewRows([]string{"id", "codigo", "nombre"}).
				AddRow(int64(1), "100", "Actas").
				AddRow(int64(2), "200", "Historias clínicas"))

		got, err := repo.ListSeries(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Series{{ID: 1, Code: "100", Name: "Actas"}, {ID: 2, Code: "200", Name: "Historias clínicas"}}, got)
	})

	t.Run("subseries of a series", func(t *testing.T) {
		mock.ExpectQuery("FROM subseries WHERE serie_id = \\$1").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "serie_id", "codigo", "nombre"}).
				AddRow(int64(5), int64(2), "201", "Pacientes activos"))

		got, err := repo.ListSubseries(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []model.Subseries{{ID: 5, SeriesID: 2, Code: "201", Name: "Pacientes activos"}}, got)
	})

	t.Run("missing subseries", func(t *testing.T) {
		mock.ExpectQuery("FROM subseries WHERE id = \\$1").
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "serie_id", "codigo", "nombre"}))

		_, err := repo.FindSubseries(ctx, 9)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("usernames", func(t *testing.T) {
		mock.ExpectQuery("SELECT username FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("ana").AddRow("luis"))

		got, err := repo.ListUsernames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"ana", "luis"}, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGrantPostgres_HasGrant(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM object_permissions").
		WithArgs(int64(7), model.ObjectRegistro, int64(42), model.PermEditOwnRegistro).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewGrantPostgres(db).HasGrant(context.Background(), 7, model.ObjectRegistro, 42, model.PermEditOwnRegistro)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
