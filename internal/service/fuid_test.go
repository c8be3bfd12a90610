package service

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"archivo/internal/authz"
	authzMocks "archivo/internal/authz/mocks"
	"archivo/internal/config"
	"archivo/internal/export"
	"archivo/internal/model"
	"archivo/internal/repository"
	repoMocks "archivo/internal/repository/mocks"
	"archivo/internal/storage"
	storeMocks "archivo/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fuidFixture struct {
	fuids   *repoMocks.MockFUIDRepository
	records *repoMocks.MockRecordRepository
	catalog *repoMocks.MockCatalogRepository
	grants  *authzMocks.MockGrantChecker
	store   *storeMocks.MockObjectStore
	svc     *fuidService
}

func newFUIDFixture(withStore bool) *fuidFixture {
	f := &fuidFixture{
		fuids:   new(repoMocks.MockFUIDRepository),
		records: new(repoMocks.MockRecordRepository),
		catalog: new(repoMocks.MockCatalogRepository),
		grants:  new(authzMocks.MockGrantChecker),
		store:   new(storeMocks.MockObjectStore),
	}
	policy := authz.NewPolicy(f.grants)
	deps := FUIDDeps{
		FUIDs:    f.fuids,
		Records:  f.records,
		Creator:  NewRecordService(f.records, NewCatalogService(f.catalog, config.CacheConfig{Size: 4, TTLSec: 60}), policy),
		Policy:   policy,
		Exporter: export.NewExporter(time.UTC),
		LinkTTL:  10 * time.Minute,
	}
	if withStore {
		deps.Store = f.store
	}
	f.svc = NewFUIDService(deps).(*fuidService)
	f.svc.now = func() time.Time { return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fuidFixture) assertExpectations(t *testing.T) {
	f.fuids.AssertExpectations(t)
	f.records.AssertExpectations(t)
	f.catalog.AssertExpectations(t)
	f.grants.AssertExpectations(t)
	f.store.AssertExpectations(t)
}

func storedFUID() *model.FUID {
	return &model.FUID{ID: 4, OficinaProductora: "Archivo Central", Objeto: "Transferencia", CreadoPorID: int64p(7)}
}

func validFUIDInput() FUIDInput {
	return FUIDInput{
		EntidadProductora:    "Hospital",
		UnidadAdministrativa: "Gerencia",
		Objeto:               "Transferencia primaria",
		RegistroIDs:          []int64{10, 11, 10},
	}
}

func TestFUIDService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the caller's oficina and dedupes records", func(t *testing.T) {
		f := newFUIDFixture(false)
		f.fuids.On("Create", ctx, mock.MatchedBy(func(m *model.FUID) bool {
			return m.OficinaProductora == "Archivo Central" && m.OwnedBy(7) &&
				assert.ObjectsAreEqual([]int64{10, 11}, m.RegistroIDs)
		})).Return(storedFUID(), nil)

		got, err := f.svc.Create(ctx, owner, validFUIDInput())
		require.NoError(t, err)
		assert.Equal(t, int64(4), got.ID)
		f.assertExpectations(t)
	})

	t.Run("other oficina is rejected", func(t *testing.T) {
		f := newFUIDFixture(false)
		in := validFUIDInput()
		in.OficinaProductora = "Contabilidad"

		_, err := f.svc.Create(ctx, owner, in)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "oficina_productora", verr.Fields[0].Field)
		f.assertExpectations(t)
	})

	t.Run("record already inventoried", func(t *testing.T) {
		f := newFUIDFixture(false)
		f.fuids.On("Create", ctx, mock.Anything).Return(nil, repository.ErrConflict)

		_, err := f.svc.Create(ctx, owner, validFUIDInput())
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("invalid record id", func(t *testing.T) {
		f := newFUIDFixture(false)
		in := validFUIDInput()
		in.RegistroIDs = []int64{0}

		_, err := f.svc.Create(ctx, owner, in)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "registro_ids[0]", verr.Fields[0].Field)
	})
}

func TestFUIDService_Get_OtherOficina(t *testing.T) {
	ctx := context.Background()
	f := newFUIDFixture(false)
	other := authz.Principal{ID: 9, Oficina: "Contabilidad"}
	f.fuids.On("FindByID", ctx, int64(4)).Return(storedFUID(), nil)

	got, err := f.svc.Get(ctx, other, 4)
	assert.ErrorIs(t, err, authz.ErrForbidden)
	assert.Nil(t, got)
}

func TestFUIDService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("owner replaces the record set", func(t *testing.T) {
		f := newFUIDFixture(false)
		f.fuids.On("FindByID", ctx, int64(4)).Return(storedFUID(), nil)
		f.grants.On("HasGrant", ctx, int64(7), model.ObjectFUID, int64(4), model.PermEditOwnFUID).Return(true, nil)
		f.fuids.On("Update", ctx, mock.MatchedBy(func(m *model.FUID) bool {
			return m.ID == 4 && len(m.RegistroIDs) == 0 && m.RegistroIDs != nil
		})).Return(storedFUID(), nil)

		in := validFUIDInput()
		in.RegistroIDs = nil
		_, err := f.svc.Update(ctx, owner, 4, in)
		assert.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("colleague in the same oficina cannot edit", func(t *testing.T) {
		f := newFUIDFixture(false)
		f.fuids.On("FindByID", ctx, int64(4)).Return(storedFUID(), nil)

		_, err := f.svc.Update(ctx, stranger, 4, validFUIDInput())
		assert.ErrorIs(t, err, authz.ErrForbidden)
		f.assertExpectations(t)
	})
}

func TestFUIDService_List_Scoped(t *testing.T) {
	ctx := context.Background()
	f := newFUIDFixture(false)
	f.fuids.On("List", ctx, authz.FUIDScope{Restricted: true, Oficina: "Archivo Central"}, mock.Anything).
		Return(&repository.PageResult[model.FUID]{Items: []model.FUID{*storedFUID()}, Total: 1, Filtered: 1}, nil)

	res, err := f.svc.List(ctx, owner, gridQuery())
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	f.assertExpectations(t)
}

func TestFUIDService_Candidates(t *testing.T) {
	ctx := context.Background()
	day := func(d int) *time.Time {
		t := time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tests := []struct {
		name  string
		query CandidateQuery
		want  repository.CandidateFilter
	}{
		{"numeric user is an id", CandidateQuery{Usuario: "7"}, repository.CandidateFilter{CreatorID: 7}},
		{"username", CandidateQuery{Usuario: " ana "}, repository.CandidateFilter{Creator: "ana"}},
		{"date range", CandidateQuery{FechaInicio: "2024-03-01", FechaFin: "2024-03-31"}, repository.CandidateFilter{From: day(1), To: day(31)}},
		{"malformed dates ignored", CandidateQuery{FechaInicio: "01/03/2024", FechaFin: "x"}, repository.CandidateFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFUIDFixture(false)
			f.records.On("ListUnassigned", ctx, tt.want).Return([]model.ArchiveRecord{}, nil)

			got, err := f.svc.Candidates(ctx, tt.query)
			require.NoError(t, err)
			assert.Empty(t, got)
			f.assertExpectations(t)
		})
	}
}

func TestFUIDService_AttachRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("record owned by another FUID", func(t *testing.T) {
		f := newFUIDFixture(false)
		f.fuids.On("FindByID", ctx, int64(4)).Return(storedFUID(), nil)
		f.grants.On("HasGrant", ctx, int64(7), model.ObjectFUID, int64(4), model.PermEditOwnFUID).Return(true, nil)
		f.records.On("FindByID", ctx, int64(10)).Return(&model.ArchiveRecord{ID: 10}, nil)
		f.fuids.On("AttachRecord", ctx, int64(4), int64(10)).Return(repository.ErrConflict)

		assert.ErrorIs(t, f.svc.AttachRecord(ctx, owner, 4, 10), ErrConflict)
		f.assertExpectations(t)
	})

	t.Run("missing record", func(t *testing.T) {
		f := newFUIDFixture(false)
		f.fuids.On("FindByID", ctx, int64(4)).Return(storedFUID(), nil)
		f.records.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrNotFound)

		assert.ErrorIs(t, f.svc.AttachRecord(ctx, superuser, 4, 99), ErrNotFound)
		f.assertExpectations(t)
	})
}

func TestFUIDService_CreateRecord(t *testing.T) {
	ctx := context.Background()
	f := newFUIDFixture(false)
	f.fuids.On("FindByID", ctx, int64(4)).Return(storedFUID(), nil)
	f.catalog.On("ListSeries", ctx).Return([]model.Series{{ID: 2}}, nil)
	f.catalog.On("ListSubseries", ctx, int64(2)).Return([]model.Subseries{{ID: 5, SeriesID: 2}}, nil)
	f.records.On("Create", ctx, mock.Anything, int64p(4)).Return(&model.ArchiveRecord{ID: 12}, nil)

	rec, err := f.svc.CreateRecord(ctx, superuser, 4, validRecordInput())
	require.NoError(t, err)
	assert.Equal(t, int64(12), rec.ID)
	f.assertExpectations(t)
}

func TestFUIDService_Export(t *testing.T) {
	ctx := context.Background()
	f := newFUIDFixture(false)
	f.fuids.On("FindByID", ctx, int64(4)).Return(storedFUID(), nil)

	file, err := f.svc.Export(ctx, owner, 4)
	require.NoError(t, err)
	assert.Equal(t, "FUID_4.xlsx", file.Name)
	assert.Equal(t, export.ContentType, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("PK")))
}

func TestFUIDService_Archive(t *testing.T) {
	ctx := context.Background()

	t.Run("storage disabled", func(t *testing.T) {
		f := newFUIDFixture(false)
		_, err := f.svc.Archive(ctx, owner, 4)
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})

	t.Run("uploads and presigns", func(t *testing.T) {
		f := newFUIDFixture(true)
		f.fuids.On("FindByID", ctx, int64(4)).Return(storedFUID(), nil)
		key := "exports/20240305T120000Z/FUID_4.xlsx"
		f.store.On("Put", ctx, key, mock.Anything, mock.MatchedBy(func(o storage.PutOptions) bool {
			return o.Size > 0 && o.ContentType == export.ContentType && o.Metadata["fuid-id"] == "4"
		})).Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutOptions) storage.ObjectInfo {
			n, _ := io.Copy(io.Discard, r)
			return storage.ObjectInfo{Key: key, Size: n}
		}, nil)
		f.store.On("PresignGet", ctx, key, 10*time.Minute).Return("https://minio.local/"+key, nil)

		got, err := f.svc.Archive(ctx, owner, 4)
		require.NoError(t, err)
		assert.Equal(t, key, got.Key)
		assert.True(t, strings.HasSuffix(got.URL, "FUID_4.xlsx"))
		assert.Equal(t, time.Date(2024, time.March, 5, 12, 10, 0, 0, time.UTC), got.ExpiresAt)
		f.assertExpectations(t)
	})
}
