package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"archivo/internal/authz"
	"archivo/internal/authz/mocks"
	"archivo/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestAuthorizeRecord(t *testing.T) {
	ctx := context.Background()
	owner := authz.Principal{ID: 7, Username: "ana"}
	other := authz.Principal{ID: 8, Username: "luis"}
	admin := authz.Principal{ID: 1, Superuser: true}
	rec := &model.ArchiveRecord{ID: 42, CreadoPorID: ptr(int64(7))}

	t.Run("superuser bypasses grants", func(t *testing.T) {
		grants := new(mocks.MockGrantChecker)
		policy := authz.NewPolicy(grants)
		assert.NoError(t, policy.AuthorizeRecord(ctx, admin, authz.ActionDelete, rec))
		grants.AssertNotCalled(t, "HasGrant", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("view is open", func(t *testing.T) {
		policy := authz.NewPolicy(new(mocks.MockGrantChecker))
		assert.NoError(t, policy.AuthorizeRecord(ctx, other, authz.ActionView, rec))
	})

	t.Run("owner with grant may edit", func(t *testing.T) {
		grants := new(mocks.MockGrantChecker)
		grants.On("HasGrant", ctx, int64(7), model.ObjectRegistro, int64(42), model.PermEditOwnRegistro).Return(true, nil)
		policy := authz.NewPolicy(grants)

		assert.NoError(t, policy.AuthorizeRecord(ctx, owner, authz.ActionEdit, rec))
		grants.AssertExpectations(t)
	})

	t.Run("owner without grant is denied", func(t *testing.T) {
		grants := new(mocks.MockGrantChecker)
		grants.On("HasGrant", ctx, int64(7), model.ObjectRegistro, int64(42), model.PermDeleteOwnRegistro).Return(false, nil)
		policy := authz.NewPolicy(grants)

		err := policy.AuthorizeRecord(ctx, owner, authz.ActionDelete, rec)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("stale grant without ownership is denied", func(t *testing.T) {
		grants := new(mocks.MockGrantChecker)
		grants.On("HasGrant", mock.Anything, int64(8), mock.Anything, int64(42), mock.Anything).Return(true, nil)
		policy := authz.NewPolicy(grants)

		err := policy.AuthorizeRecord(ctx, other, authz.ActionEdit, rec)
		var fe *authz.ForbiddenError
		assert.True(t, errors.As(err, &fe))
		assert.Contains(t, fe.Reason, "creador")
	})

	t.Run("grant lookup failure is not a denial", func(t *testing.T) {
		grants := new(mocks.MockGrantChecker)
		grants.On("HasGrant", ctx, int64(7), model.ObjectRegistro, int64(42), model.PermEditOwnRegistro).Return(false, errors.New("db down"))
		policy := authz.NewPolicy(grants)

		err := policy.AuthorizeRecord(ctx, owner, authz.ActionEdit, rec)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, authz.ErrForbidden)
	})
}

func TestAuthorizeFUID(t *testing.T) {
	ctx := context.Background()
	f := &model.FUID{ID: 3, OficinaProductora: "Archivo Central", CreadoPorID: ptr(int64(7))}

	t.Run("other oficina cannot view", func(t *testing.T) {
		policy := authz.NewPolicy(new(mocks.MockGrantChecker))
		err := policy.AuthorizeFUID(ctx, authz.Principal{ID: 9, Oficina: "Facturación"}, authz.ActionView, f)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("same oficina can view", func(t *testing.T) {
		policy := authz.NewPolicy(new(mocks.MockGrantChecker))
		assert.NoError(t, policy.AuthorizeFUID(ctx, authz.Principal{ID: 9, Oficina: "Archivo Central"}, authz.ActionView, f))
	})

	t.Run("same oficina non-owner cannot edit", func(t *testing.T) {
		policy := authz.NewPolicy(new(mocks.MockGrantChecker))
		err := policy.AuthorizeFUID(ctx, authz.Principal{ID: 9, Oficina: "Archivo Central"}, authz.ActionEdit, f)
		assert.ErrorIs(t, err, authz.ErrForbidden)
	})

	t.Run("owner with grant can edit", func(t *testing.T) {
		grants := new(mocks.MockGrantChecker)
		grants.On("HasGrant", ctx, int64(7), model.ObjectFUID, int64(3), model.PermEditOwnFUID).Return(true, nil)
		policy := authz.NewPolicy(grants)
		assert.NoError(t, policy.AuthorizeFUID(ctx, authz.Principal{ID: 7, Oficina: "Archivo Central"}, authz.ActionEdit, f))
	})
}

func TestAuthorizePatient(t *testing.T) {
	policy := authz.NewPolicy(new(mocks.MockGrantChecker))
	clerk := authz.Principal{ID: 2, Permissions: []string{model.PermAddPatient}}

	assert.NoError(t, policy.AuthorizePatient(clerk, authz.ActionCreate))
	assert.ErrorIs(t, policy.AuthorizePatient(clerk, authz.ActionEdit), authz.ErrForbidden)
	assert.NoError(t, policy.AuthorizePatient(authz.Principal{Superuser: true}, authz.ActionEdit))
	assert.NoError(t, policy.AuthorizePatient(authz.Principal{}, authz.ActionView))
}

func TestAuthorize_Dispatch(t *testing.T) {
	policy := authz.NewPolicy(new(mocks.MockGrantChecker))
	var patient *model.PatientRecord

	assert.ErrorIs(t, policy.Authorize(context.Background(), authz.Principal{}, authz.ActionCreate, patient), authz.ErrForbidden)
	assert.Error(t, policy.Authorize(context.Background(), authz.Principal{}, authz.ActionView, "nope"))
}

func TestScopeFUIDs(t *testing.T) {
	assert.Equal(t, authz.FUIDScope{}, authz.ScopeFUIDs(authz.Principal{Superuser: true, Oficina: "x"}))
	assert.Equal(t, authz.FUIDScope{Restricted: true, Oficina: "x"}, authz.ScopeFUIDs(authz.Principal{Oficina: "x"}))
}
