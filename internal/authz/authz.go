// Package authz decides whether a principal may act on archive records, FUIDs
// and patient records.
package authz

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"archivo/internal/model"
)

// ErrForbidden matches every *ForbiddenError through errors.Is.
var ErrForbidden = errors.New("forbidden")

// ForbiddenError is a denial with a reason meant for the caller.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return "forbidden: " + e.Reason }

// Is makes errors.Is(err, ErrForbidden) true.
func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

func deny(reason string) error { return &ForbiddenError{Reason: reason} }

// Action is the operation being authorized.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Principal is the authenticated caller.
type Principal struct {
	ID          int64
	Username    string
	Superuser   bool
	Oficina     string
	Permissions []string
}

// Has reports whether the principal holds a global capability. Superusers hold all.
func (p Principal) Has(perm string) bool {
	return p.Superuser || slices.Contains(p.Permissions, perm)
}

// GrantChecker looks up per-object grants.
type GrantChecker interface {
	HasGrant(ctx context.Context, userID int64, objectType string, objectID int64, codename string) (bool, error)
}

// Policy evaluates the authorization rules. It is safe for concurrent use.
type Policy struct {
	grants GrantChecker
}

// NewPolicy creates a policy backed by the given grant store.
func NewPolicy(grants GrantChecker) *Policy {
	return &Policy{grants: grants}
}

// Authorize dispatches on the object type. A nil *model.PatientRecord is
// accepted for ActionCreate.
func (p *Policy) Authorize(ctx context.Context, pr Principal, action Action, object any) error {
	switch obj := object.(type) {
	case *model.ArchiveRecord:
		return p.AuthorizeRecord(ctx, pr, action, obj)
	case *model.FUID:
		return p.AuthorizeFUID(ctx, pr, action, obj)
	case *model.PatientRecord:
		return p.AuthorizePatient(pr, action)
	default:
		return fmt.Errorf("authz: unsupported object %T", object)
	}
}

// AuthorizeRecord: viewing is open; editing and deleting need both authorship
// and the matching stored grant, unless the principal is a superuser.
func (p *Policy) AuthorizeRecord(ctx context.Context, pr Principal, action Action, rec *model.ArchiveRecord) error {
	if pr.Superuser || action == ActionView || action == ActionCreate {
		return nil
	}
	var codename, verb string
	switch action {
	case ActionEdit:
		codename, verb = model.PermEditOwnRegistro, "editar"
	case ActionDelete:
		codename, verb = model.PermDeleteOwnRegistro, "eliminar"
	default:
		return deny("acción no soportada")
	}
	if !rec.OwnedBy(pr.ID) {
		return deny(fmt.Sprintf("solo el creador puede %s este registro", verb))
	}
	return p.requireGrant(ctx, pr, model.ObjectRegistro, rec.ID, codename,
		fmt.Sprintf("no tiene permiso para %s este registro", verb))
}

// AuthorizeFUID: non-superusers only reach FUIDs of their own oficina; edit and
// delete additionally require authorship and the stored grant.
func (p *Policy) AuthorizeFUID(ctx context.Context, pr Principal, action Action, f *model.FUID) error {
	if pr.Superuser || action == ActionCreate {
		return nil
	}
	if f.OficinaProductora != pr.Oficina {
		return deny("el FUID pertenece a otra oficina productora")
	}
	var codename, verb string
	switch action {
	case ActionView:
		return nil
	case ActionEdit:
		codename, verb = model.PermEditOwnFUID, "editar"
	case ActionDelete:
		codename, verb = model.PermDeleteOwnFUID, "eliminar"
	default:
		return deny("acción no soportada")
	}
	if !f.OwnedBy(pr.ID) {
		return deny(fmt.Sprintf("solo el creador puede %s este FUID", verb))
	}
	return p.requireGrant(ctx, pr, model.ObjectFUID, f.ID, codename,
		fmt.Sprintf("no tiene permiso para %s este FUID", verb))
}

// AuthorizePatient checks the global patient capabilities. There is no
// per-instance ownership on patient records.
func (p *Policy) AuthorizePatient(pr Principal, action Action) error {
	switch action {
	case ActionView:
		return nil
	case ActionCreate:
		if pr.Has(model.PermAddPatient) {
			return nil
		}
		return deny("no tiene permiso para crear fichas de paciente")
	case ActionEdit:
		if pr.Has(model.PermChangePatient) {
			return nil
		}
		return deny("no tiene permiso para editar fichas de paciente")
	default:
		return deny("acción no soportada")
	}
}

func (p *Policy) requireGrant(ctx context.Context, pr Principal, objectType string, id int64, codename, reason string) error {
	ok, err := p.grants.HasGrant(ctx, pr.ID, objectType, id, codename)
	if err != nil {
		return fmt.Errorf("check grant %s: %w", codename, err)
	}
	if !ok {
		return deny(reason)
	}
	return nil
}

// FUIDScope restricts FUID listings. Unrestricted scopes see every FUID.
type FUIDScope struct {
	Restricted bool
	Oficina    string
}

// ScopeFUIDs returns the listing scope for pr.
func ScopeFUIDs(pr Principal) FUIDScope {
	if pr.Superuser {
		return FUIDScope{}
	}
	return FUIDScope{Restricted: true, Oficina: pr.Oficina}
}
