package model

// Object types of per-object grants.
const (
	ObjectRegistro = "registro"
	ObjectFUID     = "fuid"
)

// Per-object grant codenames issued to creators.
const (
	PermViewOwnRegistro   = "documentos.view_own_registro"
	PermEditOwnRegistro   = "documentos.edit_own_registro"
	PermDeleteOwnRegistro = "documentos.delete_own_registro"
	PermViewOwnFUID       = "documentos.view_own_fuid"
	PermEditOwnFUID       = "documentos.edit_own_fuid"
	PermDeleteOwnFUID     = "documentos.delete_own_fuid"
)

// Global capabilities carried by the principal.
const (
	PermAddPatient    = "documentos.add_fichapaciente"
	PermChangePatient = "documentos.change_fichapaciente"
)

// RegistroOwnerGrants are issued to the creator of an ArchiveRecord.
var RegistroOwnerGrants = []string{PermViewOwnRegistro, PermEditOwnRegistro, PermDeleteOwnRegistro}

// FUIDOwnerGrants are issued to the creator of a FUID.
var FUIDOwnerGrants = []string{PermViewOwnFUID, PermEditOwnFUID, PermDeleteOwnFUID}
