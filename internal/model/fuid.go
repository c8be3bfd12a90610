package model

import "time"

// SignOff is one role of the physical sign-off sheet of a FUID.
type SignOff struct {
	Nombre string `json:"nombre"`
	Cargo  string `json:"cargo"`
	Lugar  string `json:"lugar"`
	Fecha  *Date  `json:"fecha"`
}

// FUID is a documentary inventory header (Formato Único de Inventario Documental).
type FUID struct {
	ID                   int64           `json:"id"`
	EntidadProductora    string          `json:"entidad_productora"`
	UnidadAdministrativa string          `json:"unidad_administrativa"`
	OficinaProductora    string          `json:"oficina_productora"`
	Objeto               string          `json:"objeto"`
	ElaboradoPor         SignOff         `json:"elaborado_por"`
	EntregadoPor         SignOff         `json:"entregado_por"`
	RecibidoPor          SignOff         `json:"recibido_por"`
	CreadoPorID          *int64          `json:"creado_por_id"`
	CreadoPor            string          `json:"creado_por"`
	FechaCreacion        time.Time       `json:"fecha_creacion"`
	RegistroIDs          []int64         `json:"registro_ids,omitempty"`
	Registros            []ArchiveRecord `json:"registros,omitempty"`
}

// OwnedBy reports whether userID created the FUID.
func (f *FUID) OwnedBy(userID int64) bool {
	return f.CreadoPorID != nil && *f.CreadoPorID == userID
}
