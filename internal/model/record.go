package model

import "time"

// ArchiveRecord is a batch of archived documents ("registro de archivo").
// Related entities are carried by id plus the display names loaded with the row.
type ArchiveRecord struct {
	ID                  int64     `json:"id"`
	NumeroOrden         int       `json:"numero_orden"`
	Codigo              string    `json:"codigo"`
	SerieID             int64     `json:"codigo_serie_id"`
	SerieNombre         string    `json:"codigo_serie"`
	SubserieID          *int64    `json:"codigo_subserie_id"`
	SubserieNombre      string    `json:"codigo_subserie"`
	UnidadDocumental    string    `json:"unidad_documental"`
	FechaArchivo        *Date     `json:"fecha_archivo"`
	FechaInicial        *Date     `json:"fecha_inicial"`
	FechaFinal          *Date     `json:"fecha_final"`
	SoporteFisico       bool      `json:"soporte_fisico"`
	SoporteElectronico  bool      `json:"soporte_electronico"`
	Caja                string    `json:"caja"`
	Carpeta             string    `json:"carpeta"`
	TomoLegajoLibro     string    `json:"tomo_legajo_libro"`
	NumeroFolios        *int      `json:"numero_folios"`
	Tipo                string    `json:"tipo"`
	Cantidad            *int      `json:"cantidad"`
	Ubicacion           string    `json:"ubicacion"`
	CantidadElectronico *int      `json:"cantidad_documentos_electronicos"`
	TamanoElectronico   string    `json:"tamano_documentos_electronicos"`
	Notas               string    `json:"notas"`
	CreadoPorID         *int64    `json:"creado_por_id"`
	CreadoPor           string    `json:"creado_por"`
	FechaCreacion       time.Time `json:"fecha_creacion"`
}

// OwnedBy reports whether userID created the record.
func (r *ArchiveRecord) OwnedBy(userID int64) bool {
	return r.CreadoPorID != nil && *r.CreadoPorID == userID
}
