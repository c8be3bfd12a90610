package handler

import (
	"time"

	"archivo/internal/grid"
	"archivo/internal/model"
)

const timestampLayout = "2006-01-02 15:04"

func dateText(d *model.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func intOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}

var recordFields = map[string]func(*model.ArchiveRecord) any{
	"id":                               func(r *model.ArchiveRecord) any { return r.ID },
	"numero_orden":                     func(r *model.ArchiveRecord) any { return r.NumeroOrden },
	"codigo":                           func(r *model.ArchiveRecord) any { return r.Codigo },
	"codigo_serie":                     func(r *model.ArchiveRecord) any { return grid.OrNA(r.SerieNombre) },
	"codigo_subserie":                  func(r *model.ArchiveRecord) any { return grid.OrNA(r.SubserieNombre) },
	"unidad_documental":                func(r *model.ArchiveRecord) any { return r.UnidadDocumental },
	"fecha_archivo":                    func(r *model.ArchiveRecord) any { return dateText(r.FechaArchivo) },
	"fecha_inicial":                    func(r *model.ArchiveRecord) any { return dateText(r.FechaInicial) },
	"fecha_final":                      func(r *model.ArchiveRecord) any { return dateText(r.FechaFinal) },
	"soporte_fisico":                   func(r *model.ArchiveRecord) any { return grid.FlagMark(r.SoporteFisico) },
	"soporte_electronico":              func(r *model.ArchiveRecord) any { return grid.FlagMark(r.SoporteElectronico) },
	"caja":                             func(r *model.ArchiveRecord) any { return r.Caja },
	"carpeta":                          func(r *model.ArchiveRecord) any { return r.Carpeta },
	"tomo_legajo_libro":                func(r *model.ArchiveRecord) any { return r.TomoLegajoLibro },
	"numero_folios":                    func(r *model.ArchiveRecord) any { return intOrNil(r.NumeroFolios) },
	"tipo":                             func(r *model.ArchiveRecord) any { return r.Tipo },
	"cantidad":                         func(r *model.ArchiveRecord) any { return intOrNil(r.Cantidad) },
	"ubicacion":                        func(r *model.ArchiveRecord) any { return r.Ubicacion },
	"cantidad_documentos_electronicos": func(r *model.ArchiveRecord) any { return intOrNil(r.CantidadElectronico) },
	"tamano_documentos_electronicos":   func(r *model.ArchiveRecord) any { return r.TamanoElectronico },
	"notas":                            func(r *model.ArchiveRecord) any { return r.Notas },
	"creado_por":                       func(r *model.ArchiveRecord) any { return grid.OrNA(r.CreadoPor) },
	"fecha_creacion":                   func(r *model.ArchiveRecord) any { return timestamp(r.FechaCreacion) },
}

func recordColumns(keys ...string) grid.ColumnSet[model.ArchiveRecord] {
	cs := make(grid.ColumnSet[model.ArchiveRecord], 0, len(keys))
	for _, k := range keys {
		cs = append(cs, grid.Field[model.ArchiveRecord]{Key: k, Value: recordFields[k]})
	}
	return cs
}

var recordDetailKeys = []string{
	"numero_orden", "codigo", "codigo_serie", "codigo_subserie", "unidad_documental",
	"fecha_archivo", "fecha_inicial", "fecha_final", "soporte_fisico", "soporte_electronico",
	"caja", "carpeta", "tomo_legajo_libro", "numero_folios", "tipo", "cantidad", "ubicacion",
	"cantidad_documentos_electronicos", "tamano_documentos_electronicos", "notas",
	"creado_por", "fecha_creacion",
}

// Record column sets: the grid view, every field, and every field plus id.
var (
	recordsBasic = recordColumns(
		"id", "numero_orden", "codigo", "codigo_serie", "codigo_subserie", "unidad_documental",
		"fecha_archivo", "soporte_fisico", "soporte_electronico", "caja", "carpeta", "ubicacion",
		"creado_por",
	)
	recordsComplete = recordColumns(recordDetailKeys...)
	recordsWithID   = recordColumns(append([]string{"id"}, recordDetailKeys...)...)
)

var fuidColumns = grid.ColumnSet[model.FUID]{
	{Key: "id", Value: func(f *model.FUID) any { return f.ID }},
	{Key: "entidad_productora", Value: func(f *model.FUID) any { return f.EntidadProductora }},
	{Key: "unidad_administrativa", Value: func(f *model.FUID) any { return f.UnidadAdministrativa }},
	{Key: "oficina_productora", Value: func(f *model.FUID) any { return f.OficinaProductora }},
	{Key: "objeto", Value: func(f *model.FUID) any { return f.Objeto }},
	{Key: "creado_por", Value: func(f *model.FUID) any { return grid.OrNA(f.CreadoPor) }},
	{Key: "fecha_creacion", Value: func(f *model.FUID) any { return timestamp(f.FechaCreacion) }},
}

// patientColumns follow the positional order used for sorting.
var patientColumns = grid.ColumnSet[model.PatientRecord]{
	{Key: "consecutivo", Value: func(p *model.PatientRecord) any { return p.Consecutivo }},
	{Key: "nombre", Value: func(p *model.PatientRecord) any { return p.FullName() }},
	{Key: "tipo_identificacion", Value: func(p *model.PatientRecord) any { return p.TipoIdentificacion }},
	{Key: "identificacion", Value: func(p *model.PatientRecord) any { return p.NumIdentificacion }},
	{Key: "sexo", Value: func(p *model.PatientRecord) any { return p.Sexo }},
	{Key: "estado", Value: func(p *model.PatientRecord) any {
		if p.Activo {
			return "Activo"
		}
		return "Inactivo"
	}},
	{Key: "fecha_nacimiento", Value: func(p *model.PatientRecord) any { return dateText(p.FechaNacimiento) }},
	{Key: "historia", Value: func(p *model.PatientRecord) any { return p.NumeroHistoriaClinica }},
}
