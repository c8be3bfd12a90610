package postgres

import "archivo/internal/grid"

// recordTable whitelists the archive record grid columns. Keys are the data
// keys sent by the grid.
var recordTable = grid.NewTable("r.fecha_creacion DESC", "r.id DESC",
	grid.Column{Key: "id", Kind: grid.Cast, Exprs: []string{"r.id"}, Sort: "r.id"},
	grid.Column{Key: "numero_orden", Kind: grid.Cast, Exprs: []string{"r.numero_orden"}, Sort: "r.numero_orden"},
	grid.Column{Key: "codigo", Kind: grid.Text, Exprs: []string{"r.codigo"}, Sort: "r.codigo"},
	grid.Column{Key: "codigo_serie", Kind: grid.Text, Exprs: []string{"s.nombre"}, Sort: "s.nombre"},
	grid.Column{Key: "codigo_subserie", Kind: grid.Text, Exprs: []string{"ss.nombre"}, Sort: "ss.nombre"},
	grid.Column{Key: "unidad_documental", Kind: grid.Text, Exprs: []string{"r.unidad_documental"}, Sort: "r.unidad_documental"},
	grid.Column{Key: "fecha_archivo", Kind: grid.Cast, Exprs: []string{"r.fecha_archivo"}, Sort: "r.fecha_archivo"},
	grid.Column{Key: "fecha_inicial", Kind: grid.Cast, Exprs: []string{"r.fecha_inicial"}, Sort: "r.fecha_inicial"},
	grid.Column{Key: "fecha_final", Kind: grid.Cast, Exprs: []string{"r.fecha_final"}, Sort: "r.fecha_final"},
	grid.Column{Key: "soporte_fisico", Kind: grid.Flag, Exprs: []string{"r.soporte_fisico"}, Sort: "r.soporte_fisico"},
	grid.Column{Key: "soporte_electronico", Kind: grid.Flag, Exprs: []string{"r.soporte_electronico"}, Sort: "r.soporte_electronico"},
	grid.Column{Key: "caja", Kind: grid.Text, Exprs: []string{"r.caja"}, Sort: "r.caja"},
	grid.Column{Key: "carpeta", Kind: grid.Text, Exprs: []string{"r.carpeta"}, Sort: "r.carpeta"},
	grid.Column{Key: "tomo_legajo_libro", Kind: grid.Text, Exprs: []string{"r.tomo_legajo_libro"}, Sort: "r.tomo_legajo_libro"},
	grid.Column{Key: "numero_folios", Kind: grid.Cast, Exprs: []string{"r.numero_folios"}, Sort: "r.numero_folios"},
	grid.Column{Key: "tipo", Kind: grid.Text, Exprs: []string{"r.tipo"}, Sort: "r.tipo"},
	grid.Column{Key: "cantidad", Kind: grid.Cast, Exprs: []string{"r.cantidad"}, Sort: "r.cantidad"},
	grid.Column{Key: "ubicacion", Kind: grid.Text, Exprs: []string{"r.ubicacion"}, Sort: "r.ubicacion"},
	grid.Column{Key: "cantidad_documentos_electronicos", Kind: grid.Cast, Exprs: []string{"r.cantidad_documentos_electronicos"}, Sort: "r.cantidad_documentos_electronicos"},
	grid.Column{Key: "tamano_documentos_electronicos", Kind: grid.Text, Exprs: []string{"r.tamano_documentos_electronicos"}, Sort: "r.tamano_documentos_electronicos"},
	grid.Column{Key: "notas", Kind: grid.Text, Exprs: []string{"r.notas"}},
	grid.Column{Key: "creado_por", Kind: grid.Text, Exprs: []string{"u.username"}, Sort: "u.username"},
	grid.Column{Key: "fecha_creacion", Kind: grid.Cast, Exprs: []string{"r.fecha_creacion"}, Sort: "r.fecha_creacion"},
)

var fuidTable = grid.NewTable("f.fecha_creacion DESC", "f.id DESC",
	grid.Column{Key: "id", Kind: grid.Cast, Exprs: []string{"f.id"}, Sort: "f.id"},
	grid.Column{Key: "entidad_productora", Kind: grid.Text, Exprs: []string{"f.entidad_productora"}, Sort: "f.entidad_productora"},
	grid.Column{Key: "unidad_administrativa", Kind: grid.Text, Exprs: []string{"f.unidad_administrativa"}, Sort: "f.unidad_administrativa"},
	grid.Column{Key: "oficina_productora", Kind: grid.Text, Exprs: []string{"f.oficina_productora"}, Sort: "f.oficina_productora"},
	grid.Column{Key: "objeto", Kind: grid.Text, Exprs: []string{"f.objeto"}, Sort: "f.objeto"},
	grid.Column{Key: "creado_por", Kind: grid.Text, Exprs: []string{"u.username"}, Sort: "u.username"},
	grid.Column{Key: "fecha_creacion", Kind: grid.Cast, Exprs: []string{"f.fecha_creacion"}, Sort: "f.fecha_creacion"},
)

// patientTable sorts by fixed column position and filters by the named
// parameters of the patient listing.
var patientTable = func() *grid.Table {
	t := grid.NewTable("p.consecutivo ASC", "p.consecutivo ASC",
		grid.Column{Key: "consecutivo", Sort: "p.consecutivo"},
		grid.Column{Key: "nombre", Kind: grid.Text, Exprs: []string{"p.primer_nombre", "p.primer_apellido"}, Sort: "p.primer_nombre"},
		grid.Column{Key: "similar", Kind: grid.Text, Exprs: []string{"p.primer_nombre", "p.segundo_nombre", "p.primer_apellido", "p.segundo_apellido"}},
		grid.Column{Key: "tipo_identificacion", Sort: "p.tipo_identificacion"},
		grid.Column{Key: "identificacion", Kind: grid.Text, Exprs: []string{"p.num_identificacion"}, Sort: "p.num_identificacion"},
		grid.Column{Key: "sexo", Sort: "p.sexo"},
		grid.Column{Key: "estado", Sort: "p.activo"},
		grid.Column{Key: "fecha_nacimiento", Kind: grid.Range, Exprs: []string{"p.fecha_nacimiento"}, Sort: "p.fecha_nacimiento"},
		grid.Column{Key: "historia", Kind: grid.Text, Exprs: []string{"p.numero_historia_clinica"}, Sort: "p.numero_historia_clinica"},
	)
	t.Positional = []string{"consecutivo", "nombre", "tipo_identificacion", "identificacion", "sexo", "estado", "fecha_nacimiento", "historia"}
	return t
}()
