package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"archivo/internal/model"
)

const (
	msgRequired      = "Este campo es obligatorio."
	msgInvalidChoice = "Seleccione una opción válida. La opción seleccionada no está disponible."
	msgSubseries     = "La subserie seleccionada no pertenece a la serie indicada."
	msgOficina       = "Solo puede registrar FUID de su propia oficina productora."
)

// validate is shared by all services; *validator.Validate is safe for
// concurrent use once configured.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags and converts failures into a ValidationError.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, e := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fieldPath(e), Message: message(e)})
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return msgRequired
	case "max":
		if e.Kind() == reflect.String {
			return "Asegúrese de que este campo no tenga más de " + e.Param() + " caracteres."
		}
		return "Asegúrese de que este valor sea menor o igual a " + e.Param() + "."
	case "gte", "min":
		return "Asegúrese de que este valor sea mayor o igual a " + e.Param() + "."
	case "gt":
		return "Asegúrese de que este valor sea mayor que " + e.Param() + "."
	case "oneof":
		return "Seleccione una opción válida: " + e.Param() + "."
	default:
		return "Valor inválido."
	}
}

// RecordInput is the editable content of an archive record.
type RecordInput struct {
	NumeroOrden         int         `json:"numero_orden" validate:"gte=0"`
	Codigo              string      `json:"codigo" validate:"required,max=100"`
	SerieID             int64       `json:"codigo_serie_id" validate:"required,gt=0"`
	SubserieID          *int64      `json:"codigo_subserie_id" validate:"omitempty,gt=0"`
	UnidadDocumental    string      `json:"unidad_documental" validate:"max=255"`
	FechaArchivo        *model.Date `json:"fecha_archivo"`
	FechaInicial        *model.Date `json:"fecha_inicial"`
	FechaFinal          *model.Date `json:"fecha_final"`
	SoporteFisico       bool        `json:"soporte_fisico"`
	SoporteElectronico  bool        `json:"soporte_electronico"`
	Caja                string      `json:"caja" validate:"max=50"`
	Carpeta             string      `json:"carpeta" validate:"max=50"`
	TomoLegajoLibro     string      `json:"tomo_legajo_libro" validate:"max=50"`
	NumeroFolios        *int        `json:"numero_folios" validate:"omitempty,gte=0"`
	Tipo                string      `json:"tipo" validate:"max=100"`
	Cantidad            *int        `json:"cantidad" validate:"omitempty,gte=0"`
	Ubicacion           string      `json:"ubicacion" validate:"max=255"`
	CantidadElectronico *int        `json:"cantidad_documentos_electronicos" validate:"omitempty,gte=0"`
	TamanoElectronico   string      `json:"tamano_documentos_electronicos" validate:"max=50"`
	Notas               string      `json:"notas"`
}

// apply copies the input onto rec, leaving identity and ownership untouched.
func (in *RecordInput) apply(rec *model.ArchiveRecord) {
	rec.NumeroOrden = in.NumeroOrden
	rec.Codigo = strings.TrimSpace(in.Codigo)
	rec.SerieID = in.SerieID
	rec.SubserieID = in.SubserieID
	rec.UnidadDocumental = in.UnidadDocumental
	rec.FechaArchivo = in.FechaArchivo
	rec.FechaInicial = in.FechaInicial
	rec.FechaFinal = in.FechaFinal
	rec.SoporteFisico = in.SoporteFisico
	rec.SoporteElectronico = in.SoporteElectronico
	rec.Caja = in.Caja
	rec.Carpeta = in.Carpeta
	rec.TomoLegajoLibro = in.TomoLegajoLibro
	rec.NumeroFolios = in.NumeroFolios
	rec.Tipo = in.Tipo
	rec.Cantidad = in.Cantidad
	rec.Ubicacion = in.Ubicacion
	rec.CantidadElectronico = in.CantidadElectronico
	rec.TamanoElectronico = in.TamanoElectronico
	rec.Notas = in.Notas
}

// SignOffInput is one sign-off role of a FUID.
type SignOffInput struct {
	Nombre string      `json:"nombre" validate:"max=255"`
	Cargo  string      `json:"cargo" validate:"max=255"`
	Lugar  string      `json:"lugar" validate:"max=255"`
	Fecha  *model.Date `json:"fecha"`
}

func (in SignOffInput) toModel() model.SignOff {
	return model.SignOff{Nombre: in.Nombre, Cargo: in.Cargo, Lugar: in.Lugar, Fecha: in.Fecha}
}

// FUIDInput is the editable content of a FUID including its full record set.
type FUIDInput struct {
	EntidadProductora    string       `json:"entidad_productora" validate:"required,max=255"`
	UnidadAdministrativa string       `json:"unidad_administrativa" validate:"required,max=255"`
	OficinaProductora    string       `json:"oficina_productora" validate:"max=255"`
	Objeto               string       `json:"objeto" validate:"required,max=255"`
	ElaboradoPor         SignOffInput `json:"elaborado_por"`
	EntregadoPor         SignOffInput `json:"entregado_por"`
	RecibidoPor          SignOffInput `json:"recibido_por"`
	RegistroIDs          []int64      `json:"registro_ids" validate:"dive,gt=0"`
}

func (in *FUIDInput) apply(f *model.FUID) {
	f.EntidadProductora = in.EntidadProductora
	f.UnidadAdministrativa = in.UnidadAdministrativa
	f.OficinaProductora = in.OficinaProductora
	f.Objeto = in.Objeto
	f.ElaboradoPor = in.ElaboradoPor.toModel()
	f.EntregadoPor = in.EntregadoPor.toModel()
	f.RecibidoPor = in.RecibidoPor.toModel()
	f.RegistroIDs = dedupe(in.RegistroIDs)
}

// PatientInput is the editable content of a patient record sheet.
type PatientInput struct {
	TipoIdentificacion    string      `json:"tipo_identificacion" validate:"required,max=10"`
	NumIdentificacion     string      `json:"num_identificacion" validate:"required,max=20"`
	PrimerNombre          string      `json:"primer_nombre" validate:"required,max=100"`
	SegundoNombre         string      `json:"segundo_nombre" validate:"max=100"`
	PrimerApellido        string      `json:"primer_apellido" validate:"required,max=100"`
	SegundoApellido       string      `json:"segundo_apellido" validate:"max=100"`
	Sexo                  string      `json:"sexo" validate:"omitempty,oneof=M F O"`
	FechaNacimiento       *model.Date `json:"fecha_nacimiento"`
	NumeroHistoriaClinica string      `json:"numero_historia_clinica" validate:"max=50"`
	Activo                *bool       `json:"activo"`
}

func (in *PatientInput) apply(p *model.PatientRecord) {
	p.TipoIdentificacion = in.TipoIdentificacion
	p.NumIdentificacion = strings.TrimSpace(in.NumIdentificacion)
	p.PrimerNombre = strings.TrimSpace(in.PrimerNombre)
	p.SegundoNombre = strings.TrimSpace(in.SegundoNombre)
	p.PrimerApellido = strings.TrimSpace(in.PrimerApellido)
	p.SegundoApellido = strings.TrimSpace(in.SegundoApellido)
	p.Sexo = in.Sexo
	p.FechaNacimiento = in.FechaNacimiento
	p.NumeroHistoriaClinica = in.NumeroHistoriaClinica
	p.Activo = in.Activo == nil || *in.Activo
}

// dedupe keeps the first occurrence of each id.
func dedupe(ids []int64) []int64 {
	if ids == nil {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
