package model

import "strings"

// PatientRecord is a patient record sheet ("ficha de paciente"), keyed by its consecutivo.
type PatientRecord struct {
	Consecutivo           int64  `json:"consecutivo"`
	TipoIdentificacion    string `json:"tipo_identificacion"`
	NumIdentificacion     string `json:"num_identificacion"`
	PrimerNombre          string `json:"primer_nombre"`
	SegundoNombre         string `json:"segundo_nombre"`
	PrimerApellido        string `json:"primer_apellido"`
	SegundoApellido       string `json:"segundo_apellido"`
	Sexo                  string `json:"sexo"`
	FechaNacimiento       *Date  `json:"fecha_nacimiento"`
	NumeroHistoriaClinica string `json:"numero_historia_clinica"`
	Activo                bool   `json:"activo"`
	CreadoPorID           *int64 `json:"creado_por_id"`
	CreadoPor             string `json:"creado_por"`
}

// FullName joins the non-empty name parts with single spaces.
func (p *PatientRecord) FullName() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.PrimerNombre, p.SegundoNombre, p.PrimerApellido, p.SegundoApellido} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
