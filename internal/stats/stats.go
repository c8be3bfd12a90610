// Package stats holds the aggregate shapes returned by the statistics
// endpoints and the patient age arithmetic.
package stats

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Age bands, inclusive on both ends.
const (
	BandMinor  = "0-18"
	BandYoung  = "19-35"
	BandAdult  = "36-60"
	BandSenior = "61+"
)

// Group is one grouped count. It serializes flat: the grouping values plus "cantidad".
type Group struct {
	Values   map[string]any
	Cantidad int64
}

func (g Group) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(g.Values)+1)
	for k, v := range g.Values {
		out[k] = v
	}
	out["cantidad"] = g.Cantidad
	return json.Marshal(out)
}

// RecordStats aggregates archive records.
type RecordStats struct {
	Total      int64   `json:"total_registros"`
	PorSerie   []Group `json:"por_serie"`
	PorSoporte []Group `json:"por_soporte"`
	PorTipo    []Group `json:"por_tipo"`
}

// FUIDStats aggregates FUIDs.
type FUIDStats struct {
	Total      int64   `json:"total_fuids"`
	PorOficina []Group `json:"por_oficina"`
	PorObjeto  []Group `json:"por_objeto"`
	PorEntidad []Group `json:"por_entidad"`
}

// PatientStats aggregates patient records.
type PatientStats struct {
	Total                 int64          `json:"total_pacientes"`
	PorGenero             []Group        `json:"por_genero"`
	PorTipoIdentificacion []Group        `json:"por_tipo_identificacion"`
	Activos               int64          `json:"activos"`
	PromedioEdad          *float64       `json:"promedio_edad"`
	GruposEdad            map[string]int `json:"grupos_edad"`
}

// Age is the number of whole years between birth and today: the year
// difference, minus one if today's (month, day) precedes the birthday's.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// Band returns the age band of age. Negative ages (birth dates in the future)
// fall in the youngest band.
func Band(age int) string {
	switch {
	case age <= 18:
		return BandMinor
	case age <= 35:
		return BandYoung
	case age <= 60:
		return BandAdult
	default:
		return BandSenior
	}
}

// AgeSummary is the mean age and the band histogram of a set of birth dates.
type AgeSummary struct {
	Mean  *float64
	Bands map[string]int
}

// SummarizeAges computes ages relative to today. Mean is rounded to two
// decimals and nil when births is empty. Every band is present in Bands.
func SummarizeAges(births []time.Time, today time.Time) AgeSummary {
	s := AgeSummary{Bands: map[string]int{BandMinor: 0, BandYoung: 0, BandAdult: 0, BandSenior: 0}}
	if len(births) == 0 {
		return s
	}
	sum := decimal.Zero
	for _, b := range births {
		age := Age(b, today)
		sum = sum.Add(decimal.NewFromInt(int64(age)))
		s.Bands[Band(age)]++
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(births)))).Round(2).InexactFloat64()
	s.Mean = &mean
	return s
}
