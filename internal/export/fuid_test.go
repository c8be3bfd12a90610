package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"archivo/internal/model"
)

func open(t *testing.T, f *model.FUID) (*excelize.File, string) {
	t.Helper()
	b, err := NewExporter(time.UTC).Bytes(f)
	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	return wb, wb.GetSheetName(0)
}

func cell(t *testing.T, wb *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := wb.GetCellValue(sheet, axis)
	require.NoError(t, err)
	return v
}

func TestWorkbook_NoRecords(t *testing.T) {
	f := &model.FUID{
		ID:                7,
		EntidadProductora: "Hospital San Rafael",
		Objeto:            "Transferencia primaria",
		FechaCreacion:     time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC),
		ElaboradoPor:      model.SignOff{Nombre: "Ana Pérez", Fecha: ptr(model.NewDate(2024, time.March, 5))},
	}
	wb, sheet := open(t, f)

	assert.Equal(t, "FUID #7", sheet)
	assert.Equal(t, "Campo", cell(t, wb, sheet, "A7"))
	assert.Equal(t, "AÑO", cell(t, wb, sheet, "Q7"))
	assert.Equal(t, "Hospital San Rafael", cell(t, wb, sheet, "B8"))
	assert.Equal(t, "2024", cell(t, wb, sheet, "Q8"))
	assert.Equal(t, "3", cell(t, wb, sheet, "R8"))
	assert.Equal(t, "5", cell(t, wb, sheet, "S8"))
	assert.Equal(t, "N/A", cell(t, wb, sheet, "B9"))
	assert.Equal(t, "N° Orden", cell(t, wb, sheet, "A15"))
	assert.Equal(t, "Fecha Creación", cell(t, wb, sheet, "U15"))

	assert.Equal(t, NoRecords, cell(t, wb, sheet, "A19"))
	assert.Equal(t, "Elaborado Por (Nombre)", cell(t, wb, sheet, "A21"))
	assert.Equal(t, "Ana Pérez", cell(t, wb, sheet, "B21"))
	assert.Equal(t, "N/A", cell(t, wb, sheet, "D21"))
	assert.Equal(t, "Firma", cell(t, wb, sheet, "E24"))
	assert.Equal(t, "2024-03-05", cell(t, wb, sheet, "B26"))

	merges, err := wb.GetMergeCells(sheet)
	require.NoError(t, err)
	axes := make(map[string]string, len(merges))
	for _, m := range merges {
		axes[m.GetStartAxis()] = m.GetEndAxis()
	}
	assert.Equal(t, "V6", axes["A1"])
	assert.Equal(t, "A18", axes["A15"])
	assert.Equal(t, "U18", axes["U15"])
}

func TestWorkbook_Records(t *testing.T) {
	folios := 12
	long := strings.Repeat("x", 40)
	f := &model.FUID{
		ID: 8,
		Registros: []model.ArchiveRecord{
			{
				NumeroOrden:   1,
				Codigo:        "HC-001",
				SerieNombre:   "Historias clínicas",
				SoporteFisico: true,
				NumeroFolios:  &folios,
				Notas:         long,
				CreadoPor:     "ana",
				FechaInicial:  ptr(model.NewDate(2020, time.January, 2)),
				FechaCreacion: time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC),
			},
			{NumeroOrden: 2, Codigo: "HC-002"},
		},
	}
	wb, sheet := open(t, f)

	assert.Equal(t, "1", cell(t, wb, sheet, "A19"))
	assert.Equal(t, "HC-001", cell(t, wb, sheet, "B19"))
	assert.Equal(t, "Historias clínicas", cell(t, wb, sheet, "C19"))
	assert.Equal(t, "N/A", cell(t, wb, sheet, "D19"))
	assert.Equal(t, "2020-01-02", cell(t, wb, sheet, "F19"))
	assert.Equal(t, "Sí", cell(t, wb, sheet, "H19"))
	assert.Equal(t, "No", cell(t, wb, sheet, "I19"))
	assert.Equal(t, "12", cell(t, wb, sheet, "M19"))
	assert.Equal(t, strings.Repeat("x", 27)+"...", cell(t, wb, sheet, "S19"))
	assert.Equal(t, "ana", cell(t, wb, sheet, "T19"))
	assert.Equal(t, "2024-03-05 10:30", cell(t, wb, sheet, "U19"))
	assert.Equal(t, "HC-002", cell(t, wb, sheet, "B20"))
	assert.Equal(t, "N/A", cell(t, wb, sheet, "T20"))

	assert.Equal(t, "Elaborado Por (Nombre)", cell(t, wb, sheet, "A22"))
	assert.Equal(t, "Recibido Por (Fecha)", cell(t, wb, sheet, "E27"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "N/A", truncate(""))
	assert.Equal(t, strings.Repeat("ñ", 30), truncate(strings.Repeat("ñ", 30)))
	assert.Equal(t, strings.Repeat("ñ", 27)+"...", truncate(strings.Repeat("ñ", 31)))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "FUID_12.xlsx", FileName(12))
}

func ptr[T any](v T) *T { return &v }
