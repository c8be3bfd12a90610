// Package export renders a FUID and its records as an xlsx inventory sheet.
package export

import (
	"bytes"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"archivo/internal/grid"
	"archivo/internal/model"
)

// ContentType of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// NoRecords marks a FUID without records in the record table.
const NoRecords = "Sin registros asociados"

const (
	maxValueLen  = 30
	titleRows    = 6
	titleCols    = 22
	headerRow    = 7
	recordHeader = 15
	headerSpan   = 4
)

var recordHeaders = []string{
	"N° Orden", "Código", "Código Serie", "Código Subserie", "Unidad Documental",
	"Fecha Inicial", "Fecha Final", "Soporte Físico", "Soporte Electrónico",
	"Caja", "Carpeta", "Tomo/Legajo/Libro", "N° Folios", "Tipo", "Cantidad",
	"Ubicación", "Cantidad Electrónicos", "Tamaño Electrónico", "Notas", "Creado Por", "Fecha Creación",
}

// FileName is the attachment name of a FUID export.
func FileName(id int64) string {
	return fmt.Sprintf("FUID_%d.xlsx", id)
}

// Exporter builds FUID workbooks. Timestamps are rendered in loc.
type Exporter struct {
	loc *time.Location
}

// NewExporter creates an exporter; a nil loc means UTC.
func NewExporter(loc *time.Location) *Exporter {
	if loc == nil {
		loc = time.UTC
	}
	return &Exporter{loc: loc}
}

// Write renders f into w.
func (e *Exporter) Write(w io.Writer, f *model.FUID) error {
	wb, err := e.Workbook(f)
	if err != nil {
		return err
	}
	defer wb.Close()
	return wb.Write(w)
}

// Bytes renders f into memory.
func (e *Exporter) Bytes(f *model.FUID) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Workbook builds the inventory sheet: a merged title block, the FUID header
// fields, the record table (or the NoRecords marker) and the sign-off block.
func (e *Exporter) Workbook(f *model.FUID) (*excelize.File, error) {
	wb := excelize.NewFile()
	sheet := fmt.Sprintf("FUID #%d", f.ID)
	if err := wb.SetSheetName("Sheet1", sheet); err != nil {
		wb.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	s := &sheetWriter{f: wb, sheet: sheet, widths: map[int]int{}}

	s.merge(1, 1, titleCols, titleRows)

	s.set(1, headerRow, "Campo")
	s.set(2, headerRow, "Valor")
	s.set(17, headerRow, "AÑO")
	s.set(18, headerRow, "MES")
	s.set(19, headerRow, "DÍA")
	s.set(20, headerRow, "N.T.")

	created := f.FechaCreacion.In(e.loc)
	meta := []struct {
		label, value string
	}{
		{"Entidad Productora", f.EntidadProductora},
		{"Unidad Administrativa", f.UnidadAdministrativa},
		{"Oficina Productora", f.OficinaProductora},
		{"Objeto", f.Objeto},
	}
	row := headerRow + 1
	for i, m := range meta {
		s.set(1, row, m.label)
		s.set(2, row, grid.OrNA(m.value))
		if i == 0 {
			s.set(17, row, created.Year())
			s.set(18, row, int(created.Month()))
			s.set(19, row, created.Day())
		}
		row++
	}

	for i, h := range recordHeaders {
		col := i + 1
		s.merge(col, recordHeader, col, recordHeader+headerSpan-1)
		s.set(col, recordHeader, h)
	}
	s.styleHeader(len(recordHeaders))

	row = recordHeader + headerSpan
	if len(f.Registros) == 0 {
		s.set(1, row, NoRecords)
		row++
	}
	for i := range f.Registros {
		for col, v := range e.recordRow(&f.Registros[i]) {
			s.set(col+1, row, v)
		}
		row++
	}

	row++
	for _, line := range signOffRows(f) {
		for col, v := range line {
			s.set(col+1, row, v)
		}
		row++
	}

	s.fitColumns()
	if s.err != nil {
		wb.Close()
		return nil, fmt.Errorf("render FUID %d: %w", f.ID, s.err)
	}
	return wb, nil
}

func (e *Exporter) recordRow(r *model.ArchiveRecord) []any {
	return []any{
		r.NumeroOrden,
		truncate(r.Codigo),
		truncate(r.SerieNombre),
		truncate(r.SubserieNombre),
		truncate(r.UnidadDocumental),
		dateOrNA(r.FechaInicial),
		dateOrNA(r.FechaFinal),
		yesNo(r.SoporteFisico),
		yesNo(r.SoporteElectronico),
		truncate(r.Caja),
		truncate(r.Carpeta),
		truncate(r.TomoLegajoLibro),
		intOrNA(r.NumeroFolios),
		truncate(r.Tipo),
		intOrNA(r.Cantidad),
		truncate(r.Ubicacion),
		intOrNA(r.CantidadElectronico),
		truncate(r.TamanoElectronico),
		truncate(r.Notas),
		grid.OrNA(r.CreadoPor),
		r.FechaCreacion.In(e.loc).Format("2006-01-02 15:04"),
	}
}

func signOffRows(f *model.FUID) [][]any {
	roles := []struct {
		label string
		s     model.SignOff
	}{
		{"Elaborado Por", f.ElaboradoPor},
		{"Entregado Por", f.EntregadoPor},
		{"Recibido Por", f.RecibidoPor},
	}
	rows := make([][]any, 6)
	for _, r := range roles {
		rows[0] = append(rows[0], r.label+" (Nombre)", truncate(r.s.Nombre))
		rows[1] = append(rows[1], r.label+" (Cargo)", truncate(r.s.Cargo))
		rows[2] = append(rows[2], r.label+" (Lugar)", truncate(r.s.Lugar))
		rows[3] = append(rows[3], "Firma", "")
		rows[4] = append(rows[4], "Lugar", "")
		rows[5] = append(rows[5], r.label+" (Fecha)", dateOrNA(r.s.Fecha))
	}
	return rows
}

// truncate shortens values over maxValueLen characters to maxValueLen,
// ending in "...". Empty values render as N/A.
func truncate(v string) string {
	if v == "" {
		return grid.NotAvailable
	}
	if utf8.RuneCountInString(v) <= maxValueLen {
		return v
	}
	runes := []rune(v)
	return string(runes[:maxValueLen-3]) + "..."
}

func dateOrNA(d *model.Date) string {
	if d == nil || d.IsZero() {
		return grid.NotAvailable
	}
	return d.String()
}

func intOrNA(v *int) any {
	if v == nil || *v == 0 {
		return grid.NotAvailable
	}
	return *v
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// sheetWriter keeps the first error so cell writes can be chained.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	widths map[int]int
	err    error
}

func (s *sheetWriter) set(col, row int, v any) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetCellValue(s.sheet, cell, v)
	if n := utf8.RuneCountInString(fmt.Sprint(v)); n > s.widths[col] {
		s.widths[col] = n
	}
}

func (s *sheetWriter) merge(col1, row1, col2, row2 int) {
	if s.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(col1, row1)
	if err != nil {
		s.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(col2, row2)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.MergeCell(s.sheet, from, to)
}

func (s *sheetWriter) styleHeader(cols int) {
	if s.err != nil {
		return
	}
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	style, err := s.f.NewStyle(&excelize.Style{
		Border:    border,
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"EEECE1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		s.err = err
		return
	}
	from, _ := excelize.CoordinatesToCellName(1, recordHeader)
	to, _ := excelize.CoordinatesToCellName(cols, recordHeader+headerSpan-1)
	s.err = s.f.SetCellStyle(s.sheet, from, to, style)
}

func (s *sheetWriter) fitColumns() {
	for col, n := range s.widths {
		if s.err != nil {
			return
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			s.err = err
			return
		}
		s.err = s.f.SetColWidth(s.sheet, name, name, float64(n+2))
	}
}
