package grid

// NotAvailable replaces unset relations and missing owners in grid rows and exports.
const NotAvailable = "N/A"

// Row is one projected record.
type Row map[string]any

// Response is the envelope expected by the client data grid.
type Response struct {
	Draw            int   `json:"draw"`
	RecordsTotal    int   `json:"recordsTotal"`
	RecordsFiltered int   `json:"recordsFiltered"`
	Data            []Row `json:"data"`
}

// Field projects one value out of T.
type Field[T any] struct {
	Key   string
	Value func(*T) any
}

// ColumnSet describes the columns one listing returns.
type ColumnSet[T any] []Field[T]

// Project maps items to rows in page order.
func (cs ColumnSet[T]) Project(items []T) []Row {
	rows := make([]Row, 0, len(items))
	for i := range items {
		row := make(Row, len(cs))
		for _, f := range cs {
			row[f.Key] = f.Value(&items[i])
		}
		rows = append(rows, row)
	}
	return rows
}

// NewResponse wraps a projected page with the grid counters.
func NewResponse(draw, total, filtered int, data []Row) Response {
	if data == nil {
		data = []Row{}
	}
	return Response{Draw: draw, RecordsTotal: total, RecordsFiltered: filtered, Data: data}
}

// OrNA returns s, or NotAvailable when s is empty.
func OrNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
