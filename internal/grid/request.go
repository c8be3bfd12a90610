// Package grid implements the server side of a DataTables-style data grid:
// request parsing, the column filter table, the pager and the response envelope.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidRequest is returned for grid parameters that cannot be served.
var ErrInvalidRequest = errors.New("invalid request")

// Term is the search term typed into one grid column.
type Term struct {
	Field string
	Value string
}

// Order is one sort instruction. Column is the grid column index; Field is the
// column's data key when the request carries one.
type Order struct {
	Column int
	Field  string
	Desc   bool
}

// DateRange bounds a date column inclusively. A nil bound is open.
type DateRange struct {
	Field string
	From  *time.Time
	To    *time.Time
}

// Query is a parsed grid request.
type Query struct {
	Draw   int
	Page   Page
	Terms  []Term
	Ranges []DateRange
	Order  []Order
}

// Options controls request parsing.
type Options struct {
	DefaultLength int
	MaxLength     int
}

// ParseRequest reads draw, start, length, columns[i][data], columns[i][search][value]
// and order[i][column]/order[i][dir] from flat query parameters. Column scanning stops
// at the first missing columns[i][data].
func ParseRequest(params map[string]string, opts Options) (Query, error) {
	draw, err := intParam(params, "draw", 1)
	if err != nil {
		return Query{}, err
	}
	start, err := intParam(params, "start", 0)
	if err != nil {
		return Query{}, err
	}
	defLength := opts.DefaultLength
	if defLength <= 0 {
		defLength = 10
	}
	length, err := intParam(params, "length", defLength)
	if err != nil {
		return Query{}, err
	}
	page, err := NewPage(start, length, opts.MaxLength)
	if err != nil {
		return Query{}, err
	}

	q := Query{Draw: draw, Page: page}

	var keys []string
	for i := 0; ; i++ {
		data, ok := params[fmt.Sprintf("columns[%d][data]", i)]
		if !ok {
			break
		}
		keys = append(keys, data)
		q.Terms = append(q.Terms, Term{
			Field: data,
			Value: strings.TrimSpace(params[fmt.Sprintf("columns[%d][search][value]", i)]),
		})
	}

	for i := 0; ; i++ {
		raw, ok := params[fmt.Sprintf("order[%d][column]", i)]
		if !ok {
			break
		}
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 {
			continue
		}
		o := Order{
			Column: idx,
			Desc:   strings.EqualFold(params[fmt.Sprintf("order[%d][dir]", i)], "desc"),
		}
		if idx < len(keys) {
			o.Field = keys[idx]
		}
		q.Order = append(q.Order, o)
	}

	return q, nil
}

// WithTerm appends a named filter term; empty values are kept out.
func (q *Query) WithTerm(field, value string) {
	if value = strings.TrimSpace(value); value != "" {
		q.Terms = append(q.Terms, Term{Field: field, Value: value})
	}
}

// WithDateRange appends an inclusive range over field. Unparseable bounds are
// dropped and a range with no usable bound is ignored.
func (q *Query) WithDateRange(field, from, to string) {
	r := DateRange{Field: field, From: parseDay(from), To: parseDay(to)}
	if r.From == nil && r.To == nil {
		return
	}
	q.Ranges = append(q.Ranges, r)
}

func parseDay(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func intParam(params map[string]string, key string, def int) (int, error) {
	raw, ok := params[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidRequest, key)
	}
	return v, nil
}
