package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	params := map[string]string{
		"draw":                      "3",
		"start":                     "20",
		"length":                    "10",
		"columns[0][data]":          "codigo",
		"columns[0][search][value]": "  AB-1 ",
		"columns[1][data]":          "soporte_fisico",
		"columns[1][search][value]": "",
		"columns[3][data]":          "skipped",
		"columns[3][search][value]": "x",
		"order[0][column]":          "1",
		"order[0][dir]":             "DESC",
	}

	q, err := ParseRequest(params, Options{DefaultLength: 10, MaxLength: 100})
	require.NoError(t, err)

	assert.Equal(t, 3, q.Draw)
	assert.Equal(t, Page{Number: 3, Size: 10, Offset: 20}, q.Page)
	require.Len(t, q.Terms, 2)
	assert.Equal(t, Term{Field: "codigo", Value: "AB-1"}, q.Terms[0])
	assert.Equal(t, Term{Field: "soporte_fisico", Value: ""}, q.Terms[1])
	require.Len(t, q.Order, 1)
	assert.Equal(t, Order{Column: 1, Field: "soporte_fisico", Desc: true}, q.Order[0])
}

func TestParseRequest_Defaults(t *testing.T) {
	q, err := ParseRequest(map[string]string{}, Options{DefaultLength: 250})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Draw)
	assert.Equal(t, Page{Number: 1, Size: 250, Offset: 0}, q.Page)
	assert.Empty(t, q.Terms)
	assert.Empty(t, q.Order)
}

func TestParseRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
	}{
		{"zero length", map[string]string{"length": "0"}},
		{"negative length", map[string]string{"length": "-5"}},
		{"non numeric start", map[string]string{"start": "abc"}},
		{"non numeric draw", map[string]string{"draw": "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest(tt.params, Options{DefaultLength: 10})
			assert.True(t, errors.Is(err, ErrInvalidRequest))
		})
	}
}

func TestQuery_WithDateRange(t *testing.T) {
	var q Query
	q.WithDateRange("fecha_nacimiento", "2000-01-01", "")
	q.WithDateRange("fecha_nacimiento", "not-a-date", "also-bad")
	q.WithTerm("nombre", "   ")
	q.WithTerm("nombre", "ana")

	require.Len(t, q.Ranges, 1)
	assert.NotNil(t, q.Ranges[0].From)
	assert.Nil(t, q.Ranges[0].To)
	assert.Equal(t, []Term{{Field: "nombre", Value: "ana"}}, q.Terms)
}
