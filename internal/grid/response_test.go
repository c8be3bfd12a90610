package grid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    int
	Owner string
}

func TestColumnSet_Project(t *testing.T) {
	cs := ColumnSet[item]{
		{Key: "id", Value: func(i *item) any { return i.ID }},
		{Key: "creado_por", Value: func(i *item) any { return OrNA(i.Owner) }},
	}
	rows := cs.Project([]item{{ID: 2, Owner: "ana"}, {ID: 1}})

	require.Len(t, rows, 2)
	assert.Equal(t, Row{"id": 2, "creado_por": "ana"}, rows[0])
	assert.Equal(t, Row{"id": 1, "creado_por": NotAvailable}, rows[1])
}

func TestNewResponse_EmptyData(t *testing.T) {
	b, err := json.Marshal(NewResponse(4, 10, 0, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"draw":4,"recordsTotal":10,"recordsFiltered":0,"data":[]}`, string(b))
}
