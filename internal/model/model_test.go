package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back.Time))

	assert.Error(t, json.Unmarshal([]byte(`"05/03/2024"`), &back))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1990, time.July, 1, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, "1990-07-01", d.String())

	require.NoError(t, d.Scan([]byte("2001-12-31")))
	assert.Equal(t, "2001-12-31", d.String())

	assert.Error(t, d.Scan(42))
}

func TestPatientRecord_FullName(t *testing.T) {
	p := PatientRecord{PrimerNombre: "Ana", PrimerApellido: "Pérez", SegundoApellido: "Gómez"}
	assert.Equal(t, "Ana Pérez Gómez", p.FullName())
}

func TestOwnedBy(t *testing.T) {
	owner := int64(7)
	r := ArchiveRecord{CreadoPorID: &owner}
	assert.True(t, r.OwnedBy(7))
	assert.False(t, r.OwnedBy(8))
	assert.False(t, (&ArchiveRecord{}).OwnedBy(7))

	f := FUID{CreadoPorID: &owner}
	assert.True(t, f.OwnedBy(7))
}
