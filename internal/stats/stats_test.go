package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	today := day(2024, time.June, 15)

	assert.Equal(t, 18, Age(day(2006, time.June, 15), today), "birthday today")
	assert.Equal(t, 17, Age(day(2006, time.June, 16), today), "birthday tomorrow")
	assert.Equal(t, 17, Age(day(2006, time.July, 1), today))
	assert.Equal(t, 18, Age(day(2006, time.January, 31), today))
	assert.Equal(t, 0, Age(today, today))
}

func TestBand(t *testing.T) {
	tests := map[int]string{
		0: BandMinor, 17: BandMinor, 18: BandMinor,
		19: BandYoung, 35: BandYoung,
		36: BandAdult, 60: BandAdult,
		61: BandSenior, 99: BandSenior,
	}
	for age, want := range tests {
		assert.Equal(t, want, Band(age), "age %d", age)
	}
}

func TestSummarizeAges(t *testing.T) {
	today := day(2024, time.June, 15)

	t.Run("empty", func(t *testing.T) {
		s := SummarizeAges(nil, today)
		assert.Nil(t, s.Mean)
		assert.Equal(t, map[string]int{BandMinor: 0, BandYoung: 0, BandAdult: 0, BandSenior: 0}, s.Bands)
	})

	t.Run("mean rounded to two decimals", func(t *testing.T) {
		births := []time.Time{
			day(2006, time.June, 15),   // 18
			day(1963, time.June, 15),   // 61
			day(2000, time.January, 1), // 24
		}
		s := SummarizeAges(births, today)
		require.NotNil(t, s.Mean)
		assert.Equal(t, 34.33, *s.Mean)
		assert.Equal(t, 1, s.Bands[BandMinor])
		assert.Equal(t, 1, s.Bands[BandYoung])
		assert.Equal(t, 0, s.Bands[BandAdult])
		assert.Equal(t, 1, s.Bands[BandSenior])
	})
}

func TestGroup_MarshalJSON(t *testing.T) {
	groups := []Group{
		{Values: map[string]any{"sexo": "M"}, Cantidad: 2},
		{Values: map[string]any{"sexo": "F"}, Cantidad: 1},
	}
	b, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"sexo":"M","cantidad":2},{"sexo":"F","cantidad":1}]`, string(b))
}

func TestPatientStats_NullMean(t *testing.T) {
	b, err := json.Marshal(PatientStats{GruposEdad: SummarizeAges(nil, time.Now()).Bands})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	v, ok := out["promedio_edad"]
	assert.True(t, ok)
	assert.Nil(t, v)
}
