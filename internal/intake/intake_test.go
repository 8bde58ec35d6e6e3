package intake

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePointValid(t *testing.T) {
	p, err := ParsePoint(RawPoint{ID: " C001 ", Name: "Cliente A", Lat: "45.4641", Lon: " 9.1919", WeightKg: "150"})
	require.NoError(t, err)

	assert.Equal(t, "C001", p.ID)
	assert.Equal(t, "Cliente A", p.Name)
	assert.Equal(t, 45.4641, p.Lat)
	assert.Equal(t, 9.1919, p.Lon)
	assert.Equal(t, 150.0, p.WeightKg)
}

func TestParsePointDefaults(t *testing.T) {
	p, err := ParsePoint(RawPoint{Lat: "1", Lon: "2", WeightKg: "3"})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, p.ID, p.Name)
}

func TestParsePointRejects(t *testing.T) {
	cases := []struct {
		name  string
		raw   RawPoint
		field string
	}{
		{"non numeric lat", RawPoint{Lat: "north", Lon: "9", WeightKg: "1"}, "lat"},
		{"lat out of range", RawPoint{Lat: "91", Lon: "9", WeightKg: "1"}, "lat"},
		{"non numeric lon", RawPoint{Lat: "45", Lon: "", WeightKg: "1"}, "lon"},
		{"lon out of range", RawPoint{Lat: "45", Lon: "-181", WeightKg: "1"}, "lon"},
		{"non numeric weight", RawPoint{Lat: "45", Lon: "9", WeightKg: "heavy"}, "weight_kg"},
		{"zero weight", RawPoint{Lat: "45", Lon: "9", WeightKg: "0"}, "weight_kg"},
		{"negative weight", RawPoint{Lat: "45", Lon: "9", WeightKg: "-5"}, "weight_kg"},
		{"nan weight", RawPoint{Lat: "45", Lon: "9", WeightKg: "NaN"}, "weight_kg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePoint(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPoint))

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.field, fe.Field)
		})
	}
}

func TestParseCapacity(t *testing.T) {
	assert.Equal(t, 750.0, ParseCapacity("750", 500))
	assert.Equal(t, 500.0, ParseCapacity("lots", 500))
	assert.Equal(t, 500.0, ParseCapacity("", 500))
	assert.Equal(t, 0.0, ParseCapacity("0", 500))
	assert.Equal(t, -10.0, ParseCapacity("-10", 500))
	assert.Equal(t, 500.0, ParseCapacity("+Inf", 500))
}
