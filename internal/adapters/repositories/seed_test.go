package repositories

import (
	"context"
	"delivery-route-optimizer/internal/intake"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeedFromJSONIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := writeSeed(t, `[
		{"id": "C001", "name": "Cliente A", "lat": 45.4641, "lon": 9.1919, "weight_kg": 150},
		{"id": "C002", "name": "Cliente B", "lat": 45.5845, "lon": 9.2744, "weight_kg": 200}
	]`)

	repo := NewMemoryPointRepository()

	added, err := SeedFromJSON(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = SeedFromJSON(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	points, err := repo.ListPoints(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"C001", "C002"}, ids(points))
	assert.Equal(t, 45.4641, points[0].Lat)
}

func TestLoadPointsJSONRejectsInvalidWeight(t *testing.T) {
	path := writeSeed(t, `[{"id": "X", "lat": 45, "lon": 9, "weight_kg": 0}]`)

	_, err := LoadPointsJSON(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, intake.ErrInvalidPoint))
}

func TestLoadPointsJSONMalformed(t *testing.T) {
	path := writeSeed(t, `{"id": "X"}`)

	_, err := LoadPointsJSON(path)
	assert.Error(t, err)
}

func TestLoadPointsJSONRejectsMissingCoordinate(t *testing.T) {
	cases := map[string]string{
		"lat":       `[{"id":"a","name":"A","lon":9.19,"weight_kg":10}]`,
		"lon":       `[{"id":"a","name":"A","lat":45.46,"weight_kg":10}]`,
		"weight_kg": `[{"id":"a","name":"A","lat":45.46,"lon":9.19}]`,
	}

	for field, content := range cases {
		t.Run(field, func(t *testing.T) {
			_, err := LoadPointsJSON(writeSeed(t, content))
			require.Error(t, err)

			var fe *intake.FieldError
			require.True(t, errors.As(err, &fe), "err = %v", err)
			assert.Equal(t, field, fe.Field)
			assert.Contains(t, err.Error(), "entry #1")
		})
	}
}

func TestLoadPointsJSONKeepsExplicitZero(t *testing.T) {
	points, err := LoadPointsJSON(writeSeed(t, `[{"id":"eq","lat":0,"lon":0,"weight_kg":1}]`))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 0.0, points[0].Lat)
}
