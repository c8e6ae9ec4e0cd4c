package events

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/campusevents/internal/models"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	require.Len(t, seed, 3)

	assert.Equal(t, "Annual Tech Symposium", seed[0].Title)
	assert.Equal(t, models.EventTypeSeminar, seed[0].Type)
	assert.Equal(t, "Spring Cultural Festival", seed[1].Title)
	assert.Equal(t, models.EventTypeCultural, seed[1].Type)
	assert.Equal(t, "Basketball Tournament", seed[2].Title)
	assert.Equal(t, models.EventTypeSports, seed[2].Type)

	for _, e := range seed {
		assert.Equal(t, "123", e.CreatedBy)
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Date)
		assert.NotEmpty(t, e.ImageURL)
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	fixture := `
- id: "10"
  title: Chess Night
  description: Casual blitz games.
  date: "2025-09-01"
  time: "18:00"
  location: Student Center
  organizer: Chess Club
  type: other
  created_by: "123"
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, seed, 1)
	assert.Equal(t, "Chess Night", seed[0].Title)
	assert.Equal(t, models.EventTypeOther, seed[0].Type)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSeedFile_InvalidType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	fixture := `
- id: "10"
  title: Chess Night
  type: boardgame
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	_, err := LoadSeedFile(path)
	require.ErrorContains(t, err, "unknown event type")
}

func TestLoadSeedFile_MissingID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: No ID\n  type: other\n"), 0o600))

	_, err := LoadSeedFile(path)
	require.ErrorContains(t, err, "missing id")
}
