package events

import (
	"embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dmitrijs2005/campusevents/internal/models"
)

//go:embed seed/*.yaml
var seedFS embed.FS

// DefaultSeed returns the built-in sample events used for demos and tests.
// The fixture is embedded at build time, so decoding cannot fail at runtime;
// a broken fixture is a programming error.
func DefaultSeed() []models.Event {
	data, err := seedFS.ReadFile("seed/events.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded seed missing: %v", err))
	}
	seed, err := decodeSeed(data)
	if err != nil {
		panic(fmt.Sprintf("embedded seed invalid: %v", err))
	}
	return seed
}

// LoadSeedFile reads a seed fixture from an external YAML file, letting
// deployments replace the built-in samples.
func LoadSeedFile(path string) ([]models.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	seed, err := decodeSeed(data)
	if err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return seed, nil
}

func decodeSeed(data []byte) ([]models.Event, error) {
	var seed []models.Event
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	for i, e := range seed {
		if e.ID == "" {
			return nil, fmt.Errorf("seed event %d: missing id", i)
		}
		if _, err := models.ParseEventType(string(e.Type)); err != nil {
			return nil, fmt.Errorf("seed event %s: %w", e.ID, err)
		}
	}
	return seed, nil
}
