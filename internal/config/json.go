package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/campusevents/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	StorageFilePath string `json:"storage_file_path"`
	SeedFilePath    string `json:"seed_file_path"`
	LogLevel        string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. With no path given, nothing happens.
// Read or unmarshal errors panic; config must be valid if supplied.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageFilePath != "" {
		cfg.StorageFilePath = jc.StorageFilePath
	}
	if jc.SeedFilePath != "" {
		cfg.SeedFilePath = jc.SeedFilePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
