package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envStorage  = "CAMPUSEVENTS_STORAGE"
	envSeed     = "CAMPUSEVENTS_SEED"
	envLogLevel = "CAMPUSEVENTS_LOG_LEVEL"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(envStorage); ok && v != "" {
		cfg.StorageFilePath = v
	}
	if v, ok := os.LookupEnv(envSeed); ok && v != "" {
		cfg.SeedFilePath = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
