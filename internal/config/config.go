// Package config assembles runtime settings from defaults, environment
// variables (including a .env file), an optional JSON file, and command-line
// flags. Later sources take precedence over earlier ones.
package config

// Config holds runtime settings for the campus events CLI.
//
// Fields:
//   - StorageFilePath: JSON file backing the session's key-value slot.
//   - SeedFilePath: optional YAML seed fixture; empty means the embedded seed.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	StorageFilePath string
	SeedFilePath    string
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageFilePath = "session.json"
	c.SeedFilePath = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
