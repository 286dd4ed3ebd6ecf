// Package config assembles runtime settings for the timediary CLI from
// defaults, environment variables, an optional JSON file, and command-line
// flags, in that order of precedence (later sources win).
package config

// Config holds runtime settings for the timediary CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local sqlite database.
//   - ListLimit: maximum number of diaries printed by the list commands.
type Config struct {
	DatabaseDSN string `env:"TIMEDIARY_DATABASE_DSN"`
	ListLimit   int    `env:"TIMEDIARY_LIST_LIMIT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "timediary.db"
	c.ListLimit = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
