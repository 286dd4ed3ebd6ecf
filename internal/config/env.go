package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with values from TIMEDIARY_* environment
// variables. Unset variables leave the current values in place.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
