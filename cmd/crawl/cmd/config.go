package cmd

import (
	"os"

	"github.com/pelletier/go-toml"
)

// driverConfig holds the CLI's own default flag values, loaded from an
// optional TOML file so a user doesn't have to repeat --workers/--strategy
// on every invocation. This is driver ambiance, not crawl state: the
// library itself takes no configuration file.
type driverConfig struct {
	Workers  int    `toml:"workers"`
	Strategy string `toml:"strategy"`
}

// loadConfig reads path if it exists and parses it as TOML. A missing file
// is not an error — it just means the built-in flag defaults stand.
func loadConfig(path string) (driverConfig, error) {
	var cfg driverConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
