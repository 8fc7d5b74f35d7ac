package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML config file at configFile and returns the parsed Config.
// An empty path means no file was requested and yields the zero Config.
func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	if configFile == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}

	return cfg, nil
}

// Apply returns cfg with every explicitly set flag taking precedence.
func (cfg Config) Apply(o Overrides) Config {
	if o.Debug != nil {
		cfg.Debug = *o.Debug
	}
	if o.NoColor != nil {
		cfg.NoColor = *o.NoColor
	}
	return cfg
}
