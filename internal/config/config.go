package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = ".dirtree.yaml"

type Config struct {
	Indent int  `yaml:"indent"`
	Header bool `yaml:"header"`
}

func DefaultConfig() *Config {
	return &Config{
		Indent: 4,
		Header: false,
	}
}

// LoadConfig reads a YAML config file. A missing file yields the defaults;
// keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Indent < 1 {
		return fmt.Errorf("indent must be at least 1, got %d", c.Indent)
	}
	return nil
}
