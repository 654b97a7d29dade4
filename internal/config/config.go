package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "primer.yaml"

// Config holds the settings of a primer run.
// Flags explicitly set on the command line take precedence over these values.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	JSON     bool   `mapstructure:"json"`
	Rich     bool   `mapstructure:"rich"`
	Banner   bool   `mapstructure:"banner"`
	Metrics  bool   `mapstructure:"metrics"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads the config at path. An empty path means DefaultPath, which is
// optional; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML settings on top of Default.
// Scalars are weakly typed ("true" and "1" both set a flag); unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, err
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
