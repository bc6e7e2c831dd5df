package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional user configuration, read from
// ~/.daymark/config.yaml. Missing file or fields fall back to defaults.
type Config struct {
	DBPath      string       `yaml:"db_path"`
	GeocoderURL string       `yaml:"geocoder_url"`
	Remind      RemindConfig `yaml:"remind"`
}

type RemindConfig struct {
	Interval time.Duration
	Window   time.Duration
	Once     bool
}

// UnmarshalYAML accepts durations in time.ParseDuration form ("30s", "2m").
// Absent fields keep the value already in place, so defaults survive a
// partial config.
func (r *RemindConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Interval string `yaml:"interval"`
		Window   string `yaml:"window"`
		Once     *bool  `yaml:"once"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Interval != "" {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return fmt.Errorf("remind.interval: %w", err)
		}
		r.Interval = d
	}
	if raw.Window != "" {
		d, err := time.ParseDuration(raw.Window)
		if err != nil {
			return fmt.Errorf("remind.window: %w", err)
		}
		r.Window = d
	}
	if raw.Once != nil {
		r.Once = *raw.Once
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		GeocoderURL: "https://nominatim.openstreetmap.org",
		Remind: RemindConfig{
			Interval: 10 * time.Second,
			Window:   time.Minute,
		},
	}
}

// Load reads the user config file over the defaults. A missing file is not
// an error; a malformed one is, so a typo does not silently revert settings.
func Load() (*Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}
	return loadFile(filepath.Join(home, ".daymark", "config.yaml"), cfg)
}

func loadFile(path string, cfg *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Remind.Interval <= 0 {
		cfg.Remind.Interval = Default().Remind.Interval
	}
	if cfg.Remind.Window <= 0 {
		cfg.Remind.Window = Default().Remind.Window
	}
	return cfg, nil
}
