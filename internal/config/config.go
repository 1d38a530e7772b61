// README: Config loader: defaults, optional YAML file, RIDESIM_* env overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config carries the run settings for the simulator. Precedence, lowest
// to highest: built-in defaults, the YAML file, environment variables.
// Command-line flags override all of these in cmd/ridesim.
type Config struct {
	Sim struct {
		// Horizon is the last simulated timestamp to process.
		// Zero means run until the event queue is empty.
		Horizon int `yaml:"horizon"`
	} `yaml:"sim"`
	Log struct {
		// Level is one of debug, info, warn, error.
		Level string `yaml:"level"`
	} `yaml:"log"`
	Report struct {
		// Format is text or json.
		Format string `yaml:"format"`
	} `yaml:"report"`
}

// Load builds a Config. path may be empty for no config file.
func Load(path string) (Config, error) {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Report.Format = "text"

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Sim.Horizon = envOrDefaultInt("RIDESIM_HORIZON", cfg.Sim.Horizon)
	cfg.Log.Level = envOrDefault("RIDESIM_LOG_LEVEL", cfg.Log.Level)
	cfg.Report.Format = envOrDefault("RIDESIM_REPORT_FORMAT", cfg.Report.Format)

	if cfg.Sim.Horizon < 0 {
		return Config{}, fmt.Errorf("sim.horizon must not be negative, got %d", cfg.Sim.Horizon)
	}
	switch cfg.Report.Format {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("report.format must be text or json, got %q", cfg.Report.Format)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
