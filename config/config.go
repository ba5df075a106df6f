package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	UI       UIConfig       `yaml:"ui"`
}

type DatabaseConfig struct {
	Path       string `yaml:"path"`
	SeedSample bool   `yaml:"seed_sample_flights"`
}

type UIConfig struct {
	Color bool `yaml:"color"`
}

func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:       "airline.db",
			SeedSample: true,
		},
		UI: UIConfig{Color: true},
	}
}

// LoadConfig reads the YAML file at path, falling back to defaults when no
// file exists, then applies environment overrides. A .env file in the working
// directory is loaded first so the overrides can live there too.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// No file: defaults plus environment.
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AIRLINE_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("AIRLINE_SEED_SAMPLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Database.SeedSample = b
		}
	}
}
