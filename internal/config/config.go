package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-showdown/internal/util"
)

// Log configures logging
type Log struct {
	Level             string `yaml:"level" envconfig:"level"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
}

// Simulation configures the heads-up trial simulator
type Simulation struct {
	Trials  int   `yaml:"trials" envconfig:"trials"`
	Workers int   `yaml:"workers" envconfig:"workers"`
	Seed    int64 `yaml:"seed" envconfig:"seed"`
	Top     int   `yaml:"top" envconfig:"top"`
}

// Server configures the HTTP API
type Server struct {
	Addr string `yaml:"addr" envconfig:"addr"`
}

// Config provides configuration for the showdown tools
type Config struct {
	loaded         bool
	PGDSN          string     `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string     `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            Log        `yaml:"log"`
	Simulation     Simulation `yaml:"simulation"`
	Server         Server     `yaml:"server"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath: "file://sql",
		Log: Log{
			Level: "info",
		},
		Simulation: Simulation{
			Trials:  100000,
			Workers: 4,
			Top:     20,
		},
		Server: Server{
			Addr: ":5000",
		},
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("hs", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
