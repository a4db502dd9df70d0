// Package config loads the YAML configuration of the lloyd command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/internal/kmeans"
)

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type StorageConfig struct {
	Backend   string `yaml:"backend"`
	Root      string `yaml:"root"`
	Bucket    string `yaml:"bucket,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	Secure    bool   `yaml:"secure"`
}

type Config struct {
	Epochs       int           `yaml:"epochs"`
	K            int           `yaml:"k"`
	Seed         int64         `yaml:"seed"`
	Workers      int           `yaml:"workers"`
	EmptyCluster string        `yaml:"empty_cluster"`
	Format       string        `yaml:"format,omitempty"`
	Log          LogConfig     `yaml:"log"`
	Storage      StorageConfig `yaml:"storage"`
}

const (
	BackendLocal = "local"
	BackendS3    = "s3"
	BackendMinIO = "minio"
)

func DefaultConfig() *Config {
	return &Config{
		Epochs:       100,
		K:            5,
		Workers:      1,
		EmptyCluster: kmeans.Freeze.String(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Storage: StorageConfig{
			Backend: BackendLocal,
			Root:    ".",
			Secure:  true,
		},
	}
}

// LoadConfig reads path on top of DefaultConfig. A missing file yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Epochs < 0 {
		errs = append(errs, fmt.Errorf("epochs: must not be negative, got %d", c.Epochs))
	}
	if c.K <= 0 {
		errs = append(errs, fmt.Errorf("k: must be positive, got %d", c.K))
	}
	if _, err := kmeans.ParseEmptyClusterPolicy(c.EmptyCluster); err != nil {
		errs = append(errs, fmt.Errorf("empty_cluster: %w", err))
	}
	if _, ok := codec.FormatByName(c.Format); !ok {
		errs = append(errs, fmt.Errorf("format: unknown format %q", c.Format))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}

	switch c.Storage.Backend {
	case BackendLocal:
	case BackendS3, BackendMinIO:
		if c.Storage.Bucket == "" {
			errs = append(errs, fmt.Errorf("storage.bucket: required for backend %q", c.Storage.Backend))
		}
		if c.Storage.Backend == BackendMinIO && c.Storage.Endpoint == "" {
			errs = append(errs, errors.New("storage.endpoint: required for backend \"minio\""))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend))
	}

	return errors.Join(errs...)
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level)))
	return level, err
}
