package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"hpcatalog/internal/catalog"
	"hpcatalog/internal/source"
)

const (
	DefaultPath         = "hpcatalog.yaml"
	DefaultSourceURL    = source.DefaultURL
	DefaultTimeout      = 30 * time.Second
	DefaultDisplayLimit = catalog.DefaultDisplayLimit
)

type ProjectConfig struct {
	Project string         `yaml:"project"`
	Version int            `yaml:"version"`
	Source  SourceConfig   `yaml:"source"`
	Display DisplayConfig  `yaml:"display"`
	Logging LoggingConfig  `yaml:"logging"`
	Filters []FilterOption `yaml:"filters"`
}

type SourceConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type DisplayConfig struct {
	Limit int `yaml:"limit"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type envOverrides struct {
	SourceURL     string        `env:"HPCATALOG_SOURCE_URL"`
	SourceTimeout time.Duration `env:"HPCATALOG_SOURCE_TIMEOUT"`
	DisplayLimit  int           `env:"HPCATALOG_DISPLAY_LIMIT"`
	LogLevel      string        `env:"HPCATALOG_LOG_LEVEL"`
	LogFile       string        `env:"HPCATALOG_LOG_FILE"`
}

func Default() *ProjectConfig {
	return &ProjectConfig{
		Project: "hpcatalog",
		Version: 1,
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: DefaultTimeout,
		},
		Display: DisplayConfig{Limit: DefaultDisplayLimit},
		Logging: LoggingConfig{Level: "info"},
		Filters: DefaultFilters(),
	}
}

// Load reads .env, then the project file at path (defaults when it does not
// exist), then HPCATALOG_* environment overrides.
func Load(path string) (*ProjectConfig, error) {
	_ = godotenv.Load()

	cfg, err := LoadProjectConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validateProjectConfig(cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	return cfg, nil
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *ProjectConfig) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if overrides.SourceURL != "" {
		cfg.Source.URL = overrides.SourceURL
	}
	if overrides.SourceTimeout != 0 {
		cfg.Source.Timeout = overrides.SourceTimeout
	}
	if overrides.DisplayLimit != 0 {
		cfg.Display.Limit = overrides.DisplayLimit
	}
	if overrides.LogLevel != "" {
		cfg.Logging.Level = overrides.LogLevel
	}
	if overrides.LogFile != "" {
		cfg.Logging.File = overrides.LogFile
	}
	return nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Source.URL) == "" {
		return fmt.Errorf("source url is required")
	}
	u, err := url.Parse(cfg.Source.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("source url must be an absolute http(s) url: %s", cfg.Source.URL)
	}
	if cfg.Source.Timeout < 0 {
		return fmt.Errorf("source timeout must not be negative")
	}
	if cfg.Display.Limit < 0 {
		return fmt.Errorf("display limit must not be negative")
	}
	return validateFilters(cfg.Filters)
}
