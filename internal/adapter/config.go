package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/spf13/viper"
)

// SourceType identifies the catalog backend
type SourceType string

const (
	SourceTypeSWAPI SourceType = "swapi"
)

// Config holds all application configuration
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Images  []ImageConfig `mapstructure:"images"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig holds catalog source configuration
type SourceConfig struct {
	Type    SourceType    `mapstructure:"type"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 = never time out
}

// CatalogConfig holds catalog view preferences
type CatalogConfig struct {
	DefaultSort string `mapstructure:"default_sort"` // "sequence" or "release_date"
}

// ImageConfig maps one exact film title to an image reference.
// A list is used instead of a map because viper lowercases map keys.
type ImageConfig struct {
	Title string `mapstructure:"title"`
	Ref   string `mapstructure:"ref"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Type: SourceTypeSWAPI,
			URL:  "https://swapi.dev/api/films/?format=json",
		},
		Catalog: CatalogConfig{
			DefaultSort: "sequence",
		},
		Images: defaultImages(),
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultImages returns the built-in poster references
func defaultImages() []ImageConfig {
	return []ImageConfig{
		{Title: "A New Hope", Ref: "url_to_image_for_A_New_Hope.jpg"},
		{Title: "The Empire Strikes Back", Ref: "url_to_image_for_The_Empire_Strikes_Back.jpg"},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel", "reel.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel", "reel.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit path must exist; otherwise config.yaml is looked up in the
// user config directory and the working directory, and may be absent.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}
	return loadConfig(v, path != "")
}

func loadConfig(v *viper.Viper, explicit bool) (*Config, error) {
	cfg := DefaultConfig()

	// Defaults must be registered for AutomaticEnv to see nested keys
	v.SetDefault("source.type", string(cfg.Source.Type))
	v.SetDefault("source.url", cfg.Source.URL)
	v.SetDefault("source.timeout", cfg.Source.Timeout)
	v.SetDefault("catalog.default_sort", cfg.Catalog.DefaultSort)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	// Environment variable overrides (REEL_SOURCE_URL, REEL_LOGGING_LEVEL, ...)
	v.SetEnvPrefix("REEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Decode images into an empty slice so a configured list replaces the
	// defaults instead of being merged element by element
	cfg.Images = nil
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if !v.IsSet("images") {
		cfg.Images = defaultImages()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be represented by the config types
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("source url is required")
	}
	if c.Source.Type != SourceTypeSWAPI {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSource, c.Source.Type)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source timeout must not be negative: %s", c.Source.Timeout)
	}
	return nil
}

// ImageTable builds the title -> image lookup from the configured entries.
// Later entries for the same title win.
func (c *Config) ImageTable() domain.ImageTable {
	refs := make(map[string]string, len(c.Images))
	for _, img := range c.Images {
		refs[img.Title] = img.Ref
	}
	return domain.NewImageTable(refs)
}
