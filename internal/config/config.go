package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mermaidfix/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxKindLength  = 20   // "usecase", "activity", "sequence", "class"
	MaxPathLength  = 4096 // filesystem limit on most platforms
	MaxThemeLength = 50   // "light", "dark"
)

// Render timeout bounds in seconds.
const (
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 300
)

// Config holds all configuration for diagram repair and rendering.
type Config struct {
	Fix     FixConfig     `yaml:"fix"`
	Library LibraryConfig `yaml:"library"`
	Preview PreviewConfig `yaml:"preview"`
	Render  RenderConfig  `yaml:"render"`
}

// FixConfig defines defaults for the repair pipeline.
type FixConfig struct {
	Kind string `yaml:"kind"` // Default diagram kind hint (empty = unspecified)
}

// LibraryConfig defines diagram library storage options.
type LibraryConfig struct {
	Path string `yaml:"path"` // Library file path (empty = ~/.config/go-mermaidfix/library.json)
}

// PreviewConfig defines HTML preview options.
type PreviewConfig struct {
	Theme string `yaml:"theme"` // "light" or "dark" (default: "light")
}

// RenderConfig defines headless browser render options.
type RenderConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds"` // 1-300, default 30
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("fix.kind", c.Fix.Kind, MaxKindLength); err != nil {
		return err
	}
	if c.Fix.Kind != "" {
		switch strings.ToLower(c.Fix.Kind) {
		case "usecase", "activity", "sequence", "class":
			// valid
		default:
			return fmt.Errorf("fix.kind: invalid value %q (must be usecase, activity, sequence, or class)", c.Fix.Kind)
		}
	}

	if err := validateFieldLength("library.path", c.Library.Path, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("preview.theme", c.Preview.Theme, MaxThemeLength); err != nil {
		return err
	}

	if c.Render.TimeoutSeconds != 0 {
		if c.Render.TimeoutSeconds < MinTimeoutSeconds || c.Render.TimeoutSeconds > MaxTimeoutSeconds {
			return fmt.Errorf("render.timeoutSeconds: must be between %d and %d, got %d",
				MinTimeoutSeconds, MaxTimeoutSeconds, c.Render.TimeoutSeconds)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Fix:     FixConfig{Kind: ""},
		Library: LibraryConfig{Path: ""},
		Preview: PreviewConfig{Theme: ""},
		Render:  RenderConfig{TimeoutSeconds: 0},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LibraryPath resolves the effective library file location, falling back to
// the user config directory when the config leaves it empty.
func (c *Config) LibraryPath() (string, error) {
	if c.Library.Path != "" {
		return c.Library.Path, nil
	}
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving library path: %w", err)
	}
	return filepath.Join(userConfigDir, "go-mermaidfix", "library.json"), nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mermaidfix/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mermaidfix", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
