// Package config holds the instalens application configuration and the
// analysis policy file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/instalens/instalens/instaexport"
)

// Config holds the instalens application configuration
type Config struct {
	AppDir      string
	ConfigPath  string
	Development bool
}

// GetAppDir returns the instalens application directory for the current OS
func GetAppDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Instalens")
	case "linux":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "instalens")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, _ := os.UserHomeDir()
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Instalens")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".instalens")
	}
}

// Load returns a Config instance with env overrides and defaults
func Load() *Config {
	appDir := GetAppDir()

	cfg := &Config{
		AppDir:      appDir,
		ConfigPath:  filepath.Join(appDir, "config.yaml"),
		Development: getEnv("INSTALENS_DEV", "") != "",
	}

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Policy holds the analysis conventions that exports leave ambiguous,
// so runs are configured rather than guessed.
type Policy struct {
	// CountUnsent counts deleted-message placeholders toward volume.
	CountUnsent bool `yaml:"count_unsent"`
	// CountMedia counts media and shared-post events toward volume.
	CountMedia bool `yaml:"count_media"`
	// Dedupe drops repeated messages across overlapping export files.
	Dedupe bool `yaml:"dedupe"`
	// FileOrder maps export file numbering to chronology:
	// "oldest_first" (lower index = older) or "newest_first".
	FileOrder string `yaml:"file_order"`
	// Timezone is the IANA zone export timestamps are interpreted in.
	Timezone string `yaml:"timezone"`
}

// DefaultPolicy returns the documented default conventions.
func DefaultPolicy() Policy {
	return Policy{
		FileOrder: "oldest_first",
		Timezone:  "UTC",
	}
}

// LoadPolicy reads a policy file, applying defaults for absent fields.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}
	if p.FileOrder == "" {
		p.FileOrder = "oldest_first"
	}
	if p.Timezone == "" {
		p.Timezone = "UTC"
	}
	return p, nil
}

// Order maps the policy's file-order string onto the parser convention.
func (p Policy) Order() (instaexport.FileOrder, error) {
	switch p.FileOrder {
	case "", "oldest_first", "oldest-first":
		return instaexport.OldestFirst, nil
	case "newest_first", "newest-first":
		return instaexport.NewestFirst, nil
	default:
		return instaexport.OldestFirst, fmt.Errorf("unknown file_order %q (want oldest_first or newest_first)", p.FileOrder)
	}
}

// Location resolves the policy timezone.
func (p Policy) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}
