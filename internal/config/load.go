package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// fl may be nil.
func Load(fl *Flags) (*Config, error) {
	cfg := Default()

	if path := Path(fl); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	fl.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the config file Load would read: the -config flag if
// given, otherwise the first file found in the standard locations, or
// "" when there is none.
func Path(fl *Flags) string {
	if p := fl.ConfigPath(); p != "" {
		return p
	}
	return findConfigFile()
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./surfmesh.yaml",
		"./surfmesh.yml",
		"./surfmesh.toml",
		filepath.Join(ConfigDir(), "config.yaml"),
		filepath.Join(ConfigDir(), "config.toml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "surfmesh")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "surfmesh")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "surfmesh")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "surfmesh")
	}
}

// loadFromFile merges a YAML or TOML file into cfg. TOML is chosen by a
// .toml extension, everything else is read as YAML.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
