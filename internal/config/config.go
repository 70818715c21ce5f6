// Package config handles surfmesh configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/surfmesh/pkg/formats"
	"github.com/Faultbox/surfmesh/pkg/surface"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all surfmesh settings.
type Config struct {
	Shape      string           `yaml:"shape" toml:"shape"` // catalog name or index
	Generation GenerationConfig `yaml:"generation" toml:"generation"`
	Output     OutputConfig     `yaml:"output" toml:"output"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// GenerationConfig holds mesh generation settings.
type GenerationConfig struct {
	Mapping string `yaml:"mapping" toml:"mapping"` // "reference" or "affine"
	Workers int    `yaml:"workers" toml:"workers"` // 0 or 1 samples sequentially
	Normals bool   `yaml:"normals" toml:"normals"` // write vertex normals where the format allows
}

// OutputConfig holds where and how meshes are written.
type OutputConfig struct {
	Path   string `yaml:"path" toml:"path"`
	Format string `yaml:"format" toml:"format"` // empty infers from the path extension
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Shape: "Torus",
		Generation: GenerationConfig{
			Mapping: surface.MappingReference.String(),
			Workers: 0,
			Normals: true,
		},
		Output: OutputConfig{
			Path:   "surfmesh.obj",
			Format: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings every command relies on.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Shape) == "" {
		problems = append(problems, "shape is empty")
	}
	if _, err := surface.ParseMapping(c.Generation.Mapping); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Generation.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers must be >= 0, got %d", c.Generation.Workers))
	}
	// A path without a known extension is only a problem for commands
	// that write; OutputFormat reports it there.
	if c.Output.Format != "" {
		if _, err := formats.ParseFormat(c.Output.Format); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// MeshOptions converts the generation settings into surface options.
func (c *Config) MeshOptions() (surface.Options, error) {
	m, err := surface.ParseMapping(c.Generation.Mapping)
	if err != nil {
		return surface.Options{}, err
	}
	return surface.Options{Mapping: m, Workers: c.Generation.Workers}, nil
}

// OutputFormat returns the explicit output format, or the one implied
// by the output path's extension.
func (c *Config) OutputFormat() (formats.Format, error) {
	if c.Output.Format != "" {
		return formats.ParseFormat(c.Output.Format)
	}
	return formats.FormatFromPath(c.Output.Path)
}
