package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/surfmesh/pkg/formats"
	"github.com/Faultbox/surfmesh/pkg/surface"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Shape != "Torus" {
		t.Errorf("expected shape Torus, got %s", cfg.Shape)
	}
	if cfg.Generation.Mapping != "reference" {
		t.Errorf("expected mapping 'reference', got %s", cfg.Generation.Mapping)
	}
	if cfg.Generation.Workers != 0 {
		t.Errorf("expected 0 workers, got %d", cfg.Generation.Workers)
	}
	if !cfg.Generation.Normals {
		t.Error("expected normals to be enabled by default")
	}
	if cfg.Output.Path != "surfmesh.obj" {
		t.Errorf("expected output surfmesh.obj, got %s", cfg.Output.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "surfmesh.yaml")

	yamlContent := `
shape: "Moebius Strip"

generation:
  mapping: affine
  workers: 4
  normals: false

output:
  path: out/strip.stl

logging:
  level: "debug"
  log_file: "surfmesh.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Shape != "Moebius Strip" {
		t.Errorf("expected shape 'Moebius Strip', got %s", cfg.Shape)
	}
	if cfg.Generation.Mapping != "affine" {
		t.Errorf("expected mapping affine, got %s", cfg.Generation.Mapping)
	}
	if cfg.Generation.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Generation.Workers)
	}
	if cfg.Generation.Normals {
		t.Error("expected normals to be disabled")
	}
	if cfg.Output.Path != "out/strip.stl" {
		t.Errorf("expected output out/strip.stl, got %s", cfg.Output.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "surfmesh.log" {
		t.Errorf("expected log file 'surfmesh.log', got %s", cfg.Logging.LogFile)
	}

	f, err := cfg.OutputFormat()
	if err != nil || f != formats.FormatSTL {
		t.Errorf("OutputFormat() = %q, %v; want stl", f, err)
	}
	opts, err := cfg.MeshOptions()
	if err != nil {
		t.Fatalf("MeshOptions() failed: %v", err)
	}
	if opts.Mapping != surface.MappingAffine || opts.Workers != 4 {
		t.Errorf("MeshOptions() = %+v", opts)
	}
}

func TestLoadFromTOMLFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "surfmesh.toml")

	tomlContent := `
shape = "7"

[generation]
workers = 2

[output]
path = "helicoid.obj"
format = "obj"
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Shape != "7" {
		t.Errorf("expected shape '7', got %s", cfg.Shape)
	}
	if cfg.Generation.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Generation.Workers)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Generation.Mapping != "reference" {
		t.Errorf("expected default mapping, got %s", cfg.Generation.Mapping)
	}
	if !cfg.Generation.Normals {
		t.Error("expected default normals setting to survive")
	}
	if cfg.Output.Format != "obj" {
		t.Errorf("expected format obj, got %s", cfg.Output.Format)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	cases := map[string]string{
		"invalid.yaml": "generation:\n  workers: not a number\n  invalid syntax here\n",
		"invalid.toml": "[generation\nworkers = \"x\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, name)
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid config, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/surfmesh.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidateIgnoresOutputPathExtension(t *testing.T) {
	for _, path := range []string{"mesh", "", "out/mesh.ply"} {
		cfg := Default()
		cfg.Output.Path = path
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with output path %q = %v, want nil", path, err)
		}
		if _, err := cfg.OutputFormat(); !errors.Is(err, formats.ErrUnknownFormat) {
			t.Errorf("OutputFormat() with output path %q = %v, want ErrUnknownFormat", path, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty shape", func(c *Config) { c.Shape = "  " }},
		{"bad mapping", func(c *Config) { c.Generation.Mapping = "centered" }},
		{"negative workers", func(c *Config) { c.Generation.Workers = -1 }},
		{"bad format", func(c *Config) { c.Output.Format = "gltf" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile("surfmesh.toml", []byte("shape = \"Knot\"\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./surfmesh.toml" {
		t.Errorf("expected ./surfmesh.toml, got %q", path)
	}

	// YAML wins over TOML in the same directory.
	if err := os.WriteFile("surfmesh.yaml", []byte("shape: Knot\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./surfmesh.yaml" {
		t.Errorf("expected ./surfmesh.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "output resets inferred format",
			args: []string{"-o", "knot.stl"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Path != "knot.stl" {
					t.Errorf("expected output knot.stl, got %s", cfg.Output.Path)
				}
				if cfg.Output.Format != "" {
					t.Errorf("expected format to be inferred, got %s", cfg.Output.Format)
				}
			},
		},
		{
			name: "explicit format",
			args: []string{"-o", "knot.mesh", "-format", "stl"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Format != "stl" {
					t.Errorf("expected format stl, got %s", cfg.Output.Format)
				}
			},
		},
		{
			name: "generation flags",
			args: []string{"-mapping", "affine", "-workers", "8", "-normals=false"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Generation.Mapping != "affine" {
					t.Errorf("expected mapping affine, got %s", cfg.Generation.Mapping)
				}
				if cfg.Generation.Workers != 8 {
					t.Errorf("expected 8 workers, got %d", cfg.Generation.Workers)
				}
				if cfg.Generation.Normals {
					t.Error("expected normals to be disabled")
				}
			},
		},
		{
			name: "unset flags keep config values",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Generation.Workers != 3 {
					t.Errorf("expected workers from config (3), got %d", cfg.Generation.Workers)
				}
				if !cfg.Generation.Normals {
					t.Error("expected normals from config")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fl := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			cfg := Default()
			cfg.Generation.Workers = 3
			fl.Apply(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "surfmesh.yaml")

	yamlContent := `
shape: Daisy
generation:
  workers: 2
output:
  path: daisy.obj
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fl := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-workers", "6"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(fl)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Workers should come from the flag, not the file.
	if cfg.Generation.Workers != 6 {
		t.Errorf("expected 6 workers from flag, got %d", cfg.Generation.Workers)
	}
	// Shape and output come from the file since no flag overrides them.
	if cfg.Shape != "Daisy" {
		t.Errorf("expected shape Daisy from file, got %s", cfg.Shape)
	}
	if cfg.Output.Path != "daisy.obj" {
		t.Errorf("expected output daisy.obj from file, got %s", cfg.Output.Path)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "surfmesh.yaml")
	if err := os.WriteFile(configPath, []byte("generation:\n  mapping: sideways\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fl := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if _, err := Load(fl); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSaveToAndReload(t *testing.T) {
	for _, name := range []string{"saved.yaml", "saved.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := Default()
			cfg.Shape = "Folium"
			cfg.Generation.Workers = 5
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo failed: %v", err)
			}

			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("reload failed: %v", err)
			}
			if *loaded != *cfg {
				t.Errorf("reloaded config = %+v, want %+v", loaded, cfg)
			}
		})
	}
}
