package config

import "flag"

// Flags holds command-line overrides. Only flags that were set on the
// command line are applied.
type Flags struct {
	fs *flag.FlagSet

	ConfigFile string
	Debug      bool
	Output     string
	Format     string
	Mapping    string
	Workers    int
	Normals    bool
	LogFile    string
}

// RegisterFlags defines the config flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigFile, "config", "", "Path to config file (.yaml or .toml)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Output, "o", "", "Output file path")
	fs.StringVar(&f.Format, "format", "", "Output format: obj or stl (default: from extension)")
	fs.StringVar(&f.Mapping, "mapping", "", "Domain mapping: reference or affine")
	fs.IntVar(&f.Workers, "workers", 0, "Goroutines used for sampling (0 = sequential)")
	fs.BoolVar(&f.Normals, "normals", true, "Write vertex normals (OBJ only)")
	fs.StringVar(&f.LogFile, "log", "", "Also write logs to this file")
	return f
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return f.ConfigFile
}

// Apply applies flag overrides to the config.
func (f *Flags) Apply(cfg *Config) {
	if f == nil {
		return
	}

	set := make(map[string]bool)
	if f.fs != nil {
		f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	}

	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Output != "" {
		cfg.Output.Path = f.Output
		if !set["format"] {
			// A new path implies a new format unless one was given.
			cfg.Output.Format = ""
		}
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Mapping != "" {
		cfg.Generation.Mapping = f.Mapping
	}
	if set["workers"] {
		cfg.Generation.Workers = f.Workers
	}
	if set["normals"] {
		cfg.Generation.Normals = f.Normals
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
