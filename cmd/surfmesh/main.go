// surfmesh generates triangle meshes from parametric surfaces.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/surfmesh/internal/config"
	"github.com/Faultbox/surfmesh/internal/logger"
	"github.com/Faultbox/surfmesh/internal/pipeline"
	"github.com/Faultbox/surfmesh/pkg/shapes"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "list", "ls":
		err = cmdList()
	case "info":
		err = cmdInfo(args)
	case "generate", "gen":
		err = cmdGenerate(args)
	case "watch":
		err = cmdWatch(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`surfmesh - parametric surface mesh generator

Usage:
  surfmesh <command> [options]

Commands:
  list                        List catalog shapes
  info <shape>                Generate a shape and print mesh statistics
  generate [flags] [shape]    Generate a shape and write it to a file
  watch [flags]               Regenerate whenever the config file changes
  config init [path]          Write the default config file

Shapes are given by name or by index (see list).

Flags (generate, watch):
  -config path    Config file (.yaml or .toml)
  -o path         Output file (default surfmesh.obj)
  -format fmt     obj or stl (default: from extension)
  -mapping m      reference or affine
  -workers N      Goroutines used for sampling
  -normals        Write vertex normals (OBJ only)
  -debug          Enable debug logging
  -log path       Also write logs to a rotated file

Examples:
  surfmesh list
  surfmesh info "Boy Surface"
  surfmesh generate -o torus.stl torus
  surfmesh generate -mapping affine -workers 4 -o knot.obj 5
  surfmesh config init surfmesh.yaml && surfmesh watch -config surfmesh.yaml`)
}

func cmdList() error {
	for i, s := range shapes.Default().All() {
		u, v := s.Domain()
		fmt.Printf("%3d  %-20s u=%-18s v=%-18s %s\n", i, s.Name, u, v, s.Resolution())
	}
	return nil
}

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		return errors.New("usage: surfmesh info [flags] <shape>")
	}

	cfg, err := setup(fl)
	if err != nil {
		return err
	}
	// info writes nothing, so the output settings do not apply.
	cfg.Output.Path = ""
	req, err := pipeline.RequestFromConfig(cfg)
	if err != nil {
		return err
	}
	req.Shape = fs.Arg(0)
	req.Normals = false

	res, err := pipeline.New(shapes.Default(), logger.Log).Run(req)
	if err != nil {
		return err
	}

	m := res.Mesh
	fmt.Printf("Shape:      %s\n", res.Shape.Name)
	fmt.Printf("Resolution: %s\n", m.Resolution)
	fmt.Printf("Mapping:    %s\n", req.Options.Mapping)
	fmt.Printf("Vertices:   %d\n", m.VertexCount())
	fmt.Printf("Triangles:  %d\n", m.TriangleCount())
	if res.HasBounds {
		fmt.Printf("Bounds:     min %+v\n", res.Bounds.Min)
		fmt.Printf("            max %+v\n", res.Bounds.Max)
		fmt.Printf("Size:       %+v\n", res.Bounds.Size())
		fmt.Printf("Center:     %+v\n", res.Bounds.Center())
	} else {
		fmt.Println("Bounds:     none (no finite vertices)")
	}
	if res.NonFinite > 0 {
		fmt.Printf("Non-finite: %d vertices\n", res.NonFinite)
	}
	fmt.Printf("Elapsed:    %s\n", res.Elapsed)
	return nil
}

func cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := setup(fl)
	if err != nil {
		return err
	}
	req, err := pipeline.RequestFromConfig(cfg)
	if err != nil {
		return err
	}
	if fs.NArg() > 0 {
		req.Shape = fs.Arg(0)
	}

	res, err := pipeline.New(shapes.Default(), logger.Log).Run(req)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s: %s, %d vertices, %d triangles\n",
		res.Path, res.Shape.Name, res.Mesh.VertexCount(), res.Mesh.TriangleCount()-res.Skipped)
	return nil
}

func cmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	fs.Parse(args)

	path := config.Path(fl)
	if path == "" {
		return errors.New("no config file to watch: pass -config or run 'surfmesh config init'")
	}
	if _, err := setup(fl); err != nil {
		return err
	}

	reload := func() (pipeline.Request, error) {
		cfg, err := config.Load(fl)
		if err != nil {
			return pipeline.Request{}, err
		}
		return pipeline.RequestFromConfig(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return pipeline.New(shapes.Default(), logger.Log).Watch(ctx, path, reload)
}

func cmdConfig(args []string) error {
	if len(args) < 1 || args[0] != "init" {
		return errors.New("usage: surfmesh config init [path]")
	}

	cfg := config.Default()
	if len(args) > 1 {
		path := args[1]
		if err := cfg.SaveTo(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	return nil
}

// setup loads the config and starts logging as it asks.
func setup(fl *config.Flags) (*config.Config, error) {
	cfg, err := config.Load(fl)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}
	if path := config.Path(fl); path != "" {
		logger.Debug("config loaded", zap.String("path", path))
	}
	return cfg, nil
}
