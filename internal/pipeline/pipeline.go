// Package pipeline runs one mesh generation end to end: catalog lookup,
// sampling, derived geometry and file output.
package pipeline

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/surfmesh/internal/config"
	"github.com/Faultbox/surfmesh/internal/geometry"
	"github.com/Faultbox/surfmesh/pkg/formats"
	"github.com/Faultbox/surfmesh/pkg/math"
	"github.com/Faultbox/surfmesh/pkg/shapes"
	"github.com/Faultbox/surfmesh/pkg/surface"
)

// Request describes one generation.
type Request struct {
	Shape   string // catalog name or index
	Options surface.Options
	Output  string // file to write; empty skips output
	Format  formats.Format
	Normals bool // compute vertex normals; skipped for outputs that cannot store them
}

// Result is what a Run produced.
type Result struct {
	Shape     shapes.Shape
	Mesh      *surface.Mesh
	Normals   []math.Vec3 // nil unless requested and storable
	Bounds    geometry.Bounds
	HasBounds bool // false when no vertex is finite
	NonFinite int  // vertices with NaN or Inf components
	Skipped   int  // triangles the writer could not represent
	Path      string
	Elapsed   time.Duration
}

// Pipeline generates meshes from a catalog.
type Pipeline struct {
	catalog *shapes.Catalog
	log     *zap.Logger
}

// New returns a pipeline over catalog. A nil log discards output.
func New(catalog *shapes.Catalog, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{catalog: catalog, log: log}
}

// RequestFromConfig builds the request a config describes. The output
// format is resolved only when the config names an output path.
func RequestFromConfig(cfg *config.Config) (Request, error) {
	opts, err := cfg.MeshOptions()
	if err != nil {
		return Request{}, err
	}

	req := Request{
		Shape:   cfg.Shape,
		Options: opts,
		Output:  cfg.Output.Path,
		Normals: cfg.Generation.Normals,
	}
	if req.Output != "" {
		if req.Format, err = cfg.OutputFormat(); err != nil {
			return Request{}, err
		}
	}
	return req, nil
}

// Run executes req. Nothing is written when generation fails.
func (p *Pipeline) Run(req Request) (*Result, error) {
	shape, err := p.catalog.Lookup(req.Shape)
	if err != nil {
		return nil, err
	}

	log := p.log.With(zap.String("shape", shape.Name))
	start := time.Now()

	mesh, err := surface.GenerateWith(shape, req.Options)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", shape.Name, err)
	}

	res := &Result{
		Shape:     shape,
		Mesh:      mesh,
		NonFinite: geometry.CountNonFinite(mesh.Vertices),
	}
	res.Bounds, res.HasBounds = geometry.ComputeBounds(mesh.Vertices)
	if req.Normals && (req.Output == "" || req.Format == formats.FormatOBJ) {
		res.Normals = geometry.ComputeNormals(mesh.Vertices, mesh.Indices)
	}
	res.Elapsed = time.Since(start)

	log.Info("mesh generated",
		zap.Stringer("resolution", mesh.Resolution),
		zap.Stringer("mapping", req.Options.Mapping),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("elapsed", res.Elapsed),
	)
	if res.NonFinite > 0 {
		log.Warn("surface produced non-finite vertices", zap.Int("count", res.NonFinite))
	}

	if req.Output == "" {
		return res, nil
	}
	if err := p.write(res, req); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Pipeline) write(res *Result, req Request) error {
	log := p.log.With(zap.String("shape", res.Shape.Name), zap.String("path", req.Output))

	switch req.Format {
	case formats.FormatOBJ:
		opts := formats.OBJOptions{Name: res.Shape.Name, Normals: res.Normals}
		if err := formats.SaveOBJ(req.Output, res.Mesh, opts); err != nil {
			return err
		}
	case formats.FormatSTL:
		skipped, err := formats.SaveSTL(req.Output, res.Mesh)
		if err != nil {
			return err
		}
		res.Skipped = skipped
		if skipped > 0 {
			log.Warn("dropped triangles with non-finite corners", zap.Int("count", skipped))
		}
	default:
		return fmt.Errorf("%w: %q", formats.ErrUnknownFormat, req.Format)
	}

	res.Path = req.Output
	log.Info("mesh written", zap.String("format", string(req.Format)))
	return nil
}
