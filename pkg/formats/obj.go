package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Faultbox/surfmesh/pkg/math"
	"github.com/Faultbox/surfmesh/pkg/surface"
)

// OBJOptions controls WriteOBJ.
type OBJOptions struct {
	Name    string      // object name written as an "o" statement; empty omits it
	Normals []math.Vec3 // optional per-vertex normals, parallel to the vertices
}

// WriteOBJ writes m as a Wavefront OBJ document. Faces reference the
// vertex and texture coordinate with the same index, plus the normal
// when normals are given. Values are written verbatim, NaN included.
func WriteOBJ(w io.Writer, m *surface.Mesh, opts OBJOptions) error {
	if opts.Normals != nil && len(opts.Normals) != len(m.Vertices) {
		return fmt.Errorf("obj: %d normals for %d vertices", len(opts.Normals), len(m.Vertices))
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# surfmesh: %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	if opts.Name != "" {
		fmt.Fprintf(bw, "o %s\n", opts.Name)
	}

	for _, p := range m.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
	}
	for _, uv := range m.UVs {
		fmt.Fprintf(bw, "vt %s %s\n", ftoa(uv.X), ftoa(uv.Y))
	}
	for _, n := range opts.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(n.X), ftoa(n.Y), ftoa(n.Z))
	}

	// OBJ indices are 1-based.
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		a, b, c := tri[0]+1, tri[1]+1, tri[2]+1
		if opts.Normals != nil {
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		} else {
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
		}
	}

	return bw.Flush()
}

// SaveOBJ writes m to path, creating parent directories as needed.
func SaveOBJ(path string, m *surface.Mesh, opts OBJOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteOBJ(f, m, opts); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
