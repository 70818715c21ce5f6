package formats

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/surfmesh/pkg/math"
	"github.com/Faultbox/surfmesh/pkg/surface"
)

// STLTriangles converts m to sdfx triangles. Triangles with a NaN or
// infinite corner have no STL representation and are dropped; skipped
// reports how many.
func STLTriangles(m *surface.Mesh) (triangles []*sdf.Triangle3, skipped int) {
	triangles = make([]*sdf.Triangle3, 0, m.TriangleCount())
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
			skipped++
			continue
		}
		triangles = append(triangles, &sdf.Triangle3{toV3(a), toV3(b), toV3(c)})
	}
	return triangles, skipped
}

// SaveSTL writes m to path as binary STL through sdfx. It returns the
// number of triangles dropped for having non-finite corners.
func SaveSTL(path string, m *surface.Mesh) (skipped int, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}

	triangles, skipped := STLTriangles(m)
	if err := render.SaveSTL(path, triangles); err != nil {
		return skipped, fmt.Errorf("writing %s: %w", path, err)
	}
	return skipped, nil
}

func toV3(p math.Vec3) v3.Vec {
	return v3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
