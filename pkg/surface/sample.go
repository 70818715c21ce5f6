package surface

import (
	"sync"

	"github.com/Faultbox/surfmesh/pkg/math"
)

// sample evaluates s on a (res.U+1) x (res.V+1) grid.
func sample(s Surface, res Resolution, m Mapping, workers int) ([]math.Vec3, []math.Vec2) {
	rows := res.V + 1
	vertices := make([]math.Vec3, res.VertexCount())
	uvs := make([]math.Vec2, len(vertices))

	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		sampleRows(s, res, m, 0, rows, vertices, uvs)
		return vertices, uvs
	}

	// Rows are independent; each worker owns a contiguous band.
	var wg sync.WaitGroup
	band := (rows + workers - 1) / workers
	for start := 0; start < rows; start += band {
		end := min(start+band, rows)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			sampleRows(s, res, m, start, end, vertices, uvs)
		}(start, end)
	}
	wg.Wait()

	return vertices, uvs
}

// sampleRows fills grid rows [from, to).
func sampleRows(s Surface, res Resolution, m Mapping, from, to int, vertices []math.Vec3, uvs []math.Vec2) {
	uDomain, vDomain := s.Domain()
	width := res.U + 1

	for y := from; y < to; y++ {
		nv := float32(y) / float32(res.V)
		v := m.apply(nv, vDomain)

		for x := 0; x < width; x++ {
			nu := float32(x) / float32(res.U)
			u := m.apply(nu, uDomain)

			i := x + y*width
			vertices[i] = s.Evaluate(u, v)
			uvs[i] = math.Vec2{X: nu, Y: nv}
		}
	}
}
