// Package surface turns parametric surfaces into triangle meshes.
//
// A Surface maps two parameters (u, v) to a 3D position over a
// rectangular domain. Generate samples that domain on a uniform grid,
// producing a vertex buffer, a parallel UV buffer and a triangle index
// buffer with a fixed winding order. Generation is pure: it performs no
// I/O and keeps no state between calls.
package surface

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/Faultbox/surfmesh/pkg/math"
)

// Surface errors.
var (
	ErrInvalidResolution = errors.New("invalid resolution")
	ErrNilSurface        = errors.New("nil surface")
	ErrUnknownMapping    = errors.New("unknown domain mapping")
)

// Range is an inclusive parameter interval. Max is usually greater
// than Min, but reversed and empty ranges are sampled the same way.
type Range struct {
	Min float32
	Max float32
}

// Span returns Max - Min.
func (r Range) Span() float32 {
	return r.Max - r.Min
}

// String returns the range as "[Min, Max]".
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Resolution is the number of grid cells along u and v.
type Resolution struct {
	U int
	V int
}

// String returns the resolution as "UxV".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.U, r.V)
}

// VertexCount returns the number of grid points, (U+1)*(V+1).
func (r Resolution) VertexCount() int {
	return (r.U + 1) * (r.V + 1)
}

// CellCount returns U*V.
func (r Resolution) CellCount() int {
	return r.U * r.V
}

// IndexCount returns the index buffer length, two triangles per cell.
func (r Resolution) IndexCount() int {
	return r.CellCount() * 6
}

// Validate reports ErrInvalidResolution when either axis has fewer than
// one cell or the grid has more vertices than a uint32 index can address.
func (r Resolution) Validate() error {
	if r.U < 1 || r.V < 1 {
		return fmt.Errorf("%w: %s (each axis needs at least one cell)", ErrInvalidResolution, r)
	}
	// Bound each axis first so neither U+1 nor the product can wrap.
	if uint64(r.U) >= stdmath.MaxUint32 || uint64(r.V) >= stdmath.MaxUint32 ||
		uint64(r.U+1)*uint64(r.V+1) > stdmath.MaxUint32 {
		return fmt.Errorf("%w: %s exceeds the uint32 index range", ErrInvalidResolution, r)
	}
	return nil
}

// Surface is a parametric surface: a domain for each parameter, a
// sampling resolution and a position for every (u, v).
//
// Evaluate must be deterministic and free of side effects. Generate
// calls it exactly once per grid point, possibly from several goroutines
// when Options.Workers is greater than one.
type Surface interface {
	Domain() (u, v Range)
	Resolution() Resolution
	Evaluate(u, v float32) math.Vec3
}

// Func is a Surface assembled from plain values.
type Func struct {
	U    Range
	V    Range
	Res  Resolution
	Eval func(u, v float32) math.Vec3
}

var _ Surface = Func{}

// Domain returns the u and v ranges.
func (f Func) Domain() (u, v Range) {
	return f.U, f.V
}

// Resolution returns the sampling resolution.
func (f Func) Resolution() Resolution {
	return f.Res
}

// Evaluate returns the position at (u, v).
func (f Func) Evaluate(u, v float32) math.Vec3 {
	return f.Eval(u, v)
}
