package surface

import "fmt"

// Options tunes GenerateWith. The zero value matches Generate.
type Options struct {
	// Mapping places normalized grid coordinates into the domain.
	Mapping Mapping

	// Workers is the number of goroutines sampling rows in parallel.
	// Values below two sample on the calling goroutine. The output does
	// not depend on this setting.
	Workers int
}

// Generate samples s on its own resolution and returns a new mesh.
func Generate(s Surface) (*Mesh, error) {
	return GenerateWith(s, Options{})
}

// GenerateWith is Generate with explicit options.
func GenerateWith(s Surface, opts Options) (*Mesh, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if opts.Mapping != MappingReference && opts.Mapping != MappingAffine {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMapping, opts.Mapping)
	}

	res := s.Resolution()
	if err := res.Validate(); err != nil {
		return nil, err
	}

	vertices, uvs := sample(s, res, opts.Mapping, opts.Workers)

	return &Mesh{
		Vertices:   vertices,
		UVs:        uvs,
		Indices:    triangulate(res),
		Resolution: res,
	}, nil
}
