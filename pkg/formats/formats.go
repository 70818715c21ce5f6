// Package formats writes generated meshes to interchange file formats.
package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown mesh format")

// Format identifies an output file format.
type Format string

// Supported formats.
const (
	FormatOBJ Format = "obj" // Wavefront OBJ, positions + UVs (+ normals)
	FormatSTL Format = "stl" // binary STL, positions only
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatOBJ, FormatSTL}
}

// ParseFormat parses a format name such as "obj" or ".STL".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case FormatOBJ, FormatSTL:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}
