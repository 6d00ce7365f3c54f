// Package obj reads the vertex and face records of Wavefront OBJ files.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// MinFaceVertices is the smallest number of references a face record may
// carry.
const MinFaceVertices = 2

// Result holds the records of a parsed file in file order. Face indices
// are 0-based.
type Result struct {
	Vertices []geometry.Point
	Faces    []geometry.Face
}

// ParseFile opens filename and parses it
func ParseFile(filename string) (*Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads vertex ("v x y z") and face ("f i j k ...") records from
// reader. Every other line is ignored. Face references are 1-based in the
// input and must point at a vertex defined earlier in the file. On error no
// partial result is returned.
func Parse(reader io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(reader)
	result := &Result{}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseVertex(lineNo, fields[1:])
			if err != nil {
				return nil, err
			}
			result.Vertices = append(result.Vertices, vertex)

		case "f":
			face, err := parseFace(lineNo, fields[1:], len(result.Vertices))
			if err != nil {
				return nil, err
			}
			result.Faces = append(result.Faces, face)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	return result, nil
}

func parseVertex(lineNo int, fields []string) (geometry.Point, error) {
	if len(fields) != 3 {
		return geometry.Point{}, formatErrorf(lineNo, ErrMalformedVertex, "expected 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return geometry.Point{}, formatErrorf(lineNo, ErrMalformedVertex, "coordinate %q is not a number", field)
		}
		coords[i] = value
	}

	return geometry.NewPoint(coords[0], coords[1], coords[2]), nil
}

// parseFace converts 1-based references to 0-based indices, checking each
// against the number of vertices read so far. Tokens such as "3/1/2" or
// "3//2" contribute their leading vertex index.
func parseFace(lineNo int, fields []string, vertexCount int) (geometry.Face, error) {
	face := make(geometry.Face, 0, len(fields))

	for _, field := range fields {
		token, _, _ := strings.Cut(field, "/")
		ref, err := strconv.Atoi(token)
		if err != nil {
			return nil, formatErrorf(lineNo, ErrMalformedFace, "vertex reference %q is not an integer", field)
		}

		index := ref - 1
		if index < 0 || index >= vertexCount {
			return nil, formatErrorf(lineNo, ErrDanglingFaceReference, "vertex %d referenced but only %d defined", ref, vertexCount)
		}
		face = append(face, index)
	}

	if len(face) < MinFaceVertices {
		return nil, formatErrorf(lineNo, ErrMalformedFace, "expected at least %d vertex references, got %d", MinFaceVertices, len(face))
	}

	return face, nil
}
