// Package mesh holds a loaded model together with the transform the user
// has accumulated on it, and turns both into drawable line segments.
package mesh

import (
	"fmt"
	"iter"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/matrix"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/pkg/transform"
)

// Segment is a 2D line on the drawing surface
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Mesh is a model made of vertices and faces plus one cumulative transform.
// Vertices and faces never change after construction; the transform changes
// only through Transform, Apply and Reset. A Mesh is not safe for
// concurrent use.
type Mesh struct {
	vertices []geometry.Point
	faces    []geometry.Face
	current  matrix.Matrix
}

// New builds a mesh with an identity transform. Every face must be
// non-empty and reference existing vertices.
func New(vertices []geometry.Point, faces []geometry.Face) (*Mesh, error) {
	for i, face := range faces {
		if len(face) == 0 {
			return nil, fmt.Errorf("face %d: %w: no vertices", i, obj.ErrMalformedFace)
		}
		for _, index := range face {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("face %d: %w: index %d out of %d", i, obj.ErrDanglingFaceReference, index, len(vertices))
			}
		}
	}

	m := &Mesh{
		vertices: append([]geometry.Point(nil), vertices...),
		faces:    make([]geometry.Face, len(faces)),
		current:  transform.Identity(),
	}
	for i, face := range faces {
		m.faces[i] = append(geometry.Face(nil), face...)
	}
	return m, nil
}

// Load parses an OBJ file into a mesh. Errors from the parser are returned
// unchanged.
func Load(filename string) (*Mesh, error) {
	result, err := obj.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return New(result.Vertices, result.Faces)
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int { return len(m.faces) }

// Vertex returns vertex i in model space
func (m *Mesh) Vertex(i int) geometry.Point { return m.vertices[i] }

// Faces iterates over the faces in file order. The yielded faces must not
// be modified.
func (m *Mesh) Faces() iter.Seq2[int, geometry.Face] {
	return func(yield func(int, geometry.Face) bool) {
		for i, face := range m.faces {
			if !yield(i, face) {
				return
			}
		}
	}
}

// Current returns the accumulated transform
func (m *Mesh) Current() matrix.Matrix { return m.current }

// Transform applies next in the model's current frame:
// current = current x next.
func (m *Mesh) Transform(next matrix.Matrix) error {
	if r, c := next.Dims(); r != transform.Size || c != transform.Size {
		return fmt.Errorf("%w: transform must be %dx%d, got %dx%d",
			matrix.ErrIncompatibleDimensions, transform.Size, transform.Size, r, c)
	}
	composed, err := transform.Compose(m.current, next)
	if err != nil {
		return err
	}
	m.current = composed
	return nil
}

// Reset discards every transform applied since load
func (m *Mesh) Reset() {
	m.current = transform.Identity()
}

// Apply carries out a transform request
func (m *Mesh) Apply(req transform.Request) error {
	var (
		next matrix.Matrix
		err  error
	)
	switch r := req.(type) {
	case transform.Reset:
		m.Reset()
		return nil
	case transform.Rotate:
		next, err = r.Matrix()
	case transform.Translate:
		next, err = r.Matrix()
	case transform.Scale:
		next, err = r.Matrix()
	default:
		return fmt.Errorf("%w: %T", transform.ErrInvalidRequest, req)
	}
	if err != nil {
		return err
	}
	return m.Transform(next)
}

// BoundingBox returns the model-space bounds of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.vertices {
		bbox.Extend(v.Vector3())
	}
	return bbox
}
