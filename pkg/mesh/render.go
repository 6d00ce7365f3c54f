package mesh

import (
	"fmt"
	"iter"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/matrix"
	"github.com/philipparndt/goobj/pkg/transform"
)

// Render returns the edges of every face, projected through the current
// transform and then view. Each face yields one segment per vertex,
// including the closing edge from its last vertex to its first.
//
// The sequence is lazy and can be ranged over any number of times. Every
// pass reads the transform that is current when the pass starts, so
// ranging again after Transform or Reset reflects the change.
func (m *Mesh) Render(view matrix.Matrix) (iter.Seq[Segment], error) {
	if r, c := view.Dims(); r != transform.Size || c != transform.Size {
		return nil, fmt.Errorf("%w: view must be %dx%d, got %dx%d",
			matrix.ErrIncompatibleDimensions, transform.Size, transform.Size, r, c)
	}

	return func(yield func(Segment) bool) {
		p := newProjector(m.vertices, m.current, view)
		for _, face := range m.faces {
			for i := range face.EdgeCount() {
				from, to := face.Edge(i)
				a, b := p.project(from), p.project(to)
				if !yield(Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}) {
					return
				}
			}
		}
	}, nil
}

// Segments collects Render into a slice
func (m *Mesh) Segments(view matrix.Matrix) ([]Segment, error) {
	seq, err := m.Render(view)
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, m.EdgeCount())
	for s := range seq {
		segments = append(segments, s)
	}
	return segments, nil
}

// EdgeCount returns the number of segments a render produces
func (m *Mesh) EdgeCount() int {
	n := 0
	for _, face := range m.faces {
		n += face.EdgeCount()
	}
	return n
}

// projector memoizes the screen position of each vertex for one pass so
// that shared vertices project identically for every edge that uses them.
type projector struct {
	vertices []geometry.Point
	current  matrix.Matrix
	view     matrix.Matrix
	cache    []geometry.Vector3
	done     []bool
}

func newProjector(vertices []geometry.Point, current, view matrix.Matrix) *projector {
	return &projector{
		vertices: vertices,
		current:  current,
		view:     view,
		cache:    make([]geometry.Vector3, len(vertices)),
		done:     make([]bool, len(vertices)),
	}
}

func (p *projector) project(i int) geometry.Vector3 {
	if !p.done[i] {
		// Shapes were checked by Render and New, so this cannot fail.
		v, err := p.vertices[i].ViewCoordinates(p.current, p.view)
		if err != nil {
			panic(err)
		}
		p.cache[i] = v
		p.done[i] = true
	}
	return p.cache[i]
}
