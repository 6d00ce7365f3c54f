// Package render draws projected mesh segments onto a surface.
package render

import (
	"iter"

	"github.com/philipparndt/goobj/pkg/mesh"
)

// Surface receives line segments in drawing-surface coordinates
type Surface interface {
	// Clear blanks the surface before a new frame
	Clear()
	DrawLine(s mesh.Segment)
}

// Flusher is implemented by surfaces that need to publish a finished frame
type Flusher interface {
	Flush()
}

// Draw clears the surface and draws every segment, returning how many were
// drawn. Frames are never drawn incrementally on top of an old one.
func Draw(surface Surface, segments iter.Seq[mesh.Segment]) int {
	surface.Clear()

	count := 0
	for s := range segments {
		surface.DrawLine(s)
		count++
	}

	if f, ok := surface.(Flusher); ok {
		f.Flush()
	}
	return count
}
