// Package app connects a user-facing shell to the mesh engine: it owns the
// loaded model, the viewport and the transform requests issued against them.
package app

import (
	"errors"
	"fmt"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/matrix"
	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/render"
	"github.com/philipparndt/goobj/pkg/transform"
)

// ErrNoModel is returned when a request needs a model and none is loaded
var ErrNoModel = errors.New("no model loaded")

// Viewport describes the drawing surface
type Viewport struct {
	Width  float64
	Height float64
	Scale  float64
}

// DefaultViewport returns the standard 800x600 surface
func DefaultViewport() Viewport {
	return Viewport{
		Width:  transform.DefaultViewWidth,
		Height: transform.DefaultViewHeight,
		Scale:  transform.DefaultViewScale,
	}
}

// Matrix returns the viewport projection
func (v Viewport) Matrix() matrix.Matrix {
	return transform.Viewport(v.Width, v.Height, v.Scale)
}

// Validate checks that the viewport can be drawn on
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("viewport size must be positive, got %vx%v", v.Width, v.Height)
	}
	if v.Scale <= 0 {
		return fmt.Errorf("viewport scale must be positive, got %v", v.Scale)
	}
	return nil
}

// FitScale returns the scale at which the x-y extent of bbox around the
// origin covers fill (0..1) of the smaller viewport dimension. Boxes with no
// x-y extent keep the current scale.
func (v Viewport) FitScale(bbox geometry.BoundingBox, fill float64) float64 {
	if bbox.Empty() {
		return v.Scale
	}
	extent := 2 * max(abs(bbox.Min.X), abs(bbox.Max.X), abs(bbox.Min.Y), abs(bbox.Max.Y))
	if extent == 0 {
		return v.Scale
	}
	return fill * min(v.Width, v.Height) / extent
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Session is the state a viewer shell works against. It is not safe for
// concurrent use; shells must serialize calls, for example on their UI
// thread.
type Session struct {
	mesh     *mesh.Mesh
	path     string
	viewport Viewport
}

// NewSession creates a session with no model
func NewSession(viewport Viewport) *Session {
	return &Session{viewport: viewport}
}

// Load replaces the model with the one in path. On failure the previous
// model, if any, stays loaded and the error is returned unchanged.
func (s *Session) Load(path string) error {
	m, err := mesh.Load(path)
	if err != nil {
		return err
	}
	s.mesh = m
	s.path = path
	return nil
}

// Reload reads the current file again and carries the accumulated
// transform over to the new model. On failure the old model stays.
func (s *Session) Reload() error {
	if s.mesh == nil {
		return ErrNoModel
	}
	m, err := mesh.Load(s.path)
	if err != nil {
		return err
	}
	if err := m.Transform(s.mesh.Current()); err != nil {
		return err
	}
	s.mesh = m
	return nil
}

// Apply carries out a transform request on the loaded model
func (s *Session) Apply(req transform.Request) error {
	if s.mesh == nil {
		return ErrNoModel
	}
	return s.mesh.Apply(req)
}

// Render clears surface and draws the model onto it. With no model loaded
// the surface is only cleared.
func (s *Session) Render(surface render.Surface) (int, error) {
	if s.mesh == nil {
		return render.Draw(surface, func(func(mesh.Segment) bool) {}), nil
	}

	segments, err := s.mesh.Render(s.viewport.Matrix())
	if err != nil {
		return 0, err
	}
	return render.Draw(surface, segments), nil
}

// Segments returns the projected edges of the loaded model
func (s *Session) Segments() ([]mesh.Segment, error) {
	if s.mesh == nil {
		return nil, ErrNoModel
	}
	return s.mesh.Segments(s.viewport.Matrix())
}

// Resize changes the drawing surface size, keeping the scale
func (s *Session) Resize(width, height float64) {
	s.viewport.Width = width
	s.viewport.Height = height
}

// SetScale changes the viewport scale
func (s *Session) SetScale(scale float64) {
	s.viewport.Scale = scale
}

// Viewport returns the current viewport
func (s *Session) Viewport() Viewport { return s.viewport }

// Mesh returns the loaded model, or nil
func (s *Session) Mesh() *mesh.Mesh { return s.mesh }

// Path returns the file the model was loaded from
func (s *Session) Path() string { return s.path }

// Current returns the accumulated transform, or identity with no model
func (s *Session) Current() matrix.Matrix {
	if s.mesh == nil {
		return transform.Identity()
	}
	return s.mesh.Current()
}
