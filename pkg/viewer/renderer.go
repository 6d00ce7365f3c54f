// Package viewer shows a wireframe in a fyne window.
package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goobj/pkg/mesh"
)

// WireframeView is a fyne widget that acts as a render.Surface. Lines drawn
// between Clear and Flush replace the previous frame when Flush is called.
type WireframeView struct {
	widget.BaseWidget

	// LineColor is used for lines drawn after it is set
	LineColor color.Color

	// OnResize is called with the new size whenever the widget is laid out
	// at a different size
	OnResize func(width, height float64)

	lines   []*canvas.Line
	pending []*canvas.Line
	size    fyne.Size
}

// NewWireframeView creates an empty view
func NewWireframeView() *WireframeView {
	v := &WireframeView{
		LineColor: color.RGBA{200, 200, 200, 255},
	}
	v.ExtendBaseWidget(v)
	return v
}

// Clear starts a new frame
func (v *WireframeView) Clear() {
	v.pending = make([]*canvas.Line, 0, len(v.lines))
}

// DrawLine adds a segment to the frame being built
func (v *WireframeView) DrawLine(s mesh.Segment) {
	line := canvas.NewLine(v.LineColor)
	line.StrokeWidth = 1
	line.Position1 = fyne.NewPos(float32(s.X1), float32(s.Y1))
	line.Position2 = fyne.NewPos(float32(s.X2), float32(s.Y2))
	v.pending = append(v.pending, line)
}

// Flush publishes the frame built since the last Clear
func (v *WireframeView) Flush() {
	v.lines = v.pending
	v.pending = nil
	v.Refresh()
}

// LineCount returns the number of lines currently shown
func (v *WireframeView) LineCount() int {
	return len(v.lines)
}

// CreateRenderer creates the renderer for the widget
func (v *WireframeView) CreateRenderer() fyne.WidgetRenderer {
	return &wireframeRenderer{view: v}
}

// wireframeRenderer implements fyne.WidgetRenderer
type wireframeRenderer struct {
	view    *WireframeView
	objects []fyne.CanvasObject
}

func (r *wireframeRenderer) Layout(size fyne.Size) {
	if size == r.view.size {
		return
	}
	r.view.size = size
	if r.view.OnResize != nil {
		r.view.OnResize(float64(size.Width), float64(size.Height))
	}
}

func (r *wireframeRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *wireframeRenderer) Refresh() {
	r.objects = make([]fyne.CanvasObject, 0, len(r.view.lines))
	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	canvas.Refresh(r.view)
}

func (r *wireframeRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *wireframeRenderer) Destroy() {}
