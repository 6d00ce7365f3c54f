package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/goobj/pkg/mesh"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory image surface
type Raster struct {
	img        *image.RGBA
	Background color.RGBA
	Foreground color.RGBA
	TextColor  color.RGBA
}

// NewRaster creates a white raster with black lines
func NewRaster(width, height int) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		Background: color.RGBA{255, 255, 255, 255},
		Foreground: color.RGBA{0, 0, 0, 255},
		TextColor:  color.RGBA{90, 90, 90, 255},
	}
	r.Clear()
	return r
}

// Image returns the underlying image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear fills the raster with the background color
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

// DrawLine rasterizes a segment, clipped to the image
func (r *Raster) DrawLine(s mesh.Segment) {
	bounds := r.img.Bounds()
	x1, y1, x2, y2, ok := clipLine(s.X1, s.Y1, s.X2, s.Y2,
		float64(bounds.Min.X), float64(bounds.Min.Y), float64(bounds.Max.X-1), float64(bounds.Max.Y-1))
	if !ok {
		return
	}
	drawLine(r.img, int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2)), r.Foreground)
}

// Caption writes text in the top left corner
func (r *Raster) Caption(text string) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.TextColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 6+basicfont.Face7x13.Ascent),
	}
	d.DrawString(text)
}

// WritePNG encodes the raster as PNG
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// clipLine clips a segment to the rectangle [minX,maxX]x[minY,maxY]
// (Liang-Barsky). It reports false when nothing of the segment is inside.
func clipLine(x1, y1, x2, y2, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	for _, v := range []float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}

	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x1 - minX, maxX - x1, y1 - minY, maxY - y1}

	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
