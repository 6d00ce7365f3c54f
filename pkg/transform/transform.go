// Package transform builds the 4x4 matrices that move a model around and
// map it onto a drawing surface.
//
// Geometry is stored as row vectors that are multiplied on the left
// (p' = p x T), so translations live in the bottom row and composed
// transforms apply left to right.
package transform

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/goobj/pkg/matrix"
)

// Size is the dimension of every transform matrix: three axes plus the
// homogeneous component.
const Size = 4

// Defaults used when a request leaves its amount out
const (
	DefaultRotationDegrees = 15.0
	DefaultDistance        = 1.0
	FactorUp               = 1.25
	FactorDown             = 0.8
)

// Default viewport
const (
	DefaultViewWidth  = 800.0
	DefaultViewHeight = 600.0
	DefaultViewScale  = 100.0
)

// ErrUnknownAxis is returned for anything other than x, y or z.
var ErrUnknownAxis = errors.New("unknown axis")

// Axis is one of the three principal axes
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Valid reports whether a is X, Y or Z
func (a Axis) Valid() bool {
	return a >= X && a <= Z
}

// ParseAxis accepts "x", "y" or "z" in either case
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

// Angle is a rotation angle in radians. Use Degrees to convert at the
// boundary.
type Angle float64

// Radians returns r as an Angle
func Radians(r float64) Angle { return Angle(r) }

// Degrees converts d degrees to an Angle
func Degrees(d float64) Angle { return Angle(d * math.Pi / 180) }

// DefaultAngle is used by rotation requests that give no angle
var DefaultAngle = Degrees(DefaultRotationDegrees)

func (a Angle) Radians() float64 { return float64(a) }
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// Identity returns the 4x4 identity transform
func Identity() matrix.Matrix {
	return matrix.Identity(Size)
}

// rotationPlane maps each axis to the ordered pair of axes it rotates, so
// that a positive angle turns the first towards the second.
var rotationPlane = [3][2]int{
	X: {1, 2},
	Y: {2, 0},
	Z: {0, 1},
}

// Rotation returns a counter-clockwise rotation about axis when looking
// down the axis towards the origin.
func Rotation(axis Axis, angle Angle) (matrix.Matrix, error) {
	if !axis.Valid() {
		return matrix.Matrix{}, fmt.Errorf("rotation: %w: %v", ErrUnknownAxis, axis)
	}

	sin, cos := math.Sincos(angle.Radians())
	a, b := rotationPlane[axis][0], rotationPlane[axis][1]

	rows := identityRows()
	rows[a][a] = cos
	rows[a][b] = sin
	rows[b][a] = -sin
	rows[b][b] = cos
	return matrix.New(rows)
}

// Translation moves along axis by distance
func Translation(axis Axis, distance float64) (matrix.Matrix, error) {
	if !axis.Valid() {
		return matrix.Matrix{}, fmt.Errorf("translation: %w: %v", ErrUnknownAxis, axis)
	}

	rows := identityRows()
	rows[Size-1][axis] = distance
	return matrix.New(rows)
}

// Scaling scales all three axes uniformly. A factor of 0 is accepted and
// collapses the model onto the origin.
func Scaling(factor float64) matrix.Matrix {
	rows := identityRows()
	for i := 0; i < Size-1; i++ {
		rows[i][i] = factor
	}
	m, _ := matrix.New(rows)
	return m
}

// Viewport maps model space onto a drawing surface whose origin is the top
// left corner: it scales by scale, flips the vertical axis and moves the
// origin to the surface center.
func Viewport(width, height, scale float64) matrix.Matrix {
	m, _ := matrix.New([][]float64{
		{scale, 0, 0, 0},
		{0, -scale, 0, 0},
		{0, 0, 1, 0},
		{width / 2, height / 2, 0, 1},
	})
	return m
}

// Compose applies next in the frame of current, returning current x next.
func Compose(current, next matrix.Matrix) (matrix.Matrix, error) {
	return matrix.Multiply(current, next)
}

func identityRows() [][]float64 {
	rows := make([][]float64, Size)
	for i := range rows {
		rows[i] = make([]float64, Size)
		rows[i][i] = 1
	}
	return rows
}
