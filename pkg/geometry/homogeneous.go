package geometry

import (
	"fmt"

	"github.com/philipparndt/goobj/pkg/matrix"
)

// Point is an affine position held as a 1x4 row matrix whose homogeneous
// component is always 1.
type Point struct {
	m matrix.Matrix
}

// Vector is a direction held as a 1x4 row matrix whose homogeneous
// component is always 0, so translations leave it unchanged.
type Vector struct {
	m matrix.Matrix
}

// NewPoint creates a point at (x, y, z)
func NewPoint(x, y, z float64) Point {
	return Point{m: homogeneous(x, y, z, 1)}
}

// NewVector creates a direction (x, y, z)
func NewVector(x, y, z float64) Vector {
	return Vector{m: homogeneous(x, y, z, 0)}
}

func homogeneous(x, y, z, w float64) matrix.Matrix {
	m, err := matrix.New([][]float64{{x, y, z, w}})
	if err != nil {
		panic(err)
	}
	return m
}

func (p Point) X() float64 { return p.m.At(0, 0) }
func (p Point) Y() float64 { return p.m.At(0, 1) }
func (p Point) Z() float64 { return p.m.At(0, 2) }

// W is always 1
func (p Point) W() float64 { return p.m.At(0, 3) }

// Matrix returns the 1x4 row form of the point
func (p Point) Matrix() matrix.Matrix { return p.m }

// Vector3 returns the cartesian coordinates
func (p Point) Vector3() Vector3 { return NewVector3(p.X(), p.Y(), p.Z()) }

// Sub returns the direction from other to p
func (p Point) Sub(other Point) Vector {
	return NewVector(p.X()-other.X(), p.Y()-other.Y(), p.Z()-other.Z())
}

// Add moves p along v
func (p Point) Add(v Vector) Point {
	return NewPoint(p.X()+v.X(), p.Y()+v.Y(), p.Z()+v.Z())
}

// Transform returns p x t. The homogeneous component of the result is
// reset to 1.
func (p Point) Transform(t matrix.Matrix) (Point, error) {
	x, y, z, err := applyRow(p.m, t)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(x, y, z), nil
}

// ViewCoordinates computes p x current x view and returns the x-y-z part,
// discarding the homogeneous component. This is the single step that turns
// model-space geometry into drawing-surface coordinates.
func (p Point) ViewCoordinates(current, view matrix.Matrix) (Vector3, error) {
	transformed, err := matrix.Multiply(p.m, current)
	if err != nil {
		return Vector3{}, fmt.Errorf("apply transform: %w", err)
	}
	projected, err := matrix.Multiply(transformed, view)
	if err != nil {
		return Vector3{}, fmt.Errorf("apply view: %w", err)
	}
	if projected.Cols() < 3 {
		return Vector3{}, fmt.Errorf("%w: projection has %d columns", matrix.ErrIncompatibleDimensions, projected.Cols())
	}
	return NewVector3(projected.At(0, 0), projected.At(0, 1), projected.At(0, 2)), nil
}

// ViewCoordinates is p.ViewCoordinates(current, view)
func ViewCoordinates(p Point, current, view matrix.Matrix) (Vector3, error) {
	return p.ViewCoordinates(current, view)
}

func (v Vector) X() float64 { return v.m.At(0, 0) }
func (v Vector) Y() float64 { return v.m.At(0, 1) }
func (v Vector) Z() float64 { return v.m.At(0, 2) }

// W is always 0
func (v Vector) W() float64 { return v.m.At(0, 3) }

// Matrix returns the 1x4 row form of the vector
func (v Vector) Matrix() matrix.Matrix { return v.m }

// Vector3 returns the cartesian components
func (v Vector) Vector3() Vector3 { return NewVector3(v.X(), v.Y(), v.Z()) }

// Length returns the Euclidean norm
func (v Vector) Length() float64 { return v.Vector3().Length() }

// Transform returns v x t with the homogeneous component kept at 0.
func (v Vector) Transform(t matrix.Matrix) (Vector, error) {
	x, y, z, err := applyRow(v.m, t)
	if err != nil {
		return Vector{}, err
	}
	return NewVector(x, y, z), nil
}

func applyRow(row, t matrix.Matrix) (x, y, z float64, err error) {
	if r, c := t.Dims(); r != 4 || c != 4 {
		return 0, 0, 0, fmt.Errorf("%w: expected a 4x4 transform, got %dx%d", matrix.ErrIncompatibleDimensions, r, c)
	}
	out, err := matrix.Multiply(row, t)
	if err != nil {
		return 0, 0, 0, err
	}
	return out.At(0, 0), out.At(0, 1), out.At(0, 2), nil
}
