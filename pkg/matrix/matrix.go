// Package matrix provides an immutable rectangular matrix of float64 values.
//
// Matrices are values: every operation returns a new Matrix and leaves its
// operands untouched. Storage and products are delegated to gonum.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrIncompatibleDimensions is returned when an operation is not defined
	// for the shapes of its operands.
	ErrIncompatibleDimensions = errors.New("incompatible matrix dimensions")

	// ErrInvalidShape is returned when row data is empty or ragged.
	ErrInvalidShape = errors.New("invalid matrix shape")
)

// Matrix is a rows x cols matrix. The zero value is not usable; build one
// with New, Zero or Identity.
type Matrix struct {
	d *mat.Dense
}

// New creates a matrix from row data. Every row must have the same,
// non-zero length.
func New(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: no data", ErrInvalidShape)
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidShape, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return Matrix{d: mat.NewDense(len(rows), cols, data)}, nil
}

// Zero creates a zero-filled matrix. It panics if either dimension is not
// positive.
func Zero(rows, cols int) Matrix {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	return Matrix{d: mat.NewDense(rows, cols, nil)}
}

// Identity creates an n x n identity matrix.
func Identity(n int) Matrix {
	m := Zero(n, n)
	for i := 0; i < n; i++ {
		m.d.Set(i, i, 1)
	}
	return m
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (rows, cols int) {
	return m.d.Dims()
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	r, _ := m.d.Dims()
	return r
}

// Cols returns the number of columns.
func (m Matrix) Cols() int {
	_, c := m.d.Dims()
	return c
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) []float64 {
	return append([]float64(nil), m.d.RawRowView(i)...)
}

// Multiply returns a x b. It fails with ErrIncompatibleDimensions unless
// a has as many columns as b has rows.
func Multiply(a, b Matrix) (Matrix, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrIncompatibleDimensions, ar, ac, br, bc)
	}

	var out mat.Dense
	out.Mul(a.d, b.d)
	return Matrix{d: &out}, nil
}

// Mul is Multiply with m as the left operand.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	return Multiply(m, other)
}

// Transpose returns the transpose of m.
func Transpose(m Matrix) Matrix {
	return Matrix{d: mat.DenseCopyOf(m.d.T())}
}

// T is Transpose(m).
func (m Matrix) T() Matrix {
	return Transpose(m)
}

// Equal reports whether a and b have the same shape and elements.
func Equal(a, b Matrix) bool {
	if !sameShape(a, b) {
		return false
	}
	return mat.Equal(a.d, b.d)
}

// EqualApprox reports whether a and b have the same shape and all elements
// are within tol of each other.
func EqualApprox(a, b Matrix, tol float64) bool {
	if !sameShape(a, b) {
		return false
	}
	return mat.EqualApprox(a.d, b.d, tol)
}

func sameShape(a, b Matrix) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}

// String formats the matrix one row per line. Integral values are printed
// without a fractional part, everything else with three decimals.
func (m Matrix) String() string {
	rows, cols := m.Dims()
	var sb strings.Builder
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%8s", formatCell(m.At(i, j)))
		}
	}
	return sb.String()
}

func formatCell(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}
