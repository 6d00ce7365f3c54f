package matrix

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, rows [][]float64) Matrix {
	t.Helper()
	m, err := New(rows)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m
}

func TestNewRejectsInvalidShapes(t *testing.T) {
	cases := map[string][][]float64{
		"empty":      {},
		"empty row":  {{}},
		"ragged":     {{1, 2}, {3}},
		"ragged end": {{1}, {2}, {3, 4}},
	}
	for name, rows := range cases {
		if _, err := New(rows); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%s: expected ErrInvalidShape, got %v", name, err)
		}
	}
}

func TestNewCopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m := mustNew(t, rows)
	rows[0][0] = 99

	if m.At(0, 0) != 1 {
		t.Errorf("New failed: matrix shares caller data, got %v", m.At(0, 0))
	}
}

func TestZero(t *testing.T) {
	m := Zero(2, 3)
	if r, c := m.Dims(); r != 2 || c != 3 {
		t.Fatalf("Zero failed: expected 2x3, got %dx%d", r, c)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if m.At(i, j) != 0 {
				t.Errorf("Zero failed: element (%d,%d) is %v", i, j, m.At(i, j))
			}
		}
	}
}

func TestZeroPanicsOnInvalidDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Zero(0, 3) did not panic")
		}
	}()
	Zero(0, 3)
}

func TestIdentity(t *testing.T) {
	m := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := 0.0
			if i == j {
				expected = 1
			}
			if m.At(i, j) != expected {
				t.Errorf("Identity failed at (%d,%d): expected %v, got %v", i, j, expected, m.At(i, j))
			}
		}
	}
}

func TestMultiplyShape(t *testing.T) {
	a := Zero(2, 3)
	b := Zero(3, 5)

	product, err := Multiply(a, b)
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	if r, c := product.Dims(); r != 2 || c != 5 {
		t.Errorf("Multiply failed: expected 2x5, got %dx%d", r, c)
	}
}

func TestMultiplyValues(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	expected := mustNew(t, [][]float64{{58, 64}, {139, 154}})

	product, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	if !Equal(product, expected) {
		t.Errorf("Multiply failed: expected\n%v\ngot\n%v", expected, product)
	}
}

func TestMultiplyLeavesOperandsUntouched(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{0, 1}, {1, 0}})
	aCopy := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	bCopy := mustNew(t, [][]float64{{0, 1}, {1, 0}})

	if _, err := Multiply(a, b); err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	if !Equal(a, aCopy) || !Equal(b, bCopy) {
		t.Error("Multiply modified its operands")
	}
}

func TestMultiplyIncompatible(t *testing.T) {
	shapes := [][4]int{{2, 3, 2, 3}, {1, 4, 1, 4}, {4, 4, 3, 4}, {1, 1, 2, 1}}
	for _, s := range shapes {
		_, err := Multiply(Zero(s[0], s[1]), Zero(s[2], s[3]))
		if !errors.Is(err, ErrIncompatibleDimensions) {
			t.Errorf("%dx%d * %dx%d: expected ErrIncompatibleDimensions, got %v", s[0], s[1], s[2], s[3], err)
		}
	}
}

func TestMultiplyByIdentity(t *testing.T) {
	a := mustNew(t, [][]float64{{1, -2, 3.5}, {0.25, 5, 6}})

	right, err := Multiply(a, Identity(3))
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	left, err := Multiply(Identity(2), a)
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}

	if !Equal(right, a) {
		t.Errorf("A x I failed: expected\n%v\ngot\n%v", a, right)
	}
	if !Equal(left, a) {
		t.Errorf("I x A failed: expected\n%v\ngot\n%v", a, left)
	}
}

func TestTranspose(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	expected := mustNew(t, [][]float64{{1, 4}, {2, 5}, {3, 6}})

	transposed := Transpose(a)
	if !Equal(transposed, expected) {
		t.Errorf("Transpose failed: expected\n%v\ngot\n%v", expected, transposed)
	}
	if !Equal(transposed.T(), a) {
		t.Errorf("Transpose twice failed: expected\n%v\ngot\n%v", a, transposed.T())
	}
}

func TestTransposeRowVector(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3, 1}})
	transposed := a.T()

	if r, c := transposed.Dims(); r != 4 || c != 1 {
		t.Fatalf("Transpose failed: expected 4x1, got %dx%d", r, c)
	}
	if !Equal(transposed.T(), a) {
		t.Error("Transpose twice did not return the original row vector")
	}
}

func TestRowIsCopy(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	row := a.Row(1)
	row[0] = 42

	if a.At(1, 0) != 3 {
		t.Errorf("Row failed: matrix modified through returned row, got %v", a.At(1, 0))
	}
}

func TestEqualApprox(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{1 + 1e-12, 2 - 1e-12}})

	if Equal(a, b) {
		t.Error("Equal failed: expected inexact matrices to differ")
	}
	if !EqualApprox(a, b, 1e-10) {
		t.Error("EqualApprox failed: expected matrices within tolerance")
	}
	if EqualApprox(a, Zero(2, 1), 1e-10) {
		t.Error("EqualApprox failed: matrices of different shape compared equal")
	}
}

func TestString(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 0.5}, {-2, 0}})
	expected := "       1    0.500\n      -2        0"

	if a.String() != expected {
		t.Errorf("String failed: expected %q, got %q", expected, a.String())
	}
}
