package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	result := NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6))

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	result := NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3))

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Distance(t *testing.T) {
	distance := NewVector3(0, 0, 0).Distance(NewVector3(3, 4, 0))

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3MinMax(t *testing.T) {
	a := NewVector3(1, 5, -2)
	b := NewVector3(3, -1, 0)

	if min := a.Min(b); min != NewVector3(1, -1, -2) {
		t.Errorf("Min failed: got %v", min)
	}
	if max := a.Max(b); max != NewVector3(3, 5, 0) {
		t.Errorf("Max failed: got %v", max)
	}
}

func TestVector3ApproxEqual(t *testing.T) {
	a := NewVector3(1, 2, 3)
	if !a.ApproxEqual(NewVector3(1+1e-12, 2, 3-1e-12), 1e-10) {
		t.Error("ApproxEqual failed: expected vectors within tolerance")
	}
	if a.ApproxEqual(NewVector3(1.1, 2, 3), 1e-10) {
		t.Error("ApproxEqual failed: expected vectors to differ")
	}
}
