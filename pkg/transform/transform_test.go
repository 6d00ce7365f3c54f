package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goobj/pkg/matrix"
)

const tolerance = 1e-10

// fromColumnMajor converts a column-vector transform from mgl64 into the
// row-vector form used here.
func fromColumnMajor(t *testing.T, m mgl64.Mat4) matrix.Matrix {
	t.Helper()
	m = m.Transpose()
	rows := make([][]float64, 4)
	for i := range rows {
		rows[i] = make([]float64, 4)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	out, err := matrix.New(rows)
	if err != nil {
		t.Fatalf("matrix.New failed: %v", err)
	}
	return out
}

func mustRotation(t *testing.T, axis Axis, angle Angle) matrix.Matrix {
	t.Helper()
	m, err := Rotation(axis, angle)
	if err != nil {
		t.Fatalf("Rotation failed: %v", err)
	}
	return m
}

func apply(t *testing.T, m matrix.Matrix, x, y, z float64) [3]float64 {
	t.Helper()
	p, err := matrix.New([][]float64{{x, y, z, 1}})
	if err != nil {
		t.Fatalf("matrix.New failed: %v", err)
	}
	out, err := matrix.Multiply(p, m)
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	return [3]float64{out.At(0, 0), out.At(0, 1), out.At(0, 2)}
}

func near(a, b [3]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	if !matrix.Equal(Identity(), matrix.Identity(4)) {
		t.Errorf("Identity failed: got\n%v", Identity())
	}
}

func TestRotationByZeroIsIdentity(t *testing.T) {
	for _, axis := range []Axis{X, Y, Z} {
		for _, angle := range []Angle{Radians(0), Degrees(0)} {
			if m := mustRotation(t, axis, angle); !matrix.Equal(m, Identity()) {
				t.Errorf("Rotation(%v, 0) failed: expected identity, got\n%v", axis, m)
			}
		}
	}
}

func TestRotationMatchesMathgl(t *testing.T) {
	oracles := map[Axis]func(float64) mgl64.Mat4{
		X: mgl64.HomogRotate3DX,
		Y: mgl64.HomogRotate3DY,
		Z: mgl64.HomogRotate3DZ,
	}
	for axis, oracle := range oracles {
		for _, degrees := range []float64{15, 30, 90, -45, 270} {
			got := mustRotation(t, axis, Degrees(degrees))
			expected := fromColumnMajor(t, oracle(mgl64.DegToRad(degrees)))
			if !matrix.EqualApprox(got, expected, tolerance) {
				t.Errorf("Rotation(%v, %v deg) failed: expected\n%v\ngot\n%v", axis, degrees, expected, got)
			}
		}
	}
}

func TestRotationIsRightHanded(t *testing.T) {
	cases := []struct {
		axis     Axis
		in, want [3]float64
	}{
		{X, [3]float64{0, 1, 0}, [3]float64{0, 0, 1}},
		{Y, [3]float64{0, 0, 1}, [3]float64{1, 0, 0}},
		{Z, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}},
	}
	for _, c := range cases {
		got := apply(t, mustRotation(t, c.axis, Degrees(90)), c.in[0], c.in[1], c.in[2])
		if !near(got, c.want) {
			t.Errorf("90 deg about %v failed: expected %v, got %v", c.axis, c.want, got)
		}
	}
}

func TestRotationInverse(t *testing.T) {
	for _, axis := range []Axis{X, Y, Z} {
		theta := Radians(0.7)
		forward := mustRotation(t, axis, theta)
		back := mustRotation(t, axis, -theta)

		product, err := Compose(forward, back)
		if err != nil {
			t.Fatalf("Compose failed: %v", err)
		}
		if !matrix.EqualApprox(product, Identity(), tolerance) {
			t.Errorf("rotate and unrotate about %v failed: got\n%v", axis, product)
		}
	}
}

func TestRotationUnknownAxis(t *testing.T) {
	if _, err := Rotation(Axis(7), DefaultAngle); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("expected ErrUnknownAxis, got %v", err)
	}
}

func TestAngleConversion(t *testing.T) {
	if math.Abs(Degrees(180).Radians()-math.Pi) > tolerance {
		t.Errorf("Degrees failed: expected pi, got %v", Degrees(180).Radians())
	}
	if math.Abs(Radians(math.Pi/2).Degrees()-90) > tolerance {
		t.Errorf("Radians failed: expected 90, got %v", Radians(math.Pi/2).Degrees())
	}
}

func TestTranslation(t *testing.T) {
	cases := []struct {
		axis     Axis
		distance float64
		oracle   mgl64.Mat4
	}{
		{X, 2.5, mgl64.Translate3D(2.5, 0, 0)},
		{Y, -1, mgl64.Translate3D(0, -1, 0)},
		{Z, 7, mgl64.Translate3D(0, 0, 7)},
	}
	for _, c := range cases {
		got, err := Translation(c.axis, c.distance)
		if err != nil {
			t.Fatalf("Translation failed: %v", err)
		}
		expected := fromColumnMajor(t, c.oracle)
		if !matrix.Equal(got, expected) {
			t.Errorf("Translation(%v, %v) failed: expected\n%v\ngot\n%v", c.axis, c.distance, expected, got)
		}
	}

	if _, err := Translation(Axis(-1), 1); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("expected ErrUnknownAxis, got %v", err)
	}
}

func TestScaling(t *testing.T) {
	got := Scaling(3)
	expected := fromColumnMajor(t, mgl64.Scale3D(3, 3, 3))
	if !matrix.Equal(got, expected) {
		t.Errorf("Scaling failed: expected\n%v\ngot\n%v", expected, got)
	}
	if got.At(3, 3) != 1 {
		t.Errorf("Scaling failed: homogeneous entry is %v", got.At(3, 3))
	}
}

func TestScalingByZeroCollapses(t *testing.T) {
	got := apply(t, Scaling(0), 3, -4, 5)
	if !near(got, [3]float64{0, 0, 0}) {
		t.Errorf("Scaling(0) failed: expected origin, got %v", got)
	}
}

func TestViewport(t *testing.T) {
	view := Viewport(800, 600, 100)

	if got := apply(t, view, 0, 0, 0); !near(got, [3]float64{400, 300, 0}) {
		t.Errorf("Viewport failed: origin should map to center, got %v", got)
	}
	if got := apply(t, view, 1, 1, 2); !near(got, [3]float64{500, 200, 2}) {
		t.Errorf("Viewport failed: expected (500, 200, 2), got %v", got)
	}
}

func TestAxisParse(t *testing.T) {
	cases := map[string]Axis{"x": X, "Y": Y, " z ": Z}
	for in, want := range cases {
		axis, err := ParseAxis(in)
		if err != nil {
			t.Errorf("ParseAxis(%q) failed: %v", in, err)
			continue
		}
		if axis != want {
			t.Errorf("ParseAxis(%q) failed: expected %v, got %v", in, want, axis)
		}
	}
	if _, err := ParseAxis("w"); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("expected ErrUnknownAxis, got %v", err)
	}
	if Axis(5).Valid() {
		t.Error("Valid failed: Axis(5) should be invalid")
	}
}
