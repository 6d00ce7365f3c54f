package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/matrix"
)

// ErrInvalidRequest is returned by ParseRequest for malformed input
var ErrInvalidRequest = errors.New("invalid transform request")

// Request is one of Rotate, Translate, Scale or Reset. The set is closed;
// shells map their controls onto these values.
type Request interface {
	fmt.Stringer
	request()
}

// Rotate turns the model about Axis by Angle
type Rotate struct {
	Axis  Axis
	Angle Angle
}

// Translate moves the model along Axis by Distance
type Translate struct {
	Axis     Axis
	Distance float64
}

// Scale scales the model uniformly by Factor
type Scale struct {
	Factor float64
}

// Reset discards every transform applied so far
type Reset struct{}

func (Rotate) request()    {}
func (Translate) request() {}
func (Scale) request()     {}
func (Reset) request()     {}

// Matrix builds the rotation
func (r Rotate) Matrix() (matrix.Matrix, error) { return Rotation(r.Axis, r.Angle) }

// Matrix builds the translation
func (t Translate) Matrix() (matrix.Matrix, error) { return Translation(t.Axis, t.Distance) }

// Matrix builds the scaling
func (s Scale) Matrix() (matrix.Matrix, error) { return Scaling(s.Factor), nil }

func (r Rotate) String() string {
	return fmt.Sprintf("rotate:%v:%s", r.Axis, formatAmount(r.Angle.Degrees()))
}

func (t Translate) String() string {
	return fmt.Sprintf("translate:%v:%s", t.Axis, formatAmount(t.Distance))
}

func (s Scale) String() string {
	return "scale:" + formatAmount(s.Factor)
}

func (Reset) String() string { return "reset" }

// ScaleUp and ScaleDown are the two fixed zoom steps
var (
	ScaleUp   = Scale{Factor: FactorUp}
	ScaleDown = Scale{Factor: FactorDown}
)

// ParseRequest reads the textual form used on the command line:
//
//	rotate:<axis>[:<degrees>]
//	translate:<axis>[:<distance>]
//	scale:<factor>|up|down
//	reset
func ParseRequest(s string) (Request, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	kind := strings.ToLower(parts[0])
	args := parts[1:]

	switch kind {
	case "reset":
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: reset takes no arguments: %q", ErrInvalidRequest, s)
		}
		return Reset{}, nil

	case "rotate", "translate":
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("%w: expected %s:<axis>[:<amount>], got %q", ErrInvalidRequest, kind, s)
		}
		axis, err := ParseAxis(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		amount := DefaultRotationDegrees
		if kind == "translate" {
			amount = DefaultDistance
		}
		if len(args) == 2 {
			amount, err = strconv.ParseFloat(args[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad amount %q", ErrInvalidRequest, args[1])
			}
		}
		if kind == "rotate" {
			return Rotate{Axis: axis, Angle: Degrees(amount)}, nil
		}
		return Translate{Axis: axis, Distance: amount}, nil

	case "scale":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: expected scale:<factor>|up|down, got %q", ErrInvalidRequest, s)
		}
		switch strings.ToLower(args[0]) {
		case "up":
			return ScaleUp, nil
		case "down":
			return ScaleDown, nil
		}
		factor, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad factor %q", ErrInvalidRequest, args[0])
		}
		return Scale{Factor: factor}, nil
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, parts[0])
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
