package drawable

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Colour is an RGB colour with an alpha channel.
type Colour struct {
	colorful.Color
	A float64
}

// White is fully opaque white, the default tint of a Drawable.
var White = Colour{Color: colorful.Color{R: 1, G: 1, B: 1}, A: 1}

// RGBA builds a Colour from channels in [0,1].
func RGBA(r, g, b, a float64) Colour {
	return Colour{Color: colorful.Color{R: r, G: g, B: b}, A: a}
}

// Lerp blends component-wise towards to.
func (c Colour) Lerp(to Colour, t float64) Colour {
	return Colour{Color: c.Color.BlendRgb(to.Color, t), A: lerp(c.A, to.A, t)}
}

type valueKind int

const (
	scalarKind valueKind = iota
	vectorKind
	colourKind
)

// Value holds one of a scalar, a 2-vector or a Colour. The kind is fixed at
// construction and decides how the value interpolates.
type Value struct {
	kind   valueKind
	scalar float64
	vector mgl64.Vec2
	colour Colour
}

// ScalarValue wraps a float.
func ScalarValue(f float64) Value {
	return Value{kind: scalarKind, scalar: f}
}

// VectorValue wraps a 2-vector.
func VectorValue(v mgl64.Vec2) Value {
	return Value{kind: vectorKind, vector: v}
}

// ColourValue wraps a Colour.
func ColourValue(c Colour) Value {
	return Value{kind: colourKind, colour: c}
}

// Scalar returns the wrapped float, or zero for other kinds.
func (v Value) Scalar() float64 { return v.scalar }

// Vector returns the wrapped vector, or the zero vector for other kinds.
func (v Value) Vector() mgl64.Vec2 { return v.vector }

// Colour returns the wrapped colour, or the zero colour for other kinds.
func (v Value) Colour() Colour { return v.colour }

// Equal compares exactly, component by component.
func (v Value) Equal(o Value) bool {
	return v == o
}

// Interpolate returns the value a fraction t of the way towards to. Both
// values must be of the same kind.
func (v Value) Interpolate(to Value, t float64) Value {
	if v.kind != to.kind {
		panic(fmt.Sprintf("drawable: interpolating %s towards %s", v.kind, to.kind))
	}

	switch v.kind {
	case vectorKind:
		return VectorValue(v.vector.Add(to.vector.Sub(v.vector).Mul(t)))
	case colourKind:
		return ColourValue(v.colour.Lerp(to.colour, t))
	default:
		return ScalarValue(lerp(v.scalar, to.scalar, t))
	}
}

func (v Value) String() string {
	switch v.kind {
	case vectorKind:
		return fmt.Sprintf("(%g, %g)", v.vector.X(), v.vector.Y())
	case colourKind:
		return fmt.Sprintf("%s@%g", v.colour.Clamped().Hex(), v.colour.A)
	default:
		return fmt.Sprintf("%g", v.scalar)
	}
}

func (k valueKind) String() string {
	switch k {
	case vectorKind:
		return "vector"
	case colourKind:
		return "colour"
	default:
		return "scalar"
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
