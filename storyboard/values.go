package storyboard

import (
	"strconv"
)

// Value is a property value keyframed commands interpolate between.
type Value[V any] interface {
	comparable
	// Lerp returns value at progress p of the way from receiver to "to". p
	// is already eased.
	Lerp(to V, p float64) V
}

// Scalar is used by MoveX, MoveY, Rotate, Scale and Fade commands.
type Scalar float64

func (s Scalar) Lerp(to Scalar, p float64) Scalar {
	return s + (to-s)*Scalar(p)
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// Vector2 is used by Move and ScaleVec commands and for sprite positions.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Lerp(to Vector2, p float64) Vector2 {
	return Vector2{
		X: v.X + (to.X-v.X)*p,
		Y: v.Y + (to.Y-v.Y)*p,
	}
}

func (v Vector2) String() string {
	return "(" + strconv.FormatFloat(v.X, 'g', -1, 64) + ", " + strconv.FormatFloat(v.Y, 'g', -1, 64) + ")"
}

// Color keeps RGB channels normalized to [0, 1].
type Color struct {
	R, G, B float64
}

// ColorFromRGB converts 0-255 channel values.
func ColorFromRGB(r, g, b float64) Color {
	return Color{R: r / 255, G: g / 255, B: b / 255}
}

func (c Color) Lerp(to Color, p float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*p,
		G: c.G + (to.G-c.G)*p,
		B: c.B + (to.B-c.B)*p,
	}
}

func (c Color) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', 4, 64) }
	return "rgb(" + f(c.R) + ", " + f(c.G) + ", " + f(c.B) + ")"
}
