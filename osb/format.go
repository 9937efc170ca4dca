// Package osb serializes storyboards into the renderer script format.
package osb

import (
	"math"
	"strconv"
)

// NumberFormat controls how non integer values are written.
type NumberFormat struct {
	// Decimals is the number of digits kept after decimal point, trailing
	// zeroes are dropped.
	Decimals int
}

// DefaultNumberFormat keeps enough precision for sub-pixel positions.
var DefaultNumberFormat = NumberFormat{Decimals: 4}

// Float formats v rounded to configured decimals.
func (nf NumberFormat) Float(v float64) string {
	d := max(nf.Decimals, 0)
	p := math.Pow10(d)
	r := math.Round(v*p) / p
	if r == 0 {
		// no negative zero
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Channel formats normalized color channel as 0-255 integer.
func (nf NumberFormat) Channel(v float64) string {
	c := int(math.Round(v * 255))
	return strconv.Itoa(max(0, min(255, c)))
}
