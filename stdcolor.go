package colorformats

import (
	"image/color"
	"math"

	"github.com/kovidgoyal/colorformats/colorconv"
)

// RGBA implements color.Color. The value is rendered as gamma encoded sRGB
// with premultiplied alpha. Formats without alpha are opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	v := As[RgbaF](c)
	alpha := f64(v.a)
	q := func(x float32) uint32 {
		enc := math.Round(colorconv.Compress(f64(x)) * 0xffff)
		return uint32(math.Round(enc * alpha))
	}
	return q(v.r), q(v.g), q(v.b), uint32(math.Round(alpha * 0xffff))
}

// FromStdColor converts any color.Color into a linear RgbaF with straight
// alpha. Values that are already a Color are returned unchanged.
func FromStdColor(c color.Color) Color {
	if ans, ok := c.(Color); ok {
		return ans
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return New(RgbaF{})
	}
	fa := float64(a)
	lin := func(x uint32) float32 {
		return float32(colorconv.Expand(float64(x) / fa))
	}
	return New(NewRgbaF(lin(r), lin(g), lin(b), float32(fa/0xffff)))
}

func colorModel(c color.Color) color.Color {
	return FromStdColor(c)
}

// Model converts arbitrary colors into Color values.
var Model color.Model = color.ModelFunc(colorModel)

var _ color.Color = Color{}
