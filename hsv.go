package colorformats

import (
	"fmt"

	"github.com/kovidgoyal/colorformats/colorconv"
	"github.com/kovidgoyal/colorformats/types"
)

// Hsv is hue in degrees, saturation and value in [0,1], over linear RGB.
type Hsv struct {
	H, S, V float32
}

// Hsl is hue in degrees, saturation and lightness in [0,1], over linear RGB.
type Hsl struct {
	H, S, L float32
}

// NewHsv returns an Hsv with hue h in degrees.
func NewHsv(h, s, v float32) Hsv { return Hsv{h, s, v} }

// NewHsl returns an Hsl with hue h in degrees.
func NewHsl(h, s, l float32) Hsl { return Hsl{h, s, l} }

func (c Hsv) Format() types.Format             { return types.HSV }
func (c Hsv) ChannelCount() int                { return types.HSV.ChannelCount() }
func (c Hsv) BytesPerPixel() int               { return types.HSV.BytesPerPixel() }
func (c Hsv) AppendBytes(dst []byte) []byte    { return appendFloat32(dst, c.H, c.S, c.V) }
func (c Hsv) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Hsv) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Hsv) String() string                   { return fmt.Sprintf("Hsv{%g %g %g}", c.H, c.S, c.V) }
func (c Hsv) sealed()                          {}

func (c Hsl) Format() types.Format             { return types.HSL }
func (c Hsl) ChannelCount() int                { return types.HSL.ChannelCount() }
func (c Hsl) BytesPerPixel() int               { return types.HSL.BytesPerPixel() }
func (c Hsl) AppendBytes(dst []byte) []byte    { return appendFloat32(dst, c.H, c.S, c.L) }
func (c Hsl) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Hsl) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Hsl) String() string                   { return fmt.Sprintf("Hsl{%g %g %g}", c.H, c.S, c.L) }
func (c Hsl) sealed()                          {}

// HsvFromBytes decodes the 12 byte native encoding of an Hsv. Any other
// length returns a *LengthError.
func HsvFromBytes(b []byte) (Hsv, error) {
	if err := checkLength(types.HSV, b); err != nil {
		return Hsv{}, err
	}
	return Hsv{getFloat32(b, 0), getFloat32(b, 1), getFloat32(b, 2)}, nil
}

// HslFromBytes decodes the 12 byte native encoding of an Hsl. Any other
// length returns a *LengthError.
func HslFromBytes(b []byte) (Hsl, error) {
	if err := checkLength(types.HSL, b); err != nil {
		return Hsl{}, err
	}
	return Hsl{getFloat32(b, 0), getFloat32(b, 1), getFloat32(b, 2)}, nil
}

func (c Hsv) linear() (r, g, b float64) {
	return colorconv.HSVToRGB(f64(c.H), f64(c.S), f64(c.V))
}

func (c Hsl) linear() (r, g, b float64) {
	return colorconv.HSLToRGB(f64(c.H), f64(c.S), f64(c.L))
}

// Hsv conversions

func (c Hsv) ToRgb() Rgb     { return rgbFromLinear(c.linear()) }
func (c Hsv) ToSrgb() Srgb   { return srgbFromLinear(c.linear()) }
func (c Hsv) ToRgbF() RgbF   { return rgbFFromLinear(c.linear()) }
func (c Hsv) ToSrgbF() SrgbF { return srgbFFromLinear(c.linear()) }
func (c Hsv) ToHsl() Hsl {
	h, s, l := colorconv.HSVToHSL(f64(c.H), f64(c.S), f64(c.V))
	return Hsl{float32(h), float32(s), float32(l)}
}

// Hsl conversions

func (c Hsl) ToRgb() Rgb     { return rgbFromLinear(c.linear()) }
func (c Hsl) ToSrgb() Srgb   { return srgbFromLinear(c.linear()) }
func (c Hsl) ToRgbF() RgbF   { return rgbFFromLinear(c.linear()) }
func (c Hsl) ToSrgbF() SrgbF { return srgbFFromLinear(c.linear()) }
func (c Hsl) ToHsv() Hsv {
	h, s, v := colorconv.HSLToHSV(f64(c.H), f64(c.S), f64(c.L))
	return Hsv{float32(h), float32(s), float32(v)}
}
