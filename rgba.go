package colorformats

import (
	"fmt"

	"github.com/kovidgoyal/colorformats/colorconv"
	"github.com/kovidgoyal/colorformats/types"
)

// Rgba is linear light RGB with straight (not premultiplied) alpha, 8 bits
// per channel.
type Rgba struct {
	R, G, B, A uint8
}

// Rgba64 is linear light RGB with straight alpha, 16 bits per channel.
type Rgba64 struct {
	R, G, B, A uint16
}

// RgbaF is linear light RGB with straight alpha. Unlike the other float
// formats its channels are always clamped to [0,1], which is why they can
// only be set via NewRgbaF.
type RgbaF struct {
	r, g, b, a float32
}

// NewRgba returns a linear light Rgba with straight alpha.
func NewRgba(r, g, b, a uint8) Rgba { return Rgba{r, g, b, a} }

// NewRgba64 returns a linear light Rgba64 with straight alpha.
func NewRgba64(r, g, b, a uint16) Rgba64 { return Rgba64{r, g, b, a} }

func clampF(x float32) float32 { return float32(colorconv.Clamp01(f64(x))) }

// NewRgbaF clamps every channel into [0,1], NaN becomes 0.
func NewRgbaF(r, g, b, a float32) RgbaF {
	return RgbaF{clampF(r), clampF(g), clampF(b), clampF(a)}
}

func (c RgbaF) R() float32 { return c.r }
func (c RgbaF) G() float32 { return c.g }
func (c RgbaF) B() float32 { return c.b }
func (c RgbaF) A() float32 { return c.a }

func (c Rgba) Format() types.Format             { return types.RGBA }
func (c Rgba) ChannelCount() int                { return types.RGBA.ChannelCount() }
func (c Rgba) BytesPerPixel() int               { return types.RGBA.BytesPerPixel() }
func (c Rgba) AppendBytes(dst []byte) []byte    { return append(dst, c.R, c.G, c.B, c.A) }
func (c Rgba) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Rgba) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Rgba) String() string                   { return fmt.Sprintf("Rgba{%d %d %d %d}", c.R, c.G, c.B, c.A) }
func (c Rgba) sealed()                          {}

func (c Rgba64) Format() types.Format             { return types.RGBA64 }
func (c Rgba64) ChannelCount() int                { return types.RGBA64.ChannelCount() }
func (c Rgba64) BytesPerPixel() int               { return types.RGBA64.BytesPerPixel() }
func (c Rgba64) AppendBytes(dst []byte) []byte    { return appendUint16(dst, c.R, c.G, c.B, c.A) }
func (c Rgba64) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Rgba64) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Rgba64) String() string                   { return fmt.Sprintf("Rgba64{%d %d %d %d}", c.R, c.G, c.B, c.A) }
func (c Rgba64) sealed()                          {}

func (c RgbaF) Format() types.Format             { return types.RGBAF }
func (c RgbaF) ChannelCount() int                { return types.RGBAF.ChannelCount() }
func (c RgbaF) BytesPerPixel() int               { return types.RGBAF.BytesPerPixel() }
func (c RgbaF) AppendBytes(dst []byte) []byte    { return appendFloat32(dst, c.r, c.g, c.b, c.a) }
func (c RgbaF) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c RgbaF) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c RgbaF) String() string                   { return fmt.Sprintf("RgbaF{%g %g %g %g}", c.r, c.g, c.b, c.a) }
func (c RgbaF) sealed()                          {}

// RgbaFromBytes decodes the 4 byte native encoding of an Rgba. Any other
// length returns a *LengthError.
func RgbaFromBytes(b []byte) (Rgba, error) {
	if err := checkLength(types.RGBA, b); err != nil {
		return Rgba{}, err
	}
	return Rgba{b[0], b[1], b[2], b[3]}, nil
}

// Rgba64FromBytes decodes the 8 byte native encoding of an Rgba64. Any other
// length returns a *LengthError.
func Rgba64FromBytes(b []byte) (Rgba64, error) {
	if err := checkLength(types.RGBA64, b); err != nil {
		return Rgba64{}, err
	}
	return Rgba64{getUint16(b, 0), getUint16(b, 1), getUint16(b, 2), getUint16(b, 3)}, nil
}

// RgbaFFromBytes decodes and clamps, so encoded values outside [0,1] do not
// survive a round trip.
func RgbaFFromBytes(b []byte) (RgbaF, error) {
	if err := checkLength(types.RGBAF, b); err != nil {
		return RgbaF{}, err
	}
	return NewRgbaF(getFloat32(b, 0), getFloat32(b, 1), getFloat32(b, 2), getFloat32(b, 3)), nil
}

func (c Rgba) linear() (r, g, b float64) {
	return unit8(c.R), unit8(c.G), unit8(c.B)
}

func (c Rgba64) linear() (r, g, b float64) {
	return unit16(c.R), unit16(c.G), unit16(c.B)
}

func (c RgbaF) linear() (r, g, b float64) {
	return f64(c.r), f64(c.g), f64(c.b)
}

// Rgba conversions, alpha is dropped by targets that have none

func (c Rgba) ToGray8() Gray8   { return gray8FromLinear(c.linear()) }
func (c Rgba) ToGray16() Gray16 { return gray16FromLinear(c.linear()) }
func (c Rgba) ToGrayF() GrayF   { return grayFFromLinear(c.linear()) }
func (c Rgba) ToRgb() Rgb       { return Rgb{c.R, c.G, c.B} }
func (c Rgba) ToRgba64() Rgba64 {
	r, g, b := c.linear()
	return rgba64FromLinear(r, g, b, unit8(c.A))
}
func (c Rgba) ToRgbaF() RgbaF {
	r, g, b := c.linear()
	return rgbaFFromLinear(r, g, b, unit8(c.A))
}

// Rgba64 conversions

func (c Rgba64) ToGray16() Gray16 { return gray16FromLinear(c.linear()) }
func (c Rgba64) ToGrayF() GrayF   { return grayFFromLinear(c.linear()) }
func (c Rgba64) ToRgb48() Rgb48   { return Rgb48{c.R, c.G, c.B} }
func (c Rgba64) ToRgba() Rgba {
	r, g, b := c.linear()
	return rgbaFromLinear(r, g, b, unit16(c.A))
}
func (c Rgba64) ToRgbF() RgbF { return rgbFFromLinear(c.linear()) }
func (c Rgba64) ToRgbaF() RgbaF {
	r, g, b := c.linear()
	return rgbaFFromLinear(r, g, b, unit16(c.A))
}

// RgbaF conversions

func (c RgbaF) ToGrayF() GrayF { return grayFFromLinear(c.linear()) }
func (c RgbaF) ToRgb() Rgb     { return rgbFromLinear(c.linear()) }
func (c RgbaF) ToRgba() Rgba {
	r, g, b := c.linear()
	return rgbaFromLinear(r, g, b, f64(c.a))
}
func (c RgbaF) ToRgba64() Rgba64 {
	r, g, b := c.linear()
	return rgba64FromLinear(r, g, b, f64(c.a))
}
func (c RgbaF) ToRgbF() RgbF   { return RgbF{c.r, c.g, c.b} }
func (c RgbaF) ToSrgbF() SrgbF { return srgbFFromLinear(c.linear()) }
