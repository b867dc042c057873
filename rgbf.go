package colorformats

import (
	"fmt"

	"github.com/kovidgoyal/colorformats/colorconv"
	"github.com/kovidgoyal/colorformats/types"
)

// RgbF is linear light RGB, nominally in [0,1]. Channels are not clamped so
// out of gamut values survive float to float conversions.
type RgbF struct {
	R, G, B float32
}

// SrgbF is gamma encoded RGB, nominally in [0,1], not clamped.
type SrgbF struct {
	R, G, B float32
}

// NewRgbF returns a linear light RgbF. Channels are not clamped.
func NewRgbF(r, g, b float32) RgbF { return RgbF{r, g, b} }

// NewSrgbF returns a gamma encoded SrgbF. Channels are not clamped.
func NewSrgbF(r, g, b float32) SrgbF { return SrgbF{r, g, b} }

func (c RgbF) Format() types.Format             { return types.RGBF }
func (c RgbF) ChannelCount() int                { return types.RGBF.ChannelCount() }
func (c RgbF) BytesPerPixel() int               { return types.RGBF.BytesPerPixel() }
func (c RgbF) AppendBytes(dst []byte) []byte    { return appendFloat32(dst, c.R, c.G, c.B) }
func (c RgbF) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c RgbF) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c RgbF) String() string                   { return fmt.Sprintf("RgbF{%g %g %g}", c.R, c.G, c.B) }
func (c RgbF) sealed()                          {}

func (c SrgbF) Format() types.Format             { return types.SRGBF }
func (c SrgbF) ChannelCount() int                { return types.SRGBF.ChannelCount() }
func (c SrgbF) BytesPerPixel() int               { return types.SRGBF.BytesPerPixel() }
func (c SrgbF) AppendBytes(dst []byte) []byte    { return appendFloat32(dst, c.R, c.G, c.B) }
func (c SrgbF) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c SrgbF) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c SrgbF) String() string                   { return fmt.Sprintf("SrgbF{%g %g %g}", c.R, c.G, c.B) }
func (c SrgbF) sealed()                          {}

// RgbFFromBytes decodes the 12 byte native encoding of an RgbF. Any other
// length returns a *LengthError.
func RgbFFromBytes(b []byte) (RgbF, error) {
	if err := checkLength(types.RGBF, b); err != nil {
		return RgbF{}, err
	}
	return RgbF{getFloat32(b, 0), getFloat32(b, 1), getFloat32(b, 2)}, nil
}

// SrgbFFromBytes decodes the 12 byte native encoding of an SrgbF. Any other
// length returns a *LengthError.
func SrgbFFromBytes(b []byte) (SrgbF, error) {
	if err := checkLength(types.SRGBF, b); err != nil {
		return SrgbF{}, err
	}
	return SrgbF{getFloat32(b, 0), getFloat32(b, 1), getFloat32(b, 2)}, nil
}

func (c RgbF) linear() (r, g, b float64) {
	return f64(c.R), f64(c.G), f64(c.B)
}

func (c SrgbF) linear() (r, g, b float64) {
	return colorconv.Expand(f64(c.R)), colorconv.Expand(f64(c.G)), colorconv.Expand(f64(c.B))
}

// RgbF conversions, RgbF converts directly to every other format

func (c RgbF) ToGray8() Gray8   { return gray8FromLinear(c.linear()) }
func (c RgbF) ToGray16() Gray16 { return gray16FromLinear(c.linear()) }
func (c RgbF) ToGrayF() GrayF   { return grayFFromLinear(c.linear()) }
func (c RgbF) ToRgb() Rgb       { return rgbFromLinear(c.linear()) }
func (c RgbF) ToSrgb() Srgb     { return srgbFromLinear(c.linear()) }
func (c RgbF) ToRgb48() Rgb48   { return rgb48FromLinear(c.linear()) }
func (c RgbF) ToRgba() Rgba     { r, g, b := c.linear(); return rgbaFromLinear(r, g, b, 1) }
func (c RgbF) ToRgba64() Rgba64 { r, g, b := c.linear(); return rgba64FromLinear(r, g, b, 1) }
func (c RgbF) ToSrgbF() SrgbF   { return srgbFFromLinear(c.linear()) }
func (c RgbF) ToRgbaF() RgbaF   { return NewRgbaF(c.R, c.G, c.B, 1) }
func (c RgbF) ToHsv() Hsv       { return hsvFromLinear(c.linear()) }
func (c RgbF) ToHsl() Hsl       { return hslFromLinear(c.linear()) }
func (c RgbF) ToCieXyz() CieXyz { return xyzFromLinear(c.linear()) }
func (c RgbF) ToCieLab() CieLab { return labFromLinear(c.linear()) }

// SrgbF conversions

func (c SrgbF) ToGrayF() GrayF   { return grayFFromLinear(c.linear()) }
func (c SrgbF) ToRgb() Rgb       { return rgbFromLinear(c.linear()) }
func (c SrgbF) ToSrgb() Srgb     { return Srgb{to8(f64(c.R)), to8(f64(c.G)), to8(f64(c.B))} }
func (c SrgbF) ToRgbF() RgbF     { return rgbFFromLinear(c.linear()) }
func (c SrgbF) ToRgba() Rgba     { r, g, b := c.linear(); return rgbaFromLinear(r, g, b, 1) }
func (c SrgbF) ToHsv() Hsv       { return hsvFromLinear(c.linear()) }
func (c SrgbF) ToHsl() Hsl       { return hslFromLinear(c.linear()) }
func (c SrgbF) ToCieXyz() CieXyz { return xyzFromLinear(c.linear()) }
func (c SrgbF) ToCieLab() CieLab { return labFromLinear(c.linear()) }
