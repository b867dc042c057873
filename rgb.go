package colorformats

import (
	"fmt"

	"github.com/kovidgoyal/colorformats/colorconv"
	"github.com/kovidgoyal/colorformats/types"
)

// Rgb is linear light RGB with 8 bits per channel. It is the zero value of
// Color.
type Rgb struct {
	R, G, B uint8
}

// Srgb is gamma encoded RGB with 8 bits per channel.
type Srgb struct {
	R, G, B uint8
}

// Rgb48 is linear light RGB with 16 bits per channel.
type Rgb48 struct {
	R, G, B uint16
}

// NewRgb returns a linear light Rgb.
func NewRgb(r, g, b uint8) Rgb { return Rgb{r, g, b} }

// NewSrgb returns a gamma encoded Srgb.
func NewSrgb(r, g, b uint8) Srgb { return Srgb{r, g, b} }

// NewRgb48 returns a linear light Rgb48.
func NewRgb48(r, g, b uint16) Rgb48 { return Rgb48{r, g, b} }

func (c Rgb) Format() types.Format             { return types.RGB }
func (c Rgb) ChannelCount() int                { return types.RGB.ChannelCount() }
func (c Rgb) BytesPerPixel() int               { return types.RGB.BytesPerPixel() }
func (c Rgb) AppendBytes(dst []byte) []byte    { return append(dst, c.R, c.G, c.B) }
func (c Rgb) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Rgb) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Rgb) String() string                   { return fmt.Sprintf("Rgb{%d %d %d}", c.R, c.G, c.B) }
func (c Rgb) sealed()                          {}

func (c Srgb) Format() types.Format             { return types.SRGB }
func (c Srgb) ChannelCount() int                { return types.SRGB.ChannelCount() }
func (c Srgb) BytesPerPixel() int               { return types.SRGB.BytesPerPixel() }
func (c Srgb) AppendBytes(dst []byte) []byte    { return append(dst, c.R, c.G, c.B) }
func (c Srgb) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Srgb) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Srgb) String() string                   { return fmt.Sprintf("Srgb{%d %d %d}", c.R, c.G, c.B) }
func (c Srgb) sealed()                          {}

// AsSharp returns the color in #RRGGBB notation.
func (c Srgb) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Rgb48) Format() types.Format             { return types.RGB48 }
func (c Rgb48) ChannelCount() int                { return types.RGB48.ChannelCount() }
func (c Rgb48) BytesPerPixel() int               { return types.RGB48.BytesPerPixel() }
func (c Rgb48) AppendBytes(dst []byte) []byte    { return appendUint16(dst, c.R, c.G, c.B) }
func (c Rgb48) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Rgb48) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Rgb48) String() string                   { return fmt.Sprintf("Rgb48{%d %d %d}", c.R, c.G, c.B) }
func (c Rgb48) sealed()                          {}

// RgbFromBytes decodes the 3 byte native encoding of an Rgb. Any other
// length returns a *LengthError.
func RgbFromBytes(b []byte) (Rgb, error) {
	if err := checkLength(types.RGB, b); err != nil {
		return Rgb{}, err
	}
	return Rgb{b[0], b[1], b[2]}, nil
}

// SrgbFromBytes decodes the 3 byte native encoding of an Srgb. Any other
// length returns a *LengthError.
func SrgbFromBytes(b []byte) (Srgb, error) {
	if err := checkLength(types.SRGB, b); err != nil {
		return Srgb{}, err
	}
	return Srgb{b[0], b[1], b[2]}, nil
}

// Rgb48FromBytes decodes the 6 byte native encoding of an Rgb48. Any other
// length returns a *LengthError.
func Rgb48FromBytes(b []byte) (Rgb48, error) {
	if err := checkLength(types.RGB48, b); err != nil {
		return Rgb48{}, err
	}
	return Rgb48{getUint16(b, 0), getUint16(b, 1), getUint16(b, 2)}, nil
}

func (c Rgb) linear() (r, g, b float64) {
	return unit8(c.R), unit8(c.G), unit8(c.B)
}

func (c Srgb) linear() (r, g, b float64) {
	return colorconv.Expand8(c.R), colorconv.Expand8(c.G), colorconv.Expand8(c.B)
}

func (c Rgb48) linear() (r, g, b float64) {
	return unit16(c.R), unit16(c.G), unit16(c.B)
}

// Rgb conversions, Rgb converts directly to every other format

func (c Rgb) ToGray8() Gray8   { return gray8FromLinear(c.linear()) }
func (c Rgb) ToGray16() Gray16 { return gray16FromLinear(c.linear()) }
func (c Rgb) ToGrayF() GrayF   { return grayFFromLinear(c.linear()) }
func (c Rgb) ToSrgb() Srgb     { return srgbFromLinear(c.linear()) }
func (c Rgb) ToRgb48() Rgb48   { return rgb48FromLinear(c.linear()) }
func (c Rgb) ToRgba() Rgba     { return Rgba{c.R, c.G, c.B, 0xff} }
func (c Rgb) ToRgba64() Rgba64 { r, g, b := c.linear(); return rgba64FromLinear(r, g, b, 1) }
func (c Rgb) ToRgbF() RgbF     { return rgbFFromLinear(c.linear()) }
func (c Rgb) ToSrgbF() SrgbF   { return srgbFFromLinear(c.linear()) }
func (c Rgb) ToRgbaF() RgbaF   { r, g, b := c.linear(); return rgbaFFromLinear(r, g, b, 1) }
func (c Rgb) ToHsv() Hsv       { return hsvFromLinear(c.linear()) }
func (c Rgb) ToHsl() Hsl       { return hslFromLinear(c.linear()) }
func (c Rgb) ToCieXyz() CieXyz { return xyzFromLinear(c.linear()) }
func (c Rgb) ToCieLab() CieLab { return labFromLinear(c.linear()) }

// Srgb conversions

func (c Srgb) ToGrayF() GrayF { return grayFFromLinear(c.linear()) }
func (c Srgb) ToRgb() Rgb     { return rgbFromLinear(c.linear()) }
func (c Srgb) ToRgbF() RgbF   { return rgbFFromLinear(c.linear()) }
func (c Srgb) ToSrgbF() SrgbF {
	return SrgbF{float32(unit8(c.R)), float32(unit8(c.G)), float32(unit8(c.B))}
}
func (c Srgb) ToRgbaF() RgbaF   { r, g, b := c.linear(); return rgbaFFromLinear(r, g, b, 1) }
func (c Srgb) ToHsv() Hsv       { return hsvFromLinear(c.linear()) }
func (c Srgb) ToHsl() Hsl       { return hslFromLinear(c.linear()) }
func (c Srgb) ToCieXyz() CieXyz { return xyzFromLinear(c.linear()) }
func (c Srgb) ToCieLab() CieLab { return labFromLinear(c.linear()) }

// Rgb48 conversions

func (c Rgb48) ToGray16() Gray16 { return gray16FromLinear(c.linear()) }
func (c Rgb48) ToGrayF() GrayF   { return grayFFromLinear(c.linear()) }
func (c Rgb48) ToRgb() Rgb       { return rgbFromLinear(c.linear()) }
func (c Rgb48) ToRgbF() RgbF     { return rgbFFromLinear(c.linear()) }
func (c Rgb48) ToRgba64() Rgba64 { return Rgba64{c.R, c.G, c.B, 0xffff} }
