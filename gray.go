package colorformats

import (
	"fmt"

	"github.com/kovidgoyal/colorformats/types"
)

// Gray8 is linear luminance with 8 bits of precision.
type Gray8 struct {
	Y uint8
}

// Gray16 is linear luminance with 16 bits of precision.
type Gray16 struct {
	Y uint16
}

// GrayF is linear luminance, nominally in [0,1]. It is not clamped.
type GrayF struct {
	Y float32
}

// NewGray8 returns a Gray8 with luminance y.
func NewGray8(y uint8) Gray8 { return Gray8{y} }

// NewGray16 returns a Gray16 with luminance y.
func NewGray16(y uint16) Gray16 { return Gray16{y} }

// NewGrayF returns a GrayF with luminance y. The value is not clamped.
func NewGrayF(y float32) GrayF { return GrayF{y} }

func (c Gray8) Format() types.Format             { return types.GRAY8 }
func (c Gray8) ChannelCount() int                { return types.GRAY8.ChannelCount() }
func (c Gray8) BytesPerPixel() int               { return types.GRAY8.BytesPerPixel() }
func (c Gray8) AppendBytes(dst []byte) []byte    { return append(dst, c.Y) }
func (c Gray8) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Gray8) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Gray8) String() string                   { return fmt.Sprintf("Gray8{%d}", c.Y) }
func (c Gray8) sealed()                          {}

func (c Gray16) Format() types.Format             { return types.GRAY16 }
func (c Gray16) ChannelCount() int                { return types.GRAY16.ChannelCount() }
func (c Gray16) BytesPerPixel() int               { return types.GRAY16.BytesPerPixel() }
func (c Gray16) AppendBytes(dst []byte) []byte    { return appendUint16(dst, c.Y) }
func (c Gray16) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c Gray16) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c Gray16) String() string                   { return fmt.Sprintf("Gray16{%d}", c.Y) }
func (c Gray16) sealed()                          {}

func (c GrayF) Format() types.Format             { return types.GRAYF }
func (c GrayF) ChannelCount() int                { return types.GRAYF.ChannelCount() }
func (c GrayF) BytesPerPixel() int               { return types.GRAYF.BytesPerPixel() }
func (c GrayF) AppendBytes(dst []byte) []byte    { return appendFloat32(dst, c.Y) }
func (c GrayF) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, c.BytesPerPixel())) }
func (c GrayF) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c GrayF) String() string                   { return fmt.Sprintf("GrayF{%g}", c.Y) }
func (c GrayF) sealed()                          {}

// Gray8FromBytes decodes the 1 byte native encoding of a Gray8. Any other
// length returns a *LengthError.
func Gray8FromBytes(b []byte) (Gray8, error) {
	if err := checkLength(types.GRAY8, b); err != nil {
		return Gray8{}, err
	}
	return Gray8{b[0]}, nil
}

// Gray16FromBytes decodes the 2 byte native encoding of a Gray16. Any other
// length returns a *LengthError.
func Gray16FromBytes(b []byte) (Gray16, error) {
	if err := checkLength(types.GRAY16, b); err != nil {
		return Gray16{}, err
	}
	return Gray16{getUint16(b, 0)}, nil
}

// GrayFFromBytes decodes the 4 byte native encoding of a GrayF. Any other
// length returns a *LengthError.
func GrayFFromBytes(b []byte) (GrayF, error) {
	if err := checkLength(types.GRAYF, b); err != nil {
		return GrayF{}, err
	}
	return GrayF{getFloat32(b, 0)}, nil
}

func (c Gray8) unit() float64  { return unit8(c.Y) }
func (c Gray16) unit() float64 { return unit16(c.Y) }
func (c GrayF) unit() float64  { return f64(c.Y) }

// Gray8 conversions

func (c Gray8) ToGray16() Gray16 { return Gray16{to16(c.unit())} }
func (c Gray8) ToGrayF() GrayF   { return GrayF{float32(c.unit())} }
func (c Gray8) ToRgb() Rgb       { return Rgb{c.Y, c.Y, c.Y} }
func (c Gray8) ToRgba() Rgba     { return Rgba{c.Y, c.Y, c.Y, 0xff} }

// Gray16 conversions

func (c Gray16) ToGray8() Gray8   { return Gray8{to8(c.unit())} }
func (c Gray16) ToGrayF() GrayF   { return GrayF{float32(c.unit())} }
func (c Gray16) ToRgb() Rgb       { y := c.unit(); return rgbFromLinear(y, y, y) }
func (c Gray16) ToSrgb() Srgb     { y := c.unit(); return srgbFromLinear(y, y, y) }
func (c Gray16) ToRgb48() Rgb48   { return Rgb48{c.Y, c.Y, c.Y} }
func (c Gray16) ToRgba() Rgba     { y := c.unit(); return rgbaFromLinear(y, y, y, 1) }
func (c Gray16) ToRgba64() Rgba64 { return Rgba64{c.Y, c.Y, c.Y, 0xffff} }
func (c Gray16) ToRgbF() RgbF     { y := c.unit(); return rgbFFromLinear(y, y, y) }
func (c Gray16) ToSrgbF() SrgbF   { y := c.unit(); return srgbFFromLinear(y, y, y) }
func (c Gray16) ToRgbaF() RgbaF   { y := c.unit(); return rgbaFFromLinear(y, y, y, 1) }

// GrayF conversions

func (c GrayF) ToGray8() Gray8   { return Gray8{to8(c.unit())} }
func (c GrayF) ToGray16() Gray16 { return Gray16{to16(c.unit())} }
func (c GrayF) ToRgb() Rgb       { y := c.unit(); return rgbFromLinear(y, y, y) }
func (c GrayF) ToSrgb() Srgb     { y := c.unit(); return srgbFromLinear(y, y, y) }
func (c GrayF) ToRgb48() Rgb48   { y := c.unit(); return rgb48FromLinear(y, y, y) }
func (c GrayF) ToRgba() Rgba     { y := c.unit(); return rgbaFromLinear(y, y, y, 1) }
func (c GrayF) ToRgba64() Rgba64 { y := c.unit(); return rgba64FromLinear(y, y, y, 1) }
func (c GrayF) ToRgbF() RgbF     { return RgbF{c.Y, c.Y, c.Y} }
func (c GrayF) ToSrgbF() SrgbF   { y := c.unit(); return srgbFFromLinear(y, y, y) }
func (c GrayF) ToRgbaF() RgbaF   { return NewRgbaF(c.Y, c.Y, c.Y, 1) }
