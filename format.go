package colorformats

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/colorformats/colorconv"
	"github.com/kovidgoyal/colorformats/types"
)

var _ = fmt.Print

// ColorFormat is implemented by the value type of every format in the
// catalog. The set of implementations is closed.
type ColorFormat interface {
	// Format is the tag of the implementing type
	Format() types.Format
	ChannelCount() int
	// BytesPerPixel is the short footprint, without any reference white.
	BytesPerPixel() int
	// Bytes encodes the channels in native byte order, in declaration
	// order. CIE values append their reference white when one is
	// attached.
	Bytes() []byte
	AppendBytes(dst []byte) []byte
	RawParts() (types.Format, []byte)
	String() string

	sealed()
}

// Sample domain conversions. Integer to float divides by the domain max,
// float to integer clamps to [0,1], scales and rounds to nearest.

func unit8(v uint8) float64   { return float64(v) / math.MaxUint8 }
func unit16(v uint16) float64 { return float64(v) / math.MaxUint16 }

func to8(x float64) uint8 {
	return uint8(math.Round(colorconv.Clamp01(x) * math.MaxUint8))
}

func to16(x float64) uint16 {
	return uint16(math.Round(colorconv.Clamp01(x) * math.MaxUint16))
}

func f64(x float32) float64 { return float64(x) }

// Builders from a linear unit RGB triple, shared by every source format.
// Float targets are not clamped, integer targets are clamped by quantization
// and the cylindrical models clamp to the unit cube first.

func gray8FromLinear(r, g, b float64) Gray8 {
	return Gray8{to8(colorconv.Luminance(r, g, b))}
}

func gray16FromLinear(r, g, b float64) Gray16 {
	return Gray16{to16(colorconv.Luminance(r, g, b))}
}

func grayFFromLinear(r, g, b float64) GrayF {
	return GrayF{float32(colorconv.Luminance(r, g, b))}
}

func rgbFromLinear(r, g, b float64) Rgb {
	return Rgb{to8(r), to8(g), to8(b)}
}

func srgbFromLinear(r, g, b float64) Srgb {
	return Srgb{
		to8(colorconv.Compress(colorconv.Clamp01(r))),
		to8(colorconv.Compress(colorconv.Clamp01(g))),
		to8(colorconv.Compress(colorconv.Clamp01(b))),
	}
}

func rgb48FromLinear(r, g, b float64) Rgb48 {
	return Rgb48{to16(r), to16(g), to16(b)}
}

func rgbaFromLinear(r, g, b, a float64) Rgba {
	return Rgba{to8(r), to8(g), to8(b), to8(a)}
}

func rgba64FromLinear(r, g, b, a float64) Rgba64 {
	return Rgba64{to16(r), to16(g), to16(b), to16(a)}
}

func rgbFFromLinear(r, g, b float64) RgbF {
	return RgbF{float32(r), float32(g), float32(b)}
}

func srgbFFromLinear(r, g, b float64) SrgbF {
	return SrgbF{float32(colorconv.Compress(r)), float32(colorconv.Compress(g)), float32(colorconv.Compress(b))}
}

func rgbaFFromLinear(r, g, b, a float64) RgbaF {
	return NewRgbaF(float32(r), float32(g), float32(b), float32(a))
}

func hsvFromLinear(r, g, b float64) Hsv {
	h, s, v := colorconv.RGBToHSV(colorconv.Clamp01(r), colorconv.Clamp01(g), colorconv.Clamp01(b))
	return Hsv{float32(h), float32(s), float32(v)}
}

func hslFromLinear(r, g, b float64) Hsl {
	h, s, l := colorconv.RGBToHSL(colorconv.Clamp01(r), colorconv.Clamp01(g), colorconv.Clamp01(b))
	return Hsl{float32(h), float32(s), float32(l)}
}

func xyzFromLinear(r, g, b float64) CieXyz {
	return cieXyzFromVec(colorconv.LinearRGBToXYZ(r, g, b))
}

func labFromLinear(r, g, b float64) CieLab {
	L, a, bb := colorconv.XYZToLab(colorconv.LinearRGBToXYZ(r, g, b), colorconv.WhiteD65)
	return CieLab{L: float32(L), A: float32(a), B: float32(bb)}
}
