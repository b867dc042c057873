package types

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// Format identifies one of the supported color representations.
type Format int

// Color formats.
const (
	UNKNOWN Format = iota
	GRAY8
	GRAY16
	GRAYF
	RGB
	SRGB
	RGB48
	RGBA
	RGBA64
	RGBF
	SRGBF
	RGBAF
	HSV
	HSL
	CIEXYZ
	CIELAB
)

// NumFormats is one past the largest valid Format, suitable for sizing
// tables indexed by Format.
const NumFormats = int(CIELAB) + 1

// All lists every valid format in declaration order.
var All = []Format{
	GRAY8, GRAY16, GRAYF,
	RGB, SRGB, RGB48,
	RGBA, RGBA64,
	RGBF, SRGBF, RGBAF,
	HSV, HSL,
	CIEXYZ, CIELAB,
}

// FormatNames maps the lower case names accepted on the command line to
// formats.
var FormatNames = map[string]Format{
	"gray8":  GRAY8,
	"gray16": GRAY16,
	"grayf":  GRAYF,
	"rgb":    RGB,
	"srgb":   SRGB,
	"rgb48":  RGB48,
	"rgba":   RGBA,
	"rgba64": RGBA64,
	"rgbf":   RGBF,
	"srgbf":  SRGBF,
	"rgbaf":  RGBAF,
	"hsv":    HSV,
	"hsl":    HSL,
	"ciexyz": CIEXYZ,
	"xyz":    CIEXYZ,
	"cielab": CIELAB,
	"lab":    CIELAB,
}

var formatNames = map[Format]string{
	GRAY8:  "Gray8",
	GRAY16: "Gray16",
	GRAYF:  "GrayF",
	RGB:    "Rgb",
	SRGB:   "Srgb",
	RGB48:  "Rgb48",
	RGBA:   "Rgba",
	RGBA64: "Rgba64",
	RGBF:   "RgbF",
	SRGBF:  "SrgbF",
	RGBAF:  "RgbaF",
	HSV:    "Hsv",
	HSL:    "Hsl",
	CIEXYZ: "CieXyz",
	CIELAB: "CieLab",
}

var channelCounts = map[Format]int{
	GRAY8: 1, GRAY16: 1, GRAYF: 1,
	RGB: 3, SRGB: 3, RGB48: 3,
	RGBA: 4, RGBA64: 4,
	RGBF: 3, SRGBF: 3, RGBAF: 4,
	HSV: 3, HSL: 3,
	CIEXYZ: 3, CIELAB: 3,
}

// bytes per channel
var sampleSizes = map[Format]int{
	GRAY8: 1, GRAY16: 2, GRAYF: 4,
	RGB: 1, SRGB: 1, RGB48: 2,
	RGBA: 1, RGBA64: 2,
	RGBF: 4, SRGBF: 4, RGBAF: 4,
	HSV: 4, HSL: 4,
	CIEXYZ: 4, CIELAB: 4,
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// IsValid reports whether f is one of the fifteen known formats.
func (f Format) IsValid() bool {
	return f > UNKNOWN && f <= CIELAB
}

// ChannelCount is the number of channels stored by values of this format.
func (f Format) ChannelCount() int { return channelCounts[f] }

// BytesPerPixel is the size of the short encoding, that is without any
// attached reference white.
func (f Format) BytesPerPixel() int { return channelCounts[f] * sampleSizes[f] }

// HasReferenceWhite reports whether values of this format can carry a
// reference white, doubling their encoded size.
func (f Format) HasReferenceWhite() bool { return f == CIEXYZ || f == CIELAB }

// IsGray reports whether f is one of the single channel luminance formats.
func (f Format) IsGray() bool { return f == GRAY8 || f == GRAY16 || f == GRAYF }

// IsFloat reports whether f stores float32 samples rather than quantized
// integers.
func (f Format) IsFloat() bool { return sampleSizes[f] == 4 }

// ValidLengths returns the encoded sizes accepted when decoding f.
func (f Format) ValidLengths() []int {
	n := f.BytesPerPixel()
	if f.HasReferenceWhite() {
		return []int{n, 2 * n}
	}
	return []int{n}
}

// Parse looks up a format by name, ignoring case.
func Parse(name string) (Format, error) {
	if f, ok := FormatNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return UNKNOWN, fmt.Errorf("unknown color format: %q", name)
}
