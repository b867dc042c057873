package colorformats

import (
	"fmt"

	"github.com/kovidgoyal/colorformats/types"
)

// Color holds a value of exactly one of the catalog formats. Its format is
// always that of the wrapped value. The zero Color is Rgb{0, 0, 0}.
type Color struct {
	v ColorFormat
}

// New wraps v in a Color.
func New(v ColorFormat) Color { return Color{v} }

// Value returns the wrapped format value.
func (c Color) Value() ColorFormat {
	if c.v == nil {
		return Rgb{}
	}
	return c.v
}

func (c Color) Format() types.Format             { return c.Value().Format() }
func (c Color) ChannelCount() int                { return c.Value().ChannelCount() }
func (c Color) BytesPerPixel() int               { return c.Value().BytesPerPixel() }
func (c Color) Bytes() []byte                    { return c.Value().Bytes() }
func (c Color) AppendBytes(dst []byte) []byte    { return c.Value().AppendBytes(dst) }
func (c Color) RawParts() (types.Format, []byte) { return c.Value().RawParts() }
func (c Color) String() string                   { return c.Value().String() }

// Equal reports whether both colors wrap the same format with identical
// channels (and reference white, for CIE formats).
func (c Color) Equal(o Color) bool { return c.Value() == o.Value() }

func (c Color) Convert(to types.Format) Color { return Convert(c, to) }

// As converts c to the format of T.
func As[T ColorFormat](c Color) T {
	var zero T
	return Convert(c, zero.Format()).Value().(T)
}

type decoder func([]byte) (ColorFormat, error)

func decodeAs[T ColorFormat](f func([]byte) (T, error)) decoder {
	return func(b []byte) (ColorFormat, error) {
		v, err := f(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var decoders = [types.NumFormats]decoder{
	types.GRAY8:  decodeAs(Gray8FromBytes),
	types.GRAY16: decodeAs(Gray16FromBytes),
	types.GRAYF:  decodeAs(GrayFFromBytes),
	types.RGB:    decodeAs(RgbFromBytes),
	types.SRGB:   decodeAs(SrgbFromBytes),
	types.RGB48:  decodeAs(Rgb48FromBytes),
	types.RGBA:   decodeAs(RgbaFromBytes),
	types.RGBA64: decodeAs(Rgba64FromBytes),
	types.RGBF:   decodeAs(RgbFFromBytes),
	types.SRGBF:  decodeAs(SrgbFFromBytes),
	types.RGBAF:  decodeAs(RgbaFFromBytes),
	types.HSV:    decodeAs(HsvFromBytes),
	types.HSL:    decodeAs(HslFromBytes),
	types.CIEXYZ: decodeAs(CieXyzFromBytes),
	types.CIELAB: decodeAs(CieLabFromBytes),
}

// FromRawParts decodes the output of RawParts. A length mismatch returns the
// same *LengthError as the format's own decoder.
func FromRawParts(f types.Format, b []byte) (Color, error) {
	if !f.IsValid() {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	v, err := decoders[f](b)
	if err != nil {
		return Color{}, err
	}
	return Color{v}, nil
}
