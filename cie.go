package colorformats

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/colorformats/colorconv"
	"github.com/kovidgoyal/colorformats/types"
)

// CieXyz is a CIE 1931 XYZ color scaled so that Y = 1.0 is maximum
// luminance. It is interpreted relative to its reference white, which is D65
// unless one has been attached.
type CieXyz struct {
	X, Y, Z float32

	ref    [3]float32
	hasRef bool
}

// CieLab is a CIE L*a*b* color, L in [0,100], relative to its reference
// white, which is D65 unless one has been attached.
type CieLab struct {
	L, A, B float32

	ref    [3]float32
	hasRef bool
}

// Standard reference whites. D50 uses the ICC value of Z.
var (
	D65 = CieXyz{X: 0.95047, Y: 1, Z: 1.08883}
	D50 = CieXyz{X: 0.96422, Y: 1, Z: 0.82491}
)

var d65Triplet = [3]float32{0.95047, 1, 1.08883}

// NewCieXyz returns a CieXyz relative to D65.
func NewCieXyz(x, y, z float32) CieXyz { return CieXyz{X: x, Y: y, Z: z} }

// NewCieLab returns a CieLab relative to D65.
func NewCieLab(l, a, b float32) CieLab { return CieLab{L: l, A: a, B: b} }

func cieXyzFromVec(v colorconv.Vec3) CieXyz {
	return CieXyz{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

func whiteVec(ref [3]float32, hasRef bool) colorconv.Vec3 {
	if !hasRef || ref == d65Triplet {
		return colorconv.WhiteD65
	}
	return colorconv.Vec3{f64(ref[0]), f64(ref[1]), f64(ref[2])}
}

// whiteTriplet expresses w in terms of the default white, so that an
// attached reference white never depends on a third white.
func whiteTriplet(w CieXyz) [3]float32 {
	n := w.Normalize()
	return [3]float32{n.X, n.Y, n.Z}
}

func appendRef(dst []byte, ref [3]float32, hasRef bool) []byte {
	if hasRef {
		dst = appendFloat32(dst, ref[0], ref[1], ref[2])
	}
	return dst
}

func refString(ref [3]float32, hasRef bool) string {
	if !hasRef {
		return ""
	}
	return fmt.Sprintf(" white{%g %g %g}", ref[0], ref[1], ref[2])
}

func (c CieXyz) Format() types.Format { return types.CIEXYZ }
func (c CieXyz) ChannelCount() int    { return types.CIEXYZ.ChannelCount() }
func (c CieXyz) BytesPerPixel() int   { return types.CIEXYZ.BytesPerPixel() }
func (c CieXyz) AppendBytes(dst []byte) []byte {
	return appendRef(appendFloat32(dst, c.X, c.Y, c.Z), c.ref, c.hasRef)
}
func (c CieXyz) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, 2*c.BytesPerPixel())) }
func (c CieXyz) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c CieXyz) String() string {
	return fmt.Sprintf("CieXyz{%g %g %g%s}", c.X, c.Y, c.Z, refString(c.ref, c.hasRef))
}
func (c CieXyz) sealed() {}

func (c CieLab) Format() types.Format { return types.CIELAB }
func (c CieLab) ChannelCount() int    { return types.CIELAB.ChannelCount() }
func (c CieLab) BytesPerPixel() int   { return types.CIELAB.BytesPerPixel() }
func (c CieLab) AppendBytes(dst []byte) []byte {
	return appendRef(appendFloat32(dst, c.L, c.A, c.B), c.ref, c.hasRef)
}
func (c CieLab) Bytes() []byte                    { return c.AppendBytes(make([]byte, 0, 2*c.BytesPerPixel())) }
func (c CieLab) RawParts() (types.Format, []byte) { return c.Format(), c.Bytes() }
func (c CieLab) String() string {
	return fmt.Sprintf("CieLab{%g %g %g%s}", c.L, c.A, c.B, refString(c.ref, c.hasRef))
}
func (c CieLab) sealed() {}

// CieXyzFromBytes accepts the 12 byte short form and the 24 byte long form
// carrying a reference white.
func CieXyzFromBytes(b []byte) (CieXyz, error) {
	if err := checkLength(types.CIEXYZ, b); err != nil {
		return CieXyz{}, err
	}
	ans := CieXyz{X: getFloat32(b, 0), Y: getFloat32(b, 1), Z: getFloat32(b, 2)}
	if len(b) > types.CIEXYZ.BytesPerPixel() {
		ans.ref = [3]float32{getFloat32(b, 3), getFloat32(b, 4), getFloat32(b, 5)}
		ans.hasRef = true
	}
	return ans, nil
}

// CieLabFromBytes accepts the 12 byte short form and the 24 byte long form
// carrying a reference white.
func CieLabFromBytes(b []byte) (CieLab, error) {
	if err := checkLength(types.CIELAB, b); err != nil {
		return CieLab{}, err
	}
	ans := CieLab{L: getFloat32(b, 0), A: getFloat32(b, 1), B: getFloat32(b, 2)}
	if len(b) > types.CIELAB.BytesPerPixel() {
		ans.ref = [3]float32{getFloat32(b, 3), getFloat32(b, 4), getFloat32(b, 5)}
		ans.hasRef = true
	}
	return ans, nil
}

func (c CieXyz) vec() colorconv.Vec3     { return colorconv.Vec3{f64(c.X), f64(c.Y), f64(c.Z)} }
func (c CieXyz) white() colorconv.Vec3   { return whiteVec(c.ref, c.hasRef) }
func (c CieLab) white() colorconv.Vec3   { return whiteVec(c.ref, c.hasRef) }
func (c CieXyz) HasReferenceWhite() bool { return c.hasRef }
func (c CieLab) HasReferenceWhite() bool { return c.hasRef }

// ReferenceWhite returns the attached reference white or D65.
func (c CieXyz) ReferenceWhite() CieXyz {
	if !c.hasRef {
		return D65
	}
	return CieXyz{X: c.ref[0], Y: c.ref[1], Z: c.ref[2]}
}

// ReferenceWhite returns the attached reference white or D65.
func (c CieLab) ReferenceWhite() CieXyz {
	if !c.hasRef {
		return D65
	}
	return CieXyz{X: c.ref[0], Y: c.ref[1], Z: c.ref[2]}
}

// WithReferenceWhite declares the coordinates of c to be relative to w,
// without changing them. If w itself carries a reference white, w is first
// adapted to D65.
func (c CieXyz) WithReferenceWhite(w CieXyz) CieXyz {
	c.ref, c.hasRef = whiteTriplet(w), true
	return c
}

// AdaptTo transforms c into the equivalent color relative to w, using the
// Bradford method, and attaches w.
func (c CieXyz) AdaptTo(w CieXyz) CieXyz {
	ref := whiteTriplet(w)
	ans := cieXyzFromVec(colorconv.Adapt(c.vec(), c.white(), whiteVec(ref, true)))
	ans.ref, ans.hasRef = ref, true
	return ans
}

// Normalize adapts c to D65 and drops any attached reference white.
func (c CieXyz) Normalize() CieXyz {
	if !c.hasRef {
		return c
	}
	return cieXyzFromVec(colorconv.Adapt(c.vec(), c.white(), colorconv.WhiteD65))
}

// WithReferenceWhite declares the coordinates of c to be relative to w,
// without changing them.
func (c CieLab) WithReferenceWhite(w CieXyz) CieLab {
	c.ref, c.hasRef = whiteTriplet(w), true
	return c
}

// AdaptTo transforms c into the equivalent color relative to w.
func (c CieLab) AdaptTo(w CieXyz) CieLab {
	return c.ToCieXyz().AdaptTo(w).ToCieLab()
}

// Normalize adapts c to D65 and drops any attached reference white.
func (c CieLab) Normalize() CieLab {
	if !c.hasRef {
		return c
	}
	return c.ToCieXyz().Normalize().ToCieLab()
}

// DeltaE is the CIE76 color difference between c and o, after expressing
// both relative to D65.
func (c CieLab) DeltaE(o CieLab) float64 {
	a, b := c.Normalize(), o.Normalize()
	dl, da, db := f64(a.L)-f64(b.L), f64(a.A)-f64(b.A), f64(a.B)-f64(b.B)
	return math.Sqrt(dl*dl + da*da + db*db)
}

// linear adapts to D65 before leaving CIE space.
func (c CieXyz) linear() (r, g, b float64) {
	return colorconv.XYZToLinearRGB(c.Normalize().vec())
}

// CieXyz conversions

func (c CieXyz) ToGrayF() GrayF { return GrayF{c.Normalize().Y} }
func (c CieXyz) ToRgb() Rgb     { return rgbFromLinear(c.linear()) }
func (c CieXyz) ToSrgb() Srgb   { return srgbFromLinear(c.linear()) }
func (c CieXyz) ToRgbF() RgbF   { return rgbFFromLinear(c.linear()) }
func (c CieXyz) ToSrgbF() SrgbF { return srgbFFromLinear(c.linear()) }
func (c CieXyz) ToRgba() Rgba   { r, g, b := c.linear(); return rgbaFromLinear(r, g, b, 1) }

// ToCieLab keeps the reference white of c.
func (c CieXyz) ToCieLab() CieLab {
	L, a, b := colorconv.XYZToLab(c.vec(), c.white())
	return CieLab{L: float32(L), A: float32(a), B: float32(b), ref: c.ref, hasRef: c.hasRef}
}

// CieLab conversions

// ToCieXyz keeps the reference white of c.
func (c CieLab) ToCieXyz() CieXyz {
	ans := cieXyzFromVec(colorconv.LabToXYZ(f64(c.L), f64(c.A), f64(c.B), c.white()))
	ans.ref, ans.hasRef = c.ref, c.hasRef
	return ans
}

func (c CieLab) ToGrayF() GrayF { return c.ToCieXyz().ToGrayF() }
