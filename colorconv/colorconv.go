package colorconv

import (
	"math"
)

// This package holds the colorimetric math shared by all the color formats:
// sRGB companding, luminance, the linear sRGB <-> CIE XYZ (D65) matrices,
// CIE XYZ <-> L*a*b* relative to an arbitrary reference white and Bradford
// chromatic adaptation between reference whites.
//
// Everything works on float64 values in the unit domain (Y = 1.0 is maximum
// luminance). Nothing here clamps unless stated, out of range inputs produce
// out of range outputs.

type Vec3 [3]float64
type Mat3 [3][3]float64

// Standard reference whites (CIE XYZ) normalized so Y = 1.0
// WhiteD50 uses the ICC value of Z rather than the CIE one.
var (
	WhiteD50 = Vec3{0.96422, 1.00000, 0.82491}
	WhiteD65 = Vec3{0.95047, 1.00000, 1.08883}
)

// Bradford transform matrices (forward and inverse)
var (
	bradford = Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	invBradford = Mat3{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
)

// sRGB primaries with a D65 white: linear sRGB -> XYZ and its inverse.
var (
	xyzFromLinearSRGB = Mat3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	linearSRGBFromXYZ = Mat3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// CIE L*a*b* constants
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// Rec. 709 luma weights, applied to linear samples they give luminance.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Luminance returns Y for a linear RGB triple in any sample domain, the
// result is in the same domain as the inputs.
func Luminance(r, g, b float64) float64 {
	return lumR*r + lumG*g + lumB*b
}

// LinearRGBToXYZ converts linear sRGB to XYZ relative to D65.
func LinearRGBToXYZ(r, g, b float64) Vec3 {
	return xyzFromLinearSRGB.Apply(Vec3{r, g, b})
}

// XYZToLinearRGB converts XYZ relative to D65 to linear sRGB. The output may
// lie outside [0,1] for colors outside the sRGB gamut.
func XYZToLinearRGB(xyz Vec3) (r, g, b float64) {
	v := linearSRGBFromXYZ.Apply(xyz)
	return v[0], v[1], v[2]
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16.0) / 116.0
}

// XYZToLab converts XYZ into CIELAB relative to white.
func XYZToLab(xyz, white Vec3) (L, a, b float64) {
	fx := labF(xyz[0] / white[0])
	fy := labF(xyz[1] / white[1])
	fz := labF(xyz[2] / white[2])

	L = 116.0*fy - 16.0
	a = 500.0 * (fx - fy)
	b = 200.0 * (fy - fz)
	return
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(L, a, b float64, white Vec3) Vec3 {
	fy := (L + 16.0) / 116.0
	fx := fy + (a / 500.0)
	fz := fy - (b / 200.0)

	var xr, yr, zr float64
	if fx3 := fx * fx * fx; fx3 > labEpsilon {
		xr = fx3
	} else {
		xr = (116.0*fx - 16.0) / labKappa
	}
	if L > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = L / labKappa
	}
	if fz3 := fz * fz * fz; fz3 > labEpsilon {
		zr = fz3
	} else {
		zr = (116.0*fz - 16.0) / labKappa
	}
	return Vec3{xr * white[0], yr * white[1], zr * white[2]}
}

// Clamp01 clamps x to [0,1], mapping NaN to 0.
func Clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return min(x, 1)
}

// Matrix & vector utilities

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply returns m·v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// ChromaticAdaptationMatrix constructs a 3x3 matrix that adapts XYZ values
// from sourceWhite to targetWhite using the Bradford method.
func ChromaticAdaptationMatrix(sourceWhite, targetWhite Vec3) Mat3 {
	// Convert whites to cone responses using Bradford
	src := bradford.Apply(sourceWhite)
	tgt := bradford.Apply(targetWhite)
	diag := Mat3{
		{tgt[0] / src[0], 0, 0},
		{0, tgt[1] / src[1], 0},
		{0, 0, tgt[2] / src[2]},
	}
	// adapt = invBradford * diag * bradford
	tmp := mulMat3(diag, bradford)
	return mulMat3(invBradford, tmp)
}

// Adapt transforms xyz, expressed relative to sourceWhite, into the
// equivalent coordinates relative to targetWhite.
func Adapt(xyz, sourceWhite, targetWhite Vec3) Vec3 {
	if sourceWhite == targetWhite {
		return xyz
	}
	return ChromaticAdaptationMatrix(sourceWhite, targetWhite).Apply(xyz)
}
