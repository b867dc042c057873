package colorconv

import (
	"math"
)

// NormalizeHue maps any angle in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// hue computes the hue angle of an RGB triple with extremes mx, mn.
func hue(r, g, b, mx, c float64) float64 {
	if c == 0 {
		return 0
	}
	var h float64
	switch mx {
	case r:
		h = (g - b) / c
	case g:
		h = (b-r)/c + 2
	default:
		h = (r-g)/c + 4
	}
	return NormalizeHue(60 * h)
}

// hueToRGB spreads chroma c over the sector containing h and adds the
// offset m to every channel.
func hueToRGB(h, c, m float64) (r, g, b float64) {
	h = NormalizeHue(h)
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch int(hp) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// RGBToHSV converts unit RGB to hue in degrees, saturation and value in
// [0,1]. Inputs are expected to be already clamped.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	mx := max(r, g, b)
	mn := min(r, g, b)
	c := mx - mn
	v = mx
	if v > 0 {
		s = c / v
	}
	return hue(r, g, b, mx, c), s, v
}

// HSVToRGB is the inverse of RGBToHSV.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	c := v * s
	return hueToRGB(h, c, v-c)
}

// RGBToHSL converts unit RGB to hue in degrees, saturation and lightness in
// [0,1].
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	mx := max(r, g, b)
	mn := min(r, g, b)
	c := mx - mn
	l = (mx + mn) / 2
	if d := 1 - math.Abs(2*l-1); c > 0 && d > 0 {
		s = c / d
	}
	return hue(r, g, b, mx, c), s, l
}

// HSLToRGB is the inverse of RGBToHSL.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	return hueToRGB(h, c, l-c/2)
}

// HSVToHSL converts between the two cylindrical models without going
// through RGB. Hue is carried unchanged.
func HSVToHSL(h, s, v float64) (float64, float64, float64) {
	l := v * (1 - s/2)
	var sl float64
	if l > 0 && l < 1 {
		sl = (v - l) / min(l, 1-l)
	}
	return h, sl, l
}

// HSLToHSV is the inverse of HSVToHSL.
func HSLToHSV(h, s, l float64) (float64, float64, float64) {
	v := l + s*min(l, 1-l)
	var sv float64
	if v > 0 {
		sv = 2 * (1 - l/v)
	}
	return h, sv, v
}
