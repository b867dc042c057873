package colorconv

import (
	"math"
	"sync"
)

// Compress applies the sRGB companding function to a linear component.
func Compress(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// Expand is the inverse of Compress, turning an encoded component into
// linear light.
func Expand(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

var expand8LUT = sync.OnceValue(func() []float64 {
	var ans [256]float64
	for i := range ans {
		ans[i] = Expand(float64(i) / math.MaxUint8)
	}
	return ans[:]
})

// Expand8 converts an 8-bit sRGB encoded value to a normalised linear value
// between 0.0 and 1.0.
//
// This implementation uses a look-up table holding exactly the values Expand
// would compute.
func Expand8(v uint8) float64 {
	return expand8LUT()[v]
}
