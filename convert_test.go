package colorformats

import (
	"fmt"
	"math"
	"testing"

	"github.com/kovidgoyal/go-parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovidgoyal/colorformats/types"
)

var _ = fmt.Print

func TestDirectTargets(t *testing.T) {
	all14 := func(f types.Format) (ans []types.Format) {
		for _, x := range types.All {
			if x != f {
				ans = append(ans, x)
			}
		}
		return
	}
	expected := map[types.Format][]types.Format{
		types.GRAY8:  {types.GRAY16, types.GRAYF, types.RGB, types.RGBA},
		types.GRAY16: {types.GRAY8, types.GRAYF, types.RGB, types.SRGB, types.RGB48, types.RGBA, types.RGBA64, types.RGBF, types.SRGBF, types.RGBAF},
		types.GRAYF:  {types.GRAY8, types.GRAY16, types.RGB, types.SRGB, types.RGB48, types.RGBA, types.RGBA64, types.RGBF, types.SRGBF, types.RGBAF},
		types.RGB:    all14(types.RGB),
		types.SRGB:   {types.GRAYF, types.RGB, types.RGBF, types.SRGBF, types.RGBAF, types.HSV, types.HSL, types.CIEXYZ, types.CIELAB},
		types.RGB48:  {types.GRAY16, types.GRAYF, types.RGB, types.RGBA64, types.RGBF},
		types.RGBA:   {types.GRAY8, types.GRAY16, types.GRAYF, types.RGB, types.RGBA64, types.RGBAF},
		types.RGBA64: {types.GRAY16, types.GRAYF, types.RGB48, types.RGBA, types.RGBF, types.RGBAF},
		types.RGBF:   all14(types.RGBF),
		types.SRGBF:  {types.GRAYF, types.RGB, types.SRGB, types.RGBA, types.RGBF, types.HSV, types.HSL, types.CIEXYZ, types.CIELAB},
		types.RGBAF:  {types.GRAYF, types.RGB, types.RGBA, types.RGBA64, types.RGBF, types.SRGBF},
		types.HSV:    {types.RGB, types.SRGB, types.RGBF, types.SRGBF, types.HSL},
		types.HSL:    {types.RGB, types.SRGB, types.RGBF, types.SRGBF, types.HSV},
		types.CIEXYZ: {types.GRAYF, types.RGB, types.SRGB, types.RGBA, types.RGBF, types.SRGBF, types.CIELAB},
		types.CIELAB: {types.GRAYF, types.CIEXYZ},
	}
	require.Len(t, expected, len(types.All))
	for f, exp := range expected {
		assert.Equal(t, exp, DirectTargets(f), "direct targets of %s", f)
	}
}

func TestEdgesProduceTheirTarget(t *testing.T) {
	for i, s := range samples {
		for to, e := range graph[types.All[i]].direct {
			got := e(s)
			assert.Equal(t, to, got.Format(), "%s -> %s", s.Format(), to)
		}
	}
}

func TestPathsTerminate(t *testing.T) {
	for _, from := range types.All {
		for _, to := range types.All {
			p := Path(from, to)
			require.Equal(t, from, p[0])
			require.Equal(t, to, p[len(p)-1])
			// at most two re-tags followed by one direct conversion
			require.LessOrEqual(t, len(p), 4, "%s -> %s: %v", from, to, p)
			seen := map[types.Format]bool{}
			for i, f := range p {
				require.False(t, seen[f], "%s -> %s revisits %s: %v", from, to, f, p)
				seen[f] = true
				if i > 0 {
					_, ok := graph[p[i-1]].direct[f]
					require.True(t, ok, "%s -> %s uses a missing edge", p[i-1], f)
				}
			}
			if from == to {
				assert.Equal(t, types.UNKNOWN, Hub(from, to))
			} else if len(p) == 2 {
				assert.Equal(t, types.UNKNOWN, Hub(from, to))
			} else {
				assert.Equal(t, p[1], Hub(from, to))
			}
		}
	}
	assert.Equal(t, []types.Format{types.GRAY8, types.GRAYF, types.RGBF, types.HSV}, Path(types.GRAY8, types.HSV))
	assert.Equal(t, []types.Format{types.CIELAB, types.GRAYF, types.GRAY8}, Path(types.CIELAB, types.GRAY8))
	assert.Equal(t, []types.Format{types.SRGB, types.RGB, types.RGB48}, Path(types.SRGB, types.RGB48))
}

func TestConvertAllPairs(t *testing.T) {
	for _, s := range samples {
		for _, to := range types.All {
			got := Convert(New(s), to)
			require.Equal(t, to, got.Format(), "%s -> %s", s, to)
		}
	}
}

func TestSelfConversionIdentity(t *testing.T) {
	for _, s := range samples {
		c := New(s)
		assert.True(t, c.Convert(s.Format()).Equal(c), "%s", s)
	}
}

func TestConvertPanicsOnInvalidTarget(t *testing.T) {
	assert.Panics(t, func() { Convert(New(Rgb{}), types.UNKNOWN) })
	assert.Panics(t, func() { Convert(New(Rgb{}), types.Format(types.NumFormats)) })
	assert.Panics(t, func() { Path(types.UNKNOWN, types.RGB) })
}

func assertSameColor(t *testing.T, want, got Color, tolerance float64, msgAndArgs ...any) {
	t.Helper()
	a, b := As[RgbF](want), As[RgbF](got)
	assert.InDelta(t, f64(a.R), f64(b.R), tolerance, msgAndArgs...)
	assert.InDelta(t, f64(a.G), f64(b.G), tolerance, msgAndArgs...)
	assert.InDelta(t, f64(a.B), f64(b.B), tolerance, msgAndArgs...)
}

// assertCloseColor compares channels relative to their magnitude, with a
// small absolute floor for channels near zero.
func assertCloseColor(t *testing.T, want, got Color, rel float64, msgAndArgs ...any) {
	t.Helper()
	a, b := As[RgbF](want), As[RgbF](got)
	for _, p := range [][2]float32{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}} {
		x, y := f64(p[0]), f64(p[1])
		assert.InDelta(t, x, y, rel*math.Max(math.Abs(x), math.Abs(y))+1e-6, msgAndArgs...)
	}
}

// Routes made only of float formats must agree closely, quantized ones
// within a couple of steps.
func TestPathInvariance(t *testing.T) {
	for i, s := range samples {
		from := types.All[i]
		n := graph[from]
		for _, hub := range []types.Format{n.hub, n.grayHub} {
			if hub == types.UNKNOWN {
				continue
			}
			viaHub := graph[from].direct[hub](s)
			for to, e := range n.direct {
				if to == hub || (hub == n.grayHub && !to.IsGray()) {
					continue
				}
				direct := New(e(s))
				transitive := Convert(New(viaHub), to)
				if from.IsFloat() && hub.IsFloat() && to.IsFloat() {
					assertCloseColor(t, direct, transitive, 1e-5, "%s -> %s via %s", s, to, hub)
				} else {
					assertSameColor(t, direct, transitive, 2.0/255, "%s -> %s via %s", s, to, hub)
				}
			}
		}
	}
}

func TestRedScenario(t *testing.T) {
	red := Rgb{255, 0, 0}
	assert.Equal(t, Hsv{0, 1, 1}, red.ToHsv())
	assert.Equal(t, Srgb{255, 0, 0}, red.ToSrgb())
	xyz := red.ToCieXyz()
	assert.False(t, xyz.HasReferenceWhite())
	assert.InDelta(t, 0.4125, f64(xyz.X), 1e-4)
	assert.InDelta(t, 0.2127, f64(xyz.Y), 1e-4)
	assert.InDelta(t, 0.0193, f64(xyz.Z), 1e-4)

	c := New(red)
	assert.True(t, c.Convert(types.HSV).Equal(New(Hsv{0, 1, 1})))
	assert.True(t, c.Convert(types.SRGB).Equal(New(Srgb{255, 0, 0})))
	assert.True(t, c.Convert(types.CIEXYZ).Equal(New(xyz)))
}

func TestQuantization(t *testing.T) {
	assert.Equal(t, Rgb{0, 128, 255}, RgbF{-0.5, 0.5, 7}.ToRgb())
	assert.Equal(t, Gray16{0x8080}, Gray8{0x80}.ToGray16())
	assert.Equal(t, Gray8{0x80}, Gray16{0x8080}.ToGray8())
	assert.Equal(t, Rgba64{257, 514, 771, 0xffff}, Rgba{1, 2, 3, 255}.ToRgba64())
	assert.Equal(t, Rgba{1, 2, 3, 255}, Rgba64{257, 514, 771, 0xffff}.ToRgba())
	// float targets are not clamped
	assert.Equal(t, RgbF{-0.5, 0.5, 7}, New(RgbF{-0.5, 0.5, 7}).Convert(types.RGBF).Value())
	assert.InDelta(t, 1.5, f64(RgbF{1.5, 1.5, 1.5}.ToGrayF().Y), 1e-6)
	// but RgbaF is
	assert.Equal(t, NewRgbaF(0, 0.5, 1, 1), RgbF{-0.5, 0.5, 7}.ToRgbaF())
}

func TestSrgbRoundTrip(t *testing.T) {
	for v := range 256 {
		s := Srgb{uint8(v), uint8(v), uint8(v)}
		require.Equal(t, s, s.ToSrgbF().ToSrgb())
		require.Equal(t, s, s.ToRgbF().ToSrgb())
	}
}

func TestGrayConversions(t *testing.T) {
	assert.Equal(t, Rgb{7, 7, 7}, Gray8{7}.ToRgb())
	assert.Equal(t, Rgba{7, 7, 7, 255}, Gray8{7}.ToRgba())
	assert.Equal(t, Gray8{182}, Rgb{0, 255, 0}.ToGray8())
	assert.Equal(t, Gray8{255}, Rgb{255, 255, 255}.ToGray8())
	assert.Equal(t, Srgb{255, 255, 255}, GrayF{1}.ToSrgb())
	assert.Equal(t, Rgb48{9, 9, 9}, Gray16{9}.ToRgb48())
	assert.Equal(t, RgbF{0.5, 0.5, 0.5}, GrayF{0.5}.ToRgbF())
}

func TestHslToGray(t *testing.T) {
	c := New(Hsl{120, 1, 0.5})
	assert.Equal(t, []types.Format{types.HSL, types.RGBF, types.GRAY8}, Path(types.HSL, types.GRAY8))
	assert.Equal(t, Gray8{182}, c.Convert(types.GRAY8).Value())
	assert.Equal(t, Gray16{46871}, c.Convert(types.GRAY16).Value())
	assert.InDelta(t, 0.7152, f64(As[GrayF](c).Y), 1e-6)
}

func TestHueWrap(t *testing.T) {
	for _, s := range []float32{0.3, 1} {
		assert.Equal(t, Hsv{0, s, 0.8}.ToRgbF(), Hsv{360, s, 0.8}.ToRgbF())
		assert.Equal(t, Hsl{0, s, 0.4}.ToRgb(), Hsl{360, s, 0.4}.ToRgb())
	}
	for _, l := range []float32{0, 1} {
		assert.Equal(t, float32(0), Hsl{50, 0.7, l}.ToHsv().S)
	}
	assert.Equal(t, float32(0), Hsv{50, 0.7, 0}.ToHsl().S)
	assert.Equal(t, float32(0), Hsv{50, 0, 1}.ToHsl().S)
	assert.Equal(t, float32(0), Rgb{255, 255, 255}.ToHsl().S)
	assert.Equal(t, float32(0), Rgb{0, 0, 0}.ToHsv().S)
	assert.Equal(t, float32(0), Rgb{0, 0, 0}.ToHsl().S)
}

func TestConvertConcurrently(t *testing.T) {
	const rounds = 8
	n := len(samples) * len(types.All)
	expected := make([]Color, n)
	for i := range n {
		expected[i] = Convert(New(samples[i/len(types.All)]), types.All[i%len(types.All)])
	}
	got := make([]Color, n*rounds)
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			j := i % n
			got[i] = Convert(New(samples[j/len(types.All)]), types.All[j%len(types.All)])
		}
	}, 0, len(got))
	require.NoError(t, err)
	for i, c := range got {
		require.True(t, expected[i%n].Equal(c), "%s != %s", expected[i%n], c)
	}
}
