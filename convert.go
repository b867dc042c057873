package colorformats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kovidgoyal/colorformats/types"
)

// edge is a direct conversion out of one specific format.
type edge func(ColorFormat) ColorFormat

func link[S, D ColorFormat](f func(S) D) edge {
	return func(c ColorFormat) ColorFormat { return f(c.(S)) }
}

type node struct {
	direct map[types.Format]edge
	// hub is the format to re-tag as when there is no direct edge to the
	// target. grayHub, when set, replaces hub for grayscale targets.
	hub, grayHub types.Format
}

// Every hub chain ends at Rgb or RgbF, which convert directly to every
// format, so no conversion needs more than two re-tags.
const maxHops = 3

var graph = [types.NumFormats]node{
	types.GRAY8: {
		direct: map[types.Format]edge{
			types.GRAY16: link(Gray8.ToGray16),
			types.GRAYF:  link(Gray8.ToGrayF),
			types.RGB:    link(Gray8.ToRgb),
			types.RGBA:   link(Gray8.ToRgba),
		},
		hub: types.GRAYF,
	},
	types.GRAY16: {
		direct: map[types.Format]edge{
			types.GRAY8:  link(Gray16.ToGray8),
			types.GRAYF:  link(Gray16.ToGrayF),
			types.RGB:    link(Gray16.ToRgb),
			types.SRGB:   link(Gray16.ToSrgb),
			types.RGB48:  link(Gray16.ToRgb48),
			types.RGBA:   link(Gray16.ToRgba),
			types.RGBA64: link(Gray16.ToRgba64),
			types.RGBF:   link(Gray16.ToRgbF),
			types.SRGBF:  link(Gray16.ToSrgbF),
			types.RGBAF:  link(Gray16.ToRgbaF),
		},
		hub: types.GRAYF,
	},
	types.GRAYF: {
		direct: map[types.Format]edge{
			types.GRAY8:  link(GrayF.ToGray8),
			types.GRAY16: link(GrayF.ToGray16),
			types.RGB:    link(GrayF.ToRgb),
			types.SRGB:   link(GrayF.ToSrgb),
			types.RGB48:  link(GrayF.ToRgb48),
			types.RGBA:   link(GrayF.ToRgba),
			types.RGBA64: link(GrayF.ToRgba64),
			types.RGBF:   link(GrayF.ToRgbF),
			types.SRGBF:  link(GrayF.ToSrgbF),
			types.RGBAF:  link(GrayF.ToRgbaF),
		},
		hub: types.RGBF,
	},
	types.RGB: {
		direct: map[types.Format]edge{
			types.GRAY8:  link(Rgb.ToGray8),
			types.GRAY16: link(Rgb.ToGray16),
			types.GRAYF:  link(Rgb.ToGrayF),
			types.SRGB:   link(Rgb.ToSrgb),
			types.RGB48:  link(Rgb.ToRgb48),
			types.RGBA:   link(Rgb.ToRgba),
			types.RGBA64: link(Rgb.ToRgba64),
			types.RGBF:   link(Rgb.ToRgbF),
			types.SRGBF:  link(Rgb.ToSrgbF),
			types.RGBAF:  link(Rgb.ToRgbaF),
			types.HSV:    link(Rgb.ToHsv),
			types.HSL:    link(Rgb.ToHsl),
			types.CIEXYZ: link(Rgb.ToCieXyz),
			types.CIELAB: link(Rgb.ToCieLab),
		},
	},
	types.SRGB: {
		direct: map[types.Format]edge{
			types.GRAYF:  link(Srgb.ToGrayF),
			types.RGB:    link(Srgb.ToRgb),
			types.RGBF:   link(Srgb.ToRgbF),
			types.SRGBF:  link(Srgb.ToSrgbF),
			types.RGBAF:  link(Srgb.ToRgbaF),
			types.HSV:    link(Srgb.ToHsv),
			types.HSL:    link(Srgb.ToHsl),
			types.CIEXYZ: link(Srgb.ToCieXyz),
			types.CIELAB: link(Srgb.ToCieLab),
		},
		hub:     types.RGB,
		grayHub: types.GRAYF,
	},
	types.RGB48: {
		direct: map[types.Format]edge{
			types.GRAY16: link(Rgb48.ToGray16),
			types.GRAYF:  link(Rgb48.ToGrayF),
			types.RGB:    link(Rgb48.ToRgb),
			types.RGBF:   link(Rgb48.ToRgbF),
			types.RGBA64: link(Rgb48.ToRgba64),
		},
		hub: types.RGBF,
	},
	types.RGBA: {
		direct: map[types.Format]edge{
			types.GRAY8:  link(Rgba.ToGray8),
			types.GRAY16: link(Rgba.ToGray16),
			types.GRAYF:  link(Rgba.ToGrayF),
			types.RGB:    link(Rgba.ToRgb),
			types.RGBA64: link(Rgba.ToRgba64),
			types.RGBAF:  link(Rgba.ToRgbaF),
		},
		hub: types.RGB,
	},
	types.RGBA64: {
		direct: map[types.Format]edge{
			types.GRAY16: link(Rgba64.ToGray16),
			types.GRAYF:  link(Rgba64.ToGrayF),
			types.RGB48:  link(Rgba64.ToRgb48),
			types.RGBA:   link(Rgba64.ToRgba),
			types.RGBF:   link(Rgba64.ToRgbF),
			types.RGBAF:  link(Rgba64.ToRgbaF),
		},
		hub: types.RGBF,
	},
	types.RGBF: {
		direct: map[types.Format]edge{
			types.GRAY8:  link(RgbF.ToGray8),
			types.GRAY16: link(RgbF.ToGray16),
			types.GRAYF:  link(RgbF.ToGrayF),
			types.RGB:    link(RgbF.ToRgb),
			types.SRGB:   link(RgbF.ToSrgb),
			types.RGB48:  link(RgbF.ToRgb48),
			types.RGBA:   link(RgbF.ToRgba),
			types.RGBA64: link(RgbF.ToRgba64),
			types.SRGBF:  link(RgbF.ToSrgbF),
			types.RGBAF:  link(RgbF.ToRgbaF),
			types.HSV:    link(RgbF.ToHsv),
			types.HSL:    link(RgbF.ToHsl),
			types.CIEXYZ: link(RgbF.ToCieXyz),
			types.CIELAB: link(RgbF.ToCieLab),
		},
	},
	types.SRGBF: {
		direct: map[types.Format]edge{
			types.GRAYF:  link(SrgbF.ToGrayF),
			types.RGB:    link(SrgbF.ToRgb),
			types.SRGB:   link(SrgbF.ToSrgb),
			types.RGBA:   link(SrgbF.ToRgba),
			types.RGBF:   link(SrgbF.ToRgbF),
			types.HSV:    link(SrgbF.ToHsv),
			types.HSL:    link(SrgbF.ToHsl),
			types.CIEXYZ: link(SrgbF.ToCieXyz),
			types.CIELAB: link(SrgbF.ToCieLab),
		},
		hub:     types.RGBF,
		grayHub: types.GRAYF,
	},
	types.RGBAF: {
		direct: map[types.Format]edge{
			types.GRAYF:  link(RgbaF.ToGrayF),
			types.RGB:    link(RgbaF.ToRgb),
			types.RGBA:   link(RgbaF.ToRgba),
			types.RGBA64: link(RgbaF.ToRgba64),
			types.RGBF:   link(RgbaF.ToRgbF),
			types.SRGBF:  link(RgbaF.ToSrgbF),
		},
		hub: types.RGBF,
	},
	types.HSV: {
		direct: map[types.Format]edge{
			types.RGB:   link(Hsv.ToRgb),
			types.SRGB:  link(Hsv.ToSrgb),
			types.RGBF:  link(Hsv.ToRgbF),
			types.SRGBF: link(Hsv.ToSrgbF),
			types.HSL:   link(Hsv.ToHsl),
		},
		hub: types.RGBF,
	},
	types.HSL: {
		direct: map[types.Format]edge{
			types.RGB:   link(Hsl.ToRgb),
			types.SRGB:  link(Hsl.ToSrgb),
			types.RGBF:  link(Hsl.ToRgbF),
			types.SRGBF: link(Hsl.ToSrgbF),
			types.HSV:   link(Hsl.ToHsv),
		},
		hub: types.RGBF,
	},
	types.CIEXYZ: {
		direct: map[types.Format]edge{
			types.GRAYF:  link(CieXyz.ToGrayF),
			types.RGB:    link(CieXyz.ToRgb),
			types.SRGB:   link(CieXyz.ToSrgb),
			types.RGBA:   link(CieXyz.ToRgba),
			types.RGBF:   link(CieXyz.ToRgbF),
			types.SRGBF:  link(CieXyz.ToSrgbF),
			types.CIELAB: link(CieXyz.ToCieLab),
		},
		hub:     types.RGBF,
		grayHub: types.GRAYF,
	},
	types.CIELAB: {
		direct: map[types.Format]edge{
			types.GRAYF:  link(CieLab.ToGrayF),
			types.CIEXYZ: link(CieLab.ToCieXyz),
		},
		hub:     types.CIEXYZ,
		grayHub: types.GRAYF,
	},
}

// step returns the format to move to next when converting from -> to and
// whether that move completes the conversion.
func step(from, to types.Format) (next types.Format, done bool) {
	n := &graph[from]
	if _, ok := n.direct[to]; ok {
		return to, true
	}
	if to.IsGray() && n.grayHub != types.UNKNOWN {
		return n.grayHub, false
	}
	return n.hub, false
}

func mustBeValid(f types.Format) {
	if !f.IsValid() {
		panic(fmt.Sprintf("invalid color format: %s", f))
	}
}

// Convert returns from converted to the format to. Converting to the format
// from already has returns from unchanged. When there is no direct
// conversion, the value is re-tagged as its hub format, repeatedly, until
// one exists. Convert panics if to is not a valid format.
func Convert(from Color, to types.Format) Color {
	mustBeValid(to)
	cur := from.Value()
	for range maxHops {
		f := cur.Format()
		if f == to {
			return Color{cur}
		}
		next, done := step(f, to)
		if !done {
			if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
				l.Debug("conversion hop", "from", f.String(), "via", next.String(), "to", to.String())
			}
		}
		cur = graph[f].direct[next](cur)
		if done {
			return Color{cur}
		}
	}
	panic(fmt.Sprintf("conversion from %s to %s did not terminate", from.Format(), to))
}

// Path lists the formats a conversion from -> to passes through, starting
// with from and ending with to.
func Path(from, to types.Format) []types.Format {
	mustBeValid(from)
	mustBeValid(to)
	ans := []types.Format{from}
	for cur := from; cur != to; {
		next, _ := step(cur, to)
		ans = append(ans, next)
		cur = next
		if len(ans) > maxHops+1 {
			panic(fmt.Sprintf("conversion from %s to %s did not terminate", from, to))
		}
	}
	return ans
}

// DirectTargets lists, in format order, the formats f converts to without
// an intermediary.
func DirectTargets(f types.Format) []types.Format {
	mustBeValid(f)
	ans := make([]types.Format, 0, len(graph[f].direct))
	for _, t := range types.All {
		if _, ok := graph[f].direct[t]; ok {
			ans = append(ans, t)
		}
	}
	return ans
}

// Hub returns the intermediary a conversion from -> to re-tags as first, or
// UNKNOWN if from converts to to directly.
func Hub(from, to types.Format) types.Format {
	mustBeValid(from)
	mustBeValid(to)
	if from == to {
		return types.UNKNOWN
	}
	next, done := step(from, to)
	if done {
		return types.UNKNOWN
	}
	return next
}
