package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kovidgoyal/colorformats"
	"github.com/kovidgoyal/colorformats/types"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// parseColor accepts #rgb or #rrggbb hex, a CSS color name or a
// format:c1,c2,... literal. Hex and names are gamma encoded sRGB.
func parseColor(s string) (colorformats.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return colorformats.Color{}, fmt.Errorf("empty color")
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorformats.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return colorformats.New(colorformats.NewSrgb(r, g, b)), nil
	case strings.Contains(s, ":"):
		return parseLiteral(s)
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorformats.Color{}, fmt.Errorf("unknown color name: %q", s)
	}
	return colorformats.New(colorformats.NewSrgb(c.R, c.G, c.B)), nil
}

func splitValues(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func parseFloats(parts []string) ([]float32, error) {
	ans := make([]float32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid channel value %q: %w", p, err)
		}
		ans[i] = float32(v)
	}
	return ans, nil
}

func parseUints(parts []string, bits int) ([]uint64, error) {
	ans := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid channel value %q: %w", p, err)
		}
		ans[i] = v
	}
	return ans, nil
}

func sampleBits(f types.Format) int {
	switch f {
	case types.GRAY8, types.RGB, types.SRGB, types.RGBA:
		return 8
	case types.GRAY16, types.RGB48, types.RGBA64:
		return 16
	}
	return 0
}

func parseLiteral(s string) (colorformats.Color, error) {
	name, rest, _ := strings.Cut(s, ":")
	f, err := types.Parse(name)
	if err != nil {
		return colorformats.Color{}, err
	}
	parts := splitValues(rest)
	n := f.ChannelCount()
	if len(parts) != n && !(f.HasReferenceWhite() && len(parts) == 2*n) {
		if f.HasReferenceWhite() {
			return colorformats.Color{}, fmt.Errorf("%s needs %d or %d values, got %d", f, n, 2*n, len(parts))
		}
		return colorformats.Color{}, fmt.Errorf("%s needs %d values, got %d", f, n, len(parts))
	}
	if bits := sampleBits(f); bits > 0 {
		u, err := parseUints(parts, bits)
		if err != nil {
			return colorformats.Color{}, err
		}
		return colorformats.New(integerColor(f, u)), nil
	}
	v, err := parseFloats(parts)
	if err != nil {
		return colorformats.Color{}, err
	}
	return colorformats.New(floatColor(f, v)), nil
}

func integerColor(f types.Format, u []uint64) colorformats.ColorFormat {
	switch f {
	case types.GRAY8:
		return colorformats.NewGray8(uint8(u[0]))
	case types.GRAY16:
		return colorformats.NewGray16(uint16(u[0]))
	case types.RGB:
		return colorformats.NewRgb(uint8(u[0]), uint8(u[1]), uint8(u[2]))
	case types.SRGB:
		return colorformats.NewSrgb(uint8(u[0]), uint8(u[1]), uint8(u[2]))
	case types.RGB48:
		return colorformats.NewRgb48(uint16(u[0]), uint16(u[1]), uint16(u[2]))
	case types.RGBA:
		return colorformats.NewRgba(uint8(u[0]), uint8(u[1]), uint8(u[2]), uint8(u[3]))
	default:
		return colorformats.NewRgba64(uint16(u[0]), uint16(u[1]), uint16(u[2]), uint16(u[3]))
	}
}

func floatColor(f types.Format, v []float32) colorformats.ColorFormat {
	switch f {
	case types.GRAYF:
		return colorformats.NewGrayF(v[0])
	case types.RGBF:
		return colorformats.NewRgbF(v[0], v[1], v[2])
	case types.SRGBF:
		return colorformats.NewSrgbF(v[0], v[1], v[2])
	case types.RGBAF:
		return colorformats.NewRgbaF(v[0], v[1], v[2], v[3])
	case types.HSV:
		return colorformats.NewHsv(v[0], v[1], v[2])
	case types.HSL:
		return colorformats.NewHsl(v[0], v[1], v[2])
	case types.CIEXYZ:
		c := colorformats.NewCieXyz(v[0], v[1], v[2])
		if len(v) == 6 {
			c = c.WithReferenceWhite(colorformats.NewCieXyz(v[3], v[4], v[5]))
		}
		return c
	default:
		c := colorformats.NewCieLab(v[0], v[1], v[2])
		if len(v) == 6 {
			c = c.WithReferenceWhite(colorformats.NewCieXyz(v[3], v[4], v[5]))
		}
		return c
	}
}

// parseWhite accepts d65, d50 or an x,y,z triplet.
func parseWhite(s string) (colorformats.CieXyz, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d65":
		return colorformats.D65, nil
	case "d50":
		return colorformats.D50, nil
	}
	parts := splitValues(s)
	if len(parts) != 3 {
		return colorformats.CieXyz{}, fmt.Errorf("invalid reference white %q: expected d65, d50 or x,y,z", s)
	}
	v, err := parseFloats(parts)
	if err != nil {
		return colorformats.CieXyz{}, fmt.Errorf("invalid reference white %q: %w", s, err)
	}
	if v[1] <= 0 {
		return colorformats.CieXyz{}, fmt.Errorf("invalid reference white %q: Y must be positive", s)
	}
	return colorformats.NewCieXyz(v[0], v[1], v[2]), nil
}

// adaptWhite expresses CIE colors relative to w and leaves others alone.
func adaptWhite(c colorformats.Color, w *colorformats.CieXyz) colorformats.Color {
	if w == nil {
		return c
	}
	switch v := c.Value().(type) {
	case colorformats.CieXyz:
		return colorformats.New(v.AdaptTo(*w))
	case colorformats.CieLab:
		return colorformats.New(v.AdaptTo(*w))
	}
	return c
}
