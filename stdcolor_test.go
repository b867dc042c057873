package colorformats

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"

	"github.com/kovidgoyal/colorformats/types"
)

func TestRGBA(t *testing.T) {
	r, g, b, a := New(Srgb{255, 0, 0}).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
	r, g, b, a = New(NewRgbaF(1, 1, 1, 0.5)).RGBA()
	assert.Equal(t, []uint32{32768, 32768, 32768, 32768}, []uint32{r, g, b, a})
	_, _, _, a = New(Hsv{10, 1, 1}).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	var zero Color
	r, g, b, a = zero.RGBA()
	assert.Equal(t, []uint32{0, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestStdModels(t *testing.T) {
	got := color.RGBAModel.Convert(New(Rgb{255, 255, 255})).(color.RGBA)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, got)
	got = color.RGBAModel.Convert(New(Srgb{12, 34, 56})).(color.RGBA)
	assert.Equal(t, color.RGBA{12, 34, 56, 255}, got)
}

func TestFromStdColor(t *testing.T) {
	c := FromStdColor(colornames.Orange)
	assert.Equal(t, types.RGBAF, c.Format())
	assert.Equal(t, Srgb{colornames.Orange.R, colornames.Orange.G, colornames.Orange.B}, As[Srgb](c))

	c = FromStdColor(color.NRGBA{255, 128, 0, 128})
	v := c.Value().(RgbaF)
	assert.InDelta(t, 128.0/255, f64(v.A()), 1e-3)
	assert.Equal(t, Srgb{255, 128, 0}, As[Srgb](c))

	assert.Equal(t, New(RgbaF{}), FromStdColor(color.Transparent))
	orig := New(Hsl{1, 2, 3})
	assert.Equal(t, orig, FromStdColor(orig))
	assert.Equal(t, orig, Model.Convert(orig))
	assert.Equal(t, types.RGBAF, Model.Convert(color.Black).(Color).Format())
}
