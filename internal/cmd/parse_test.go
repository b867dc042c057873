package cmd

import (
	"testing"

	"github.com/kovidgoyal/colorformats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    colorformats.ColorFormat
		wantErr bool
	}{
		{
			name:  "short hex",
			input: "#f00",
			want:  colorformats.NewSrgb(255, 0, 0),
		},
		{
			name:  "long hex",
			input: "#336699",
			want:  colorformats.NewSrgb(0x33, 0x66, 0x99),
		},
		{
			name:  "css name ignores case",
			input: "Orange",
			want:  colorformats.NewSrgb(255, 165, 0),
		},
		{
			name:  "lab literal",
			input: "lab:50,20,-30",
			want:  colorformats.NewCieLab(50, 20, -30),
		},
		{
			name:  "xyz literal with reference white",
			input: "xyz:0.5, 0.5, 0.5, 0.96422, 1, 0.82491",
			want:  colorformats.NewCieXyz(0.5, 0.5, 0.5).WithReferenceWhite(colorformats.D50),
		},
		{
			name:  "sixteen bit literal",
			input: "Rgba64:65535,0,0,32768",
			want:  colorformats.NewRgba64(65535, 0, 0, 32768),
		},
		{
			name:  "gray literal",
			input: "gray8:128",
			want:  colorformats.NewGray8(128),
		},
		{
			name:  "rgbaf literal is clamped",
			input: "rgbaf:2,0.5,-1,1",
			want:  colorformats.NewRgbaF(1, 0.5, 0, 1),
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "bad hex",
			input:   "#ggg",
			wantErr: true,
		},
		{
			name:    "unknown name",
			input:   "notacolor",
			wantErr: true,
		},
		{
			name:    "too few values",
			input:   "rgb:1,2",
			wantErr: true,
		},
		{
			name:    "out of range sample",
			input:   "rgb:256,0,0",
			wantErr: true,
		},
		{
			name:    "negative integer sample",
			input:   "gray16:-1",
			wantErr: true,
		},
		{
			name:    "unknown format",
			input:   "cmyk:1,2,3,4",
			wantErr: true,
		},
		{
			name:    "invalid float",
			input:   "hsv:a,b,c",
			wantErr: true,
		},
		{
			name:    "reference white on non CIE format",
			input:   "rgbf:1,2,3,4,5,6",
			wantErr: true,
		},
		{
			name:    "partial reference white",
			input:   "lab:1,2,3,4",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestParseWhite(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    colorformats.CieXyz
		wantErr bool
	}{
		{name: "d65", input: "d65", want: colorformats.D65},
		{name: "d50 upper case", input: " D50 ", want: colorformats.D50},
		{name: "triplet", input: "0.9, 1, 1.1", want: colorformats.NewCieXyz(0.9, 1, 1.1)},
		{name: "two values", input: "1,2", wantErr: true},
		{name: "not numbers", input: "a,b,c", wantErr: true},
		{name: "zero luminance", input: "1,0,1", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWhite(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdaptWhite(t *testing.T) {
	red := colorformats.New(colorformats.NewSrgb(255, 0, 0))
	assert.True(t, red.Equal(adaptWhite(red, nil)))
	assert.True(t, red.Equal(adaptWhite(red, &colorformats.D50)))

	lab := colorformats.New(colorformats.NewCieLab(50, 10, 10))
	assert.True(t, lab.Equal(adaptWhite(lab, nil)))
	got := colorformats.As[colorformats.CieLab](adaptWhite(lab, &colorformats.D50))
	assert.Equal(t, colorformats.D50, got.ReferenceWhite())

	xyz := colorformats.New(colorformats.NewCieXyz(0.3, 0.4, 0.5))
	gotXyz := colorformats.As[colorformats.CieXyz](adaptWhite(xyz, &colorformats.D50))
	assert.True(t, gotXyz.HasReferenceWhite())
	back := gotXyz.Normalize()
	assert.InDelta(t, 0.3, back.X, 1e-4)
	assert.InDelta(t, 0.4, back.Y, 1e-4)
	assert.InDelta(t, 0.5, back.Z, 1e-4)
}
