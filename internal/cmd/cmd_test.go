package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/kovidgoyal/colorformats"
	"github.com/kovidgoyal/colorformats/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with flags that persist between runs reset.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	require.NoError(t, rootCmd.PersistentFlags().Set("white", ""))
	require.NoError(t, convertCmd.Flags().Set("to", "srgb"))
	require.NoError(t, convertCmd.Flags().Set("bytes", "false"))
	require.NoError(t, decodeCmd.Flags().Set("to", ""))
	if f := rootCmd.Flags().Lookup("version"); f != nil {
		require.NoError(t, f.Value.Set("false"))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "hex to linear rgb",
			args: []string{"convert", "#ff0000", "--to", "rgb"},
			want: "Rgb{255 0 0}\n",
		},
		{
			name: "name to hsv",
			args: []string{"convert", "red", "--to", "hsv"},
			want: "Hsv{0 1 1}\n",
		},
		{
			name: "literal with bytes",
			args: []string{"convert", "rgb:255,0,0", "--bytes"},
			want: "Srgb{255 0 0}\nff0000\n",
		},
		{
			name: "reference white",
			args: []string{"convert", "lab:50,0,0", "--to", "lab", "--white", "d50"},
			want: "white{0.96422 1 0.82491}",
		},
		{
			name:    "bad target",
			args:    []string{"convert", "red", "--to", "cmyk"},
			wantErr: true,
		},
		{
			name:    "bad white",
			args:    []string{"convert", "red", "--white", "d75"},
			wantErr: true,
		},
		{
			name:    "bad color",
			args:    []string{"convert", "#12"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestPathCommand(t *testing.T) {
	got, err := run(t, "path", "hsl", "gray8")
	require.NoError(t, err)
	assert.Equal(t, "Hsl -> RgbF -> Gray8\ndirect: Rgb, Srgb, RgbF, SrgbF, Hsv\n", got)

	got, err = run(t, "path", "rgb", "rgb")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Rgb\n"))

	_, err = run(t, "path", "rgb", "cmyk")
	require.Error(t, err)
}

func TestDecodeCommand(t *testing.T) {
	got, err := run(t, "decode", "srgb", "ff0000", "--to", "rgb")
	require.NoError(t, err)
	assert.Equal(t, "Rgb{255 0 0}\n", got)

	got, err = run(t, "decode", "gray8", "0x80")
	require.NoError(t, err)
	assert.Equal(t, "Gray8{128}\n", got)

	_, err = run(t, "decode", "rgb", "0102")
	require.Error(t, err)
	assert.ErrorIs(t, err, colorformats.ErrWrongLength)
	assert.Contains(t, err.Error(), "expected 3, got 2")

	_, err = run(t, "decode", "rgb", "zz")
	require.Error(t, err)
}

func TestTableCommand(t *testing.T) {
	got, err := run(t, "table", "#808080")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, len(types.All))
	for i, f := range types.All {
		assert.True(t, strings.HasPrefix(lines[i], f.String()), "line %d: %s", i, lines[i])
	}
	assert.True(t, strings.HasPrefix(lines[types.SRGB-1], "Srgb*"))
}

func TestConvertAll(t *testing.T) {
	c := colorformats.New(colorformats.NewRgb(10, 200, 30))
	rows, err := convertAll(c, nil)
	require.NoError(t, err)
	require.Len(t, rows, len(types.All))
	for i, f := range types.All {
		assert.Equal(t, f, rows[i].Format())
		assert.True(t, c.Convert(f).Equal(rows[i]))
	}
}

func TestVersionFlag(t *testing.T) {
	got, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "colorconv version "+colorformats.Version+"\n", got)

	got, err = run(t, "path", "rgb", "srgb")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "Rgb -> Srgb\n"))
}
