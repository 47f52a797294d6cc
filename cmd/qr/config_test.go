package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrgrid"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)

	o, err := cfg.options()
	require.NoError(t, err)
	assert.Equal(t, qr.DefaultOptions.Level(), o.Level())
	assert.Equal(t, qr.AutoMask, o.Mask())
	assert.Equal(t, qr.AutoVersion, o.Version)
	assert.Equal(t, qr.AutoMode, o.Mode)
}

func TestLoadConfigLayers(t *testing.T) {
	path := writeConfig(t, `
level: q
version: 7
mask: 3
mode: alpha
format: pbm
scale: 2
`)
	cfg, err := loadConfig(path, map[string]string{
		"QR_VERSION": "9",
		"QR_BORDER":  "1",
		"QR_FORMAT":  "ascii",
	})
	require.NoError(t, err)
	assert.Equal(t, "q", cfg.Level)
	assert.Equal(t, 9, cfg.Version, "environment overrides the file")
	assert.Equal(t, 3, cfg.Mask)
	assert.Equal(t, "ascii", cfg.Format)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 1, cfg.Border)

	o, err := cfg.options()
	require.NoError(t, err)
	assert.Equal(t, qr.Options{Version: 9, Mode: qr.Alphanumeric}.WithLevel(qr.Q).WithMask(3), o)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loadConfig(writeConfig(t, "scale: [1, 2]\n"), map[string]string{})
	assert.Error(t, err)

	_, err = loadConfig("", map[string]string{"QR_SCALE": "big"})
	assert.Error(t, err)
}

func TestConfigOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*config)
		err  error
	}{
		{"level", func(c *config) { c.Level = "x" }, qr.ErrLevel},
		{"version", func(c *config) { c.Version = 11 }, qr.ErrVersion},
		{"mask", func(c *config) { c.Mask = 8 }, qr.ErrMask},
		{"mode", func(c *config) { c.Mode = "bits" }, nil},
		{"scale", func(c *config) { c.Scale = 0 }, nil},
		{"border", func(c *config) { c.Border = -1 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mod(cfg)
			_, err := cfg.options()
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}

	cfg := defaults()
	cfg.Mode = "auto"
	o, err := cfg.options()
	require.NoError(t, err)
	assert.Equal(t, qr.AutoMode, o.Mode)
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		s    string
		want rgba
	}{
		{"black", rgba{0, 0, 0, 0xff}},
		{"White", rgba{0xff, 0xff, 0xff, 0xff}},
		{"f00", rgba{0xff, 0, 0, 0xff}},
		{"f008", rgba{0xff, 0, 0, 0x88}},
		{"123456", rgba{0x12, 0x34, 0x56, 0xff}},
		{"12345678", rgba{0x12, 0x34, 0x56, 0x78}},
	}
	for _, tt := range tests {
		c, err := parseColour(tt.s)
		require.NoError(t, err, tt.s)
		assert.Equal(t, tt.want, c, tt.s)
	}
	for _, s := range []string{"", "12", "12345", "ggg", "darkish"} {
		_, err := parseColour(s)
		assert.Error(t, err, s)
	}
}

func TestRandr(t *testing.T) {
	c, err := qr.Encode("randr", nil)
	require.NoError(t, err)
	orig := c.Grid.Clone()
	siz := c.Size
	defer func(cx int, inc [2]int) { g.cx, g.inc = cx, inc }(g.cx, g.inc)

	// flip: mirror image
	g.cx, g.inc = 0, [2]int{1, 1}
	flip()
	randr(c)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			require.Equal(t, orig.Black(siz-1-x, y), c.Black(x, y))
		}
	}

	// four rotations restore the code
	c.Grid = orig.Clone()
	for i := 0; i < 4; i++ {
		g.cx, g.inc = 0, [2]int{1, 1}
		rotate()
		randr(c)
	}
	assert.Equal(t, orig.Data, c.Data)

	// one counterclockwise rotation moves the top right corner
	// to the top left
	c.Grid = orig.Clone()
	g.cx, g.inc = 0, [2]int{1, 1}
	rotate()
	randr(c)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			require.Equal(t, orig.Black(siz-1-y, x), c.Black(x, y))
		}
	}
	assert.True(t, c.Black(0, 0))
	assert.True(t, c.Black(0, siz-1))
	assert.True(t, c.Black(siz-1, siz-1))
}

func TestFormats(t *testing.T) {
	require.Len(t, formats, 2*len(encoders))
	for i := 0; i < len(formats); i += 2 {
		assert.Equal(t, formats[i]+"i", formats[i+1])
	}
}
