// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text into QR code module grids.

QR versions 1 to 10 are supported, at any of the four error correction
levels, with the whole text encoded as a single numeric, alphanumeric
or byte mode segment.  By default the mode, the smallest version that
fits and the mask with the lowest penalty are chosen automatically:

	c, err := qr.Encode("HELLO WORLD", nil)

The zero Options value asks for the same defaults, so only the
settings of interest need to be given:

	o := qr.Options{Version: 2}.WithLevel(qr.H)
	c, err := qr.Encode("HELLO WORLD", &o)

The resulting Code holds the module grid and renders it as an
image.Image, as PNG, PBM or SVG, or as text.
*/
package qr // import "github.com/unixdj/qrgrid"

import (
	"errors"
	"image"
	"image/color"

	"github.com/unixdj/qrgrid/coding"
)

type (
	// A Level denotes a QR error correction level.
	// From least to most tolerant of errors, they are L, M, Q, H.
	Level = coding.Level
	// A Version is a QR version, 1 to 10.
	Version = coding.Version
	// A Mask is a QR data mask pattern, 0 to 7.
	Mask = coding.Mask
	// A Mode is a QR segment encoding mode.
	Mode = coding.Mode
	// A CapacityError reports text too long for the requested code.
	CapacityError = coding.CapacityError
)

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
	Kanji        = coding.Kanji // reserved, not encodable
)

const (
	AutoMode    Mode    = 0  // choose the most compact mode
	AutoVersion Version = 0  // choose the smallest version that fits
	AutoMask    Mask    = -1 // choose the mask with the lowest penalty
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
	ErrCapacity   = coding.ErrCapacity
	ErrLevel      = coding.ErrLevel
	ErrVersion    = coding.ErrVersion
	ErrMask       = coding.ErrMask
)

// Options control encoding.  The zero value requests level M and
// leaves the version, mask and mode to Encode.  Use WithLevel and
// WithMask to request a particular level or mask.
type Options struct {
	Version Version // QR version, or AutoVersion
	Mode    Mode    // encoding mode, or AutoMode

	level    Level
	mask     Mask
	hasLevel bool
	hasMask  bool
}

// DefaultOptions are the zero Options.
var DefaultOptions Options

// WithLevel returns a copy of o requesting error correction level l.
func (o Options) WithLevel(l Level) Options {
	o.level, o.hasLevel = l, true
	return o
}

// WithMask returns a copy of o requesting mask pattern m.
// WithMask(AutoMask) restores the default.
func (o Options) WithMask(m Mask) Options {
	o.mask, o.hasMask = m, m != AutoMask
	return o
}

// Level returns the requested error correction level, M by default.
func (o Options) Level() Level {
	if !o.hasLevel {
		return M
	}
	return o.level
}

// Mask returns the requested mask pattern, AutoMask by default.
func (o Options) Mask() Mask {
	if !o.hasMask {
		return AutoMask
	}
	return o.mask
}

// ChooseMode returns the most compact mode able to encode text:
// Numeric if text consists of digits only, Alphanumeric if every
// byte is in the QR alphanumeric set, Byte otherwise.
// The empty string is encoded in Byte mode.
func ChooseMode(text string) Mode {
	if text == "" {
		return Byte
	}
	mode := Numeric
	for i := 0; i < len(text); i++ {
		if mode == Numeric && !Numeric.Accepts(text[i]) {
			mode = Alphanumeric
		}
		if mode == Alphanumeric && !Alphanumeric.Accepts(text[i]) {
			return Byte
		}
	}
	return mode
}

// ChooseVersion returns the smallest version holding seg at level l.
// If seg does not fit into any supported version, ChooseVersion
// returns a *CapacityError with Version set to AutoVersion.
func ChooseVersion(seg coding.Segment, l Level) (Version, error) {
	switch seg.Mode {
	case Numeric, Alphanumeric, Byte:
	default:
		return 0, coding.ModeError(seg.Mode)
	}
	if !seg.IsValid() {
		return 0, coding.SegmentError(seg)
	}
	if !l.Valid() {
		return 0, ErrLevel
	}
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		class := v.SizeClass()
		if seg.Fits(class) && seg.EncodedLength(class) <= v.DataBits(l) {
			return v, nil
		}
	}
	return 0, &CapacityError{
		Mode:  seg.Mode,
		Level: l,
		Bits:  seg.EncodedLength(coding.MaxVersion.SizeClass()),
	}
}

// Encode returns an encoding of text using the given options.
// A nil opt is the same as the zero Options.
func Encode(text string, opt *Options) (*Code, error) {
	var o Options
	if opt != nil {
		o = *opt
	}
	l, mask := o.Level(), o.Mask()
	switch {
	case !l.Valid():
		return nil, ErrLevel
	case o.Version != AutoVersion && !o.Version.Valid():
		return nil, ErrVersion
	case mask != AutoMask && !mask.Valid():
		return nil, ErrMask
	}

	seg := coding.Segment{Text: text, Mode: o.Mode}
	if seg.Mode == AutoMode {
		seg.Mode = ChooseMode(text)
	}
	v := o.Version
	if v == AutoVersion {
		var err error
		if v, err = ChooseVersion(seg, l); err != nil {
			return nil, err
		}
	}
	cc, err := coding.Encode(v, l, mask, seg)
	if err != nil {
		return nil, err
	}
	return &Code{Code: *cc, Mode: seg.Mode, Scale: 8, Border: 4}, nil
}

// A Code is a square grid of QR modules with rendering parameters.
// It implements image.Image via Image, and PNG, PBM and text encoding.
type Code struct {
	coding.Code
	Mode    Mode            // encoding mode of the text
	Scale   int             // number of image pixels per QR module
	Border  int             // quiet zone width in modules
	Reverse bool            // reverse colours
	Palette *[2]color.Color // light and dark colours; nil for white and black
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && len(c.Data) == c.Size*c.Size &&
		c.Scale > 0 && c.Border >= 0
}

// dark reports whether the module at (x,y), which may lie in
// the quiet zone, is drawn in the dark colour.
func (c *Code) dark(x, y int) bool {
	return c.Black(x, y) != c.Reverse
}

// Image returns an Image displaying the code, including the quiet zone.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *Code) colors() (light, dark color.Color) {
	if c.Palette != nil {
		return c.Palette[0], c.Palette[1]
	}
	return whiteColor, blackColor
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	light, dark := c.colors()
	if x >= 0 && y >= 0 && c.dark(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return dark
	}
	return light
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette != nil {
		light, dark := c.colors()
		return color.Palette{light, dark}
	}
	return color.GrayModel
}
