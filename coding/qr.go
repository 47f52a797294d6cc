// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details for QR
// versions 1 to 10: the bit stream, error correction, module
// placement, masking and format information.
package coding // import "github.com/unixdj/qrgrid/coding"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unixdj/qrgrid/gf256"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrVersion  = errors.New("qr: invalid version")
	ErrMask     = errors.New("qr: invalid mask")
	ErrCapacity = errors.New("qr: data too long")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Only versions 1 to 10 are supported.
type Version int

// Supported versions.
const (
	MinVersion Version = 1
	MaxVersion Version = 10
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Valid reports whether v is a supported version.
func (v Version) Valid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a QR code
// of version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes, selecting the length of the
// character count field.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// DataBytes returns the number of data codewords in a QR code
// with the given version and level.
func (v Version) DataBytes(l Level) int {
	return vtab[v].level[l].dataBytes()
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if l.Valid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is one of L, M, Q, H.
func (l Level) Valid() bool { return L <= l && l <= H }

// ParseLevel returns the level named by s, case insensitively.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("LMQH", s[0]&^0x20); i >= 0 {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrLevel, s)
}

// A Mask represents one of the eight QR data mask patterns.
type Mask int

// AutoMask requests the mask with the lowest penalty.
const AutoMask Mask = -1

func (m Mask) String() string {
	if m == AutoMask {
		return "auto"
	}
	return strconv.Itoa(int(m))
}

// Valid reports whether m is a mask pattern number.
func (m Mask) Valid() bool { return 0 <= m && m < 8 }

// A Mode is a QR segment encoding mode.  Its value is the 4 bit mode
// indicator written before the segment.
type Mode int

// Encoding modes.
const (
	Numeric      Mode = 1 // digits 0-9
	Alphanumeric Mode = 2 // 0-9, A-Z, space and $%*+-./:
	Byte         Mode = 4 // any data
	Kanji        Mode = 8 // reserved, not encodable
)

func (mode Mode) String() string {
	switch mode {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Byte:
		return "byte"
	case Kanji:
		return "kanji"
	}
	return strconv.Itoa(int(mode))
}

// ParseMode returns the mode named by s.  Unique prefixes of
// mode names are accepted.
func ParseMode(s string) (Mode, error) {
	if s != "" {
		s = strings.ToLower(s)
		for _, mode := range []Mode{Numeric, Alphanumeric, Byte, Kanji} {
			if strings.HasPrefix(mode.String(), s) {
				return mode, nil
			}
		}
	}
	return 0, fmt.Errorf("qr: invalid mode %q", s)
}

// countLength lists lengths of the character count field
// in the three QR version size classes.
var countLength = [Kanji + 1][3]int{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
	Kanji:        {8, 10, 12},
}

// CountLength returns the length in bits of the character count
// field for mode in the given size class, or 0 if mode is invalid.
func (mode Mode) CountLength(class int) int {
	if mode < 0 || mode > Kanji || class < Class0 || class > Class2 {
		return 0
	}
	return countLength[mode][class]
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table, indexed by the low 6 bits of the
// character.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 8, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// Accepts reports whether the byte c is encodable in mode.
func (mode Mode) Accepts(c byte) bool {
	switch mode {
	case Numeric:
		return c-'0' < 10
	case Alphanumeric:
		return alphamask>>(c-' ')&1 != 0
	case Byte:
		return true
	}
	return false
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents a Segment whose text is not encodable
// in its mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

// ModeError represents an invalid or unsupported Mode.
type ModeError Mode

func (e ModeError) Error() string {
	if Mode(e) == Kanji {
		return "qr: kanji mode not supported"
	}
	return fmt.Sprintf("qr: invalid mode %s", Mode(e))
}

// A CapacityError reports data that does not fit into the
// requested QR code.
type CapacityError struct {
	Mode    Mode
	Level   Level
	Version Version // 0 if the version was chosen automatically
	Bits    int     // encoded length
}

func (e *CapacityError) Error() string {
	if e.Version == 0 {
		return fmt.Sprintf("qr: %d-bit %s segment too long for level %s",
			e.Bits, e.Mode, e.Level)
	}
	return fmt.Sprintf("qr: cannot encode %d-bit %s segment into %d-bit code (version %s, level %s)",
		e.Bits, e.Mode, e.Version.DataBits(e.Level), e.Version, e.Level)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// check reports whether seg may be encoded.
func (seg Segment) check() error {
	switch seg.Mode {
	case Numeric, Alphanumeric, Byte:
	default:
		return ModeError(seg.Mode)
	}
	if !seg.IsValid() {
		return SegmentError(seg)
	}
	return nil
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	switch seg.Mode {
	case Byte:
		return true
	case Numeric, Alphanumeric:
	default:
		return false
	}
	for i := 0; i < len(seg.Text); i++ {
		if !seg.Mode.Accepts(seg.Text[i]) {
			return false
		}
	}
	return true
}

// payloadLength returns the length in bits of n characters
// encoded in mode, excluding the header.
func payloadLength(mode Mode, n int) int {
	switch mode {
	case Numeric:
		return (10*n + 2) / 3
	case Alphanumeric:
		return (11*n + 1) / 2
	}
	return n * 8
}

// EncodedLength returns the encoded length in bits of seg in the
// given QR version size class, including the mode indicator and the
// character count.  The segment is not validated.
func (seg Segment) EncodedLength(class int) int {
	return 4 + seg.Mode.CountLength(class) + payloadLength(seg.Mode, len(seg.Text))
}

// Fits reports whether the character count of seg fits into the
// count field of the given size class.
func (seg Segment) Fits(class int) bool {
	return len(seg.Text) < 1<<seg.Mode.CountLength(class)
}

// Encode writes seg encoded for the given QR version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	if err := seg.check(); err != nil {
		return err
	}
	if !seg.Fits(class) {
		return &CapacityError{Mode: seg.Mode, Bits: seg.EncodedLength(class)}
	}
	s := seg.Text
	b.Write(uint32(seg.Mode), 4)
	b.Write(uint32(len(s)), seg.Mode.CountLength(class))
	switch seg.Mode {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			b.Write(uint32(s[0]-'0')*100+uint32(s[1]-'0')*10+uint32(s[2]-'0'), 10)
		}
		switch len(s) {
		case 2:
			b.Write(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
		case 1:
			b.Write(uint32(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(uint32(alpha[s[0]&0x3f])*45+uint32(alpha[s[1]&0x3f]), 11)
		}
		if len(s) == 1 {
			b.Write(uint32(alpha[s[0]&0x3f]), 6)
		}
	case Byte:
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
	}
	return nil
}

// Bits is an MSB-first bit stream writer.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, vtab[v].words)}
}

// Reset clears b.
func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the bytes written to b.  The number of bits
// written must be a multiple of 8.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write writes the nbit low bits of v to b, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// padTo adds up to t zero terminator bits to b, zero bits up to a
// byte boundary, and alternating 0xec and 0x11 bytes up to n bits.
func (b *Bits) padTo(t, n int) {
	b.nbit = min(b.nbit+t, n)
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	b.nbit = len(b.b) * 8
	for pad := byte(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
}

// Pad adds the terminator and padding to b, filling the data
// capacity of a QR code with the given version and level.
// Pad panics if b holds more data than fits.
func (b *Bits) Pad(v Version, l Level) {
	nb := v.DataBits(l)
	if b.nbit > nb {
		panic("qr: too much data")
	}
	b.padTo(4, nb)
}
