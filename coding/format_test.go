// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint16(0x5412), FormatBits(M, 0))
	assert.Equal(t, uint16(0x40ce), FormatBits(M, 5))
	assert.Equal(t, uint16(0x77c4), FormatBits(L, 0))
	assert.Equal(t, uint16(0x083b), FormatBits(H, 7))
	for l := L; l <= H; l++ {
		for m := Mask(0); m < 8; m++ {
			fb := FormatBits(l, m)
			assert.Equal(t, ftab[l][m], fb, "%v mask %v", l, m)
			assert.Zero(t, fb>>15)
			// unmasked, the codeword is a multiple of the generator
			assert.Zero(t, bchRem(uint32(fb^formatXOR), formatPoly))
		}
	}
}

func TestVersionBits(t *testing.T) {
	t.Parallel()

	want := map[Version]uint32{7: 0x07c94, 8: 0x085bc, 9: 0x09a99, 10: 0x0a4d3}
	for v := MinVersion; v <= MaxVersion; v++ {
		assert.Equal(t, want[v], VersionBits(v), "version %v", v)
	}
	assert.Zero(t, VersionBits(11))
	for v, vb := range want {
		assert.Equal(t, vb, versionCode(v))
		assert.Equal(t, uint32(v), vb>>12)
	}
}

func TestDecodeFormat(t *testing.T) {
	t.Parallel()

	// Any three bit errors are corrected: the minimum distance
	// of the format code is 7.
	flips := []uint16{0, 1, 1 << 14, 0x0007, 0x4201, 0x0a80, 0x7000}
	for l := L; l <= H; l++ {
		for m := Mask(0); m < 8; m++ {
			for _, f := range flips {
				gl, gm, ok := DecodeFormat(FormatBits(l, m) ^ f)
				require.True(t, ok, "%v mask %v flip %#x", l, m, f)
				assert.Equal(t, l, gl)
				assert.Equal(t, m, gm)
			}
		}
	}
	dmin := 15
	for i, a := range ftab {
		for j, x := range a {
			for k, b := range ftab {
				for n, y := range b {
					if i != k || j != n {
						dmin = min(dmin, bits.OnesCount16(x^y))
					}
				}
			}
		}
	}
	assert.Equal(t, 7, dmin)
}

func TestDecodeFormatFailure(t *testing.T) {
	t.Parallel()

	// Some 15 bit words lie at distance 4 or more
	// from every format codeword.
	var far uint16
	found := false
	for x := 0; x < 1<<15 && !found; x++ {
		near := false
		for _, a := range ftab {
			for _, c := range a {
				if bits.OnesCount16(uint16(x)^c) <= 3 {
					near = true
				}
			}
		}
		if !near {
			far, found = uint16(x), true
		}
	}
	require.True(t, found)
	_, _, ok := DecodeFormat(far)
	assert.False(t, ok)
}

func TestWriteFormat(t *testing.T) {
	t.Parallel()

	g := NewGrid(21)
	WriteFormat(g, M, 0) // 101010000010010
	siz := g.Size
	dark := map[cell]bool{
		{1, 8}: true, {4, 8}: true, {8, 4}: true, {8, 2}: true, {8, 0}: true,
		{8, siz - 2}: true, {8, siz - 5}: true,
		{siz - 5, 8}: true, {siz - 3, 8}: true, {siz - 1, 8}: true,
	}
	for _, fc := range formatCells(siz) {
		for _, c := range fc {
			assert.Equal(t, dark[c], g.Dark(c.row, c.col), "%d,%d", c.row, c.col)
		}
	}
	n := 0
	for _, d := range g.Data {
		n += int(d)
	}
	assert.Equal(t, len(dark), n)

	for l := L; l <= H; l++ {
		for m := Mask(0); m < 8; m++ {
			WriteFormat(g, l, m)
			fb := ReadFormat(g)
			assert.Equal(t, [2]uint16{FormatBits(l, m), FormatBits(l, m)}, fb)
		}
	}
}

func TestFormatCells(t *testing.T) {
	t.Parallel()

	for _, siz := range []int{21, 57} {
		seen := make(map[cell]bool)
		for _, fc := range formatCells(siz) {
			for _, c := range fc {
				assert.False(t, seen[c], "%v repeats", c)
				seen[c] = true
				assert.True(t, c.row == 8 || c.col == 8)
				assert.NotEqual(t, 6, c.row)
				assert.NotEqual(t, 6, c.col)
			}
		}
		assert.Len(t, seen, 30)
		assert.False(t, seen[cell{siz - 8, 8}], "dark module")
	}
}

func TestWriteVersion(t *testing.T) {
	t.Parallel()

	g := NewGrid(Version(7).Size())
	WriteVersion(g, 7)
	assert.Equal(t, [2]uint32{0x07c94, 0x07c94}, ReadVersion(g))
	siz := g.Size
	// 0x07c94 = 000111 110010 010100; bit 2 is set, bit 0 is not
	assert.True(t, g.Dark(0, siz-9))
	assert.True(t, g.Dark(siz-9, 0))
	assert.False(t, g.Dark(0, siz-11))

	g = NewGrid(Version(6).Size())
	WriteVersion(g, 6)
	for _, d := range g.Data {
		require.Zero(t, d)
	}
	assert.Equal(t, [2]uint32{}, ReadVersion(g))
}
