// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

const (
	formatPoly  = 0x537  // BCH(15,5) generator
	formatXOR   = 0x5412 // format information mask
	versionPoly = 0x1f25 // BCH(18,6) generator
)

// bchRem returns the remainder of the polynomial v divided by poly
// over GF(2).
func bchRem(v, poly uint32) uint32 {
	np := bits.Len32(poly)
	for n := bits.Len32(v); n >= np; n = bits.Len32(v) {
		v ^= poly << (n - np)
	}
	return v
}

// FormatBits returns the 15 bit format information for level l and
// mask m: the level code (L=01, M=00, Q=11, H=10) and the mask
// number, followed by 10 BCH check bits, XORed with 0x5412.
func FormatBits(l Level, m Mask) uint16 {
	v := (uint32(l^1)<<3 | uint32(m)) << 10
	return uint16((v | bchRem(v, formatPoly)) ^ formatXOR)
}

// versionCode returns the 18 bit version information for v.
func versionCode(v Version) uint32 {
	c := uint32(v) << 12
	return c | bchRem(c, versionPoly)
}

// VersionBits returns the 18 bit version information for v:
// the version number followed by 12 BCH check bits.
// Versions below 7 carry no version information and
// VersionBits returns 0.
func VersionBits(v Version) uint32 {
	if v < 7 || !v.Valid() {
		return 0
	}
	return vtab[v].pattern
}

// DecodeFormat returns the level and mask of the format information
// codeword nearest to fb.  It reports false if no codeword lies
// within Hamming distance 3.
func DecodeFormat(fb uint16) (Level, Mask, bool) {
	bestL, bestM, bestD := L, Mask(0), 16
	for l, row := range ftab {
		for m, c := range row {
			if d := bits.OnesCount16(fb ^ c); d < bestD {
				bestL, bestM, bestD = Level(l), Mask(m), d
			}
		}
	}
	if bestD > 3 {
		return 0, 0, false
	}
	return bestL, bestM, true
}

type cell struct{ row, col int }

// formatCells returns the positions of bits 0 to 14 of the two
// copies of the format information in a grid with siz modules on a
// side.  The first copy surrounds the top left position box, the
// second is split between the top right and bottom left ones.
func formatCells(siz int) (fc [2][15]cell) {
	for i := 0; i < 15; i++ {
		switch {
		case i < 6:
			fc[0][i] = cell{i, 8}
		case i < 8:
			fc[0][i] = cell{i + 1, 8}
		case i == 8:
			fc[0][i] = cell{8, 7}
		default:
			fc[0][i] = cell{8, 14 - i}
		}
		if i < 8 {
			fc[1][i] = cell{8, siz - 1 - i}
		} else {
			fc[1][i] = cell{siz - 15 + i, 8}
		}
	}
	return fc
}

// WriteFormat writes both copies of the format information for
// level l and mask m to g.
func WriteFormat(g Grid, l Level, m Mask) {
	fb := FormatBits(l, m)
	for _, fc := range formatCells(g.Size) {
		for i, c := range fc {
			g.Data[c.row*g.Size+c.col] = byte(fb >> i & 1)
		}
	}
}

// ReadFormat returns the two copies of the format information in g.
func ReadFormat(g Grid) [2]uint16 {
	var fb [2]uint16
	for n, fc := range formatCells(g.Size) {
		for i, c := range fc {
			fb[n] |= uint16(g.Data[c.row*g.Size+c.col]&1) << i
		}
	}
	return fb
}

// WriteVersion writes both copies of the version information for
// v to g.  Bit i goes to row i/3, column siz-11+i%3 in the top right
// block and to the transposed position in the bottom left block.
// It does nothing for versions below 7.
func WriteVersion(g Grid, v Version) {
	vb := VersionBits(v)
	if vb == 0 {
		return
	}
	siz := g.Size
	for i := 0; i < 18; i++ {
		a, b := i/3, siz-11+i%3
		bit := byte(vb >> i & 1)
		g.Data[a*siz+b] = bit
		g.Data[b*siz+a] = bit
	}
}

// ReadVersion returns the two copies of the version information
// in g, or zeros if g is smaller than version 7.
func ReadVersion(g Grid) [2]uint32 {
	var vb [2]uint32
	siz := g.Size
	if siz < Version(7).Size() {
		return vb
	}
	for i := 0; i < 18; i++ {
		a, b := i/3, siz-11+i%3
		vb[0] |= uint32(g.Data[a*siz+b]&1) << i
		vb[1] |= uint32(g.Data[b*siz+a]&1) << i
	}
	return vb
}
