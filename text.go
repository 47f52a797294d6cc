// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// halfBlocks are indexed by top | bottom<<1.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// String returns the code drawn with Unicode half blocks, two modules
// per character cell vertically, including the quiet zone.  Dark
// modules are drawn in the foreground colour; set c.Reverse for
// terminals with a dark background.
func (c *Code) String() string {
	if c == nil || c.Size == 0 {
		return ""
	}
	siz, bord := c.Size, max(c.Border, 0)
	var b strings.Builder
	b.Grow((siz + 2*bord + 1) * (siz + 2*bord + 1) / 2 * 3)
	for y := -bord; y < siz+bord; y += 2 {
		for x := -bord; x < siz+bord; x++ {
			i := 0
			if c.dark(x, y) {
				i |= 1
			}
			// a missing bottom row is quiet zone
			if y+1 < siz+bord && c.dark(x, y+1) {
				i |= 2
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII returns the code drawn with two characters per module,
// "##" for dark and spaces for light, including the quiet zone.
func (c *Code) ASCII() string {
	if c == nil || c.Size == 0 {
		return ""
	}
	siz, bord := c.Size, max(c.Border, 0)
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.dark(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	return string(b)
}
