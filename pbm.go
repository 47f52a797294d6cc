// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	length := scale * (siz + bord*2)
	if length > 32767*8 {
		return ErrLargeImage
	}
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -bord; y < siz+bord; y++ {
		// Bespoke fast encoder for the common case.
		if scale == 8 {
			pbmRow8(row, c, y)
		} else {
			pbmRow(row, c, y)
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow8 encodes row y of the code in PBM format at scale 8,
// where each module takes a byte.
func pbmRow8(row []byte, c *Code, y int) {
	for i := range row {
		var v byte
		if c.dark(i-c.Border, y) {
			v = 0xff
		}
		row[i] = v
	}
}

// pbmRow encodes row y of the code in PBM format.
// Bits are set for dark pixels, the last byte is padded with zeros.
func pbmRow(row []byte, c *Code, y int) {
	clear(row)
	scale := c.Scale
	px := 0
	for x := -c.Border; x < c.Size+c.Border; x++ {
		if !c.dark(x, y) {
			px += scale
			continue
		}
		for end := px + scale; px < end; px++ {
			row[px>>3] |= 0x80 >> (px & 7)
		}
	}
}
