// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"sync"

	"github.com/unixdj/qrgrid/gf256"
)

// Reed-Solomon encoders by number of check bytes, created on
// first use.  Versions 1 to 10 use at most 30 check bytes.
var rsEncoders [31]func() *gf256.RSEncoder

func init() {
	for i := 1; i < len(rsEncoders); i++ {
		c := i
		rsEncoders[i] = sync.OnceValue(func() *gf256.RSEncoder {
			return gf256.NewRSEncoder(Field, c)
		})
	}
}

// A Block is an error correction block: a run of data codewords
// and their check codewords.
type Block struct {
	Data  []byte
	Check []byte
}

// Blocks splits data into error correction blocks for the given
// version and level and computes their check codewords.  The Data
// slices share data's underlying array.  len(data) must be equal to
// v.DataBytes(l).
func Blocks(data []byte, v Version, l Level) []Block {
	lev := &vtab[v].level[l]
	if len(data) != lev.dataBytes() {
		panic("qr: wrong data length")
	}
	rs := rsEncoders[lev.check]()
	blocks := make([]Block, 0, lev.nblock())
	check := make([]byte, lev.nblock()*lev.check)
	db, nc := lev.data, lev.check
	for _, n := range lev.blocks {
		for i := 0; i < n; i++ {
			b := Block{Data: data[:db:db], Check: check[:nc:nc]}
			rs.ECC(b.Data, b.Check)
			blocks = append(blocks, b)
			data, check = data[db:], check[nc:]
		}
		db++
	}
	return blocks
}

// Interleave returns the final codeword sequence: the i-th data
// codeword of every block in block order for increasing i, skipping
// blocks already exhausted, followed by the check codewords
// interleaved the same way.
func Interleave(blocks []Block) []byte {
	var n, nd, nc int
	for _, b := range blocks {
		n += len(b.Data) + len(b.Check)
		nd = max(nd, len(b.Data))
		nc = max(nc, len(b.Check))
	}
	dst := make([]byte, 0, n)
	for i := 0; i < nd; i++ {
		for _, b := range blocks {
			if i < len(b.Data) {
				dst = append(dst, b.Data[i])
			}
		}
	}
	for i := 0; i < nc; i++ {
		for _, b := range blocks {
			if i < len(b.Check) {
				dst = append(dst, b.Check[i])
			}
		}
	}
	return dst
}
