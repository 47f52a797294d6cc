// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.  An RSEncoder is
// immutable after construction and safe for concurrent use.
type RSEncoder struct {
	f    *Field
	c    int
	gen  []byte // generator polynomial, highest degree first, gen[0] == 1
	lgen []byte // log of gen[1:]
}

// Generator returns the generator polynomial of degree c,
// the product of (x - α^i) for 0 <= i < c, highest degree first.
func (f *Field) Generator(c int) []byte {
	p := make([]byte, 1, c+1)
	p[0] = 1
	for i := 0; i < c; i++ {
		// p *= (x - α^i); subtraction is addition in GF(2^n).
		a := f.Exp(i)
		p = append(p, 0)
		for j := len(p) - 1; j > 0; j-- {
			p[j] ^= f.Mul(p[j-1], a)
		}
	}
	return p
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 1 || c > 254 {
		panic("gf256: invalid number of error correction bytes")
	}
	gen := f.Generator(c)
	lgen := make([]byte, c)
	for i, v := range gen[1:] {
		if v == 0 {
			// α^i are distinct, so no coefficient vanishes.
			panic("gf256: zero generator coefficient")
		}
		lgen[i] = byte(f.Log(v))
	}
	return &RSEncoder{f: f, c: c, gen: gen, lgen: lgen}
}

// Len returns the number of error correction bytes.
func (rs *RSEncoder) Len() int { return rs.c }

// Gen returns a copy of the generator polynomial.
func (rs *RSEncoder) Gen() []byte {
	return append([]byte(nil), rs.gen...)
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
// The remainder of data·x^c divided by the generator is
// computed in check, which must hold at least c bytes.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	f, c := rs.f, rs.c
	if len(check) < c {
		panic("gf256: invalid check byte length")
	}
	rem := check[:c]
	clear(rem)
	for _, d := range data {
		factor := d ^ rem[0]
		copy(rem, rem[1:])
		rem[c-1] = 0
		if factor == 0 {
			continue
		}
		lf := int(f.log[factor])
		for j, lg := range rs.lgen {
			rem[j] ^= f.exp[lf+int(lg)]
		}
	}
}
