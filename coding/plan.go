// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"slices"
	"sync"
)

// A Grid is a square module matrix stored row by row,
// one byte per module: 0 is light, 1 is dark.
type Grid struct {
	Size int    // number of modules on a side
	Data []byte // len(Data) == Size*Size
}

// NewGrid returns a light grid with siz modules on a side.
func NewGrid(siz int) Grid {
	return Grid{Size: siz, Data: make([]byte, siz*siz)}
}

// Dark reports whether the module at row, col is dark.
func (g Grid) Dark(row, col int) bool {
	return g.Data[row*g.Size+col] != 0
}

// Black reports whether the module in column x of row y is dark.
// Modules outside the grid are light.
func (g Grid) Black(x, y int) bool {
	return 0 <= x && x < g.Size && 0 <= y && y < g.Size &&
		g.Data[y*g.Size+x] != 0
}

// Clone returns a copy of g.
func (g Grid) Clone() Grid {
	return Grid{Size: g.Size, Data: slices.Clone(g.Data)}
}

// A module is the state of a module during construction.
type module byte

const (
	light module = iota
	dark
	unset
)

// A Plan describes the function patterns of a QR code with a
// specific version, with the modules left for data unset.
type Plan struct {
	Version Version
	Size    int // number of modules on a side

	mod  []module
	free int
}

// Plans are created the first time a version is used and
// shared read-only afterwards.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for a QR code with the given version.
func NewPlan(v Version) (*Plan, error) {
	if !v.Valid() {
		return nil, ErrVersion
	}
	pp := &plans[v]
	pp.once.Do(func() { pp.p = vplan(v) })
	return pp.p, nil
}

// Free returns the number of modules available for data and
// check codewords and remainder bits.
func (p *Plan) Free() int { return p.free }

// IsFunction reports whether the module at row, col belongs to a
// function pattern or a reserved area rather than to data.
func (p *Plan) IsFunction(row, col int) bool {
	return p.mod[row*p.Size+col] != unset
}

func (p *Plan) set(row, col int, m module) {
	p.mod[row*p.Size+col] = m
}

func (p *Plan) setIfUnset(row, col int, m module) {
	if i := row*p.Size + col; p.mod[i] == unset {
		p.mod[i] = m
	}
}

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	vt := &vtab[v]
	siz := v.Size()
	p := &Plan{Version: v, Size: siz, mod: make([]module, siz*siz)}
	for i := range p.mod {
		p.mod[i] = unset
	}

	// Position boxes at top left, top right and bottom left,
	// then their light separators.
	corners := [3][2]int{{0, 0}, {0, siz - 7}, {siz - 7, 0}}
	for _, c := range corners {
		posBox(p, c[0], c[1])
	}
	for _, c := range corners {
		for r := c[0] - 1; r <= c[0]+7; r++ {
			for x := c[1] - 1; x <= c[1]+7; x++ {
				if 0 <= r && r < siz && 0 <= x && x < siz {
					p.setIfUnset(r, x, light)
				}
			}
		}
	}

	// Timing markers, dark on even indices.
	for i := 8; i < siz-8; i++ {
		m := module(1 - i&1)
		p.setIfUnset(6, i, m)
		p.setIfUnset(i, 6, m)
	}

	// Alignment boxes, except where they would overlap
	// position boxes.
	for _, y := range vt.align {
		for _, x := range vt.align {
			if x <= 7 && y <= 7 || x >= siz-8 && y <= 7 || x <= 7 && y >= siz-8 {
				continue
			}
			alignBox(p, y, x)
		}
	}

	// Format information, written after masking.
	for _, fc := range formatCells(siz) {
		for _, c := range fc {
			p.setIfUnset(c.row, c.col, light)
		}
	}

	// One lonely black pixel
	p.set(siz-8, 8, dark)

	// Version information, written after masking.
	if v >= 7 {
		if vt.pattern != versionCode(v) {
			panic("qr: internal error: version pattern")
		}
		for i := 0; i < 18; i++ {
			a, b := i/3, siz-11+i%3
			p.setIfUnset(a, b, light)
			p.setIfUnset(b, a, light)
		}
	}

	for _, m := range p.mod {
		if m == unset {
			p.free++
		}
	}
	if p.free != vt.words*8+vt.remainder {
		panic("qr: internal error: data module count")
	}
	return p
}

// posBox draws a position (large) box at upper left row, col.
func posBox(p *Plan, row, col int) {
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			m := dark
			if d := max(abs(r-3), abs(c-3)); d == 2 {
				m = light
			}
			p.set(row+r, col+c, m)
		}
	}
}

// alignBox draws an alignment (small) box centered at row, col.
// Modules already set are kept.
func alignBox(p *Plan, row, col int) {
	for r := -2; r <= 2; r++ {
		for c := -2; c <= 2; c++ {
			m := dark
			if max(abs(r), abs(c)) == 1 {
				m = light
			}
			p.setIfUnset(row+r, col+c, m)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Place writes codewords to a fresh grid in zigzag scan order:
// two-module columns from right to left, skipping the vertical
// timing column, alternately upwards and downwards, the right
// module before the left.  Modules left after the last codeword
// are light.  Place returns the grid with the function patterns
// and a map of the modules written, which are subject to masking.
func (p *Plan) Place(codewords []byte) (Grid, []bool) {
	siz := p.Size
	nbit := len(codewords) * 8
	if nbit > p.free {
		panic("qr: too many codewords")
	}
	mod := slices.Clone(p.mod)
	maskable := make([]bool, len(mod))
	bit := 0
	up := true
	for right := siz - 1; right >= 1; right -= 2 {
		if right == 6 { // vertical timing strip
			right--
		}
		for vert := 0; vert < siz; vert++ {
			row := vert
			if up {
				row = siz - 1 - vert
			}
			for col := right; col >= right-1; col-- {
				i := row*siz + col
				if mod[i] != unset {
					continue
				}
				mod[i] = light
				if bit < nbit && codewords[bit>>3]>>(7&^bit)&1 != 0 {
					mod[i] = dark
				}
				maskable[i] = true
				bit++
			}
		}
		up = !up
	}

	g := NewGrid(siz)
	for i, m := range mod {
		switch m {
		case dark:
			g.Data[i] = 1
		case unset:
			panic("qr: undetermined module")
		}
	}
	return g, maskable
}
