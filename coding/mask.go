// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██

// Invert reports whether mask m inverts the module at row, col.
func (m Mask) Invert(row, col int) bool {
	switch m {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return row*col%2+row*col%3 == 0
	case 6:
		return (row*col%2+row*col%3)%2 == 0
	case 7:
		return ((row+col)%2+row*col%3)%2 == 0
	}
	return false
}

// ApplyMask inverts the modules of g marked in maskable
// that mask m selects.  Applying the same mask twice restores g.
func ApplyMask(g Grid, maskable []bool, m Mask) {
	siz := g.Size
	for i, ok := range maskable {
		if ok && m.Invert(i/siz, i%siz) {
			g.Data[i] ^= 1
		}
	}
}

// Penalty points.
const (
	minRun     = 5  // N1: minimum run length
	runPP      = 3  //     points for a run of minRun, plus 1 per extra module
	boxPP      = 3  // N2: points per 2×2 box
	findPP     = 40 // N3: points per finder-like pattern
	balPP      = 10 // N4: points for every 5% away from 50% dark
	finderMask = 1<<11 - 1

	// finder-like patterns, with four light modules after or before
	findA = 0b1011101_0000
	findB = 0b0000_1011101
)

// lines calls f with every row and every column of g.
func (g Grid) lines(f func([]byte)) {
	siz := g.Size
	for y := 0; y < siz; y++ {
		f(g.Data[y*siz : (y+1)*siz])
	}
	col := make([]byte, siz)
	for x := 0; x < siz; x++ {
		for y := range col {
			col[y] = g.Data[y*siz+x]
		}
		f(col)
	}
}

// PenaltyRuns returns the penalty for runs of at least five
// modules of the same color in rows and columns.
func PenaltyRuns(g Grid) int {
	p := 0
	g.lines(func(line []byte) {
		r := 1
		for i := 1; i < len(line); i++ {
			if line[i] == line[i-1] {
				r++
				continue
			}
			if r >= minRun {
				p += runPP + r - minRun
			}
			r = 1
		}
		if r >= minRun {
			p += runPP + r - minRun
		}
	})
	return p
}

// PenaltyBoxes returns the penalty for 2×2 blocks of modules of the
// same color.  Overlapping blocks are counted separately.
func PenaltyBoxes(g Grid) int {
	p, siz, d := 0, g.Size, g.Data
	for y := 0; y < siz-1; y++ {
		for x := 0; x < siz-1; x++ {
			i := y*siz + x
			c := d[i]
			if d[i+1] == c && d[i+siz] == c && d[i+siz+1] == c {
				p += boxPP
			}
		}
	}
	return p
}

// PenaltyFinders returns the penalty for occurrences of the patterns
// 10111010000 and 00001011101 in rows and columns.  Only patterns
// lying entirely within the grid are counted.
func PenaltyFinders(g Grid) int {
	p := 0
	g.lines(func(line []byte) {
		var pat uint16
		for i, c := range line {
			pat = (pat<<1 | uint16(c)) & finderMask
			if i >= 10 && (pat == findA || pat == findB) {
				p += findPP
			}
		}
	})
	return p
}

// PenaltyBalance returns the penalty for the proportion of dark
// modules: 10 points for every full 5% away from 50%.
func PenaltyBalance(g Grid) int {
	n := 0
	for _, c := range g.Data {
		n += int(c)
	}
	total := len(g.Data)
	k := abs(100*n-50*total) / (5 * total)
	return k * balPP
}

// Penalty returns the total penalty of g used for choosing the mask.
func Penalty(g Grid) int {
	return PenaltyRuns(g) + PenaltyBoxes(g) + PenaltyFinders(g) +
		PenaltyBalance(g)
}

// SelectMask applies each mask pattern in turn to a copy of g and
// returns the mask with the lowest penalty along with the masked
// grid.  Ties go to the lower mask number.  g is not modified.
func SelectMask(g Grid, maskable []bool) (Mask, Grid) {
	best := NewGrid(g.Size) // best grid so far
	c := NewGrid(g.Size)
	bestM, bestPen := Mask(0), 1<<30
	for m := Mask(0); m < 8; m++ {
		copy(c.Data, g.Data)
		ApplyMask(c, maskable, m)
		if pen := Penalty(c); pen < bestPen {
			best, c = c, best
			bestM, bestPen = m, pen
		}
	}
	return bestM, best
}
