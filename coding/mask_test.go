// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridOf returns a grid built from rows of '#' (dark) and '.' (light).
func gridOf(rows ...string) Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		for c := range row {
			if row[c] == '#' {
				g.Data[r*g.Size+c] = 1
			}
		}
	}
	return g
}

func TestMaskInvert(t *testing.T) {
	t.Parallel()

	// first 6×6 modules of each mask, # inverted
	want := [8][]string{
		{"#.#.#.", ".#.#.#", "#.#.#.", ".#.#.#", "#.#.#.", ".#.#.#"},
		{"######", "......", "######", "......", "######", "......"},
		{"#..#..", "#..#..", "#..#..", "#..#..", "#..#..", "#..#.."},
		{"#..#..", "..#..#", ".#..#.", "#..#..", "..#..#", ".#..#."},
		{"###...", "###...", "...###", "...###", "###...", "###..."},
		{"######", "#.....", "#..#..", "#.#.#.", "#..#..", "#....."},
		{"######", "###...", "##.##.", "#.#.#.", "#.##.#", "#...##"},
		{"#.#.#.", "...###", "#...##", ".#.#.#", "###...", ".###.."},
	}
	for m, rows := range want {
		for r, row := range rows {
			for c := range row {
				assert.Equal(t, row[c] == '#', Mask(m).Invert(r, c), "mask %d at %d,%d", m, r, c)
			}
		}
	}
	assert.False(t, AutoMask.Invert(0, 0))
}

func TestApplyMaskInvolution(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	p, err := NewPlan(3)
	require.NoError(t, err)
	data := make([]byte, vtab[3].words)
	rng.Read(data)
	g, maskable := p.Place(data)
	orig := g.Clone()
	for m := Mask(0); m < 8; m++ {
		ApplyMask(g, maskable, m)
		assert.NotEqual(t, orig.Data, g.Data, "mask %v", m)
		for i, ok := range maskable {
			if !ok {
				require.Equal(t, orig.Data[i], g.Data[i], "mask %v changed a function module", m)
			}
		}
		ApplyMask(g, maskable, m)
		assert.Equal(t, orig.Data, g.Data, "mask %v", m)
	}
}

func TestPenaltyUniform(t *testing.T) {
	t.Parallel()

	g := NewGrid(21)
	// 42 lines with a run of 21: 3+16 each
	assert.Equal(t, 42*19, PenaltyRuns(g))
	assert.Equal(t, 20*20*3, PenaltyBoxes(g))
	assert.Zero(t, PenaltyFinders(g))
	assert.Equal(t, 100, PenaltyBalance(g))
	assert.Equal(t, 42*19+1200+100, Penalty(g))
}

func TestPenaltyRuns(t *testing.T) {
	t.Parallel()

	// rows: run of 5 (3), nothing, run of 7 light (5);
	// columns: none
	g := gridOf(
		"#####.#",
		"#.#.#.#",
		".......",
		"#.#.#.#",
		".#.#.#.",
		"#.#.#.#",
		".#.#.#.",
	)
	assert.Equal(t, 3+5, PenaltyRuns(g))
}

func TestPenaltyBoxes(t *testing.T) {
	t.Parallel()

	g := gridOf(
		"##.",
		"###",
		".##",
	)
	assert.Equal(t, 2*3, PenaltyBoxes(g))
}

func TestPenaltyFinders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		row  string
		want int
	}{
		{"#.###.#....", 40},
		{"....#.###.#", 40},
		{"....#.###.#....", 80},
		{"..#.###.#..", 0},
		{"#.###.#...", 0},
		{".#.###.#....", 40},
		{"#.#.###.#....", 40},
	}
	for _, tt := range tests {
		n := len(tt.row)
		rows := make([]string, n)
		rows[0] = tt.row
		for i := 1; i < n; i++ {
			rows[i] = strings.Repeat(".", n)
		}
		assert.Equal(t, tt.want, PenaltyFinders(gridOf(rows...)), "%q", tt.row)
	}
}

func TestPenaltyBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dark, total, want int
	}{
		{50, 100, 0},
		{54, 100, 0},
		{55, 100, 10},
		{45, 100, 10},
		{46, 100, 0},
		{60, 100, 20},
		{39, 100, 20},
		{100, 100, 100},
		{0, 100, 100},
	}
	for _, tt := range tests {
		g := Grid{Size: 10, Data: make([]byte, tt.total)}
		for i := 0; i < tt.dark; i++ {
			g.Data[i] = 1
		}
		assert.Equal(t, tt.want, PenaltyBalance(g), "%d/%d", tt.dark, tt.total)
	}
}

func TestSelectMask(t *testing.T) {
	t.Parallel()

	p, err := NewPlan(1)
	require.NoError(t, err)
	data := make([]byte, vtab[1].words)
	for i := range data {
		data[i] = byte(i * 13)
	}
	g, maskable := p.Place(data)
	orig := g.Clone()

	m, masked := SelectMask(g, maskable)
	assert.Equal(t, orig.Data, g.Data, "input modified")
	require.True(t, m.Valid())
	want := g.Clone()
	ApplyMask(want, maskable, m)
	assert.Equal(t, want.Data, masked.Data)
	best := Penalty(masked)
	for i := Mask(0); i < 8; i++ {
		c := g.Clone()
		ApplyMask(c, maskable, i)
		pen := Penalty(c)
		assert.GreaterOrEqual(t, pen, best, "mask %v", i)
		if i < m {
			assert.Greater(t, pen, best, "mask %v ties with %v", i, m)
		}
	}
}

func TestSelectMaskTie(t *testing.T) {
	t.Parallel()

	// Nothing maskable: all masks tie and the lowest wins.
	g := NewGrid(21)
	m, masked := SelectMask(g, make([]bool, len(g.Data)))
	assert.Equal(t, Mask(0), m)
	assert.Equal(t, g.Data, masked.Data)
}
