// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A version describes metadata associated with a version.
type version struct {
	words     int    // total codewords
	remainder int    // remainder bits after the last codeword
	pattern   uint32 // version information, 0 below version 7
	align     []int  // alignment pattern center coordinates
	level     [4]level
}

// A level describes the error correction blocks of a version at
// one error correction level.  Blocks in the second group hold one
// more data codeword than those in the first.
type level struct {
	blocks [2]int // number of blocks in each group
	data   int    // data codewords per block in the first group
	check  int    // check codewords per block
}

func (l *level) nblock() int { return l.blocks[0] + l.blocks[1] }

func (l *level) dataBytes() int {
	return l.blocks[0]*l.data + l.blocks[1]*(l.data+1)
}

// A Group describes blocks of equal length.
type Group struct {
	Blocks       int // number of blocks
	DataPerBlock int // data codewords per block
}

// VersionInfo describes the capacity and block structure of a QR
// code with a specific version and level.
type VersionInfo struct {
	Version        Version
	Level          Level
	Size           int     // modules on a side
	TotalCodewords int     // data and check codewords
	DataCodewords  int     // data codewords
	ECPerBlock     int     // check codewords per block
	Groups         []Group // block groups in placement order
	Remainder      int     // remainder bits
	Align          []int   // alignment pattern center coordinates
}

// Info returns the VersionInfo for v and l.
func (v Version) Info(l Level) (VersionInfo, error) {
	if !v.Valid() {
		return VersionInfo{}, ErrVersion
	}
	if !l.Valid() {
		return VersionInfo{}, ErrLevel
	}
	vt := &vtab[v]
	lev := &vt.level[l]
	vi := VersionInfo{
		Version:        v,
		Level:          l,
		Size:           v.Size(),
		TotalCodewords: vt.words,
		DataCodewords:  lev.dataBytes(),
		ECPerBlock:     lev.check,
		Remainder:      vt.remainder,
		Align:          append([]int(nil), vt.align...),
	}
	for i, n := range lev.blocks {
		if n != 0 {
			vi.Groups = append(vi.Groups, Group{n, lev.data + i})
		}
	}
	return vi, nil
}

// Blocks returns the total number of error correction blocks.
func (vi *VersionInfo) Blocks() int {
	n := 0
	for _, g := range vi.Groups {
		n += g.Blocks
	}
	return n
}
