//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
)

// tables from qrencode-3.1.1/qrspec.c

var capacity = [11]struct {
	width     int
	words     int
	remainder int
	ec        [4]int
}{
	{0, 0, 0, [4]int{0, 0, 0, 0}},
	{21, 26, 0, [4]int{7, 10, 13, 17}}, // 1
	{25, 44, 7, [4]int{10, 16, 22, 28}},
	{29, 70, 7, [4]int{15, 26, 36, 44}},
	{33, 100, 7, [4]int{20, 36, 52, 64}},
	{37, 134, 7, [4]int{26, 48, 72, 88}}, // 5
	{41, 172, 7, [4]int{36, 64, 96, 112}},
	{45, 196, 0, [4]int{40, 72, 108, 130}},
	{49, 242, 0, [4]int{48, 88, 132, 156}},
	{53, 292, 0, [4]int{60, 110, 160, 192}},
	{57, 346, 0, [4]int{72, 130, 192, 224}}, //10
}

var eccTable = [11][4][2]int{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // 1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {2, 0}, {2, 0}},
	{{1, 0}, {2, 0}, {2, 0}, {4, 0}},
	{{1, 0}, {2, 0}, {2, 2}, {2, 2}}, // 5
	{{2, 0}, {4, 0}, {4, 0}, {4, 0}},
	{{2, 0}, {4, 0}, {2, 4}, {4, 1}},
	{{2, 0}, {2, 2}, {4, 2}, {4, 2}},
	{{2, 0}, {3, 2}, {4, 4}, {4, 4}},
	{{2, 2}, {4, 1}, {6, 2}, {6, 2}}, //10
}

// alignment pattern centers other than 6
var align = [11][]int{
	2: {18}, 3: {22}, 4: {26}, 5: {30}, 6: {34},
	7: {22, 38}, 8: {24, 42}, 9: {26, 46}, 10: {28, 50},
}

var versionPattern = [11]int{
	7: 0x07c94, 8: 0x085bc, 9: 0x09a99, 10: 0x0a4d3,
}

func calcFormat(fb uint16) uint16 {
	const formatPoly = 0x537
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return fb | rem
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Version table.
var vtab = [MaxVersion + 1]version{
`)
	for i := 1; i < len(capacity); i++ {
		c := &capacity[i]
		if c.width != i*4+17 {
			panic(fmt.Sprint("bad width for version ", i))
		}
		var al string
		if len(align[i]) != 0 {
			al = "[]int{6"
			for _, x := range align[i] {
				al += fmt.Sprintf(", %d", x)
			}
			al += "}"
		} else {
			al = "nil"
		}
		fmt.Fprintf(w, "\t%d: {%d, %d, %#x, %s, [4]level{", i,
			c.words, c.remainder, versionPattern[i], al)
		for l := 0; l < 4; l++ {
			g1, g2 := eccTable[i][l][0], eccTable[i][l][1]
			nblock := g1 + g2
			check := c.ec[l] / nblock
			data := c.words - c.ec[l]
			if check*nblock != c.ec[l] || data%nblock != g2 {
				panic(fmt.Sprint("bad block layout for version ", i))
			}
			if l != 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "{[2]int{%d, %d}, %d, %d}",
				g1, g2, data/nblock, check)
		}
		fmt.Fprintln(w, "}},")
	}
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// QR Code format bits.\nvar ftab = [4][8]uint16{\n")
	for l := 0; l < 4; l++ {
		fmt.Fprintf(w, "\t%c: {", "LMQH"[l])
		for m := 0; m < 8; m++ {
			fb := uint16(l^1) << 13 // L=01, M=00, Q=11, H=10
			fb |= uint16(m) << 10   // mask
			fb = calcFormat(fb) ^ 0x5412
			if m != 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%#04x", fb)
		}
		fmt.Fprintln(w, "},")
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
