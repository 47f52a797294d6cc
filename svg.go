// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// EncodeSVG writes a Scalable Vector Graphics image displaying the
// code to w.  The user unit is a QR module; the width and height are
// c.Scale pixels per module.  Dark modules are drawn as one path,
// a horizontal run per subpath.
func (c *Code) EncodeSVG(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	light, dark := c.colors()
	n := c.Size + c.Border*2
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" `+
		`width="%d" height="%d" viewBox="0 0 %d %d" `+
		`shape-rendering="crispEdges">`+"\n",
		n*c.Scale, n*c.Scale, n, n)
	fmt.Fprintf(b, "<rect width=\"%d\" height=\"%d\" %s/>\n",
		n, n, svgFill(light))
	b.WriteString(`<path d="`)
	for y := 0; y < n; y++ {
		for x := 0; x < n; {
			if !c.dark(x-c.Border, y-c.Border) {
				x++
				continue
			}
			start := x
			for x < n && c.dark(x-c.Border, y-c.Border) {
				x++
			}
			fmt.Fprintf(b, "M%d,%dh%dv1h%dz", start, y, x-start, start-x)
		}
	}
	fmt.Fprintf(b, "\" %s/>\n</svg>\n", svgFill(dark))
	return b.Flush()
}

// svgFill returns the fill attributes for c.
func svgFill(c color.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf(`fill="#%02x%02x%02x"`, nc.R, nc.G, nc.B)
	if nc.A != 0xff {
		s += fmt.Sprintf(` fill-opacity="%.3g"`, float64(nc.A)/0xff)
	}
	return s
}
