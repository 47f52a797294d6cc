package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrgrid"
	"github.com/unixdj/qrgrid/coding"
)

var g = struct {
	scale    int             // scale
	border   int             // quiet zone
	palette  *[2]color.Color // palette
	rev      bool            // reverse colours
	fn       string          // filename
	format   int             // output file format
	cx       int             // randr source X coordinate index in inc
	inc      [2]int          // randr source X,Y coordinate increments
	bg, fg   rgba            // colour
	colSet   bool            // colour set
	latin1   bool            // Latin-1 byte mode
	byteOnly bool            // byte mode only
	upper    bool            // uppercase
	verbose  bool            // log encoding parameters
}{
	inc: [2]int{1, 1},
	bg:  rgba{0xff, 0xff, 0xff, 0xff},
	fg:  rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Settings are taken from the configuration file
given with -c, then from QR_LEVEL, QR_VERSION, QR_MASK, QR_MODE,
QR_FORMAT, QR_SCALE, QR_BORDER, QR_FOREGROUND and QR_BACKGROUND in
the environment, then from the flags.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

type rgba struct {
	R, G, B, A uint8
}

var rgb = map[string]rgba{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0xff, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"navy":        {0x00, 0x00, 0x80, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

// parseColour parses a colour name or 3, 4, 6 or 8 hex digits.
func parseColour(s string) (rgba, error) {
	if c, ok := rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return c, nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgba{}, fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return rgba{}, fmt.Errorf("%q: bad colour spec", s)
	}
	return rgba{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii", "svg", "svgi",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	eps,
	func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.ASCII())
		return err
	},
	(*qr.Code).EncodeSVG,
}

// parseFlags parses the command line and merges it with the
// configuration file and the environment.
func parseFlags() qr.Options {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	cfile := getopt.StringLong("config", 'c', "",
		"read settings from a YAML configuration file", "file")
	bg := getopt.StringLong("background", 'B', "",
		"background colour; see -F", "RGB[A]|name")
	fg := getopt.StringLong("foreground", 'F', "", `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a colour name; `+
		`only for types png[i], svg[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input from UTF-8 to Latin-1")
	getopt.Flag(&g.byteOnly, '8', "encode entire data in byte mode")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.verbose, 'd', "describe the code on standard error")
	getopt.Flag(&g.border, 'm', `quiet zone modules [4]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 10},
		"QR code version, 0 for the smallest that fits", "ver")
	mask := getopt.Signed('x', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"mask pattern, -1 for the lowest penalty", "mask")
	mode := getopt.Enum('n',
		[]string{"auto", "numeric", "alphanumeric", "byte"}, "auto",
		"encoding mode", "mode")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels (type eps[i]: points) per QR module; `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()

	cfg, err := loadConfig(*cfile, env.ToMap(os.Environ()))
	if err != nil {
		log.Fatalln(err)
	}
	if getopt.IsSet('l') {
		cfg.Level = *lev
	}
	if getopt.IsSet('v') {
		cfg.Version = int(*ver)
	}
	if getopt.IsSet('x') {
		cfg.Mask = int(*mask)
	}
	if getopt.IsSet('n') {
		cfg.Mode = *mode
	}
	if g.byteOnly {
		cfg.Mode = "byte"
	}
	if getopt.IsSet('s') {
		cfg.Scale = int(*scale)
	}
	if getopt.IsSet('m') {
		cfg.Border = g.border
	}
	if getopt.IsSet('t') {
		cfg.Format = *ff
	}
	if getopt.IsSet('B') {
		cfg.Background = *bg
	}
	if getopt.IsSet('F') {
		cfg.Foreground = *fg
	}
	o, err := cfg.options()
	if err != nil {
		log.Fatalln(err)
	}
	g.scale, g.border = cfg.Scale, cfg.Border

	if cfg.Format == "" {
		if !fno.Seen() && isatty.IsTerminal(os.Stdout.Fd()) {
			cfg.Format = "utf8"
		} else {
			cfg.Format = "png"
		}
	}
	found := false
	for i, v := range formats {
		if cfg.Format == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			found = true
			break
		}
	}
	if !found {
		log.Fatalf("%q: unknown output format", cfg.Format)
	}
	if g.fn == "-" {
		g.fn = ""
	}
	for _, c := range []struct {
		s string
		p *rgba
	}{{cfg.Background, &g.bg}, {cfg.Foreground, &g.fg}} {
		if c.s == "" {
			continue
		}
		if *c.p, err = parseColour(c.s); err != nil {
			log.Fatalln(err)
		}
		g.colSet = true
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
	return o
}

func main() {
	log.SetFlags(0)
	o := parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}
	if g.latin1 {
		var err error
		if s, err = charmap.ISO8859_1.NewEncoder().String(s); err != nil {
			log.Fatalln("cannot convert to Latin-1:", err)
		}
	}

	c, err := qr.Encode(s, &o)
	if err != nil {
		var ce *qr.CapacityError
		if errors.As(err, &ce) && ce.Version == qr.AutoVersion {
			log.Fatalf("%v: %d bytes of input do not fit into version %v",
				err, len(s), coding.MaxVersion)
		}
		log.Fatalln(err)
	}
	if g.verbose {
		log.Printf("version %v (%d×%d), level %v, mask %v, %v mode, %d bytes",
			c.Version, c.Size, c.Size, c.Level, c.Mask, c.Mode, len(s))
	}
	write(c)
}

func write(c *qr.Code) {
	open := g.fn != ""
	var w = os.Stdout
	if open {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	randr(c)
	c.Scale = g.scale
	c.Palette = g.palette
	c.Reverse = g.rev
	c.Border = g.border
	err := encoders[g.format](c, w)
	if open && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// randr rotates and reflects c.
func randr(c *qr.Code) {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return
	}
	siz := c.Size
	grid := coding.NewGrid(siz)
	var coord [2]int
	// siz is odd: start at 0 going up, at siz-1 going down
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		for x := 0; x < siz; x++ {
			if c.Black(coord[0], coord[1]) {
				grid.Data[y*siz+x] = 1
			}
			coord[cx] += inc[0]
		}
		coord[cx^1] += inc[1]
	}
	c.Grid = grid
}

func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	var b bytes.Buffer
	fmt.Fprintf(&b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: QR https://github.com/unixdj/qrgrid
%%%%Title: QR Code version %v-%v
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		c.Version, c.Level, xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if rev := c.Reverse; rev || g.colSet {
		bg, fg := g.bg, g.fg
		if rev {
			bg, fg = fg, bg
		}
		fmt.Fprintf(&b, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord,
			float64(bg.R)/0xff, float64(bg.G)/0xff,
			float64(bg.B)/0xff, float64(fg.R)/0xff,
			float64(fg.G)/0xff, float64(fg.B)/0xff)
	}
	fmt.Fprintln(&b, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			d := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(&b, "%d %d p ", x-d, d-s)
		}
		fmt.Fprintln(&b, "r")
	}
	b.WriteString("stroke grestore\nend\n%%Trailer\n")
	_, err := w.Write(b.Bytes())
	return err
}
