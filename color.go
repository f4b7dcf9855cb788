package glaze

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrHex is returned by [ParseHex] when a string is not a # prefixed,
// 6 digit hexadecimal color value.
var ErrHex = errors.New("expected a hexadecimal color in the format #RRGGBB")

const (
	FG1st       = 30 // FG1st is the SGR code of the first standard foreground color
	FGEnd       = 37 // FGEnd is the SGR code of the last standard foreground color
	BrightFG1st = 90 // BrightFG1st is the SGR code of the first bright foreground color
	BrightFGEnd = 97 // BrightFGEnd is the SGR code of the last bright foreground color
	SetFG       = 38 // SetFG selects an extended, 256 or truecolor foreground
	SetBG       = 48 // SetBG selects an extended, 256 or truecolor background

	// Named background codes are the foreground code plus this offset.
	bgOffset = 10
)

type colorKind uint8

const (
	named colorKind = iota
	indexed
	truecolor
	hexadecimal
)

// Color is a terminal color in one of four encodings,
// a named 4-bit color such as [Red], a 256-color palette index,
// a 24-bit red, green, blue triple, or a "#RRGGBB" hexadecimal string.
// Values are immutable once constructed.
type Color struct {
	kind    colorKind
	code    uint8 // SGR code for named colors, palette index for C256
	r, g, b uint8
	hex     string
}

// The 16 named colors and the attribute reset.
// Each renders as its fixed SGR foreground code.
var (
	Reset         = Color{code: 0}
	Black         = Color{code: 30}
	Red           = Color{code: 31}
	Green         = Color{code: 32}
	Yellow        = Color{code: 33}
	Blue          = Color{code: 34}
	Magenta       = Color{code: 35}
	Cyan          = Color{code: 36}
	White         = Color{code: 37}
	BrightBlack   = Color{code: 90}
	BrightRed     = Color{code: 91}
	BrightGreen   = Color{code: 92}
	BrightYellow  = Color{code: 93}
	BrightBlue    = Color{code: 94}
	BrightMagenta = Color{code: 95}
	BrightCyan    = Color{code: 96}
	BrightWhite   = Color{code: 97}
)

// C256 creates a color from an index into the 256-entry xterm palette.
func C256(n uint8) Color {
	return Color{kind: indexed, code: n}
}

// RGB creates a 24-bit "true color" from red, green and blue values.
func RGB(r, g, b uint8) Color {
	return Color{kind: truecolor, r: r, g: g, b: b}
}

// Hex creates a 24-bit color from a hexadecimal string in the
// format "#RRGGBB". A malformed string resolves to black rather than
// failing, use [ParseHex] when an error is preferred.
func Hex(s string) Color {
	return Color{kind: hexadecimal, hex: s}
}

// ParseHex is the strict variant of [Hex]. It accepts exactly seven
// ASCII characters, a # followed by 6 hexadecimal digits, and returns
// an error wrapping [ErrHex] for anything else.
func ParseHex(s string) (Color, error) {
	const format = 7
	if len(s) != format {
		return Color{kind: truecolor}, fmt.Errorf("%w: %q", ErrHex, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{kind: truecolor}, fmt.Errorf("%w: %q", ErrHex, s)
	}
	r, g, b := c.RGB255()
	return Color{kind: truecolor, r: r, g: g, b: b}, nil
}

// Fragment returns the SGR parameter fragment of the color without any
// foreground or background selector prefix. Named colors return their
// numeric code, C256 returns "5;<index>" and RGB and Hex values return
// "2;<r>;<g>;<b>".
func (c Color) Fragment() string {
	switch c.kind {
	case indexed:
		return fmt.Sprintf("5;%d", c.code)
	case truecolor:
		return fmt.Sprintf("2;%d;%d;%d", c.r, c.g, c.b)
	case hexadecimal:
		r, g, b := hexRGB(c.hex)
		return fmt.Sprintf("2;%d;%d;%d", r, g, b)
	default:
		return strconv.Itoa(int(c.code))
	}
}

// extended reports whether the color requires a SetFG or SetBG selector
// before its fragment.
func (c Color) extended() bool {
	return c.kind != named
}

// hexRGB parses a "#RRGGBB" string into its byte components.
// Malformed input degrades to black.
func hexRGB(s string) (r, g, b uint8) {
	c, err := ParseHex(s)
	if err != nil {
		return 0, 0, 0
	}
	return c.r, c.g, c.b
}

// Palette sets the RGB values used by [Color.RGB] for the 16 named
// colors. The ANSI standard never formalized color values and it was
// left to the system to determine.
// Wikipedia has a [useful table] of the common palettes.
//
// [useful table]: https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
type Palette uint

const (
	CGA16   Palette = iota // Color Graphics Adapter colorset defined by IBM for the PC in 1981
	Xterm16                // Xterm terminal emulator program for the X Window System colorset
)

type rgb [3]uint8

//nolint:mnd
func cga() [16]rgb {
	return [16]rgb{
		{0, 0, 0}, {170, 0, 0}, {0, 170, 0}, {170, 85, 0},
		{0, 0, 170}, {170, 0, 170}, {0, 170, 170}, {170, 170, 170},
		{85, 85, 85}, {255, 85, 85}, {85, 255, 85}, {255, 255, 85},
		{85, 85, 255}, {255, 85, 255}, {85, 255, 255}, {255, 255, 255},
	}
}

//nolint:mnd
func xterm() [16]rgb {
	return [16]rgb{
		{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
		{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
		{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
}

// RGB returns the 24-bit components of the color. The Palette supplies
// values for the 16 named colors; C256 indexes 16 and above follow the
// standard xterm 6x6x6 color cube and grayscale ramp regardless of the
// palette. Reset returns black.
//
// Some helpful links, [256 colors cheat sheet] and [8-bit colors wiki].
//
// [256 colors cheat sheet]: https://www.ditig.com/256-colors-cheat-sheet
// [8-bit colors wiki]: https://en.wikipedia.org/wiki/ANSI_escape_code#8-bit
func (c Color) RGB(pal Palette) (r, g, b uint8) {
	switch c.kind {
	case truecolor:
		return c.r, c.g, c.b
	case hexadecimal:
		return hexRGB(c.hex)
	case indexed:
		return indexRGB(c.code, pal)
	default:
		return namedRGB(c.code, pal)
	}
}

func namedRGB(code uint8, pal Palette) (r, g, b uint8) {
	i := 0
	switch {
	case FG1st <= code && code <= FGEnd:
		i = int(code) - FG1st
	case BrightFG1st <= code && code <= BrightFGEnd:
		i = int(code) - BrightFG1st + 8
	default: // Reset
		return 0, 0, 0
	}
	v := cga()[i]
	if pal == Xterm16 {
		v = xterm()[i]
	}
	return v[0], v[1], v[2]
}

//nolint:mnd
func indexRGB(n uint8, pal Palette) (r, g, b uint8) {
	const cubeEnd = 231
	switch {
	case n <= 15:
		v := cga()[n]
		if pal == Xterm16 {
			v = xterm()[n]
		}
		return v[0], v[1], v[2]
	case n <= cubeEnd:
		c := int(n) - 16
		calc := func(c int) uint8 {
			if c == 0 {
				return 0
			}
			return uint8(55 + c*40)
		}
		return calc(c / 36), calc((c % 36) / 6), calc(c % 6)
	default:
		level := int(n) - 232
		v := uint8(8 + level*10)
		return v, v, v
	}
}
