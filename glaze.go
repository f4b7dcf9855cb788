// Package glaze styles terminal text with ANSI escape sequences,
// such as colors, bold and underline attributes, and hyperlinks.
// It only builds strings, writing them to a terminal and checking that
// the terminal supports the requested codes are left to the caller.
package glaze

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

const (
	csi = "\x1b["  // control sequence introducer
	st  = "\x1b\\" // string terminator
	osc = "\x1b]"  // operating system command
)

// Style accumulates colors, text attributes and an optional hyperlink,
// and renders them around a string as an SGR escape sequence.
// Setters return an updated copy so calls chain, and a Style is never
// mutated by Render, so values can be reused and shared freely.
//
//	s := glaze.New().
//		Foreground(glaze.Red).
//		Background(glaze.Green).
//		Bold(true).
//		Underline(true)
//	fmt.Println(s.Render("Hello, world!"))
type Style struct {
	fg, bg       Color
	fgSet, bgSet bool

	bold          bool
	dim           bool
	italic        bool
	underline     bool
	blink         bool
	reverse       bool
	hidden        bool
	strikethrough bool

	link    string
	linkSet bool

	charset *charmap.Charmap
}

// New creates a Style with no colors, attributes or link applied.
// Rendering it wraps text in an empty SGR sequence.
func New() Style {
	return Style{}
}

// Foreground sets the text color. A later call overrides an earlier one.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	s.fgSet = true
	return s
}

// Background sets the color behind the text.
// A later call overrides an earlier one.
func (s Style) Background(c Color) Style {
	s.bg = c
	s.bgSet = true
	return s
}

// Bold toggles a bold or increased intensity font.
func (s Style) Bold(yes bool) Style {
	s.bold = yes
	return s
}

// Dim toggles a faint or decreased intensity font.
func (s Style) Dim(yes bool) Style {
	s.dim = yes
	return s
}

// Italic toggles an italic font.
func (s Style) Italic(yes bool) Style {
	s.italic = yes
	return s
}

// Underline toggles an underline text decoration.
func (s Style) Underline(yes bool) Style {
	s.underline = yes
	return s
}

// Blink toggles slow blinking text.
func (s Style) Blink(yes bool) Style {
	s.blink = yes
	return s
}

// Reverse swaps the foreground and background colors.
func (s Style) Reverse(yes bool) Style {
	s.reverse = yes
	return s
}

// Hidden conceals the text.
func (s Style) Hidden(yes bool) Style {
	s.hidden = yes
	return s
}

// Strikethrough toggles a line through the text.
func (s Style) Strikethrough(yes bool) Style {
	s.strikethrough = yes
	return s
}

// Link turns the rendered text into a terminal hyperlink pointing at
// the target, using the OSC 8 sequence.
func (s Style) Link(target string) Style {
	s.link = target
	s.linkSet = true
	return s
}

// Charset sets the legacy single-byte encoding used by [Style.RenderBytes].
// Generally the charset of ANSI art should be [charmap.CodePage437],
// however artworks for the Commodore Amiga can be [charmap.ISO8859_1].
// A nil value or [charmap.XUserDefined] leaves bytes unconverted.
func (s Style) Charset(cm *charmap.Charmap) Style {
	s.charset = cm
	return s
}

// Render wraps text in the accumulated styles and returns the result.
// The parameter list keeps a fixed order, foreground, background, then
// the attributes bold through strikethrough. With nothing applied the
// sequence degenerates to "\x1b[m", which terminals treat as a reset.
func (s Style) Render(text string) string {
	params := make([]string, 0, 10)
	if s.fgSet {
		params = append(params, s.foreground())
	}
	if s.bgSet {
		params = append(params, s.background())
	}
	toggles := []struct {
		on   bool
		attr Attr
	}{
		{s.bold, AttrBold},
		{s.dim, AttrDim},
		{s.italic, AttrItalic},
		{s.underline, AttrUnderline},
		{s.blink, AttrBlink},
		{s.reverse, AttrReverse},
		{s.hidden, AttrHidden},
		{s.strikethrough, AttrStrikethrough},
	}
	for _, t := range toggles {
		if t.on {
			params = append(params, t.attr.Fragment())
		}
	}
	// no fragment above is ever empty, but an empty one must not leave
	// a dangling ";" in the joined list
	params = slices.DeleteFunc(params, func(p string) bool {
		return p == ""
	})
	result := csi + strings.Join(params, ";") + "m" + text + csi + "0m"
	if s.linkSet {
		return osc + "8;;" + s.link + st + result + osc + "8;;" + st
	}
	return result
}

// RenderBytes renders text held in the legacy encoding set with
// [Style.Charset], decoding each byte before the styles are applied.
// Without a charset the bytes are treated as UTF-8.
func (s Style) RenderBytes(p []byte) string {
	if s.charset == nil || s.charset == charmap.XUserDefined {
		return s.Render(string(p))
	}
	var b strings.Builder
	for _, c := range p {
		b.WriteRune(s.charset.DecodeByte(c))
	}
	return s.Render(b.String())
}

// foreground returns the foreground parameter, prefixing extended
// colors with the SetFG selector. Named colors and Reset stand alone.
func (s Style) foreground() string {
	frag := s.fg.Fragment()
	if s.fg.extended() {
		return strconv.Itoa(SetFG) + ";" + frag
	}
	return frag
}

// background returns the background parameter. Extended colors take
// the SetBG selector, Reset passes through unadjusted, and named
// colors emit their foreground code raised by ten, the ANSI convention
// for basic background colors.
func (s Style) background() string {
	c := s.bg
	if !s.bgSet {
		c = Reset
	}
	switch {
	case c.extended():
		return strconv.Itoa(SetBG) + ";" + c.Fragment()
	case c.code == 0:
		return c.Fragment()
	default:
		return strconv.Itoa(int(c.code) + bgOffset)
	}
}
