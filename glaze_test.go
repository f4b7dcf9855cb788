package glaze_test

import (
	"fmt"
	"testing"

	"github.com/nalgeon/be"
	"github.com/quelltext/glaze"
	"golang.org/x/text/encoding/charmap"
)

func ExampleStyle_Render() {
	s := glaze.New().
		Foreground(glaze.Red).
		Background(glaze.Green).
		Bold(true).
		Underline(true).
		Render("Hello, world!")
	fmt.Printf("%q\n", s)
	// Output: "\x1b[31;42;1;4mHello, world!\x1b[0m"
}

func ExampleStyle_Link() {
	s := glaze.New().
		Foreground(glaze.Red).
		Link("https://example.com").
		Render("Hello, world!")
	fmt.Printf("%q\n", s)
	// Output: "\x1b]8;;https://example.com\x1b\\\x1b[31mHello, world!\x1b[0m\x1b]8;;\x1b\\"
}

func ExampleStyle_RenderBytes() {
	s := glaze.New().
		Foreground(glaze.Blue).
		Charset(charmap.CodePage437).
		RenderBytes([]byte{0xae, 0xaf})
	fmt.Printf("%q\n", s)
	// Output: "\x1b[34m«»\x1b[0m"
}

func TestRenderDefault(t *testing.T) {
	t.Parallel()
	s := glaze.New().Render("X")
	be.Equal(t, s, "\x1b[mX\x1b[0m")
}

func TestRenderStyles(t *testing.T) {
	t.Parallel()
	s := glaze.New().
		Bold(true).
		Underline(true).
		Foreground(glaze.Red).
		Background(glaze.Green).
		Render("Hello, world!")
	be.Equal(t, s, "\x1b[31;42;1;4mHello, world!\x1b[0m")
}

func TestRenderAttributeOrder(t *testing.T) {
	t.Parallel()
	s := glaze.New().
		Strikethrough(true).
		Hidden(true).
		Reverse(true).
		Blink(true).
		Underline(true).
		Italic(true).
		Dim(true).
		Bold(true).
		Render("Hello, world!")
	// order is fixed no matter the order the setters ran in
	be.Equal(t, s, "\x1b[1;2;3;4;5;7;8;9mHello, world!\x1b[0m")
}

func TestRenderLink(t *testing.T) {
	t.Parallel()
	s := glaze.New().
		Foreground(glaze.Red).
		Link("https://example.com").
		Render("Hello, world!")
	want := "\x1b]8;;https://example.com\x1b\\" +
		"\x1b[31mHello, world!\x1b[0m" +
		"\x1b]8;;\x1b\\"
	be.Equal(t, s, want)
}

func TestRenderHex(t *testing.T) {
	t.Parallel()
	s := glaze.New().
		Foreground(glaze.Hex("#ff0000")).
		Background(glaze.Hex("#00ff00")).
		Render("Hello, world!")
	be.Equal(t, s, "\x1b[38;2;255;0;0;48;2;0;255;0mHello, world!\x1b[0m")
}

func TestRenderRGB(t *testing.T) {
	t.Parallel()
	// an RGB triple is indistinguishable from its hex equivalent
	s := glaze.New().
		Foreground(glaze.RGB(255, 0, 0)).
		Background(glaze.RGB(0, 255, 0)).
		Render("Hello, world!")
	be.Equal(t, s, "\x1b[38;2;255;0;0;48;2;0;255;0mHello, world!\x1b[0m")
}

func TestRenderC256(t *testing.T) {
	t.Parallel()
	s := glaze.New().
		Foreground(glaze.C256(1)).
		Background(glaze.C256(2)).
		Render("Hello, world!")
	be.Equal(t, s, "\x1b[38;5;1;48;5;2mHello, world!\x1b[0m")
}

func TestRenderBrightBackground(t *testing.T) {
	t.Parallel()
	s := glaze.New().
		Foreground(glaze.BrightWhite).
		Background(glaze.BrightBlack).
		Render("Hello, world!")
	be.Equal(t, s, "\x1b[97;100mHello, world!\x1b[0m")
}

func TestForegroundOverride(t *testing.T) {
	t.Parallel()
	// the last setter call wins
	s := glaze.New().
		Foreground(glaze.Red).
		Foreground(glaze.Reset).
		Render("Hello, world!")
	be.Equal(t, s, "\x1b[0mHello, world!\x1b[0m")
}

func TestBackgroundReset(t *testing.T) {
	t.Parallel()
	s := glaze.New().
		Background(glaze.Reset).
		Render("Hello, world!")
	be.Equal(t, s, "\x1b[0mHello, world!\x1b[0m")
}

func TestAttributeUnset(t *testing.T) {
	t.Parallel()
	s := glaze.New().
		Bold(true).
		Underline(true).
		Bold(false).
		Underline(false).
		Render("Hello, world!")
	be.Equal(t, s, "\x1b[mHello, world!\x1b[0m")
}

func TestStyleReuse(t *testing.T) {
	t.Parallel()
	// intermediate values stay usable after further chaining
	base := glaze.New().Foreground(glaze.Cyan)
	bold := base.Bold(true)
	be.Equal(t, base.Render("a"), "\x1b[36ma\x1b[0m")
	be.Equal(t, bold.Render("a"), "\x1b[36;1ma\x1b[0m")
	be.Equal(t, base.Render("a"), "\x1b[36ma\x1b[0m")
}

func TestRenderBytes(t *testing.T) {
	t.Parallel()
	p := []byte{0xae, 0xaf}
	// no charset leaves the bytes unconverted
	s := glaze.New().RenderBytes([]byte("HI"))
	be.Equal(t, s, "\x1b[mHI\x1b[0m")
	s = glaze.New().Charset(charmap.CodePage437).RenderBytes(p)
	be.Equal(t, s, "\x1b[m«»\x1b[0m")
	s = glaze.New().Charset(charmap.ISO8859_1).RenderBytes(p)
	be.Equal(t, s, "\x1b[m®¯\x1b[0m")
	s = glaze.New().Charset(charmap.XUserDefined).RenderBytes([]byte("HI"))
	be.Equal(t, s, "\x1b[mHI\x1b[0m")
}

func TestAttrFragments(t *testing.T) {
	t.Parallel()
	attrs := map[glaze.Attr]string{
		glaze.AttrReset:         "0",
		glaze.AttrBold:          "1",
		glaze.AttrDim:           "2",
		glaze.AttrItalic:        "3",
		glaze.AttrUnderline:     "4",
		glaze.AttrBlink:         "5",
		glaze.AttrReverse:       "7",
		glaze.AttrHidden:        "8",
		glaze.AttrStrikethrough: "9",
	}
	for attr, want := range attrs {
		be.Equal(t, attr.Fragment(), want)
	}
}
