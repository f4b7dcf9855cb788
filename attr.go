package glaze

import "strconv"

// Attr is a single SGR text attribute.
// Code 6, rapid blink, is absent from the standard SGR table.
type Attr uint8

const (
	AttrReset         Attr = 0 // AttrReset removes all attributes and colors
	AttrBold          Attr = 1 // AttrBold toggles a bold or increased intensity font
	AttrDim           Attr = 2 // AttrDim toggles a faint or decreased intensity font
	AttrItalic        Attr = 3 // AttrItalic toggles an italic font
	AttrUnderline     Attr = 4 // AttrUnderline toggles an underline text decoration
	AttrBlink         Attr = 5 // AttrBlink toggles slow blinking text
	AttrReverse       Attr = 7 // AttrReverse swaps the foreground and background colors
	AttrHidden        Attr = 8 // AttrHidden conceals the text
	AttrStrikethrough Attr = 9 // AttrStrikethrough toggles a line through the text
)

// Fragment returns the SGR parameter fragment of the attribute.
func (a Attr) Fragment() string {
	return strconv.Itoa(int(a))
}
