package vtscreen

type styleFlags uint32

const (
	Bold styleFlags = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Inverted
	Hidden
	Strikethrough
	DoubleUnderline
	Superscript
	Subscript
)

// styleAttributes is the pen state DrawText stamps onto each cell it
// writes, shared by reference until the next mutation copies it.
type styleAttributes struct {
	styleFlags
	fg, bg, underlineColor Color // nil means default

	uri string
}

func (a *styleAttributes) Equals(a2 *styleAttributes) bool {
	return a == a2 || *a == *a2
}

func (a *styleAttributes) Empty() bool {
	return *a == styleAttributes{}
}

func (a *styleAttributes) hasStyle(flags styleFlags) bool {
	return a.styleFlags&flags != 0
}

// cell is one grid position: a rune plus the attributes it was drawn
// with. The zero cell is a blank with default attributes.
type cell struct {
	rune
	*styleAttributes
}

var blankAttributes = &styleAttributes{}

func blankCell() cell {
	return cell{rune: ' ', styleAttributes: blankAttributes}
}
