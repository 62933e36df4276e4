package vtscreen

import (
	"sync"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"vtparser/vt"
)

var _ vt.Screen = (*Screen)(nil)

// Screen is a fixed-size character grid with scrollback, implementing
// vt.Screen. Where terminal/screen.go kept a single unbounded line plus
// scrollback, Screen here keeps a real rows x cols grid with a scroll
// region, since the spec's CSI set (CUP, DECSTBM, IL/DL, ...) assumes
// one exists.
type Screen struct {
	mu  sync.Mutex
	log *zap.Logger

	cols, rows int
	grid       [][]cell
	scrollback [][]cell

	cursorRow, cursorCol int
	pendingWrap          bool
	savedRow, savedCol   int
	savedAttr            *styleAttributes

	scrollTop, scrollBottom int // inclusive, DECSTBM region

	activeAttributes *styleAttributes

	modes            map[int]bool
	savedModeStack   [][]int
	savedSingleModes map[int]bool

	title, icon, cwd string
	titleStack       []titleSnapshot

	activeHyperlinkID, activeHyperlinkURL string

	keyFlagsStack   []int
	modifyOtherKeys int

	colorStack []map[int]string
	dynamic    map[int]string // OSC 10/11/12/... dynamic colors, keyed by OSC code
	colorTable map[int]string // OSC 4 palette entries, keyed by index

	pendingToken  uint64
	pendingActive bool

	pendingColorTarget int // 38/48/58 awaiting a semicolon-style color group, 0 if none
	decsaceStream      bool

	clipboardStreaming bool
	clipboardSelection string
	clipboardBuf       string

	lastPromptMark string
}

// Options configures a new Screen. Cols/Rows default to 80x24 when zero.
type Options struct {
	Cols, Rows int
	Logger     *zap.Logger
}

func New(opts Options) *Screen {
	if opts.Cols <= 0 {
		opts.Cols = 80
	}
	if opts.Rows <= 0 {
		opts.Rows = 24
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &Screen{
		log:              opts.Logger,
		cols:             opts.Cols,
		rows:             opts.Rows,
		activeAttributes: &styleAttributes{},
		modes:            make(map[int]bool),
		dynamic:          make(map[int]string),
		colorTable:       make(map[int]string),
		scrollBottom:     opts.Rows - 1,
	}
	s.grid = make([][]cell, opts.Rows)
	for i := range s.grid {
		s.grid[i] = s.blankRow()
	}
	return s
}

func (s *Screen) blankRow() []cell {
	row := make([]cell, s.cols)
	for i := range row {
		row[i] = blankCell()
	}
	return row
}

func (s *Screen) copyAttributes() {
	cpy := *s.activeAttributes
	s.activeAttributes = &cpy
}

func (s *Screen) clampCursor() {
	if s.cursorRow < 0 {
		s.cursorRow = 0
	}
	if s.cursorRow >= s.rows {
		s.cursorRow = s.rows - 1
	}
	if s.cursorCol < 0 {
		s.cursorCol = 0
	}
	if s.cursorCol >= s.cols {
		s.cursorCol = s.cols - 1
	}
}

// DrawText places codepoints starting at the cursor, wrapping and
// scrolling as needed, matching the teacher's print()/setPos() but
// column-width aware via go-runewidth for CJK/emoji.
func (s *Screen) DrawText(codepoints []rune) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range codepoints {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if s.pendingWrap {
			s.lineWrap()
		}
		row := s.grid[s.cursorRow]
		row[s.cursorCol] = cell{r, s.activeAttributes}
		for i := 1; i < w && s.cursorCol+i < s.cols; i++ {
			row[s.cursorCol+i] = cell{0, s.activeAttributes}
		}
		if s.cursorCol+w >= s.cols {
			s.cursorCol = s.cols - 1
			s.pendingWrap = true
		} else {
			s.cursorCol += w
		}
	}
}

func (s *Screen) lineWrap() {
	s.pendingWrap = false
	s.indexLocked()
	s.cursorCol = 0
}

func (s *Screen) Bell() {}

func (s *Screen) Backspace() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	if s.cursorCol > 0 {
		s.cursorCol--
	}
}

func (s *Screen) Tab() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := ((s.cursorCol / 8) + 1) * 8
	if next >= s.cols {
		next = s.cols - 1
	}
	s.cursorCol = next
}

func (s *Screen) CarriageReturn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.cursorCol = 0
}

// indexLocked scrolls the region up by one when the cursor is already
// on the bottom margin, otherwise just moves the cursor down. Caller
// holds s.mu.
func (s *Screen) indexLocked() {
	if s.cursorRow == s.scrollBottom {
		s.scrollUpLocked(1)
		return
	}
	if s.cursorRow < s.rows-1 {
		s.cursorRow++
	}
}

func (s *Screen) Index() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexLocked()
}

func (s *Screen) Linefeed() { s.Index() }

func (s *Screen) ReverseIndex() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursorRow == s.scrollTop {
		s.scrollDownLocked(1)
		return
	}
	if s.cursorRow > 0 {
		s.cursorRow--
	}
}

func (s *Screen) NextLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.indexLocked()
	s.cursorCol = 0
}

// Align implements DECALN: fill the screen with 'E' for margin testing.
func (s *Screen) Align() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for r := range s.grid {
		for c := range s.grid[r] {
			s.grid[r][c] = cell{'E', blankAttributes}
		}
	}
	s.cursorRow, s.cursorCol = 0, 0
	s.pendingWrap = false
}

// ChangeCharset receives a G-set designation. Screen doesn't render
// line-drawing glyphs, so this is a no-op that neither stores nor
// reports the designation; shift-in/out (SO/SI) itself is the parser's
// concern, not Screen's.
func (s *Screen) ChangeCharset(slot int, charset byte) {}
