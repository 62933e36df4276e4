package vtscreen

func (s *Screen) CursorUp(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.cursorRow -= n
	if s.cursorRow < s.scrollTop {
		s.cursorRow = s.scrollTop
	}
	s.clampCursor()
}

func (s *Screen) CursorDown(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.cursorRow += n
	if s.cursorRow > s.scrollBottom {
		s.cursorRow = s.scrollBottom
	}
	s.clampCursor()
}

func (s *Screen) CursorForward(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.cursorCol += n
	s.clampCursor()
}

func (s *Screen) CursorBack(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.cursorCol -= n
	s.clampCursor()
}

// CursorUp1/CursorDown1 are CNL/CPL: move n rows then snap to column 0.
func (s *Screen) CursorUp1(n int) {
	s.CursorUp(n)
	s.mu.Lock()
	s.cursorCol = 0
	s.mu.Unlock()
}

func (s *Screen) CursorDown1(n int) {
	s.CursorDown(n)
	s.mu.Lock()
	s.cursorCol = 0
	s.mu.Unlock()
}

func (s *Screen) CursorPosition(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.cursorRow = row - 1
	s.cursorCol = col - 1
	s.clampCursor()
}

func (s *Screen) CursorToColumn(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.cursorCol = n - 1
	s.clampCursor()
}

func (s *Screen) CursorToLine(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingWrap = false
	s.cursorRow = n - 1
	s.clampCursor()
}

func (s *Screen) Backtab(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.cursorCol
	for ; n > 0; n-- {
		col = ((col - 1) / 8) * 8
		if col < 0 {
			col = 0
			break
		}
	}
	s.cursorCol = col
}

func (s *Screen) TabForward(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.cursorCol
	for ; n > 0; n-- {
		col = ((col / 8) + 1) * 8
	}
	if col >= s.cols {
		col = s.cols - 1
	}
	s.cursorCol = col
}

func (s *Screen) SaveCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedRow, s.savedCol = s.cursorRow, s.cursorCol
	attr := *s.activeAttributes
	s.savedAttr = &attr
}

func (s *Screen) RestoreCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorRow, s.cursorCol = s.savedRow, s.savedCol
	s.pendingWrap = false
	if s.savedAttr != nil {
		attr := *s.savedAttr
		s.activeAttributes = &attr
	}
	s.clampCursor()
}

// SetCursorStyle (DECSCUSR) and tab-stop bookkeeping are rendering/input
// concerns the demo screen doesn't model; recorded no-ops.
func (s *Screen) SetCursorStyle(n int, trailer byte) {}
func (s *Screen) SetTabStop()                        {}
func (s *Screen) ClearTabStop(mode int)               {}
