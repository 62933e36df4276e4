package vtscreen

// EraseInDisplay implements ED. private (DECSED, ?-prefixed) selects
// selective erase in real terminals; the demo screen doesn't track
// per-cell protection so it behaves the same either way.
func (s *Screen) EraseInDisplay(mode int, private bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch mode {
	case 0:
		s.eraseRowFrom(s.cursorRow, s.cursorCol)
		for r := s.cursorRow + 1; r < s.rows; r++ {
			s.grid[r] = s.blankRow()
		}
	case 1:
		for r := 0; r < s.cursorRow; r++ {
			s.grid[r] = s.blankRow()
		}
		s.eraseRowTo(s.cursorRow, s.cursorCol)
	case 2, 3:
		for r := range s.grid {
			s.grid[r] = s.blankRow()
		}
	}
}

func (s *Screen) eraseRowFrom(row, col int) {
	for c := col; c < s.cols; c++ {
		s.grid[row][c] = blankCell()
	}
}

func (s *Screen) eraseRowTo(row, col int) {
	for c := 0; c <= col && c < s.cols; c++ {
		s.grid[row][c] = blankCell()
	}
}

func (s *Screen) EraseInLine(mode int, private bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch mode {
	case 0:
		s.eraseRowFrom(s.cursorRow, s.cursorCol)
	case 1:
		s.eraseRowTo(s.cursorRow, s.cursorCol)
	case 2:
		s.grid[s.cursorRow] = s.blankRow()
	}
}

func (s *Screen) EraseCharacters(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	end := s.cursorCol + n
	if end > s.cols {
		end = s.cols
	}
	for c := s.cursorCol; c < end; c++ {
		s.grid[s.cursorRow][c] = blankCell()
	}
}

func (s *Screen) InsertCharacters(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.grid[s.cursorRow]
	if n > s.cols-s.cursorCol {
		n = s.cols - s.cursorCol
	}
	copy(row[s.cursorCol+n:], row[s.cursorCol:s.cols-n])
	for c := s.cursorCol; c < s.cursorCol+n; c++ {
		row[c] = blankCell()
	}
}

func (s *Screen) DeleteCharacters(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.grid[s.cursorRow]
	if n > s.cols-s.cursorCol {
		n = s.cols - s.cursorCol
	}
	copy(row[s.cursorCol:], row[s.cursorCol+n:])
	for c := s.cols - n; c < s.cols; c++ {
		row[c] = blankCell()
	}
}

func (s *Screen) InsertLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursorRow < s.scrollTop || s.cursorRow > s.scrollBottom {
		return
	}
	for i := 0; i < n; i++ {
		s.shiftRegionDown(s.cursorRow, s.scrollBottom)
	}
}

func (s *Screen) DeleteLines(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursorRow < s.scrollTop || s.cursorRow > s.scrollBottom {
		return
	}
	for i := 0; i < n; i++ {
		s.shiftRegionUp(s.cursorRow, s.scrollBottom)
	}
}

// shiftRegionUp moves rows [top+1, bottom] up into [top, bottom-1],
// blanking the new bottom row. Used by DL and by scrolling.
func (s *Screen) shiftRegionUp(top, bottom int) {
	copy(s.grid[top:bottom], s.grid[top+1:bottom+1])
	s.grid[bottom] = s.blankRow()
}

// shiftRegionDown moves rows [top, bottom-1] down into [top+1, bottom],
// blanking the new top row. Used by IL.
func (s *Screen) shiftRegionDown(top, bottom int) {
	copy(s.grid[top+1:bottom+1], s.grid[top:bottom])
	s.grid[top] = s.blankRow()
}

func (s *Screen) scrollUpLocked(n int) {
	for i := 0; i < n; i++ {
		if s.scrollTop == 0 {
			s.scrollback = append(s.scrollback, s.grid[s.scrollTop])
		}
		s.shiftRegionUp(s.scrollTop, s.scrollBottom)
	}
}

func (s *Screen) scrollDownLocked(n int) {
	for i := 0; i < n; i++ {
		s.shiftRegionDown(s.scrollTop, s.scrollBottom)
	}
}

func (s *Screen) ScrollUp(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollUpLocked(n)
}

func (s *Screen) ReverseScroll(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollDownLocked(n)
}

// ReverseScrollAndFillFromScrollback (DECRQM-adjacent reverse scroll
// that pulls rows back out of scrollback) degrades to a plain reverse
// scroll: the demo screen treats scrollback as write-only history, not
// a ring it resurrects rows from.
func (s *Screen) ReverseScrollAndFillFromScrollback(n int) {
	s.ReverseScroll(n)
}

func (s *Screen) SetMargins(top, bottom int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if top < 1 {
		top = 1
	}
	if bottom < 1 || bottom > s.rows {
		bottom = s.rows
	}
	if top >= bottom {
		return
	}
	s.scrollTop = top - 1
	s.scrollBottom = bottom - 1
	s.cursorRow, s.cursorCol = s.scrollTop, 0
}

func (s *Screen) RepeatCharacter(n int) {
	s.mu.Lock()
	last := rune(' ')
	if s.cursorCol > 0 {
		last = s.grid[s.cursorRow][s.cursorCol-1].rune
	}
	s.mu.Unlock()
	repeated := make([]rune, n)
	for i := range repeated {
		repeated[i] = last
	}
	s.DrawText(repeated)
}
