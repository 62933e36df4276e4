package vtscreen

// PauseRendering toggles synchronized-update suspension: while on,
// DrawText/erase/scroll calls still mutate the grid but a renderer
// reading Lines() should hold off repainting until off arrives with a
// matching token. The demo screen just tracks the flag; an interactive
// renderer built on it would gate its own redraw loop on PauseRendering
// having last been called with on == false.
func (s *Screen) PauseRendering(on bool, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	was := s.pendingActive
	s.pendingActive = on
	s.pendingToken = token
	return was
}
