package vtscreen

import "go.uber.org/zap"

// SetDynamicColor stores an OSC 10/11/12/... dynamic color assignment
// (foreground, background, cursor, ...) keyed by its OSC code.
func (s *Screen) SetDynamicColor(code int, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dynamic[code] = payload
}

// SetColorTableColor stores an OSC 4 palette entry ("index;spec").
func (s *Screen) SetColorTableColor(code int, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colorTable[code] = payload
}

// ColorControl handles the reset forms (OSC 104/105/110-119): a bare
// "?" queries (logged, answered by the transport layer), anything else
// clears the stored value.
func (s *Screen) ColorControl(code int, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payload == "?" {
		s.log.Debug("color query", zap.Int("code", code))
		return
	}
	delete(s.dynamic, code)
	delete(s.colorTable, code)
}

// PushColors/PopColors implement the XTPUSHCOLORS/XTPOPCOLORS palette
// stack (n is currently always treated as "the whole table": per-slot
// push/pop isn't modeled).
func (s *Screen) PushColors(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(map[int]string, len(s.colorTable))
	for k, v := range s.colorTable {
		snap[k] = v
	}
	s.colorStack = append(s.colorStack, snap)
}

func (s *Screen) PopColors(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.colorStack) == 0 {
		return
	}
	snap := s.colorStack[len(s.colorStack)-1]
	s.colorStack = s.colorStack[:len(s.colorStack)-1]
	s.colorTable = snap
}

func (s *Screen) ReportColorStack() {
	s.mu.Lock()
	depth := len(s.colorStack)
	s.mu.Unlock()
	s.log.Debug("color stack depth requested", zap.Int("depth", depth))
}
