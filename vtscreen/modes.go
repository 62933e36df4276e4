package vtscreen

import "go.uber.org/zap"

// SetMode/ResetMode receive mode codes already folded by decodeModeCode
// (negative for DEC private modes), so ANSI mode 4 and private mode 4
// never collide in s.modes.
func (s *Screen) SetMode(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[code] = true
}

func (s *Screen) ResetMode(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[code] = false
}

// SaveModes/RestoreModes implement the bulk form of XTSAVE/XTRESTORE
// (CSI ?s / CSI ?r with no parameters): push or pop a full snapshot.
func (s *Screen) SaveModes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make([]int, 0, len(s.modes))
	for code, on := range s.modes {
		if on {
			snap = append(snap, code)
		}
	}
	s.savedModeStack = append(s.savedModeStack, snap)
}

func (s *Screen) RestoreModes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.savedModeStack) == 0 {
		return
	}
	snap := s.savedModeStack[len(s.savedModeStack)-1]
	s.savedModeStack = s.savedModeStack[:len(s.savedModeStack)-1]
	for code := range s.modes {
		s.modes[code] = false
	}
	for _, code := range snap {
		s.modes[code] = true
	}
}

// SaveMode/RestoreMode are the single-code form (CSI ? Pm s / CSI ? Pm r).
func (s *Screen) SaveMode(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.savedSingleModes == nil {
		s.savedSingleModes = make(map[int]bool)
	}
	s.savedSingleModes[code] = s.modes[code]
}

func (s *Screen) RestoreMode(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	on, ok := s.savedSingleModes[code]
	if !ok {
		return
	}
	s.modes[code] = on
}

// ReportModeStatus, ReportDeviceAttributes and ReportDeviceStatus are
// query/response sequences that need a channel back to the client (a
// pty write), which the demo screen doesn't own; it logs what would be
// reported instead. cmd/vtdemo's transport wires its own response path.
func (s *Screen) ReportModeStatus(code int, private bool) {
	s.mu.Lock()
	on := s.modes[code]
	s.mu.Unlock()
	s.log.Debug("mode status requested", zap.Int("code", code), zap.Bool("private", private), zap.Bool("set", on))
}

func (s *Screen) ReportDeviceAttributes(kind byte, primary int) {
	s.log.Debug("device attributes requested", zap.ByteString("kind", []byte{kind}), zap.Int("primary", primary))
}

func (s *Screen) ReportDeviceStatus(kind int, private bool) {
	s.log.Debug("device status requested", zap.Int("kind", kind), zap.Bool("private", private))
}
