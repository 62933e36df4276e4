package vtscreen

import "go.uber.org/zap"

// Kitty keyboard protocol: a stack of progressive-enhancement flag
// sets, plus xterm's older modifyOtherKeys knob.

func (s *Screen) ReportKeyEncodingFlags() {
	s.mu.Lock()
	flags := 0
	if len(s.keyFlagsStack) > 0 {
		flags = s.keyFlagsStack[len(s.keyFlagsStack)-1]
	}
	s.mu.Unlock()
	s.log.Debug("key encoding flags requested", zap.Int("flags", flags))
}

// SetKeyEncodingFlags applies value to the current flag set: how is '='
// (replace), '+' (add bits) or '-' (clear bits), per the kitty protocol.
func (s *Screen) SetKeyEncodingFlags(value int, how byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keyFlagsStack) == 0 {
		s.keyFlagsStack = append(s.keyFlagsStack, 0)
	}
	top := len(s.keyFlagsStack) - 1
	switch how {
	case '+':
		s.keyFlagsStack[top] |= value
	case '-':
		s.keyFlagsStack[top] &^= value
	default:
		s.keyFlagsStack[top] = value
	}
}

func (s *Screen) PushKeyEncodingFlags(value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyFlagsStack = append(s.keyFlagsStack, value)
}

func (s *Screen) PopKeyEncodingFlags(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 {
		n = 1
	}
	if n > len(s.keyFlagsStack) {
		n = len(s.keyFlagsStack)
	}
	s.keyFlagsStack = s.keyFlagsStack[:len(s.keyFlagsStack)-n]
}

func (s *Screen) ModifyOtherKeys(value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modifyOtherKeys = value
}
