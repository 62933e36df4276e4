package vtscreen

import "go.uber.org/zap"

// ApplyGraphicsCommand handles the kitty graphics protocol (APC G ...):
// rasterizing and caching image data is out of scope for a text-grid
// demo screen; the command is recorded so tests can assert it reached
// Screen.
func (s *Screen) ApplyGraphicsCommand(payload []byte) {
	s.log.Debug("graphics command", zap.Int("bytes", len(payload)))
}

// ApplyMulticellCommand handles OSC 66 (multicell Unicode rendering
// hints): recorded, not rasterized.
func (s *Screen) ApplyMulticellCommand(payload []byte) {
	s.log.Debug("multicell command", zap.ByteString("payload", payload))
}

// RequestTermcap handles generic vendor DCS payloads the dispatch table
// couldn't classify more specifically.
func (s *Screen) RequestTermcap(payload []byte) {
	s.log.Debug("termcap/terminfo forwarded DCS", zap.ByteString("payload", payload))
}

// ReportUnknown records a sequence the parser recognized the shape of
// (CSI, OSC, ...) but not the meaning of, for diagnostics.
func (s *Screen) ReportUnknown(kind string, payload []byte) {
	s.log.Debug("unknown sequence", zap.String("kind", kind), zap.ByteString("payload", payload))
}
