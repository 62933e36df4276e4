package vtscreen

import (
	"encoding/base64"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// RequestCapabilities answers a termcap/terminfo query (DCS + q / DCS $ q).
// Producing the real capability strings needs a terminfo database the
// demo screen doesn't carry; it logs the request so a caller can see
// what was asked for.
func (s *Screen) RequestCapabilities(kind byte, payload []byte) {
	s.log.Debug("capability query", zap.ByteString("kind", []byte{kind}), zap.ByteString("payload", payload))
}

func (s *Screen) DesktopNotify(code int, payload string) {
	s.log.Info("desktop notification", zap.Int("code", code), zap.String("payload", payload))
}

func splitClipboardPayload(payload string) (selection, data string) {
	idx := strings.IndexByte(payload, ';')
	if idx < 0 {
		return "", payload
	}
	return payload[:idx], payload[idx+1:]
}

// ClipboardControl implements OSC 52, reassembling the streamed-partial
// form (spec.md's OSC-52 streaming exception: a payload over
// MaxEscapeCodeLength arrives as successive isPartial dispatches whose
// continuation chunks carry an empty selection) before base64-decoding
// and writing to the system clipboard via atotto/clipboard.
func (s *Screen) ClipboardControl(codeOrNeg int, payload string, isPartial bool) {
	selection, data := splitClipboardPayload(payload)

	s.mu.Lock()
	if !s.clipboardStreaming {
		s.clipboardSelection = selection
		s.clipboardBuf = ""
	}
	if !isPartial && !s.clipboardStreaming && data == "?" {
		sel := s.clipboardSelection
		s.mu.Unlock()
		s.log.Debug("clipboard read requested", zap.String("selection", sel))
		return
	}
	s.clipboardBuf += data
	if isPartial {
		s.clipboardStreaming = true
		s.mu.Unlock()
		return
	}
	s.clipboardStreaming = false
	raw := s.clipboardBuf
	s.clipboardBuf = ""
	s.mu.Unlock()

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		s.log.Warn("clipboard payload was not valid base64", zap.Error(err))
		return
	}
	if err := clipboard.WriteAll(string(decoded)); err != nil {
		s.log.Warn("clipboard write failed", zap.Error(err))
	}
}

// FileTransmission handles iTerm2-style inline file transfer (OSC 1337
// File=...): out of scope for the demo renderer beyond acknowledging it
// was seen.
func (s *Screen) FileTransmission(payload []byte) {
	s.log.Debug("file transmission received", zap.Int("bytes", len(payload)))
}

// ShellPromptMarking implements OSC 133 (FinalTerm-style semantic
// prompt marks): recorded so a caller could later segment output into
// prompt/command/output regions; the demo screen doesn't render that
// distinction itself.
func (s *Screen) ShellPromptMarking(mark string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPromptMark = mark
}
