package vtscreen

import "go.uber.org/zap"

// The kitty remote-control DCS family lets a client query/drive its own
// terminal (list windows, change layout, ...). Acting on it needs a
// multiplexer model the demo screen doesn't have; each handler logs the
// payload so a caller can see the command shape without acting on it.

func (s *Screen) HandleRemoteCmd(payload []byte) {
	s.log.Debug("kitty remote command", zap.ByteString("payload", payload))
}

func (s *Screen) HandleOverlayReady(payload []byte) {
	s.log.Debug("kitty overlay ready", zap.ByteString("payload", payload))
}

func (s *Screen) HandleKittenResult(payload []byte) {
	s.log.Debug("kitty kitten result", zap.ByteString("payload", payload))
}

func (s *Screen) HandleRemotePrint(payload []byte) {
	s.log.Debug("kitty remote print", zap.ByteString("payload", payload))
}

func (s *Screen) HandleRemoteEcho(payload []byte) {
	s.log.Debug("kitty remote echo", zap.ByteString("payload", payload))
}

func (s *Screen) HandleRemoteSSH(payload []byte) {
	s.log.Debug("kitty remote ssh", zap.ByteString("payload", payload))
}

func (s *Screen) HandleRemoteAskpass(payload []byte) {
	s.log.Debug("kitty remote askpass", zap.ByteString("payload", payload))
}

func (s *Screen) HandleRemoteClone(payload []byte) {
	s.log.Debug("kitty remote clone", zap.ByteString("payload", payload))
}

func (s *Screen) HandleRemoteEdit(payload []byte) {
	s.log.Debug("kitty remote edit", zap.ByteString("payload", payload))
}

func (s *Screen) HandleRestoreCursorAppearance(payload []byte) {
	s.log.Debug("kitty restore cursor appearance", zap.ByteString("payload", payload))
}
