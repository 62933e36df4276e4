package vtscreen

import "go.uber.org/zap"

type titleSnapshot struct{ title, icon string }

// ReportSize answers CSI t's various size queries (window/cell pixel
// size, screen size in chars, ...). Like the other report ops, actually
// writing a response is the transport's job; this just records intent.
func (s *Screen) ReportSize(kind int) {
	s.mu.Lock()
	rows, cols := s.rows, s.cols
	s.mu.Unlock()
	s.log.Debug("size report requested", zap.Int("kind", kind), zap.Int("rows", rows), zap.Int("cols", cols))
}

// ManipulateTitleStack implements XTWINOPS title push/pop (op 22/23).
// slot follows xterm's convention: 0 both, 1 icon only, 2 title only.
func (s *Screen) ManipulateTitleStack(op int, slot int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch op {
	case 22:
		snap := titleSnapshot{title: s.title, icon: s.icon}
		s.titleStack = append(s.titleStack, snap)
	case 23:
		if len(s.titleStack) == 0 {
			return
		}
		snap := s.titleStack[len(s.titleStack)-1]
		s.titleStack = s.titleStack[:len(s.titleStack)-1]
		if slot == 0 || slot == 2 {
			s.title = snap.title
		}
		if slot == 0 || slot == 1 {
			s.icon = snap.icon
		}
	}
}

func (s *Screen) XTVersion(kind int) {
	s.log.Debug("XTVERSION requested", zap.Int("kind", kind))
}

func (s *Screen) SetTitle(str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = str
}

func (s *Screen) SetIcon(str string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.icon = str
}

// ProcessCwdNotification handles OSC 7: the remote shell telling us its
// working directory, used by shells/terminals to restore cwd on new tabs.
func (s *Screen) ProcessCwdNotification(code int, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cwd = string(payload)
}
