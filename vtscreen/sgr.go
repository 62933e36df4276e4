package vtscreen

import "vtparser/vt"

// ApplySGR applies one SgrOp batch (vt.ParseSGR's output) to the pen
// (region == nil) or stamps it onto a rectangle (DECCARA, region != nil),
// the same split handlers.go's handleSGR/handleColorSeq made between
// "which attribute" and "what color value" in one pass, generalized here
// to two pen-state calls tied together by pendingColorTarget since
// ParseSGR flushes the color selector (38/48/58) and its value as
// separate ops for the legacy semicolon form.
func (s *Screen) ApplySGR(params []int32, isGroup bool, region *vt.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if region != nil {
		s.applySGRRegionLocked(params, isGroup, region)
		return
	}

	if len(params) == 0 {
		s.activeAttributes = &styleAttributes{}
		return
	}

	if isGroup {
		s.applyColorGroupLocked(params)
		return
	}

	switch params[0] {
	case 38, 48, 58:
		s.pendingColorTarget = int(params[0])
		return
	}
	s.applyPlainSGRLocked(params[0])
}

// applyColorGroupLocked handles the color value half of 38/48/58: either
// self-describing (colon form, params[0] is 38/48/58 itself) or bare
// (semicolon form, params is just the index or the r;g;b triple and the
// target was recorded by the preceding non-group call).
func (s *Screen) applyColorGroupLocked(params []int32) {
	target := s.pendingColorTarget
	rest := params
	switch params[0] {
	case 38, 48, 58:
		target = int(params[0])
		rest = params[1:]
		if len(rest) > 0 {
			switch rest[0] {
			case 2:
				rest = rest[1:]
				if len(rest) >= 4 { // drop the colorspace-id slot, keep r;g;b
					rest = rest[1:]
				}
			case 5:
				rest = rest[1:]
			}
		}
	}
	s.pendingColorTarget = 0

	var color Color
	switch len(rest) {
	case 1:
		color = ANSIColor(rest[0])
	case 3:
		color = RGBColor{uint8(rest[0]), uint8(rest[1]), uint8(rest[2])}
	default:
		return
	}
	s.setColorTargetLocked(target, color)
}

func (s *Screen) applyPlainSGRLocked(code int32) {
	switch code {
	case 0:
		s.activeAttributes = &styleAttributes{}
	case 1:
		s.setStyleLocked(Bold)
	case 2:
		s.setStyleLocked(Dim)
	case 3:
		s.setStyleLocked(Italic)
	case 4:
		s.setStyleLocked(Underline)
	case 5, 6:
		s.setStyleLocked(Blink)
	case 7:
		s.setStyleLocked(Inverted)
	case 8:
		s.setStyleLocked(Hidden)
	case 9:
		s.setStyleLocked(Strikethrough)
	case 21:
		s.resetStyleLocked(Bold)
	case 22:
		s.resetStyleLocked(Dim)
	case 23:
		s.resetStyleLocked(Italic)
	case 24:
		s.resetStyleLocked(Underline)
	case 25:
		s.resetStyleLocked(Blink)
	case 27:
		s.resetStyleLocked(Inverted)
	case 28:
		s.resetStyleLocked(Hidden)
	case 29:
		s.resetStyleLocked(Strikethrough)
	case 39:
		s.setColorTargetLocked(38, nil)
	case 49:
		s.setColorTargetLocked(48, nil)
	case 59:
		s.setColorTargetLocked(58, nil)
	case 73:
		s.setStyleLocked(Superscript)
		s.resetStyleLocked(Subscript)
	case 74:
		s.setStyleLocked(Subscript)
		s.resetStyleLocked(Superscript)
	case 75:
		s.resetStyleLocked(Superscript | Subscript)
	default:
		s.applyLegacyColorLocked(code)
	}
}

func (s *Screen) applyLegacyColorLocked(code int32) {
	switch {
	case code >= 30 && code <= 37:
		s.setColorTargetLocked(38, ANSIColor(code-30))
	case code >= 40 && code <= 47:
		s.setColorTargetLocked(48, ANSIColor(code-40))
	case code >= 90 && code <= 97:
		s.setColorTargetLocked(38, ANSIColor(code-90+8))
	case code >= 100 && code <= 107:
		s.setColorTargetLocked(48, ANSIColor(code-100+8))
	}
}

func (s *Screen) setStyleLocked(flags styleFlags) {
	s.copyAttributes()
	s.activeAttributes.styleFlags |= flags
}

func (s *Screen) resetStyleLocked(flags styleFlags) {
	s.copyAttributes()
	s.activeAttributes.styleFlags &^= flags
}

func (s *Screen) setColorTargetLocked(target int, color Color) {
	s.copyAttributes()
	switch target {
	case 38:
		s.activeAttributes.fg = color
	case 48:
		s.activeAttributes.bg = color
	case 58:
		s.activeAttributes.underlineColor = color
	}
}

func sgrStyleFlag(code int32) styleFlags {
	switch code {
	case 1:
		return Bold
	case 2:
		return Dim
	case 3:
		return Italic
	case 4:
		return Underline
	case 5, 6:
		return Blink
	case 7:
		return Inverted
	case 8:
		return Hidden
	case 9:
		return Strikethrough
	}
	return 0
}

// applySGRRegionLocked implements DECCARA: stamp style flags (not
// colors — DECCARA's param set is the rendition subset, same as xterm)
// onto every cell in region. Decsace's stream-vs-rectangle distinction
// collapses to rectangle-only here; see DESIGN.md.
func (s *Screen) applySGRRegionLocked(params []int32, isGroup bool, region *vt.Region) {
	if isGroup {
		return
	}
	var flags styleFlags
	for _, p := range params {
		flags |= sgrStyleFlag(p)
	}
	if flags == 0 {
		return
	}

	top, left, bottom, right := region.Top-1, region.Left-1, region.Bottom-1, region.Right-1
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}
	if bottom >= s.rows {
		bottom = s.rows - 1
	}
	if right >= s.cols {
		right = s.cols - 1
	}
	for r := top; r <= bottom && r < len(s.grid); r++ {
		row := s.grid[r]
		for c := left; c <= right && c < len(row); c++ {
			attr := *row[c].styleAttributes
			attr.styleFlags |= flags
			row[c].styleAttributes = &attr
		}
	}
}

// Decsace selects DECCARA's extent: rectangular (1, default) or
// character-stream (2).
func (s *Screen) Decsace(mode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decsaceStream = mode == 2
}
