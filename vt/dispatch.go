package vt

import "strconv"

// DispatchTable turns a completed ParsedCsi, a completed string-escape
// payload, or a single control/graphic byte into calls against a Screen,
// the way the teacher's handlers.go turns a parsed sequence into calls
// against its RichTextTerminal capability receiver — except here the
// mapping is data-driven (spec.md §9: "a data table mapping (prefix,
// final) to an operation descriptor, not one switch-per-family") rather
// than hand-written per final byte.
type DispatchTable struct {
	screen Screen
	sink   ReportSink
}

// NewDispatchTable builds a table that dispatches to screen and reports
// anything it cannot make sense of to sink.
func NewDispatchTable(screen Screen, sink ReportSink) *DispatchTable {
	if sink == nil {
		sink = CallbackSink(func(Report) {})
	}
	return &DispatchTable{screen: screen, sink: sink}
}

// csiOp is one row of the CSI final-byte table: given a completed
// ParsedCsi, call into Screen. p and pRaw are the parameter accessors:
// p treats a 0 or absent parameter as the implicit default (almost
// always 1), pRaw substitutes the default only for an absent one.
type csiOp func(d *DispatchTable, csi ParsedCsi)

func p(csi ParsedCsi, i int, def int32) int32 {
	if i >= len(csi.Params) {
		return def
	}
	if csi.Params[i] == 0 {
		return def
	}
	return csi.Params[i]
}

func pRaw(csi ParsedCsi, i int, def int32) int32 {
	if i >= len(csi.Params) {
		return def
	}
	return csi.Params[i]
}

// csiTable maps a CSI final byte (ignoring any private prefix/
// intermediate, which individual ops inspect directly off ParsedCsi when
// they care) to the operation it performs. Table-driven per spec.md §9;
// entries read top to bottom the same order as spec.md §4.7's table.
var csiTable = map[byte]csiOp{
	'@': func(d *DispatchTable, c ParsedCsi) { d.screen.InsertCharacters(int(p(c, 0, 1))) },
	'A': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorUp(int(p(c, 0, 1))) },
	'B': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorDown(int(p(c, 0, 1))) },
	'C': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorForward(int(p(c, 0, 1))) },
	'D': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorBack(int(p(c, 0, 1))) },
	'E': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorDown1(int(p(c, 0, 1))) },
	'F': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorUp1(int(p(c, 0, 1))) },
	'G': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorToColumn(int(p(c, 0, 1))) },
	'H': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorPosition(int(p(c, 0, 1)), int(p(c, 1, 1))) },
	'I': func(d *DispatchTable, c ParsedCsi) { d.screen.TabForward(int(p(c, 0, 1))) },
	'J': func(d *DispatchTable, c ParsedCsi) { d.screen.EraseInDisplay(int(pRaw(c, 0, 0)), c.Prefix == '?') },
	'K': func(d *DispatchTable, c ParsedCsi) { d.screen.EraseInLine(int(pRaw(c, 0, 0)), c.Prefix == '?') },
	'L': func(d *DispatchTable, c ParsedCsi) { d.screen.InsertLines(int(p(c, 0, 1))) },
	'M': func(d *DispatchTable, c ParsedCsi) { d.screen.DeleteLines(int(p(c, 0, 1))) },
	'P': func(d *DispatchTable, c ParsedCsi) {
		if c.Intermediate == '#' {
			d.screen.PushColors(int(pRaw(c, 0, 0)))
			return
		}
		d.screen.DeleteCharacters(int(p(c, 0, 1)))
	},
	'Q': func(d *DispatchTable, c ParsedCsi) {
		if c.Intermediate == '#' {
			d.screen.PopColors(int(pRaw(c, 0, 0)))
			return
		}
		d.reportUnknown(ErrUnknownFinal, c)
	},
	'R': func(d *DispatchTable, c ParsedCsi) {
		if c.Intermediate == '#' {
			d.screen.ReportColorStack()
			return
		}
		d.reportUnknown(ErrUnknownFinal, c)
	},
	'S': func(d *DispatchTable, c ParsedCsi) { d.screen.ScrollUp(int(p(c, 0, 1))) },
	'T': func(d *DispatchTable, c ParsedCsi) {
		if c.Intermediate == '+' {
			d.screen.ReverseScrollAndFillFromScrollback(int(p(c, 0, 1)))
			return
		}
		d.screen.ReverseScroll(int(p(c, 0, 1)))
	},
	'X': func(d *DispatchTable, c ParsedCsi) { d.screen.EraseCharacters(int(p(c, 0, 1))) },
	'Z': func(d *DispatchTable, c ParsedCsi) { d.screen.Backtab(int(p(c, 0, 1))) },
	'`': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorToColumn(int(p(c, 0, 1))) },
	'a': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorForward(int(p(c, 0, 1))) },
	'b': func(d *DispatchTable, c ParsedCsi) { d.screen.RepeatCharacter(int(p(c, 0, 1))) },
	'd': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorToLine(int(p(c, 0, 1))) },
	'e': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorDown(int(p(c, 0, 1))) },
	'f': func(d *DispatchTable, c ParsedCsi) { d.screen.CursorPosition(int(p(c, 0, 1)), int(p(c, 1, 1))) },
	'g': func(d *DispatchTable, c ParsedCsi) { d.screen.ClearTabStop(int(pRaw(c, 0, 0))) },
	'h': (*DispatchTable).dispatchSetMode,
	'l': (*DispatchTable).dispatchResetMode,
	'm': func(d *DispatchTable, c ParsedCsi) {
		if c.Prefix == '>' {
			d.screen.ModifyOtherKeys(int(pRaw(c, 0, 0)))
			return
		}
		d.dispatchSGR(c, nil)
	},
	'n': func(d *DispatchTable, c ParsedCsi) { d.screen.ReportDeviceStatus(int(pRaw(c, 0, 0)), c.Prefix == '?') },
	'p': func(d *DispatchTable, c ParsedCsi) {
		if c.Intermediate == '$' {
			d.screen.ReportModeStatus(int(pRaw(c, 0, 0)), c.Prefix == '?')
			return
		}
		d.reportUnknown(ErrUnknownFinal, c)
	},
	'q': func(d *DispatchTable, c ParsedCsi) {
		switch {
		case c.Intermediate == ' ':
			d.screen.SetCursorStyle(int(p(c, 0, 1)), c.Intermediate)
		case c.Prefix == '>':
			d.screen.XTVersion(int(pRaw(c, 0, 0)))
		default:
			d.reportUnknown(ErrUnknownFinal, c)
		}
	},
	'r': func(d *DispatchTable, c ParsedCsi) {
		if c.Prefix != 0 {
			d.dispatchRestoreModePrivate(c)
			return
		}
		d.screen.SetMargins(int(p(c, 0, 1)), int(pRaw(c, 1, 0)))
	},
	's': func(d *DispatchTable, c ParsedCsi) {
		if c.Prefix != 0 {
			d.dispatchSaveModePrivate(c)
			return
		}
		d.screen.SaveCursor()
	},
	't': func(d *DispatchTable, c ParsedCsi) { d.dispatchWindowManipulation(c) },
	'u': func(d *DispatchTable, c ParsedCsi) {
		switch c.Prefix {
		case '?':
			d.screen.ReportKeyEncodingFlags()
		case '=':
			how := byte('=')
			switch pRaw(c, 1, 1) {
			case 2:
				how = '+'
			case 3:
				how = '-'
			}
			d.screen.SetKeyEncodingFlags(int(p(c, 0, 0)), how)
		case '>':
			d.screen.PushKeyEncodingFlags(int(p(c, 0, 0)))
		case '<':
			d.screen.PopKeyEncodingFlags(int(p(c, 0, 1)))
		default:
			d.screen.RestoreCursor()
		}
	},
	'c': func(d *DispatchTable, c ParsedCsi) { d.screen.ReportDeviceAttributes(c.Prefix, int(pRaw(c, 0, 0))) },
	'x': func(d *DispatchTable, c ParsedCsi) { d.screen.Decsace(int(pRaw(c, 0, 0))) },
	'$': func(d *DispatchTable, c ParsedCsi) { d.reportUnknown(ErrUnknownFinal, c) },
}

// DispatchCSI performs the lookup-and-call step: special-case DECCARA
// (the 'r' final byte with a '$' intermediate, which is really an SGR
// batch scoped to a rectangular region) before falling back to the flat
// table, then look up the plain final byte.
func (d *DispatchTable) DispatchCSI(c ParsedCsi) {
	if c.Final == 'r' && c.Intermediate == '$' {
		region := &Region{
			Top: int(p(c, 0, 1)), Left: int(p(c, 1, 1)),
			Bottom: int(pRaw(c, 2, -1)), Right: int(pRaw(c, 3, -1)),
		}
		// The first four parameters are the rectangle; only the rest are
		// SGR attributes.
		sgr := c
		sgr.Params, sgr.IsSubParam = nil, nil
		if len(c.Params) > 4 {
			sgr.Params, sgr.IsSubParam = c.Params[4:], c.IsSubParam[4:]
		}
		d.dispatchSGR(sgr, region)
		return
	}
	op, ok := csiTable[c.Final]
	if !ok {
		d.reportUnknown(ErrUnknownFinal, c)
		return
	}
	op(d, c)
}

func (d *DispatchTable) dispatchSGR(c ParsedCsi, region *Region) {
	ops := ParseSGR(c.Params, c.IsSubParam, region)
	if len(ops) == 0 && len(c.Params) == 0 {
		d.screen.ApplySGR(nil, false, region)
		return
	}
	for _, op := range ops {
		d.screen.ApplySGR(op.Params, op.IsGroup, op.Region)
	}
}

func (d *DispatchTable) dispatchSetMode(c ParsedCsi) {
	for _, code := range c.Params {
		d.screen.SetMode(decodeModeCode(code, c.Prefix == '?'))
	}
}

func (d *DispatchTable) dispatchResetMode(c ParsedCsi) {
	for _, code := range c.Params {
		d.screen.ResetMode(decodeModeCode(code, c.Prefix == '?'))
	}
}

// decodeModeCode folds DEC private mode numbers and ANSI mode numbers
// into one int space Screen.SetMode/ResetMode/SaveMode/RestoreMode see,
// by negating private ones so e.g. private mode 2026 and ANSI mode 2026
// (if it existed) could never collide.
func decodeModeCode(raw int32, private bool) int {
	if private {
		return -int(raw) - 1
	}
	return int(raw)
}

func (d *DispatchTable) dispatchSaveModePrivate(c ParsedCsi) {
	if len(c.Params) == 0 {
		d.screen.SaveModes()
		return
	}
	for _, code := range c.Params {
		d.screen.SaveMode(decodeModeCode(code, true))
	}
}

func (d *DispatchTable) dispatchRestoreModePrivate(c ParsedCsi) {
	if len(c.Params) == 0 {
		d.screen.RestoreModes()
		return
	}
	for _, code := range c.Params {
		d.screen.RestoreMode(decodeModeCode(code, true))
	}
}

func (d *DispatchTable) dispatchWindowManipulation(c ParsedCsi) {
	op := int(pRaw(c, 0, 0))
	switch {
	case op == 22 || op == 23:
		d.screen.ManipulateTitleStack(op, int(pRaw(c, 1, 0)))
	case op >= 1 && op <= 21:
		d.screen.ReportSize(op)
	default:
		d.reportUnknown(ErrUnknownFinal, c)
	}
}

func (d *DispatchTable) reportUnknown(kind ErrorKind, c ParsedCsi) {
	label := "CSI"
	if c.Prefix == 0 && c.Intermediate != 0 && len(c.Params) == 0 {
		label = "ESC"
	}
	repr := truncateRepr([]byte{c.Final}, 64)
	d.sink.Report(Report{Kind: kind, Message: "unrecognized " + label + " final byte", Representation: repr})
	d.screen.ReportUnknown(label, []byte{c.Final})
}

func (d *DispatchTable) reportUnknownString(kind StringKind, payload []byte) {
	d.sink.Report(Report{Kind: ErrUnknownStringCode, Message: "unrecognized " + kind.String() + " payload", Representation: truncateRepr(payload, 64)})
	d.screen.ReportUnknown(kind.String(), payload)
}

func (d *DispatchTable) reportIgnored(kind StringKind, code int) {
	d.sink.Report(Report{Kind: ErrUnknownStringCode, Message: "ignored vendor " + kind.String() + " code", Representation: truncateRepr([]byte(strconv.Itoa(code)), 64)})
}
