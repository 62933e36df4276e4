package vt

import "time"

// Screen is the capability bundle a collaborator implements so that
// Parser can drive it. It plays the role the teacher's dispatchHandler
// interface plays in subhav-terminal_parser/terminal/handlers.go, widened
// to the full operation set a VT/ANSI parser needs to dispatch — drawing,
// cursor motion, erase/scroll, modes, colors, graphics rendition,
// keyboard encoding, window manipulation, title/icon/cwd, hyperlinks,
// capability queries and notifications, pending-mode rendering control,
// vendor DCS payloads, image graphics, and multicell commands.
//
// Screen's internal model (glyph storage, sprite cache, renderer, image
// codec, box-drawing rasterizer) is out of scope for this module; Screen
// is specified here only by this interface.
type Screen interface {
	// Drawing
	DrawText(codepoints []rune)
	Bell()
	Backspace()
	Tab()
	Linefeed()
	CarriageReturn()
	Index()
	ReverseIndex()
	NextLine()
	Align()
	ChangeCharset(slot int, charset byte)

	// Cursor
	CursorUp(n int)
	CursorDown(n int)
	CursorForward(n int)
	CursorBack(n int)
	CursorUp1(n int)
	CursorDown1(n int)
	CursorPosition(row, col int)
	CursorToColumn(n int)
	CursorToLine(n int)
	Backtab(n int)
	TabForward(n int)
	SaveCursor()
	RestoreCursor()
	SetCursorStyle(n int, trailer byte)
	SetTabStop()
	ClearTabStop(mode int)

	// Erase / scroll
	EraseInDisplay(mode int, private bool)
	EraseInLine(mode int, private bool)
	EraseCharacters(n int)
	InsertCharacters(n int)
	DeleteCharacters(n int)
	InsertLines(n int)
	DeleteLines(n int)
	ScrollUp(n int)
	ReverseScroll(n int)
	ReverseScrollAndFillFromScrollback(n int)
	SetMargins(top, bottom int)
	RepeatCharacter(n int)

	// Modes
	SetMode(code int)
	ResetMode(code int)
	SaveModes()
	RestoreModes()
	SaveMode(code int)
	RestoreMode(code int)
	ReportModeStatus(code int, private bool)
	ReportDeviceAttributes(kind byte, primary int)
	ReportDeviceStatus(kind int, private bool)

	// Colors / palette
	SetDynamicColor(code int, payload string)
	SetColorTableColor(code int, payload string)
	ColorControl(code int, payload string)
	PushColors(n int)
	PopColors(n int)
	ReportColorStack()

	// Graphics rendition
	ApplySGR(params []int32, isSubGroup bool, region *Region)
	Decsace(mode int)

	// Keyboard encoding
	ReportKeyEncodingFlags()
	SetKeyEncodingFlags(value int, how byte)
	PushKeyEncodingFlags(value int)
	PopKeyEncodingFlags(n int)
	ModifyOtherKeys(value int)

	// Window
	ReportSize(kind int)
	ManipulateTitleStack(op int, slot int)
	XTVersion(kind int)

	// Title / icon / cwd
	SetTitle(s string)
	SetIcon(s string)
	ProcessCwdNotification(code int, payload []byte)

	// Hyperlink
	SetActiveHyperlink(id, url string)

	// Capabilities / notifications
	RequestCapabilities(kind byte, payload []byte)
	DesktopNotify(code int, payload string)
	ClipboardControl(codeOrNeg int, payload string, isPartial bool)
	FileTransmission(payload []byte)
	ShellPromptMarking(s string)

	// Pending rendering
	PauseRendering(on bool, token uint64) bool

	// Vendor DCS (kitty remote-control protocol)
	HandleRemoteCmd(payload []byte)
	HandleOverlayReady(payload []byte)
	HandleKittenResult(payload []byte)
	HandleRemotePrint(payload []byte)
	HandleRemoteEcho(payload []byte)
	HandleRemoteSSH(payload []byte)
	HandleRemoteAskpass(payload []byte)
	HandleRemoteClone(payload []byte)
	HandleRemoteEdit(payload []byte)
	HandleRestoreCursorAppearance(payload []byte)

	// Graphics (APC G) and multicell (OSC 66)
	ApplyGraphicsCommand(payload []byte)
	ApplyMulticellCommand(payload []byte)

	// Terminfo/termcap and generic DCS-forwarded payloads
	RequestTermcap(payload []byte)

	// Errors / unknown sequences, see ReportSink for the general sink.
	// ReportUnknown lets Screen react (e.g. count) to sequences the
	// parser recognized the shape of but not the meaning of.
	ReportUnknown(kind string, payload []byte)
}

// Region is the rectangular-area argument to DECCARA (`$r`). nil means
// "no region" (plain SGR).
type Region struct {
	Top, Left, Bottom, Right int
}

// Clock abstracts time.Now so PendingMode's drain deadline is
// deterministically testable, per spec.md §9 ("Pending mode's time
// source is an injected clock provider").
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
