package vt

// fakeScreen is a recording Screen used across this package's tests: it
// never renders anything, it just remembers every call it received so a
// test can assert on exactly what ParserCore/DispatchTable decided to
// do, mirroring the teacher's own style of driving its RichTextTerminal
// through a small, inspectable screen type in terminal/screen_test.go-
// shaped tests.
type fakeCall struct {
	name string
	args []any
}

type fakeScreen struct {
	calls         []fakeCall
	pauseReturns  bool
}

func (f *fakeScreen) record(name string, args ...any) {
	f.calls = append(f.calls, fakeCall{name: name, args: args})
}

// last returns the most recent call with the given name, or ok=false.
func (f *fakeScreen) last(name string) (fakeCall, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i], true
		}
	}
	return fakeCall{}, false
}

func (f *fakeScreen) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.name
	}
	return out
}

func (f *fakeScreen) DrawText(codepoints []rune) { f.record("DrawText", string(codepoints)) }
func (f *fakeScreen) Bell()                      { f.record("Bell") }
func (f *fakeScreen) Backspace()                 { f.record("Backspace") }
func (f *fakeScreen) Tab()                       { f.record("Tab") }
func (f *fakeScreen) Linefeed()                  { f.record("Linefeed") }
func (f *fakeScreen) CarriageReturn()            { f.record("CarriageReturn") }
func (f *fakeScreen) Index()                     { f.record("Index") }
func (f *fakeScreen) ReverseIndex()              { f.record("ReverseIndex") }
func (f *fakeScreen) NextLine()                  { f.record("NextLine") }
func (f *fakeScreen) Align()                     { f.record("Align") }
func (f *fakeScreen) ChangeCharset(slot int, charset byte) {
	f.record("ChangeCharset", slot, charset)
}

func (f *fakeScreen) CursorUp(n int)      { f.record("CursorUp", n) }
func (f *fakeScreen) CursorDown(n int)    { f.record("CursorDown", n) }
func (f *fakeScreen) CursorForward(n int) { f.record("CursorForward", n) }
func (f *fakeScreen) CursorBack(n int)    { f.record("CursorBack", n) }
func (f *fakeScreen) CursorUp1(n int)     { f.record("CursorUp1", n) }
func (f *fakeScreen) CursorDown1(n int)   { f.record("CursorDown1", n) }
func (f *fakeScreen) CursorPosition(row, col int) {
	f.record("CursorPosition", row, col)
}
func (f *fakeScreen) CursorToColumn(n int) { f.record("CursorToColumn", n) }
func (f *fakeScreen) CursorToLine(n int)   { f.record("CursorToLine", n) }
func (f *fakeScreen) Backtab(n int)        { f.record("Backtab", n) }
func (f *fakeScreen) TabForward(n int)     { f.record("TabForward", n) }
func (f *fakeScreen) SaveCursor()          { f.record("SaveCursor") }
func (f *fakeScreen) RestoreCursor()       { f.record("RestoreCursor") }
func (f *fakeScreen) SetCursorStyle(n int, trailer byte) {
	f.record("SetCursorStyle", n, trailer)
}
func (f *fakeScreen) SetTabStop()            { f.record("SetTabStop") }
func (f *fakeScreen) ClearTabStop(mode int)  { f.record("ClearTabStop", mode) }

func (f *fakeScreen) EraseInDisplay(mode int, private bool) {
	f.record("EraseInDisplay", mode, private)
}
func (f *fakeScreen) EraseInLine(mode int, private bool) {
	f.record("EraseInLine", mode, private)
}
func (f *fakeScreen) EraseCharacters(n int)  { f.record("EraseCharacters", n) }
func (f *fakeScreen) InsertCharacters(n int) { f.record("InsertCharacters", n) }
func (f *fakeScreen) DeleteCharacters(n int) { f.record("DeleteCharacters", n) }
func (f *fakeScreen) InsertLines(n int)      { f.record("InsertLines", n) }
func (f *fakeScreen) DeleteLines(n int)      { f.record("DeleteLines", n) }
func (f *fakeScreen) ScrollUp(n int)         { f.record("ScrollUp", n) }
func (f *fakeScreen) ReverseScroll(n int)    { f.record("ReverseScroll", n) }
func (f *fakeScreen) ReverseScrollAndFillFromScrollback(n int) {
	f.record("ReverseScrollAndFillFromScrollback", n)
}
func (f *fakeScreen) SetMargins(top, bottom int) { f.record("SetMargins", top, bottom) }
func (f *fakeScreen) RepeatCharacter(n int)      { f.record("RepeatCharacter", n) }

func (f *fakeScreen) SetMode(code int)   { f.record("SetMode", code) }
func (f *fakeScreen) ResetMode(code int) { f.record("ResetMode", code) }
func (f *fakeScreen) SaveModes()         { f.record("SaveModes") }
func (f *fakeScreen) RestoreModes()      { f.record("RestoreModes") }
func (f *fakeScreen) SaveMode(code int)  { f.record("SaveMode", code) }
func (f *fakeScreen) RestoreMode(code int) { f.record("RestoreMode", code) }
func (f *fakeScreen) ReportModeStatus(code int, private bool) {
	f.record("ReportModeStatus", code, private)
}
func (f *fakeScreen) ReportDeviceAttributes(kind byte, primary int) {
	f.record("ReportDeviceAttributes", kind, primary)
}
func (f *fakeScreen) ReportDeviceStatus(kind int, private bool) {
	f.record("ReportDeviceStatus", kind, private)
}

func (f *fakeScreen) SetDynamicColor(code int, payload string) {
	f.record("SetDynamicColor", code, payload)
}
func (f *fakeScreen) SetColorTableColor(code int, payload string) {
	f.record("SetColorTableColor", code, payload)
}
func (f *fakeScreen) ColorControl(code int, payload string) {
	f.record("ColorControl", code, payload)
}
func (f *fakeScreen) PushColors(n int)     { f.record("PushColors", n) }
func (f *fakeScreen) PopColors(n int)      { f.record("PopColors", n) }
func (f *fakeScreen) ReportColorStack()    { f.record("ReportColorStack") }

func (f *fakeScreen) ApplySGR(params []int32, isSubGroup bool, region *Region) {
	f.record("ApplySGR", append([]int32(nil), params...), isSubGroup, region)
}
func (f *fakeScreen) Decsace(mode int) { f.record("Decsace", mode) }

func (f *fakeScreen) ReportKeyEncodingFlags() { f.record("ReportKeyEncodingFlags") }
func (f *fakeScreen) SetKeyEncodingFlags(value int, how byte) {
	f.record("SetKeyEncodingFlags", value, how)
}
func (f *fakeScreen) PushKeyEncodingFlags(value int) { f.record("PushKeyEncodingFlags", value) }
func (f *fakeScreen) PopKeyEncodingFlags(n int)      { f.record("PopKeyEncodingFlags", n) }
func (f *fakeScreen) ModifyOtherKeys(value int)      { f.record("ModifyOtherKeys", value) }

func (f *fakeScreen) ReportSize(kind int) { f.record("ReportSize", kind) }
func (f *fakeScreen) ManipulateTitleStack(op int, slot int) {
	f.record("ManipulateTitleStack", op, slot)
}
func (f *fakeScreen) XTVersion(kind int) { f.record("XTVersion", kind) }

func (f *fakeScreen) SetTitle(s string) { f.record("SetTitle", s) }
func (f *fakeScreen) SetIcon(s string)  { f.record("SetIcon", s) }
func (f *fakeScreen) ProcessCwdNotification(code int, payload []byte) {
	f.record("ProcessCwdNotification", code, string(payload))
}

func (f *fakeScreen) SetActiveHyperlink(id, url string) {
	f.record("SetActiveHyperlink", id, url)
}

func (f *fakeScreen) RequestCapabilities(kind byte, payload []byte) {
	f.record("RequestCapabilities", kind, string(payload))
}
func (f *fakeScreen) DesktopNotify(code int, payload string) {
	f.record("DesktopNotify", code, payload)
}
func (f *fakeScreen) ClipboardControl(codeOrNeg int, payload string, isPartial bool) {
	f.record("ClipboardControl", codeOrNeg, payload, isPartial)
}
func (f *fakeScreen) FileTransmission(payload []byte) {
	f.record("FileTransmission", string(payload))
}
func (f *fakeScreen) ShellPromptMarking(s string) { f.record("ShellPromptMarking", s) }

func (f *fakeScreen) PauseRendering(on bool, token uint64) bool {
	f.record("PauseRendering", on, token)
	return f.pauseReturns
}

func (f *fakeScreen) HandleRemoteCmd(payload []byte)    { f.record("HandleRemoteCmd", string(payload)) }
func (f *fakeScreen) HandleOverlayReady(payload []byte) { f.record("HandleOverlayReady", string(payload)) }
func (f *fakeScreen) HandleKittenResult(payload []byte) {
	f.record("HandleKittenResult", string(payload))
}
func (f *fakeScreen) HandleRemotePrint(payload []byte) { f.record("HandleRemotePrint", string(payload)) }
func (f *fakeScreen) HandleRemoteEcho(payload []byte)  { f.record("HandleRemoteEcho", string(payload)) }
func (f *fakeScreen) HandleRemoteSSH(payload []byte)   { f.record("HandleRemoteSSH", string(payload)) }
func (f *fakeScreen) HandleRemoteAskpass(payload []byte) {
	f.record("HandleRemoteAskpass", string(payload))
}
func (f *fakeScreen) HandleRemoteClone(payload []byte) { f.record("HandleRemoteClone", string(payload)) }
func (f *fakeScreen) HandleRemoteEdit(payload []byte)  { f.record("HandleRemoteEdit", string(payload)) }
func (f *fakeScreen) HandleRestoreCursorAppearance(payload []byte) {
	f.record("HandleRestoreCursorAppearance", string(payload))
}

func (f *fakeScreen) ApplyGraphicsCommand(payload []byte) {
	f.record("ApplyGraphicsCommand", string(payload))
}
func (f *fakeScreen) ApplyMulticellCommand(payload []byte) {
	f.record("ApplyMulticellCommand", string(payload))
}

func (f *fakeScreen) RequestTermcap(payload []byte) { f.record("RequestTermcap", string(payload)) }

func (f *fakeScreen) ReportUnknown(kind string, payload []byte) {
	f.record("ReportUnknown", kind, string(payload))
}
