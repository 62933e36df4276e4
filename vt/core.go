package vt

import (
	"time"

	"github.com/google/uuid"

	"vtparser/ascii"
	"vtparser/iobuf"
)

// reclaimMargin is how close to capacity the unconsumed region must get
// before ParserCore shifts it back down to offset 0 (spec.md §5's
// "reclaim when within a safety margin of full, not only when full").
const reclaimMargin = 4096

// parserState is ParserCore's top-level state (spec.md §4.9): which of
// the five string-escape families, if any, is currently open, or plain
// CSI/Escape/Normal processing.
type parserState int

const (
	stNormal parserState = iota
	stEscape
	stEscapeIntermediate
	stCSI
	stDCS
	stOSC
	stAPC
	stPM
	stSOS
)

// ParseReport summarizes one Parse call for the driving loop, per
// spec.md §4.9: how much input was consumed, whether reclaiming freed up
// writer space, and the pending-mode bookkeeping a caller needs to decide
// when to call Parse again.
type ParseReport struct {
	InputRead          int
	WriteSpaceCreated  bool
	HasPendingInput    bool
	TimeSinceNewInput  time.Duration
	PendingActivatedAt time.Time
	PendingWaitTime    time.Duration
}

// Parser is ParserCore: the single-goroutine state machine that drains a
// ByteBuffer fed by a writer goroutine, decoding UTF-8, recognizing
// escape sequences, and dispatching to a Screen. It plays the role the
// teacher's *parser (terminal/parser.go) plays, generalized from a
// bufio.Reader pull model to the producer/consumer ByteBuffer of
// spec.md §5.
type Parser struct {
	windowID string

	buf    *iobuf.ByteBuffer
	screen Screen
	sink   ReportSink
	cfg    Config
	clock  Clock

	dispatch *DispatchTable

	state           parserState
	escIntermediate byte

	utf8    Utf8Decoder
	runeBuf []rune

	csi *CsiAccumulator
	str StringEscAccumulator

	stringKind StringKind

	pending *PendingMode
}

// New creates a Parser bound to screen and sink, with the given config
// and clock. An empty windowID is replaced with a fresh UUID, the way a
// multiplexer mints one window ID per pane (spec.md's ParserCore.New
// note).
func New(windowID string, screen Screen, cfg Config, sink ReportSink, clock Clock) *Parser {
	if windowID == "" {
		windowID = uuid.NewString()
	}
	if sink == nil {
		sink = CallbackSink(func(Report) {})
	}
	if clock == nil {
		clock = SystemClock{}
	}
	cfg.Normalize()

	p := &Parser{
		windowID: windowID,
		buf:      iobuf.New(cfg.BufferSize),
		screen:   screen,
		sink:     sink,
		cfg:      cfg,
		clock:    clock,
		dispatch: NewDispatchTable(screen, sink),
		csi:      NewCsiAccumulator(cfg.MaxCSIParameters, cfg.MaxCSIDigits, cfg.BufferSize),
		pending:  NewPendingMode(cfg.PendingWaitTime),
		runeBuf:  make([]rune, 0, 256),
	}
	return p
}

// WindowID returns the identifier this Parser was created with.
func (p *Parser) WindowID() string { return p.windowID }

// Reset returns the parser to its initial state, discarding any
// in-flight escape sequence and all buffered input.
func (p *Parser) Reset() {
	p.buf.Reset()
	p.state = stNormal
	p.escIntermediate = 0
	p.utf8.Reset()
	p.csi.Reset()
	if p.pending.Active() {
		p.pending.Stop(p.screen)
	}
}

// AcquireWriteBuffer exposes the writer-side half of the shared
// ByteBuffer to a reader goroutine.
func (p *Parser) AcquireWriteBuffer() ([]byte, error) { return p.buf.AcquireWrite() }

// CommitWrite records that n bytes were written into the slice
// AcquireWriteBuffer returned.
func (p *Parser) CommitWrite(n int) { p.buf.CommitWrite(n, p.clock.Now()) }

// HasSpaceForInput reports whether a writer may currently acquire a
// non-empty write region.
func (p *Parser) HasSpaceForInput() bool { return p.buf.HasSpace() }

// Parse drains as much buffered input as is currently available,
// dispatching to Screen as sequences complete, and returns a report of
// what happened. flush forces processing even if InputDelay hasn't
// elapsed since the first unconsumed byte arrived — callers pass true
// when they know no more input is coming soon (e.g. on an idle timeout
// or before shutdown).
func (p *Parser) Parse(now time.Time, flush bool) ParseReport {
	hasPending, sinceFirstByte := p.buf.MergePending(now)

	report := ParseReport{HasPendingInput: hasPending, TimeSinceNewInput: sinceFirstByte}
	if p.pending.Active() {
		report.PendingActivatedAt = p.pending.ActivatedAt()
		report.PendingWaitTime = p.pending.WaitTime()
	}
	// A pending window must drain on its own timeout even if no further
	// input ever arrives — a client that starts synchronized output and
	// then hangs or crashes must not wedge rendering forever.
	if p.pending.Active() && p.pending.ShouldDrain(now, p.buf.UnconsumedLen(), p.cfg.BufferSize-reclaimMargin) {
		p.pending.Stop(p.screen)
	}

	if !hasPending {
		return report
	}
	if !flush && sinceFirstByte < p.cfg.InputDelay && !p.buf.NearFull(reclaimMargin) {
		return report
	}

	report.InputRead = p.run()

	if p.pending.Active() && p.pending.ShouldDrain(now, p.buf.UnconsumedLen(), p.cfg.BufferSize-reclaimMargin) {
		p.pending.Stop(p.screen)
	}
	if p.buf.NearFull(reclaimMargin) {
		report.WriteSpaceCreated = p.buf.Reclaim()
	}

	return report
}

// run drives the state machine over whatever is currently unread,
// stopping when either the buffer is exhausted or the current state
// needs more bytes than are available to make further progress.
func (p *Parser) run() int {
	total := 0
	for {
		n := p.buf.UnconsumedLen()
		if n == 0 {
			return total
		}
		chunk := p.buf.Unread()[:n]

		consumed, progressed := p.step(chunk)
		if consumed > 0 {
			p.buf.Advance(consumed)
			total += consumed
		}
		if !progressed {
			return total
		}
	}
}

func (p *Parser) step(chunk []byte) (consumed int, progressed bool) {
	switch p.state {
	case stNormal:
		return p.stepNormal(chunk)
	case stEscape:
		return p.stepEscape(chunk)
	case stEscapeIntermediate:
		return p.stepEscapeIntermediate(chunk)
	case stCSI:
		return p.stepCSI(chunk)
	case stDCS:
		return p.stepString(KindDCS, chunk)
	case stOSC:
		return p.stepString(KindOSC, chunk)
	case stAPC:
		return p.stepString(KindAPC, chunk)
	case stPM:
		return p.stepString(KindPM, chunk)
	case stSOS:
		return p.stepString(KindSOS, chunk)
	default:
		p.state = stNormal
		return 0, true
	}
}

func (p *Parser) stepNormal(chunk []byte) (int, bool) {
	consumed, burst, sentinelFound := p.utf8.DecodeToEsc(chunk, p.runeBuf)
	p.runeBuf = burst[:0]
	if len(burst) > 0 {
		p.emitBurst(burst)
	}
	if !sentinelFound {
		p.buf.Sync()
		return consumed, false
	}
	p.state = stEscape
	p.utf8.Reset()
	p.buf.Sync()
	return consumed + 1, true
}

func (p *Parser) stepEscape(chunk []byte) (int, bool) {
	b := chunk[0]
	switch {
	case b == '[':
		p.csi.Reset()
		p.state = stCSI
	case b == ']':
		p.str.Reset(KindOSC, p.cfg.MaxEscapeCodeLength)
		p.state = stOSC
	case b == 'P':
		p.str.Reset(KindDCS, p.cfg.MaxEscapeCodeLength)
		p.state = stDCS
	case b == 'X':
		p.str.Reset(KindSOS, p.cfg.MaxEscapeCodeLength)
		p.state = stSOS
	case b == '^':
		p.str.Reset(KindPM, p.cfg.MaxEscapeCodeLength)
		p.state = stPM
	case b == '_':
		p.str.Reset(KindAPC, p.cfg.MaxEscapeCodeLength)
		p.state = stAPC
	case ascii.IsIntermediate(b):
		p.escIntermediate = b
		p.state = stEscapeIntermediate
	default:
		p.dispatchEscapeFinal(b)
		p.state = stNormal
		p.buf.Sync()
	}
	return 1, true
}

func (p *Parser) stepEscapeIntermediate(chunk []byte) (int, bool) {
	final := chunk[0]
	switch p.escIntermediate {
	case '#':
		if final == '8' {
			p.screen.Align()
		} else {
			p.dispatch.reportUnknown(ErrUnknownFinal, ParsedCsi{Final: final, Intermediate: '#'})
		}
	case '(', ')', '*', '+':
		p.screen.ChangeCharset(int(p.escIntermediate-'('), final)
	default:
		p.dispatch.reportUnknown(ErrUnknownFinal, ParsedCsi{Final: final, Intermediate: p.escIntermediate})
	}
	p.state = stNormal
	p.buf.Sync()
	return 1, true
}

// decKeypadApplication is the ParserCore-internal mode number for the
// keypad mode toggled by ESC = (SetMode) and ESC > (ResetMode), folded
// into the same SetMode/ResetMode path CSI private modes use (spec.md's mode code space is deliberately not
// tied to any one escape family).
const decKeypadApplication = -9999

func (p *Parser) dispatchEscapeFinal(b byte) {
	switch b {
	case 'D':
		p.screen.Index()
	case 'M':
		p.screen.ReverseIndex()
	case 'E':
		p.screen.NextLine()
	case 'H':
		p.screen.SetTabStop()
	case '7':
		p.screen.SaveCursor()
	case '8':
		p.screen.RestoreCursor()
	case '=':
		p.screen.SetMode(decKeypadApplication)
	case '>':
		p.screen.ResetMode(decKeypadApplication)
	case '\\':
		// Second byte of the two-byte ST; the string it closed has
		// already been dispatched.
	default:
		p.dispatch.reportUnknown(ErrUnknownFinal, ParsedCsi{Final: b})
	}
}

func (p *Parser) stepCSI(chunk []byte) (int, bool) {
	consumed := 0
	for consumed < len(chunk) {
		b := chunk[consumed]
		if ascii.IsInlineExecutable(b) {
			p.execCtrl(b)
			consumed++
			continue
		}
		r := p.csi.Feed(b)
		consumed++
		switch r {
		case CsiContinuing:
			continue
		case CsiDone:
			p.handleCsiDone(p.csi.Result())
			p.state = stNormal
			p.buf.Sync()
			return consumed, true
		case CsiAborted:
			p.sink.Report(Report{Kind: p.csi.AbortReason(), Message: "CSI sequence aborted"})
			p.state = stNormal
			p.buf.Sync()
			return consumed, true
		}
	}
	return consumed, false
}

func (p *Parser) handleCsiDone(c ParsedCsi) {
	if c.Prefix == '?' && len(c.Params) == 1 && c.Params[0] == 2026 {
		switch c.Final {
		case 'h':
			p.pending.Start(p.screen, p.clock.Now(), 0)
			return
		case 'l':
			if !p.pending.Active() {
				p.sink.Report(Report{Kind: ErrPendingStopWithoutStart, Message: "CSI ?2026l seen without a matching ?2026h"})
				return
			}
			p.pending.Stop(p.screen)
			return
		}
	}
	p.dispatch.DispatchCSI(c)
}

func (p *Parser) stepString(kind StringKind, chunk []byte) (int, bool) {
	res := p.str.Consume(chunk)
	if res.TooLong {
		p.sink.Report(Report{Kind: ErrEscapeCodeTooLong, Message: "escape code payload exceeded the length cap", Representation: truncateRepr(res.Payload, 64)})
		return res.Consumed, true
	}
	if !res.Complete {
		return res.Consumed, false
	}
	switch {
	case res.IsPartial:
		if kind == KindOSC {
			d := p.dispatch
			code, rest, _ := splitOSCCode(res.Payload)
			d.screen.ClipboardControl(code, string(rest), true)
		}
	case res.SawST:
		p.finishString(kind, res.Payload)
		if res.TerminatedByEsc {
			// The ESC that closed the string may be the first byte of
			// "ESC \" (the two-byte ST) or may simply abut a new
			// sequence; either way the next byte is Escape-state's job.
			p.state = stEscape
		} else {
			p.state = stNormal
		}
		p.buf.Sync()
	}
	return res.Consumed, true
}

func (p *Parser) finishString(kind StringKind, payload []byte) {
	switch kind {
	case KindOSC:
		p.dispatch.dispatchOSC(payload, false)
	case KindDCS:
		p.finishDCS(payload)
	case KindAPC:
		p.screen.ApplyGraphicsCommand(payload)
	case KindPM, KindSOS:
		p.dispatch.reportUnknownString(kind, payload)
	}
}

func (p *Parser) finishDCS(payload []byte) {
	switch {
	case isPendingModeStart(payload):
		p.pending.Start(p.screen, p.clock.Now(), 0)
	case isPendingModeStop(payload):
		if !p.pending.Active() {
			p.sink.Report(Report{Kind: ErrPendingStopWithoutStart, Message: "DCS =2s seen without a matching =1s", Representation: truncateRepr(payload, 64)})
			return
		}
		p.pending.Stop(p.screen)
	default:
		p.dispatch.dispatchDCS(payload)
	}
}

// emitBurst splits a decoded rune burst into contiguous printable runs
// (forwarded to Screen.DrawText as one batch) and individual C0/DEL
// control code points (forwarded to execCtrl one at a time), matching
// the comment on Utf8Decoder.DecodeToEsc: control bytes pass through the
// decoder as one-rune code points interspersed with text.
func (p *Parser) emitBurst(burst []rune) {
	i := 0
	for i < len(burst) {
		if isControlRune(burst[i]) {
			p.execCtrl(byte(burst[i]))
			i++
			continue
		}
		j := i
		for j < len(burst) && !isControlRune(burst[j]) {
			j++
		}
		p.screen.DrawText(burst[i:j])
		i = j
	}
}

func isControlRune(r rune) bool { return r < 0x20 || r == 0x7f }

// execCtrl executes a single C0 control byte inline, whether it arrived
// interspersed in a Normal-state text burst or inline within an
// in-progress CSI sequence (ascii.IsInlineExecutable).
func (p *Parser) execCtrl(b byte) {
	switch b {
	case ascii.BEL:
		p.screen.Bell()
	case ascii.BS:
		p.screen.Backspace()
	case ascii.TAB:
		p.screen.Tab()
	case ascii.LF, ascii.VT, ascii.FF:
		p.screen.Linefeed()
	case ascii.CR:
		p.screen.CarriageReturn()
	}
}
