package vt

// StringKind identifies which of the five string-terminated escape
// families (spec.md glossary: OSC, DCS, APC, PM, SOS) an
// StringEscAccumulator is currently collecting.
type StringKind int

const (
	KindOSC StringKind = iota
	KindDCS
	KindAPC
	KindPM
	KindSOS
)

func (k StringKind) String() string {
	switch k {
	case KindOSC:
		return "OSC"
	case KindDCS:
		return "DCS"
	case KindAPC:
		return "APC"
	case KindPM:
		return "PM"
	case KindSOS:
		return "SOS"
	default:
		return "?"
	}
}

// StringEscAccumulator accumulates OSC/DCS/APC/PM/SOS payloads until an
// ST terminator (ESC \ or BEL) is seen, enforcing MAX_ESCAPE_CODE_LENGTH
// with the OSC-52 streaming exception from spec.md §4.6.
type StringEscAccumulator struct {
	kind   StringKind
	buf    []byte
	maxLen int

	discarding    bool // true: current payload exceeded the cap and isn't OSC 52; keep scanning for ST, dispatch nothing
	streamingOSC52 bool // true: this OSC 52 payload has already been partially dispatched at least once
}

// Reset starts collecting a new payload of the given kind.
func (s *StringEscAccumulator) Reset(kind StringKind, maxLen int) {
	s.kind = kind
	s.buf = s.buf[:0]
	s.maxLen = maxLen
	s.discarding = false
	s.streamingOSC52 = false
}

// StringConsumeResult reports what Consume decided after scanning a
// chunk of input.
type StringConsumeResult struct {
	// Consumed is how many bytes of the input chunk were absorbed.
	Consumed int
	// Complete is true once a full payload boundary was reached: either
	// the ST terminator was found, or the OSC-52 streaming exception
	// produced a partial dispatch.
	Complete bool
	// Payload is the accumulated bytes to dispatch when Complete is
	// true. Nil when the payload was discarded for being too long (a
	// non-OSC-52 kind that exceeded maxLen).
	Payload []byte
	// IsPartial is true only for an OSC-52 streamed partial dispatch.
	IsPartial bool
	// SawST is true when a real ST terminator (not an overflow trigger)
	// closed the payload; the caller advances to Normal state. When
	// false but Complete is true, the accumulator is still open (OSC 52
	// mid-stream) and the caller should keep feeding it.
	SawST bool
	// TooLong is true when a non-OSC-52 payload was discarded for
	// exceeding maxLen; the caller should emit an ErrEscapeCodeTooLong
	// report.
	TooLong bool
	// TerminatedByEsc is true when SawST closed on a bare ESC rather than
	// BEL. The caller should re-enter Escape-state processing for
	// whatever byte follows (normally '\', completing "ESC \") instead of
	// returning straight to Normal.
	TerminatedByEsc bool
}

// Consume scans chunk for the first ST sentinel (ESC or BEL), per
// spec.md §4.6 step 1. Any bare ESC terminates the string immediately
// (the ESC byte is consumed here; the caller re-enters Escape-state
// processing for whatever follows, which resolves both the "ESC \"
// two-byte ST and the case of an ESC that abruptly starts a new
// sequence, exactly the way the teacher's parseOSCString handles it).
func (s *StringEscAccumulator) Consume(chunk []byte) StringConsumeResult {
	idx, found := FindEither(chunk, 0x1b, 0x07)

	var newBytes []byte
	var consumedForBoundary int
	sawST := false
	terminatedByEsc := false
	if found {
		newBytes = chunk[:idx]
		consumedForBoundary = idx + 1 // consumes the sentinel byte itself
		sawST = true
		terminatedByEsc = chunk[idx] == 0x1b
	} else {
		newBytes = chunk
		consumedForBoundary = len(chunk)
	}

	if s.discarding {
		if sawST {
			s.discarding = false
			return StringConsumeResult{Consumed: consumedForBoundary, Complete: true, SawST: true, TerminatedByEsc: terminatedByEsc}
		}
		return StringConsumeResult{Consumed: consumedForBoundary}
	}

	s.buf = append(s.buf, newBytes...)

	if sawST {
		payload := append([]byte(nil), s.buf...)
		return StringConsumeResult{Consumed: consumedForBoundary, Complete: true, SawST: true, TerminatedByEsc: terminatedByEsc, Payload: payload}
	}

	if len(s.buf) <= s.maxLen {
		return StringConsumeResult{Consumed: consumedForBoundary}
	}

	// Over the cap with no terminator yet. OSC 52 (clipboard) is
	// streamed instead of discarded.
	if s.kind == KindOSC && oscCode(s.buf) == 52 {
		payload := append([]byte(nil), s.buf...)
		s.streamingOSC52 = true
		// Rewind so "52;;" becomes the prefix of a synthetic
		// continuation, keeping downstream OSC-52 parsing uniform
		// across partial dispatches.
		s.buf = append(s.buf[:0], '5', '2', ';', ';')
		return StringConsumeResult{Consumed: consumedForBoundary, Complete: true, IsPartial: true, Payload: payload}
	}

	s.discarding = true
	s.buf = s.buf[:0]
	return StringConsumeResult{Consumed: consumedForBoundary, TooLong: true}
}

// oscCode parses the leading decimal OSC code (up to 5 digits) from buf,
// returning -1 if none is present yet.
func oscCode(buf []byte) int {
	i := 0
	for i < len(buf) && i < 5 && buf[i] >= '0' && buf[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1
	}
	n := 0
	for j := 0; j < i; j++ {
		n = n*10 + int(buf[j]-'0')
	}
	return n
}
