package vt

import "vtparser/ascii"

// csiState is the CsiAccumulator's internal state machine, per spec.md
// §4.4: Start, Body, PostSecondary.
type csiState int

const (
	csiStateStart csiState = iota
	csiStateBody
	csiStatePostSecondary
)

// CsiFeedResult is what CsiAccumulator.Feed reports back to ParserCore
// after each byte.
type CsiFeedResult int

const (
	CsiContinuing CsiFeedResult = iota
	CsiDone
	CsiAborted
)

// ParsedCsi is the typed result of a completed CSI sequence (spec.md §3).
type ParsedCsi struct {
	Prefix       byte // 0, or one of '?' '>' '<' '='
	Intermediate byte // 0, or the single collected secondary byte
	Final        byte
	Params       []int32
	IsSubParam   []bool // parallel: true if joined to the previous param with ':'
	Valid        bool
}

// CsiAccumulator implements the CSI parameter-list state machine: digits,
// ';', ':', private prefixes, intermediate bytes, and the final trailer
// byte, with the overflow policy from spec.md §4.4.
type CsiAccumulator struct {
	state csiState

	prefix       byte
	intermediate byte
	final        byte

	params     []int32
	isSubParam []bool

	curValue     int32
	curNegative  bool
	curDigits    int
	curHasAny    bool // true once any digit or sign byte has been seen for the in-progress slot
	curSlotIsSub bool // whether the in-progress slot is joined to the previous one via ':'

	totalBytes int

	maxParams int
	maxDigits int
	maxLen    int

	abortKind ErrorKind
}

// NewCsiAccumulator creates an accumulator bounded by the given config
// limits.
func NewCsiAccumulator(maxParams, maxDigits, maxLen int) *CsiAccumulator {
	c := &CsiAccumulator{maxParams: maxParams, maxDigits: maxDigits, maxLen: maxLen}
	c.Reset()
	return c
}

// Reset clears all accumulated state, starting a new CSI sequence.
func (c *CsiAccumulator) Reset() {
	c.state = csiStateStart
	c.prefix = 0
	c.intermediate = 0
	c.final = 0
	c.params = c.params[:0]
	c.isSubParam = c.isSubParam[:0]
	c.curValue = 0
	c.curNegative = false
	c.curDigits = 0
	c.curHasAny = false
	c.curSlotIsSub = false
	c.totalBytes = 0
	c.abortKind = 0
}

// AbortReason returns the error kind recorded by the most recent abort.
func (c *CsiAccumulator) AbortReason() ErrorKind { return c.abortKind }

func (c *CsiAccumulator) abort(kind ErrorKind) CsiFeedResult {
	c.abortKind = kind
	return CsiAborted
}

// commitParam pushes the in-progress digit accumulator as one parameter.
// Its IsSubParam bit reflects whether IT was joined to the PREVIOUS
// parameter via ':' (i.e. the separator that opened its slot) — not the
// separator that closes it. nextSlotIsSub sets up the flag for whatever
// parameter comes next, based on the separator just seen (';' => false,
// ':' => true). An empty slot commits as 0, per spec.md's "empty means 0"
// rule.
func (c *CsiAccumulator) commitParam(nextSlotIsSub bool) CsiFeedResult {
	if len(c.params) >= c.maxParams {
		return c.abort(ErrTooManyCSIParameters)
	}
	v := c.curValue
	if c.curNegative {
		v = -v
	}
	c.params = append(c.params, v)
	c.isSubParam = append(c.isSubParam, c.curSlotIsSub)
	c.curValue = 0
	c.curNegative = false
	c.curDigits = 0
	c.curHasAny = false
	c.curSlotIsSub = nextSlotIsSub
	return CsiContinuing
}

func (c *CsiAccumulator) finish(final byte) CsiFeedResult {
	c.final = final
	return CsiDone
}

// Feed advances the accumulator by one byte. Inline-executable control
// bytes (BEL, BS, HT, LF, VT, FF, CR, SI, SO) are the caller's
// responsibility to detect via ascii.IsInlineExecutable and execute
// without calling Feed at all — the CSI state is otherwise untouched by
// them, exactly as spec.md §4.4 describes.
func (c *CsiAccumulator) Feed(b byte) CsiFeedResult {
	c.totalBytes++
	if c.totalBytes > c.maxLen {
		return c.abort(ErrCSITooLong)
	}

	switch c.state {
	case csiStateStart:
		return c.feedStart(b)
	case csiStateBody:
		return c.feedBody(b)
	case csiStatePostSecondary:
		return c.feedPostSecondary(b)
	default:
		return c.abort(ErrInvalidCSIByte)
	}
}

func (c *CsiAccumulator) feedStart(b byte) CsiFeedResult {
	switch {
	case b >= '0' && b <= '9':
		r := c.addDigit(b)
		c.state = csiStateBody
		return r
	case b == ';':
		c.state = csiStateBody
		return c.commitParam(false)
	case b == ':':
		c.state = csiStateBody
		return c.commitParam(true)
	case ascii.IsCsiPrefix(b):
		c.prefix = b
		c.state = csiStateBody
		return CsiContinuing
	case b == '-':
		c.curNegative = true
		c.curHasAny = true
		c.state = csiStateBody
		return CsiContinuing
	case ascii.IsIntermediate(b):
		c.intermediate = b
		c.state = csiStatePostSecondary
		return CsiContinuing
	case ascii.IsCsiTrailer(b):
		return c.finish(b)
	default:
		return c.abort(ErrInvalidCSIByte)
	}
}

func (c *CsiAccumulator) feedBody(b byte) CsiFeedResult {
	switch {
	case b >= '0' && b <= '9':
		return c.addDigit(b)
	case b == '-':
		if c.curHasAny {
			return c.abort(ErrInvalidCSIByte)
		}
		c.curNegative = true
		c.curHasAny = true
		return CsiContinuing
	case b == ';':
		return c.commitParam(false)
	case b == ':':
		return c.commitParam(true)
	case ascii.IsIntermediate(b):
		if r := c.commitParam(false); r == CsiAborted {
			return r
		}
		c.intermediate = b
		c.state = csiStatePostSecondary
		return CsiContinuing
	case ascii.IsCsiTrailer(b):
		if r := c.commitParam(false); r == CsiAborted {
			return r
		}
		return c.finish(b)
	default:
		return c.abort(ErrInvalidCSIByte)
	}
}

func (c *CsiAccumulator) feedPostSecondary(b byte) CsiFeedResult {
	if ascii.IsCsiTrailer(b) {
		return c.finish(b)
	}
	return c.abort(ErrInvalidCSIByte)
}

func (c *CsiAccumulator) addDigit(b byte) CsiFeedResult {
	c.curHasAny = true
	c.curDigits++
	if c.curDigits > c.maxDigits {
		return c.abort(ErrCSIDigitOverflow)
	}
	c.curValue = c.curValue*10 + int32(b-'0')
	return CsiContinuing
}

// Result returns the completed ParsedCsi after Feed has returned CsiDone.
// The returned slices alias the accumulator's internal storage and are
// only valid until the next Reset.
func (c *CsiAccumulator) Result() ParsedCsi {
	return ParsedCsi{
		Prefix:       c.prefix,
		Intermediate: c.intermediate,
		Final:        c.final,
		Params:       c.params,
		IsSubParam:   c.isSubParam,
		Valid:        true,
	}
}
