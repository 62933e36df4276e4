package vt

// Utf8Decoder is a streaming UTF-8 decoder implemented as the classic
// Bjoern Hoehrmann byte-class/state transition DFA (the same shape used
// by st, alacritty, and most terminal emulators that decode UTF-8
// byte-by-byte instead of rune-by-rune through a library). It decodes a
// bounded burst of code points per call and stops at the first ESC byte,
// per spec.md §4.2.
type Utf8Decoder struct {
	state byte
	cp    rune
}

const (
	utf8Accept byte = 0
	utf8Reject byte = 12
)

// utf8ByteClass maps each possible byte value to one of 12 character
// classes, shrinking the transition table below to 9 states x 12
// classes instead of 9 states x 256 bytes.
var utf8ByteClass = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3, 11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
}

// utf8Transition maps (state, class) -> next state. State values are
// multiples of 12 so the row for state s begins at index s (already
// state, not state*12 -- the table below is pre-multiplied the way
// Hoehrmann's original table is, so indexing is state+class).
var utf8Transition = [108]byte{
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12,
	12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12,
	12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// step feeds one byte through the DFA, returning the new state and
// updating d.cp according to Hoehrmann's accumulation rule.
func (d *Utf8Decoder) step(b byte) byte {
	class := utf8ByteClass[b]

	if d.state != utf8Accept {
		d.cp = (rune(b) & 0x3f) | (d.cp << 6)
	} else {
		d.cp = rune(0xff>>class) & rune(b)
	}

	d.state = utf8Transition[int(d.state)+int(class)]
	return d.state
}

// Reset clears decoder state. Called on parser Reset and on every
// transition into a non-Normal state (spec.md §3, Utf8Decoder lifecycle).
func (d *Utf8Decoder) Reset() {
	d.state = utf8Accept
	d.cp = 0
}

// DecodeToEsc decodes code points from buf into out (reusing its backing
// array, growing it if needed) until it hits the first ESC byte (0x1B) or
// runs out of input. It returns the number of input bytes consumed, the
// resulting burst, and whether a sentinel (ESC) byte was found (in which
// case the ESC byte itself is NOT consumed, so the caller can transition
// state on it). Control bytes other than ESC pass through as single-rune
// "code points" — the Screen layer distinguishes them by numeric value,
// per spec.md §4.2.
func (d *Utf8Decoder) DecodeToEsc(buf []byte, out []rune) (consumed int, burst []rune, sentinelFound bool) {
	burst = out[:0]
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == 0x1b {
			return i, burst, true
		}

		prevState := d.state
		switch d.step(b) {
		case utf8Accept:
			burst = append(burst, d.cp)
			d.cp = 0
		case utf8Reject:
			burst = append(burst, 0xfffd)
			d.state = utf8Accept
			d.cp = 0
			if prevState != utf8Accept {
				// Re-feed the offending byte: it may be the start of a
				// new, valid sequence (e.g. an ASCII byte following a
				// truncated multi-byte run).
				i--
			}
		default:
			// Continue: accumulating a multi-byte sequence.
		}
	}
	return len(buf), burst, false
}
