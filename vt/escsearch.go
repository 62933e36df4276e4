package vt

import "encoding/binary"

// FindEither scans buf for the first occurrence of byte a or byte b,
// returning its offset, or (-1, false) if neither appears. It is a pure
// function with no state, used by StringEscAccumulator to locate an ST
// terminator (ESC or BEL).
//
// Bytes are scanned a machine word at a time using the classic
// has-zero-byte SWAR trick (find a byte equal to 0 in word^pattern). The
// word loop only loads whole words that lie inside buf; the remaining
// tail, and the word holding the first candidate, are scanned byte by
// byte.
func FindEither(buf []byte, a, b byte) (offset int, found bool) {
	n := len(buf)
	i := 0

	const wordSize = 8
	if n >= wordSize {
		patA := splat(a)
		patB := splat(b)
		for ; i+wordSize <= n; i += wordSize {
			w := binary.LittleEndian.Uint64(buf[i : i+wordSize])
			if hasZeroByte(w^patA) || hasZeroByte(w^patB) {
				break
			}
		}
	}

	for ; i < n; i++ {
		if buf[i] == a || buf[i] == b {
			return i, true
		}
	}
	return -1, false
}

func splat(b byte) uint64 {
	v := uint64(b)
	v |= v << 8
	v |= v << 16
	v |= v << 32
	return v
}

// hasZeroByte reports whether any byte within w is 0x00, using the
// well-known bit trick: for each byte B, (B-1)&^B has its high bit set
// iff B == 0 (since B-1 underflows to 0xff only when B was 0).
func hasZeroByte(w uint64) bool {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	return (w-lo)&^w&hi != 0
}
