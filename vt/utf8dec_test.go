package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, s string) []rune {
	t.Helper()
	var d Utf8Decoder
	var out []rune
	buf := []byte(s)
	for len(buf) > 0 {
		n, burst, _ := d.DecodeToEsc(buf, nil)
		out = append(out, burst...)
		require.Greater(t, n, 0)
		buf = buf[n:]
	}
	return out
}

func TestUtf8RoundTrip(t *testing.T) {
	s := "hello, 世界! Привет σ únïcödé 𐍈"
	got := decodeAll(t, s)
	assert.Equal(t, []rune(s), got)
}

func TestUtf8StopsAtEsc(t *testing.T) {
	var d Utf8Decoder
	buf := []byte("hi\x1b[31m")
	n, burst, found := d.DecodeToEsc(buf, nil)
	assert.True(t, found)
	assert.Equal(t, 2, n)
	assert.Equal(t, []rune("hi"), burst)
}

func TestUtf8InvalidLeadByteEmitsReplacement(t *testing.T) {
	var d Utf8Decoder
	// 0xC0 is an invalid lead byte (overlong); it should be rejected and
	// the following ASCII byte decoded normally, not swallowed.
	buf := []byte{0xC0, 'A'}
	n, burst, found := d.DecodeToEsc(buf, nil)
	assert.False(t, found)
	assert.Equal(t, 2, n)
	require.Len(t, burst, 2)
	assert.Equal(t, rune(0xfffd), burst[0])
	assert.Equal(t, 'A', burst[1])
}

func TestUtf8ControlBytesPassThroughAsCodepoints(t *testing.T) {
	var d Utf8Decoder
	buf := []byte{'\t', '\n', '\r', 'a'}
	n, burst, found := d.DecodeToEsc(buf, nil)
	assert.False(t, found)
	assert.Equal(t, 4, n)
	assert.Equal(t, []rune{'\t', '\n', '\r', 'a'}, burst)
}
