package vt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEscBasicTerminatedByBEL(t *testing.T) {
	var s StringEscAccumulator
	s.Reset(KindOSC, 1024)

	res := s.Consume([]byte("0;my title\x07"))
	require.True(t, res.Complete)
	assert.True(t, res.SawST)
	assert.Equal(t, "0;my title", string(res.Payload))
	assert.Equal(t, len("0;my title\x07"), res.Consumed)
}

func TestStringEscBasicTerminatedByEscBackslash(t *testing.T) {
	var s StringEscAccumulator
	s.Reset(KindOSC, 1024)

	res := s.Consume([]byte("2;a title\x1b\\"))
	require.True(t, res.Complete)
	assert.True(t, res.SawST)
	assert.Equal(t, "2;a title", string(res.Payload))
	// The ESC byte is consumed here; the trailing '\\' is left for the
	// caller's Escape-state step, mirroring the teacher's parseOSCString.
	assert.Equal(t, len("2;a title\x1b"), res.Consumed)
}

func TestStringEscOversizedNonOSC52Discarded(t *testing.T) {
	var s StringEscAccumulator
	maxLen := 64
	s.Reset(KindOSC, maxLen)

	body := "0;" + strings.Repeat("x", maxLen)
	res := s.Consume([]byte(body))
	require.True(t, res.TooLong)
	assert.Nil(t, res.Payload)

	// Further bytes before ST keep being discarded silently...
	res2 := s.Consume([]byte(strings.Repeat("y", 10)))
	assert.False(t, res2.Complete)

	// ...until the terminator closes the (discarded) payload.
	res3 := s.Consume([]byte("\x07"))
	require.True(t, res3.Complete)
	assert.True(t, res3.SawST)
	assert.Nil(t, res3.Payload)
}

func TestStringEscOSC52StreamsInTwoPartialsThenFinal(t *testing.T) {
	var s StringEscAccumulator
	maxLen := 16
	s.Reset(KindOSC, maxLen)

	chunk := "52;c;" + strings.Repeat("Q", maxLen)

	res1 := s.Consume([]byte(chunk))
	require.True(t, res1.Complete)
	assert.True(t, res1.IsPartial)
	assert.False(t, res1.SawST)
	assert.Equal(t, chunk, string(res1.Payload))

	res2 := s.Consume([]byte(strings.Repeat("Q", maxLen)))
	require.True(t, res2.Complete)
	assert.True(t, res2.IsPartial)
	// Continuation payloads are rewound to a synthetic "52;;" prefix so
	// downstream OSC-52 parsing stays uniform across partial dispatches.
	assert.True(t, strings.HasPrefix(string(res2.Payload), "52;;"))

	res3 := s.Consume([]byte("Q\x07"))
	require.True(t, res3.Complete)
	assert.True(t, res3.SawST)
	assert.False(t, res3.IsPartial)
	assert.True(t, strings.HasPrefix(string(res3.Payload), "52;;Q"))
}

func TestStringEscKindRoundTrip(t *testing.T) {
	assert.Equal(t, "OSC", KindOSC.String())
	assert.Equal(t, "DCS", KindDCS.String())
	assert.Equal(t, "APC", KindAPC.String())
	assert.Equal(t, "PM", KindPM.String())
	assert.Equal(t, "SOS", KindSOS.String())
}

func TestOscCodeParsesLeadingDigits(t *testing.T) {
	assert.Equal(t, 52, oscCode([]byte("52;c;Zm9v")))
	assert.Equal(t, -1, oscCode([]byte(";no code")))
	assert.Equal(t, 8, oscCode([]byte("8;;http://example.com")))
}
