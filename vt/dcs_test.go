package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPendingModeStartStop(t *testing.T) {
	assert.True(t, isPendingModeStart([]byte("=1s")))
	assert.True(t, isPendingModeStop([]byte("=2s")))
	assert.False(t, isPendingModeStart([]byte("=2s")))
	assert.False(t, isPendingModeStop([]byte("+q544e")))
}

func TestDispatchDCSTermcapQuery(t *testing.T) {
	d, screen := newTableWithFake()
	// "544e" is the hex encoding of "TN" (terminfo name query).
	d.dispatchDCS([]byte("+q544e"))
	c, ok := screen.last("RequestCapabilities")
	require.True(t, ok)
	assert.Equal(t, byte('+'), c.args[0])
	assert.Equal(t, "544e", c.args[1])
}

func TestDispatchDCSDecrqss(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchDCS([]byte("$qm"))
	c, ok := screen.last("RequestTermcap")
	require.True(t, ok)
	assert.Equal(t, "m", c.args[0])
}

func TestDispatchDCSKittyCmd(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchDCS([]byte(`@kitty-cmd{"cmd":"ls"}`))
	c, ok := screen.last("HandleRemoteCmd")
	require.True(t, ok)
	assert.Equal(t, `{"cmd":"ls"}`, c.args[0])
}

func TestDispatchDCSKittyOverlayReady(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchDCS([]byte("@kitty-overlay-ready"))
	_, ok := screen.last("HandleOverlayReady")
	assert.True(t, ok)
}

func TestDispatchDCSUnknownReported(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchDCS([]byte("something else entirely"))
	c, ok := screen.last("ReportUnknown")
	require.True(t, ok)
	assert.Equal(t, "DCS", c.args[0])
}
