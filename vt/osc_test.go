package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTableWithFake() (*DispatchTable, *fakeScreen) {
	screen := &fakeScreen{}
	return NewDispatchTable(screen, nil), screen
}

func TestDispatchOSCSetsTitleAndIcon(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchOSC([]byte("0;my shell"), false)
	c, ok := screen.last("SetTitle")
	require.True(t, ok)
	assert.Equal(t, "my shell", c.args[0])
	_, ok = screen.last("SetIcon")
	assert.True(t, ok)
}

func TestDispatchOSCHyperlinkWithID(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchOSC([]byte("8;id=abc,foo=bar;https://example.com/x"), false)
	c, ok := screen.last("SetActiveHyperlink")
	require.True(t, ok)
	assert.Equal(t, "abc", c.args[0])
	assert.Equal(t, "https://example.com/x", c.args[1])
}

func TestDispatchOSCHyperlinkWithoutID(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchOSC([]byte("8;;https://example.com/"), false)
	c, ok := screen.last("SetActiveHyperlink")
	require.True(t, ok)
	assert.Equal(t, "", c.args[0])
	assert.Equal(t, "https://example.com/", c.args[1])
}

func TestDispatchOSCClipboard(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchOSC([]byte("52;c;Zm9v"), false)
	c, ok := screen.last("ClipboardControl")
	require.True(t, ok)
	assert.Equal(t, 52, c.args[0])
	assert.Equal(t, "c;Zm9v", c.args[1])
	assert.Equal(t, false, c.args[2])
}

func TestDispatchOSCIgnoredVendorCode(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchOSC([]byte("633;E;"), false)
	_, ok := screen.last("ReportUnknown")
	assert.False(t, ok, "an ignored vendor code must not be reported as unknown")
	_, ok = screen.last("SetTitle")
	assert.False(t, ok)
}

func TestDispatchOSCUnknownCodeReported(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchOSC([]byte("31415;whatever"), false)
	c, ok := screen.last("ReportUnknown")
	require.True(t, ok)
	assert.Equal(t, "OSC", c.args[0])
}

func TestDispatchOSCNoLeadingDigitsIsUnknown(t *testing.T) {
	d, screen := newTableWithFake()
	d.dispatchOSC([]byte(";nope"), false)
	_, ok := screen.last("ReportUnknown")
	assert.True(t, ok)
}

func TestSplitOSCCode(t *testing.T) {
	code, rest, ok := splitOSCCode([]byte("104;5"))
	assert.True(t, ok)
	assert.Equal(t, 104, code)
	assert.Equal(t, "5", string(rest))

	_, _, ok = splitOSCCode([]byte("notanumber"))
	assert.False(t, ok)
}
