package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchCSI(t *testing.T, body string) (*DispatchTable, *fakeScreen) {
	t.Helper()
	d, screen := newTableWithFake()
	parsed, result := feedCSI(t, body)
	require.Equal(t, CsiDone, result)
	d.DispatchCSI(parsed)
	return d, screen
}

func TestDispatchCSICursorPosition(t *testing.T) {
	_, screen := dispatchCSI(t, "3;5H")
	c, ok := screen.last("CursorPosition")
	require.True(t, ok)
	assert.Equal(t, 3, c.args[0])
	assert.Equal(t, 5, c.args[1])
}

func TestDispatchCSIDefaultsMissingParamToOne(t *testing.T) {
	_, screen := dispatchCSI(t, "A")
	c, ok := screen.last("CursorUp")
	require.True(t, ok)
	assert.Equal(t, 1, c.args[0])
}

func TestDispatchCSIEraseInDisplayKeepsZeroAndPrivateFlag(t *testing.T) {
	_, screen := dispatchCSI(t, "?2J")
	c, ok := screen.last("EraseInDisplay")
	require.True(t, ok)
	assert.Equal(t, 2, c.args[0])
	assert.Equal(t, true, c.args[1])
}

func TestDispatchCSISGRPlain(t *testing.T) {
	_, screen := dispatchCSI(t, "1;4m")
	calls := 0
	for _, c := range screen.calls {
		if c.name == "ApplySGR" {
			calls++
		}
	}
	assert.Equal(t, 2, calls)
}

func TestDispatchCSIDeccaraRoutesThroughSGRWithRegion(t *testing.T) {
	d, screen := newTableWithFake()
	parsed, result := feedCSI(t, "1;1;5;10$r")
	require.Equal(t, CsiDone, result)
	parsed.Params = []int32{1, 1, 5, 10}
	d.DispatchCSI(parsed)

	c, ok := screen.last("ApplySGR")
	require.True(t, ok)
	region, ok := c.args[2].(*Region)
	require.True(t, ok)
	require.NotNil(t, region)
	assert.Equal(t, Region{Top: 1, Left: 1, Bottom: 5, Right: 10}, *region)
}

func TestDispatchCSIPrivateModeSetAndReset(t *testing.T) {
	d, screen := newTableWithFake()
	parsed, _ := feedCSI(t, "?7h")
	d.DispatchCSI(parsed)
	c, ok := screen.last("SetMode")
	require.True(t, ok)
	assert.Equal(t, -8, c.args[0]) // private mode 7 encoded as -7-1

	parsed, _ = feedCSI(t, "?7l")
	d.DispatchCSI(parsed)
	c, ok = screen.last("ResetMode")
	require.True(t, ok)
	assert.Equal(t, -8, c.args[0])
}

func TestDispatchCSIAnsiModeUnaffectedByPrivateEncoding(t *testing.T) {
	d, screen := newTableWithFake()
	parsed, _ := feedCSI(t, "4h")
	d.DispatchCSI(parsed)
	c, ok := screen.last("SetMode")
	require.True(t, ok)
	assert.Equal(t, 4, c.args[0])
}

func TestDispatchCSIUnknownFinalReported(t *testing.T) {
	d, screen := newTableWithFake()
	parsed, _ := feedCSI(t, "5y")
	d.DispatchCSI(parsed)
	c, ok := screen.last("ReportUnknown")
	require.True(t, ok)
	assert.Equal(t, "CSI", c.args[0])
}

func TestDispatchCSIWindowManipulationReportSize(t *testing.T) {
	_, screen := dispatchCSI(t, "18t")
	c, ok := screen.last("ReportSize")
	require.True(t, ok)
	assert.Equal(t, 18, c.args[0])
}

func TestDispatchCSISaveRestoreModesBulk(t *testing.T) {
	d, screen := newTableWithFake()
	parsed, _ := feedCSI(t, "?s")
	d.DispatchCSI(parsed)
	_, ok := screen.last("SaveModes")
	assert.True(t, ok)

	parsed, _ = feedCSI(t, "?r")
	d.DispatchCSI(parsed)
	_, ok = screen.last("RestoreModes")
	assert.True(t, ok)
}
