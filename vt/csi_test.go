package vt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedCSI(t *testing.T, body string) (ParsedCsi, CsiFeedResult) {
	t.Helper()
	c := NewCsiAccumulator(256, 16, 1<<20)
	var last CsiFeedResult
	for i := 0; i < len(body); i++ {
		last = c.Feed(body[i])
		if last == CsiAborted {
			return ParsedCsi{}, last
		}
	}
	require.Equal(t, CsiDone, last, "body %q did not finish", body)
	return c.Result(), last
}

func TestCsiCursorPosition(t *testing.T) {
	got, _ := feedCSI(t, "3;5H")
	want := ParsedCsi{Final: 'H', Params: []int32{3, 5}, IsSubParam: []bool{false, false}, Valid: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCsiPrivatePrefix(t *testing.T) {
	got, _ := feedCSI(t, "?2026h")
	assert.Equal(t, byte('?'), got.Prefix)
	assert.Equal(t, byte('h'), got.Final)
	assert.Equal(t, []int32{2026}, got.Params)
}

func TestCsiSubParamsForSGR(t *testing.T) {
	got, _ := feedCSI(t, "38:2::10:20:30m")
	assert.Equal(t, []int32{38, 2, 0, 10, 20, 30}, got.Params)
	assert.Equal(t, []bool{false, true, true, true, true, true}, got.IsSubParam)
}

func TestCsiNoParams(t *testing.T) {
	got, _ := feedCSI(t, "m")
	assert.Empty(t, got.Params)
	assert.Equal(t, byte('m'), got.Final)
}

func TestCsiNegativeSignOnlyAtSlotStart(t *testing.T) {
	got, _ := feedCSI(t, "-5;3r")
	assert.Equal(t, []int32{-5, 3}, got.Params)
}

func TestCsiSignNotAtSlotStartAborts(t *testing.T) {
	_, result := feedCSI(t, "5-3m")
	assert.Equal(t, CsiAborted, result)
}

func TestCsiTooManyParametersAborts(t *testing.T) {
	c := NewCsiAccumulator(256, 16, 1<<20)
	var last CsiFeedResult
	for i := 0; i < 257; i++ {
		last = c.Feed('1')
		if last != CsiAborted {
			last = c.Feed(';')
		}
		if last == CsiAborted {
			break
		}
	}
	assert.Equal(t, CsiAborted, last)
	assert.Equal(t, ErrTooManyCSIParameters, c.AbortReason())
}

func TestCsiDigitOverflowAborts(t *testing.T) {
	c := NewCsiAccumulator(256, 16, 1<<20)
	var last CsiFeedResult
	digits := "123456789012345678" // 18 digits > 16
	for i := 0; i < len(digits); i++ {
		last = c.Feed(digits[i])
		if last == CsiAborted {
			break
		}
	}
	assert.Equal(t, CsiAborted, last)
	assert.Equal(t, ErrCSIDigitOverflow, c.AbortReason())
}

func TestCsiTooLongAborts(t *testing.T) {
	c := NewCsiAccumulator(256, 16, 8)
	var last CsiFeedResult
	body := "1;2;3;4;5;6;7;8;9m"
	for i := 0; i < len(body); i++ {
		last = c.Feed(body[i])
		if last == CsiAborted {
			break
		}
	}
	assert.Equal(t, CsiAborted, last)
	assert.Equal(t, ErrCSITooLong, c.AbortReason())
}
