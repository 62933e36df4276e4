package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSGRColonSubParamsGroupedAsOneOp(t *testing.T) {
	csi, result := feedCSI(t, "38:2::10:20:30m")
	require.Equal(t, CsiDone, result)

	ops := ParseSGR(csi.Params, csi.IsSubParam, nil)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].IsGroup)
	assert.Equal(t, []int32{38, 2, 0, 10, 20, 30}, ops[0].Params)
	assert.Nil(t, ops[0].Region)
}

func TestParseSGRPlainAttributesEachOwnOp(t *testing.T) {
	ops := ParseSGR([]int32{1, 4}, []bool{false, false}, nil)
	require.Len(t, ops, 2)
	assert.Equal(t, []int32{1}, ops[0].Params)
	assert.Equal(t, []int32{4}, ops[1].Params)
	assert.False(t, ops[0].IsGroup)
}

func TestParseSGRLegacySemicolonRGB(t *testing.T) {
	ops := ParseSGR([]int32{38, 2, 10, 20, 30}, []bool{false, false, false, false, false}, nil)
	require.Len(t, ops, 2)
	assert.Equal(t, []int32{38}, ops[0].Params)
	assert.False(t, ops[0].IsGroup)
	assert.Equal(t, []int32{10, 20, 30}, ops[1].Params)
	assert.True(t, ops[1].IsGroup)
}

func TestParseSGRIndexedColor(t *testing.T) {
	ops := ParseSGR([]int32{48, 5, 202}, []bool{false, false, false}, nil)
	require.Len(t, ops, 2)
	assert.Equal(t, []int32{202}, ops[1].Params)
	assert.True(t, ops[1].IsGroup)
}

func TestParseSGRUnknownColorTypeAborts(t *testing.T) {
	ops := ParseSGR([]int32{38, 9, 1}, []bool{false, false, false}, nil)
	require.Len(t, ops, 1)
	assert.Equal(t, []int32{38}, ops[0].Params)
}

func TestParseSGRWithDeccaraRegion(t *testing.T) {
	region := &Region{Top: 1, Left: 1, Bottom: 5, Right: 10}
	ops := ParseSGR([]int32{1}, []bool{false}, region)
	require.Len(t, ops, 1)
	assert.Same(t, region, ops[0].Region)
}
