package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBits_ParseAndString(t *testing.T) {
	b, err := ParseBits("0010110")
	require.NoError(t, err)
	assert.Equal(t, 7, b.Len())
	assert.Equal(t, "0010110", b.String())

	assert.False(t, b.Test(0))
	assert.True(t, b.Test(2))
	assert.True(t, b.Test(4))
	assert.False(t, b.Test(6))
	assert.False(t, b.Test(100))
}

func TestBits_LeadingZerosSurvive(t *testing.T) {
	b, err := ParseBits("0001")
	require.NoError(t, err)
	assert.Equal(t, "0001", b.String())
}

func TestBits_SetGrows(t *testing.T) {
	b := NewBits(3)
	b.Set(1, true)
	assert.Equal(t, "010", b.String())

	b.Set(5, true)
	assert.Equal(t, 6, b.Len())
	assert.Equal(t, "010001", b.String())

	b.Set(1, false)
	assert.Equal(t, "000001", b.String())
}

func TestBits_CloneDetaches(t *testing.T) {
	b, err := ParseBits("101")
	require.NoError(t, err)
	cp := b.Clone()

	b.Set(1, true)
	assert.Equal(t, "101", cp.String())
	assert.Equal(t, "111", b.String())
}

func TestBits_Equal(t *testing.T) {
	a, _ := ParseBits("0101")
	b, _ := ParseBits("0101")
	c, _ := ParseBits("101")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "width is part of the value")
}

func TestParseBits_Invalid(t *testing.T) {
	_, err := ParseBits("01a1")
	assert.Error(t, err)
}

func TestBitSet_ScanValue(t *testing.T) {
	var col BitSet
	require.NoError(t, col.Scan([]byte("1100")))
	require.True(t, col.Valid)
	assert.Equal(t, "1100", col.V.String())

	raw, err := col.Value()
	require.NoError(t, err)
	assert.Equal(t, "1100", raw)
}

func TestBitSet_Null(t *testing.T) {
	col, err := ParseBitSet("1")
	require.NoError(t, err)
	require.NoError(t, col.Scan(nil))
	assert.False(t, col.Valid)
}

func TestBitSet_DeepCopyDetaches(t *testing.T) {
	col, err := ParseBitSet("000")
	require.NoError(t, err)
	cp, err := col.DeepCopy()
	require.NoError(t, err)

	col.V.Set(0, true)
	assert.Equal(t, "000", cp.V.String())
}
