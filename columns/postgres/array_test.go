package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeiKhmelevSPA/sqltypes"
)

func TestArray_ScanLiteral(t *testing.T) {
	var col TextArray
	require.NoError(t, col.Scan([]byte(`{alpha,beta,"with space"}`)))
	assert.Equal(t, []string{"alpha", "beta", "with space"}, col.V)

	var ints Int64Array
	require.NoError(t, ints.Scan([]byte(`{1,2,3}`)))
	assert.Equal(t, []int64{1, 2, 3}, ints.V)
}

func TestArray_RoundTrip(t *testing.T) {
	col := ArrayFrom([]string{"a", "b c", `d"e`})
	raw, err := col.Value()
	require.NoError(t, err)

	var back TextArray
	require.NoError(t, back.Scan(raw))
	assert.Equal(t, col.V, back.V)
}

func TestArray_EmptyVsNull(t *testing.T) {
	empty := ArrayFrom([]string{})
	raw, err := empty.Value()
	require.NoError(t, err)
	require.NotNil(t, raw, "empty array is not NULL")

	var back TextArray
	require.NoError(t, back.Scan(raw))
	assert.True(t, back.Valid)
	assert.Empty(t, back.V)

	var null TextArray
	require.NoError(t, null.Scan(nil))
	assert.False(t, null.Valid)
	rawNull, err := null.Value()
	require.NoError(t, err)
	assert.Nil(t, rawNull)
}

func TestArray_DeepCopyDetaches(t *testing.T) {
	col := ArrayFrom([]int64{1, 2})
	cp, err := col.DeepCopy()
	require.NoError(t, err)

	col.V[0] = 99
	assert.Equal(t, []int64{1, 2}, cp.V)
}

func TestArray_FloatAndBool(t *testing.T) {
	floats := ArrayFrom([]float64{1.5, -2.25})
	back, err := sqltypes.Roundtrip[[]float64, arrayCodec[float64]](floats.V)
	require.NoError(t, err)
	assert.Equal(t, floats.V, back)

	bools := ArrayFrom([]bool{true, false})
	backB, err := sqltypes.Roundtrip[[]bool, arrayCodec[bool]](bools.V)
	require.NoError(t, err)
	assert.Equal(t, bools.V, backB)
}

func TestArray_Registration(t *testing.T) {
	ddl, ok := sqltypes.ColumnDDL("postgres", "text_array")
	require.True(t, ok)
	assert.Equal(t, "text[]", ddl)

	_, ok = sqltypes.LookupColumn("text_array")
	assert.False(t, ok, "arrays are dialect-scoped")
}
