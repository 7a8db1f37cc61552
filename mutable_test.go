package sqltypes

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tags is a mutable value type with a comma-joined column form.
type tagsCodec struct{}

func (tagsCodec) DecodeColumn(src any) ([]string, error) {
	s, ok := src.(string)
	if !ok {
		b, okb := src.([]byte)
		if !okb {
			return nil, fmt.Errorf("expected text, got %T", src)
		}
		s = string(b)
	}
	if s == "" {
		return []string{}, nil
	}
	return strings.Split(s, ","), nil
}

func (tagsCodec) EncodeColumn(v []string) (driver.Value, error) {
	return strings.Join(v, ","), nil
}

// clonedTagsCodec adds a Cloner implementation so DeepCopy skips the mapper.
type clonedTagsCodec struct {
	tagsCodec
}

func (clonedTagsCodec) CloneColumn(v []string) []string {
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func TestMutable_ScanValue(t *testing.T) {
	var col Mutable[[]string, tagsCodec]
	require.NoError(t, col.Scan("a,b,c"))
	assert.Equal(t, []string{"a", "b", "c"}, col.V)

	val, err := col.Value()
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", val)

	require.NoError(t, col.Scan(nil))
	assert.False(t, col.Valid)
}

func TestMutable_DeepCopyDetaches(t *testing.T) {
	col := NewMutable[[]string, tagsCodec]([]string{"a", "b"})
	cp, err := col.DeepCopy()
	require.NoError(t, err)
	require.True(t, cp.Valid)

	col.V[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, cp.V)
}

func TestMutable_DeepCopyViaCloner(t *testing.T) {
	col := NewMutable[[]string, clonedTagsCodec]([]string{"x", "y"})
	cp, err := col.DeepCopy()
	require.NoError(t, err)

	col.V[1] = "mutated"
	assert.Equal(t, []string{"x", "y"}, cp.V)
}

func TestMutable_DeepCopyNull(t *testing.T) {
	var col Mutable[[]string, tagsCodec]
	cp, err := col.DeepCopy()
	require.NoError(t, err)
	assert.False(t, cp.Valid)
}

func TestMutable_Equal(t *testing.T) {
	a := NewMutable[[]string, tagsCodec]([]string{"a"})
	b := NewMutable[[]string, tagsCodec]([]string{"a"})
	c := NewMutable[[]string, tagsCodec]([]string{"z"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
