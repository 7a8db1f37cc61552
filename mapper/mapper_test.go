package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string
	Count int
	Tags  []string
}

func TestGoJSON_Roundtrip(t *testing.T) {
	m := GoJSON{}
	assert.Equal(t, "json", m.Name())

	in := payload{Name: "a", Count: 3, Tags: []string{"x", "y"}}
	data, err := m.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, m.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestMsgpack_Roundtrip(t *testing.T) {
	m := Msgpack{}
	assert.Equal(t, "msgpack", m.Name())

	in := payload{Name: "b", Count: 7}
	data, err := m.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, m.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestClone_Detaches(t *testing.T) {
	src := payload{Name: "c", Tags: []string{"a"}}
	var dst payload
	require.NoError(t, Clone(GoJSON{}, src, &dst))
	assert.Equal(t, src, dst)

	src.Tags[0] = "mutated"
	assert.Equal(t, []string{"a"}, dst.Tags)
}

func TestClone_MarshalError(t *testing.T) {
	var dst any
	err := Clone(GoJSON{}, func() {}, &dst)
	assert.Error(t, err)
}
