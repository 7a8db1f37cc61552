package mapper

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a binary mapper, useful for blob columns and compact cache
// snapshots. Note that msgpack output is not valid JSON, so a column written
// with this mapper cannot be read by database-side JSON operators.
type Msgpack struct{}

func (Msgpack) Name() string                       { return "msgpack" }
func (Msgpack) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (Msgpack) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }
