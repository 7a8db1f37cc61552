package mapper

import "github.com/goccy/go-json"

// GoJSON is the default mapper.
type GoJSON struct{}

func (GoJSON) Name() string                       { return "json" }
func (GoJSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
