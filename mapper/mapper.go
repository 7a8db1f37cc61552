// Package mapper provides the pluggable serialization used by adapter bases
// and document column types. The default mapper is JSON; alternatives are
// selected by registered name, either directly or through the config package.
package mapper

import "fmt"

// Mapper serializes domain values for document columns, deep copies and
// cache snapshots.
type Mapper interface {
	// Name identifies the mapper in the registry and in configuration.
	Name() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Clone deep-copies src into dst by round-tripping it through m. This is a
// lossy mapping if src and dst do not share a serialized structure; column
// adapters always clone into the same type.
func Clone(m Mapper, src, dst any) error {
	data, err := m.Marshal(src)
	if err != nil {
		return fmt.Errorf("mapper: marshal failed: %w", err)
	}
	if err := m.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("mapper: unmarshal failed: %w", err)
	}
	return nil
}
