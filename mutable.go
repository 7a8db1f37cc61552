package sqltypes

import (
	"fmt"

	"github.com/SergeiKhmelevSPA/sqltypes/mapper"
)

// Mutable is the base adapter for value types with interior state, such as
// documents, maps and slices. It carries the same column contract as
// Immutable but produces detached clones on DeepCopy, so the framework-held
// snapshot cannot be changed behind its back by mutating the live value.
type Mutable[T any, C Codec[T]] struct {
	Immutable[T, C]
}

// NewMutable returns a valid adapter holding v.
func NewMutable[T any, C Codec[T]](v T) Mutable[T, C] {
	return Mutable[T, C]{Immutable[T, C]{V: v, Valid: true}}
}

// MutableFromPtr returns an adapter that is invalid when p is nil.
func MutableFromPtr[T any, C Codec[T]](p *T) Mutable[T, C] {
	return Mutable[T, C]{ImmutableFromPtr[T, C](p)}
}

// Equal reports whether two adapters hold the same column state.
func (n Mutable[T, C]) Equal(other Mutable[T, C]) bool {
	return n.Immutable.Equal(other.Immutable)
}

// DeepCopy returns a detached copy of the adapter. When the codec implements
// Cloner the clone is delegated to it; otherwise the value is round-tripped
// through the default mapper.
func (n Mutable[T, C]) DeepCopy() (Mutable[T, C], error) {
	if !n.Valid {
		return Mutable[T, C]{}, nil
	}
	var c C
	if cl, ok := any(c).(Cloner[T]); ok {
		return NewMutable[T, C](cl.CloneColumn(n.V)), nil
	}
	var out T
	if err := mapper.Clone(mapper.Default(), n.V, &out); err != nil {
		return Mutable[T, C]{}, fmt.Errorf("sqltypes: deep copy failed: %w", err)
	}
	return NewMutable[T, C](out), nil
}
