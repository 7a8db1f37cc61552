package sqltypes

import (
	"database/sql/driver"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/SergeiKhmelevSPA/sqltypes/mapper"
)

// Immutable is the base adapter for value types without interior mutability.
// It holds the domain value and a validity flag (Valid=false represents SQL
// NULL) and derives the whole column contract from the codec type parameter.
//
// Concrete column types embed an instantiation:
//
//	type Currency struct {
//	    sqltypes.Immutable[currency.Unit, currencyCodec]
//	}
//
// The codec C is instantiated as its zero value, so adapters work as plain
// struct fields with no construction step.
type Immutable[T any, C Codec[T]] struct {
	V     T
	Valid bool
}

// NewImmutable returns a valid adapter holding v.
func NewImmutable[T any, C Codec[T]](v T) Immutable[T, C] {
	return Immutable[T, C]{V: v, Valid: true}
}

// ImmutableFromPtr returns an adapter that is invalid when p is nil.
func ImmutableFromPtr[T any, C Codec[T]](p *T) Immutable[T, C] {
	if p == nil {
		return Immutable[T, C]{}
	}
	return Immutable[T, C]{V: *p, Valid: true}
}

// Scan implements sql.Scanner. A nil source yields an invalid adapter and no
// error; anything else is delegated to the codec.
func (n *Immutable[T, C]) Scan(src any) error {
	if src == nil {
		var zero T
		n.V, n.Valid = zero, false
		return nil
	}
	var c C
	v, err := c.DecodeColumn(src)
	if err != nil {
		return err
	}
	n.V, n.Valid = v, true
	return nil
}

// Value implements driver.Valuer. An invalid adapter writes SQL NULL.
func (n Immutable[T, C]) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	var c C
	return c.EncodeColumn(n.V)
}

// Equal reports whether two adapters hold the same column state. This is the
// dirty-checking primitive: a row needs an UPDATE exactly when Equal is false.
func (n Immutable[T, C]) Equal(other Immutable[T, C]) bool {
	if n.Valid != other.Valid {
		return false
	}
	if !n.Valid {
		return true
	}
	var c C
	if eq, ok := any(c).(Equaler[T]); ok {
		return eq.EqualColumn(n.V, other.V)
	}
	return reflect.DeepEqual(n.V, other.V)
}

// Hash returns a digest of the encoded column value, usable as a cheap
// dirty-check fingerprint. Invalid adapters and encode failures hash to 0.
func (n Immutable[T, C]) Hash() uint64 {
	if !n.Valid {
		return 0
	}
	var c C
	v, err := c.EncodeColumn(n.V)
	if err != nil || v == nil {
		return 0
	}
	switch x := v.(type) {
	case []byte:
		return xxhash.Sum64(x)
	case string:
		return xxhash.Sum64String(x)
	default:
		return xxhash.Sum64String(fmt.Sprintf("%v", x))
	}
}

// DeepCopy returns the receiver unchanged. Immutable values share structure
// freely.
func (n Immutable[T, C]) DeepCopy() Immutable[T, C] {
	return n
}

// Disassemble produces a detached snapshot of the adapter suitable for
// second-level caches, using the default mapper.
func (n Immutable[T, C]) Disassemble() ([]byte, error) {
	return n.MarshalJSON()
}

// Assemble restores an adapter from a Disassemble snapshot.
func (n *Immutable[T, C]) Assemble(data []byte) error {
	return n.UnmarshalJSON(data)
}

// MarshalJSON implements json.Marshaler. Invalid adapters marshal as null.
func (n Immutable[T, C]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return mapper.Default().Marshal(n.V)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Immutable[T, C]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		var zero T
		n.V, n.Valid = zero, false
		return nil
	}
	if err := mapper.Default().Unmarshal(data, &n.V); err != nil {
		return fmt.Errorf("sqltypes: unmarshal failed: %w", err)
	}
	n.Valid = true
	return nil
}

// String returns a loggable form of the adapter, "null" when invalid.
func (n Immutable[T, C]) String() string {
	if !n.Valid {
		return "null"
	}
	return fmt.Sprintf("%v", n.V)
}

// SetValid stores v and marks the adapter valid.
func (n *Immutable[T, C]) SetValid(v T) {
	n.V, n.Valid = v, true
}

// Ptr returns a pointer to the value, or nil when invalid.
func (n Immutable[T, C]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.V
	return &v
}

// ValueOrZero returns the value, or the zero value when invalid.
func (n Immutable[T, C]) ValueOrZero() T {
	if !n.Valid {
		var zero T
		return zero
	}
	return n.V
}

// IsZero reports whether the adapter represents SQL NULL.
func (n Immutable[T, C]) IsZero() bool {
	return !n.Valid
}
