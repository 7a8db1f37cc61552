package sqltypes

import "database/sql/driver"

// Generic helpers as top-level functions (methods cannot have type parameters).

// Decode runs the codec's column decoder over src and wraps the result in a
// valid adapter. A nil src yields an invalid adapter.
func Decode[T any, C Codec[T]](src any) (Immutable[T, C], error) {
	var n Immutable[T, C]
	if err := n.Scan(src); err != nil {
		return Immutable[T, C]{}, err
	}
	return n, nil
}

// Encode runs the codec's column encoder over v.
func Encode[T any, C Codec[T]](v T) (driver.Value, error) {
	var c C
	return c.EncodeColumn(v)
}

// Roundtrip encodes v and decodes the result back, verifying that the codec
// is total for the value. Useful in adapter self-tests.
func Roundtrip[T any, C Codec[T]](v T) (T, error) {
	var c C
	var zero T
	raw, err := c.EncodeColumn(v)
	if err != nil {
		return zero, err
	}
	return c.DecodeColumn(raw)
}
