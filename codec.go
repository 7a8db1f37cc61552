package sqltypes

import "database/sql/driver"

// Codec converts between a domain value and its single-column database
// representation. Implementations must be usable as their zero value: the
// adapter bases instantiate the codec type parameter directly, so a codec
// must not require construction-time state.
type Codec[T any] interface {
	// DecodeColumn converts a raw value read from a column into T.
	// The source is whatever the driver produced: typically []byte, string,
	// int64, float64, bool or time.Time. DecodeColumn is never called with
	// a nil source; NULL columns are handled by the adapter itself.
	DecodeColumn(src any) (T, error)

	// EncodeColumn converts T into a driver-supported value for writing.
	EncodeColumn(v T) (driver.Value, error)
}

// Equaler is an optional codec refinement. When a codec implements it, the
// adapter's Equal uses EqualColumn instead of the reflect.DeepEqual fallback.
type Equaler[T any] interface {
	EqualColumn(a, b T) bool
}

// Cloner is an optional codec refinement. When a codec implements it,
// Mutable.DeepCopy uses CloneColumn instead of a mapper round trip.
type Cloner[T any] interface {
	CloneColumn(v T) T
}
