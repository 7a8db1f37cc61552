// Package postgres provides column types for PostgreSQL-specific column
// kinds: arrays, hstore, inet, interval, ranges and bit strings.
package postgres

import (
	"database/sql/driver"

	"github.com/Station-Manager/errors"
	"github.com/lib/pq"

	"github.com/SergeiKhmelevSPA/sqltypes"
)

func init() {
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{Name: "text_array", SQLType: "text[]"})
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{Name: "int8_array", SQLType: "bigint[]"})
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{Name: "float8_array", SQLType: "double precision[]"})
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{Name: "bool_array", SQLType: "boolean[]"})
}

type arrayCodec[T any] struct{}

func (arrayCodec[T]) DecodeColumn(src any) ([]T, error) {
	const op errors.Op = "columns.postgres.arrayCodec.DecodeColumn"
	var out []T
	if err := pq.Array(&out).Scan(src); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return out, nil
}

func (arrayCodec[T]) EncodeColumn(v []T) (driver.Value, error) {
	const op errors.Op = "columns.postgres.arrayCodec.EncodeColumn"
	val, err := pq.Array(v).Value()
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return val, nil
}

func (arrayCodec[T]) CloneColumn(v []T) []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// Array stores a Go slice in a PostgreSQL array column via lib/pq's array
// machinery. A valid adapter holding an empty non-nil slice writes the empty
// array literal, which is distinct from NULL.
type Array[T any] struct {
	sqltypes.Mutable[[]T, arrayCodec[T]]
}

// Element types lib/pq converts natively. Other element types go through
// pq.GenericArray and must be driver-compatible themselves.
type (
	TextArray    = Array[string]
	Int64Array   = Array[int64]
	Float64Array = Array[float64]
	BoolArray    = Array[bool]
)

// ArrayFrom returns a valid Array column holding v.
func ArrayFrom[T any](v []T) Array[T] {
	return Array[T]{sqltypes.NewMutable[[]T, arrayCodec[T]](v)}
}
