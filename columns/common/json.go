// Package common provides portable column types that work on any
// database/sql driver.
package common

import (
	"database/sql/driver"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"

	"github.com/SergeiKhmelevSPA/sqltypes"
	"github.com/SergeiKhmelevSPA/sqltypes/columns"
	"github.com/SergeiKhmelevSPA/sqltypes/mapper"
)

func init() {
	sqltypes.MustRegisterColumn(sqltypes.ColumnType{Name: "json", SQLType: "json"})
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{Name: "json", SQLType: "jsonb"})
}

type jsonCodec[T any] struct{}

func (jsonCodec[T]) DecodeColumn(src any) (T, error) {
	const op errors.Op = "columns.common.jsonCodec.DecodeColumn"
	var out T
	raw, err := jsonBytes(src)
	if err != nil {
		return out, errors.New(op).Err(err)
	}
	if err := mapper.Default().Unmarshal(raw, &out); err != nil {
		return out, errors.New(op).Err(err)
	}
	return out, nil
}

func (jsonCodec[T]) EncodeColumn(v T) (driver.Value, error) {
	const op errors.Op = "columns.common.jsonCodec.EncodeColumn"
	data, err := mapper.Default().Marshal(v)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return data, nil
}

// jsonBytes extracts the raw document from the shapes a JSON column shows up
// as: driver bytes or strings, plus the null/sqlboiler wrappers generated
// models use.
func jsonBytes(src any) ([]byte, error) {
	const op errors.Op = "columns.common.jsonBytes"
	switch v := src.(type) {
	case null.JSON:
		if !v.Valid || len(v.JSON) == 0 {
			return nil, errors.New(op).Msg("Given null.JSON holds no document")
		}
		return v.JSON, nil
	case boilertypes.JSON:
		if len(v) == 0 {
			return nil, errors.New(op).Msg("Given types.JSON holds no document")
		}
		return []byte(v), nil
	default:
		return columns.AsBytes(src)
	}
}

// JSON stores any Go value as a JSON document in a single column. The
// document is decoded and encoded through the configured mapper, so a custom
// mapper changes how every JSON column in the process is serialized.
//
// JSON is a mutable adapter: documents are routinely modified in place, so
// DeepCopy detaches them with a mapper round trip.
type JSON[T any] struct {
	sqltypes.Mutable[T, jsonCodec[T]]
}

// JSONFrom returns a valid JSON column holding v.
func JSONFrom[T any](v T) JSON[T] {
	return JSON[T]{sqltypes.NewMutable[T, jsonCodec[T]](v)}
}

// JSONFromPtr returns a JSON column that is NULL when p is nil.
func JSONFromPtr[T any](p *T) JSON[T] {
	return JSON[T]{sqltypes.MutableFromPtr[T, jsonCodec[T]](p)}
}

// NullJSON converts the column into its null.JSON wire form for code paths
// built around generated models.
func (j JSON[T]) NullJSON() (null.JSON, error) {
	if !j.Valid {
		return null.JSON{}, nil
	}
	data, err := mapper.Default().Marshal(j.V)
	if err != nil {
		return null.JSON{}, err
	}
	return null.JSONFrom(data), nil
}
