package postgres

import (
	"database/sql/driver"
	"maps"
	"reflect"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"

	"github.com/SergeiKhmelevSPA/sqltypes"
)

func init() {
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{
		Name:    "hstore",
		SQLType: "hstore",
		GoType:  reflect.TypeOf(HStore{}),
	})
}

type hstoreCodec struct{}

func (hstoreCodec) DecodeColumn(src any) (map[string]null.String, error) {
	const op errors.Op = "columns.postgres.hstoreCodec.DecodeColumn"
	h := boilertypes.HStore{}
	if err := h.Scan(src); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return map[string]null.String(h), nil
}

func (hstoreCodec) EncodeColumn(v map[string]null.String) (driver.Value, error) {
	const op errors.Op = "columns.postgres.hstoreCodec.EncodeColumn"
	val, err := boilertypes.HStore(v).Value()
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return val, nil
}

func (hstoreCodec) EqualColumn(a, b map[string]null.String) bool { return maps.Equal(a, b) }

func (hstoreCodec) CloneColumn(v map[string]null.String) map[string]null.String {
	if v == nil {
		return nil
	}
	return maps.Clone(v)
}

// HStore stores a string map in a PostgreSQL hstore column. Map values are
// null.Strings because hstore entries can themselves be NULL.
type HStore struct {
	sqltypes.Mutable[map[string]null.String, hstoreCodec]
}

// HStoreFrom returns a valid HStore column holding m.
func HStoreFrom(m map[string]null.String) HStore {
	return HStore{sqltypes.NewMutable[map[string]null.String, hstoreCodec](m)}
}

// HStoreFromStrings returns a valid HStore column with no NULL entries.
func HStoreFromStrings(m map[string]string) HStore {
	out := make(map[string]null.String, len(m))
	for k, v := range m {
		out[k] = null.StringFrom(v)
	}
	return HStoreFrom(out)
}
