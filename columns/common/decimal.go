package common

import (
	"database/sql/driver"
	"reflect"

	"github.com/Station-Manager/errors"
	"github.com/ericlagergren/decimal"

	"github.com/SergeiKhmelevSPA/sqltypes"
	"github.com/SergeiKhmelevSPA/sqltypes/columns"
)

func init() {
	sqltypes.MustRegisterColumn(sqltypes.ColumnType{
		Name:    "decimal",
		SQLType: "numeric",
		GoType:  reflect.TypeOf(Decimal{}),
	})
}

type decimalCodec struct{}

func (decimalCodec) DecodeColumn(src any) (*decimal.Big, error) {
	const op errors.Op = "columns.common.decimalCodec.DecodeColumn"
	switch v := src.(type) {
	case float64:
		return new(decimal.Big).SetFloat64(v), nil
	case int64:
		return new(decimal.Big).SetMantScale(v, 0), nil
	default:
		s, err := columns.AsString(src)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		d, ok := new(decimal.Big).SetString(s)
		if !ok {
			return nil, errors.New(op).Errorf("Given column value %q is not a decimal", s)
		}
		return d, nil
	}
}

func (decimalCodec) EncodeColumn(v *decimal.Big) (driver.Value, error) {
	const op errors.Op = "columns.common.decimalCodec.EncodeColumn"
	if v == nil {
		return nil, errors.New(op).Msg("Given decimal is nil; use an invalid adapter for NULL")
	}
	return v.String(), nil
}

func (decimalCodec) EqualColumn(a, b *decimal.Big) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

func (decimalCodec) CloneColumn(v *decimal.Big) *decimal.Big {
	if v == nil {
		return nil
	}
	return new(decimal.Big).Copy(v)
}

// Decimal stores an arbitrary-precision decimal in a NUMERIC column. The
// backing decimal.Big is the same engine sqlboiler's decimal types use, so
// values interchange freely with generated models.
type Decimal struct {
	sqltypes.Mutable[*decimal.Big, decimalCodec]
}

// DecimalFrom returns a valid Decimal column holding d.
func DecimalFrom(d *decimal.Big) Decimal {
	return Decimal{sqltypes.NewMutable[*decimal.Big, decimalCodec](d)}
}

// ParseDecimal returns a Decimal column for a numeric literal like "12.50".
func ParseDecimal(s string) (Decimal, error) {
	const op errors.Op = "columns.common.ParseDecimal"
	d, ok := new(decimal.Big).SetString(s)
	if !ok {
		return Decimal{}, errors.New(op).Errorf("Given literal %q is not a decimal", s)
	}
	return DecimalFrom(d), nil
}

// DecimalFromFloat returns a Decimal column for a float value. Prefer
// ParseDecimal for exact literals; float conversion keeps shortest-roundtrip
// precision only.
func DecimalFromFloat(f float64) Decimal {
	return DecimalFrom(new(decimal.Big).SetFloat64(f))
}
