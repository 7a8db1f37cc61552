package common

import (
	"database/sql/driver"
	"reflect"
	"strings"

	"github.com/Station-Manager/errors"
	"golang.org/x/text/currency"

	"github.com/SergeiKhmelevSPA/sqltypes"
	"github.com/SergeiKhmelevSPA/sqltypes/columns"
)

func init() {
	sqltypes.MustRegisterColumn(sqltypes.ColumnType{
		Name:    "currency",
		SQLType: "char(3)",
		GoType:  reflect.TypeOf(Currency{}),
	})
}

type currencyCodec struct{}

func (currencyCodec) DecodeColumn(src any) (currency.Unit, error) {
	const op errors.Op = "columns.common.currencyCodec.DecodeColumn"
	s, err := columns.AsString(src)
	if err != nil {
		return currency.Unit{}, errors.New(op).Err(err)
	}
	unit, err := currency.ParseISO(strings.TrimSpace(s))
	if err != nil {
		return currency.Unit{}, errors.New(op).Err(err)
	}
	return unit, nil
}

func (currencyCodec) EncodeColumn(v currency.Unit) (driver.Value, error) {
	return v.String(), nil
}

func (currencyCodec) EqualColumn(a, b currency.Unit) bool { return a == b }

// Currency stores an ISO 4217 currency unit in a CHAR(3) column.
type Currency struct {
	sqltypes.Immutable[currency.Unit, currencyCodec]
}

// CurrencyFrom returns a valid Currency column holding unit.
func CurrencyFrom(unit currency.Unit) Currency {
	return Currency{sqltypes.NewImmutable[currency.Unit, currencyCodec](unit)}
}

// ParseCurrency returns a Currency column for an ISO 4217 code like "USD".
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Currency{}, err
	}
	return CurrencyFrom(unit), nil
}
