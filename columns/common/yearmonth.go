package common

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/Station-Manager/errors"

	"github.com/SergeiKhmelevSPA/sqltypes"
	"github.com/SergeiKhmelevSPA/sqltypes/columns"
)

func init() {
	sqltypes.MustRegisterColumn(sqltypes.ColumnType{
		Name:    "yearmonth",
		SQLType: "char(7)",
		GoType:  reflect.TypeOf(YearMonth{}),
	})
}

type yearMonthCodec struct{}

func (yearMonthCodec) DecodeColumn(src any) (time.Time, error) {
	const op errors.Op = "columns.common.yearMonthCodec.DecodeColumn"
	if t, ok := src.(time.Time); ok {
		return firstOfMonth(t.Year(), t.Month()), nil
	}
	s, err := columns.AsString(src)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err)
	}
	yearPart, monthPart, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return time.Time{}, errors.New(op).Msg(columns.ErrMsgBadYearMonth)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err).Msg(columns.ErrMsgBadYearMonth)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil {
		return time.Time{}, errors.New(op).Err(err).Msg(columns.ErrMsgBadYearMonth)
	}
	if month < 1 || month > 12 {
		return time.Time{}, errors.New(op).Msg(columns.ErrMsgBadYearMonth)
	}
	return firstOfMonth(year, time.Month(month)), nil
}

func (yearMonthCodec) EncodeColumn(v time.Time) (driver.Value, error) {
	return fmt.Sprintf("%04d-%02d", v.Year(), int(v.Month())), nil
}

func (yearMonthCodec) EqualColumn(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func firstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// YearMonth stores a calendar year and month as a CHAR(7) "YYYY-MM" column.
// The contained time is normalized to midnight UTC on the first of the month;
// day and clock parts never reach the database.
type YearMonth struct {
	sqltypes.Immutable[time.Time, yearMonthCodec]
}

// YearMonthOf returns a valid YearMonth column for the given year and month.
func YearMonthOf(year int, month time.Month) YearMonth {
	return YearMonth{sqltypes.NewImmutable[time.Time, yearMonthCodec](firstOfMonth(year, month))}
}

// YearMonthFrom returns a valid YearMonth column for t's year and month.
func YearMonthFrom(t time.Time) YearMonth {
	return YearMonthOf(t.Year(), t.Month())
}
