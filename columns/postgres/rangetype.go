package postgres

import (
	"database/sql/driver"
	"strconv"
	"strings"
	"time"

	"github.com/Station-Manager/errors"

	"github.com/SergeiKhmelevSPA/sqltypes"
	"github.com/SergeiKhmelevSPA/sqltypes/columns"
)

func init() {
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{Name: "int8range", SQLType: "int8range"})
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{Name: "daterange", SQLType: "daterange"})
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{Name: "tsrange", SQLType: "tsrange"})
}

// Range is the domain value held by range columns. A missing bound
// (HasLower/HasUpper false) means the range is unbounded on that side.
type Range[T any] struct {
	Lower, Upper       T
	HasLower, HasUpper bool
	LowerInc, UpperInc bool
	Empty              bool
}

// ClosedOpen builds the canonical [lo,hi) range.
func ClosedOpen[T any](lo, hi T) Range[T] {
	return Range[T]{Lower: lo, Upper: hi, HasLower: true, HasUpper: true, LowerInc: true}
}

// RangeElem parses and formats the bound values of one range kind.
// Implementations must be usable as their zero value, like codecs.
type RangeElem[T any] interface {
	ParseBound(s string) (T, error)
	FormatBound(v T) string
}

type rangeCodec[T any, E RangeElem[T]] struct{}

func (rangeCodec[T, E]) DecodeColumn(src any) (Range[T], error) {
	const op errors.Op = "columns.postgres.rangeCodec.DecodeColumn"
	s, err := columns.AsString(src)
	if err != nil {
		return Range[T]{}, errors.New(op).Err(err)
	}
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "empty") {
		return Range[T]{Empty: true}, nil
	}
	if len(s) < 3 {
		return Range[T]{}, errors.New(op).Msg(columns.ErrMsgBadRange)
	}
	var r Range[T]
	switch s[0] {
	case '[':
		r.LowerInc = true
	case '(':
	default:
		return Range[T]{}, errors.New(op).Msg(columns.ErrMsgBadRange)
	}
	switch s[len(s)-1] {
	case ']':
		r.UpperInc = true
	case ')':
	default:
		return Range[T]{}, errors.New(op).Msg(columns.ErrMsgBadRange)
	}
	lowerRaw, upperRaw, ok := splitBounds(s[1 : len(s)-1])
	if !ok {
		return Range[T]{}, errors.New(op).Msg(columns.ErrMsgBadRange)
	}
	var e E
	if lowerRaw != "" {
		r.Lower, err = e.ParseBound(unquoteBound(lowerRaw))
		if err != nil {
			return Range[T]{}, errors.New(op).Err(err)
		}
		r.HasLower = true
	}
	if upperRaw != "" {
		r.Upper, err = e.ParseBound(unquoteBound(upperRaw))
		if err != nil {
			return Range[T]{}, errors.New(op).Err(err)
		}
		r.HasUpper = true
	}
	return r, nil
}

func (rangeCodec[T, E]) EncodeColumn(v Range[T]) (driver.Value, error) {
	if v.Empty {
		return "empty", nil
	}
	var e E
	var b strings.Builder
	if v.LowerInc {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if v.HasLower {
		b.WriteString(quoteBound(e.FormatBound(v.Lower)))
	}
	b.WriteByte(',')
	if v.HasUpper {
		b.WriteString(quoteBound(e.FormatBound(v.Upper)))
	}
	if v.UpperInc {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String(), nil
}

func (c rangeCodec[T, E]) EqualColumn(a, b Range[T]) bool {
	av, errA := c.EncodeColumn(a)
	bv, errB := c.EncodeColumn(b)
	if errA != nil || errB != nil {
		return false
	}
	return av == bv
}

// splitBounds cuts the bound list at the top-level comma, respecting quoted
// bounds (timestamps contain a space, never a comma, but the server quotes
// them anyway).
func splitBounds(s string) (lower, upper string, ok bool) {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				return s[:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}

func unquoteBound(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	}
	return s
}

func quoteBound(s string) string {
	if s == "" || strings.ContainsAny(s, `",[]() `) {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// Bound element kinds.

// Int8Elem handles int8range bounds.
type Int8Elem struct{}

func (Int8Elem) ParseBound(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
func (Int8Elem) FormatBound(v int64) string         { return strconv.FormatInt(v, 10) }

const (
	dateBoundLayout = "2006-01-02"
	tsBoundLayout   = "2006-01-02 15:04:05.999999"
)

// DateElem handles daterange bounds.
type DateElem struct{}

func (DateElem) ParseBound(s string) (time.Time, error) {
	return time.Parse(dateBoundLayout, s)
}
func (DateElem) FormatBound(v time.Time) string { return v.Format(dateBoundLayout) }

// TsElem handles tsrange bounds (timestamp without time zone).
type TsElem struct{}

func (TsElem) ParseBound(s string) (time.Time, error) {
	return time.Parse(tsBoundLayout, s)
}
func (TsElem) FormatBound(v time.Time) string { return v.UTC().Format(tsBoundLayout) }

// RangeColumn stores a Range in a PostgreSQL range column, with the element
// kind chosen by the E type parameter.
type RangeColumn[T any, E RangeElem[T]] struct {
	sqltypes.Immutable[Range[T], rangeCodec[T, E]]
}

// The built-in range kinds.
type (
	Int8Range = RangeColumn[int64, Int8Elem]
	DateRange = RangeColumn[time.Time, DateElem]
	TsRange   = RangeColumn[time.Time, TsElem]
)

// RangeFrom returns a valid range column holding r.
func RangeFrom[T any, E RangeElem[T]](r Range[T]) RangeColumn[T, E] {
	return RangeColumn[T, E]{sqltypes.NewImmutable[Range[T], rangeCodec[T, E]](r)}
}
