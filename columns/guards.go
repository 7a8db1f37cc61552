// Package columns holds the driver-value coercion guards shared by the
// concrete column codecs in the common and postgres subpackages.
//
// Drivers disagree on the raw Go type a column arrives as: the same text
// column may scan as string or []byte, a numeric as int64, float64, []byte
// or string. Each guard accepts the shapes drivers actually produce and
// returns an op-tagged error for anything else.
package columns

import (
	"strconv"
	"time"

	"github.com/Station-Manager/errors"
)

// AsString coerces a driver value to a string.
func AsString(src any) (string, error) {
	const op errors.Op = "columns.AsString"
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", errors.New(op).Errorf("Given column value not a string, got %T", src)
	}
}

// AsBytes coerces a driver value to a byte slice.
func AsBytes(src any) ([]byte, error) {
	const op errors.Op = "columns.AsBytes"
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(op).Errorf("Given column value not bytes, got %T", src)
	}
}

// AsInt64 coerces a driver value to an int64.
func AsInt64(src any) (int64, error) {
	const op errors.Op = "columns.AsInt64"
	switch v := src.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0, errors.New(op).Err(err)
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errors.New(op).Err(err)
		}
		return n, nil
	default:
		return 0, errors.New(op).Errorf("Given column value not an int64, got %T", src)
	}
}

// AsFloat64 coerces a driver value to a float64.
func AsFloat64(src any) (float64, error) {
	const op errors.Op = "columns.AsFloat64"
	switch v := src.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, errors.New(op).Err(err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, errors.New(op).Err(err)
		}
		return f, nil
	default:
		return 0, errors.New(op).Errorf("Given column value not a float64, got %T", src)
	}
}

// AsBool coerces a driver value to a bool.
func AsBool(src any) (bool, error) {
	const op errors.Op = "columns.AsBool"
	switch v := src.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case []byte:
		b, err := strconv.ParseBool(string(v))
		if err != nil {
			return false, errors.New(op).Err(err)
		}
		return b, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, errors.New(op).Err(err)
		}
		return b, nil
	default:
		return false, errors.New(op).Errorf("Given column value not a bool, got %T", src)
	}
}

// AsTime coerces a driver value to a time.Time, parsing text columns in the
// layouts drivers commonly emit.
func AsTime(src any) (time.Time, error) {
	const op errors.Op = "columns.AsTime"
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case []byte:
		return parseTime(op, string(v))
	case string:
		return parseTime(op, v)
	default:
		return time.Time{}, errors.New(op).Errorf("Given column value not a time, got %T", src)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseTime(op errors.Op, s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(op).Msg(ErrMsgBadTimestamp)
}
