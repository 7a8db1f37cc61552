package postgres

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
	sqltypes.MustRegisterColumnFor("postgres", sqltypes.ColumnType{
		Name:    "interval",
		SQLType: "interval",
		GoType:  reflect.TypeOf(Interval{}),
	})
}

type intervalCodec struct{}

func (intervalCodec) DecodeColumn(src any) (time.Duration, error) {
	const op errors.Op = "columns.postgres.intervalCodec.DecodeColumn"
	s, err := columns.AsString(src)
	if err != nil {
		return 0, errors.New(op).Err(err)
	}
	d, err := parseInterval(s)
	if err != nil {
		return 0, errors.New(op).Err(err).Msg(columns.ErrMsgBadInterval)
	}
	return d, nil
}

func (intervalCodec) EncodeColumn(v time.Duration) (driver.Value, error) {
	return formatInterval(v), nil
}

func (intervalCodec) EqualColumn(a, b time.Duration) bool { return a == b }

// formatInterval renders a duration in the H:MM:SS[.ffffff] form the server
// both accepts and emits under the default IntervalStyle.
func formatInterval(d time.Duration) string {
	neg := d < 0
	if neg {
		d = -d
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	micros := (d - s*time.Second) / time.Microsecond
	out := fmt.Sprintf("%d:%02d:%02d", h, m, s)
	if micros > 0 {
		out += strings.TrimRight(fmt.Sprintf(".%06d", micros), "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// parseInterval reads the postgres output form: an optional "N days" part
// followed by an optional [-]H:MM:SS[.ffffff] clock part. Sub-day units only;
// month and year components have no fixed duration and are rejected.
func parseInterval(s string) (time.Duration, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty interval")
	}
	var total time.Duration
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if strings.Contains(f, ":") {
			clock, err := parseClock(f)
			if err != nil {
				return 0, err
			}
			total += clock
			continue
		}
		if i+1 >= len(fields) {
			return 0, fmt.Errorf("dangling interval field %q", f)
		}
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return 0, err
		}
		unit := strings.TrimSuffix(fields[i+1], "s")
		i++
		switch unit {
		case "day":
			total += time.Duration(n) * 24 * time.Hour
		case "hour":
			total += time.Duration(n) * time.Hour
		case "min", "minute":
			total += time.Duration(n) * time.Minute
		case "sec", "second":
			total += time.Duration(n) * time.Second
		default:
			return 0, fmt.Errorf("unsupported interval unit %q", unit)
		}
	}
	return total, nil
}

func parseClock(s string) (time.Duration, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected H:MM:SS, got %q", s)
	}
	h, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, err
	}
	m, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, err
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, err
	}
	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec*float64(time.Second))
	if neg {
		d = -d
	}
	return d, nil
}

// Interval stores a time.Duration in a PostgreSQL interval column. Only
// fixed-length units round-trip; intervals containing month or year
// components fail to decode rather than guessing a length.
type Interval struct {
	sqltypes.Immutable[time.Duration, intervalCodec]
}

// IntervalFrom returns a valid Interval column holding d.
func IntervalFrom(d time.Duration) Interval {
	return Interval{sqltypes.NewImmutable[time.Duration, intervalCodec](d)}
}
