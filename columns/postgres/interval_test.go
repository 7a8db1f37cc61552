package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval_ScanValue(t *testing.T) {
	var col Interval
	require.NoError(t, col.Scan("01:30:00"))
	assert.Equal(t, 90*time.Minute, col.V)

	raw, err := col.Value()
	require.NoError(t, err)
	assert.Equal(t, "1:30:00", raw)
}

func TestInterval_ScanDays(t *testing.T) {
	var col Interval
	require.NoError(t, col.Scan("2 days 03:00:00"))
	assert.Equal(t, 51*time.Hour, col.V)

	require.NoError(t, col.Scan("1 day"))
	assert.Equal(t, 24*time.Hour, col.V)
}

func TestInterval_ScanFractionalSeconds(t *testing.T) {
	var col Interval
	require.NoError(t, col.Scan("00:00:01.5"))
	assert.Equal(t, 1500*time.Millisecond, col.V)
}

func TestInterval_ScanNegative(t *testing.T) {
	var col Interval
	require.NoError(t, col.Scan("-00:05:00"))
	assert.Equal(t, -5*time.Minute, col.V)

	raw, err := col.Value()
	require.NoError(t, err)
	assert.Equal(t, "-0:05:00", raw)
}

func TestInterval_ScanInvalid(t *testing.T) {
	var col Interval
	assert.Error(t, col.Scan("3 mons"))
	assert.Error(t, col.Scan("soon"))
	assert.Error(t, col.Scan("5"))
}

func TestInterval_RoundTrip(t *testing.T) {
	for _, d := range []time.Duration{
		0,
		time.Second,
		90 * time.Minute,
		25*time.Hour + 61*time.Second,
		1500 * time.Microsecond,
		-3 * time.Hour,
	} {
		col := IntervalFrom(d)
		raw, err := col.Value()
		require.NoError(t, err)

		var back Interval
		require.NoError(t, back.Scan(raw))
		assert.Equal(t, d, back.V, "duration %s", d)
	}
}

func TestInterval_Null(t *testing.T) {
	col := IntervalFrom(time.Minute)
	require.NoError(t, col.Scan(nil))
	assert.False(t, col.Valid)
}
