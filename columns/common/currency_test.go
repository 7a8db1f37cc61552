package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/SergeiKhmelevSPA/sqltypes"
)

func TestCurrency_ScanValue(t *testing.T) {
	var col Currency
	require.NoError(t, col.Scan("USD"))
	assert.True(t, col.Valid)
	assert.Equal(t, currency.USD, col.V)

	raw, err := col.Value()
	require.NoError(t, err)
	assert.Equal(t, "USD", raw)
}

func TestCurrency_ScanTrimsCharPadding(t *testing.T) {
	var col Currency
	require.NoError(t, col.Scan([]byte("EUR ")))
	assert.Equal(t, currency.EUR, col.V)
}

func TestCurrency_ScanInvalid(t *testing.T) {
	var col Currency
	assert.Error(t, col.Scan("NOPE"))
	assert.Error(t, col.Scan(42))
}

func TestCurrency_Null(t *testing.T) {
	col := CurrencyFrom(currency.JPY)
	require.NoError(t, col.Scan(nil))
	assert.False(t, col.Valid)

	raw, err := col.Value()
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestParseCurrency(t *testing.T) {
	col, err := ParseCurrency("GBP")
	require.NoError(t, err)
	assert.Equal(t, "GBP", col.String())

	_, err = ParseCurrency("??")
	assert.Error(t, err)
}

func TestCurrency_Equal(t *testing.T) {
	a := CurrencyFrom(currency.USD)
	b := CurrencyFrom(currency.USD)
	c := CurrencyFrom(currency.EUR)

	assert.True(t, a.Equal(b.Immutable))
	assert.False(t, a.Equal(c.Immutable))
}

func TestCurrency_Registration(t *testing.T) {
	ct, ok := sqltypes.LookupColumn("currency")
	require.True(t, ok)
	assert.Equal(t, "char(3)", ct.SQLType)
}
