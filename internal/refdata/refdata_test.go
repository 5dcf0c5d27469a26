package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanun0323/decimal"
)

func TestLookupKnownTicker(t *testing.T) {
	p, ok := Lookup("2Y")
	require.True(t, ok)
	assert.Equal(t, "91282CJL6", p.ProductID)
	assert.Equal(t, "2Y", p.Ticker)
	assert.Equal(t, 4.875, p.Coupon)
}

func TestLookupUnknownTicker(t *testing.T) {
	_, ok := Lookup("9Y")
	assert.False(t, ok)
}

func TestPV01(t *testing.T) {
	d, ok := PV01("30Y")
	require.True(t, ok)
	want, err := decimal.NewFromString("0.1890362")
	require.NoError(t, err)
	assert.True(t, d.Equal(want))
}

func TestTickersOrder(t *testing.T) {
	assert.Equal(t, []string{"2Y", "3Y", "5Y", "7Y", "10Y", "20Y", "30Y"}, Tickers())
}
