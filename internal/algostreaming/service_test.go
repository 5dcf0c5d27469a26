package algostreaming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanun0323/decimal"

	"treasurydesk/internal/schema"
)

func TestGenerateStreamAlternatesLadder(t *testing.T) {
	svc := New()
	product := schema.Product{ProductID: "91282CJN2", Ticker: "5Y"}
	mid, _ := decimal.NewFromString("99.5")
	spread, _ := decimal.NewFromString("0.015625") // 1/64

	require.NoError(t, svc.GenerateStream(schema.Price{Product: product, Mid: mid, BidOfferSpread: spread}))
	first, ok := svc.GetData(product.ProductID)
	require.True(t, ok)
	assert.Equal(t, int64(10_000_000), first.BidOrder.VisibleQty)
	assert.Equal(t, int64(20_000_000), first.BidOrder.HiddenQty)

	require.NoError(t, svc.GenerateStream(schema.Price{Product: product, Mid: mid, BidOfferSpread: spread}))
	second, ok := svc.GetData(product.ProductID)
	require.True(t, ok)
	assert.Equal(t, int64(20_000_000), second.BidOrder.VisibleQty)
	assert.Equal(t, int64(40_000_000), second.BidOrder.HiddenQty)

	half := spread.Div(decimal.NewFromInt(2))
	assert.True(t, first.BidOrder.Price.Equal(mid.Sub(half)))
	assert.True(t, first.OfferOrder.Price.Equal(mid.Add(half)))
}
