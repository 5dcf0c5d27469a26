package gui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanun0323/decimal"

	"treasurydesk/internal/schema"
)

func TestPublishThrottlesUpdates(t *testing.T) {
	svc := New(100*time.Millisecond, 10)
	clock := time.Now().Add(-time.Second)
	svc.now = func() time.Time { return clock }
	svc.lastUpdate = clock.Add(-time.Hour)

	var buf bytes.Buffer
	NewConnector(svc, &buf, nil)

	product := schema.Product{ProductID: "91282CJN2", Ticker: "5Y"}
	mid, _ := decimal.NewFromString("99.5")
	price := schema.Price{Product: product, Mid: mid, BidOfferSpread: decimal.NewFromInt(1)}

	require.NoError(t, svc.OnMessage(price))
	require.Greater(t, buf.Len(), 0)

	// Second call within the throttle window is dropped.
	firstLen := buf.Len()
	require.NoError(t, svc.OnMessage(price))
	assert.Equal(t, firstLen, buf.Len())

	// Advance past the throttle window: next call emits again.
	clock = clock.Add(200 * time.Millisecond)
	require.NoError(t, svc.OnMessage(price))
	assert.Greater(t, buf.Len(), firstLen)
}

func TestPublishStopsAtMaxUpdates(t *testing.T) {
	svc := New(0, 1)
	clock := time.Now()
	svc.now = func() time.Time { return clock }
	svc.lastUpdate = clock.Add(-time.Hour)

	var buf bytes.Buffer
	NewConnector(svc, &buf, nil)

	product := schema.Product{ProductID: "91282CJN2", Ticker: "5Y"}
	mid, _ := decimal.NewFromString("99.5")
	price := schema.Price{Product: product, Mid: mid, BidOfferSpread: decimal.NewFromInt(1)}

	require.NoError(t, svc.OnMessage(price))
	firstLen := buf.Len()
	require.Greater(t, firstLen, 0)

	clock = clock.Add(time.Hour)
	require.NoError(t, svc.OnMessage(price))
	assert.Equal(t, firstLen, buf.Len())
}
