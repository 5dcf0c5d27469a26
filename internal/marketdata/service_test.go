package marketdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

type capturingListener struct {
	bus.BaseListener[schema.OrderBook]
	books []schema.OrderBook
}

func (l *capturingListener) ProcessAdd(b schema.OrderBook) error {
	l.books = append(l.books, b)
	return nil
}

func TestServiceFlushesOnNthRow(t *testing.T) {
	svc := New(2)
	listener := &capturingListener{}
	svc.AddListener(listener)
	conn := NewConnector(svc, nil)

	input := "2Y,99-00,0.0078125,10000000,10000000\n2Y,99-00,0.0078125,10000000,10000000\n"
	require.NoError(t, conn.Subscribe(strings.NewReader(input)))

	require.Len(t, listener.books, 1)
	book := listener.books[0]
	assert.Len(t, book.BidStack, 2)
	assert.Len(t, book.OfferStack, 2)
	assert.Equal(t, schema.SideBid, book.BidStack[0].Side)
}

func TestGetBestBidOfferMissingDepth(t *testing.T) {
	svc := New(5)
	_, err := svc.GetBestBidOffer("2Y")
	assert.Error(t, err)
}

func TestUnknownTickerSkipped(t *testing.T) {
	svc := New(1)
	listener := &capturingListener{}
	svc.AddListener(listener)
	conn := NewConnector(svc, nil)

	require.NoError(t, conn.Subscribe(strings.NewReader("9Y,99-00,0.0078125,10000000,10000000\n")))
	assert.Empty(t, listener.books)
}
