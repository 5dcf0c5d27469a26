// Package tradebooking implements TradeBookingService: it books trades
// from an external source and, separately, echoes ExecutionService output
// into trades assigned round-robin across the three books.
package tradebooking

import (
	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

// Service books trades by trade ID and fans them out to listeners
// (in the application wiring, PositionService and a trade counter).
type Service struct {
	store     *bus.Store[string, schema.Trade]
	bookIndex int
}

// New creates a trade-booking service.
func New() *Service {
	return &Service{store: bus.NewStore[string, schema.Trade]()}
}

// AddListener registers a listener for booked trades.
func (s *Service) AddListener(l bus.Listener[schema.Trade]) {
	s.store.AddListener(l)
}

// GetData returns a booked trade by ID.
func (s *Service) GetData(tradeID string) (schema.Trade, bool) {
	return s.store.GetData(tradeID)
}

// BookTrade stores an externally-sourced trade and fans it out.
func (s *Service) BookTrade(trade schema.Trade) error {
	return s.store.Put(trade.TradeID, trade)
}

// ProcessAdd implements bus.Listener[schema.ExecutionOrder]: installed on
// ExecutionService so every execution echoes into a trade. Side is BUY
// when the order crossed at the bid, SELL otherwise; quantity is
// 2*VisibleQty, matching the source's documented visibleQty+visibleQty
// arithmetic rather than visibleQty+hiddenQty (see the design notes on
// this mesh's trade-booking echo path). The book is assigned round-robin
// through TRSY1, TRSY2, TRSY3, keyed by a counter private to this
// listener instance.
func (s *Service) ProcessAdd(order schema.ExecutionOrder) error {
	side := schema.Sell
	if order.Side == schema.SideBid {
		side = schema.Buy
	}

	book := schema.Books[s.bookIndex%len(schema.Books)]
	s.bookIndex++

	trade := schema.Trade{
		Product:  order.Product,
		TradeID:  order.OrderID,
		Price:    order.Price,
		Book:     book,
		Quantity: order.VisibleQty * 2,
		Side:     side,
	}
	return s.store.Put(trade.TradeID, trade)
}

func (s *Service) ProcessRemove(schema.ExecutionOrder) error { return nil }
func (s *Service) ProcessUpdate(schema.ExecutionOrder) error { return nil }
