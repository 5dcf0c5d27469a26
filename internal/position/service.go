// Package position implements PositionService: a listener on Trades that
// keeps a per-book signed quantity per product and emits a delta-only
// Position to its own listeners.
package position

import (
	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

// Service owns the cumulative position per product. The cumulative value
// is available via GetData; each AddTrade call emits only the delta for
// the affected book to listeners.
type Service struct {
	store *bus.Store[string, schema.Position]
}

// New creates a position service.
func New() *Service {
	return &Service{store: bus.NewStore[string, schema.Position]()}
}

// AddListener registers a listener for position deltas.
func (s *Service) AddListener(l bus.Listener[schema.Position]) {
	s.store.AddListener(l)
}

// GetData returns the cumulative position for a product.
func (s *Service) GetData(productID string) (schema.Position, bool) {
	return s.store.GetData(productID)
}

// ProcessAdd implements bus.Listener[schema.Trade]: installed on
// TradeBookingService so every booked trade updates position.
func (s *Service) ProcessAdd(trade schema.Trade) error {
	return s.AddTrade(trade)
}

func (s *Service) ProcessRemove(schema.Trade) error { return nil }
func (s *Service) ProcessUpdate(schema.Trade) error { return nil }

// AddTrade applies the trade's signed quantity to the relevant book of
// the cumulative position, then emits a delta Position (only the
// affected book populated with the delta) to listeners.
func (s *Service) AddTrade(trade schema.Trade) error {
	key := trade.Product.ProductID

	cumulative, ok := s.store.GetData(key)
	if !ok {
		cumulative = schema.NewPosition(trade.Product)
	}

	delta := trade.Quantity
	if trade.Side == schema.Sell {
		delta = -delta
	}
	cumulative.Positions[trade.Book] += delta

	deltaPosition := schema.NewPosition(trade.Product)
	deltaPosition.Positions[trade.Book] = delta

	return s.putCumulativeAndEmit(key, cumulative, deltaPosition)
}

// putCumulativeAndEmit stores the cumulative position privately and fans
// out only the delta view, since bus.Store.Put would otherwise hand the
// cumulative value itself to listeners.
func (s *Service) putCumulativeAndEmit(key string, cumulative, delta schema.Position) error {
	s.store.Overwrite(key, cumulative)
	for _, l := range s.store.Listeners() {
		if err := l.ProcessAdd(delta); err != nil {
			return err
		}
	}
	return nil
}
