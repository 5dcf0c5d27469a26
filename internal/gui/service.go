// Package gui implements GUIService: a throttled sink on Price that emits
// at most one line per throttle window, up to a fixed total.
package gui

import (
	"time"

	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

// Service stores the most recently received Price per product, whether or
// not it was emitted, and gates emission through a connector on a throttle
// window and an update cap.
type Service struct {
	store      *bus.Store[string, schema.Price]
	connector  *Connector
	throttle   time.Duration
	maxUpdates int
	lastUpdate time.Time
	count      int
	now        func() time.Time
}

// New creates a gui service with the given throttle window and update cap.
func New(throttle time.Duration, maxUpdates int) *Service {
	return &Service{
		store:      bus.NewStore[string, schema.Price](),
		throttle:   throttle,
		maxUpdates: maxUpdates,
		lastUpdate: time.Now(),
		now:        time.Now,
	}
}

func (s *Service) setConnector(c *Connector) { s.connector = c }

// GetData returns the most recently received price for a product.
func (s *Service) GetData(productID string) (schema.Price, bool) {
	return s.store.GetData(productID)
}

// ProcessAdd implements bus.Listener[schema.Price]: installed on
// PricingService so every price flows through the throttle gate.
func (s *Service) ProcessAdd(price schema.Price) error {
	return s.OnMessage(price)
}

func (s *Service) ProcessRemove(schema.Price) error { return nil }
func (s *Service) ProcessUpdate(schema.Price) error { return nil }

// OnMessage records the price and asks the connector to publish it; the
// connector is what actually enforces the throttle and the cap.
func (s *Service) OnMessage(price schema.Price) error {
	if err := s.store.Put(price.Product.ProductID, price); err != nil {
		return err
	}
	if s.connector == nil {
		return nil
	}
	return s.connector.Publish(price)
}
