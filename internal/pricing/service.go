// Package pricing implements PricingService: it ingests mid/spread rows
// and fans out Price.
package pricing

import (
	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

// Service stores the most recent Price per product and fans it out.
type Service struct {
	store *bus.Store[string, schema.Price]
}

// New creates a pricing service.
func New() *Service {
	return &Service{store: bus.NewStore[string, schema.Price]()}
}

// AddListener registers a listener for new prices.
func (s *Service) AddListener(l bus.Listener[schema.Price]) {
	s.store.AddListener(l)
}

// GetData returns the most recent price for a product.
func (s *Service) GetData(productID string) (schema.Price, bool) {
	return s.store.GetData(productID)
}

// OnMessage stores and fans out a new Price.
func (s *Service) OnMessage(price schema.Price) error {
	return s.store.Put(price.Product.ProductID, price)
}
