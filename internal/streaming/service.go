// Package streaming implements StreamingService: it re-publishes
// AlgoStreamingService's output to its own listeners (in the application
// wiring, the historical sink).
package streaming

import (
	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

// Service stores the most recent stream per product and fans it out.
type Service struct {
	store *bus.Store[string, schema.PriceStream]
}

// New creates a streaming service.
func New() *Service {
	return &Service{store: bus.NewStore[string, schema.PriceStream]()}
}

// AddListener registers a listener for re-published streams.
func (s *Service) AddListener(l bus.Listener[schema.PriceStream]) {
	s.store.AddListener(l)
}

// GetData returns the most recent stream for a product.
func (s *Service) GetData(productID string) (schema.PriceStream, bool) {
	return s.store.GetData(productID)
}

// ProcessAdd implements bus.Listener[schema.PriceStream]: installed on
// AlgoStreamingService so every stream re-publishes downstream.
func (s *Service) ProcessAdd(stream schema.PriceStream) error {
	return s.store.Put(stream.Product.ProductID, stream)
}

func (s *Service) ProcessRemove(schema.PriceStream) error { return nil }
func (s *Service) ProcessUpdate(schema.PriceStream) error { return nil }
