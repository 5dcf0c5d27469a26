// Package marketdata implements MarketDataService: it buffers depth-N rows
// per product and flushes a complete OrderBook to its listeners on the
// Nth row.
package marketdata

import (
	"treasurydesk/internal/bus"
	"treasurydesk/internal/errors"
	"treasurydesk/internal/schema"
)

// Service buffers market-data rows per product and publishes an OrderBook
// once depth rows have accumulated.
type Service struct {
	store *bus.Store[string, schema.OrderBook]
	depth int

	bids   map[string][]schema.Order
	offers map[string][]schema.Order
}

// New creates a market-data service that flushes a book every depth rows.
func New(depth int) *Service {
	if depth <= 0 {
		depth = 5
	}
	return &Service{
		store:  bus.NewStore[string, schema.OrderBook](),
		depth:  depth,
		bids:   make(map[string][]schema.Order),
		offers: make(map[string][]schema.Order),
	}
}

// Depth returns the configured flush depth.
func (s *Service) Depth() int { return s.depth }

// AddListener registers a listener for completed order books.
func (s *Service) AddListener(l bus.Listener[schema.OrderBook]) {
	s.store.AddListener(l)
}

// GetData returns the most recently flushed book for a product.
func (s *Service) GetData(productID string) (schema.OrderBook, bool) {
	return s.store.GetData(productID)
}

// AggregateDepth returns the most recent book unchanged.
func (s *Service) AggregateDepth(productID string) (schema.OrderBook, bool) {
	return s.GetData(productID)
}

// GetBestBidOffer returns the top-of-book pair for a product.
func (s *Service) GetBestBidOffer(productID string) (schema.BestBidOffer, error) {
	book, ok := s.GetData(productID)
	if !ok || len(book.BidStack) == 0 || len(book.OfferStack) == 0 {
		return schema.BestBidOffer{}, errors.Wrap(errors.ErrMissingDepth, "product "+productID)
	}
	return schema.BestBidOffer{Bid: book.BidStack[0], Offer: book.OfferStack[0]}, nil
}

// AddRow buffers one bid/offer pair for a product; once depth rows have
// accumulated it forms an OrderBook, flushes it to the store, fans out to
// listeners, and resets the buffer.
func (s *Service) AddRow(product schema.Product, bid, offer schema.Order) error {
	key := product.ProductID
	s.bids[key] = append(s.bids[key], bid)
	s.offers[key] = append(s.offers[key], offer)

	if len(s.bids[key]) < s.depth {
		return nil
	}

	book := schema.OrderBook{
		Product:    product,
		BidStack:   s.bids[key],
		OfferStack: s.offers[key],
	}
	delete(s.bids, key)
	delete(s.offers, key)

	return s.store.Put(key, book)
}
