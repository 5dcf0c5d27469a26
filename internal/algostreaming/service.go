// Package algostreaming implements AlgoStreamingService: a listener on
// Price that produces a two-sided PriceStream with an alternating
// visible/hidden size ladder.
package algostreaming

import (
	"github.com/yanun0323/decimal"

	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

const (
	visibleQtySmall int64 = 10_000_000
	visibleQtyLarge int64 = 20_000_000
)

var two = decimal.NewFromInt(2)

// Service produces a PriceStream per Price event, alternating visible
// quantity between 10,000,000 and 20,000,000 on each call (parity
// toggle), with hiddenQty always twice visibleQty.
type Service struct {
	store *bus.Store[string, schema.PriceStream]
	count int
}

// New creates an algo-streaming service.
func New() *Service {
	return &Service{store: bus.NewStore[string, schema.PriceStream]()}
}

// AddListener registers a listener for produced streams.
func (s *Service) AddListener(l bus.Listener[schema.PriceStream]) {
	s.store.AddListener(l)
}

// GetData returns the most recent stream for a product.
func (s *Service) GetData(productID string) (schema.PriceStream, bool) {
	return s.store.GetData(productID)
}

// ProcessAdd implements bus.Listener[schema.Price]: installed on
// PricingService so every price produces a stream.
func (s *Service) ProcessAdd(price schema.Price) error {
	return s.GenerateStream(price)
}

func (s *Service) ProcessRemove(schema.Price) error { return nil }
func (s *Service) ProcessUpdate(schema.Price) error { return nil }

// GenerateStream builds and publishes a PriceStream: bid = mid -
// spread/2, offer = mid + spread/2, visibleQty alternates per call,
// hiddenQty = 2*visibleQty.
func (s *Service) GenerateStream(price schema.Price) error {
	half := price.BidOfferSpread.Div(two)
	visible := visibleQtySmall
	if s.count%2 == 1 {
		visible = visibleQtyLarge
	}
	s.count++
	hidden := visible * 2

	stream := schema.PriceStream{
		Product: price.Product,
		BidOrder: schema.PriceStreamOrder{
			Price: price.Mid.Sub(half), VisibleQty: visible, HiddenQty: hidden, Side: schema.SideBid,
		},
		OfferOrder: schema.PriceStreamOrder{
			Price: price.Mid.Add(half), VisibleQty: visible, HiddenQty: hidden, Side: schema.SideOffer,
		},
	}
	return s.store.Put(price.Product.ProductID, stream)
}
