// Package algoexecution implements AlgoExecutionService: a listener on
// OrderBook updates that crosses a tight spread with an alternating-side
// MARKET order.
package algoexecution

import (
	"math/rand"

	"github.com/yanun0323/decimal"

	"treasurydesk/internal/bus"
	"treasurydesk/internal/errors"
	"treasurydesk/internal/schema"
)

// tightSpread is the crossing threshold: 1/128 of a dollar.
var tightSpread = decimal.NewFromInt(1).Div(decimal.NewFromInt(128))

// Service crosses a tight top-of-book spread with one MARKET order,
// alternating sides per crossing event (not per product).
type Service struct {
	store   *bus.Store[string, schema.ExecutionOrder]
	count   int
	seenIDs map[string]struct{}
	rng     *rand.Rand
}

// New creates an algo-execution service.
func New() *Service {
	return &Service{
		store:   bus.NewStore[string, schema.ExecutionOrder](),
		seenIDs: make(map[string]struct{}),
		rng:     rand.New(rand.NewSource(1)),
	}
}

// AddListener registers a listener for emitted ExecutionOrders.
func (s *Service) AddListener(l bus.Listener[schema.ExecutionOrder]) {
	s.store.AddListener(l)
}

// GetData returns the last algo execution produced for a product.
func (s *Service) GetData(productID string) (schema.ExecutionOrder, bool) {
	return s.store.GetData(productID)
}

// ProcessAdd implements bus.Listener[schema.OrderBook]: it is installed on
// MarketDataService so every flushed OrderBook drives AlgoExecuteOrder.
func (s *Service) ProcessAdd(book schema.OrderBook) error {
	return s.AlgoExecuteOrder(book)
}

func (s *Service) ProcessRemove(schema.OrderBook) error { return nil }
func (s *Service) ProcessUpdate(schema.OrderBook) error { return nil }

// AlgoExecuteOrder crosses the spread if it's tight, alternating sides per
// crossing (BID first); a wide-spread call does not advance the alternation. It is a no-op, not an error, when the spread is wide;
// it is an error when either stack is empty.
func (s *Service) AlgoExecuteOrder(book schema.OrderBook) error {
	if len(book.BidStack) == 0 || len(book.OfferStack) == 0 {
		return errors.Wrap(errors.ErrMissingDepth, "algoexecution: product "+book.Product.ProductID)
	}

	bid := book.BidStack[0]
	offer := book.OfferStack[0]

	if offer.Price.Sub(bid.Price).GreaterThan(tightSpread) {
		return nil
	}

	var (
		side     schema.Side
		price    decimal.Decimal
		quantity int64
	)
	if s.count%2 == 0 {
		side, price, quantity = schema.SideBid, bid.Price, bid.Quantity
	} else {
		side, price, quantity = schema.SideOffer, offer.Price, offer.Quantity
	}
	s.count++

	order := schema.ExecutionOrder{
		Product:      book.Product,
		Side:         side,
		OrderID:      s.nextOrderID(),
		OrderType:    schema.OrderTypeMarket,
		Price:        price,
		VisibleQty:   quantity,
		HiddenQty:    0,
		IsChildOrder: false,
	}

	return s.store.Put(book.Product.ProductID, order)
}

const orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const orderIDLength = 8

// nextOrderID draws an 8-character uppercase-ASCII string, retrying on
// collision against the per-service seen-set (rejection sampling).
func (s *Service) nextOrderID() string {
	for {
		buf := make([]byte, orderIDLength)
		for i := range buf {
			buf[i] = orderIDAlphabet[s.rng.Intn(len(orderIDAlphabet))]
		}
		id := string(buf)
		if _, seen := s.seenIDs[id]; seen {
			continue
		}
		s.seenIDs[id] = struct{}{}
		return id
	}
}
