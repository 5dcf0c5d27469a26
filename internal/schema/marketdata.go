package schema

import "github.com/yanun0323/decimal"

// Order is a single level of market-data depth.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     Side
}

// OrderBook holds ordered bid and offer stacks for a product. Position 0 of
// each stack is the best: highest bid, lowest offer.
type OrderBook struct {
	Product    Product
	BidStack   []Order
	OfferStack []Order
}

// BestBidOffer returns the top-of-book pair.
type BestBidOffer struct {
	Bid   Order
	Offer Order
}
