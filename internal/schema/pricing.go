package schema

import "github.com/yanun0323/decimal"

// Price carries a mid and bid/offer spread for a product. BidOfferSpread
// must never be negative.
type Price struct {
	Product        Product
	Mid            decimal.Decimal
	BidOfferSpread decimal.Decimal
}
