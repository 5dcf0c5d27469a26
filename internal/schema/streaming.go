package schema

import (
	"strconv"

	"github.com/yanun0323/decimal"
)

// PriceStreamOrder is one side of a two-sided price stream.
type PriceStreamOrder struct {
	Price      decimal.Decimal
	VisibleQty int64
	HiddenQty  int64
	Side       Side
}

// PriceStream is a two-sided stream for a product. BidOrder.Price must
// never exceed OfferOrder.Price.
type PriceStream struct {
	Product    Product
	BidOrder   PriceStreamOrder
	OfferOrder PriceStreamOrder
}

// PersistFields renders the product and both legs' price/visible/hidden.
func (s PriceStream) PersistFields() []string {
	return []string{
		s.Product.Ticker,
		s.BidOrder.Price.String(),
		strconv.FormatInt(s.BidOrder.VisibleQty, 10),
		strconv.FormatInt(s.BidOrder.HiddenQty, 10),
		s.OfferOrder.Price.String(),
		strconv.FormatInt(s.OfferOrder.VisibleQty, 10),
		strconv.FormatInt(s.OfferOrder.HiddenQty, 10),
	}
}
