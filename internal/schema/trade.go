package schema

import "github.com/yanun0323/decimal"

// Trade is a booked fill.
type Trade struct {
	Product  Product
	TradeID  string
	Price    decimal.Decimal
	Book     Book
	Quantity int64
	Side     BuySell
}
