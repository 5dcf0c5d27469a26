package schema

import (
	"strconv"

	"github.com/yanun0323/decimal"
)

// OrderType is the execution order type.
type OrderType int

const (
	OrderTypeUnknown OrderType = iota
	OrderTypeFOK
	OrderTypeIOC
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStop
)

// ExecutionOrder is the output of AlgoExecutionService / ExecutionService.
// OrderID is unique over the process lifetime.
type ExecutionOrder struct {
	Product       Product
	Side          Side
	OrderID       string
	OrderType     OrderType
	Price         decimal.Decimal
	VisibleQty    int64
	HiddenQty     int64
	ParentOrderID string
	IsChildOrder  bool
}

// PersistFields renders the product, side, order id, price, and both
// quantity legs.
func (o ExecutionOrder) PersistFields() []string {
	return []string{
		o.Product.Ticker,
		o.Side.String(),
		o.OrderID,
		o.Price.String(),
		strconv.FormatInt(o.VisibleQty, 10),
		strconv.FormatInt(o.HiddenQty, 10),
	}
}

// Market names a trading venue an ExecutionOrder was routed to.
type Market int

const (
	MarketUnknown Market = iota
	MarketBrokertec
	MarketESpeed
	MarketCME
)

func (m Market) String() string {
	switch m {
	case MarketBrokertec:
		return "BROKERTEC"
	case MarketESpeed:
		return "ESPEED"
	case MarketCME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}
