// Package schema holds the data model shared across every service in the
// mesh: products, order books, prices, streams, executions, trades,
// positions, risk, and inquiries. Values cross listener boundaries by copy,
// never by pointer, matching the ownership rule each service enforces over
// its own keyed store.
package schema

import "time"

// IDType names the identifier scheme a Product's ProductID uses.
type IDType int

const (
	IDTypeUnknown IDType = iota
	IDTypeCUSIP
)

func (t IDType) String() string {
	if t == IDTypeCUSIP {
		return "CUSIP"
	}
	return "UNKNOWN"
}

// Product is the immutable identity of a tradable bond. Equality is by
// ProductID; bond Products come from the reference table in
// internal/refdata, and BucketedSector.AsProduct builds a synthetic one
// for a sector.
type Product struct {
	ProductID    string
	IDType       IDType
	Ticker       string
	Coupon       float64
	MaturityDate time.Time
}

// Side is a market-data or execution side.
type Side int

const (
	SideUnknown Side = iota
	SideBid
	SideOffer
)

func (s Side) String() string {
	switch s {
	case SideBid:
		return "BID"
	case SideOffer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}

// BuySell is a trade or inquiry direction.
type BuySell int

const (
	BuySellUnknown BuySell = iota
	Buy
	Sell
)

func (b BuySell) String() string {
	switch b {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// Book names one of the three ledgers every Position pre-initializes.
type Book int

const (
	BookUnknown Book = iota
	TRSY1
	TRSY2
	TRSY3
)

func (b Book) String() string {
	switch b {
	case TRSY1:
		return "TRSY1"
	case TRSY2:
		return "TRSY2"
	case TRSY3:
		return "TRSY3"
	default:
		return "UNKNOWN"
	}
}

// Books lists the round-robin book assignment order.
var Books = [3]Book{TRSY1, TRSY2, TRSY3}
