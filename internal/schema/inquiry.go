package schema

import (
	"strconv"

	"github.com/yanun0323/decimal"
)

// InquiryState is a node in the inquiry state machine.
type InquiryState int

const (
	InquiryStateUnknown InquiryState = iota
	InquiryReceived
	InquiryQuoted
	InquiryDone
	InquiryRejected
	InquiryCustomerRejected
)

func (s InquiryState) String() string {
	switch s {
	case InquiryReceived:
		return "RECEIVED"
	case InquiryQuoted:
		return "QUOTED"
	case InquiryDone:
		return "DONE"
	case InquiryRejected:
		return "REJECTED"
	case InquiryCustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether no further transition is legal from this state.
func (s InquiryState) Terminal() bool {
	switch s {
	case InquiryDone, InquiryRejected, InquiryCustomerRejected:
		return true
	default:
		return false
	}
}

// Inquiry is an inbound customer RFQ and its current state.
type Inquiry struct {
	InquiryID string
	Product   Product
	Side      BuySell
	Quantity  int64
	Price     decimal.Decimal
	State     InquiryState
}

// PersistFields renders the inquiry id, product, side, quantity, price, and state.
func (i Inquiry) PersistFields() []string {
	return []string{
		i.InquiryID,
		i.Product.Ticker,
		i.Side.String(),
		strconv.FormatInt(i.Quantity, 10),
		i.Price.String(),
		i.State.String(),
	}
}
