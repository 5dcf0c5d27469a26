// Package refdata holds the literal static reference table for the seven
// pre-registered on-the-run U.S. Treasuries: CUSIP, ticker, coupon,
// maturity, and per-unit PV01.
package refdata

import (
	"time"

	"github.com/yanun0323/decimal"

	"treasurydesk/internal/schema"
)

type entry struct {
	cusip    string
	ticker   string
	coupon   float64
	maturity string
	pv01     string
}

var entries = []entry{
	{"91282CJL6", "2Y", 4.875, "2025-11-30", "0.0184433"},
	{"91282CJP7", "3Y", 4.375, "2026-12-15", "0.0278920"},
	{"91282CJN2", "5Y", 4.375, "2028-11-30", "0.0451297"},
	{"91282CJM4", "7Y", 4.375, "2030-11-30", "0.0613336"},
	{"91282CJJ1", "10Y", 4.5, "2033-11-15", "0.0840999"},
	{"912810TW8", "20Y", 4.75, "2043-11-15", "0.1410550"},
	{"912810TV0", "30Y", 4.75, "2053-11-15", "0.1890362"},
}

var (
	byTicker = make(map[string]schema.Product, len(entries))
	pv01     = make(map[string]decimal.Decimal, len(entries))
)

func init() {
	for _, e := range entries {
		maturity, err := time.Parse("2006-01-02", e.maturity)
		if err != nil {
			panic("refdata: invalid maturity literal: " + e.maturity)
		}
		byTicker[e.ticker] = schema.Product{
			ProductID:    e.cusip,
			IDType:       schema.IDTypeCUSIP,
			Ticker:       e.ticker,
			Coupon:       e.coupon,
			MaturityDate: maturity,
		}
		d, err := decimal.NewFromString(e.pv01)
		if err != nil {
			panic("refdata: invalid pv01 literal: " + e.pv01)
		}
		pv01[e.ticker] = d
	}
}

// Lookup returns the Product registered for a ticker such as "2Y".
func Lookup(ticker string) (schema.Product, bool) {
	p, ok := byTicker[ticker]
	return p, ok
}

// PV01 returns the per-unit PV01 constant for a ticker.
func PV01(ticker string) (decimal.Decimal, bool) {
	d, ok := pv01[ticker]
	return d, ok
}

// Tickers returns the registered tickers in table order.
func Tickers() []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ticker)
	}
	return out
}
