package app

import (
	"time"

	"treasurydesk/internal/obs"
	"treasurydesk/internal/schema"
)

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func positionKey(p schema.Position) string { return p.Product.ProductID }
func riskKey(p schema.PV01) string          { return p.Product.ProductID }
func executionKey(o schema.ExecutionOrder) string { return o.OrderID }
func streamKey(s schema.PriceStream) string { return s.Product.ProductID }
func inquiryKey(i schema.Inquiry) string    { return i.InquiryID }

type countingListener struct {
	metrics *obs.Metrics
	fn      func()
}

func (l countingListener) ProcessAdd(schema.ExecutionOrder) error {
	l.fn()
	return nil
}
func (l countingListener) ProcessRemove(schema.ExecutionOrder) error { return nil }
func (l countingListener) ProcessUpdate(schema.ExecutionOrder) error { return nil }

type tradeCountingListener struct {
	metrics *obs.Metrics
}

func (l tradeCountingListener) ProcessAdd(schema.Trade) error {
	l.metrics.IncTrade()
	return nil
}
func (l tradeCountingListener) ProcessRemove(schema.Trade) error { return nil }
func (l tradeCountingListener) ProcessUpdate(schema.Trade) error { return nil }

type positionCountingListener struct {
	metrics *obs.Metrics
}

func (l positionCountingListener) ProcessAdd(schema.Position) error {
	l.metrics.IncPosition()
	return nil
}
func (l positionCountingListener) ProcessRemove(schema.Position) error { return nil }
func (l positionCountingListener) ProcessUpdate(schema.Position) error { return nil }

type riskCountingListener struct {
	metrics *obs.Metrics
}

func (l riskCountingListener) ProcessAdd(schema.PV01) error {
	l.metrics.IncRiskAdd()
	return nil
}
func (l riskCountingListener) ProcessRemove(schema.PV01) error { return nil }
func (l riskCountingListener) ProcessUpdate(schema.PV01) error { return nil }

type inquiryCountingListener struct {
	metrics *obs.Metrics
}

func (l inquiryCountingListener) ProcessAdd(schema.Inquiry) error {
	l.metrics.IncInquiry()
	return nil
}
func (l inquiryCountingListener) ProcessRemove(schema.Inquiry) error { return nil }
func (l inquiryCountingListener) ProcessUpdate(schema.Inquiry) error { return nil }
