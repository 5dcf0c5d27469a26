package gui

import (
	"fmt"
	"io"

	"treasurydesk/internal/numeric"
	"treasurydesk/internal/obs"
	"treasurydesk/internal/schema"
)

// Connector writes throttled price snapshots to an append-only sink. It
// holds no file handle itself: NewConnector wires it to any io.Writer, letting the
// caller point it at gui.txt or a rotation-aware writer.
type Connector struct {
	service *Service
	w       io.Writer
	metrics *obs.Metrics
}

// NewConnector wires a Connector to its Service and output sink. metrics
// may be nil.
func NewConnector(service *Service, w io.Writer, metrics *obs.Metrics) *Connector {
	c := &Connector{service: service, w: w, metrics: metrics}
	service.setConnector(c)
	return c
}

// Publish writes one line if the throttle window has elapsed and the
// update cap has not been reached; otherwise it is a silent no-op.
func (c *Connector) Publish(price schema.Price) error {
	now := c.service.now()
	elapsedMs := now.Sub(c.service.lastUpdate).Milliseconds()

	if elapsedMs < c.service.throttle.Milliseconds() {
		return nil
	}
	if c.service.count >= c.service.maxUpdates {
		return nil
	}

	c.service.count++
	c.service.lastUpdate = now

	if _, err := fmt.Fprintf(c.w, "%s , %s , %s , %s\n",
		numeric.Timestamp(now), price.Product.ProductID, price.Mid.String(), price.BidOfferSpread.String()); err != nil {
		return err
	}
	c.metrics.IncGUIEmit()
	return nil
}
