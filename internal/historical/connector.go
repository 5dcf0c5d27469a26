package historical

import (
	"fmt"
	"io"
	"strings"
	"time"

	"treasurydesk/internal/numeric"
	"treasurydesk/internal/obs"
	"treasurydesk/internal/schema"
)

// Connector writes one line per persisted value to an append-only sink.
// It holds no file handle itself: NewConnector wires it to any io.Writer,
// letting the caller point it at outputs/<file> for its ServiceType.
type Connector[V schema.Persistable] struct {
	service *Service[V]
	w       io.Writer
	now     func() string
	metrics *obs.Metrics
}

// NewConnector wires a Connector to its Service and output sink. metrics
// may be nil.
func NewConnector[V schema.Persistable](service *Service[V], w io.Writer, metrics *obs.Metrics) *Connector[V] {
	c := &Connector[V]{service: service, w: w, now: nowStamp, metrics: metrics}
	service.setConnector(c)
	return c
}

func nowStamp() string {
	return numeric.Timestamp(time.Now())
}

// Publish writes data's persisted fields, timestamp-prefixed, as one line.
func (c *Connector[V]) Publish(data V) error {
	fields := append([]string{c.now()}, data.PersistFields()...)
	if _, err := fmt.Fprintln(c.w, strings.Join(fields, " , ")); err != nil {
		return err
	}
	c.metrics.IncPersisted()
	return nil
}
