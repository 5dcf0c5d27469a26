package inquiry

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/logs"

	"treasurydesk/internal/errors"
	"treasurydesk/internal/numeric"
	"treasurydesk/internal/obs"
	"treasurydesk/internal/refdata"
	"treasurydesk/internal/schema"
)

// Connector both publishes quoted inquiries back into the service (driving
// the RECEIVED -> QUOTED -> DONE double transition) and subscribes new
// inquiries from inquiries.txt rows: "inquiryId, productTicker, BUY|SELL,
// quantity, priceFractional".
type Connector struct {
	service *Service
	metrics *obs.Metrics
}

// NewConnector wires a Connector to its Service and installs it as the
// service's transition driver. metrics may be nil.
func NewConnector(service *Service, metrics *obs.Metrics) *Connector {
	c := &Connector{service: service, metrics: metrics}
	service.setConnector(c)
	return c
}

// Publish drives an inquiry through QUOTED then DONE, feeding each
// intermediate state back into the service directly so SendQuote is not
// re-triggered.
func (c *Connector) Publish(inq schema.Inquiry) error {
	inq.State = schema.InquiryQuoted
	if err := c.service.store.Put(inq.InquiryID, inq); err != nil {
		return err
	}

	inq.State = schema.InquiryDone
	return c.service.store.Put(inq.InquiryID, inq)
}

// Subscribe scans r line by line and publishes each well-formed inquiry
// into the service as RECEIVED.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.processLine(line, lineNo); err != nil {
			c.metrics.IncParseErr()
			logs.Errorf("inquiry: %s", err.Error())
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.ErrIOError, "inquiry: read failed")
	}
	return nil
}

func (c *Connector) processLine(line string, lineNo int) error {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return errors.Wrap(errors.ErrParse, "inquiry line "+strconv.Itoa(lineNo))
	}

	inquiryID := strings.TrimSpace(fields[0])
	ticker := strings.TrimSpace(fields[1])
	product, ok := refdata.Lookup(ticker)
	if !ok {
		return errors.Wrap(errors.ErrUnknownProduct, "inquiry line "+strconv.Itoa(lineNo)+": ticker "+ticker)
	}

	var side schema.BuySell
	switch strings.TrimSpace(fields[2]) {
	case "BUY":
		side = schema.Buy
	case "SELL":
		side = schema.Sell
	default:
		return errors.Wrap(errors.ErrParse, "inquiry line "+strconv.Itoa(lineNo)+": side")
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil {
		return errors.Wrap(errors.ErrParse, "inquiry line "+strconv.Itoa(lineNo)+": quantity")
	}

	price, err := numeric.FractionalToDecimal(strings.TrimSpace(fields[4]))
	if err != nil {
		return errors.Wrap(errors.ErrParse, "inquiry line "+strconv.Itoa(lineNo)+": price")
	}

	return c.service.OnMessage(schema.Inquiry{
		InquiryID: inquiryID,
		Product:   product,
		Side:      side,
		Quantity:  qty,
		Price:     price,
		State:     schema.InquiryReceived,
	})
}
