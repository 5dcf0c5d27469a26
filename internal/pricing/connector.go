package pricing

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

// Connector reads prices.txt rows: "productTicker, midFractional,
// bidOfferSpreadDecimal".
type Connector struct {
	service *Service
	metrics *obs.Metrics
}

// NewConnector wires a Connector to its Service. metrics may be nil.
func NewConnector(service *Service, metrics *obs.Metrics) *Connector {
	return &Connector{service: service, metrics: metrics}
}

// Subscribe scans r line by line and publishes each well-formed Price.
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
			logs.Errorf("pricing: %s", err.Error())
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.ErrIOError, "pricing: read failed")
	}
	return nil
}

func (c *Connector) processLine(line string, lineNo int) error {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return errors.Wrap(errors.ErrParse, "pricing line "+strconv.Itoa(lineNo))
	}

	ticker := strings.TrimSpace(fields[0])
	product, ok := refdata.Lookup(ticker)
	if !ok {
		return errors.Wrap(errors.ErrUnknownProduct, "pricing line "+strconv.Itoa(lineNo)+": ticker "+ticker)
	}

	mid, err := numeric.FractionalToDecimal(strings.TrimSpace(fields[1]))
	if err != nil {
		return errors.Wrap(errors.ErrParse, "pricing line "+strconv.Itoa(lineNo)+": mid")
	}
	spread, err := numeric.ParseDecimal(strings.TrimSpace(fields[2]))
	if err != nil {
		return errors.Wrap(errors.ErrParse, "pricing line "+strconv.Itoa(lineNo)+": spread")
	}

	return c.service.OnMessage(schema.Price{Product: product, Mid: mid, BidOfferSpread: spread})
}
