package marketdata

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

// Connector reads depth-N market-data rows from a reader and drives the
// owning Service, one row at a time. Each line is
// "productTicker, midFractional, halfSpreadDecimal, qty, qty": the second
// quantity column is present in the file but unused, only the first is
// read.
type Connector struct {
	service *Service
	metrics *obs.Metrics
}

// NewConnector wires a Connector to its Service. metrics may be nil.
func NewConnector(service *Service, metrics *obs.Metrics) *Connector {
	return &Connector{service: service, metrics: metrics}
}

// Subscribe scans r line by line, classifying and skipping malformed
// lines, and calls AddRow on the owning service for every well-formed one.
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
			logs.Errorf("marketdata: %s", err.Error())
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.ErrIOError, "marketdata: read failed")
	}
	return nil
}

func (c *Connector) processLine(line string, lineNo int) error {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return errors.Wrap(errors.ErrParse, "marketdata line "+strconv.Itoa(lineNo))
	}
	ticker := strings.TrimSpace(fields[0])

	product, ok := refdata.Lookup(ticker)
	if !ok {
		return errors.Wrap(errors.ErrUnknownProduct, "marketdata line "+strconv.Itoa(lineNo)+": ticker "+ticker)
	}

	mid, err := numeric.FractionalToDecimal(strings.TrimSpace(fields[1]))
	if err != nil {
		return errors.Wrap(errors.ErrParse, "marketdata line "+strconv.Itoa(lineNo)+": mid")
	}
	spread, err := numeric.ParseDecimal(strings.TrimSpace(fields[2]))
	if err != nil {
		return errors.Wrap(errors.ErrParse, "marketdata line "+strconv.Itoa(lineNo)+": spread")
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil {
		return errors.Wrap(errors.ErrParse, "marketdata line "+strconv.Itoa(lineNo)+": qty")
	}

	bid := schema.Order{Price: mid.Sub(spread), Quantity: qty, Side: schema.SideBid}
	offer := schema.Order{Price: mid.Add(spread), Quantity: qty, Side: schema.SideOffer}

	return c.service.AddRow(product, bid, offer)
}
