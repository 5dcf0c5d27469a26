package tradebooking

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

// Connector reads trades.txt rows: "productTicker, tradeId,
// priceFractional, book, qty, BUY|SELL".
type Connector struct {
	service *Service
	metrics *obs.Metrics
}

// NewConnector wires a Connector to its Service. metrics may be nil.
func NewConnector(service *Service, metrics *obs.Metrics) *Connector {
	return &Connector{service: service, metrics: metrics}
}

// Subscribe scans r line by line and books each well-formed trade.
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
			logs.Errorf("tradebooking: %s", err.Error())
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(errors.ErrIOError, "tradebooking: read failed")
	}
	return nil
}

func (c *Connector) processLine(line string, lineNo int) error {
	fields := strings.Split(line, ",")
	if len(fields) < 6 {
		return errors.Wrap(errors.ErrParse, "tradebooking line "+strconv.Itoa(lineNo))
	}

	ticker := strings.TrimSpace(fields[0])
	product, ok := refdata.Lookup(ticker)
	if !ok {
		return errors.Wrap(errors.ErrUnknownProduct, "tradebooking line "+strconv.Itoa(lineNo)+": ticker "+ticker)
	}

	price, err := numeric.FractionalToDecimal(strings.TrimSpace(fields[2]))
	if err != nil {
		return errors.Wrap(errors.ErrParse, "tradebooking line "+strconv.Itoa(lineNo)+": price")
	}

	book, ok := parseBook(strings.TrimSpace(fields[3]))
	if !ok {
		return errors.Wrap(errors.ErrParse, "tradebooking line "+strconv.Itoa(lineNo)+": book")
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(fields[4]), 10, 64)
	if err != nil {
		return errors.Wrap(errors.ErrParse, "tradebooking line "+strconv.Itoa(lineNo)+": qty")
	}

	side, ok := parseSide(strings.TrimSpace(fields[5]))
	if !ok {
		return errors.Wrap(errors.ErrParse, "tradebooking line "+strconv.Itoa(lineNo)+": side")
	}

	trade := schema.Trade{
		Product:  product,
		TradeID:  strings.TrimSpace(fields[1]),
		Price:    price,
		Book:     book,
		Quantity: qty,
		Side:     side,
	}
	return c.service.BookTrade(trade)
}

func parseBook(s string) (schema.Book, bool) {
	switch s {
	case "TRSY1":
		return schema.TRSY1, true
	case "TRSY2":
		return schema.TRSY2, true
	case "TRSY3":
		return schema.TRSY3, true
	default:
		return schema.BookUnknown, false
	}
}

func parseSide(s string) (schema.BuySell, bool) {
	switch s {
	case "BUY":
		return schema.Buy, true
	case "SELL":
		return schema.Sell, true
	default:
		return schema.BuySellUnknown, false
	}
}
