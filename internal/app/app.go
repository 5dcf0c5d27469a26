// Package app wires the full service mesh: every service is instantiated
// first, then listeners are installed by handle, then each source file is
// driven to completion in a fixed order. Constructing everything before
// wiring avoids any listener closing over a partially-constructed
// service.
package app

import (
	"io"

	"github.com/yanun0323/logs"

	"treasurydesk/internal/algoexecution"
	"treasurydesk/internal/algostreaming"
	"treasurydesk/internal/config"
	"treasurydesk/internal/execution"
	"treasurydesk/internal/gui"
	"treasurydesk/internal/historical"
	"treasurydesk/internal/inquiry"
	"treasurydesk/internal/marketdata"
	"treasurydesk/internal/obs"
	"treasurydesk/internal/position"
	"treasurydesk/internal/pricing"
	"treasurydesk/internal/risk"
	"treasurydesk/internal/schema"
	"treasurydesk/internal/streaming"
	"treasurydesk/internal/tradebooking"
)

// Sources names the four file-backed inputs the builder drives, in the
// fixed order they are run.
type Sources struct {
	MarketData io.Reader
	Prices     io.Reader
	Trades     io.Reader
	Inquiries  io.Reader
}

// Sinks names the output writers every historical/GUI sink appends to.
type Sinks struct {
	Positions  io.Writer
	Risk       io.Writer
	Executions io.Writer
	Streaming  io.Writer
	Inquiries  io.Writer
	GUI        io.Writer
}

// Mesh holds every constructed service, exposed so tests and the CLI can
// query final state after a run.
type Mesh struct {
	MarketData   *marketdata.Service
	AlgoExec     *algoexecution.Service
	Execution    *execution.Service
	TradeBooking *tradebooking.Service
	Position     *position.Service
	Risk         *risk.Service
	Pricing      *pricing.Service
	AlgoStream   *algostreaming.Service
	Streaming    *streaming.Service
	Inquiry      *inquiry.Service
	GUI          *gui.Service
	Metrics      *obs.Metrics

	marketDataConnector   *marketdata.Connector
	tradeBookingConnector *tradebooking.Connector
	pricingConnector      *pricing.Connector
	inquiryConnector      *inquiry.Connector
}

// Build constructs every service, wires every listener, and attaches every
// historical/GUI sink, but does not run any source yet.
func Build(cfg config.Resolved, sinks Sinks) *Mesh {
	m := &Mesh{
		MarketData:   marketdata.New(cfg.MarketDataDepth),
		AlgoExec:     algoexecution.New(),
		Execution:    execution.New(),
		TradeBooking: tradebooking.New(),
		Position:     position.New(),
		Risk:         risk.New(),
		Pricing:      pricing.New(),
		AlgoStream:   algostreaming.New(),
		Streaming:    streaming.New(),
		Inquiry:      inquiry.New(),
		GUI:          gui.New(msToDuration(cfg.GUIThrottleMillis), cfg.GUIMaxUpdates),
		Metrics:      obs.NewMetrics(),
	}

	m.marketDataConnector = marketdata.NewConnector(m.MarketData, m.Metrics)
	m.tradeBookingConnector = tradebooking.NewConnector(m.TradeBooking, m.Metrics)
	m.pricingConnector = pricing.NewConnector(m.Pricing, m.Metrics)
	m.inquiryConnector = inquiry.NewConnector(m.Inquiry, m.Metrics)
	gui.NewConnector(m.GUI, sinks.GUI, m.Metrics)

	positionHist := historical.New[schema.Position](schema.ServiceTypePosition)
	historical.NewConnector(positionHist, sinks.Positions, m.Metrics)
	riskHist := historical.New[schema.PV01](schema.ServiceTypeRisk)
	historical.NewConnector(riskHist, sinks.Risk, m.Metrics)
	executionHist := historical.New[schema.ExecutionOrder](schema.ServiceTypeExecution)
	historical.NewConnector(executionHist, sinks.Executions, m.Metrics)
	streamingHist := historical.New[schema.PriceStream](schema.ServiceTypeStreaming)
	historical.NewConnector(streamingHist, sinks.Streaming, m.Metrics)
	inquiryHist := historical.New[schema.Inquiry](schema.ServiceTypeInquiry)
	historical.NewConnector(inquiryHist, sinks.Inquiries, m.Metrics)

	// market data -> algo-exec -> execution -> trade-booking -> position -> risk
	m.MarketData.AddListener(m.AlgoExec)
	m.AlgoExec.AddListener(m.Execution)
	m.Execution.AddListener(m.TradeBooking)
	m.TradeBooking.AddListener(m.Position)
	m.Position.AddListener(m.Risk)

	// pricing -> algo-stream -> streaming (+GUI in parallel)
	m.Pricing.AddListener(m.AlgoStream)
	m.AlgoStream.AddListener(m.Streaming)
	m.Pricing.AddListener(m.GUI)

	// historical sinks
	m.Position.AddListener(historical.AsListener(positionHist, positionKey))
	m.Risk.AddListener(historical.AsListener(riskHist, riskKey))
	m.Execution.AddListener(historical.AsListener(executionHist, executionKey))
	m.Streaming.AddListener(historical.AsListener(streamingHist, streamKey))
	m.Inquiry.AddListener(historical.AsListener(inquiryHist, inquiryKey))

	m.Execution.AddListener(countingListener{metrics: m.Metrics, fn: m.Metrics.IncExecution})
	m.TradeBooking.AddListener(tradeCountingListener{metrics: m.Metrics})
	m.Position.AddListener(positionCountingListener{metrics: m.Metrics})
	m.Risk.AddListener(riskCountingListener{metrics: m.Metrics})
	m.Inquiry.AddListener(inquiryCountingListener{metrics: m.Metrics})

	return m
}

// RunSources drives every input source to completion in the fixed order:
// market data, prices, trades, inquiries.
func (m *Mesh) RunSources(sources Sources) error {
	if sources.MarketData != nil {
		logs.Infof("app: running market data source")
		if err := m.marketDataConnector.Subscribe(sources.MarketData); err != nil {
			return err
		}
	}
	if sources.Prices != nil {
		logs.Infof("app: running pricing source")
		if err := m.pricingConnector.Subscribe(sources.Prices); err != nil {
			return err
		}
	}
	if sources.Trades != nil {
		logs.Infof("app: running trades source")
		if err := m.tradeBookingConnector.Subscribe(sources.Trades); err != nil {
			return err
		}
	}
	if sources.Inquiries != nil {
		logs.Infof("app: running inquiries source")
		if err := m.inquiryConnector.Subscribe(sources.Inquiries); err != nil {
			return err
		}
	}
	return nil
}
