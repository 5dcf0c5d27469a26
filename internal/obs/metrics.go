// Package obs provides lightweight atomic counters for the mesh: a small
// set of named domain counters (executions, trades, positions, risk
// updates, inquiries, GUI emissions, parse errors, persisted records)
// with a snapshot for end-of-run reporting.
package obs

import "sync/atomic"

// Metrics collects counters for every stage of the mesh.
type Metrics struct {
	executions uint64
	trades     uint64
	positions  uint64
	riskAdds   uint64
	inquiries  uint64
	guiEmits   uint64
	parseErrs  uint64
	persisted  uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Executions uint64
	Trades     uint64
	Positions  uint64
	RiskAdds   uint64
	Inquiries  uint64
	GUIEmits   uint64
	ParseErrs  uint64
	Persisted  uint64
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncExecution records one crossed/echoed execution order.
func (m *Metrics) IncExecution() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.executions, 1)
}

// IncTrade records one booked trade.
func (m *Metrics) IncTrade() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.trades, 1)
}

// IncPosition records one position delta applied.
func (m *Metrics) IncPosition() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.positions, 1)
}

// IncRiskAdd records one PV01 aggregation update.
func (m *Metrics) IncRiskAdd() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.riskAdds, 1)
}

// IncInquiry records one inquiry state transition.
func (m *Metrics) IncInquiry() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.inquiries, 1)
}

// IncGUIEmit records one throttled GUI emission.
func (m *Metrics) IncGUIEmit() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.guiEmits, 1)
}

// IncParseErr records one classified parse/ingest error.
func (m *Metrics) IncParseErr() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.parseErrs, 1)
}

// IncPersisted records one historical-store write.
func (m *Metrics) IncPersisted() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.persisted, 1)
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		Executions: atomic.LoadUint64(&m.executions),
		Trades:     atomic.LoadUint64(&m.trades),
		Positions:  atomic.LoadUint64(&m.positions),
		RiskAdds:   atomic.LoadUint64(&m.riskAdds),
		Inquiries:  atomic.LoadUint64(&m.inquiries),
		GUIEmits:   atomic.LoadUint64(&m.guiEmits),
		ParseErrs:  atomic.LoadUint64(&m.parseErrs),
		Persisted:  atomic.LoadUint64(&m.persisted),
	}
}
