package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasurydesk/internal/config"
	"treasurydesk/internal/schema"
)

func newTestMesh() (*Mesh, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	positions := &bytes.Buffer{}
	risk := &bytes.Buffer{}
	executions := &bytes.Buffer{}
	m := Build(config.Default(), Sinks{
		Positions:  positions,
		Risk:       risk,
		Executions: executions,
		Streaming:  &bytes.Buffer{},
		Inquiries:  &bytes.Buffer{},
		GUI:        &bytes.Buffer{},
	})
	return m, positions, risk, executions
}

func TestRunSourcesEndToEndTrade(t *testing.T) {
	m, positions, risk, _ := newTestMesh()

	trades := strings.NewReader("2Y, T1, 100-00, TRSY1, 1000000, BUY\n")
	require.NoError(t, m.RunSources(Sources{Trades: trades}))

	pos, ok := m.Position.GetData("91282CJL6")
	require.True(t, ok)
	assert.Equal(t, int64(1_000_000), pos.Positions[schema.TRSY1])

	pv01, ok := m.Risk.GetData("91282CJL6")
	require.True(t, ok)
	assert.Equal(t, int64(1_000_000), pv01.Quantity)

	assert.True(t, strings.Contains(positions.String(), "2Y"))
	assert.True(t, strings.Contains(risk.String(), "2Y"))
}

func TestRunSourcesCrossingProducesExecution(t *testing.T) {
	m, _, _, executions := newTestMesh()

	rows := "2Y, 100-00, 0.00390625, 10000000, 10000000\n" +
		"2Y, 100-00, 0.00390625, 10000000, 10000000\n" +
		"2Y, 100-00, 0.00390625, 10000000, 10000000\n" +
		"2Y, 100-00, 0.00390625, 10000000, 10000000\n" +
		"2Y, 100-00, 0.00390625, 10000000, 10000000\n"
	require.NoError(t, m.RunSources(Sources{MarketData: strings.NewReader(rows)}))

	assert.True(t, strings.Contains(executions.String(), "2Y"))
}
