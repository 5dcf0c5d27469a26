package tradebooking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanun0323/decimal"

	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

type capturingListener struct {
	bus.BaseListener[schema.Trade]
	trades []schema.Trade
}

func (l *capturingListener) ProcessAdd(t schema.Trade) error {
	l.trades = append(l.trades, t)
	return nil
}

func TestBookTradeFromFile(t *testing.T) {
	svc := New()
	l := &capturingListener{}
	svc.AddListener(l)
	conn := NewConnector(svc, nil)

	require.NoError(t, conn.Subscribe(strings.NewReader("2Y,T1,100-00,TRSY1,1000000,BUY\n")))

	require.Len(t, l.trades, 1)
	tr := l.trades[0]
	assert.Equal(t, "T1", tr.TradeID)
	assert.Equal(t, schema.TRSY1, tr.Book)
	assert.Equal(t, int64(1_000_000), tr.Quantity)
	assert.Equal(t, schema.Buy, tr.Side)
	want, _ := decimal.NewFromString("100")
	assert.True(t, tr.Price.Equal(want))
}

func TestProcessAddRoundRobinsBooks(t *testing.T) {
	svc := New()
	l := &capturingListener{}
	svc.AddListener(l)

	for i := 0; i < 4; i++ {
		order := schema.ExecutionOrder{
			Product:    schema.Product{ProductID: "91282CJL6"},
			OrderID:    "ORDER" + string(rune('0'+i)),
			Side:       schema.SideBid,
			VisibleQty: 1000,
		}
		require.NoError(t, svc.ProcessAdd(order))
	}

	require.Len(t, l.trades, 4)
	assert.Equal(t, schema.TRSY1, l.trades[0].Book)
	assert.Equal(t, schema.TRSY2, l.trades[1].Book)
	assert.Equal(t, schema.TRSY3, l.trades[2].Book)
	assert.Equal(t, schema.TRSY1, l.trades[3].Book)
	assert.Equal(t, int64(2000), l.trades[0].Quantity)
	assert.Equal(t, schema.Buy, l.trades[0].Side)
}

func TestUnknownProductSkipped(t *testing.T) {
	svc := New()
	l := &capturingListener{}
	svc.AddListener(l)
	conn := NewConnector(svc, nil)

	require.NoError(t, conn.Subscribe(strings.NewReader("9Y,T1,100-00,TRSY1,1000000,BUY\n")))
	assert.Empty(t, l.trades)
}
