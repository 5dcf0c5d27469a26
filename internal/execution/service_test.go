package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasurydesk/internal/bus"
	"treasurydesk/internal/schema"
)

type capturingListener struct {
	bus.BaseListener[schema.ExecutionOrder]
	orders []schema.ExecutionOrder
}

func (l *capturingListener) ProcessAdd(o schema.ExecutionOrder) error {
	l.orders = append(l.orders, o)
	return nil
}

func TestProcessAddStoresAndFansOut(t *testing.T) {
	svc := New()
	l := &capturingListener{}
	svc.AddListener(l)

	order := schema.ExecutionOrder{Product: schema.Product{ProductID: "91282CJL6"}, OrderID: "AAAAAAAA"}
	require.NoError(t, svc.ProcessAdd(order))

	got, ok := svc.GetData("91282CJL6")
	require.True(t, ok)
	assert.Equal(t, "AAAAAAAA", got.OrderID)
	require.Len(t, l.orders, 1)
}

func TestExecuteOrderIgnoresMarketForRouting(t *testing.T) {
	svc := New()
	l := &capturingListener{}
	svc.AddListener(l)

	order := schema.ExecutionOrder{Product: schema.Product{ProductID: "91282CJL6"}, OrderID: "BBBBBBBB"}
	require.NoError(t, svc.ExecuteOrder(order, schema.MarketCME))
	require.Len(t, l.orders, 1)
	assert.Equal(t, "BBBBBBBB", l.orders[0].OrderID)
}
