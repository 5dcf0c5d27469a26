package historical

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasurydesk/internal/schema"
)

type fakeRecord struct {
	key    string
	fields []string
}

func (f fakeRecord) PersistFields() []string { return f.fields }

func TestPersistDataWritesOneLine(t *testing.T) {
	svc := New[fakeRecord](schema.ServiceTypePosition)
	var buf bytes.Buffer
	NewConnector(svc, &buf, nil)

	rec := fakeRecord{key: "91282CJL6-TRSY1", fields: []string{"91282CJL6", "TRSY1", "1000000"}}
	require.NoError(t, svc.PersistData(rec.key, rec))

	line := buf.String()
	assert.True(t, strings.Contains(line, "91282CJL6 , TRSY1 , 1000000"))

	got, ok := svc.GetData(rec.key)
	require.True(t, ok)
	assert.Equal(t, rec, got)
}

func TestAsListenerPersistsOnProcessAdd(t *testing.T) {
	svc := New[fakeRecord](schema.ServiceTypeExecution)
	var buf bytes.Buffer
	NewConnector(svc, &buf, nil)

	listener := AsListener(svc, func(r fakeRecord) string { return r.key })
	rec := fakeRecord{key: "order-1", fields: []string{"order-1", "BUY"}}
	require.NoError(t, listener.ProcessAdd(rec))

	assert.True(t, strings.Contains(buf.String(), "order-1 , BUY"))
}
