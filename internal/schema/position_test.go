package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPositionPreInitializesBooks(t *testing.T) {
	p := NewPosition(Product{Ticker: "2Y"})
	assert.Equal(t, int64(0), p.Positions[TRSY1])
	assert.Equal(t, int64(0), p.Positions[TRSY2])
	assert.Equal(t, int64(0), p.Positions[TRSY3])
	assert.Equal(t, int64(0), p.AggregatePosition())
}

func TestPositionCopyDoesNotAlias(t *testing.T) {
	p := NewPosition(Product{Ticker: "2Y"})
	c := p.Copy()
	c.Positions[TRSY1] = 100
	assert.Equal(t, int64(0), p.Positions[TRSY1])
	assert.Equal(t, int64(100), c.Positions[TRSY1])
}

func TestAggregatePosition(t *testing.T) {
	p := NewPosition(Product{Ticker: "2Y"})
	p.Positions[TRSY1] = 5
	p.Positions[TRSY2] = -2
	p.Positions[TRSY3] = 10
	assert.Equal(t, int64(13), p.AggregatePosition())
}
