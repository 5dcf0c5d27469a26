package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanun0323/decimal"
)

func TestFractionalToDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"99-00", "99"},
		{"100-08+", "100.265625"},
		{"100-00", "100"},
	}
	for _, c := range cases {
		got, err := FractionalToDecimal(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "input %s", c.in)
	}
}

func TestFractionalToDecimalParseError(t *testing.T) {
	_, err := FractionalToDecimal("not-a-fraction!!")
	assert.Error(t, err)
}

func TestDecimalToFractionalRoundTrip(t *testing.T) {
	tolerance := decimal.NewFromInt(1).Div(decimal.NewFromInt(256))
	for _, in := range []string{"99-00", "100-08+", "99-16"} {
		d, err := FractionalToDecimal(in)
		require.NoError(t, err)
		back, err := FractionalToDecimal(DecimalToFractional(d))
		require.NoError(t, err)
		diff := d.Sub(back).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance), "round trip for %s drifted by %s", in, diff.String())
	}
}
