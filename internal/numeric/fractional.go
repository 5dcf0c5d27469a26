// Package numeric implements the 1/32 + 1/256 fractional bond-price notation
// and the timestamp formatter shared by every persistence record.
package numeric

import (
	"strconv"
	"strings"

	"github.com/yanun0323/decimal"

	"treasurydesk/internal/errors"
)

// FractionalToDecimal parses "whole-XXY" into a decimal price, where XX is a
// zero-padded count of 1/32nds and Y is a single digit of 1/256ths or "+"
// for 4/256ths. For example "100-08+" is 100 + 8/32 + 4/256 = 100.265625.
func FractionalToDecimal(s string) (decimal.Decimal, error) {
	dashPos := strings.IndexByte(s, '-')
	if dashPos < 0 {
		return "", errors.Wrap(errors.ErrParse, "fractional price missing '-': "+s)
	}

	wholePart := s[:dashPos]
	fractionPart := s[dashPos+1:]
	if len(fractionPart) < 2 {
		return "", errors.Wrap(errors.ErrParse, "fractional price too short: "+s)
	}

	whole, err := strconv.ParseInt(wholePart, 10, 64)
	if err != nil {
		return "", errors.Wrap(errors.ErrParse, "fractional price whole part: "+s)
	}

	fraction32, err := strconv.ParseInt(fractionPart[:2], 10, 64)
	if err != nil {
		return "", errors.Wrap(errors.ErrParse, "fractional price 32nds part: "+s)
	}

	fraction256 := int64(0)
	if len(fractionPart) > 2 {
		tail := fractionPart[2:]
		if tail == "+" {
			fraction256 = 4
		} else {
			fraction256, err = strconv.ParseInt(tail, 10, 64)
			if err != nil {
				return "", errors.Wrap(errors.ErrParse, "fractional price 256ths part: "+s)
			}
		}
	}

	d := decimal.NewFromInt(whole)
	d = d.Add(decimal.NewFromInt(fraction32).Div(decimal.NewFromInt(32)))
	d = d.Add(decimal.NewFromInt(fraction256).Div(decimal.NewFromInt(256)))
	return d, nil
}

// ParseDecimal parses a plain decimal string (not fractional notation),
// classifying failures as ErrParse.
func ParseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", errors.Wrap(errors.ErrParse, "invalid decimal: "+s)
	}
	return d, nil
}

// DecimalToFractional renders a decimal price as "whole-XXY" per the same
// notation FractionalToDecimal parses.
func DecimalToFractional(d decimal.Decimal) string {
	whole := d.Truncate(0)
	frac := d.Sub(whole)

	thirtySeconds := frac.Mul(decimal.NewFromInt(32))
	fraction32Whole := thirtySeconds.Truncate(0)
	remainder := thirtySeconds.Sub(fraction32Whole)

	fraction256 := remainder.Mul(decimal.NewFromInt(8)).Round(0)

	var tail string
	switch {
	case fraction256.Equal(decimal.NewFromInt(4)):
		tail = "+"
	case !fraction256.IsZero():
		tail = fraction256.String()
	}

	wholeStr := whole.String()
	fraction32Str := fraction32Whole.String()
	if len(fraction32Str) < 2 {
		fraction32Str = "0" + fraction32Str
	}
	return wholeStr + "-" + fraction32Str + tail
}
