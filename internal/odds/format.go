package odds

import (
	"strconv"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatMoneyline renders an American price with an explicit sign ("+160", "-190")
func FormatMoneyline(ml int) string {
	if ml > 0 {
		return "+" + strconv.Itoa(ml)
	}
	return strconv.Itoa(ml)
}

// FormatLine renders a spread with an explicit sign ("+1.5", "-1.5")
func FormatLine(line float64) string {
	s := strconv.FormatFloat(line, 'f', -1, 64)
	if line > 0 {
		return "+" + s
	}
	return s
}

// MoneylineToDecimal converts an American price to decimal (European) odds,
// rounded to two places. Zero returns decimal.Zero.
func MoneylineToDecimal(ml int) decimal.Decimal {
	price := decimal.NewFromInt(int64(ml))
	switch {
	case ml > 0:
		return price.Div(hundred).Add(decimal.NewFromInt(1)).Round(2)
	case ml < 0:
		return hundred.Div(price.Neg()).Add(decimal.NewFromInt(1)).Round(2)
	default:
		return decimal.Zero
	}
}
