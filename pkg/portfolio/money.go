package portfolio

import "github.com/shopspring/decimal"

// Money formats a dollar amount rounded to cents. Trailing zeros are trimmed
// so whole amounts render the way the backend reports them: 150 -> "$150",
// 150.5 -> "$150.5", -12.345 -> "-$12.35".
func Money(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		return "-$" + d.Neg().String()
	}
	return "$" + d.String()
}

// SignedMoney is Money with an explicit leading sign for gains: 500 -> "+$500".
func SignedMoney(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsNegative() {
		return "-$" + d.Neg().String()
	}
	return "+$" + d.String()
}

// Percent formats a percentage rounded to two places: 5 -> "5%", -3.258 -> "-3.26%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String() + "%"
}
