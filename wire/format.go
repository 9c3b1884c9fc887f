package wire

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mimir/domain/orderbook"
)

// FormatPx renders a price with at least two decimal places:
// 10 -> "10.00", 9.5 -> "9.50". Finer inputs keep their scale.
func FormatPx(px decimal.Decimal) string {
	if px.Exponent() >= -2 {
		return px.StringFixed(2)
	}
	return px.String()
}

func FillLine(oid uint64, symbol string, qty int64, px decimal.Decimal) string {
	return fmt.Sprintf("F %d %s %d %s", oid, symbol, qty, FormatPx(px))
}

func CancelLine(oid uint64) string {
	return fmt.Sprintf("X %d", oid)
}

func PrintLine(oid uint64, symbol string, side orderbook.Side, open int64, px decimal.Decimal) string {
	return fmt.Sprintf("P %d %s %s %d %s", oid, symbol, side, open, FormatPx(px))
}
