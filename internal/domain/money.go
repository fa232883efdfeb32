package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds to two decimal places, half away from zero. The float is read through
// its shortest decimal representation first, so 1.005 rounds to 1.01.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func maybeRound(v float64, rounded bool) float64 {
	if rounded {
		return Round2(v)
	}
	return v
}

// FormatAmount renders a money value the way the processor expects it:
// exactly two fraction digits, '.' as separator, no grouping.
func FormatAmount(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// Totals are order-level sums of line amounts that were each rounded first.
type Totals struct {
	Net   decimal.Decimal
	Tax   decimal.Decimal
	Gross decimal.Decimal
}

// ComputeTotals sums rounded line amounts. Gross is accumulated as net+tax per line so
// that Gross == Net + Tax holds exactly. Nil lines are skipped.
func ComputeTotals(lines []*LineItem) Totals {
	totals := Totals{
		Net:   decimal.Zero,
		Tax:   decimal.Zero,
		Gross: decimal.Zero,
	}

	for _, line := range lines {
		if line == nil {
			continue
		}
		net := decimal.NewFromFloat(line.LineNetAmount(true))
		tax := decimal.NewFromFloat(line.LineTaxAmount(true))

		totals.Net = totals.Net.Add(net)
		totals.Tax = totals.Tax.Add(tax)
		totals.Gross = totals.Gross.Add(net.Add(tax))
	}

	return totals
}
