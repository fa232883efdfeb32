package domain_test

import (
	"testing"

	"github.com/DanielPopoola/checkout-gateway/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	t.Run("sums rounded line amounts", func(t *testing.T) {
		lines := []*domain.LineItem{
			{Quantity: 1, UnitPrice: 0.3333},
			{Quantity: 1, UnitPrice: 0.3333},
			{Quantity: 1, UnitPrice: 0.3333},
		}

		totals := domain.ComputeTotals(lines)

		// summing first and rounding once would give 1.00
		assert.Equal(t, "0.99", domain.FormatAmount(totals.Net))
		assert.Equal(t, "0.00", domain.FormatAmount(totals.Tax))
		assert.Equal(t, "0.99", domain.FormatAmount(totals.Gross))
	})

	t.Run("net, tax and gross are independent", func(t *testing.T) {
		lines := []*domain.LineItem{
			{Quantity: 2, UnitPrice: 10, TaxPercent: 19},
			{Quantity: 1, UnitPrice: 4.99, TaxPercent: 7},
		}

		totals := domain.ComputeTotals(lines)

		assert.Equal(t, "24.99", domain.FormatAmount(totals.Net))
		assert.Equal(t, "4.15", domain.FormatAmount(totals.Tax))
		assert.Equal(t, "29.14", domain.FormatAmount(totals.Gross))
		assert.False(t, totals.Tax.Equal(totals.Gross), "tax total must not repeat the gross formula")
		assert.True(t, totals.Net.Add(totals.Tax).Equal(totals.Gross))
	})

	t.Run("skips nil lines", func(t *testing.T) {
		totals := domain.ComputeTotals([]*domain.LineItem{nil, {Quantity: 1, UnitPrice: 5}})

		assert.Equal(t, "5.00", domain.FormatAmount(totals.Gross))
	})

	t.Run("empty order is zero", func(t *testing.T) {
		totals := domain.ComputeTotals(nil)

		assert.Equal(t, "0.00", domain.FormatAmount(totals.Net))
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1234567.50", domain.FormatAmount(decimal.NewFromFloat(1234567.5)))
	assert.Equal(t, "0.10", domain.FormatAmount(decimal.NewFromFloat(0.1)))
	assert.Equal(t, "3.00", domain.FormatAmount(decimal.NewFromInt(3)))
}
