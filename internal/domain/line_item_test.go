package domain_test

import (
	"testing"

	"github.com/DanielPopoola/checkout-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLineItem_UnitAmounts(t *testing.T) {
	line := &domain.LineItem{Name: "Mug", Description: "Blue mug", Quantity: 3, UnitPrice: 10, TaxPercent: 19}

	assert.Equal(t, 10.0, line.NetAmount(true))
	assert.Equal(t, 11.9, line.GrossAmount(true))
	assert.Equal(t, 1.9, line.TaxAmount(true))
	assert.InDelta(t, 1.9, line.TaxAmount(false), 1e-9)
}

func TestLineItem_LineAmounts(t *testing.T) {
	line := &domain.LineItem{Name: "Mug", Description: "Blue mug", Quantity: 3, UnitPrice: 10, TaxPercent: 19}

	assert.Equal(t, 30.0, line.LineNetAmount(true))
	assert.Equal(t, 5.7, line.LineTaxAmount(true))
	assert.Equal(t, 35.7, line.LineGrossAmount(true))
}

func TestLineItem_TaxIsRoundedOnce(t *testing.T) {
	line := &domain.LineItem{Quantity: 1, UnitPrice: 1.004, TaxPercent: 50}

	// rounding gross and net separately would give 1.51 - 1.00 = 0.51
	assert.Equal(t, 1.51, line.GrossAmount(true))
	assert.Equal(t, 1.0, line.NetAmount(true))
	assert.Equal(t, 0.5, line.TaxAmount(true))
}

func TestLineItem_LineAmountsUseUnroundedUnits(t *testing.T) {
	line := &domain.LineItem{Quantity: 3, UnitPrice: 0.3333}

	assert.Equal(t, 0.33, line.NetAmount(true))
	assert.Equal(t, 1.0, line.LineNetAmount(true))
	assert.InDelta(t, 0.9999, line.LineNetAmount(false), 1e-9)
}

func TestLineItem_AmountInvariants(t *testing.T) {
	cases := []struct {
		name       string
		unitPrice  float64
		taxPercent float64
		quantity   float64
	}{
		{"whole numbers", 10, 19, 3},
		{"reduced rate", 4.99, 7, 2},
		{"fractional cents", 0.3333, 19, 7},
		{"half cent", 1.005, 0, 1},
		{"high rate", 1.004, 50, 11},
		{"fractional quantity", 2.49, 19, 1.5},
		{"zero tax", 99.99, 0, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := &domain.LineItem{UnitPrice: tc.unitPrice, TaxPercent: tc.taxPercent, Quantity: tc.quantity}

			assert.InDelta(t, line.TaxAmount(false), line.GrossAmount(false)-line.NetAmount(false), 1e-9)
			assert.InDelta(t,
				domain.Round2(line.LineNetAmount(false)+line.LineTaxAmount(false)),
				line.LineGrossAmount(true),
				0.01+1e-9,
			)
		})
	}
}

func TestRound2(t *testing.T) {
	t.Run("rounds half away from zero", func(t *testing.T) {
		assert.Equal(t, 0.13, domain.Round2(0.125))
		assert.Equal(t, -0.13, domain.Round2(-0.125))
		assert.Equal(t, 1.01, domain.Round2(1.005))
		assert.Equal(t, 2.68, domain.Round2(2.675))
		assert.Equal(t, 0.12, domain.Round2(0.1249))
	})

	t.Run("is idempotent", func(t *testing.T) {
		for _, v := range []float64{0, 0.125, 1.005, 2.675, 0.9999, 123456.789, -7.455, 1e-9} {
			once := domain.Round2(v)
			assert.Equal(t, once, domain.Round2(once), "value %v", v)
		}
	})
}
