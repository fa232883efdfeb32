package domain

// LineItem is one purchasable entry of an order. UnitPrice is net.
//
// Every amount accessor takes a rounded flag: false returns full precision for further
// math, true returns the two-decimal money value. Callers must not mix both modes
// within one total.
type LineItem struct {
	ReferenceID string
	Name        string
	Description string
	Quantity    float64
	UnitPrice   float64
	TaxPercent  float64
}

func (l *LineItem) NetAmount(rounded bool) float64 {
	return maybeRound(l.UnitPrice, rounded)
}

func (l *LineItem) GrossAmount(rounded bool) float64 {
	return maybeRound(l.UnitPrice*(1+l.TaxPercent/100), rounded)
}

// TaxAmount is derived from the unrounded gross and net so rounding happens only once.
func (l *LineItem) TaxAmount(rounded bool) float64 {
	return maybeRound(l.GrossAmount(false)-l.NetAmount(false), rounded)
}

func (l *LineItem) LineNetAmount(rounded bool) float64 {
	return maybeRound(l.NetAmount(false)*l.Quantity, rounded)
}

func (l *LineItem) LineTaxAmount(rounded bool) float64 {
	return maybeRound(l.TaxAmount(false)*l.Quantity, rounded)
}

func (l *LineItem) LineGrossAmount(rounded bool) float64 {
	return maybeRound(l.GrossAmount(false)*l.Quantity, rounded)
}
