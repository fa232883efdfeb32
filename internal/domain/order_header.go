package domain

const DefaultCurrencyCode = "EUR"

// OrderHeader is order-level metadata. ReferenceID is normally the shop's order id.
type OrderHeader struct {
	ReferenceID  string
	CurrencyCode string
	BrandName    string
}
