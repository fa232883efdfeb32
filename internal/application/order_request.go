package application

// Wire schema of a processor order. Field names follow the processor's public contract
// and must not change.

const (
	IntentCapture    = "CAPTURE"
	UserActionPayNow = "PAY_NOW"
	ShippingTypeShip = "SHIPPING"
)

type OrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
	ApplicationContext ApplicationContext `json:"application_context"`
}

type PurchaseUnit struct {
	ReferenceID string   `json:"reference_id"`
	Amount      Amount   `json:"amount"`
	Items       []Item   `json:"items"`
	Shipping    Shipping `json:"shipping"`
}

type Amount struct {
	CurrencyCode string     `json:"currency_code"`
	Value        string     `json:"value"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
}

type Breakdown struct {
	ItemTotal Money `json:"item_total"`
	TaxTotal  Money `json:"tax_total"`
}

type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type Item struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitAmount  Money  `json:"unit_amount"`
	Tax         Money  `json:"tax"`
}

type Shipping struct {
	Type    string          `json:"type,omitempty"`
	Name    ShippingName    `json:"name"`
	Address ShippingAddress `json:"address"`
}

type ShippingName struct {
	FullName string `json:"full_name"`
}

type ShippingAddress struct {
	AddressLine1 string `json:"address_line_1"`
	AdminArea2   string `json:"admin_area_2"`
	PostalCode   string `json:"postal_code"`
	CountryCode  string `json:"country_code"`
}

type ApplicationContext struct {
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
	BrandName  string `json:"brand_name"`
	UserAction string `json:"user_action"`
}
