package paypal

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type captureRef struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type orderPurchaseUnit struct {
	ReferenceID string `json:"reference_id"`
	Payments    struct {
		Captures []captureRef `json:"captures"`
	} `json:"payments"`
}

// orderResponse covers the parts of the order resource the gateway reads.
type orderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	Message       string              `json:"message"`
	Links         []link              `json:"links"`
	PurchaseUnits []orderPurchaseUnit `json:"purchase_units"`
}

func (o *orderResponse) approvalLink() string {
	for _, l := range o.Links {
		if l.Rel == "approve" || l.Rel == "payer-action" {
			return l.Href
		}
	}
	return ""
}

func (o *orderResponse) captureID() string {
	if len(o.PurchaseUnits) == 0 || len(o.PurchaseUnits[0].Payments.Captures) == 0 {
		return ""
	}
	return o.PurchaseUnits[0].Payments.Captures[0].ID
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	DebugID string `json:"debug_id"`
	// OAuth endpoint style
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
