package services

import "github.com/DanielPopoola/checkout-gateway/internal/domain"

// RequestOrigin is the incoming request that triggered order creation. It is used to
// complete relative or missing return and cancel URLs.
type RequestOrigin struct {
	Host       string
	RequestURI string
}

type CreateOrderCommand struct {
	Header    *domain.OrderHeader
	Contact   *domain.Contact
	Lines     []*domain.LineItem
	ReturnURL string
	CancelURL string
	Origin    RequestOrigin
}

type CaptureCommand struct {
	Token                 string
	IgnoreAlreadyCaptured bool
}

type CreateOrderResult struct {
	Token        string
	ApprovalLink string
}

type CaptureResult struct {
	Token           string
	CaptureID       string
	State           domain.CaptureState
	Success         bool
	AlreadyCaptured bool
}
