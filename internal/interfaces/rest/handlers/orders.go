package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
)

type CreateOrderRequest struct {
	ReferenceID  string          `json:"reference_id"`
	CurrencyCode string          `json:"currency_code" validate:"omitempty,len=3"`
	BrandName    string          `json:"brand_name"`
	Contact      *ContactRequest `json:"contact"`
	Lines        []*LineRequest  `json:"lines"`
	ReturnURL    string          `json:"return_url"`
	CancelURL    string          `json:"cancel_url"`
}

type ContactRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Address     string `json:"address"`
	Street      string `json:"street"`
	Number      string `json:"number"`
	PostCode    string `json:"post_code"`
	City        string `json:"city"`
	CountryCode string `json:"country_code" validate:"omitempty,len=2"`
}

type LineRequest struct {
	ReferenceID string  `json:"reference_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxPercent  float64 `json:"tax_percent"`
}

type CreateOrderResponse struct {
	Token        string `json:"token"`
	ApprovalLink string `json:"approval_link"`
}

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.guard.Serve(w, r, nil, http.StatusCreated, func(context.Context) (any, error) {
			return nil, application.NewInvalidInputError(err)
		})
		return
	}

	h.guard.Serve(w, r, body, http.StatusCreated, func(ctx context.Context) (any, error) {
		var req CreateOrderRequest
		decoder := json.NewDecoder(bytes.NewReader(body))
		if err := decoder.Decode(&req); err != nil {
			return nil, application.NewInvalidInputError(err)
		}
		if err := h.validate.Struct(req); err != nil {
			return nil, application.NewInvalidInputError(err)
		}

		cmd, err := h.toCommand(&req, r)
		if err != nil {
			return nil, err
		}

		result, err := h.checkout.CreateOrder(ctx, cmd)
		if err != nil {
			return nil, err
		}

		h.logger.Info("order created", "reference_id", req.ReferenceID, "token", result.Token)
		return CreateOrderResponse{Token: result.Token, ApprovalLink: result.ApprovalLink}, nil
	})
}

func (h *Handlers) toCommand(req *CreateOrderRequest, r *http.Request) (services.CreateOrderCommand, error) {
	header := &domain.OrderHeader{
		ReferenceID:  req.ReferenceID,
		CurrencyCode: req.CurrencyCode,
		BrandName:    req.BrandName,
	}
	if header.CurrencyCode == "" {
		header.CurrencyCode = h.defaults.CurrencyCode
	}
	if header.BrandName == "" {
		header.BrandName = h.defaults.BrandName
	}

	var contact *domain.Contact
	if req.Contact != nil {
		contact = &domain.Contact{
			FirstName:   req.Contact.FirstName,
			LastName:    req.Contact.LastName,
			Mobile:      req.Contact.Mobile,
			PostCode:    req.Contact.PostCode,
			City:        req.Contact.City,
			Street:      req.Contact.Street,
			Number:      req.Contact.Number,
			CountryCode: req.Contact.CountryCode,
		}
		if err := contact.SetEmail(req.Contact.Email); err != nil {
			return services.CreateOrderCommand{}, err
		}
		if req.Contact.Address != "" {
			contact.SetAddress(req.Contact.Address)
		}
	}

	lines := make([]*domain.LineItem, len(req.Lines))
	for i, line := range req.Lines {
		if line == nil {
			continue
		}
		lines[i] = &domain.LineItem{
			ReferenceID: line.ReferenceID,
			Name:        line.Name,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TaxPercent:  line.TaxPercent,
		}
	}

	return services.CreateOrderCommand{
		Header:    header,
		Contact:   contact,
		Lines:     lines,
		ReturnURL: req.ReturnURL,
		CancelURL: req.CancelURL,
		Origin: services.RequestOrigin{
			Host:       r.Host,
			RequestURI: r.RequestURI,
		},
	}, nil
}
