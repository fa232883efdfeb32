package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

const DefaultCountryCode = "DE"

// OrderAssembler turns validated domain objects into the processor's order request.
type OrderAssembler struct {
	defaultCountry string
}

func NewOrderAssembler(defaultCountry string) *OrderAssembler {
	if defaultCountry == "" {
		defaultCountry = DefaultCountryCode
	}
	return &OrderAssembler{defaultCountry: defaultCountry}
}

// Assemble expects input that already passed domain.ValidateOrder.
func (a *OrderAssembler) Assemble(cmd CreateOrderCommand) (*application.OrderRequest, error) {
	if cmd.Header == nil || cmd.Contact == nil {
		return nil, domain.NewInternalInvariantError("order assembled without header or contact")
	}

	currency := cmd.Header.CurrencyCode
	items := make([]application.Item, 0, len(cmd.Lines))

	for i, line := range cmd.Lines {
		if line == nil {
			return nil, domain.NewInternalInvariantError(fmt.Sprintf("order line %d is not a line item", i+1))
		}

		// Items carry rounded unit amounts while item_total sums line-rounded amounts, so
		// unit_amount x quantity can differ from item_total by cents (3 x 0.3333 gives
		// 0.99 against 1.00). Both sides are required as they are; do not align them.
		items = append(items, application.Item{
			Name:        line.Name,
			Description: line.Description,
			Quantity:    strconv.FormatFloat(line.Quantity, 'f', -1, 64),
			UnitAmount:  money(currency, decimal.NewFromFloat(line.NetAmount(true))),
			Tax:         money(currency, decimal.NewFromFloat(line.TaxAmount(true))),
		})
	}

	totals := domain.ComputeTotals(cmd.Lines)

	country := cmd.Contact.CountryCode
	if country == "" {
		country = a.defaultCountry
	}

	return &application.OrderRequest{
		Intent: application.IntentCapture,
		PurchaseUnits: []application.PurchaseUnit{
			{
				ReferenceID: cmd.Header.ReferenceID,
				Amount: application.Amount{
					CurrencyCode: currency,
					Value:        domain.FormatAmount(totals.Gross),
					Breakdown: &application.Breakdown{
						ItemTotal: money(currency, totals.Net),
						TaxTotal:  money(currency, totals.Tax),
					},
				},
				Items: items,
				Shipping: application.Shipping{
					Type: application.ShippingTypeShip,
					Name: application.ShippingName{FullName: cmd.Contact.FullName()},
					Address: application.ShippingAddress{
						AddressLine1: cmd.Contact.Address(),
						AdminArea2:   cmd.Contact.City,
						PostalCode:   cmd.Contact.PostCode,
						CountryCode:  country,
					},
				},
			},
		},
		ApplicationContext: application.ApplicationContext{
			ReturnURL:  resolveURL(cmd.ReturnURL, cmd.Origin.Host, ""),
			CancelURL:  resolveURL(cmd.CancelURL, cmd.Origin.Host, cmd.Origin.RequestURI),
			BrandName:  cmd.Header.BrandName,
			UserAction: application.UserActionPayNow,
		},
	}, nil
}

func money(currency string, amount decimal.Decimal) application.Money {
	return application.Money{CurrencyCode: currency, Value: domain.FormatAmount(amount)}
}

// resolveURL keeps absolute http(s) URLs, anchors relative paths on host and falls back
// to https://host+fallbackPath when raw is empty.
func resolveURL(raw, host, fallbackPath string) string {
	if raw == "" {
		return "https://" + host + fallbackPath
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return "https://" + host + raw
}
