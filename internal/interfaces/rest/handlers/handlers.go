package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-gateway/internal/interfaces/rest"
	"github.com/go-playground/validator"
)

// maxBodyBytes bounds request bodies read into memory for hashing.
const maxBodyBytes = 1 << 20

type CheckoutService interface {
	CreateOrder(ctx context.Context, cmd services.CreateOrderCommand) (*services.CreateOrderResult, error)
}

type CaptureService interface {
	Capture(ctx context.Context, cmd services.CaptureCommand) (*services.CaptureResult, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// OrderDefaults fill header fields the caller left empty.
type OrderDefaults struct {
	CurrencyCode string
	BrandName    string
}

type Handlers struct {
	checkout CheckoutService
	capture  CaptureService
	health   HealthChecker
	guard    *rest.IdempotencyGuard
	defaults OrderDefaults
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandlers(
	checkout CheckoutService,
	capture CaptureService,
	health HealthChecker,
	store application.IdempotencyStore,
	defaults OrderDefaults,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		checkout: checkout,
		capture:  capture,
		health:   health,
		guard:    rest.NewIdempotencyGuard(store, logger),
		defaults: defaults,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/orders", h.CreateOrder)
	mux.HandleFunc("POST /v1/orders/{token}/capture", h.CaptureOrder)
	mux.HandleFunc("GET /healthz", h.Health)
}
