package metrics

import (
	"context"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// InstrumentedGateway records request counts and latency for every processor call.
type InstrumentedGateway struct {
	inner    application.Gateway
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ application.Gateway = (*InstrumentedGateway)(nil)

func NewInstrumentedGateway(inner application.Gateway, reg prometheus.Registerer) *InstrumentedGateway {
	g := &InstrumentedGateway{
		inner: inner,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_requests_total",
				Help: "Total number of payment processor calls.",
			},
			[]string{"operation", "outcome", "category"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_request_duration_seconds",
				Help:    "Duration of payment processor calls in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	reg.MustRegister(g.requests, g.duration)
	return g
}

func (g *InstrumentedGateway) CreateOrder(ctx context.Context, req *application.OrderRequest) (*application.CreateOrderResponse, error) {
	defer g.observe("create_order", time.Now())
	resp, err := g.inner.CreateOrder(ctx, req)
	g.count("create_order", err)
	return resp, err
}

func (g *InstrumentedGateway) CaptureOrder(ctx context.Context, token string) (*application.CaptureOrderResponse, error) {
	defer g.observe("capture_order", time.Now())
	resp, err := g.inner.CaptureOrder(ctx, token)
	g.count("capture_order", err)
	return resp, err
}

func (g *InstrumentedGateway) GetOrder(ctx context.Context, token string) (*application.GetOrderResponse, error) {
	defer g.observe("get_order", time.Now())
	resp, err := g.inner.GetOrder(ctx, token)
	g.count("get_order", err)
	return resp, err
}

func (g *InstrumentedGateway) observe(operation string, start time.Time) {
	g.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (g *InstrumentedGateway) count(operation string, err error) {
	if err == nil {
		g.requests.WithLabelValues(operation, OutcomeSuccess, "").Inc()
		return
	}
	g.requests.WithLabelValues(operation, OutcomeError, string(application.CategorizeError(err))).Inc()
}
