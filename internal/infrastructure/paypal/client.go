package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/config"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	SandboxBaseURL = "https://api-m.sandbox.paypal.com"
	LiveBaseURL    = "https://api-m.paypal.com"

	tracerName = "github.com/DanielPopoola/checkout-gateway/internal/infrastructure/paypal"
)

// Client talks to the PayPal Orders v2 API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenSource
	tracer     trace.Tracer
	debug      bool
	logger     *slog.Logger
}

var _ application.Gateway = (*Client)(nil)

func NewClient(cfg config.PayPalConfig, retryCfg config.RetryConfig, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = LiveBaseURL
		if cfg.Sandbox {
			baseURL = SandboxBaseURL
		}
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tokens: &tokenSource{
			url:        baseURL + "/v1/oauth2/token",
			clientID:   cfg.ClientID,
			secret:     cfg.ClientSecret,
			httpClient: httpClient,
			baseDelay:  retryCfg.BaseDelay,
			maxRetries: int(retryCfg.MaxRetries),
		},
		tracer: otel.Tracer(tracerName),
		debug:  cfg.Debug,
		logger: logger,
	}
}

// WithTracerProvider replaces the global provider the client records spans with.
func (c *Client) WithTracerProvider(tp trace.TracerProvider) *Client {
	c.tracer = tp.Tracer(tracerName)
	return c
}

func (c *Client) CreateOrder(ctx context.Context, req *application.OrderRequest) (*application.CreateOrderResponse, error) {
	endpoint := c.baseURL + "/v2/checkout/orders"
	headers := map[string]string{"PayPal-Request-Id": uuid.NewString()}

	order, status, err := sendRequest[application.OrderRequest, orderResponse](c, ctx, "create_order", http.MethodPost, endpoint, req, headers)
	if err != nil {
		return nil, err
	}

	return &application.CreateOrderResponse{
		StatusCode:   status,
		Token:        order.ID,
		ApprovalLink: order.approvalLink(),
	}, nil
}

func (c *Client) CaptureOrder(ctx context.Context, token string) (*application.CaptureOrderResponse, error) {
	endpoint := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.baseURL, url.PathEscape(token))

	order, status, err := sendRequest[struct{}, orderResponse](c, ctx, "capture_order", http.MethodPost, endpoint, &struct{}{}, nil)
	if err != nil {
		return nil, err
	}

	return &application.CaptureOrderResponse{
		StatusCode: status,
		CaptureID:  order.captureID(),
	}, nil
}

func (c *Client) GetOrder(ctx context.Context, token string) (*application.GetOrderResponse, error) {
	endpoint := fmt.Sprintf("%s/v2/checkout/orders/%s", c.baseURL, url.PathEscape(token))

	order, status, err := sendRequest[any, orderResponse](c, ctx, "get_order", http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	return &application.GetOrderResponse{
		StatusCode: status,
		Status:     order.Status,
		CaptureID:  order.captureID(),
		Message:    order.Message,
	}, nil
}

func sendRequest[Req any, Resp any](c *Client, ctx context.Context, operation, method, endpoint string, reqBody *Req, headers map[string]string) (*Resp, int, error) {
	ctx, span := c.tracer.Start(ctx, "paypal."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", endpoint),
		),
	)
	defer span.End()

	resp, status, err := doRequest[Req, Resp](c, ctx, method, endpoint, reqBody, headers)
	if status > 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, operation+" failed")
		return nil, status, err
	}

	return resp, status, nil
}

func doRequest[Req any, Resp any](c *Client, ctx context.Context, method, endpoint string, reqBody *Req, headers map[string]string) (*Resp, int, error) {
	accessToken, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, 0, err
	}

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, 0, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
		if c.debug {
			c.logger.Debug("paypal request", "method", method, "url", endpoint, "body", string(jsonData))
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Prefer", "return=representation")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("error reading response: %w", err)
	}

	if c.debug {
		c.logger.Debug("paypal response", "method", method, "url", endpoint, "status", resp.StatusCode, "body", string(body))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.tokens.Invalidate()
		}
		return nil, resp.StatusCode, newProcessorError(resp.StatusCode, body)
	}

	var out Resp
	if len(body) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, resp.StatusCode, fmt.Errorf("error decoding json response: %w", err)
		}
	}

	return &out, resp.StatusCode, nil
}
