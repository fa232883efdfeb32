package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/application/mocks"
	"github.com/DanielPopoola/checkout-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCheckoutService(gateway application.Gateway, sandbox bool) *services.CheckoutService {
	return services.NewCheckoutService(
		gateway,
		services.NewOrderAssembler("DE"),
		application.NewErrorPolicy(sandbox, false, "try later"),
		discardLogger(),
	)
}

func TestCheckoutService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("returns token and approval link", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		gateway.EXPECT().
			CreateOrder(mock.Anything, mock.MatchedBy(func(req *application.OrderRequest) bool {
				return req.PurchaseUnits[0].ReferenceID == "order-1001"
			})).
			Return(&application.CreateOrderResponse{
				StatusCode:   201,
				Token:        "5O190127TN364715T",
				ApprovalLink: "https://www.sandbox.paypal.com/checkoutnow?token=5O190127TN364715T",
			}, nil).
			Once()

		result, err := newCheckoutService(gateway, true).CreateOrder(ctx, defaultCreateOrderCommand())

		require.NoError(t, err)
		assert.Equal(t, "5O190127TN364715T", result.Token)
		assert.Contains(t, result.ApprovalLink, "checkoutnow")
	})

	t.Run("invalid order never reaches the gateway", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		cmd := defaultCreateOrderCommand()
		cmd.Header.ReferenceID = ""
		cmd.Contact.City = ""

		_, err := newCheckoutService(gateway, true).CreateOrder(ctx, cmd)

		validationErr, ok := domain.IsValidationError(err)
		require.True(t, ok)
		assert.Len(t, validationErr.Violations, 2)
		gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("missing approval link", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		gateway.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(&application.CreateOrderResponse{StatusCode: 201, Token: "5O190127TN364715T"}, nil).
			Once()

		_, err := newCheckoutService(gateway, true).CreateOrder(ctx, defaultCreateOrderCommand())

		gwErr, ok := application.IsGatewayError(err)
		require.True(t, ok)
		assert.Contains(t, gwErr.Error(), "StatusCode: 201")
		assert.Contains(t, gwErr.Error(), "did not return a confirmation URL")
	})

	t.Run("unexpected status", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		gateway.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(&application.CreateOrderResponse{StatusCode: 202}, nil).
			Once()

		_, err := newCheckoutService(gateway, true).CreateOrder(ctx, defaultCreateOrderCommand())

		assert.ErrorContains(t, err, "StatusCode: 202")
	})

	t.Run("processor error is verbose in sandbox", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		gateway.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(nil, &application.ProcessorError{StatusCode: 400, Message: `{"name":"INVALID_REQUEST"}`}).
			Once()

		_, err := newCheckoutService(gateway, true).CreateOrder(ctx, defaultCreateOrderCommand())

		assert.EqualError(t, err, "StatusCode: 400 Error: name: INVALID_REQUEST")
	})

	t.Run("processor error is generic in production", func(t *testing.T) {
		gateway := mocks.NewMockGateway(t)
		gateway.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(nil, errors.New("dial tcp: connection refused")).
			Once()

		_, err := newCheckoutService(gateway, false).CreateOrder(ctx, defaultCreateOrderCommand())

		assert.EqualError(t, err, "try later")
		assert.Equal(t, application.ErrCodeGateway, application.ToErrorCode(err))
	})
}
