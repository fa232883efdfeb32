package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
	"github.com/DanielPopoola/checkout-gateway/internal/application/mocks"
	"github.com/DanielPopoola/checkout-gateway/internal/application/services"
	"github.com/DanielPopoola/checkout-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testToken = "5O190127TN364715T"

type CaptureServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	mockGateway    *mocks.MockGateway
	captureService *services.CaptureService
}

func TestCaptureServiceSuite(t *testing.T) {
	suite.Run(t, new(CaptureServiceTestSuite))
}

func (suite *CaptureServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockGateway = mocks.NewMockGateway(suite.T())
	suite.captureService = services.NewCaptureService(
		suite.mockGateway,
		application.NewErrorPolicy(true, false, "try later"),
		discardLogger(),
	)
}

func (suite *CaptureServiceTestSuite) alreadyCaptured() {
	suite.mockGateway.EXPECT().
		CaptureOrder(mock.Anything, testToken).
		Return(nil, &application.ProcessorError{
			StatusCode: 422,
			Name:       "UNPROCESSABLE_ENTITY",
			Message:    `{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"ORDER_ALREADY_CAPTURED"}]}`,
		}).
		Once()

	suite.mockGateway.EXPECT().
		GetOrder(mock.Anything, testToken).
		Return(&application.GetOrderResponse{StatusCode: 200, Status: "COMPLETED", CaptureID: "cap-existing"}, nil).
		Once()
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (suite *CaptureServiceTestSuite) Test_Capture_Success() {
	t := suite.T()

	suite.mockGateway.EXPECT().
		CaptureOrder(mock.Anything, testToken).
		Return(&application.CaptureOrderResponse{StatusCode: 201, CaptureID: "cap-123"}, nil).
		Once()
	suite.mockGateway.EXPECT().
		GetOrder(mock.Anything, testToken).
		Return(&application.GetOrderResponse{StatusCode: 200, Status: "COMPLETED", CaptureID: "cap-123"}, nil).
		Once()

	result, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{Token: testToken})
	require.NoError(t, err)

	assert.Equal(t, "cap-123", result.CaptureID)
	assert.Equal(t, domain.CaptureCaptured, result.State)
	assert.True(t, result.Success)
	assert.False(t, result.AlreadyCaptured)
}

// ============================================================================
// ALREADY CAPTURED TESTS
// ============================================================================

func (suite *CaptureServiceTestSuite) Test_Capture_AlreadyCapturedIsReported() {
	t := suite.T()
	suite.alreadyCaptured()

	result, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{Token: testToken})

	assert.Nil(t, result)
	assert.True(t, application.IsAlreadyCaptured(err))
	assert.Equal(t, 409, application.ToHTTPStatus(err))
	assert.Contains(t, err.Error(), "cap-existing")
}

func (suite *CaptureServiceTestSuite) Test_Capture_AlreadyCapturedIgnored() {
	t := suite.T()
	suite.alreadyCaptured()

	result, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{
		Token:                 testToken,
		IgnoreAlreadyCaptured: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "cap-existing", result.CaptureID)
	assert.True(t, result.Success)
	assert.True(t, result.AlreadyCaptured)
}

func (suite *CaptureServiceTestSuite) Test_Capture_UnprocessableWithoutExistingCapture() {
	t := suite.T()

	suite.mockGateway.EXPECT().
		CaptureOrder(mock.Anything, testToken).
		Return(nil, &application.ProcessorError{StatusCode: 422, Message: "{}"}).
		Once()
	suite.mockGateway.EXPECT().
		GetOrder(mock.Anything, testToken).
		Return(&application.GetOrderResponse{StatusCode: 200, Status: "APPROVED", Message: "payer action required"}, nil).
		Once()

	_, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{Token: testToken, IgnoreAlreadyCaptured: true})

	gwErr, ok := application.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "StatusCode: 200 Error: payer action required", gwErr.Error())
	assert.False(t, application.IsAlreadyCaptured(err))
}

func (suite *CaptureServiceTestSuite) Test_Capture_LookupAfterUnprocessableFails() {
	t := suite.T()

	suite.mockGateway.EXPECT().
		CaptureOrder(mock.Anything, testToken).
		Return(nil, &application.ProcessorError{StatusCode: 422, Message: "{}"}).
		Once()
	suite.mockGateway.EXPECT().
		GetOrder(mock.Anything, testToken).
		Return(nil, &application.ProcessorError{StatusCode: 404, Message: "not found"}).
		Once()

	_, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{Token: testToken})

	assert.EqualError(t, err, "StatusCode: 404 Error: not found")
}

// ============================================================================
// FAILURE TESTS
// ============================================================================

func (suite *CaptureServiceTestSuite) Test_Capture_OtherProcessorErrorsAreNotRecovered() {
	t := suite.T()

	suite.mockGateway.EXPECT().
		CaptureOrder(mock.Anything, testToken).
		Return(nil, &application.ProcessorError{StatusCode: 500, Message: "boom"}).
		Once()

	_, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{Token: testToken})

	assert.EqualError(t, err, "StatusCode: 500 Error: boom")
	suite.mockGateway.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func (suite *CaptureServiceTestSuite) Test_Capture_MissingCaptureID() {
	t := suite.T()

	suite.mockGateway.EXPECT().
		CaptureOrder(mock.Anything, testToken).
		Return(&application.CaptureOrderResponse{StatusCode: 201}, nil).
		Once()

	_, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{Token: testToken})

	_, ok := application.IsGatewayError(err)
	assert.True(t, ok)
}

func (suite *CaptureServiceTestSuite) Test_Capture_ConfirmatoryReadFails() {
	t := suite.T()

	suite.mockGateway.EXPECT().
		CaptureOrder(mock.Anything, testToken).
		Return(&application.CaptureOrderResponse{StatusCode: 201, CaptureID: "cap-123"}, nil).
		Once()
	suite.mockGateway.EXPECT().
		GetOrder(mock.Anything, testToken).
		Return(nil, errors.New("connection reset")).
		Once()

	_, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{Token: testToken})

	assert.EqualError(t, err, "StatusCode: n/a Error: connection reset")
}

func (suite *CaptureServiceTestSuite) Test_Capture_EmptyToken() {
	t := suite.T()

	_, err := suite.captureService.Capture(suite.ctx, services.CaptureCommand{})

	_, ok := domain.IsValidationError(err)
	assert.True(t, ok)
}
