package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/api"
	"github.com/DanielPopoola/checkout-gateway/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecovery(t *testing.T) {
	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`, rec.Body.String())
}

func TestTimeout(t *testing.T) {
	t.Run("handler sees the deadline", func(t *testing.T) {
		handler := middleware.Timeout(time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := r.Context().Deadline()
			assert.True(t, ok)
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("stuck handler gets the timeout body", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		handler := middleware.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"TIMEOUT"`)
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/orders", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"bytes":15`)
}

func TestLogging_AssignsRequestID(t *testing.T) {
	handler := middleware.Logging(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, rec.Header().Get(middleware.RequestIDHeader), 36)
}

func TestOpenAPIValidator(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)
	validate, err := middleware.OpenAPIValidator(doc, discardLogger())
	require.NoError(t, err)

	var reached bool
	handler := validate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		reached = false
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid body passes and stays readable", func(t *testing.T) {
		body := `{"lines":[{"name":"Mug","quantity":1,"unit_price":5}]}`
		rec := serve(http.MethodPost, "/v1/orders", body)

		assert.True(t, reached)
		assert.JSONEq(t, body, rec.Body.String())
	})

	t.Run("missing fields are left to the domain validator", func(t *testing.T) {
		serve(http.MethodPost, "/v1/orders", `{"reference_id":"","lines":[{"description":"no name"}]}`)

		assert.True(t, reached)
	})

	t.Run("wrong types are rejected without the schema dump", func(t *testing.T) {
		rec := serve(http.MethodPost, "/v1/orders", `{"lines":[{"name":"Mug","quantity":"three"}]}`)

		assert.False(t, reached)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
		assert.Contains(t, rec.Body.String(), "quantity")
		assert.NotContains(t, rec.Body.String(), "Schema:")
		assert.NotContains(t, rec.Body.String(), "Value:")
	})

	t.Run("non boolean flag is rejected", func(t *testing.T) {
		rec := serve(http.MethodPost, "/v1/orders/T1/capture?ignore_already_captured=maybe", "")

		assert.False(t, reached)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `invalid query parameter \"ignore_already_captured\"`)
	})

	t.Run("paths outside the contract pass", func(t *testing.T) {
		serve(http.MethodGet, "/metrics", "")

		assert.True(t, reached)
	})
}
