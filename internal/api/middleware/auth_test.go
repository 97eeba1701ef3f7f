package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID int64
	var gotOK bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set(HeaderUserID, "42")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, gotOK)
		assert.Equal(t, int64(42), gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-numeric header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set(HeaderUserID, "alice")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-positive id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
		req.Header.Set(HeaderUserID, "0")
		rec := httptest.NewRecorder()

		Auth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := RequestIDFromContext(r.Context())
		assert.True(t, ok)
		assert.NotEmpty(t, requestID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		RequestID(next).ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		rec := httptest.NewRecorder()

		RequestID(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	})
}
