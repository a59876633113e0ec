package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConstructorsMapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
		typ    ErrorType
	}{
		{"validation", NewValidationError("email is required"), http.StatusBadRequest, ErrorTypeValidation},
		{"not found", NewNotFoundError("session"), http.StatusNotFound, ErrorTypeNotFound},
		{"unauthorized", NewUnauthorizedError(""), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{"rate limit", NewRateLimitError(10, "1m0s"), http.StatusTooManyRequests, ErrorTypeRateLimit},
		{"not implemented", NewNotImplementedError("oauth not configured"), http.StatusNotImplemented, ErrorTypeNotImplemented},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
		{"unavailable", NewUnavailableError("search"), http.StatusServiceUnavailable, ErrorTypeUnavailable},
		{"external", NewExternalError("search", fmt.Errorf("down")), http.StatusBadGateway, ErrorTypeExternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.True(t, IsType(tt.err, tt.typ))
		})
	}

	assert.Equal(t, "session not found", NewNotFoundError("session").Message)
	assert.Equal(t, "unauthorized", NewUnauthorizedError("").Message)
}

func TestWrapKeepsAppErrorType(t *testing.T) {
	wrapped := Wrap(NewNotFoundError("user"), "resolve identity")
	require.True(t, IsNotFound(wrapped))
	assert.Equal(t, "resolve identity: user not found", GetAppError(wrapped).Message)

	plain := Wrap(fmt.Errorf("disk full"), "save")
	assert.True(t, IsType(plain, ErrorTypeInternal))
	assert.Nil(t, Wrap(nil, "noop"))

	chained := fmt.Errorf("outer: %w", NewValidationError("bad"))
	assert.True(t, IsValidation(chained))
}

func TestErrorHandlerWritesJSON(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)

	t.Run("app error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/users/x", nil)
		r.Header.Set("X-Request-ID", "req-1")

		h.Handle(w, r, NewNotFoundError("user"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Error)
		assert.Equal(t, "NOT_FOUND", body.Type)
		assert.Equal(t, "user not found", body.Message)
		assert.Equal(t, "req-1", body.RequestID)
	})

	t.Run("plain error hides message", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		h.Handle(w, r, fmt.Errorf("secret detail"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret detail")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		assert.Equal(t, 0, w.Body.Len())
	})
}

func TestMiddlewareRecoversPanic(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	handler := h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "panic: test panic")
}
