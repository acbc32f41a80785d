package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	dErrors "unipick/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Country string `json:"country"`
	Page    int    `json:"page"`
}

type validatingRequest struct {
	Country    string `json:"country"`
	normalized bool
}

func (r *validatingRequest) Normalize() {
	r.normalized = true
}

func (r *validatingRequest) Validate() error {
	if r.Country == "" {
		return errors.New("country is required")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("successful decode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"country":"UK","page":2}`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[testRequest](w, req, discardLogger(), ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "UK", result.Country)
		assert.Equal(t, 2, result.Page)
	})

	t.Run("invalid JSON writes 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{invalid`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[testRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes then validates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"country":"UK"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[validatingRequest](w, req, discardLogger(), ctx, "req-1")

		require.True(t, ok)
		assert.True(t, result.normalized)
	})

	t.Run("plain validation error maps to 422", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[validatingRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestWriteError(t *testing.T) {
	t.Run("validation error carries fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.NewValidation("form incomplete", map[string]string{"ucas_route": "ucas_route is required"}))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "validation_error", body.Error)
		assert.Contains(t, body.Fields, "ucas_route")
	})

	t.Run("unavailable maps to 502", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeUnavailable, "提交失败，请稍后重试"))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("foreign errors become 500 without details", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("secret internals"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret internals")
	})
}
