package request

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"unipick/pkg/requestcontext"
)

func TestRequestID(t *testing.T) {
	capture := func(out *string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*out = requestcontext.RequestID(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("generates UUID when no header provided", func(t *testing.T) {
		var captured string
		w := httptest.NewRecorder()
		RequestID(capture(&captured)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/survey", nil))

		assert.Len(t, captured, 36)
		assert.Equal(t, captured, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps a valid client-provided ID", func(t *testing.T) {
		var captured string
		req := httptest.NewRequest(http.MethodGet, "/survey", nil)
		req.Header.Set("X-Request-ID", "trace.span_1234")
		w := httptest.NewRecorder()
		RequestID(capture(&captured)).ServeHTTP(w, req)

		assert.Equal(t, "trace.span_1234", captured)
	})

	t.Run("replaces IDs that could pollute logs", func(t *testing.T) {
		for _, bad := range []string{"id\ninjected", "id with spaces", "<script>", strings.Repeat("a", MaxRequestIDLength+1)} {
			var captured string
			req := httptest.NewRequest(http.MethodGet, "/survey", nil)
			req.Header.Set("X-Request-ID", bad)
			RequestID(capture(&captured)).ServeHTTP(httptest.NewRecorder(), req)

			assert.NotEqual(t, bad, captured)
			assert.Len(t, captured, 36)
		}
	})

	t.Run("stores user agent for identity logging", func(t *testing.T) {
		var ua string
		req := httptest.NewRequest(http.MethodGet, "/survey", nil)
		req.Header.Set("User-Agent", "Mozilla/5.0")
		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = requestcontext.UserAgent(r.Context())
		})).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "Mozilla/5.0", ua)
	})
}

func TestContentTypeJSON(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	t.Run("rejects form posts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/survey/sessions", strings.NewReader("a=b"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		ContentTypeJSON(ok).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("accepts json with charset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/survey/sessions/1", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		w := httptest.NewRecorder()
		ContentTypeJSON(ok).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/result", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestLatencyMiddlewareUsesRoutePattern(t *testing.T) {
	m := NewMetricsWith(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(LatencyMiddleware(m))
	ok := func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "ok") }
	r.Get("/api/survey/sessions/{id}", ok)
	r.Patch("/api/survey/sessions/{id}", ok)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/survey/sessions/sess-1", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/survey/sessions/sess-2", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/survey/sessions/sess-3", nil))

	assert.Equal(t, 2, testutil.CollectAndCount(m.EndpointLatency))
	patch := m.EndpointLatency.WithLabelValues(http.MethodPatch, "/api/survey/sessions/{id}").(prometheus.Histogram)
	assert.Equal(t, 1, testutil.CollectAndCount(patch))
}

func TestNewMetricsWithIsolatesRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetricsWith(prometheus.NewRegistry())
		NewMetricsWith(prometheus.NewRegistry())
	})
}
