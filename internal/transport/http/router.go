package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unipick/internal/identity"
	"unipick/pkg/platform/middleware/request"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// Registrar mounts a feature's routes.
type Registrar interface {
	Register(r chi.Router)
}

// Dependencies are the pieces NewRouter mounts. Probes and /metrics sit
// outside the identity group so they never mint cookies.
type Dependencies struct {
	Identity     *identity.CookieCodec
	Health       Registrar
	Metrics      *request.Metrics
	MaxBodyBytes int64
	Routes       []Registrar
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(deps Dependencies, logger *slog.Logger) http.Handler {
	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(logger))
	r.Use(request.BodyLimit(maxBody))
	r.Use(request.LatencyMiddleware(deps.Metrics))

	if deps.Health != nil {
		deps.Health.Register(r)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(request.ContentTypeJSON)
		r.Use(identity.Middleware(deps.Identity, logger))
		identity.NewHandler(deps.Identity, logger).Register(r)
		for _, route := range deps.Routes {
			route.Register(r)
		}
	})
	return r
}
