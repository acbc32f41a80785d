package identity

import (
	"log/slog"
	"net/http"

	"github.com/mssola/useragent"

	"unipick/internal/platform/privacy"
	"unipick/pkg/requestcontext"
)

// Middleware resolves the anonymous id once per request from the identity
// cookie, minting it on first visit, and stores it in the request context.
func Middleware(codec *CookieCodec, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id, minted, err := Resolve(ctx, codec.ForRequest(w, r))
			if err != nil {
				logger.WarnContext(ctx, "anonymous identity unavailable",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
			}
			if minted {
				ua := useragent.New(r.UserAgent())
				browser, version := ua.Browser()
				logger.InfoContext(ctx, "anonymous identity issued",
					"user_id", id,
					"browser", browser,
					"browser_version", version,
					"mobile", ua.Mobile(),
					"client_network", privacy.ClientNetwork(r.RemoteAddr),
					"request_id", requestcontext.RequestID(ctx),
				)
			}
			next.ServeHTTP(w, r.WithContext(requestcontext.WithUserID(ctx, id)))
		})
	}
}
