package identity

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"unipick/pkg/platform/httputil"
	"unipick/pkg/requestcontext"
)

// Handler exposes the current anonymous identity to the browser.
type Handler struct {
	codec  *CookieCodec
	logger *slog.Logger
}

func NewHandler(codec *CookieCodec, logger *slog.Logger) *Handler {
	return &Handler{codec: codec, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/identity", h.HandleGet)
	r.Delete("/api/identity", h.HandleClear)
}

type Response struct {
	ID string `json:"id"`
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, Response{ID: requestcontext.UserID(r.Context())})
}

// HandleClear drops the identity cookie; the next request mints a new id.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ClearAnonymousUserID(ctx, h.codec.ForRequest(w, r))
	h.logger.InfoContext(ctx, "anonymous identity cleared",
		"user_id", requestcontext.UserID(ctx),
		"request_id", requestcontext.RequestID(ctx),
	)
	w.WriteHeader(http.StatusNoContent)
}
