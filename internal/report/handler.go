package report

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"unipick/internal/backend"
	dErrors "unipick/pkg/domain-errors"
	"unipick/pkg/platform/httputil"
	"unipick/pkg/requestcontext"
)

// Backend fetches stored evaluations.
type Backend interface {
	GetParentEvaluation(ctx context.Context, id string) (*backend.EvaluationRecord, error)
	ListParentEvaluations(ctx context.Context, userID string) ([]backend.EvaluationRecord, error)
}

// Handler serves result pages and their JSON view models.
type Handler struct {
	backend  Backend
	renderer *Renderer
	logger   *slog.Logger
}

func NewHandler(backend Backend, renderer *Renderer, logger *slog.Logger) *Handler {
	return &Handler{backend: backend, renderer: renderer, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/result", h.HandlePage)
	r.Get("/api/results", h.HandleList)
	r.Get("/api/results/{id}", h.HandleGet)
}

// Summary is one entry of the current user's evaluation history.
type Summary struct {
	ID            string `json:"id"`
	TargetCountry string `json:"target_country,omitempty"`
	Kind          Kind   `json:"kind"`
	CreatedAt     string `json:"created_at,omitempty"`
	URL           string `json:"url"`
}

// HandlePage renders /result?id=. Every failure resolves to an empty state
// page; backend errors are logged, never shown.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("id")
	country := r.URL.Query().Get("country")
	if id == "" {
		h.writeEmpty(w, r, http.StatusNotFound, NotFoundState(country))
		return
	}

	view, err := h.load(ctx, id)
	switch {
	case err == nil:
		var buf bytes.Buffer
		if err := h.renderer.Result(&buf, view); err != nil {
			h.logger.ErrorContext(ctx, "failed to render result",
				"request_id", requestcontext.RequestID(ctx),
				"evaluation_id", id,
				"error", err,
			)
			h.writeEmpty(w, r, http.StatusInternalServerError, UnavailableState(id, country))
			return
		}
		writeHTML(w, http.StatusOK, buf.Bytes())
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		h.writeEmpty(w, r, http.StatusNotFound, NotFoundState(country))
	default:
		h.writeEmpty(w, r, http.StatusOK, UnavailableState(id, country))
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

// HandleList returns the evaluations submitted under the current identity.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := requestcontext.UserID(ctx)
	if userID == "" {
		httputil.WriteJSON(w, http.StatusOK, []Summary{})
		return
	}
	records, err := h.backend.ListParentEvaluations(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to list evaluations",
			"request_id", requestcontext.RequestID(ctx),
			"category", backend.CategoryOf(err),
			"error", err,
		)
		httputil.WriteError(w, backend.DomainError(err, "evaluation"))
		return
	}
	out := make([]Summary, 0, len(records))
	for _, rec := range records {
		out = append(out, Summary{
			ID:            rec.ID,
			TargetCountry: rec.TargetCountry,
			Kind:          SelectView(rec.TargetCountry),
			CreatedAt:     rec.CreatedAt,
			URL:           "/result?id=" + url.QueryEscape(rec.ID),
		})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) load(ctx context.Context, id string) (*View, error) {
	record, err := h.backend.GetParentEvaluation(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to fetch evaluation",
			"request_id", requestcontext.RequestID(ctx),
			"evaluation_id", id,
			"category", backend.CategoryOf(err),
			"error", err,
		)
		return nil, backend.DomainError(err, "evaluation")
	}
	view, err := Build(record)
	if err != nil {
		h.logger.WarnContext(ctx, "evaluation payload could not be decoded",
			"request_id", requestcontext.RequestID(ctx),
			"evaluation_id", id,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "evaluation payload is malformed")
	}
	return view, nil
}

func (h *Handler) writeEmpty(w http.ResponseWriter, r *http.Request, status int, state EmptyState) {
	var buf bytes.Buffer
	if err := h.renderer.Empty(&buf, state); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render empty state",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		http.Error(w, state.Heading, status)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body) //nolint:errcheck // headers already sent
}
