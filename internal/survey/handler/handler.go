package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"unipick/internal/survey/models"
	dErrors "unipick/pkg/domain-errors"
	"unipick/pkg/platform/httputil"
	"unipick/pkg/requestcontext"
)

// Service defines the wizard operations the handler drives.
type Service interface {
	Start(ctx context.Context, userID, countryParam string) (*models.Session, error)
	Get(ctx context.Context, userID, id string) (*models.Session, error)
	Apply(ctx context.Context, userID, id string, patch []byte) (*models.Session, error)
	Toggle(ctx context.Context, userID, id, field, option string) (*models.Session, error)
	Next(ctx context.Context, userID, id string) (*models.Session, error)
	Back(ctx context.Context, userID, id string) (*models.Session, error)
	Submit(ctx context.Context, userID, id string) (*models.Session, error)
	Discard(ctx context.Context, userID, id string) error
	Schema(countryParam string) (models.Country, []models.FieldSpec, error)
}

// Handler serves the survey wizard API.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new survey Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the wizard routes under /api/survey.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/survey", func(r chi.Router) {
		r.Get("/options", h.HandleOptions)
		r.Post("/sessions", h.HandleStart)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGet)
			r.Patch("/", h.HandleApply)
			r.Delete("/", h.HandleDiscard)
			r.Post("/toggle", h.HandleToggle)
			r.Post("/next", h.HandleNext)
			r.Post("/back", h.HandleBack)
			r.Post("/submit", h.HandleSubmit)
		})
	})
}

// HandleOptions describes the form for ?country=, defaulting to USA.
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	country, fields, err := h.service.Schema(r.URL.Query().Get("country"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, OptionsResponse{Country: country, Fields: fields})
}

// HandleStart opens a session. The country comes from the body, else from
// the ?country= navigation parameter.
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, ok := h.requireUser(w, ctx)
	if !ok {
		return
	}

	country := r.URL.Query().Get("country")
	if r.ContentLength != 0 {
		req, ok := httputil.DecodeAndPrepare[StartRequest](w, r, h.logger, ctx, requestID)
		if !ok {
			return
		}
		if req.Country != "" {
			country = req.Country
		}
	}

	session, err := h.service.Start(ctx, userID, country)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to start survey session",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "get", func(ctx context.Context, userID, id string) (*models.Session, error) {
		return h.service.Get(ctx, userID, id)
	})
}

// HandleApply merges a partial answer update; the body is the patch itself.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patch, ok := httputil.ReadBody(w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	h.respond(w, r, "apply", func(ctx context.Context, userID, id string) (*models.Session, error) {
		return h.service.Apply(ctx, userID, id, patch)
	})
}

func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ToggleRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	h.respond(w, r, "toggle", func(ctx context.Context, userID, id string) (*models.Session, error) {
		return h.service.Toggle(ctx, userID, id, req.Field, req.Option)
	})
}

func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "next", func(ctx context.Context, userID, id string) (*models.Session, error) {
		return h.service.Next(ctx, userID, id)
	})
}

func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "back", func(ctx context.Context, userID, id string) (*models.Session, error) {
		return h.service.Back(ctx, userID, id)
	})
}

// HandleSubmit posts the completed form. Validation failures answer 422 with
// every field error; a failed backend call answers 502 with the retry notice.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID, ok := h.requireUser(w, ctx)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	session, err := h.service.Submit(ctx, userID, id)
	if err != nil {
		h.logger.WarnContext(ctx, "survey submit did not complete",
			"request_id", requestID,
			"session_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SubmitResponse{
		EvaluationID: session.EvaluationID,
		Redirect:     ResultPath(session.EvaluationID),
	})
}

func (h *Handler) HandleDiscard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requireUser(w, ctx)
	if !ok {
		return
	}
	if err := h.service.Discard(ctx, userID, chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, op string, call func(ctx context.Context, userID, id string) (*models.Session, error)) {
	ctx := r.Context()
	userID, ok := h.requireUser(w, ctx)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	session, err := call(ctx, userID, id)
	if err != nil {
		h.logger.WarnContext(ctx, "survey operation failed",
			"operation", op,
			"request_id", requestcontext.RequestID(ctx),
			"session_id", id,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toSessionResponse(session))
}

func (h *Handler) requireUser(w http.ResponseWriter, ctx context.Context) (string, bool) {
	userID := requestcontext.UserID(ctx)
	if userID == "" {
		h.logger.ErrorContext(ctx, "anonymous identity missing from context despite identity middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "identity context error"))
		return "", false
	}
	return userID, true
}
