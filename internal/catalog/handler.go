// Package catalog proxies the university catalog and the student
// personality test to the recommendation backend.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"unipick/internal/backend"
	dErrors "unipick/pkg/domain-errors"
	"unipick/pkg/platform/httputil"
	"unipick/pkg/requestcontext"
)

// Backend is the subset of the REST client the catalog routes use.
type Backend interface {
	ListUniversities(ctx context.Context, q backend.UniversityQuery) (*backend.UniversityPage, error)
	GetUniversity(ctx context.Context, id int) (*backend.University, error)
	ListCountries(ctx context.Context) ([]string, error)
	ListStrengths(ctx context.Context) ([]string, error)
	GetInternationalUniversity(ctx context.Context, region backend.Region, id string) (json.RawMessage, error)
	CreateStudentTest(ctx context.Context, req backend.StudentTestRequest) (*backend.Created, error)
	GetStudentTest(ctx context.Context, id string) (*backend.StudentTestRecord, error)
	ListStudentTests(ctx context.Context, userID string) ([]backend.StudentTestRecord, error)
}

type Handler struct {
	backend Backend
	logger  *slog.Logger
}

func New(backend Backend, logger *slog.Logger) *Handler {
	return &Handler{backend: backend, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/universities", h.HandleListUniversities)
	r.Get("/api/universities/facets", h.HandleFacets)
	r.Get("/api/universities/{id}", h.HandleGetUniversity)
	r.Get("/api/international/{region}/{id}", h.HandleGetInternational)

	r.Post("/api/student-tests", h.HandleCreateStudentTest)
	r.Get("/api/student-tests", h.HandleListStudentTests)
	r.Get("/api/student-tests/{id}", h.HandleGetStudentTest)
}

func (h *Handler) HandleListUniversities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := ParseUniversityQuery(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := h.backend.ListUniversities(ctx, req.Query())
	if err != nil {
		h.fail(w, ctx, "list universities", "university", err)
		return
	}
	if page.Items == nil {
		page.Items = []backend.University{}
	}
	httputil.WriteJSON(w, http.StatusOK, page)
}

// HandleFacets fetches countries and strengths in parallel; either failure
// fails the whole response.
func (h *Handler) HandleFacets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var facets Facets

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		countries, err := h.backend.ListCountries(gctx)
		if err != nil {
			return err
		}
		facets.Countries = countries
		return nil
	})
	g.Go(func() error {
		strengths, err := h.backend.ListStrengths(gctx)
		if err != nil {
			return err
		}
		facets.Strengths = strengths
		return nil
	})
	if err := g.Wait(); err != nil {
		h.fail(w, ctx, "list facets", "facet", err)
		return
	}

	if facets.Countries == nil {
		facets.Countries = []string{}
	}
	if facets.Strengths == nil {
		facets.Strengths = []string{}
	}
	httputil.WriteJSON(w, http.StatusOK, facets)
}

func (h *Handler) HandleGetUniversity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "university id must be a positive integer"))
		return
	}
	university, err := h.backend.GetUniversity(ctx, id)
	if err != nil {
		h.fail(w, ctx, "get university", "university", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, university)
}

// HandleGetInternational returns the region's own schema untouched.
func (h *Handler) HandleGetInternational(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	region := backend.Region(chi.URLParam(r, "region"))
	if !region.IsValid() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "region must be one of au, uk, sg"))
		return
	}
	body, err := h.backend.GetInternationalUniversity(ctx, region, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, ctx, "get international university", "university", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, body)
}

// HandleCreateStudentTest stores the answers under the caller's identity.
func (h *Handler) HandleCreateStudentTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID := requestcontext.UserID(ctx)
	if userID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "identity is not available"))
		return
	}
	req, ok := httputil.DecodeAndPrepare[StudentTestRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	created, err := h.backend.CreateStudentTest(ctx, backend.StudentTestRequest{
		UserID:  userID,
		Answers: req.Answers,
	})
	if err != nil {
		h.fail(w, ctx, "create student test", "student test", err)
		return
	}
	h.logger.InfoContext(ctx, "student test submitted",
		"request_id", requestID,
		"student_test_id", created.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) HandleListStudentTests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := requestcontext.UserID(ctx)
	if userID == "" {
		httputil.WriteJSON(w, http.StatusOK, []backend.StudentTestRecord{})
		return
	}
	records, err := h.backend.ListStudentTests(ctx, userID)
	if err != nil {
		h.fail(w, ctx, "list student tests", "student test", err)
		return
	}
	if records == nil {
		records = []backend.StudentTestRecord{}
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

// HandleGetStudentTest hides results that belong to another identity.
func (h *Handler) HandleGetStudentTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	record, err := h.backend.GetStudentTest(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, ctx, "get student test", "student test", err)
		return
	}
	if record.UserID != "" && record.UserID != requestcontext.UserID(ctx) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "student test not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) fail(w http.ResponseWriter, ctx context.Context, op, what string, err error) {
	h.logger.WarnContext(ctx, "catalog request failed",
		"operation", op,
		"request_id", requestcontext.RequestID(ctx),
		"category", backend.CategoryOf(err),
		"error", err,
	)
	httputil.WriteError(w, backend.DomainError(err, what))
}
