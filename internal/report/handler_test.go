package report

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Backend

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"unipick/internal/backend"
	"unipick/internal/report/mocks"
	"unipick/pkg/requestcontext"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	backend *mocks.MockBackend
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.backend = mocks.NewMockBackend(s.ctrl)
	renderer, err := NewRenderer()
	s.Require().NoError(err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := r.Header.Get("X-Test-User"); user != "" {
				r = r.WithContext(requestcontext.WithUserID(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	})
	NewHandler(s.backend, renderer, logger).Register(s.router)
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) get(path, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) record(body string) *backend.EvaluationRecord {
	var rec backend.EvaluationRecord
	s.Require().NoError(json.Unmarshal([]byte(body), &rec))
	return &rec
}

func (s *HandlerSuite) TestResultPage() {
	s.Run("singapore record renders the singapore view", func() {
		s.backend.EXPECT().GetParentEvaluation(gomock.Any(), "eval-sg").Return(s.record(
			`{"id":"eval-sg","target_country":"Singapore","recommended_schools":[{"name":"NTU","country":"Singapore","rank":15}]}`,
		), nil)

		rec := s.get("/result?id=eval-sg", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
		s.Contains(rec.Body.String(), `data-view="singapore"`)
		s.Contains(rec.Body.String(), "NTU")
	})

	s.Run("record without target country renders the default view", func() {
		s.backend.EXPECT().GetParentEvaluation(gomock.Any(), "eval-old").Return(s.record(`{"id":"eval-old"}`), nil)

		rec := s.get("/result?id=eval-old", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `data-view="usa"`)
	})

	s.Run("missing id shows the empty state", func() {
		rec := s.get("/result", "")
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "empty-state")
	})

	s.Run("unknown id shows not found without a retry link", func() {
		s.backend.EXPECT().GetParentEvaluation(gomock.Any(), "gone").Return(nil, &backend.APIError{
			Category: backend.ErrorNotFound, Operation: "GetParentEvaluation", StatusCode: http.StatusNotFound,
		})

		rec := s.get("/result?id=gone&country=UK", "")
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "没有找到评估结果")
		s.Contains(rec.Body.String(), `href="/survey?country=UK"`)
		s.NotContains(rec.Body.String(), `class="retry"`)
	})

	s.Run("backend failure never leaks the raw error", func() {
		s.backend.EXPECT().GetParentEvaluation(gomock.Any(), "eval-1").Return(nil, &backend.APIError{
			Category: backend.ErrorTransport, Operation: "GetParentEvaluation", Err: errors.New("dial tcp 10.0.0.7:8000: connection refused"),
		})

		rec := s.get("/result?id=eval-1", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "暂时无法加载评估结果")
		s.Contains(rec.Body.String(), `href="/result?id=eval-1"`)
		s.NotContains(rec.Body.String(), "connection refused")
	})

	s.Run("malformed payload shows the empty state", func() {
		s.backend.EXPECT().GetParentEvaluation(gomock.Any(), "bad").Return(s.record(
			`{"id":"bad","target_country":"UK","ucas_timeline":"not a list"}`,
		), nil)

		rec := s.get("/result?id=bad", "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "empty-state")
	})
}

func (s *HandlerSuite) TestResultJSON() {
	s.Run("returns the view model", func() {
		s.backend.EXPECT().GetParentEvaluation(gomock.Any(), "eval-au").Return(s.record(
			`{"id":"eval-au","target_country":"Australia","fallback_info":{"applied":true,"steps":["放宽城市"]}}`,
		), nil)

		rec := s.get("/api/results/eval-au", "")
		s.Equal(http.StatusOK, rec.Code)
		var view View
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&view))
		s.Equal(KindAustralia, view.Kind)
		s.Require().NotNil(view.Fallback)
		s.Equal([]string{"放宽城市"}, view.Fallback.Steps)
		s.Empty(view.Schools)
	})

	s.Run("not found maps to 404", func() {
		s.backend.EXPECT().GetParentEvaluation(gomock.Any(), "gone").Return(nil, &backend.APIError{Category: backend.ErrorNotFound})

		rec := s.get("/api/results/gone", "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("server failure maps to 502", func() {
		s.backend.EXPECT().GetParentEvaluation(gomock.Any(), "eval-1").Return(nil, &backend.APIError{Category: backend.ErrorServer, StatusCode: 500})

		rec := s.get("/api/results/eval-1", "")
		s.Equal(http.StatusBadGateway, rec.Code)
	})
}

func (s *HandlerSuite) TestResultList() {
	s.Run("lists evaluations of the current identity", func() {
		s.backend.EXPECT().ListParentEvaluations(gomock.Any(), "anon_1").Return([]backend.EvaluationRecord{
			{ID: "a b", TargetCountry: "UK", CreatedAt: "2026-01-02T00:00:00Z"},
			{ID: "c"},
		}, nil)

		rec := s.get("/api/results", "anon_1")
		s.Equal(http.StatusOK, rec.Code)
		var out []Summary
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&out))
		s.Require().Len(out, 2)
		s.Equal(KindUK, out[0].Kind)
		s.Equal("/result?id=a+b", out[0].URL)
		s.Equal(KindUSA, out[1].Kind)
	})

	s.Run("no identity yields an empty list", func() {
		rec := s.get("/api/results", "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}
