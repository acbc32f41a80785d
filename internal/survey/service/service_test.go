package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Backend,Store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"unipick/internal/backend"
	"unipick/internal/survey/metrics"
	"unipick/internal/survey/models"
	"unipick/internal/survey/service/mocks"
	"unipick/internal/survey/store"
	dErrors "unipick/pkg/domain-errors"
)

const testUser = "anon_11111111-2222-3333-4444-555555555555"

type ServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBackend *mocks.MockBackend
	store       *store.InMemoryStore
	metrics     *metrics.Metrics
	service     *Service
	ctx         context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBackend = mocks.NewMockBackend(s.ctrl)
	s.store = store.NewMemory(time.Hour)
	s.metrics = metrics.NewWith(prometheus.NewRegistry())
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.store, s.mockBackend, logger, WithMetrics(s.metrics))
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// completeAnswers returns a patch that fills every required field.
func completeAnswers(c models.Country) map[string]any {
	switch c {
	case models.CountryAustralia:
		return map[string]any{
			"academic_band":           models.AcademicExcellent,
			"interests":               []models.Interest{models.InterestComputing},
			"reputation_vs_value":     models.ReputationBalanced,
			"budget_usd":              30000,
			"hard_budget_must_within": true,
			"study_length_preference": models.StudyStandard,
			"intake_preference":       models.IntakeFebruary,
			"wil_psw_importance":      models.ImportanceHigh,
			"career_focus_weight":     models.ImportanceCritical,
			"city_preferences":        []models.City{models.CitySydney},
			"community_importance":    models.ImportanceMedium,
			"english_readiness":       models.EnglishReady,
			"accept_language_course":  true,
			"go8_preference":          models.Go8Preferred,
			"scholarship_importance":  models.ImportanceLow,
			"main_concern":            models.ConcernCareer,
		}
	case models.CountryUK:
		return map[string]any{
			"academic_band":                models.AcademicTop,
			"interests":                    []models.Interest{models.InterestLaw},
			"reputation_vs_value":          models.ReputationFirst,
			"budget_usd":                   45000,
			"foundation_need":              models.FoundationNotNeeded,
			"ucas_route":                   models.UCASStandard,
			"placement_year_preference":    models.PlacementOptional,
			"prep_level":                   models.PrepReady,
			"russell_group_preference":     models.RussellPreferred,
			"region_preference":            models.RegionAnyUK,
			"international_env_importance": models.ImportanceMedium,
			"intake_preference":            models.IntakeSeptember,
			"accept_foundation":            false,
			"budget_tolerance":             models.Tolerance20Percent,
			"main_concern":                 models.ConcernRanking,
		}
	case models.CountrySingapore:
		return map[string]any{
			"academic_band":          models.AcademicGood,
			"interests":              []models.Interest{models.InterestEngineering},
			"reputation_vs_value":    models.ValueFirst,
			"budget_usd":             25000,
			"bond_acceptance":        models.BondAccepted,
			"must_have_tg":           true,
			"orientation":            models.OrientationCareer,
			"interview_acceptance":   models.InterviewAndPortfolio,
			"safety_importance":      models.ImportanceHigh,
			"scholarship_importance": models.ImportanceHigh,
			"budget_tolerance":       models.ToleranceStrict,
			"main_concern":           models.ConcernSafety,
		}
	default:
		return map[string]any{
			"grade":              models.GradeEleven,
			"gpa_band":           models.GPA37to39,
			"sat_score":          1500,
			"activities":         []models.Activity{models.ActivityResearch, models.ActivityArts},
			"interests":          []models.Interest{models.InterestComputing, models.InterestScience, models.InterestLaw},
			"school_type":        models.SchoolResearch,
			"budget_band":        models.BudgetOver80,
			"family_expectation": models.ExpectChild,
		}
	}
}

func patch(answers map[string]any) []byte {
	raw, err := json.Marshal(answers)
	if err != nil {
		panic(err)
	}
	return raw
}

func (s *ServiceSuite) start(c models.Country) *models.Session {
	session, err := s.service.Start(s.ctx, testUser, string(c))
	s.Require().NoError(err)
	return session
}

func (s *ServiceSuite) startFilled(c models.Country) *models.Session {
	session := s.start(c)
	session, err := s.service.Apply(s.ctx, testUser, session.ID, patch(completeAnswers(c)))
	s.Require().NoError(err)
	return session
}

func inputOf(req backend.EvaluationRequest) map[string]any {
	raw, err := json.Marshal(req.Input)
	if err != nil {
		panic(err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func (s *ServiceSuite) TestStart() {
	s.Run("empty country parameter selects USA", func() {
		session, err := s.service.Start(s.ctx, testUser, "")
		s.Require().NoError(err)
		s.Equal(models.CountryUSA, session.Country)
		s.Equal(models.StateFillingForm, session.State)
		s.Equal(3, session.Form.Steps())
	})

	s.Run("unknown country is rejected", func() {
		_, err := s.service.Start(s.ctx, testUser, "Canada")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("identity is required", func() {
		_, err := s.service.Start(s.ctx, "", "UK")
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("session is persisted", func() {
		session := s.start(models.CountrySingapore)
		got, err := s.service.Get(s.ctx, testUser, session.ID)
		s.Require().NoError(err)
		s.Equal(models.CountrySingapore, got.Country)
	})
}

func (s *ServiceSuite) TestHappySubmitSendsOneRequestPerCountry() {
	for _, c := range models.Countries {
		s.Run(string(c), func() {
			session := s.startFilled(c)
			var sent backend.EvaluationRequest
			s.mockBackend.EXPECT().
				CreateParentEvaluation(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req backend.EvaluationRequest) (*backend.Created, error) {
					sent = req
					return &backend.Created{ID: "eval-" + string(c)}, nil
				}).Times(1)

			result, err := s.service.Submit(s.ctx, testUser, session.ID)
			s.Require().NoError(err)
			s.Equal(models.StateSuccess, result.State)
			s.Equal("eval-"+string(c), result.EvaluationID)
			s.Equal(testUser, sent.UserID)
			s.Equal(string(c), inputOf(sent)["target_country"])
			s.Equal(1.0, testutil.ToFloat64(s.metrics.Submissions.WithLabelValues(string(c), "success")))
		})
	}
}

// Leaving out any required field blocks submit with that field's key; the
// mock fails the test if the backend is called.
func (s *ServiceSuite) TestMissingFieldBlocksSubmit() {
	for _, c := range models.Countries {
		for field := range completeAnswers(c) {
			s.Run(string(c)+"/"+field, func() {
				answers := completeAnswers(c)
				delete(answers, field)
				session := s.start(c)
				session, err := s.service.Apply(s.ctx, testUser, session.ID, patch(answers))
				s.Require().NoError(err)
				if len(session.Form.Validate()) == 0 {
					// optional field
					return
				}

				result, err := s.service.Submit(s.ctx, testUser, session.ID)
				s.True(dErrors.HasCode(err, dErrors.CodeValidation))
				s.Contains(dErrors.FieldsOf(err), field)
				s.Contains(result.Errors, field)
				s.Equal(models.StateFillingForm, result.State)
			})
		}
	}
}

func (s *ServiceSuite) TestUKWithoutUCASRouteMakesNoCall() {
	answers := completeAnswers(models.CountryUK)
	delete(answers, "ucas_route")
	session := s.start(models.CountryUK)
	_, err := s.service.Apply(s.ctx, testUser, session.ID, patch(answers))
	s.Require().NoError(err)

	result, err := s.service.Submit(s.ctx, testUser, session.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal(models.FieldErrors{"ucas_route": "ucas_route is required"}, result.Errors)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ValidationFailures.WithLabelValues("UK", "ucas_route")))

	stored, err := s.service.Get(s.ctx, testUser, session.ID)
	s.Require().NoError(err)
	s.Contains(stored.Errors, "ucas_route")
}

func (s *ServiceSuite) TestAustraliaEndToEndPayload() {
	session := s.startFilled(models.CountryAustralia)
	s.Require().NoError(s.applyOnly(session.ID, `{"accept_language_course":false}`))
	s.Require().NoError(s.applyOnly(session.ID, `{"accept_language_course":true}`))

	var body []byte
	s.mockBackend.EXPECT().
		CreateParentEvaluation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req backend.EvaluationRequest) (*backend.Created, error) {
			body, _ = json.Marshal(req)
			return &backend.Created{ID: "eval123"}, nil
		})

	result, err := s.service.Submit(s.ctx, testUser, session.ID)
	s.Require().NoError(err)
	s.Equal("eval123", result.EvaluationID)

	var sent struct {
		UserID string         `json:"user_id"`
		Input  map[string]any `json:"input"`
	}
	s.Require().NoError(json.Unmarshal(body, &sent))
	s.Equal(testUser, sent.UserID)
	s.Len(sent.Input, 18)
	s.Equal("Australia", sent.Input["target_country"])
	s.EqualValues(30000, sent.Input["budget_usd"])
	s.Equal(true, sent.Input["hard_budget_must_within"])
	s.Equal(true, sent.Input["accept_language_course"])
	s.Equal(false, sent.Input["hard_exclude_language_course"])
}

func (s *ServiceSuite) applyOnly(id, body string) error {
	_, err := s.service.Apply(s.ctx, testUser, id, []byte(body))
	return err
}

func (s *ServiceSuite) TestBackendFailureKeepsValues() {
	session := s.startFilled(models.CountryAustralia)
	s.mockBackend.EXPECT().
		CreateParentEvaluation(gomock.Any(), gomock.Any()).
		Return(nil, &backend.APIError{Category: backend.ErrorServer, Operation: "create_parent_evaluation", StatusCode: http.StatusInternalServerError})

	result, err := s.service.Submit(s.ctx, testUser, session.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	s.Equal(models.StateFailed, result.State)
	s.Equal(models.SubmitFailedNotice, result.Notice)

	stored, err := s.service.Get(s.ctx, testUser, session.ID)
	s.Require().NoError(err)
	s.Equal(models.StateFailed, stored.State)
	form := stored.Form.(*models.AustraliaForm)
	s.Equal(30000, form.BudgetUSD)
	s.Equal([]models.City{models.CitySydney}, form.CityPreferences)
	s.Empty(stored.Form.Validate())

	s.Run("editing reopens the form", func() {
		edited, err := s.service.Apply(s.ctx, testUser, session.ID, []byte(`{"budget_usd":32000}`))
		s.Require().NoError(err)
		s.Equal(models.StateFillingForm, edited.State)
		s.Empty(edited.Notice)
	})

	s.Run("resubmit succeeds with retained values", func() {
		s.mockBackend.EXPECT().
			CreateParentEvaluation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req backend.EvaluationRequest) (*backend.Created, error) {
				s.EqualValues(32000, inputOf(req)["budget_usd"])
				return &backend.Created{ID: "eval-retry"}, nil
			})
		result, err := s.service.Submit(s.ctx, testUser, session.ID)
		s.Require().NoError(err)
		s.Equal(models.StateSuccess, result.State)
	})
}

func (s *ServiceSuite) TestFailedSessionCanResubmitDirectly() {
	session := s.startFilled(models.CountrySingapore)
	gomock.InOrder(
		s.mockBackend.EXPECT().CreateParentEvaluation(gomock.Any(), gomock.Any()).
			Return(nil, &backend.APIError{Category: backend.ErrorTransport}),
		s.mockBackend.EXPECT().CreateParentEvaluation(gomock.Any(), gomock.Any()).
			Return(&backend.Created{ID: "eval-2"}, nil),
	)

	_, err := s.service.Submit(s.ctx, testUser, session.ID)
	s.Require().Error(err)
	result, err := s.service.Submit(s.ctx, testUser, session.ID)
	s.Require().NoError(err)
	s.Equal("eval-2", result.EvaluationID)
	s.Empty(result.Notice)
}

func (s *ServiceSuite) TestConcurrentSubmitIsConflict() {
	session := s.startFilled(models.CountryUK)
	entered := make(chan struct{})
	release := make(chan struct{})
	s.mockBackend.EXPECT().
		CreateParentEvaluation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, backend.EvaluationRequest) (*backend.Created, error) {
			close(entered)
			<-release
			return &backend.Created{ID: "eval-once"}, nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := s.service.Submit(s.ctx, testUser, session.ID)
		done <- err
	}()
	<-entered

	_, err := s.service.Submit(s.ctx, testUser, session.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	_, err = s.service.Apply(s.ctx, testUser, session.ID, []byte(`{"budget_usd":1}`))
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	close(release)
	s.Require().NoError(<-done)

	_, err = s.service.Submit(s.ctx, testUser, session.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *ServiceSuite) TestSubmitIgnoresCallerCancellation() {
	session := s.startFilled(models.CountryAustralia)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	s.mockBackend.EXPECT().
		CreateParentEvaluation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ backend.EvaluationRequest) (*backend.Created, error) {
			s.NoError(ctx.Err())
			return &backend.Created{ID: "eval-detached"}, nil
		})

	result, err := s.service.Submit(ctx, testUser, session.ID)
	s.Require().NoError(err)
	s.Equal("eval-detached", result.EvaluationID)
}

func (s *ServiceSuite) TestUSAWizardSteps() {
	session := s.start(models.CountryUSA)

	s.Run("forward is blocked by the current step", func() {
		_, err := s.service.Next(s.ctx, testUser, session.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		fields := dErrors.FieldsOf(err)
		s.Contains(fields, "grade")
		s.NotContains(fields, "activities")

		got, err := s.service.Get(s.ctx, testUser, session.ID)
		s.Require().NoError(err)
		s.Equal(1, got.Step)
	})

	s.Run("SAT below the threshold blocks even though optional", func() {
		s.Require().NoError(s.applyOnly(session.ID, `{"grade":"高三","gpa_band":"3.9+","sat_score":1200}`))
		_, err := s.service.Next(s.ctx, testUser, session.ID)
		s.Contains(dErrors.FieldsOf(err), "sat_score")
	})

	s.Run("blank SAT passes", func() {
		s.Require().NoError(s.applyOnly(session.ID, `{"sat_score":0}`))
		got, err := s.service.Next(s.ctx, testUser, session.ID)
		s.Require().NoError(err)
		s.Equal(2, got.Step)
		s.Empty(got.Errors)
	})

	s.Run("step two needs two activities", func() {
		_, err := s.service.Toggle(s.ctx, testUser, session.ID, "activities", string(models.ActivityArts))
		s.Require().NoError(err)
		_, err = s.service.Next(s.ctx, testUser, session.ID)
		s.Contains(dErrors.FieldsOf(err), "activities")
	})

	s.Run("back is always allowed", func() {
		got, err := s.service.Back(s.ctx, testUser, session.ID)
		s.Require().NoError(err)
		s.Equal(1, got.Step)
		s.Empty(got.Errors)

		got, err = s.service.Back(s.ctx, testUser, session.ID)
		s.Require().NoError(err)
		s.Equal(1, got.Step)
	})

	s.Run("submit returns to the earliest failing step", func() {
		_, err := s.service.Next(s.ctx, testUser, session.ID)
		s.Require().NoError(err)
		got, err := s.service.Submit(s.ctx, testUser, session.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(2, got.Step)
		s.Contains(got.Errors, "budget_band")
	})
}

func (s *ServiceSuite) TestNextOnSinglePageFormIsInvalidState() {
	session := s.start(models.CountryAustralia)
	_, err := s.service.Next(s.ctx, testUser, session.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *ServiceSuite) TestEditPrunesResolvedErrors() {
	session := s.start(models.CountryUK)
	_, err := s.service.Submit(s.ctx, testUser, session.ID)
	s.Require().Error(err)

	got, err := s.service.Apply(s.ctx, testUser, session.ID, []byte(`{"ucas_route":"不确定"}`))
	s.Require().NoError(err)
	s.NotContains(got.Errors, "ucas_route")
	s.Contains(got.Errors, "academic_band")
}

func (s *ServiceSuite) TestToggleRejectsUnknownOption() {
	session := s.start(models.CountryAustralia)
	_, err := s.service.Toggle(s.ctx, testUser, session.ID, "city_preferences", "纽约")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestSessionsAreScopedToIdentity() {
	session := s.start(models.CountryUK)
	_, err := s.service.Get(s.ctx, "anon_someone-else", session.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	_, err = s.service.Apply(s.ctx, "anon_someone-else", session.ID, []byte(`{}`))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestDiscard() {
	session := s.start(models.CountryUK)
	s.Require().NoError(s.service.Discard(s.ctx, testUser, session.ID))
	_, err := s.service.Get(s.ctx, testUser, session.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.True(dErrors.HasCode(s.service.Discard(s.ctx, testUser, session.ID), dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestSubmittedSessionIsFrozen() {
	session := s.startFilled(models.CountryUK)
	s.mockBackend.EXPECT().CreateParentEvaluation(gomock.Any(), gomock.Any()).Return(&backend.Created{ID: "e"}, nil)
	_, err := s.service.Submit(s.ctx, testUser, session.ID)
	s.Require().NoError(err)

	_, err = s.service.Apply(s.ctx, testUser, session.ID, []byte(`{"budget_usd":1}`))
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *ServiceSuite) TestStoreFailureIsInternal() {
	mockStore := mocks.NewMockStore(s.ctrl)
	svc := New(mockStore, s.mockBackend, nil)
	mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.Start(s.ctx, testUser, "UK")
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))

	mockStore.EXPECT().FindByID(gomock.Any(), "x").Return(nil, errors.New("redis down"))
	_, err = svc.Get(s.ctx, testUser, "x")
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestSchema() {
	country, fields, err := s.service.Schema("")
	s.Require().NoError(err)
	s.Equal(models.CountryUSA, country)
	s.Len(fields, 10)

	_, _, err = s.service.Schema("France")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
