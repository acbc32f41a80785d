package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"unipick/internal/backend"
	"unipick/internal/survey/metrics"
	"unipick/internal/survey/models"
	"unipick/internal/survey/store"
	dErrors "unipick/pkg/domain-errors"
	platformsync "unipick/pkg/platform/sync"
)

// Backend submits a completed survey.
type Backend interface {
	CreateParentEvaluation(ctx context.Context, req backend.EvaluationRequest) (*backend.Created, error)
}

// Store persists wizard sessions.
// Error Contract:
// - FindByID returns store.ErrNotFound when no session exists
// - Other methods return nil on success or wrapped errors on failure
type Store interface {
	Save(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

type Option func(*Service)

// Service drives survey sessions through the submit lifecycle. Each session
// is mutated under its own shard lock; the backend call runs outside it.
type Service struct {
	store   Store
	backend Backend
	metrics *metrics.Metrics
	logger  *slog.Logger
	locks   *platformsync.ShardedMutex
	now     func() time.Time
	newID   func() string
}

func New(store Store, backend Backend, logger *slog.Logger, opts ...Option) *Service {
	svc := &Service{
		store:   store,
		backend: backend,
		logger:  logger,
		locks:   platformsync.NewShardedMutex(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// WithMetrics sets the metrics instance for the service
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides session id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// Start opens a session for the country named by the navigation parameter.
// An empty parameter selects the default country.
func (s *Service) Start(ctx context.Context, userID, countryParam string) (*models.Session, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "missing anonymous identity")
	}
	country, err := models.ResolveCountry(countryParam)
	if err != nil {
		return nil, err
	}
	session, err := models.NewSession(s.newID(), userID, country, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}
	if s.metrics != nil {
		s.metrics.IncrementSessionsStarted(string(country))
	}
	s.logger.InfoContext(ctx, "survey session started",
		"session_id", session.ID,
		"country", country,
	)
	return session, nil
}

// Get returns a session owned by userID.
func (s *Service) Get(ctx context.Context, userID, id string) (*models.Session, error) {
	return s.load(ctx, userID, id)
}

// Schema describes the fields of the country's form.
func (s *Service) Schema(countryParam string) (models.Country, []models.FieldSpec, error) {
	country, err := models.ResolveCountry(countryParam)
	if err != nil {
		return "", nil, err
	}
	form, err := models.NewForm(country)
	if err != nil {
		return "", nil, err
	}
	return country, form.Schema(), nil
}

// Apply merges a JSON patch into the session's answers.
func (s *Service) Apply(ctx context.Context, userID, id string, patch []byte) (*models.Session, error) {
	return s.mutate(ctx, userID, id, func(session *models.Session) error {
		if err := editable(session); err != nil {
			return err
		}
		if err := session.Form.ApplyJSON(patch); err != nil {
			return err
		}
		pruneResolved(session)
		return nil
	})
}

// Toggle flips one option of a multi-select field.
func (s *Service) Toggle(ctx context.Context, userID, id, field, option string) (*models.Session, error) {
	return s.mutate(ctx, userID, id, func(session *models.Session) error {
		if err := editable(session); err != nil {
			return err
		}
		if err := session.Form.Toggle(field, option); err != nil {
			return err
		}
		pruneResolved(session)
		return nil
	})
}

// Next advances a multi-step form after validating only the step being left.
func (s *Service) Next(ctx context.Context, userID, id string) (*models.Session, error) {
	return s.mutate(ctx, userID, id, func(session *models.Session) error {
		if err := editable(session); err != nil {
			return err
		}
		if session.Step >= session.Form.Steps() {
			return dErrors.New(dErrors.CodeInvalidState, "already on the last step")
		}
		session.Reopen()
		if errs := session.Form.ValidateStep(session.Step); len(errs) > 0 {
			session.Errors = errs
			s.recordValidationFailure(session, errs)
			return dErrors.NewValidation("step is incomplete", errs)
		}
		session.Errors = nil
		session.Step++
		return nil
	})
}

// Back returns to the previous step. It never validates, and on the first
// step it is a no-op.
func (s *Service) Back(ctx context.Context, userID, id string) (*models.Session, error) {
	return s.mutate(ctx, userID, id, func(session *models.Session) error {
		if err := editable(session); err != nil {
			return err
		}
		session.Reopen()
		if session.Step > 1 {
			session.Step--
		}
		session.Errors = nil
		return nil
	})
}

// Submit validates the whole form and, when complete, posts it to the
// backend exactly once. A second submit while one is in flight is a
// conflict. The backend call ignores caller cancellation: an abandoned
// request still records its outcome on the session.
func (s *Service) Submit(ctx context.Context, userID, id string) (*models.Session, error) {
	session, err := s.mutate(ctx, userID, id, func(session *models.Session) error {
		switch session.State {
		case models.StateSubmitting:
			return dErrors.New(dErrors.CodeConflict, "submission already in progress")
		case models.StateSuccess:
			return dErrors.New(dErrors.CodeInvalidState, "survey already submitted")
		}
		if err := session.Transition(models.StateValidating); err != nil {
			return err
		}
		session.Notice = ""
		if errs := session.Form.Validate(); len(errs) > 0 {
			session.Errors = errs
			session.Step = firstFailingStep(session.Form, session.Step)
			s.recordValidationFailure(session, errs)
			if err := session.Transition(models.StateFillingForm); err != nil {
				return err
			}
			return dErrors.NewValidation("form is incomplete", errs)
		}
		session.Errors = nil
		return session.Transition(models.StateSubmitting)
	})
	if err != nil {
		return session, err
	}

	detached := context.WithoutCancel(ctx)
	req := backend.EvaluationRequest{UserID: session.UserID, Input: session.Form.Input()}
	start := s.now()
	created, callErr := s.backend.CreateParentEvaluation(detached, req)
	if s.metrics != nil {
		s.metrics.ObserveSubmitLatency(string(session.Country), s.now().Sub(start).Seconds())
	}

	return s.finishSubmit(detached, session, created, callErr)
}

func (s *Service) finishSubmit(ctx context.Context, submitted *models.Session, created *backend.Created, callErr error) (*models.Session, error) {
	s.locks.Lock(submitted.ID)
	defer s.locks.Unlock(submitted.ID)

	session, err := s.store.FindByID(ctx, submitted.ID)
	discarded := errors.Is(err, store.ErrNotFound)
	if err != nil && !discarded {
		s.logger.ErrorContext(ctx, "failed to reload session after submit",
			"session_id", submitted.ID,
			"error", err,
		)
	}
	if err != nil {
		session = submitted
	}

	outcome := "success"
	if callErr != nil {
		outcome = "failed"
		_ = session.Transition(models.StateFailed)
		session.Notice = models.SubmitFailedNotice
		s.logger.ErrorContext(ctx, "evaluation submit failed",
			"session_id", session.ID,
			"country", session.Country,
			"category", backend.CategoryOf(callErr),
			"error", callErr,
		)
	} else {
		_ = session.Transition(models.StateSuccess)
		session.EvaluationID = created.ID
		s.logger.InfoContext(ctx, "evaluation submitted",
			"session_id", session.ID,
			"country", session.Country,
			"evaluation_id", created.ID,
		)
	}
	if s.metrics != nil {
		s.metrics.IncrementSubmission(string(session.Country), outcome)
	}
	session.UpdatedAt = s.now()
	if !discarded {
		if err := s.store.Save(ctx, session); err != nil {
			s.logger.ErrorContext(ctx, "failed to save submit outcome",
				"session_id", session.ID,
				"error", err,
			)
		}
	}

	if callErr != nil {
		return session, dErrors.Wrap(callErr, dErrors.CodeUnavailable, models.SubmitFailedNotice)
	}
	return session, nil
}

// Discard drops the session and its answers.
func (s *Service) Discard(ctx context.Context, userID, id string) error {
	s.locks.Lock(id)
	defer s.locks.Unlock(id)
	if _, err := s.load(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete session")
	}
	return nil
}

// mutate loads the session under its lock, applies fn and saves the result.
// Validation failures are saved too so the error set survives a reload.
func (s *Service) mutate(ctx context.Context, userID, id string, fn func(*models.Session) error) (*models.Session, error) {
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	session, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	fnErr := fn(session)
	if fnErr != nil && !dErrors.HasCode(fnErr, dErrors.CodeValidation) {
		return session, fnErr
	}
	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}
	return session, fnErr
}

func (s *Service) load(ctx context.Context, userID, id string) (*models.Session, error) {
	session, err := s.store.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "survey session not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	// Another identity's session is reported as missing.
	if session.UserID != userID {
		return nil, dErrors.New(dErrors.CodeNotFound, "survey session not found")
	}
	return session, nil
}

// pruneResolved reopens a failed session and drops errors the edit resolved.
func pruneResolved(session *models.Session) {
	session.Reopen()
	if len(session.Errors) == 0 {
		return
	}
	current := session.Form.Validate()
	maps.DeleteFunc(session.Errors, func(field, _ string) bool {
		_, still := current[field]
		return !still
	})
	if len(session.Errors) == 0 {
		session.Errors = nil
	}
}

func (s *Service) recordValidationFailure(session *models.Session, errs models.FieldErrors) {
	if s.metrics != nil {
		s.metrics.IncrementValidationFailures(string(session.Country), errs)
	}
}

func editable(session *models.Session) error {
	if session.State == models.StateSubmitting {
		return dErrors.New(dErrors.CodeConflict, "submission in progress")
	}
	if !session.Editable() {
		return dErrors.New(dErrors.CodeInvalidState, fmt.Sprintf("session is %s", session.State))
	}
	return nil
}

// firstFailingStep moves a multi-step form back to the earliest step with an
// error; current is kept when no earlier step fails.
func firstFailingStep(form models.Form, current int) int {
	for step := 1; step <= form.Steps(); step++ {
		if len(form.ValidateStep(step)) > 0 {
			return step
		}
	}
	return current
}
