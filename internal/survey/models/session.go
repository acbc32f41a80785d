package models

import (
	"fmt"
	"slices"
	"time"

	dErrors "unipick/pkg/domain-errors"
)

// State is a wizard session's position in the submit lifecycle.
type State string

const (
	StateSelectingCountry State = "selecting_country"
	StateFillingForm      State = "filling_form"
	StateValidating       State = "validating"
	StateSubmitting       State = "submitting"
	StateSuccess          State = "success"
	StateFailed           State = "failed"
)

var transitions = map[State][]State{
	StateSelectingCountry: {StateFillingForm},
	StateFillingForm:      {StateValidating},
	StateValidating:       {StateFillingForm, StateSubmitting},
	StateSubmitting:       {StateSuccess, StateFailed},
	StateFailed:           {StateFillingForm, StateValidating},
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s State) CanTransition(next State) bool {
	return slices.Contains(transitions[s], next)
}

// Terminal reports whether no further transition exists.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

// SubmitFailedNotice is shown after a failed backend call.
const SubmitFailedNotice = "提交失败，请稍后重试"

// Session is one wizard run. Country is fixed at creation and selects the
// concrete Form.
type Session struct {
	ID           string
	UserID       string
	Country      Country
	Form         Form
	State        State
	Step         int
	Errors       FieldErrors
	Notice       string
	EvaluationID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSession resolves the form for country and moves straight into filling_form.
func NewSession(id, userID string, country Country, now time.Time) (*Session, error) {
	form, err := NewForm(country)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:        id,
		UserID:    userID,
		Country:   country,
		Form:      form,
		State:     StateSelectingCountry,
		Step:      1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Transition(StateFillingForm); err != nil {
		return nil, err
	}
	return s, nil
}

// Transition moves the session to next or fails with CodeInvalidState.
func (s *Session) Transition(next State) error {
	if !s.State.CanTransition(next) {
		return dErrors.New(dErrors.CodeInvalidState, fmt.Sprintf("cannot move from %s to %s", s.State, next))
	}
	s.State = next
	return nil
}

// Editable reports whether answers may change. A failed session stays
// editable so a retry never loses values.
func (s *Session) Editable() bool {
	return s.State == StateFillingForm || s.State == StateFailed
}

// Reopen returns a failed session to filling_form and clears its notice.
func (s *Session) Reopen() {
	if s.State == StateFailed {
		s.State = StateFillingForm
		s.Notice = ""
	}
}
