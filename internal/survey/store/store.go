package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"unipick/internal/survey/models"
)

// Error Contract:
// - FindByID returns ErrNotFound when the session does not exist or expired
// - Save and Delete return nil on success or wrapped infrastructure errors

// ErrNotFound is returned when a session id is unknown.
var ErrNotFound = errors.New("session not found")

// DefaultTTL bounds how long in-progress answers are kept.
const DefaultTTL = 2 * time.Hour

// sessionJSON is the persisted form of a Session. The form is stored raw and
// decoded against the session's country.
type sessionJSON struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Country      string             `json:"country"`
	Form         json.RawMessage    `json:"form"`
	State        string             `json:"state"`
	Step         int                `json:"step"`
	Errors       models.FieldErrors `json:"errors,omitempty"`
	Notice       string             `json:"notice,omitempty"`
	EvaluationID string             `json:"evaluation_id,omitempty"`
	CreatedAt    int64              `json:"created_at"` // Unix nano
	UpdatedAt    int64              `json:"updated_at"` // Unix nano
}

func encodeSession(s *models.Session) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("session is required")
	}
	form, err := json.Marshal(s.Form)
	if err != nil {
		return nil, fmt.Errorf("marshal form: %w", err)
	}
	return json.Marshal(sessionJSON{
		ID:           s.ID,
		UserID:       s.UserID,
		Country:      string(s.Country),
		Form:         form,
		State:        string(s.State),
		Step:         s.Step,
		Errors:       s.Errors,
		Notice:       s.Notice,
		EvaluationID: s.EvaluationID,
		CreatedAt:    s.CreatedAt.UnixNano(),
		UpdatedAt:    s.UpdatedAt.UnixNano(),
	})
}

func decodeSession(data []byte) (*models.Session, error) {
	var j sessionJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	country, err := models.ParseCountry(j.Country)
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", j.ID, err)
	}
	form, err := models.NewForm(country)
	if err != nil {
		return nil, err
	}
	if len(j.Form) > 0 {
		if err := json.Unmarshal(j.Form, form); err != nil {
			return nil, fmt.Errorf("unmarshal %s form: %w", country, err)
		}
	}
	return &models.Session{
		ID:           j.ID,
		UserID:       j.UserID,
		Country:      country,
		Form:         form,
		State:        models.State(j.State),
		Step:         j.Step,
		Errors:       j.Errors,
		Notice:       j.Notice,
		EvaluationID: j.EvaluationID,
		CreatedAt:    time.Unix(0, j.CreatedAt),
		UpdatedAt:    time.Unix(0, j.UpdatedAt),
	}, nil
}
