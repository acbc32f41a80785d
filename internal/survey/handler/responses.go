package handler

import (
	"net/url"

	"unipick/internal/survey/models"
)

// SessionResponse is the wizard state returned after every operation.
type SessionResponse struct {
	ID           string             `json:"id"`
	Country      models.Country     `json:"country"`
	State        models.State       `json:"state"`
	Step         int                `json:"step"`
	Steps        int                `json:"steps"`
	Answers      models.Form        `json:"answers"`
	Errors       models.FieldErrors `json:"errors,omitempty"`
	Notice       string             `json:"notice,omitempty"`
	EvaluationID string             `json:"evaluation_id,omitempty"`
	Redirect     string             `json:"redirect,omitempty"`
}

// SubmitResponse carries the evaluation id and where to show it.
type SubmitResponse struct {
	EvaluationID string `json:"evaluation_id"`
	Redirect     string `json:"redirect"`
}

// OptionsResponse describes one country's form.
type OptionsResponse struct {
	Country models.Country     `json:"country"`
	Fields  []models.FieldSpec `json:"fields"`
}

// ResultPath is the page that renders an evaluation.
func ResultPath(evaluationID string) string {
	return "/result?id=" + url.QueryEscape(evaluationID)
}

func toSessionResponse(s *models.Session) SessionResponse {
	res := SessionResponse{
		ID:           s.ID,
		Country:      s.Country,
		State:        s.State,
		Step:         s.Step,
		Steps:        s.Form.Steps(),
		Answers:      s.Form,
		Errors:       s.Errors,
		Notice:       s.Notice,
		EvaluationID: s.EvaluationID,
	}
	if s.EvaluationID != "" {
		res.Redirect = ResultPath(s.EvaluationID)
	}
	return res
}
