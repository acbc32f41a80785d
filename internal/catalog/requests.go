package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"unipick/internal/backend"
	dErrors "unipick/pkg/domain-errors"
	"unipick/pkg/validation"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// UniversityQueryRequest is the validated form of the /api/universities
// query string.
type UniversityQueryRequest struct {
	Search     string `json:"search"`
	Country    string `json:"country"`
	Type       string `json:"type"`
	Strength   string `json:"strength"`
	RankMin    int    `json:"rank_min" validate:"gte=0"`
	RankMax    int    `json:"rank_max" validate:"omitempty,gtefield=RankMin"`
	TuitionMax int    `json:"tuition_max" validate:"gte=0"`
	Page       int    `json:"page" validate:"gte=1"`
	PageSize   int    `json:"page_size" validate:"gte=1,lte=100"`
}

// ParseUniversityQuery reads the filters from a query string. Absent paging
// parameters take their defaults; non-numeric values are rejected.
func ParseUniversityQuery(values url.Values) (*UniversityQueryRequest, error) {
	req := &UniversityQueryRequest{
		Search:   strings.TrimSpace(values.Get("search")),
		Country:  strings.TrimSpace(values.Get("country")),
		Type:     strings.TrimSpace(values.Get("type")),
		Strength: strings.TrimSpace(values.Get("strength")),
		Page:     defaultPage,
		PageSize: defaultPageSize,
	}
	fields := map[string]*int{
		"rank_min":    &req.RankMin,
		"rank_max":    &req.RankMax,
		"tuition_max": &req.TuitionMax,
		"page":        &req.Page,
		"page_size":   &req.PageSize,
	}
	invalid := map[string]string{}
	for key, target := range fields {
		raw := strings.TrimSpace(values.Get(key))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			invalid[key] = key + " must be an integer"
			continue
		}
		*target = n
	}
	if len(invalid) > 0 {
		return nil, dErrors.NewValidation("invalid query parameters", invalid)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *UniversityQueryRequest) Validate() error {
	if err := validation.CheckStringLength("search", r.Search, validation.MaxSearchLength); err != nil {
		return err
	}
	return validation.Validate(r)
}

func (r *UniversityQueryRequest) Query() backend.UniversityQuery {
	return backend.UniversityQuery{
		Search:     r.Search,
		Country:    r.Country,
		Type:       r.Type,
		Strength:   r.Strength,
		RankMin:    r.RankMin,
		RankMax:    r.RankMax,
		TuitionMax: r.TuitionMax,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

// StudentTestRequest carries the answers of the personality test.
type StudentTestRequest struct {
	Answers map[string]any `json:"answers" validate:"required,min=1"`
}

func (r *StudentTestRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	if err := validation.CheckCount("answers", len(r.Answers), validation.MaxStudentTestAnswers); err != nil {
		return err
	}
	return validation.CheckEachKeyLength("answers", r.Answers, validation.MaxAnswerKeyLength)
}

// Facets lists the values the university filters accept.
type Facets struct {
	Countries []string `json:"countries"`
	Strengths []string `json:"strengths"`
}
