// Package report turns stored evaluations into result pages. The payload
// is server-defined; views only decode and display it.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"unipick/internal/backend"
	"unipick/internal/survey/models"
)

// Kind names the view that renders a record.
type Kind string

const (
	KindUSA       Kind = "usa"
	KindAustralia Kind = "australia"
	KindUK        Kind = "uk"
	KindSingapore Kind = "singapore"
)

// SelectView is an exact lookup of target_country. Anything that is not one
// of the three specialised countries, including an empty value, gets the
// default view.
func SelectView(targetCountry string) Kind {
	switch models.Country(targetCountry) {
	case models.CountryAustralia:
		return KindAustralia
	case models.CountryUK:
		return KindUK
	case models.CountrySingapore:
		return KindSingapore
	default:
		return KindUSA
	}
}

// School is one recommended university as the backend describes it.
type School struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Rank        int      `json:"rank"`
	Tuition     float64  `json:"tuition"`
	Explanation []string `json:"explanation"`
	Tags        []string `json:"tags"`
	Strengths   []string `json:"strengths"`
	Website     string   `json:"website"`
}

// UnmarshalJSON accepts the loose shapes older evaluations were stored with:
// rank and tuition as numbers or numeric strings, and explanation, tags and
// strengths as a list or a single string. Values of any other shape are left
// zero rather than failing the whole page.
func (s *School) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        json.RawMessage `json:"name"`
		Country     json.RawMessage `json:"country"`
		Rank        json.RawMessage `json:"rank"`
		Tuition     json.RawMessage `json:"tuition"`
		Explanation json.RawMessage `json:"explanation"`
		Tags        json.RawMessage `json:"tags"`
		Strengths   json.RawMessage `json:"strengths"`
		Website     json.RawMessage `json:"website"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		// not an object; Build drops the nameless entry
		*s = School{}
		return nil
	}
	*s = School{
		Name:        text(raw.Name),
		Country:     text(raw.Country),
		Rank:        int(math.Round(number(raw.Rank))),
		Tuition:     number(raw.Tuition),
		Explanation: texts(raw.Explanation),
		Tags:        texts(raw.Tags),
		Strengths:   texts(raw.Strengths),
		Website:     text(raw.Website),
	}
	return nil
}

func text(raw json.RawMessage) string {
	var v string
	if json.Unmarshal(raw, &v) != nil {
		return ""
	}
	return v
}

func number(raw json.RawMessage) float64 {
	var f float64
	if json.Unmarshal(raw, &f) == nil {
		return f
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(text(raw)), 64); err == nil {
		return v
	}
	return 0
}

func texts(raw json.RawMessage) []string {
	var list []any
	if json.Unmarshal(raw, &list) == nil {
		var out []string
		for _, item := range list {
			if v, ok := item.(string); ok && v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	if v := text(raw); v != "" {
		return []string{v}
	}
	return nil
}

// Fallback lists the relaxation steps the backend applied to avoid an
// empty result. It is displayed, never computed here.
type Fallback struct {
	Applied bool     `json:"applied"`
	Steps   []string `json:"steps"`
}

// Note is a labelled country-specific block.
type Note struct {
	Label string   `json:"label"`
	Lines []string `json:"lines"`
}

// View is the render model shared by the HTML page, the JSON API and the CLI.
type View struct {
	Kind          Kind      `json:"kind"`
	Title         string    `json:"title"`
	EvaluationID  string    `json:"evaluation_id"`
	TargetCountry string    `json:"target_country,omitempty"`
	CreatedAt     string    `json:"created_at,omitempty"`
	Schools       []School  `json:"schools"`
	Fallback      *Fallback `json:"fallback,omitempty"`
	Guidance      string    `json:"application_guidance,omitempty"`
	Notes         []Note    `json:"notes,omitempty"`
}

type commonPayload struct {
	RecommendedSchools  []School  `json:"recommended_schools"`
	FallbackInfo        *Fallback `json:"fallback_info"`
	ApplicationGuidance string    `json:"application_guidance"`
}

type usaPayload struct {
	commonPayload
	Summary string `json:"summary"`
}

type australiaPayload struct {
	commonPayload
	LanguageCourseAdvice string `json:"language_course_advice"`
	PSWAdvice            string `json:"psw_advice"`
}

type ukPayload struct {
	commonPayload
	UCASTimeline     []string `json:"ucas_timeline"`
	FoundationAdvice string   `json:"foundation_advice"`
}

type singaporePayload struct {
	commonPayload
	TuitionGrantAdvice string `json:"tuition_grant_advice"`
	InterviewAdvice    string `json:"interview_advice"`
}

// Build decodes the record's payload with the view SelectView picks.
func Build(record *backend.EvaluationRecord) (*View, error) {
	if record == nil {
		return nil, fmt.Errorf("record is required")
	}
	raw := record.Raw
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	view := &View{
		Kind:          SelectView(record.TargetCountry),
		EvaluationID:  record.ID,
		TargetCountry: record.TargetCountry,
		CreatedAt:     record.CreatedAt,
	}

	var common commonPayload
	switch view.Kind {
	case KindAustralia:
		var p australiaPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode australia payload: %w", err)
		}
		common = p.commonPayload
		view.Title = "澳洲院校推荐"
		view.Notes = notes(
			note("语言班建议", p.LanguageCourseAdvice),
			note("毕业工签(PSW)", p.PSWAdvice),
		)
	case KindUK:
		var p ukPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode uk payload: %w", err)
		}
		common = p.commonPayload
		view.Title = "英国院校推荐"
		view.Notes = notes(
			Note{Label: "UCAS时间线", Lines: p.UCASTimeline},
			note("预科建议", p.FoundationAdvice),
		)
	case KindSingapore:
		var p singaporePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode singapore payload: %w", err)
		}
		common = p.commonPayload
		view.Title = "新加坡院校推荐"
		view.Notes = notes(
			note("学费资助(TG)", p.TuitionGrantAdvice),
			note("面试与作品集", p.InterviewAdvice),
		)
	case KindUSA:
		var p usaPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode usa payload: %w", err)
		}
		common = p.commonPayload
		view.Title = "美国院校推荐"
		view.Notes = notes(note("综合评估", p.Summary))
	}

	view.Schools = make([]School, 0, len(common.RecommendedSchools))
	for _, school := range common.RecommendedSchools {
		if school.Name != "" {
			view.Schools = append(view.Schools, school)
		}
	}
	if common.FallbackInfo != nil && common.FallbackInfo.Applied {
		view.Fallback = common.FallbackInfo
	}
	view.Guidance = common.ApplicationGuidance
	return view, nil
}

func note(label, text string) Note {
	if text == "" {
		return Note{Label: label}
	}
	return Note{Label: label, Lines: []string{text}}
}

// notes drops blocks the backend left empty.
func notes(all ...Note) []Note {
	var out []Note
	for _, n := range all {
		if len(n.Lines) > 0 {
			out = append(out, n)
		}
	}
	return out
}
