package backend

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// EvaluationRequest is the body of POST /evals/parent.
type EvaluationRequest struct {
	UserID string `json:"user_id"`
	Input  any    `json:"input"`
}

// Created is the minimal answer of a create call.
type Created struct {
	ID string `json:"id"`
}

// EvaluationRecord is the shared envelope of a stored evaluation. The
// country-specific payload is kept raw and decoded by the report views.
type EvaluationRecord struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id,omitempty"`
	TargetCountry string `json:"target_country,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (r *EvaluationRecord) UnmarshalJSON(data []byte) error {
	type envelope EvaluationRecord
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*r = EvaluationRecord(env)
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the record exactly as received when it came from the backend.
func (r EvaluationRecord) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	type envelope EvaluationRecord
	return json.Marshal(envelope(r))
}

// StudentTestRequest is the body of POST /evals/student.
type StudentTestRequest struct {
	UserID  string         `json:"user_id"`
	Answers map[string]any `json:"answers"`
}

// StudentTestRecord is a stored personality-test result; the scoring payload is opaque.
type StudentTestRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id,omitempty"`
	CreatedAt string          `json:"created_at,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
}

// University is one row of the university catalog.
type University struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	NameCN      string   `json:"name_cn,omitempty"`
	Country     string   `json:"country"`
	City        string   `json:"city,omitempty"`
	Type        string   `json:"type,omitempty"`
	Rank        int      `json:"rank,omitempty"`
	Tuition     float64  `json:"tuition,omitempty"`
	Strengths   []string `json:"strengths,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Website     string   `json:"website,omitempty"`
	Description string   `json:"description,omitempty"`
}

// UniversityPage is one page of GET /universities.
type UniversityPage struct {
	Items    []University `json:"items"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// UniversityQuery holds the optional filters of GET /universities. Zero
// values are omitted from the query string.
type UniversityQuery struct {
	Search     string
	Country    string
	Type       string
	Strength   string
	RankMin    int
	RankMax    int
	TuitionMax int
	Page       int
	PageSize   int
}

func (q UniversityQuery) Values() url.Values {
	v := url.Values{}
	setString := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	setInt := func(key string, value int) {
		if value != 0 {
			v.Set(key, strconv.Itoa(value))
		}
	}
	setString("search", q.Search)
	setString("country", q.Country)
	setString("type", q.Type)
	setString("strength", q.Strength)
	setInt("rank_min", q.RankMin)
	setInt("rank_max", q.RankMax)
	setInt("tuition_max", q.TuitionMax)
	setInt("page", q.Page)
	setInt("page_size", q.PageSize)
	return v
}

// Region selects a country-specific university schema.
type Region string

const (
	RegionAustralia Region = "au"
	RegionUK        Region = "uk"
	RegionSingapore Region = "sg"
)

func (r Region) IsValid() bool {
	return r == RegionAustralia || r == RegionUK || r == RegionSingapore
}
