package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmptyState is shown instead of a result when there is nothing to render.
type EmptyState struct {
	Heading      string
	Message      string
	RetryURL     string
	StartOverURL string
}

// Renderer executes the result page templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"join":    strings.Join,
		"tuition": formatTuition,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse result templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type page struct {
	PageTitle string
	View      *View
	Empty     *EmptyState
}

// Result renders a decoded view.
func (r *Renderer) Result(w io.Writer, view *View) error {
	return r.tmpl.ExecuteTemplate(w, "layout", page{PageTitle: view.Title, View: view})
}

// Empty renders the neutral empty state.
func (r *Renderer) Empty(w io.Writer, state EmptyState) error {
	return r.tmpl.ExecuteTemplate(w, "layout", page{PageTitle: state.Heading, Empty: &state})
}

// NotFoundState is used when the id is unknown to the backend.
func NotFoundState(country string) EmptyState {
	return EmptyState{
		Heading:      "没有找到评估结果",
		Message:      "这份评估可能已过期或链接有误，可以重新填写问卷。",
		StartOverURL: startOverURL(country),
	}
}

// UnavailableState is used when the result could not be fetched or decoded.
func UnavailableState(id, country string) EmptyState {
	retry := "/result"
	if id != "" {
		retry += "?id=" + url.QueryEscape(id)
	}
	return EmptyState{
		Heading:      "暂时无法加载评估结果",
		Message:      "请稍后重试，或重新开始问卷。",
		RetryURL:     retry,
		StartOverURL: startOverURL(country),
	}
}

func startOverURL(country string) string {
	if country == "" {
		return "/survey"
	}
	return "/survey?country=" + url.QueryEscape(country)
}

func formatTuition(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("$%d", int64(v))
	}
	return fmt.Sprintf("$%.2f", v)
}
