package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

const australiaAnswers = `country: Australia
answers:
  academic_band: 优秀(GPA 3.5-3.8/均分85-90)
  reputation_vs_value: 两者平衡
  budget_usd: 30000
  hard_budget_must_within: true
  study_length_preference: 标准学制即可
  intake_preference: 2月入学
  wil_psw_importance: 比较重要
  career_focus_weight: 非常重要
  community_importance: 一般
  english_readiness: 差一点(0.5分以内)
  accept_language_course: true
  go8_preference: 优先八大
  scholarship_importance: 不重要
  main_concern: 就业前景
toggles:
  interests: [计算机/IT]
  city_preferences: [悉尼, 墨尔本]
`

// fakeBackend records parent evaluation posts and serves canned records.
type fakeBackend struct {
	mu    sync.Mutex
	posts []map[string]any
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/evals/parent":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.posts = append(f.posts, body)
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"id":"eval-42"}`))
	case r.URL.Path == "/api/evals/parent/eval-42":
		_, _ = w.Write([]byte(`{"id":"eval-42","target_country":"Australia",
			"recommended_schools":[{"name":"University of Sydney","country":"Australia","rank":18,"tuition":52000}],
			"psw_advice":"毕业后可申请2-4年工签"}`))
	case r.URL.Path == "/api/universities":
		_, _ = w.Write([]byte(`{"items":[{"id":1,"name":"MIT","country":"USA","rank":1,"tuition":60000}],"total":1,"page":1,"page_size":20}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"not found"}`))
	}
}

type CLISuite struct {
	suite.Suite
	backend      *fakeBackend
	server       *httptest.Server
	identityFile string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.backend = &fakeBackend{}
	s.server = httptest.NewServer(s.backend)
	s.identityFile = filepath.Join(s.T().TempDir(), "uid")
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

func (s *CLISuite) run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{
		"--backend", s.server.URL + "/api",
		"--identity-file", s.identityFile,
		"--log-level", "error",
		"--plain",
	}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLISuite) writeAnswers(body string) string {
	path := filepath.Join(s.T().TempDir(), "answers.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *CLISuite) TestWhoamiIsStableUntilForget() {
	first, err := s.run("whoami")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(first, "anon_"))

	second, err := s.run("whoami")
	s.Require().NoError(err)
	s.Equal(first, second)

	_, err = s.run("forget")
	s.Require().NoError(err)

	third, err := s.run("whoami")
	s.Require().NoError(err)
	s.NotEqual(first, third)
}

func (s *CLISuite) TestForgetReportsFailedRemoval() {
	s.Require().NoError(os.MkdirAll(filepath.Join(s.identityFile, "child"), 0o700))

	out, err := s.run("forget")
	s.Require().Error(err)
	s.Contains(err.Error(), "clear anonymous identity")
	s.NotContains(out, "anonymous identity cleared")
	s.DirExists(s.identityFile)
}

func (s *CLISuite) TestSubmitDocumentedExampleReachesValidation() {
	example := `country: Australia
answers:
  academic_band: 优秀(GPA 3.5-3.8/均分85-90)
  budget_usd: 30000
toggles:
  interests: [商科/金融, 计算机/IT]
`
	out, err := s.run("submit", "--answers", s.writeAnswers(example))
	s.Require().Error(err)
	s.Contains(err.Error(), "answers need attention")
	s.Contains(out, "reputation_vs_value")
	s.NotContains(out, "budget_usd")
	s.Empty(s.backend.posts)
}

func (s *CLISuite) TestSubmitAustralia() {
	out, err := s.run("submit", "--answers", s.writeAnswers(australiaAnswers))
	s.Require().NoError(err)
	s.Contains(out, "evaluation: eval-42")
	s.Contains(out, "result: /result?id=eval-42")

	s.Require().Len(s.backend.posts, 1)
	post := s.backend.posts[0]
	s.True(strings.HasPrefix(post["user_id"].(string), "anon_"))
	input := post["input"].(map[string]any)
	s.Len(input, 18)
	s.Equal("Australia", input["target_country"])
	s.Equal(true, input["accept_language_course"])
	s.Equal(false, input["hard_exclude_language_course"])
	s.Equal([]any{"悉尼", "墨尔本"}, input["city_preferences"])
}

func (s *CLISuite) TestSubmitListsMissingAnswers() {
	out, err := s.run("submit", "--answers", s.writeAnswers("country: UK\nanswers: {}\n"))
	s.Require().Error(err)
	s.Contains(out, "ucas_route")
	s.Empty(s.backend.posts)
}

func (s *CLISuite) TestSubmitRejectsUnknownKeys() {
	_, err := s.run("submit", "--answers", s.writeAnswers("country: UK\nanwsers: {}\n"))
	s.Require().Error(err)
	s.Contains(err.Error(), "parse answers")
}

func (s *CLISuite) TestResult() {
	out, err := s.run("result", "eval-42")
	s.Require().NoError(err)
	s.Contains(out, "# 澳洲院校推荐")
	s.Contains(out, "University of Sydney")
	s.Contains(out, "毕业后可申请2-4年工签")

	_, err = s.run("result", "missing")
	s.Require().Error(err)
	s.Contains(err.Error(), "not found")
}

func (s *CLISuite) TestUniversities() {
	out, err := s.run("universities", "--country", "USA")
	s.Require().NoError(err)
	s.Contains(out, "| #1 | MIT | USA | $60000 |")

	_, err = s.run("universities", "--page-size", "500")
	s.Require().Error(err)
}

func TestParseAnswers(t *testing.T) {
	a, err := ParseAnswers([]byte(australiaAnswers))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.Country != "Australia" || len(a.Toggles["city_preferences"]) != 2 {
		t.Fatalf("unexpected answers: %+v", a)
	}
}
