package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-match/internal/catalog"
	"career-match/internal/domain"
	"career-match/internal/questionnaire"
	"career-match/internal/repository"
	"career-match/internal/service"
)

type testAPI struct {
	router *gin.Engine
	tokens *service.TokenService
	bank   *questionnaire.Bank
}

func newTestAPI(t *testing.T, secret string, limiter service.SubmissionLimiter) testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	engine, err := service.NewMatchEngine(cat, domain.DefaultMatchWeights(), service.DefaultMatchThreshold)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	bank := questionnaire.New()
	svc := service.NewAssessmentService(logger, bank, engine, repository.NewMemoryAssessmentRepository(), service.NewMemoryResultCache(), service.AssessmentOptions{TopN: 3})
	tokens := service.NewTokenService(secret, time.Hour)

	router := NewRouter(logger, tokens,
		NewAssessmentHandler(logger, svc, limiter),
		NewCareerHandler(logger, cat),
		NewQuestionHandler(logger, bank),
	)
	return testAPI{router: router, tokens: tokens, bank: bank}
}

// rawAnswers responde todo el banco en su forma JSON cruda.
func rawAnswers(bank *questionnaire.Bank) map[string]any {
	out := make(map[string]any, bank.Len())
	for _, q := range bank.Questions() {
		key := strconv.Itoa(q.ID)
		switch q.Type.ResponseKind() {
		case domain.ResponseOrdinal:
			out[key] = domain.Agree
		case domain.ResponseChoice:
			out[key] = q.Options[0].Value
		case domain.ResponseMultiSelect:
			out[key] = []string{q.Options[0].Value}
		case domain.ResponseRanking:
			order := make([]string, len(q.Options))
			for i, o := range q.Options {
				order[i] = o.Value
			}
			out[key] = order
		}
	}
	return out
}

func (a testAPI) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t, "", nil)
	rec := api.do(t, http.MethodGet, "/healthz", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCareersEndpoints(t *testing.T) {
	api := newTestAPI(t, "", nil)

	rec := api.do(t, http.MethodGet, "/careers", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list struct {
		Careers []domain.CareerRecord `json:"careers"`
	}
	decodeBody(t, rec, &list)
	if len(list.Careers) != 20 {
		t.Fatalf("expected 20 careers, got %d", len(list.Careers))
	}

	rec = api.do(t, http.MethodGet, "/careers?category=finance", nil, "")
	decodeBody(t, rec, &list)
	if len(list.Careers) != 2 {
		t.Fatalf("expected 2 finance careers, got %d", len(list.Careers))
	}

	rec = api.do(t, http.MethodGet, "/careers?skills=sql,machine_learning", nil, "")
	var bySkills struct {
		Careers []domain.CareerRecord `json:"careers"`
	}
	decodeBody(t, rec, &bySkills)
	var ids []string
	for _, c := range bySkills.Careers {
		ids = append(ids, c.ID)
	}
	if want := []string{"data_scientist", "software_engineer", "financial_analyst"}; strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, ids)
	}

	rec = api.do(t, http.MethodGet, "/careers?category=finance&skills=sql", nil, "")
	decodeBody(t, rec, &bySkills)
	if len(bySkills.Careers) != 1 || bySkills.Careers[0].ID != "financial_analyst" {
		t.Fatalf("expected only financial_analyst, got %+v", bySkills.Careers)
	}

	rec = api.do(t, http.MethodGet, "/careers/software_engineer", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = api.do(t, http.MethodGet, "/careers/astronaut", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestQuestionsEndpoints(t *testing.T) {
	api := newTestAPI(t, "", nil)

	rec := api.do(t, http.MethodGet, "/questions?category=values", nil, "")
	var list struct {
		Questions []domain.Question `json:"questions"`
	}
	decodeBody(t, rec, &list)
	if len(list.Questions) != 8 {
		t.Fatalf("expected 8 values questions, got %d", len(list.Questions))
	}

	if rec := api.do(t, http.MethodGet, "/questions/99", nil, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec := api.do(t, http.MethodGet, "/questions/abc", nil, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = api.do(t, http.MethodPost, "/questions/status", map[string]any{
		"answers": map[string]any{"0": "agree", "1": "neutral"},
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var status struct {
		Status       domain.CompletionStatus `json:"status"`
		NextQuestion *int                    `json:"next_question"`
	}
	decodeBody(t, rec, &status)
	if status.Status.AnsweredQuestions != 2 || status.Status.IsCompleteEnough {
		t.Fatalf("unexpected status: %+v", status.Status)
	}
	if status.NextQuestion == nil || *status.NextQuestion != 2 {
		t.Fatalf("expected next question 2, got %v", status.NextQuestion)
	}
}

func TestCreateAndFetchAssessmentAnonymous(t *testing.T) {
	api := newTestAPI(t, "", nil)

	rec := api.do(t, http.MethodPost, "/assessments", map[string]any{"answers": rawAnswers(api.bank)}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Assessment struct {
			ID      string               `json:"id"`
			Matches []domain.MatchRecord `json:"matches"`
		} `json:"assessment"`
	}
	decodeBody(t, rec, &created)
	if created.Assessment.ID == "" || len(created.Assessment.Matches) == 0 || len(created.Assessment.Matches) > 3 {
		t.Fatalf("unexpected assessment: %+v", created.Assessment)
	}

	rec = api.do(t, http.MethodGet, "/assessments/"+created.Assessment.ID, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = api.do(t, http.MethodGet, "/assessments/"+created.Assessment.ID+"/similar", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := api.do(t, http.MethodGet, "/assessments/missing", nil, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateAssessmentRejectsInvalidAnswers(t *testing.T) {
	api := newTestAPI(t, "", nil)

	cases := []map[string]any{
		{"answers": map[string]any{"0": "sometimes"}},
		{"answers": map[string]any{"0": []string{"agree"}}},
		{"answers": map[string]any{"999": "agree"}},
		{"answers": map[string]any{}},
		{"nothing": true},
	}
	for _, body := range cases {
		rec := api.do(t, http.MethodPost, "/assessments", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, rec.Code)
		}
	}
}

func TestAssessmentsRequireTokenWhenSecretConfigured(t *testing.T) {
	api := newTestAPI(t, "secret", nil)
	body := map[string]any{"answers": rawAnswers(api.bank)}

	if rec := api.do(t, http.MethodPost, "/assessments", body, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	owner, _ := api.tokens.IssueAccessToken("u1")
	rec := api.do(t, http.MethodPost, "/assessments", body, owner)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var created struct {
		Assessment struct {
			ID     string `json:"id"`
			UserID string `json:"user_id"`
		} `json:"assessment"`
	}
	decodeBody(t, rec, &created)
	if created.Assessment.UserID != "u1" {
		t.Fatalf("expected assessment owned by u1, got %q", created.Assessment.UserID)
	}

	rec = api.do(t, http.MethodGet, "/assessments", nil, owner)
	var list struct {
		Assessments []struct {
			ID string `json:"id"`
		} `json:"assessments"`
	}
	decodeBody(t, rec, &list)
	if len(list.Assessments) != 1 {
		t.Fatalf("expected 1 assessment for u1, got %d", len(list.Assessments))
	}

	other, _ := api.tokens.IssueAccessToken("u2")
	if rec := api.do(t, http.MethodGet, "/assessments/"+created.Assessment.ID, nil, other); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's assessment, got %d", rec.Code)
	}
}

func TestCreateAssessmentRateLimited(t *testing.T) {
	api := newTestAPI(t, "", service.NewMemorySubmissionLimiter(time.Minute, 1))
	body := map[string]any{"answers": rawAnswers(api.bank)}

	if rec := api.do(t, http.MethodPost, "/assessments", body, ""); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec := api.do(t, http.MethodPost, "/assessments", body, ""); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestCreateAssessmentInvalidAnswersDoNotConsumeQuota(t *testing.T) {
	api := newTestAPI(t, "", service.NewMemorySubmissionLimiter(time.Minute, 1))

	for _, body := range []map[string]any{
		{"answers": map[string]any{"0": "sometimes"}},
		{"answers": map[string]any{"999": "agree"}},
	} {
		if rec := api.do(t, http.MethodPost, "/assessments", body, ""); rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, rec.Code)
		}
	}

	body := map[string]any{"answers": rawAnswers(api.bank)}
	if rec := api.do(t, http.MethodPost, "/assessments", body, ""); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 after rejected payloads, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := api.do(t, http.MethodPost, "/assessments", body, ""); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
