package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"business-recommender/internal/common/config"
	"business-recommender/internal/common/database"
	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/engine"
	"business-recommender/internal/enrichment"
	"business-recommender/internal/models"
	"business-recommender/internal/recommendation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContacter struct {
	got    models.ContactRequest
	result *models.ContactResult
	err    error
}

func (f *fakeContacter) Contact(_ context.Context, req models.ContactRequest) (*models.ContactResult, error) {
	f.got = req
	return f.result, f.err
}

type failingRecommender struct{ err error }

func (f failingRecommender) Recommend(context.Context, models.UserProfile, string) (*models.RecommendationResponse, error) {
	return nil, f.err
}

func (f failingRecommender) ModelInfo(string) (models.ModelInfo, error) {
	return models.ModelInfo{}, f.err
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		CORS:      config.CORSConfig{AllowedOrigins: []string{"https://app.example.org"}, MaxAge: 300},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}
}

func newTestHandler(t *testing.T, deps Dependencies) http.Handler {
	t.Helper()
	if deps.Recommender == nil {
		deps.Recommender = recommendation.NewService(engine.New(), enrichment.NewEnricher(), recommendation.Options{}, logger.NewNoOpLogger())
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewTestLogger(t)
	}
	return NewRouter(testServerConfig(), deps).Setup()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperrors.StandardError {
	t.Helper()
	var body struct {
		Error apperrors.StandardError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

// ==========================
// Recommendations
// ==========================

func TestRecommend(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	rec := do(h, http.MethodPost, "/api/v1/recommendations?algorithm=ml",
		`{"skills":["sewing"],"experience":"expert","location":"urban","businessType":"goods"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.RecommendationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.AlgorithmML, resp.Algorithm)
	assert.Equal(t, "Neural Network", resp.ModelInfo.Model)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "sewing", resp.Recommendations[0].ID)
	assert.NotEmpty(t, resp.Recommendations[0].Mentors)
}

func TestRecommend_Errors(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
		wantCode   apperrors.ErrorCode
	}{
		{"empty skills", "/api/v1/recommendations", `{"skills":[]}`, http.StatusBadRequest, apperrors.ErrCodeValidationFailed},
		{"missing skills", "/api/v1/recommendations", `{"experience":"beginner"}`, http.StatusBadRequest, apperrors.ErrCodeValidationFailed},
		{"bad enum", "/api/v1/recommendations", `{"skills":["x"],"location":"moon"}`, http.StatusBadRequest, apperrors.ErrCodeValidationFailed},
		{"not json", "/api/v1/recommendations", `skills=sewing`, http.StatusBadRequest, apperrors.ErrCodeValidationFailed},
		{"json null", "/api/v1/recommendations", `null`, http.StatusBadRequest, apperrors.ErrCodeValidationFailed},
		{"unknown algorithm", "/api/v1/recommendations?algorithm=xgboost", `{"skills":["sewing"]}`, http.StatusBadRequest, apperrors.ErrCodeInvalidAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestRecommend_FieldErrorsInBody(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	rec := do(h, http.MethodPost, "/api/v1/recommendations", `{"skills":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	stdErr := decodeError(t, rec)
	fieldErrors, ok := stdErr.Metadata["fieldErrors"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, fieldErrors)
	assert.Contains(t, fieldErrors[0], "skills")
}

func TestRecommend_InternalError(t *testing.T) {
	h := newTestHandler(t, Dependencies{Recommender: failingRecommender{err: errors.New("boom")}})

	rec := do(h, http.MethodPost, "/api/v1/recommendations", `{"skills":["sewing"]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperrors.ErrCodeInternal, decodeError(t, rec).Code)
}

func TestModelInfo(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	rec := do(h, http.MethodGet, "/api/v1/model-info", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info models.ModelInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "Rule-based Algorithm", info.Model)
	assert.Equal(t, "75-85%", info.Accuracy)

	rec = do(h, http.MethodGet, "/api/v1/model-info?algorithm=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTemplates(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	rec := do(h, http.MethodGet, "/api/v1/templates", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Templates []models.BusinessTemplate `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Templates, len(engine.CatalogTemplates()))
}

// ==========================
// Mentor contact
// ==========================

func TestContactMentor(t *testing.T) {
	contacter := &fakeContacter{result: &models.ContactResult{ContactID: "c-1", MentorID: "m-goods-1", MailtoURL: "mailto:x"}}
	h := newTestHandler(t, Dependencies{Contacter: contacter})

	rec := do(h, http.MethodPost, "/api/v1/mentors/m-goods-1/contact",
		`{"name":"Asha","email":"asha@example.com","message":"Hello","businessName":"Asha Tailoring"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "m-goods-1", contacter.got.MentorID)
	assert.Equal(t, "Asha Tailoring", contacter.got.BusinessName)

	var result models.ContactResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "c-1", result.ContactID)
}

func TestContactMentor_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"invalid email", `{"name":"A","email":"not-an-email","message":"hi"}`, nil, http.StatusBadRequest},
		{"mentor not found", `{"name":"A","email":"a@example.com","message":"hi"}`, apperrors.NewMentorNotFoundError("m-x"), http.StatusNotFound},
		{"delivery failed", `{"name":"A","email":"a@example.com","message":"hi"}`, apperrors.NewNotificationSendFailedError("email", errors.New("throttled")), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, Dependencies{Contacter: &fakeContacter{err: tt.err}})
			rec := do(h, http.MethodPost, "/api/v1/mentors/m-x/contact", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestContactMentor_NotMountedWithoutContacter(t *testing.T) {
	h := newTestHandler(t, Dependencies{})
	rec := do(h, http.MethodPost, "/api/v1/mentors/m-goods-1/contact", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ==========================
// Health, CORS, rate limit
// ==========================

func TestHealthAndReady(t *testing.T) {
	healthy := newTestHandler(t, Dependencies{Checks: map[string]database.Pinger{
		"redis": pingFunc(func(context.Context) error { return nil }),
	}})
	assert.Equal(t, http.StatusOK, do(healthy, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(healthy, http.MethodGet, "/ready", "").Code)

	broken := newTestHandler(t, Dependencies{Checks: map[string]database.Pinger{
		"postgres": pingFunc(func(context.Context) error { return errors.New("connection refused") }),
	}})
	rec := do(broken, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t, Dependencies{})
	do(h, http.MethodGet, "/health", "")

	rec := do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t, Dependencies{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "https://app.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.org", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, Requests: 2, Window: 60}
	h := NewRouter(cfg, Dependencies{
		Recommender: failingRecommender{},
		Logger:      logger.NewNoOpLogger(),
	}).Setup()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, do(h, http.MethodGet, "/api/v1/model-info", "").Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
