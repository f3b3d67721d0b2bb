package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio-backend/config"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/metrics"
	"portfolio-backend/pkg/ratelimit"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type staticProjects struct {
	projects []domain.Project
}

func (s staticProjects) List(context.Context) ([]domain.Project, error) {
	return s.projects, nil
}

func (s staticProjects) GetBySlug(_ context.Context, slug string) (*domain.Project, error) {
	for _, p := range s.projects {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	router     *gin.Engine
	dispatcher *MockDispatcher
	clock      *testClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GinMode:     gin.TestMode,
		SiteName:    "amilemia.dev",
		ContactFrom: "Portfolio <onboarding@resend.dev>",
		ContactTo:   "owner@example.com",
	}
	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	dispatcher := new(MockDispatcher)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	contactUC := usecase.NewContactUsecase(dispatcher, nil, validation.New(), usecase.ContactConfig{
		From:     cfg.ContactFrom,
		To:       cfg.ContactTo,
		SiteName: cfg.SiteName,
	}, m, nil)

	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProjectUC: usecase.NewProjectUsecase(staticProjects{projects: []domain.Project{
			{Slug: "relay-crm", Title: "Relay CRM", Tags: []string{"saas"}, URL: "/projects/relay-crm"},
			{Slug: "launchpad", Title: "Launchpad", Tags: []string{"marketing"}, URL: "/projects/launchpad"},
		}}),
		CatalogUC:      usecase.NewCatalogUsecase(),
		HealthUC:       usecase.NewHealthUsecase(nil),
		ContactLimiter: ratelimit.NewMemoryLimiter(3, time.Minute, clock.Now),
		Clock:          clock.Now,
		Metrics:        m,
		Gatherer:       reg,
		Config:         cfg,
	})
	return &testEnv{router: router, dispatcher: dispatcher, clock: clock}
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Data    json.RawMessage     `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

const validBody = `{"name":"Jane Doe","email":"jane@example.com","message":"Hello there, this is a valid message."}`

func TestContact_Success(t *testing.T) {
	env := newTestEnv(t)
	env.dispatcher.On("Send", mock.Anything, mock.MatchedBy(func(m email.Message) bool {
		return m.Subject == "Jane Doe sent a message from amilemia.dev" &&
			m.To == "owner@example.com" &&
			m.From == "Portfolio <onboarding@resend.dev>"
	})).Return(nil).Once()

	w, body := env.do(t, http.MethodPost, "/api/contact", validBody, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	env.dispatcher.AssertExpectations(t)
}

func TestContact_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/api/contact", `{"name":"J","email":"bad","message":"short"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, map[string][]string{
		"name":    {"Name must be at least 2 characters"},
		"email":   {"Please enter a valid email address"},
		"message": {"Message must be at least 10 characters"},
	}, body.Errors)
	env.dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContact_MalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodPost, "/api/contact", `{"name":`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Contains(t, body.Errors, "_form")
}

func TestContact_DispatchFailure(t *testing.T) {
	env := newTestEnv(t)
	env.dispatcher.On("Send", mock.Anything, mock.Anything).Return(errors.New("provider down"))

	w, body := env.do(t, http.MethodPost, "/api/contact", validBody, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to send message. Please try again later.", body.Message)
	assert.NotContains(t, w.Body.String(), "provider down")
}

func TestContact_RateLimit(t *testing.T) {
	env := newTestEnv(t)
	env.dispatcher.On("Send", mock.Anything, mock.Anything).Return(nil)
	hdr := map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}

	for i := 0; i < 3; i++ {
		w, _ := env.do(t, http.MethodPost, "/api/contact", validBody, hdr)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	// The 4th is throttled even with an invalid payload.
	w, body := env.do(t, http.MethodPost, "/api/contact", `{"name":"J"}`, hdr)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Too many requests. Please try again later.", body.Message)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	wantReset := env.clock.Now().Add(time.Minute).UnixMilli()
	assert.Equal(t, strconv.FormatInt(wantReset, 10), w.Header().Get("X-RateLimit-Reset"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// Another identity is unaffected.
	w, _ = env.do(t, http.MethodPost, "/api/contact", validBody, map[string]string{"X-Forwarded-For": "198.51.100.2"})
	assert.Equal(t, http.StatusOK, w.Code)

	env.clock.Advance(61 * time.Second)
	w, _ = env.do(t, http.MethodPost, "/api/contact", validBody, hdr)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContact_MissingForwardedForSharesFallbackIdentity(t *testing.T) {
	env := newTestEnv(t)
	env.dispatcher.On("Send", mock.Anything, mock.Anything).Return(nil)

	for i := 0; i < 3; i++ {
		w, _ := env.do(t, http.MethodPost, "/api/contact", validBody, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w, _ := env.do(t, http.MethodPost, "/api/contact", validBody, map[string]string{"X-Forwarded-For": "127.0.0.1"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestContact_Preflight(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodOptions, "/api/contact", "", map[string]string{"Origin": "https://anywhere.example"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, w.Body.String())
}

func TestProjects(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/api/projects?tag=saas", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var projects []domain.Project
	require.NoError(t, json.Unmarshal(body.Data, &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "relay-crm", projects[0].Slug)

	w, body = env.do(t, http.MethodGet, "/api/projects/launchpad", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var project domain.Project
	require.NoError(t, json.Unmarshal(body.Data, &project))
	assert.Equal(t, "/projects/launchpad", project.URL)

	w, body = env.do(t, http.MethodGet, "/api/projects/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", body.Message)

	w, body = env.do(t, http.MethodGet, "/api/tags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["marketing","saas"]`, string(body.Data))
}

func TestCatalogAndHealth(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.do(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var services []domain.ServicePackage
	require.NoError(t, json.Unmarshal(body.Data, &services))
	assert.Len(t, services, 3)

	w, _ = env.do(t, http.MethodGet, "/api/testimonials", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = env.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/contact", `{"name":"J"}`, nil)

	w, _ := env.do(t, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `portfolio_contact_submissions_total{outcome="invalid"} 1`)
	assert.Contains(t, w.Body.String(), "portfolio_http_request_duration_seconds")
}

func TestSecurityHeaders(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, http.MethodGet, "/api/services", "", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
