package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/gridhire/gridhire/internal/api/handlers"
	"github.com/gridhire/gridhire/internal/models"
	"github.com/gridhire/gridhire/internal/services"
)

type stubInterview struct{}

func (stubInterview) Start(context.Context, string) (*services.StartResult, error) {
	return &services.StartResult{
		InterviewID: "iv-1",
		Intro:       "Hello Ada!",
		Question:    &models.Question{ID: "q1", Text: "What is a cell?"},
		Progress:    "1/5",
	}, nil
}

func (stubInterview) Answer(context.Context, string, string) (*services.AnswerResult, error) {
	return &services.AnswerResult{
		Evaluation:   models.Evaluation{QuestionID: "q1"},
		NextQuestion: &models.Question{ID: "q2", Text: "Explain VLOOKUP."},
		Progress:     "2/5",
	}, nil
}

type stubAdmin struct{}

func (stubAdmin) Login(context.Context, string, string) (string, time.Time, error) {
	return "tok", time.Now().Add(time.Hour), nil
}

func (stubAdmin) ListReports(context.Context, string, string) ([]models.Report, error) {
	return []models.Report{}, nil
}

func (stubAdmin) GetReport(context.Context, string) (*models.Report, error) {
	return &models.Report{}, nil
}

func (stubAdmin) Analytics(context.Context) (*models.Analytics, error) {
	return &models.Analytics{}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "route-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, Deps{
		Interview: handlers.NewInterviewHandler(stubInterview{}),
		Admin:     handlers.NewAdminHandler(stubAdmin{}),
	})
	return r
}

func mintToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("route-secret"))
	require.NoError(t, err)
	return token
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
	require.Contains(t, w.Body.String(), `"time"`)
}

func TestMetricsRoute(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "interviews_started_total")
}

func TestCandidateRoutesArePublic(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/start", `{"candidate_name":"Ada"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/answer/iv-1", `{"answer":"a relative reference shifts"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/admin/login", `{"username":"admin","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireAdminToken(t *testing.T) {
	r := newTestRouter(t)

	paths := []string{"/reports", "/admin/reports", "/admin/analytics"}
	for _, path := range paths {
		w := get(r, path, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, path)

		w = get(r, path, mintToken(t, "user"))
		require.Equal(t, http.StatusForbidden, w.Code, path)

		w = get(r, path, mintToken(t, "admin"))
		require.Equal(t, http.StatusOK, w.Code, path)
	}
}
