package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"warroom-board-api/internal/metrics"
)

// setupTestRouter creates a test router with minimal configuration
func setupTestRouter(t *testing.T, basePath string, m *metrics.Metrics) *Config {
	t.Helper()

	// In-memory SQLite stands in for postgres at the repository seam
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect database")

	return &Config{
		DB:        db,
		Logger:    zap.NewNop(),
		JWTSecret: "test-secret",
		BasePath:  basePath,
		Env:       "test",
		Metrics:   m,
	}
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func TestMetricsEndpoint_RootPath(t *testing.T) {
	cfg := setupTestRouter(t, "/api/boards", newTestMetrics())
	router := Setup(cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// HTTP 200 응답 확인
	assert.Equal(t, http.StatusOK, w.Code, "Expected status 200")

	contentType := w.Header().Get("Content-Type")
	assert.Contains(t, contentType, "text/plain", "Expected Content-Type to contain text/plain")

	// Prometheus 형식 검증
	body := w.Body.String()
	assert.NotEmpty(t, body, "Response body should not be empty")
	assert.Contains(t, body, "# HELP", "Response should contain Prometheus HELP comments")
	assert.Contains(t, body, "# TYPE", "Response should contain Prometheus TYPE comments")

	// Go 런타임 메트릭은 기본 레지스트리를 통해 항상 노출됨
	assert.Contains(t, body, "go_goroutines", "Response should contain Go runtime metrics")
}

func TestHealthEndpoints(t *testing.T) {
	cfg := setupTestRouter(t, "/api/boards", newTestMetrics())
	router := Setup(cfg)

	tests := []struct {
		name string
		path string
	}{
		{"루트 health", "/health"},
		{"base path health", "/api/boards/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"status":"ok"`)
		})
	}
}

func TestProtectedRoutes_RequireAuth(t *testing.T) {
	cfg := setupTestRouter(t, "/api/boards", newTestMetrics())
	router := Setup(cfg)

	boardID := "123e4567-e89b-12d3-a456-426614174000"

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"보드 목록", http.MethodGet, "/api/boards"},
		{"보드 생성", http.MethodPost, "/api/boards"},
		{"보드 조회", http.MethodGet, "/api/boards/" + boardID},
		{"컬럼 생성", http.MethodPost, "/api/boards/" + boardID + "/columns"},
		{"활동 로그", http.MethodGet, "/api/boards/" + boardID + "/activity"},
		{"채팅 이력", http.MethodGet, "/api/boards/" + boardID + "/chat"},
		{"멤버 목록", http.MethodGet, "/api/boards/" + boardID + "/members"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code,
				"unauthenticated request must be rejected")
		})
	}
}

func TestWebSocketEndpoint_RequiresToken(t *testing.T) {
	cfg := setupTestRouter(t, "/api/boards", newTestMetrics())
	router := Setup(cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boards/ws", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token required")
}

func TestUnknownRoute_NotFound(t *testing.T) {
	cfg := setupTestRouter(t, "/api/boards", newTestMetrics())
	router := Setup(cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
