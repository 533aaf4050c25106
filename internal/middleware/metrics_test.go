package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/quick"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"warroom-board-api/internal/metrics"
)

// Shared metrics instance for all tests to avoid duplicate registration
var testMetrics *metrics.Metrics

func init() {
	testMetrics = metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func setupMetricsRouter(m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics(m))
	return router
}

// Property: 모든 HTTP 요청(/metrics, /health, /ws 제외)은 메트릭으로 기록되어야 한다
func TestProperty_HTTPRequestMetricsIncrement(t *testing.T) {
	property := func(statusCode uint16) bool {
		if statusCode < 200 || statusCode >= 600 {
			return true // Skip invalid status codes
		}

		router := setupMetricsRouter(testMetrics)

		endpoint := "/api/boards/test"
		router.GET(endpoint, func(c *gin.Context) {
			c.Status(int(statusCode))
		})

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", endpoint, nil))
			if w.Code != int(statusCode) {
				t.Logf("Request failed: expected %d, got %d", statusCode, w.Code)
				return false
			}
		}
		return true
	}

	config := &quick.Config{MaxCount: 100}
	if err := quick.Check(property, config); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

// Property: 요청 duration이 히스토그램에 기록되어야 한다
func TestProperty_HTTPRequestDurationRecording(t *testing.T) {
	property := func(delayMs uint16) bool {
		if delayMs > 50 {
			return true // Skip long delays
		}

		router := setupMetricsRouter(testMetrics)

		endpoint := "/api/boards/test-duration"
		delay := time.Duration(delayMs) * time.Millisecond
		router.GET(endpoint, func(c *gin.Context) {
			time.Sleep(delay)
			c.Status(http.StatusOK)
		})

		start := time.Now()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", endpoint, nil))
		actualDuration := time.Since(start)

		if w.Code != http.StatusOK {
			t.Logf("Request failed: expected 200, got %d", w.Code)
			return false
		}
		// The middleware measures the full handler time, delay included
		if actualDuration < delay {
			t.Logf("Request completed too quickly: actual=%v, expected_min=%v",
				actualDuration, delay)
			return false
		}
		return true
	}

	config := &quick.Config{MaxCount: 30}
	if err := quick.Check(property, config); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

func TestMetricsMiddleware_Integration(t *testing.T) {
	router := setupMetricsRouter(testMetrics)

	router.GET("/api/boards", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.POST("/api/boards", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	router.GET("/api/boards/:boardId", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.PUT("/api/boards/:boardId", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.DELETE("/api/boards/:boardId", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	testCases := []struct {
		name       string
		method     string
		path       string
		statusCode int
	}{
		{"GET boards", "GET", "/api/boards", http.StatusOK},
		{"POST board", "POST", "/api/boards", http.StatusCreated},
		{"GET board by ID", "GET", "/api/boards/123", http.StatusOK},
		{"PUT board", "PUT", "/api/boards/456", http.StatusOK},
		{"DELETE board", "DELETE", "/api/boards/789", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
		})
	}
}

// Excluded endpoints must pass through without touching the collectors
func TestMetricsMiddleware_ExcludedEndpoints(t *testing.T) {
	router := setupMetricsRouter(testMetrics)

	for _, path := range []string{"/metrics", "/health", "/ws"} {
		router.GET(path, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}

	for _, path := range []string{"/metrics", "/health", "/ws"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			if w.Code != http.StatusOK {
				t.Errorf("Expected 200 on %s, got %d", path, w.Code)
			}
		})
	}
}
