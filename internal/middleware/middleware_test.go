package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajharbinger/line-survival-mock/internal/logger"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "POST passes through with headers",
			method:         http.MethodPost,
			path:           "/predict",
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
		{
			name:           "Preflight on registered path",
			method:         http.MethodOptions,
			path:           "/predict",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight on unknown path",
			method:         http.MethodOptions,
			path:           "/anything/else",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORSMiddleware())
			router.POST("/predict", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})
			router.NoRoute(func(c *gin.Context) {
				c.AbortWithStatus(http.StatusNotFound)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := logger.NewWithOutput("info", &buf)

	var seenID string
	router := gin.New()
	router.Use(LoggingMiddleware(log))
	router.POST("/predict", func(c *gin.Context) {
		seenID = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})
	router.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodPost, "/predict", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seenID)
	assert.Empty(t, w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), "request handled")
	assert.Contains(t, buf.String(), "request_id="+seenID)

	buf.Reset()
	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "request_id=client-supplied")
}

func TestBodyLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		limit       int64
		body        string
		expectError bool
	}{
		{name: "Under limit", limit: 64, body: `{"lines":["a"]}`},
		{name: "Over limit", limit: 4, body: `{"lines":["a"]}`, expectError: true},
		{name: "Zero disables limit", limit: 0, body: strings.Repeat("x", 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var readErr error
			router := gin.New()
			router.Use(BodyLimitMiddleware(tt.limit))
			router.POST("/predict", func(c *gin.Context) {
				_, readErr = io.ReadAll(c.Request.Body)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if tt.expectError {
				require.Error(t, readErr)
			} else {
				require.NoError(t, readErr)
			}
		})
	}
}
