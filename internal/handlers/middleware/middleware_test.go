//go:build unit

package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/handlers/middleware"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(mw...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "nope"})
	})
	router.GET("/boom", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})

	return router
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	router := newRouter(middleware.RequestID())

	rec := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)

	router.ServeHTTP(rec, req)

	id := rec.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, id)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID_EchoesInbound(t *testing.T) {
	router := newRouter(middleware.RequestID())

	rec := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.RequestIDHeader, "trace-123")

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestLogger_LevelFollowsStatus(t *testing.T) {
	testCases := []struct {
		name      string
		target    string
		wantLevel string
	}{
		{name: "success logs info", target: "/ping", wantLevel: `"level":"info"`},
		{name: "client error logs warn", target: "/missing", wantLevel: `"level":"warn"`},
		{name: "server error logs error", target: "/boom", wantLevel: `"level":"error"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			router := newRouter(middleware.RequestID(), middleware.RequestLogger(logger))

			rec := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, tc.target, nil)
			require.NoError(t, err)
			req.Header.Set(middleware.RequestIDHeader, "trace-456")

			router.ServeHTTP(rec, req)

			line := buf.String()
			assert.Contains(t, line, tc.wantLevel)
			assert.Contains(t, line, `"method":"GET"`)
			assert.Contains(t, line, `"path":"`+tc.target+`"`)
			assert.Contains(t, line, `"request_id":"trace-456"`)
			assert.Contains(t, line, "request completed")
		})
	}
}
