package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		*captured = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	var captured string
	router := requestIDRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	header := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, captured)
}

func TestRequestIDEchoesValidInbound(t *testing.T) {
	var captured string
	router := requestIDRouter(&captured)
	inbound := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", inbound)
	router.ServeHTTP(w, req)

	assert.Equal(t, inbound, w.Header().Get("X-Request-ID"))
	assert.Equal(t, inbound, captured)
}

func TestRequestIDReplacesMalformedInbound(t *testing.T) {
	var captured string
	router := requestIDRouter(&captured)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "<script>alert(1)</script>")
	router.ServeHTTP(w, req)

	header := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, captured)
}

func TestRequestIDFromContextOutsideRequest(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
