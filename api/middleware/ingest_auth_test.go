package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIngestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IngestAuthMiddleware(secret))
	r.POST("/ingest", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestIngestAuthMiddleware(t *testing.T) {
	r := newIngestRouter("pipeline-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/ingest", nil)
	req.Header.Set(IngestSecretHeader, "pipeline-secret")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/ingest", nil)
	req.Header.Set(IngestSecretHeader, "wrong")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/ingest", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIngestAuthMiddlewareNoSecretConfigured(t *testing.T) {
	r := newIngestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/ingest", nil)
	req.Header.Set(IngestSecretHeader, "anything")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
