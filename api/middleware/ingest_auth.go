package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IngestSecretHeader carries the shared secret the producer pipeline sends
// with every ingest call.
const IngestSecretHeader = "X-Ingest-Secret"

// IngestAuthMiddleware 는 인제스트 엔드포인트를 파이프라인 공유 시크릿으로
// 보호한다. 시크릿이 설정되지 않은 서버는 인제스트를 전면 거부한다.
func IngestAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "ingest_disabled"})
			return
		}

		provided := c.GetHeader(IngestSecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid_ingest_secret"})
			return
		}

		c.Next()
	}
}
