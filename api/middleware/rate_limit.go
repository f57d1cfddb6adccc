package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clip-letter/auth"
	"clip-letter/config"
	"clip-letter/ratelimit"
)

// RateLimitMiddleware 는 공개 읽기 엔드포인트에 슬라이딩 윈도우 한도를
// 적용한다. 모든 요청은 IP 카운터에 걸리고, 유효한 JWT 가 있으면 사용자
// 카운터(분/일)도 함께 검사한다. 토큰이 없거나 깨진 요청은 익명으로
// 취급한다 — JWT 는 여기서 식별 수단이지 인증 게이트가 아니다.
func RateLimitMiddleware(limiter *ratelimit.Limiter, jwtMgr *auth.JWTManager, cfg config.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		quotas := []ratelimit.Quota{
			{Key: "ip:" + c.ClientIP(), Limit: cfg.IPPerMinute, Window: time.Minute},
		}

		if jwtMgr != nil {
			if token, err := auth.ExtractBearerToken(c); err == nil {
				if sub, err := jwtMgr.Parse(token); err == nil {
					quotas = append(quotas,
						ratelimit.Quota{Key: "user:minute:" + sub, Limit: cfg.UserPerMinute, Window: time.Minute},
						ratelimit.Quota{Key: "user:day:" + sub, Limit: cfg.UserPerDay, Window: 24 * time.Hour},
					)
					c.Set("user_code", sub)
				}
			}
		}

		if !limiter.AllowAll(quotas) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
