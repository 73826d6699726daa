package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/uhjee/watchtek-daily-report-web/pkg/response"
)

// RateLimit 클라이언트 IP별 토큰 버킷 속도 제한 미들웨어.
// 보고서 생성은 Notion API 호출을 동반하므로 과도한 반복 요청을 차단한다.
// rps: 초당 허용 요청 수, burst: 순간 허용량
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if limiter, ok := limiters[ip]; ok {
			return limiter
		}
		limiter := rate.NewLimiter(rate.Limit(rps), burst)
		limiters[ip] = limiter
		return limiter
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, 10004, "요청이 너무 잦습니다. 잠시 후 다시 시도해주세요")
			c.Abort()
			return
		}
		c.Next()
	}
}
