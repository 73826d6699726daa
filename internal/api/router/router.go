package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/uhjee/watchtek-daily-report-web/config"
	"github.com/uhjee/watchtek-daily-report-web/internal/api/handler"
	"github.com/uhjee/watchtek-daily-report-web/internal/api/middleware"
)

// Setup Gin 라우터 엔진을 초기화하여 반환한다
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.RateLimit(10, 20))

	// ── 헬스 체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 보고서 모듈
		reports := v1.Group("/reports")
		{
			reports.GET("", h.Report.GetReports)
			reports.POST("", h.Report.CreateReports)
		}

		// 월별 업무 목록 모듈
		v1.GET("/monthly-tasks", h.MonthlyTask.ListMonthlyTasks)

		// 내보내기 모듈
		export := v1.Group("/export")
		{
			export.GET("/monthly-tasks", h.Export.ExportMonthlyTasks)
		}
	}

	return r
}
