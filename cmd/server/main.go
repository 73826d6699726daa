package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/uhjee/watchtek-daily-report-web/config"
	"github.com/uhjee/watchtek-daily-report-web/internal/api/handler"
	"github.com/uhjee/watchtek-daily-report-web/internal/api/router"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/internal/service"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
	applogger "github.com/uhjee/watchtek-daily-report-web/pkg/logger"
)

func main() {
	// 1. 설정 로드
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로거 초기화
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "로거 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("애플리케이션 시작",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Notion 클라이언트 초기화
	client, err := notion.NewClient(cfg.Notion, logger)
	if err != nil {
		logger.Fatal("Notion 클라이언트 초기화 실패", zap.Error(err))
	}

	// 4. 의존성 주입: Calendar → Service → Handler
	cal := dateutil.NewCalendar(dateutil.KoreanHolidays{})
	svc := service.NewService(cfg, client, cal, logger)
	h := handler.NewHandler(svc)

	// 5. 라우터 초기화
	engine := router.Setup(cfg, h, logger)

	// 6. HTTP 서버 기동 (우아한 종료)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 서버 기동 완료", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 서버 오류", zap.Error(err))
		}
	}()

	// 7. 시스템 시그널 대기 후 우아한 종료
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("종료 시그널 수신, 종료 절차 시작", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("서버 종료 중 오류", zap.Error(err))
	}

	logger.Info("서버 종료 완료")
}
