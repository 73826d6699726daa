package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/uhjee/watchtek-daily-report-web/config"
	"github.com/uhjee/watchtek-daily-report-web/internal/member"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// TaskSource 업무 데이터 조회 인터페이스 (notion.Client 가 구현)
type TaskSource interface {
	QueryAll(ctx context.Context, filter *notion.Filter, sorts []notion.Sort) ([]notion.Page, error)
}

// PagePublisher 보고서 페이지 생성 인터페이스 (notion.Client 가 구현)
type PagePublisher interface {
	CreatePage(ctx context.Context, properties map[string]interface{}, icon *notion.Icon, children []notion.Block) (notion.PageRef, error)
	AppendBlocks(ctx context.Context, pageID string, children []notion.Block) error
}

// Service 모든 Service 의 집합 진입점
type Service struct {
	Report      ReportService
	Publish     PublishService
	MonthlyTask MonthlyTaskService
	Export      ExportService
}

// NewService Service 집합을 생성한다
func NewService(
	cfg *config.Config,
	client *notion.Client,
	cal *dateutil.Calendar,
	logger *zap.Logger,
) *Service {
	dir := member.NewStaticDirectory(cfg.Members)
	monthlyTask := NewMonthlyTaskService(client, dir, logger)

	return &Service{
		Report:      NewReportService(cfg.Report, client, dir, cal, logger),
		Publish:     NewPublishService(cfg.Report.PartName, client, logger),
		MonthlyTask: monthlyTask,
		Export:      NewExportService(cfg.Report.PartName, cfg.Members, monthlyTask, logger),
	}
}
