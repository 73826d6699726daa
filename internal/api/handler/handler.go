package handler

import "github.com/uhjee/watchtek-daily-report-web/internal/service"

// Handler 모든 Handler 의 집합 진입점
type Handler struct {
	Report      *ReportHandler
	MonthlyTask *MonthlyTaskHandler
	Export      *ExportHandler
}

// NewHandler Handler 집합을 생성한다
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Report:      NewReportHandler(svc.Report, svc.Publish),
		MonthlyTask: NewMonthlyTaskHandler(svc.MonthlyTask),
		Export:      NewExportHandler(svc.Export),
	}
}
