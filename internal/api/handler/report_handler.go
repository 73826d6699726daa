package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/uhjee/watchtek-daily-report-web/internal/dto"
	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/internal/service"
	"github.com/uhjee/watchtek-daily-report-web/pkg/response"
)

// ReportHandler 보고서 모듈 HTTP 처리기
type ReportHandler struct {
	reportSvc  service.ReportService
	publishSvc service.PublishService
}

// NewReportHandler ReportHandler 를 생성한다
func NewReportHandler(reportSvc service.ReportService, publishSvc service.PublishService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, publishSvc: publishSvc}
}

// GetReports 보고서 데이터 조회 (Notion 페이지 생성 없음)
// GET /api/v1/reports?date=YYYY-MM-DD
func (h *ReportHandler) GetReports(c *gin.Context) {
	date := c.Query("date")

	bundle, err := h.buildBundle(c.Request.Context(), date, false)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, bundle)
}

// CreateReports 보고서 생성 + Notion 페이지 발행
// POST /api/v1/reports  body: {"date": "YYYY-MM-DD"}
func (h *ReportHandler) CreateReports(c *gin.Context) {
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 21001, "요청 본문 형식이 올바르지 않습니다")
		return
	}

	bundle, err := h.buildBundle(c.Request.Context(), req.Date, true)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.Created(c, bundle)
}

// buildBundle 기준 날짜의 보고서 묶음을 생성한다. publish 가 참이면 Notion 페이지도 만든다.
func (h *ReportHandler) buildBundle(ctx context.Context, date string, publish bool) (*dto.ReportBundle, error) {
	types, err := h.reportSvc.DetermineReportTypes(date)
	if err != nil {
		return nil, err
	}
	if types.IsHoliday {
		return nil, service.ErrHolidayDate
	}

	bundle := &dto.ReportBundle{ReportTypes: types}

	if types.ShouldGenerateDaily {
		report, err := h.reportSvc.GenerateDaily(ctx, date)
		if err != nil {
			return nil, err
		}
		bundle.Daily, err = h.wrapReport(ctx, report, publish, h.publishSvc.PublishDaily)
		if err != nil {
			return nil, err
		}
	}

	if types.ShouldGenerateWeekly {
		report, err := h.reportSvc.GenerateWeekly(ctx, date)
		if err != nil {
			return nil, err
		}
		bundle.Weekly, err = h.wrapReport(ctx, report, publish, h.publishSvc.PublishWeekly)
		if err != nil {
			return nil, err
		}
	}

	if types.ShouldGenerateMonthly {
		report, err := h.reportSvc.GenerateMonthly(ctx, date)
		if err != nil {
			return nil, err
		}
		bundle.Monthly, err = h.wrapReport(ctx, report, publish, h.publishSvc.PublishMonthly)
		if err != nil {
			return nil, err
		}
	}

	return bundle, nil
}

func (h *ReportHandler) wrapReport(
	ctx context.Context,
	report *model.Report,
	publish bool,
	publishFn func(context.Context, *model.Report) (notion.PageRef, error),
) (*dto.PeriodReport, error) {
	period := &dto.PeriodReport{Report: *report}
	if !publish {
		return period, nil
	}

	ref, err := publishFn(ctx, report)
	if err != nil {
		return nil, err
	}
	period.NotionPageID = ref.ID
	period.NotionPageURL = ref.URL
	return period, nil
}

func (h *ReportHandler) handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 21002, "잘못된 날짜 형식입니다 (YYYY-MM-DD)")
	case errors.Is(err, service.ErrHolidayDate):
		response.BadRequest(c, 21003, "휴일에는 보고서를 생성하지 않습니다")
	default:
		response.InternalError(c)
	}
}
