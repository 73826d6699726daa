package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/uhjee/watchtek-daily-report-web/internal/service"
	"github.com/uhjee/watchtek-daily-report-web/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 내보내기 모듈 HTTP 처리기
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler ExportHandler 를 생성한다
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportMonthlyTasks 월별 업무 목록 Excel 다운로드
// GET /api/v1/export/monthly-tasks?year=2025&month=11
func (h *ExportHandler) ExportMonthlyTasks(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportMonthlyTasks(c.Request.Context(), year, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	// 다운로드 응답 헤더
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPeriod):
		response.BadRequest(c, 22002, "올바른 year, month 값을 입력해주세요")
	case errors.Is(err, service.ErrExportNoTasks):
		response.NotFound(c, 23001, "해당 월에 내보낼 업무가 없습니다")
	default:
		response.InternalError(c)
	}
}
