package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uhjee/watchtek-daily-report-web/internal/service"
	"github.com/uhjee/watchtek-daily-report-web/pkg/response"
)

// MonthlyTaskHandler 월별 업무 목록 모듈 HTTP 처리기
type MonthlyTaskHandler struct {
	monthlySvc service.MonthlyTaskService
}

// NewMonthlyTaskHandler MonthlyTaskHandler 를 생성한다
func NewMonthlyTaskHandler(monthlySvc service.MonthlyTaskService) *MonthlyTaskHandler {
	return &MonthlyTaskHandler{monthlySvc: monthlySvc}
}

// parsePeriod year/month 쿼리 파라미터를 파싱한다
func parsePeriod(c *gin.Context) (year, month int, ok bool) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" || monthStr == "" {
		response.BadRequest(c, 22001, "year와 month 파라미터가 필요합니다")
		return 0, 0, false
	}

	year, errY := strconv.Atoi(yearStr)
	month, errM := strconv.Atoi(monthStr)
	if errY != nil || errM != nil {
		response.BadRequest(c, 22002, "올바른 year, month 값을 입력해주세요")
		return 0, 0, false
	}

	return year, month, true
}

// ListMonthlyTasks 월별 업무 목록 조회
// GET /api/v1/monthly-tasks?year=2025&month=11
func (h *MonthlyTaskHandler) ListMonthlyTasks(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	result, err := h.monthlySvc.List(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			response.BadRequest(c, 22002, "올바른 year, month 값을 입력해주세요")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
