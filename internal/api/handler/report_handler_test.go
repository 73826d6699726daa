package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/internal/service"
	"github.com/uhjee/watchtek-daily-report-web/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock ReportService ──

type mockReportService struct {
	types      model.ReportTypeDetermination
	typesErr   error
	reports    map[string]*model.Report
	generateErr error
}

func (m *mockReportService) DetermineReportTypes(_ string) (model.ReportTypeDetermination, error) {
	return m.types, m.typesErr
}

func (m *mockReportService) GenerateDaily(_ context.Context, _ string) (*model.Report, error) {
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return m.reports["daily"], nil
}

func (m *mockReportService) GenerateWeekly(_ context.Context, _ string) (*model.Report, error) {
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return m.reports["weekly"], nil
}

func (m *mockReportService) GenerateMonthly(_ context.Context, _ string) (*model.Report, error) {
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return m.reports["monthly"], nil
}

// ── Mock PublishService ──

type mockPublishService struct {
	published []string
	err       error
}

func (m *mockPublishService) publish(kind string) (notion.PageRef, error) {
	if m.err != nil {
		return notion.PageRef{}, m.err
	}
	m.published = append(m.published, kind)
	return notion.PageRef{ID: kind + "-page", URL: "https://notion.so/" + kind + "-page"}, nil
}

func (m *mockPublishService) PublishDaily(_ context.Context, _ *model.Report) (notion.PageRef, error) {
	return m.publish("daily")
}

func (m *mockPublishService) PublishWeekly(_ context.Context, _ *model.Report) (notion.PageRef, error) {
	return m.publish("weekly")
}

func (m *mockPublishService) PublishMonthly(_ context.Context, _ *model.Report) (notion.PageRef, error) {
	return m.publish("monthly")
}

// ── 테스트 보조 ──

func setupReportRouter(reportSvc service.ReportService, publishSvc service.PublishService) *gin.Engine {
	h := NewReportHandler(reportSvc, publishSvc)
	r := gin.New()
	r.GET("/api/v1/reports", h.GetReports)
	r.POST("/api/v1/reports", h.CreateReports)
	return r
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 파싱 실패: %v", err)
	}
	return resp
}

func testReports() map[string]*model.Report {
	return map[string]*model.Report{
		"daily":   {Date: "2025-11-06", Title: "큐브 파트 일일업무 보고 (2025-11-06)"},
		"weekly":  {Date: "2025-11-07", Title: "큐브 파트 주간업무 보고 (11월 2주차)"},
		"monthly": {Date: "2025-10-31", Title: "큐브 파트 월간업무 보고 (10월)"},
	}
}

// ── GetReports 테스트 ──

func TestGetReports_DailyOnly(t *testing.T) {
	reportSvc := &mockReportService{
		types:   model.ReportTypeDetermination{ShouldGenerateDaily: true},
		reports: testReports(),
	}
	publishSvc := &mockPublishService{}
	r := setupReportRouter(reportSvc, publishSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports?date=2025-11-06", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("기대 200, 실제 %d: %s", w.Code, w.Body.String())
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("기대 code 0, 실제 %d", resp.Code)
	}

	data := resp.Data.(map[string]interface{})
	if data["daily"] == nil {
		t.Error("일간 보고서가 응답에 없음")
	}
	if data["weekly"] != nil || data["monthly"] != nil {
		t.Error("주간/월간 보고서는 생성되지 않아야 함")
	}
	// 조회는 Notion 페이지를 만들지 않는다
	if len(publishSvc.published) != 0 {
		t.Errorf("조회 요청이 페이지를 발행함: %v", publishSvc.published)
	}
}

func TestGetReports_Holiday(t *testing.T) {
	reportSvc := &mockReportService{types: model.ReportTypeDetermination{IsHoliday: true}}
	r := setupReportRouter(reportSvc, &mockPublishService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports?date=2025-11-01", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("기대 400, 실제 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 21003 {
		t.Errorf("기대 code 21003, 실제 %d", resp.Code)
	}
}

func TestGetReports_InvalidDate(t *testing.T) {
	reportSvc := &mockReportService{typesErr: service.ErrInvalidDate}
	r := setupReportRouter(reportSvc, &mockPublishService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports?date=bad", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("기대 400, 실제 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 21002 {
		t.Errorf("기대 code 21002, 실제 %d", resp.Code)
	}
}

func TestGetReports_GenerateError(t *testing.T) {
	reportSvc := &mockReportService{
		types:       model.ReportTypeDetermination{ShouldGenerateDaily: true},
		generateErr: errors.New("notion API 오류"),
	}
	r := setupReportRouter(reportSvc, &mockPublishService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("기대 500, 실제 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 50000 {
		t.Errorf("기대 code 50000, 실제 %d", resp.Code)
	}
}

// ── CreateReports 테스트 ──

func TestCreateReports_PublishesAllTypes(t *testing.T) {
	reportSvc := &mockReportService{
		types: model.ReportTypeDetermination{
			ShouldGenerateDaily:   true,
			ShouldGenerateWeekly:  true,
			ShouldGenerateMonthly: true,
		},
		reports: testReports(),
	}
	publishSvc := &mockPublishService{}
	r := setupReportRouter(reportSvc, publishSvc)

	body := bytes.NewBufferString(`{"date":"2025-10-31"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("기대 201, 실제 %d: %s", w.Code, w.Body.String())
	}
	if len(publishSvc.published) != 3 {
		t.Errorf("3개 보고서 발행 기대, 실제 %v", publishSvc.published)
	}

	resp := decodeResponse(t, w)
	daily := resp.Data.(map[string]interface{})["daily"].(map[string]interface{})
	if daily["notionPageId"] != "daily-page" {
		t.Errorf("발행 페이지 ID 누락: %v", daily["notionPageId"])
	}
}

func TestCreateReports_InvalidBody(t *testing.T) {
	r := setupReportRouter(&mockReportService{}, &mockPublishService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader("날짜"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("기대 400, 실제 %d", w.Code)
	}
	if resp := decodeResponse(t, w); resp.Code != 21001 {
		t.Errorf("기대 code 21001, 실제 %d", resp.Code)
	}
}

func TestCreateReports_PublishError(t *testing.T) {
	reportSvc := &mockReportService{
		types:   model.ReportTypeDetermination{ShouldGenerateDaily: true},
		reports: testReports(),
	}
	publishSvc := &mockPublishService{err: errors.New("notion API 오류")}
	r := setupReportRouter(reportSvc, publishSvc)

	body := bytes.NewBufferString(`{"date":"2025-11-06"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("기대 500, 실제 %d", w.Code)
	}
}
