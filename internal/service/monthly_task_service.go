package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/uhjee/watchtek-daily-report-web/internal/member"
	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// ── 월별 업무 목록 모듈 업무 오류 ──

var ErrInvalidPeriod = errors.New("올바른 year, month 값을 입력해주세요")

// MonthlyTaskResult 월별 업무 목록 조회 결과
type MonthlyTaskResult struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Tasks []model.ReportItem  `json:"tasks"`
	Total int                 `json:"total"`
	Weeks []dateutil.WeekSpan `json:"weeks"`
}

// MonthlyTaskService 월별 업무 목록 조회 업무 인터페이스
//
// 설계 설명:
//   - 달력 월 기준으로 조회한다 (보고서의 수요일 기준 월과 다름)
//   - 담당자 필터를 걸지 않고 전체 항목을 반환하며, 분류 기본값은 미분류를 쓴다
//   - 진행률은 원본 값을 그대로 둔다 (화면에서 스케일 처리)
type MonthlyTaskService interface {
	// List 해당 연/월의 업무 목록을 조회한다
	List(ctx context.Context, year, month int) (*MonthlyTaskResult, error)
}

type monthlyTaskService struct {
	source TaskSource
	dir    member.Directory
	logger *zap.Logger
}

// NewMonthlyTaskService MonthlyTaskService 인스턴스를 생성한다
func NewMonthlyTaskService(source TaskSource, dir member.Directory, logger *zap.Logger) MonthlyTaskService {
	return &monthlyTaskService{source: source, dir: dir, logger: logger}
}

func (s *monthlyTaskService) List(ctx context.Context, year, month int) (*MonthlyTaskResult, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}

	firstDay, lastDay := dateutil.MonthRange(year, time.Month(month))

	filter := &notion.Filter{And: []notion.Condition{
		dateOnOrAfter(firstDay),
		dateOnOrBefore(lastDay),
	}}

	pages, err := s.source.QueryAll(ctx, filter, nil)
	if err != nil {
		s.logger.Error("월별 업무 목록 조회 실패",
			zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		return nil, err
	}

	tasks := transformPages(pages, firstDay, MonthlyTaskPolicy, s.dir)

	return &MonthlyTaskResult{
		Year:  year,
		Month: month,
		Tasks: tasks,
		Total: len(tasks),
		Weeks: dateutil.WeeksOfMonth(year, time.Month(month)),
	}, nil
}
