package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/uhjee/watchtek-daily-report-web/config"
	"github.com/uhjee/watchtek-daily-report-web/internal/leave"
	"github.com/uhjee/watchtek-daily-report-web/internal/member"
	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// ── 보고서 모듈 업무 오류 ──

var (
	ErrInvalidDate = errors.New("잘못된 날짜 형식입니다 (YYYY-MM-DD)")
	ErrHolidayDate = errors.New("휴일에는 보고서를 생성할 수 없습니다")
)

// ReportService 보고서 생성 업무 인터페이스
//
// 설계 설명:
//   - 날짜 파라미터는 YYYY-MM-DD 문자열, 빈 문자열이면 KST 오늘
//   - 조회 실패 시 부분 결과 없이 전체 호출이 실패한다
//   - Notion 페이지 생성은 PublishService 가 별도로 담당한다
type ReportService interface {
	// DetermineReportTypes 기준 날짜에 생성할 보고서 타입을 판단한다
	DetermineReportTypes(date string) (model.ReportTypeDetermination, error)
	// GenerateDaily 일일 보고서를 생성한다
	GenerateDaily(ctx context.Context, date string) (*model.Report, error)
	// GenerateWeekly 주간 보고서를 생성한다
	GenerateWeekly(ctx context.Context, date string) (*model.Report, error)
	// GenerateMonthly 월간 보고서를 생성한다
	GenerateMonthly(ctx context.Context, date string) (*model.Report, error)
}

type reportService struct {
	cfg     config.ReportConfig
	source  TaskSource
	dir     member.Directory
	cal     *dateutil.Calendar
	grouper *grouper
	logger  *zap.Logger
	now     func() time.Time
}

// NewReportService ReportService 인스턴스를 생성한다
func NewReportService(
	cfg config.ReportConfig,
	source TaskSource,
	dir member.Directory,
	cal *dateutil.Calendar,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		cfg:     cfg,
		source:  source,
		dir:     dir,
		cal:     cal,
		grouper: newGrouper(cfg, dir),
		logger:  logger,
		now:     time.Now,
	}
}

// resolveDate 빈 날짜를 오늘로 보정하고 형식을 검증한다
func (s *reportService) resolveDate(date string) (string, error) {
	if date == "" {
		return dateutil.Today(s.now()), nil
	}
	if _, err := dateutil.ParseDate(date); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return date, nil
}

func (s *reportService) DetermineReportTypes(date string) (model.ReportTypeDetermination, error) {
	targetDate, err := s.resolveDate(date)
	if err != nil {
		return model.ReportTypeDetermination{}, err
	}

	// 휴일이면 어떤 보고서도 생성하지 않는다
	if s.cal.IsHoliday(targetDate) {
		return model.ReportTypeDetermination{IsHoliday: true}, nil
	}

	return model.ReportTypeDetermination{
		IsHoliday: false,
		// 일간: 휴일이 아니면 항상 생성
		ShouldGenerateDaily: true,
		// 주간: 해당 주의 마지막 평일에 생성
		ShouldGenerateWeekly: s.cal.IsLastWeekdayOfWeek(targetDate),
		// 월간: 해당 월(수요일 기준) 마지막 주의 마지막 평일에 생성
		ShouldGenerateMonthly: s.cal.IsLastWeekdayOfMonth(targetDate),
	}, nil
}

// loadItems 조회 → 다중 담당자 분리 → 변환 → 중복 제거 파이프라인
func (s *reportService) loadItems(
	ctx context.Context,
	filter *notion.Filter,
	sorts []notion.Sort,
	refDate string,
	policy TransformPolicy,
) ([]model.ReportItem, error) {
	pages, err := s.source.QueryAll(ctx, filter, sorts)
	if err != nil {
		return nil, err
	}
	items := transformPages(expandMultiPerson(pages), refDate, policy, s.dir)
	return dedupeReports(items), nil
}

func personNotEmpty() notion.Condition {
	return notion.Condition{Property: "Person", People: &notion.PeopleCondition{IsNotEmpty: true}}
}

func dateOnOrAfter(date string) notion.Condition {
	return notion.Condition{Property: "Date", Date: &notion.DateCondition{OnOrAfter: date}}
}

func dateOnOrBefore(date string) notion.Condition {
	return notion.Condition{Property: "Date", Date: &notion.DateCondition{OnOrBefore: date}}
}

var sortByCreatedDesc = []notion.Sort{{Timestamp: "created_time", Direction: "descending"}}
var sortByDateAsc = []notion.Sort{{Property: "Date", Direction: "ascending"}}

func (s *reportService) GenerateDaily(ctx context.Context, date string) (*model.Report, error) {
	targetDate, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	// 1. 기준 날짜/다음날 작업 조회 (주 시작부터 넓게 가져온 뒤 범위 플래그로 거른다)
	weekStart, _ := dateutil.ThisWeekMondayToToday(targetDate)
	dailyFilter := &notion.Filter{And: []notion.Condition{
		dateOnOrAfter(weekStart),
		dateOnOrBefore(dateutil.Tomorrow(targetDate)),
		personNotEmpty(),
	}}
	dailyItems, err := s.loadItems(ctx, dailyFilter, sortByCreatedDesc, targetDate, PrimaryPolicy)
	if err != nil {
		s.logger.Error("일일 보고서 데이터 조회 실패", zap.Error(err))
		return nil, err
	}

	// 2. 진행업무: 기준 날짜가 범위에 포함되는 작업
	var todayItems []model.ReportItem
	for _, item := range dailyItems {
		if item.IsToday {
			todayItems = append(todayItems, item)
		}
	}
	inProgress := s.grouper.Group(todayItems)

	// 3. 예정업무: 다음날 작업 또는 미완료 진행 작업.
	//    근태 항목은 진행률과 무관하게 실제 날짜로만 판단한다.
	var plannedItems []model.ReportItem
	for _, item := range dailyItems {
		if leave.IsLeave(item) {
			if item.IsTomorrow {
				plannedItems = append(plannedItems, item)
			}
			continue
		}
		if item.IsTomorrow || (item.IsToday && item.ProgressRate < 100) {
			plannedItems = append(plannedItems, item)
		}
	}
	planned := s.grouper.Group(plannedItems)

	// 4. 주간 누적 데이터 (상단 공수 현황과 주간 전체 작업 목록용)
	weeklyFilter := &notion.Filter{And: []notion.Condition{
		personNotEmpty(),
		dateOnOrAfter(weekStart),
		dateOnOrBefore(targetDate),
	}}
	weeklyItems, err := s.loadItems(ctx, weeklyFilter, sortByDateAsc, targetDate, PrimaryPolicy)
	if err != nil {
		s.logger.Error("주간 누적 데이터 조회 실패", zap.Error(err))
		return nil, err
	}

	report := &model.Report{
		Date:            targetDate,
		Title:           fmt.Sprintf("%s 일일업무 보고 (%s)", s.cfg.PartName, targetDate),
		ManHourSummary:  s.weeklyManHourSummary(weeklyItems, targetDate),
		ManHourByPerson: s.createManHourByPerson(dailyItems),
		Tasks: model.ReportTasks{
			InProgress: inProgress,
			Planned:    planned,
		},
		WeeklyTasks: s.grouper.Group(weeklyItems),
		CreatedAt:   s.now(),
	}

	s.logger.Info("일일 보고서 생성 완료",
		zap.String("date", targetDate),
		zap.Int("tasks", len(dailyItems)),
	)
	return report, nil
}

func (s *reportService) GenerateWeekly(ctx context.Context, date string) (*model.Report, error) {
	targetDate, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	// 이번 주 전체 작업 (Notion this_week 필터)
	filter := &notion.Filter{And: []notion.Condition{
		personNotEmpty(),
		{Property: "Date", Date: &notion.DateCondition{ThisWeek: &struct{}{}}},
	}}
	items, err := s.loadItems(ctx, filter, sortByCreatedDesc, targetDate, PrimaryPolicy)
	if err != nil {
		s.logger.Error("주간 보고서 데이터 조회 실패", zap.Error(err))
		return nil, err
	}

	workloads := s.withLeaveInfo(s.createManHourByPerson(items), items)

	report := &model.Report{
		Date:            targetDate,
		Title:           fmt.Sprintf("%s 주간업무 보고 (%s)", s.cfg.PartName, dateutil.WeekOfMonth(targetDate)),
		ManHourSummary:  s.summarizeWithLeave(workloads),
		ManHourByGroup:  s.manHourByGroup(items),
		ManHourByPerson: workloads,
		Tasks: model.ReportTasks{
			InProgress: s.grouper.Group(items),
		},
		CreatedAt: s.now(),
	}

	s.logger.Info("주간 보고서 생성 완료",
		zap.String("date", targetDate),
		zap.Int("tasks", len(items)),
	)
	return report, nil
}

func (s *reportService) GenerateMonthly(ctx context.Context, date string) (*model.Report, error) {
	targetDate, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	// 수요일 기준 월 범위의 전체 작업
	firstDay, lastDay := dateutil.CurrentMonthRangeByWednesday(targetDate)
	filter := &notion.Filter{And: []notion.Condition{
		personNotEmpty(),
		dateOnOrAfter(firstDay),
		dateOnOrBefore(lastDay),
	}}
	items, err := s.loadItems(ctx, filter, sortByDateAsc, targetDate, PrimaryPolicy)
	if err != nil {
		s.logger.Error("월간 보고서 데이터 조회 실패", zap.Error(err))
		return nil, err
	}

	// 진행업무(0 < 진행률 < 100) / 완료업무(진행률 100) 구분
	var progressItems, completedItems []model.ReportItem
	for _, item := range items {
		switch {
		case item.ProgressRate > 0 && item.ProgressRate < 100:
			progressItems = append(progressItems, item)
		case item.ProgressRate == 100:
			completedItems = append(completedItems, item)
		}
	}

	workloads := s.withLeaveInfo(s.createManHourByPerson(items), items)

	month, _ := dateutil.ParseDate(firstDay)

	report := &model.Report{
		Date:            targetDate,
		Title:           fmt.Sprintf("%s 월간업무 보고 (%d월)", s.cfg.PartName, int(month.Month())),
		ManHourSummary:  s.summarizeWithLeave(workloads),
		ManHourByPerson: workloads,
		Tasks: model.ReportTasks{
			InProgress: s.grouper.Group(progressItems),
			Completed:  s.grouper.Group(completedItems),
		},
		CreatedAt: s.now(),
	}

	s.logger.Info("월간 보고서 생성 완료",
		zap.String("date", targetDate),
		zap.Int("tasks", len(items)),
	)
	return report, nil
}
