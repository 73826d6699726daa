package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// 보고서 페이지 Tags 값과 아이콘
const (
	tagDaily   = "일간"
	tagWeekly  = "주간"
	tagMonthly = "월간"

	iconDaily   = "📝"
	iconWeekly  = "🔶"
	iconMonthly = "📊"
)

// PublishService 보고서를 Notion 페이지로 발행하는 업무 인터페이스
//
// 설계 설명:
//   - 페이지 생성은 1회 요청 100블록 한도에 맞춰 첫 배치로 생성 후 나머지를 순차 추가한다
//   - 개인별 공수 표는 본문 생성 후 별도 배치로 덧붙인다
type PublishService interface {
	// PublishDaily 일일 보고서 페이지를 생성한다
	PublishDaily(ctx context.Context, report *model.Report) (notion.PageRef, error)
	// PublishWeekly 주간 보고서 페이지를 생성한다
	PublishWeekly(ctx context.Context, report *model.Report) (notion.PageRef, error)
	// PublishMonthly 월간 보고서 페이지를 생성한다
	PublishMonthly(ctx context.Context, report *model.Report) (notion.PageRef, error)
}

type publishService struct {
	partName  string
	publisher PagePublisher
	formatter *TextFormatter
	logger    *zap.Logger
}

// NewPublishService PublishService 인스턴스를 생성한다
func NewPublishService(partName string, publisher PagePublisher, logger *zap.Logger) PublishService {
	return &publishService{
		partName:  partName,
		publisher: publisher,
		formatter: NewTextFormatter(partName),
		logger:    logger,
	}
}

// pageProperties 보고서 페이지 공통 속성 (제목 + Date + Tags)
func pageProperties(title, date, tag string) map[string]interface{} {
	return map[string]interface{}{
		"title": map[string]interface{}{
			"title": []interface{}{
				map[string]interface{}{
					"text": map[string]string{"content": title},
				},
			},
		},
		"Date": map[string]interface{}{
			"date": map[string]string{"start": date},
		},
		"Tags": map[string]interface{}{
			"select": map[string]string{"name": tag},
		},
	}
}

// createWithBatches 첫 배치로 페이지를 생성하고 나머지 블록을 순차 추가한다
func (s *publishService) createWithBatches(
	ctx context.Context,
	properties map[string]interface{},
	icon *notion.Icon,
	blocks []notion.Block,
) (notion.PageRef, error) {
	batches := notion.BatchBlocks(blocks)

	var first []notion.Block
	if len(batches) > 0 {
		first = batches[0]
	}
	ref, err := s.publisher.CreatePage(ctx, properties, icon, first)
	if err != nil {
		return notion.PageRef{}, err
	}

	for _, batch := range batches[1:] {
		if err := s.publisher.AppendBlocks(ctx, ref.ID, batch); err != nil {
			return notion.PageRef{}, err
		}
	}
	return ref, nil
}

// appendInBatches 블록 목록을 100개 단위로 나누어 페이지에 추가한다
func (s *publishService) appendInBatches(ctx context.Context, pageID string, blocks []notion.Block) error {
	for _, batch := range notion.BatchBlocks(blocks) {
		if err := s.publisher.AppendBlocks(ctx, pageID, batch); err != nil {
			return err
		}
	}
	return nil
}

func (s *publishService) PublishDaily(ctx context.Context, report *model.Report) (notion.PageRef, error) {
	title := fmt.Sprintf("%s 일일업무 보고 (%s)", s.partName, dateutil.ShortDate(report.Date))
	properties := pageProperties(title, report.Date, tagDaily)
	icon := &notion.Icon{Type: "emoji", Emoji: iconDaily}

	// 본문: 공수 현황 문단 + 업무 목록 코드 블록
	blocks := []notion.Block{
		notion.Heading2("일일 공수 현황", ""),
		notion.Paragraph(s.formatter.ManHourSummary(report.ManHourSummary)),
	}
	blocks = append(blocks, notion.CodeBlocks(s.formatter.Tasks(report.Tasks.InProgress, taskTypeInProgress), "plain text")...)
	blocks = append(blocks, notion.CodeBlocks(s.formatter.Tasks(report.Tasks.Planned, taskTypePlanned), "plain text")...)

	ref, err := s.createWithBatches(ctx, properties, icon, blocks)
	if err != nil {
		s.logger.Error("일일 보고서 페이지 생성 실패", zap.Error(err))
		return notion.PageRef{}, err
	}

	if err := s.appendInBatches(ctx, ref.ID, personWorkloadBlocks(report.ManHourByPerson)); err != nil {
		s.logger.Error("개인별 공수 블록 추가 실패", zap.Error(err))
		return notion.PageRef{}, err
	}

	s.logger.Info("일일 보고서 페이지 발행 완료", zap.String("page_id", ref.ID))
	return ref, nil
}

func (s *publishService) PublishWeekly(ctx context.Context, report *model.Report) (notion.PageRef, error) {
	title := fmt.Sprintf("%s %s 주간업무 보고", dateutil.WeekOfMonth(report.Date), s.partName)
	properties := pageProperties(title, report.Date, tagWeekly)
	icon := &notion.Icon{Type: "emoji", Emoji: iconWeekly}

	blocks := []notion.Block{
		notion.Heading1(title, ""),
		notion.Heading2("주간 공수 현황", ""),
		notion.Paragraph(s.formatter.WeeklyManHourSummary(report.ManHourSummary)),
		notion.Paragraph(s.formatter.ManHourByGroup(report.ManHourByGroup)),
		notion.Heading2("금주 진행 사항", "yellow_background"),
	}
	blocks = append(blocks, groupSectionBlocks(report.Tasks.InProgress)...)

	ref, err := s.createWithBatches(ctx, properties, icon, blocks)
	if err != nil {
		s.logger.Error("주간 보고서 페이지 생성 실패", zap.Error(err))
		return notion.PageRef{}, err
	}

	if err := s.appendInBatches(ctx, ref.ID, personWorkloadBlocks(report.ManHourByPerson)); err != nil {
		s.logger.Error("개인별 공수 블록 추가 실패", zap.Error(err))
		return notion.PageRef{}, err
	}

	s.logger.Info("주간 보고서 페이지 발행 완료", zap.String("page_id", ref.ID))
	return ref, nil
}

func (s *publishService) PublishMonthly(ctx context.Context, report *model.Report) (notion.PageRef, error) {
	d, err := dateutil.ParseDate(report.Date)
	if err != nil {
		return notion.PageRef{}, fmt.Errorf("%w: %s", ErrInvalidDate, report.Date)
	}
	title := fmt.Sprintf("%d년 %d월 %s 월간업무 보고", d.Year(), int(d.Month()), s.partName)
	properties := pageProperties(title, report.Date, tagMonthly)
	icon := &notion.Icon{Type: "emoji", Emoji: iconMonthly}

	blocks := []notion.Block{
		notion.Heading1(title, ""),
		notion.Heading2("진행 중인 업무", "yellow_background"),
	}
	blocks = append(blocks, groupSectionBlocks(report.Tasks.InProgress)...)
	blocks = append(blocks, notion.Divider())
	blocks = append(blocks, notion.Heading2("완료된 업무", "yellow_background"))
	blocks = append(blocks, groupSectionBlocks(report.Tasks.Completed)...)

	ref, err := s.createWithBatches(ctx, properties, icon, blocks)
	if err != nil {
		s.logger.Error("월간 보고서 페이지 생성 실패", zap.Error(err))
		return notion.PageRef{}, err
	}

	if err := s.appendInBatches(ctx, ref.ID, personWorkloadBlocks(report.ManHourByPerson)); err != nil {
		s.logger.Error("개인별 공수 블록 추가 실패", zap.Error(err))
		return notion.PageRef{}, err
	}

	s.logger.Info("월간 보고서 페이지 발행 완료", zap.String("page_id", ref.ID))
	return ref, nil
}

// groupSectionBlocks 그룹 단위 업무 목록 블록을 생성한다.
// 그룹명 Heading 3 → [서브그룹] 문단 → 항목별 글머리 기호 순서.
func groupSectionBlocks(tasks []model.GroupedTaskList) []notion.Block {
	var blocks []notion.Block

	for i, section := range collectByGroup(tasks) {
		blocks = append(blocks, notion.Heading3(fmt.Sprintf("%d. %s", i+1, section.Group), ""))
		for _, list := range section.Lists {
			blocks = append(blocks, notion.Paragraph("["+list.SubGroup+"]"))
			for _, item := range list.Items {
				text := item.Title + "(" + item.Person
				if item.Progress > 0 {
					text += fmt.Sprintf(", %d%%", item.Progress)
				}
				text += ")"
				blocks = append(blocks, notion.BulletedItem(text))
			}
		}
	}

	return blocks
}

// personWorkloadBlocks 개인별 공수 및 진행 상황 블록을 생성한다 (표 형태).
// 공수가 0인 작업은 제외하고, 회의 그룹은 표의 가장 아래로 내린다.
func personWorkloadBlocks(workloads []model.PersonWorkload) []notion.Block {
	if len(workloads) == 0 {
		return nil
	}

	blocks := []notion.Block{notion.Heading2("개인별 공수 및 진행 상황", "")}

	for _, workload := range workloads {
		heading := fmt.Sprintf("%s - total: %sm/h, %d건",
			workload.Name, formatHours(workload.TotalManHour), len(workload.Reports))
		blocks = append(blocks, notion.Heading3(heading, ""))

		var reports []model.ReportItem
		for _, report := range workload.Reports {
			if report.ManHour > 0 {
				reports = append(reports, report)
			}
		}
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].Group != "회의" && reports[j].Group == "회의"
		})

		if len(reports) == 0 {
			continue
		}

		rows := [][]notion.TableCell{{
			{Text: "번호"},
			{Text: "PMS 관리 번호"},
			{Text: "타이틀"},
			{Text: "그룹"},
			{Text: "진행도"},
			{Text: "공수(m/h)"},
		}}
		for i, report := range reports {
			pmsCell := notion.TableCell{Text: formatPmsNumber(report.PmsNumber)}
			if report.PmsLink != "" && report.PmsNumber != 0 {
				pmsCell.Link = report.PmsLink
			}
			rows = append(rows, []notion.TableCell{
				{Text: fmt.Sprintf("%d", i + 1)},
				pmsCell,
				{Text: cleanTitle(report.Title)},
				{Text: report.Group},
				{Text: formatHours(report.ProgressRate) + "%"},
				{Text: formatHours(report.ManHour)},
			})
		}
		blocks = append(blocks, notion.Table(rows, true))
	}

	return blocks
}

// formatPmsNumber PMS 번호를 "#번호" 형식으로 표기한다 (없으면 빈 문자열)
func formatPmsNumber(pmsNumber int) string {
	if pmsNumber == 0 {
		return ""
	}
	return fmt.Sprintf("#%d", pmsNumber)
}

// cleanTitle 제목의 "#-" 접두사를 제거한다
func cleanTitle(title string) string {
	if strings.HasPrefix(title, "#-") {
		return strings.TrimSpace(title[2:])
	}
	return title
}
