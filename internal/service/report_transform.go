package service

import (
	"math"

	"github.com/uhjee/watchtek-daily-report-web/internal/member"
	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// TransformPolicy 원본 페이지 → 보고서 항목 변환 정책.
// 호출 경로별로 기본 분류와 진행률 스케일이 다르다.
type TransformPolicy struct {
	DefaultGroup    string
	DefaultSubGroup string
	// RescaleProgress Notion 의 0~1 진행률을 0~100 으로 환산할지 여부
	RescaleProgress bool
}

var (
	// PrimaryPolicy 일간/주간/월간 보고서 파이프라인 변환 정책
	PrimaryPolicy = TransformPolicy{DefaultGroup: "기타", DefaultSubGroup: "일반", RescaleProgress: true}
	// MonthlyTaskPolicy 월별 업무 목록 조회 변환 정책
	MonthlyTaskPolicy = TransformPolicy{DefaultGroup: "미분류", DefaultSubGroup: "미분류", RescaleProgress: false}
)

// expandMultiPerson 담당자가 여러 명인 페이지를 담당자별로 복제한다.
// 복제본은 담당자 한 명만 갖는 값 복사본이다.
func expandMultiPerson(pages []notion.Page) []notion.Page {
	expanded := make([]notion.Page, 0, len(pages))

	for _, page := range pages {
		people := page.People()
		if len(people) <= 1 {
			expanded = append(expanded, page)
			continue
		}
		for _, person := range people {
			expanded = append(expanded, page.WithSinglePerson(person))
		}
	}

	return expanded
}

// dateInRange target 날짜가 start~end 범위에 포함되는지 확인한다 (end 비어 있으면 단일 일자)
func dateInRange(target, start, end string) bool {
	if start == "" {
		return false
	}
	if end == "" {
		end = start
	}
	return target >= start && target <= end
}

// transformPages 원본 페이지 목록을 보고서 항목으로 변환한다.
// 제목 또는 시작 날짜가 없는 페이지는 버린다.
// isToday/isTomorrow 는 기준 날짜를 기준으로 날짜 범위 포함 여부로 계산한다.
func transformPages(pages []notion.Page, refDate string, policy TransformPolicy, dir member.Directory) []model.ReportItem {
	nextDate := dateutil.Tomorrow(refDate)

	items := make([]model.ReportItem, 0, len(pages))
	for _, page := range pages {
		title := page.TitleText()
		if title == "" {
			continue
		}
		start, end, ok := page.DateRange()
		if !ok {
			continue
		}

		// 담당자: 비어 있으면 미지정, 미등록 이메일은 로컬 파트 파생 이름
		person := member.UnassignedName
		if people := page.People(); len(people) > 0 {
			if email := people[0].ResolvedEmail(); email != "" {
				info, _ := dir.Resolve(email)
				person = info.Name
			}
		}

		group := page.Properties.Group.SelectName()
		if group == "" {
			group = policy.DefaultGroup
		}
		subGroup := page.Properties.SubGroup.SelectName()
		if subGroup == "" {
			subGroup = policy.DefaultSubGroup
		}

		progress, _ := page.Properties.Progress.Value()
		if policy.RescaleProgress {
			progress *= 100
		}
		manHour, _ := page.Properties.ManHour.Value()

		pmsNumber := 0
		if n, ok := page.Properties.PmsNumber.Value(); ok {
			pmsNumber = int(math.Round(n))
		}

		items = append(items, model.ReportItem{
			ID:           page.ID,
			Title:        title,
			Customer:     page.Properties.Customer.SelectName(),
			Group:        group,
			SubGroup:     subGroup,
			Person:       person,
			ProgressRate: progress,
			Date:         model.DateRange{Start: start, End: end},
			IsToday:      dateInRange(refDate, start, end),
			IsTomorrow:   dateInRange(nextDate, start, end),
			ManHour:      manHour,
			PmsNumber:    pmsNumber,
			PmsLink:      page.PmsLinkURL(),
		})
	}

	return items
}
