package service

import (
	"context"

	"github.com/uhjee/watchtek-daily-report-web/config"
	"github.com/uhjee/watchtek-daily-report-web/internal/member"
	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// ── Mock TaskSource ──

// mockSource QueryAll 호출 순서대로 준비된 응답을 반환한다
type mockSource struct {
	responses [][]notion.Page
	filters   []*notion.Filter
	sorts     [][]notion.Sort
	err       error
}

func (m *mockSource) QueryAll(_ context.Context, filter *notion.Filter, sorts []notion.Sort) ([]notion.Page, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.filters = append(m.filters, filter)
	m.sorts = append(m.sorts, sorts)

	call := len(m.filters) - 1
	if call >= len(m.responses) {
		return nil, nil
	}
	return m.responses[call], nil
}

// ── Mock PagePublisher ──

type mockPublisher struct {
	createdProps    map[string]interface{}
	createdIcon     *notion.Icon
	createdChildren []notion.Block
	appended        [][]notion.Block
	createErr       error
	appendErr       error
}

func (m *mockPublisher) CreatePage(_ context.Context, properties map[string]interface{}, icon *notion.Icon, children []notion.Block) (notion.PageRef, error) {
	if m.createErr != nil {
		return notion.PageRef{}, m.createErr
	}
	m.createdProps = properties
	m.createdIcon = icon
	m.createdChildren = children
	return notion.PageRef{ID: "report-page", URL: "https://notion.so/report-page"}, nil
}

func (m *mockPublisher) AppendBlocks(_ context.Context, _ string, children []notion.Block) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, children)
	return nil
}

// ── 테스트 데이터 빌더 ──

func fptr(v float64) *float64 { return &v }

// taskPage 업무 데이터베이스 페이지를 만드는 테스트 헬퍼
func taskPage(id, title, group, subGroup, email string, progress float64, start, end string, manHour float64) notion.Page {
	page := notion.Page{
		ID: id,
		Properties: notion.PageProperties{
			Name:    &notion.TitleProp{Title: []notion.RichText{{PlainText: title}}},
			Date:    &notion.DateProp{Date: &notion.DateValue{Start: start, End: end}},
			ManHour: &notion.NumberProp{Number: fptr(manHour)},
		},
	}
	if group != "" {
		page.Properties.Group = &notion.SelectProp{Select: &notion.SelectOption{Name: group}}
	}
	if subGroup != "" {
		page.Properties.SubGroup = &notion.SelectProp{Select: &notion.SelectOption{Name: subGroup}}
	}
	if email != "" {
		page.Properties.Person = &notion.PeopleProp{People: []notion.Person{
			{Person: &notion.PersonEmail{Email: email}},
		}}
	}
	if progress >= 0 {
		page.Properties.Progress = &notion.NumberProp{Number: fptr(progress)}
	}
	return page
}

func withPms(page notion.Page, number float64, link string) notion.Page {
	page.Properties.PmsNumber = &notion.NumberProp{Number: fptr(number)}
	if link != "" {
		page.Properties.PmsLink = &notion.LinkProp{Formula: &notion.FormulaValue{String: link}}
	}
	return page
}

func testReportConfig() config.ReportConfig {
	return config.ReportConfig{
		PartName:             "큐브 파트",
		HighPriorityGroups:   []string{"kt cloud", "kt cloud - 상주"},
		SecondPriorityGroups: []string{"DCIM 구현", "DCIM프로젝트"},
		LowPriorityGroups:    []string{"자체결함", "기술지원팀 요청"},
		LowestPriorityGroups: []string{"회의", "기타"},
		SubGroupOrder:        []string{"분석", "설계/분석", "구현", "결함 처리", "개발 관리", "회의", "일반", "기타"},
	}
}

func testMembers() []config.MemberConfig {
	return []config.MemberConfig{
		{Email: "hjh@watchtek.co.kr", Name: "허지행", Priority: 1},
		{Email: "jmh@watchtek.co.kr", Name: "장민호", Priority: 2},
		{Email: "ldy@watchtek.co.kr", Name: "이동엽", Priority: 3},
	}
}

func testDirectory() member.Directory {
	return member.NewStaticDirectory(testMembers())
}

func testCalendar() *dateutil.Calendar {
	return dateutil.NewCalendar(dateutil.KoreanHolidays{})
}
