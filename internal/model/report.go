package model

import "time"

// DateRange 작업 날짜 범위. End 가 빈 문자열이면 단일 일자를 의미한다.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Effective 유효 날짜 (End 우선, 없으면 Start)
func (r DateRange) Effective() string {
	if r.End != "" {
		return r.End
	}
	return r.Start
}

// ReportItem 정규화된 업무 항목 (보고서의 중심 엔티티)
type ReportItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Customer     string    `json:"customer,omitempty"`
	Group        string    `json:"group"`
	SubGroup     string    `json:"subGroup"`
	Person       string    `json:"person"`
	ProgressRate float64   `json:"progressRate"`
	Date         DateRange `json:"date"`
	IsToday      bool      `json:"isToday"`
	IsTomorrow   bool      `json:"isTomorrow"`
	ManHour      float64   `json:"manHour"`
	// PmsNumber PMS 관리 번호. 0 이면 번호 없음.
	PmsNumber int    `json:"pmsNumber,omitempty"`
	PmsLink   string `json:"pmsLink,omitempty"`
}

// LeaveType 근태 유형
type LeaveType string

const (
	LeaveFullDay LeaveType = "연차"
	LeaveHalfDay LeaveType = "반차"
)

// LeaveInfo 하루 단위 근태 정보
type LeaveInfo struct {
	Date      string    `json:"date"`
	Type      LeaveType `json:"type"`
	DayOfWeek string    `json:"dayOfWeek"`
}

// DisplayItem 화면/페이지 출력용 항목. 내부 관리 필드를 제거한 형태이며
// Progress 는 진행률이 0보다 큰 경우에만 채워진다 (반올림 정수).
type DisplayItem struct {
	Title    string  `json:"title"`
	Person   string  `json:"person"`
	Progress int     `json:"progress,omitempty"`
	ManHour  float64 `json:"manHour"`
	PmsLink  string  `json:"pmsLink,omitempty"`
}

// GroupedTaskList Group/SubGroup 단위로 묶인 작업 목록
type GroupedTaskList struct {
	Group    string        `json:"group"`
	SubGroup string        `json:"subGroup"`
	Items    []DisplayItem `json:"items"`
}

// PersonManHour 인원별 공수 요약 한 줄
type PersonManHour struct {
	Name        string  `json:"name"`
	Hours       float64 `json:"hours"`
	IsCompleted bool    `json:"isCompleted"`
	LeaveInfo   string  `json:"leaveInfo,omitempty"`
}

// GroupManHour 그룹별 공수 합계
type GroupManHour struct {
	Group string  `json:"group"`
	Hours float64 `json:"hours"`
}

// PersonWorkload 개인별 공수 및 진행 상황 상세
type PersonWorkload struct {
	Name         string       `json:"name"`
	TotalManHour float64      `json:"totalManHour"`
	Reports      []ReportItem `json:"reports"`
	LeaveInfo    []LeaveInfo  `json:"leaveInfo,omitempty"`
}

// ReportTasks 기간별 업무 구분 목록
type ReportTasks struct {
	InProgress []GroupedTaskList `json:"inProgress"`
	Planned    []GroupedTaskList `json:"planned,omitempty"`
	Completed  []GroupedTaskList `json:"completed,omitempty"`
}

// Report 기간별(일간/주간/월간) 보고서
type Report struct {
	Date            string            `json:"date"`
	Title           string            `json:"title"`
	ManHourSummary  []PersonManHour   `json:"manHourSummary"`
	ManHourByGroup  []GroupManHour    `json:"manHourByGroup,omitempty"`
	ManHourByPerson []PersonWorkload  `json:"manHourByPerson"`
	Tasks           ReportTasks       `json:"tasks"`
	WeeklyTasks     []GroupedTaskList `json:"weeklyTasks,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// ReportTypeDetermination 기준 날짜에 생성할 보고서 타입 판단 결과
type ReportTypeDetermination struct {
	IsHoliday             bool `json:"isHoliday"`
	ShouldGenerateDaily   bool `json:"shouldGenerateDaily"`
	ShouldGenerateWeekly  bool `json:"shouldGenerateWeekly"`
	ShouldGenerateMonthly bool `json:"shouldGenerateMonthly"`
}
