// Package leave 근태(연차/반차) 판단 및 공제 계산.
package leave

import (
	"sort"
	"strings"

	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// 근태 항목은 '기타' 그룹에만 존재한다는 파트 입력 규칙을 따른다
const leaveGroup = "기타"

// 공제 공수: 연차 8m/h, 반차 4m/h
const (
	fullDayDeduction = 8
	halfDayDeduction = 4
)

// Type 보고서 항목의 근태 유형을 판단한다.
// 반차 판정이 연차 판정보다 먼저 수행된다 (제목에 두 문자열이 함께 있는 경우 반차 우선).
func Type(item model.ReportItem) (model.LeaveType, bool) {
	if item.Group != leaveGroup {
		return "", false
	}

	title := strings.ToLower(item.Title)

	if strings.Contains(title, string(model.LeaveHalfDay)) || item.SubGroup == string(model.LeaveHalfDay) {
		return model.LeaveHalfDay, true
	}
	if strings.Contains(title, string(model.LeaveFullDay)) || item.SubGroup == string(model.LeaveFullDay) {
		return model.LeaveFullDay, true
	}

	return "", false
}

// IsLeave 근태 항목 여부를 확인한다
func IsLeave(item model.ReportItem) bool {
	_, ok := Type(item)
	return ok
}

// Deduction 근태 유형별 공제 공수를 반환한다
func Deduction(leaveType model.LeaveType) float64 {
	if leaveType == model.LeaveHalfDay {
		return halfDayDeduction
	}
	return fullDayDeduction
}

// TotalDeduction 근태 목록의 총 공제 공수를 계산한다
func TotalDeduction(infos []model.LeaveInfo) float64 {
	var total float64
	for _, info := range infos {
		total += Deduction(info.Type)
	}
	return total
}

// Expand 근태 항목을 하루 단위 LeaveInfo 로 전개한다.
// 기간으로 입력된 경우(예: 11/3 ~ 11/5 연차) 달력일 기준으로 각 날짜를 분리한다.
// 기간 내 주말도 그대로 포함한다 (근태 기간은 사용자가 연속 구간으로 입력한다).
func Expand(item model.ReportItem) []model.LeaveInfo {
	leaveType, ok := Type(item)
	if !ok {
		return nil
	}

	start := item.Date.Start
	end := item.Date.End

	if end == "" || start == end {
		return []model.LeaveInfo{{
			Date:      start,
			Type:      leaveType,
			DayOfWeek: dateutil.DayOfWeekKorean(start),
		}}
	}

	var result []model.LeaveInfo
	for cur := start; cur <= end; cur = dateutil.Tomorrow(cur) {
		result = append(result, model.LeaveInfo{
			Date:      cur,
			Type:      leaveType,
			DayOfWeek: dateutil.DayOfWeekKorean(cur),
		})
	}
	return result
}

// ByPerson 보고서 목록에서 인원별 근태 정보를 추출한다.
// 각 인원의 근태 목록은 날짜 오름차순으로 정렬된다.
func ByPerson(items []model.ReportItem) map[string][]model.LeaveInfo {
	result := make(map[string][]model.LeaveInfo)

	for _, item := range items {
		infos := Expand(item)
		if len(infos) > 0 {
			result[item.Person] = append(result[item.Person], infos...)
		}
	}

	for _, infos := range result {
		sort.Slice(infos, func(i, j int) bool { return infos[i].Date < infos[j].Date })
	}

	return result
}

// FormatText 근태 목록을 "MM/DD(요일) 유형" 형식으로 연결한다. 비어 있으면 빈 문자열.
func FormatText(infos []model.LeaveInfo) string {
	if len(infos) == 0 {
		return ""
	}

	parts := make([]string, 0, len(infos))
	for _, info := range infos {
		// YYYY-MM-DD → MM/DD
		date := strings.Replace(info.Date[5:], "-", "/", 1)
		parts = append(parts, date+"("+info.DayOfWeek+") "+string(info.Type))
	}
	return strings.Join(parts, ", ")
}

// Item 근태 목록 화면 출력용 항목
type Item struct {
	Person    string          `json:"person"`
	Type      model.LeaveType `json:"type"`
	Date      string          `json:"date"`
	DayOfWeek string          `json:"dayOfWeek"`
}

// Items 보고서 목록에서 근태 항목 목록을 추출한다 (memberFilter 빈 문자열이면 전체)
func Items(reports []model.ReportItem, memberFilter string) []Item {
	var items []Item

	for _, report := range reports {
		if memberFilter != "" && report.Person != memberFilter {
			continue
		}
		for _, info := range Expand(report) {
			items = append(items, Item{
				Person:    report.Person,
				Type:      info.Type,
				Date:      info.Date,
				DayOfWeek: info.DayOfWeek,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Date < items[j].Date })
	return items
}
