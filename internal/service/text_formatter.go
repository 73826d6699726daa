package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// 업무 구분 라벨
const (
	taskTypeInProgress = "진행업무"
	taskTypePlanned    = "예정업무"
)

// TextFormatter 보고서 데이터를 보고 양식 텍스트로 변환한다
type TextFormatter struct {
	partName string
}

// NewTextFormatter TextFormatter 를 생성한다
func NewTextFormatter(partName string) *TextFormatter {
	return &TextFormatter{partName: partName}
}

// formatHours 공수 숫자를 불필요한 소수점 없이 표기한다 (8 → "8", 4.5 → "4.5")
func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

// ManHourSummary 인원별 공수를 텍스트로 변환한다 (일간: 작성 완료 표기)
func (f *TextFormatter) ManHourSummary(summary []model.PersonManHour) string {
	var b strings.Builder
	b.WriteString("[인원별 공수]\n")

	for _, person := range summary {
		b.WriteString(fmt.Sprintf("- %s: %s m/h", person.Name, formatHours(person.Hours)))
		if person.IsCompleted {
			b.WriteString(" (작성 완료)")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// WeeklyManHourSummary 인원별 공수를 텍스트로 변환한다 (주간/월간: 근태 정보 표기)
func (f *TextFormatter) WeeklyManHourSummary(summary []model.PersonManHour) string {
	var b strings.Builder
	b.WriteString("[인원별 공수]\n")

	for _, person := range summary {
		b.WriteString(fmt.Sprintf("- %s: %s m/h", person.Name, formatHours(person.Hours)))
		if person.LeaveInfo != "" {
			b.WriteString(" (" + person.LeaveInfo + ")")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ManHourByGroup 그룹별 공수를 텍스트로 변환한다. m/d = m/h ÷ 8 (소수점 1자리 반올림).
func (f *TextFormatter) ManHourByGroup(groups []model.GroupManHour) string {
	var b strings.Builder
	b.WriteString("[그룹별 공수]\n")

	for _, group := range groups {
		manDay := math.Round(group.Hours/8*10) / 10
		b.WriteString(fmt.Sprintf("- %s: %s m/h, %s m/d\n",
			group.Group, formatHours(group.Hours), formatHours(manDay)))
	}

	return b.String()
}

// itemLine 작업 항목 한 줄: "- 제목(담당자, 진행률%)"
func itemLine(item model.DisplayItem, withProgress bool) string {
	var b strings.Builder
	b.WriteString("- " + item.Title + "(" + item.Person)
	if withProgress && item.Progress > 0 {
		b.WriteString(fmt.Sprintf(", %d%%", item.Progress))
	}
	b.WriteString(")\n")
	return b.String()
}

// Tasks 업무 목록을 텍스트로 변환한다.
// taskType 이 진행업무이면 '업무 진행 사항' + 진행률 표기, 예정업무이면 '업무 계획 사항'.
func (f *TextFormatter) Tasks(tasks []model.GroupedTaskList, taskType string) string {
	var b strings.Builder
	if taskType == taskTypeInProgress {
		b.WriteString("업무 진행 사항\n")
	} else {
		b.WriteString("업무 계획 사항\n")
	}

	for i, section := range collectByGroup(tasks) {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, section.Group))
		for _, list := range section.Lists {
			b.WriteString("[" + list.SubGroup + "]\n")
			for _, item := range list.Items {
				b.WriteString(itemLine(item, taskType == taskTypeInProgress))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// DailyReport 일일 보고서 전체 텍스트를 생성한다
func (f *TextFormatter) DailyReport(date string, inProgress, planned []model.GroupedTaskList) string {
	title := fmt.Sprintf("%s 일일업무 보고 (%s)", f.partName, dateutil.ShortDate(date))

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString(f.Tasks(inProgress, taskTypeInProgress))
	b.WriteString("\n")
	b.WriteString(f.Tasks(planned, taskTypePlanned))
	return b.String()
}

// WeeklyReport 주간 보고서 전체 텍스트를 생성한다 (진행업무만)
func (f *TextFormatter) WeeklyReport(date string, inProgress []model.GroupedTaskList) string {
	title := fmt.Sprintf("%s 주간업무 보고 (%s)", f.partName, dateutil.WeekOfMonth(date))

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString("금주 진행 사항\n")

	for i, list := range inProgress {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, list.Group))
		b.WriteString("[" + list.SubGroup + "]\n")
		for _, item := range list.Items {
			b.WriteString(itemLine(item, true))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// MonthlyReport 월간 보고서 전체 텍스트를 생성한다 (진행업무/완료업무)
func (f *TextFormatter) MonthlyReport(date string, inProgress, completed []model.GroupedTaskList) string {
	firstDay, _ := dateutil.CurrentMonthRangeByWednesday(date)
	month, _ := dateutil.ParseDate(firstDay)
	title := fmt.Sprintf("%s 월간업무 보고 (%d월)", f.partName, int(month.Month()))

	var b strings.Builder
	b.WriteString(title + "\n\n")

	b.WriteString("진행업무\n")
	for i, list := range inProgress {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, list.Group))
		b.WriteString("[" + list.SubGroup + "]\n")
		for _, item := range list.Items {
			b.WriteString(itemLine(item, true))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n완료업무\n")
	for i, list := range completed {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, list.Group))
		b.WriteString("[" + list.SubGroup + "]\n")
		for _, item := range list.Items {
			b.WriteString(itemLine(item, false))
		}
		b.WriteString("\n")
	}

	return b.String()
}
