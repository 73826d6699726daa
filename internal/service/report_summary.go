package service

import (
	"sort"

	"github.com/uhjee/watchtek-daily-report-web/internal/leave"
	"github.com/uhjee/watchtek-daily-report-web/internal/model"
	"github.com/uhjee/watchtek-daily-report-web/pkg/dateutil"
)

// createManHourByPerson 인원별 공수 및 진행 상황 데이터를 생성한다.
// 멤버 우선순위 오름차순, 동순위는 이름 가나다순으로 정렬한다.
func (s *reportService) createManHourByPerson(items []model.ReportItem) []model.PersonWorkload {
	personMap := make(map[string][]model.ReportItem)
	var names []string

	for _, item := range items {
		if _, ok := personMap[item.Person]; !ok {
			names = append(names, item.Person)
		}
		personMap[item.Person] = append(personMap[item.Person], item)
	}

	result := make([]model.PersonWorkload, 0, len(names))
	for _, name := range names {
		reports := personMap[name]
		var total float64
		for _, report := range reports {
			total += report.ManHour
		}
		result = append(result, model.PersonWorkload{
			Name:         name,
			TotalManHour: total,
			Reports:      reports,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		pa, pb := s.dir.PriorityOf(result[i].Name), s.dir.PriorityOf(result[j].Name)
		if pa != pb {
			return pa < pb
		}
		return s.grouper.col.CompareString(result[i].Name, result[j].Name) < 0
	})

	return result
}

// withLeaveInfo 인원별 공수 데이터에 근태 정보를 붙인다
func (s *reportService) withLeaveInfo(workloads []model.PersonWorkload, items []model.ReportItem) []model.PersonWorkload {
	leaveMap := leave.ByPerson(items)

	result := make([]model.PersonWorkload, len(workloads))
	for i, workload := range workloads {
		workload.LeaveInfo = leaveMap[workload.Name]
		result[i] = workload
	}
	return result
}

// summarizeWithLeave 근태 정보가 포함된 인원별 공수 요약을 생성한다
func (s *reportService) summarizeWithLeave(workloads []model.PersonWorkload) []model.PersonManHour {
	summary := make([]model.PersonManHour, 0, len(workloads))
	for _, workload := range workloads {
		summary = append(summary, model.PersonManHour{
			Name:      workload.Name,
			Hours:     workload.TotalManHour,
			LeaveInfo: leave.FormatText(workload.LeaveInfo),
		})
	}
	return summary
}

// weeklyManHourSummary 주간 데이터 기준 인원별 공수를 집계하고 작성 완료 여부를 판단한다.
// 기대 공수 = 해당 주 월요일~기준 날짜의 근무일수 × 8 − 근태 공제.
// 근태 항목의 공수는 집계에서 제외한다.
func (s *reportService) weeklyManHourSummary(items []model.ReportItem, refDate string) []model.PersonManHour {
	startDate, endDate := dateutil.ThisWeekMondayToToday(refDate)
	baseExpected := float64(s.cal.WorkingDaysCount(startDate, endDate)) * 8

	leaveMap := leave.ByPerson(items)

	hoursMap := make(map[string]float64)
	var names []string
	for _, item := range items {
		if leave.IsLeave(item) {
			continue
		}
		if _, ok := hoursMap[item.Person]; !ok {
			names = append(names, item.Person)
		}
		hoursMap[item.Person] += item.ManHour
	}

	result := make([]model.PersonManHour, 0, len(names))
	for _, name := range names {
		infos := leaveMap[name]
		expected := baseExpected - leave.TotalDeduction(infos)
		hours := hoursMap[name]
		result = append(result, model.PersonManHour{
			Name:        name,
			Hours:       hours,
			IsCompleted: hours >= expected,
			LeaveInfo:   leave.FormatText(infos),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		pa, pb := s.dir.PriorityOf(result[i].Name), s.dir.PriorityOf(result[j].Name)
		if pa != pb {
			return pa < pb
		}
		return s.grouper.col.CompareString(result[i].Name, result[j].Name) < 0
	})

	return result
}

// manHourByGroup 그룹별 공수 합계를 공수 내림차순으로 반환한다
func (s *reportService) manHourByGroup(items []model.ReportItem) []model.GroupManHour {
	groupMap := make(map[string]float64)
	var groups []string
	for _, item := range items {
		if _, ok := groupMap[item.Group]; !ok {
			groups = append(groups, item.Group)
		}
		groupMap[item.Group] += item.ManHour
	}

	result := make([]model.GroupManHour, 0, len(groups))
	for _, group := range groups {
		result = append(result, model.GroupManHour{Group: group, Hours: groupMap[group]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Hours != result[j].Hours {
			return result[i].Hours > result[j].Hours
		}
		return s.grouper.col.CompareString(result[i].Group, result[j].Group) < 0
	})

	return result
}
