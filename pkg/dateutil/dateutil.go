// Package dateutil 보고서 날짜 계산 유틸리티.
// 모든 날짜는 YYYY-MM-DD 형식 문자열로 주고받는다 (Notion Date 속성과 동일한 형식).
package dateutil

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

// KST 한국 표준시 (서머타임 없음)
var KST = time.FixedZone("KST", 9*60*60)

var koreanDays = []string{"일", "월", "화", "수", "목", "금", "토"}

// FormatDate 날짜를 YYYY-MM-DD 형식으로 변환한다
func FormatDate(t time.Time) string {
	return t.Format(layout)
}

// Today KST 기준 오늘 날짜를 YYYY-MM-DD 형식으로 반환한다
func Today(now time.Time) string {
	return now.In(KST).Format(layout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(layout, s)
	return t
}

// ParseDate YYYY-MM-DD 형식 문자열을 파싱한다
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("잘못된 날짜 형식 %q: %w", s, err)
	}
	return t, nil
}

// Tomorrow 다음 날짜를 YYYY-MM-DD 형식으로 반환한다
func Tomorrow(date string) string {
	return parseDate(date).AddDate(0, 0, 1).Format(layout)
}

// ShortDate YYYY-MM-DD → YY.MM.DD 변환
func ShortDate(date string) string {
	if len(date) < 10 {
		return date
	}
	return date[2:4] + "." + date[5:7] + "." + date[8:10]
}

// DayOfWeekKorean 날짜의 요일을 한글로 반환한다 (월, 화, ...)
func DayOfWeekKorean(date string) string {
	return koreanDays[int(parseDate(date).Weekday())]
}

// WeekOfMonth 해당 날짜의 'M월 N주차' 표기를 반환한다
func WeekOfMonth(date string) string {
	d := parseDate(date)
	firstDayWeekday := int(time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday())

	// (일자 + 1일의 요일)을 7로 나누어 올림
	weekNumber := (d.Day() + firstDayWeekday + 6) / 7

	return fmt.Sprintf("%d월 %d주차", int(d.Month()), weekNumber)
}

// MonthRange 특정 연/월의 첫날과 마지막 날을 반환한다
func MonthRange(year int, month time.Month) (firstDay, lastDay string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(layout), last.Format(layout)
}

// CurrentMonthRange 날짜가 속한 달력 월의 첫날과 마지막 날을 반환한다
func CurrentMonthRange(date string) (firstDay, lastDay string) {
	d := parseDate(date)
	return MonthRange(d.Year(), d.Month())
}

// daysSinceWednesday 가장 최근 지난 수요일까지의 일수 (당일 수요일이면 0)
// 월~화는 이전 주 수요일로 거슬러 올라간다
func daysSinceWednesday(d time.Time) int {
	dow := int(d.Weekday())
	if dow >= 3 {
		return dow - 3
	}
	return dow + 4
}

// CurrentMonthRangeByWednesday 수요일 기준 현재 월의 첫날과 마지막 날을 반환한다.
// 가장 최근 수요일이 속한 달력 월을 '현재 월'로 본다. 월 전환 주의 월/화요일은
// 이전 달로 집계되도록 의도된 규칙이다.
func CurrentMonthRangeByWednesday(date string) (firstDay, lastDay string) {
	wednesday := parseDate(date).AddDate(0, 0, -daysSinceWednesday(parseDate(date)))
	return MonthRange(wednesday.Year(), wednesday.Month())
}

// IsLastWeekOfMonth 해당 날짜가 수요일 기준 월의 마지막 주인지 확인한다.
// 이번 주 수요일과 다음 주 수요일이 서로 다른 달에 속하면 마지막 주이다.
func IsLastWeekOfMonth(date string) bool {
	d := parseDate(date)
	wednesday := d.AddDate(0, 0, -daysSinceWednesday(d))
	nextWednesday := wednesday.AddDate(0, 0, 7)
	return wednesday.Month() != nextWednesday.Month()
}

// ThisWeekMondayToToday 해당 주 월요일부터 기준 날짜까지의 범위를 반환한다
// (일요일은 지난주 월요일 기준)
func ThisWeekMondayToToday(date string) (startDate, endDate string) {
	d := parseDate(date)
	daysToMonday := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		daysToMonday = 6
	}
	monday := d.AddDate(0, 0, -daysToMonday)
	return monday.Format(layout), date
}

// WeekSpan 월 내 한 주의 범위 (월요일~일요일)
type WeekSpan struct {
	Week  int    `json:"week"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeksOfMonth 월을 수요일 기준 주 단위로 분할한다.
// 수요일이 해당 월에 속하는 주만 그 월의 주차로 집계하며,
// 각 주의 범위는 인접 월로 넘어가더라도 월요일~일요일로 표기한다.
func WeeksOfMonth(year int, month time.Month) []WeekSpan {
	var weeks []WeekSpan

	// 해당 월의 첫 수요일 탐색
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}

	week := 1
	for d.Month() == month {
		weeks = append(weeks, WeekSpan{
			Week:  week,
			Start: d.AddDate(0, 0, -2).Format(layout),
			End:   d.AddDate(0, 0, 4).Format(layout),
		})
		d = d.AddDate(0, 0, 7)
		week++
	}

	return weeks
}

// Calendar 휴일 판정을 포함한 날짜 계산기
type Calendar struct {
	holidays HolidayCalendar
}

// NewCalendar 주입받은 공휴일 달력으로 Calendar 를 생성한다
func NewCalendar(holidays HolidayCalendar) *Calendar {
	return &Calendar{holidays: holidays}
}

// IsHoliday 주말 또는 공휴일(양력) 여부를 확인한다
func (c *Calendar) IsHoliday(date string) bool {
	d := parseDate(date)
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return true
	}
	return c.holidays.IsHoliday(d.Year(), d.Month(), d.Day())
}

// LastWeekdayOfWeek 해당 주 평일(월~금) 중 휴일이 아닌 마지막 날을 반환한다.
// 금요일부터 거슬러 올라가며 첫 번째 비휴일을 찾고,
// 한 주 전체가 휴일인 예외 상황에서는 금요일을 그대로 반환한다.
func (c *Calendar) LastWeekdayOfWeek(date string) string {
	d := parseDate(date)
	friday := d.AddDate(0, 0, 5-int(d.Weekday()))

	cur := friday
	for cur.Weekday() >= time.Monday && cur.Weekday() <= time.Friday {
		dateStr := cur.Format(layout)
		if !c.IsHoliday(dateStr) {
			return dateStr
		}
		cur = cur.AddDate(0, 0, -1)
	}

	return friday.Format(layout)
}

// IsLastWeekdayOfWeek 해당 날짜가 그 주의 마지막 평일인지 확인한다
func (c *Calendar) IsLastWeekdayOfWeek(date string) bool {
	return date == c.LastWeekdayOfWeek(date)
}

// IsLastWeekdayOfMonth 해당 날짜가 그 월(수요일 기준)의 마지막 주 마지막 평일인지 확인한다
func (c *Calendar) IsLastWeekdayOfMonth(date string) bool {
	if !c.IsLastWeekdayOfWeek(date) {
		return false
	}
	return IsLastWeekOfMonth(date)
}

// WorkingDaysCount 기간 내 근무일수를 계산한다 (월~금 중 휴일이 아닌 날)
func (c *Calendar) WorkingDaysCount(startDate, endDate string) int {
	start := parseDate(startDate)
	end := parseDate(endDate)

	count := 0
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if cur.Weekday() >= time.Monday && cur.Weekday() <= time.Friday && !c.IsHoliday(cur.Format(layout)) {
			count++
		}
	}
	return count
}
