package dateutil

import (
	"fmt"
	"time"
)

// HolidayCalendar 공휴일 판정 인터페이스 (양력 기준)
type HolidayCalendar interface {
	IsHoliday(year int, month time.Month, day int) bool
}

// HolidayFunc 함수형 HolidayCalendar 어댑터
type HolidayFunc func(year int, month time.Month, day int) bool

func (f HolidayFunc) IsHoliday(year int, month time.Month, day int) bool {
	return f(year, month, day)
}

// KoreanHolidays 대한민국 법정 공휴일 달력.
// 양력 고정 공휴일에 음력 기반 공휴일(설날/부처님오신날/추석)과
// 대체공휴일·임시공휴일을 연도별 테이블로 보완한다.
type KoreanHolidays struct{}

// 매년 반복되는 양력 공휴일 (MM-DD)
var fixedHolidays = map[string]bool{
	"01-01": true, // 신정
	"03-01": true, // 삼일절
	"05-05": true, // 어린이날
	"06-06": true, // 현충일
	"08-15": true, // 광복절
	"10-03": true, // 개천절
	"10-09": true, // 한글날
	"12-25": true, // 성탄절
}

// 음력 기반 공휴일 + 대체공휴일 + 임시공휴일 (연도별, MM-DD)
var lunarAndSubstituteHolidays = map[int][]string{
	2024: {
		"02-09", "02-10", "02-11", "02-12", // 설날 연휴 + 대체공휴일
		"04-10",          // 국회의원 선거일
		"05-06",          // 어린이날 대체공휴일
		"05-15",          // 부처님오신날
		"09-16", "09-17", "09-18", // 추석 연휴
		"10-01", // 국군의 날 (임시공휴일)
	},
	2025: {
		"01-27",          // 임시공휴일
		"01-28", "01-29", "01-30", // 설날 연휴
		"03-03",          // 삼일절 대체공휴일
		"05-06",          // 어린이날·부처님오신날 대체공휴일
		"06-03",          // 대통령 선거일
		"10-06", "10-07", "10-08", // 추석 연휴 + 대체공휴일
	},
	2026: {
		"02-16", "02-17", "02-18", // 설날 연휴
		"03-02",          // 삼일절 대체공휴일
		"05-25",          // 부처님오신날 대체공휴일
		"06-03",          // 지방선거일
		"08-17",          // 광복절 대체공휴일
		"09-24", "09-25", "09-26", // 추석 연휴
		"10-05", // 개천절 대체공휴일
	},
}

// IsHoliday 해당 날짜가 법정 공휴일인지 확인한다
func (KoreanHolidays) IsHoliday(year int, month time.Month, day int) bool {
	key := fmt.Sprintf("%02d-%02d", int(month), day)
	if fixedHolidays[key] {
		return true
	}
	for _, h := range lunarAndSubstituteHolidays[year] {
		if h == key {
			return true
		}
	}
	return false
}
