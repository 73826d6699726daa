package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/uhjee/watchtek-daily-report-web/internal/model"
)

// dedupeKey 중복 판정 키를 생성한다.
// PMS 번호가 있으면 담당자-PMS번호, 없으면 담당자-공백제거제목.
func dedupeKey(item model.ReportItem) string {
	if item.PmsNumber != 0 {
		return fmt.Sprintf("%s-%d", item.Person, item.PmsNumber)
	}
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, item.Title)
	return item.Person + "-" + normalized
}

// dedupeReports 같은 작업의 일별 기록을 하나로 합친다.
// 대표 항목은 유효 날짜(end 우선)가 가장 큰 기록이고, 공수는 전체 합산 값으로 대체한다.
// 결과 순서는 키의 최초 등장 순서를 유지하며, 날짜가 같으면 먼저 본 기록을 유지한다.
func dedupeReports(items []model.ReportItem) []model.ReportItem {
	var order []string
	attrs := make(map[string]model.ReportItem)
	hours := make(map[string]float64)

	for _, item := range items {
		key := dedupeKey(item)
		hours[key] += item.ManHour

		existing, ok := attrs[key]
		if !ok {
			order = append(order, key)
			attrs[key] = item
			continue
		}
		if item.Date.Effective() > existing.Date.Effective() {
			attrs[key] = item
		}
	}

	result := make([]model.ReportItem, 0, len(order))
	for _, key := range order {
		item := attrs[key]
		item.ManHour = hours[key]
		result = append(result, item)
	}
	return result
}
