package service

import (
	"testing"

	"github.com/uhjee/watchtek-daily-report-web/internal/notion"
)

func TestTransformPages_Primary(t *testing.T) {
	pages := []notion.Page{
		taskPage("p1", "DCIM 결함 처리", "자체결함", "결함 처리", "hjh@watchtek.co.kr", 0.5, "2025-11-06", "", 4),
	}

	items := transformPages(pages, "2025-11-06", PrimaryPolicy, testDirectory())
	if len(items) != 1 {
		t.Fatalf("변환 결과 1건이어야 함, 실제 %d건", len(items))
	}

	item := items[0]
	if item.Person != "허지행" {
		t.Errorf("담당자 이름 기대 허지행, 실제 %s", item.Person)
	}
	if item.ProgressRate != 50 {
		t.Errorf("진행률은 0~100 으로 환산되어야 함, 실제 %v", item.ProgressRate)
	}
	if !item.IsToday {
		t.Error("기준 날짜 작업은 IsToday=true 여야 함")
	}
	if item.IsTomorrow {
		t.Error("단일 일자 작업은 IsTomorrow=false 여야 함")
	}
	if item.ManHour != 4 {
		t.Errorf("공수 기대 4, 실제 %v", item.ManHour)
	}
}

func TestTransformPages_DropsInvalidPages(t *testing.T) {
	noTitle := taskPage("p1", "", "기타", "", "hjh@watchtek.co.kr", 0.5, "2025-11-06", "", 4)
	noDate := taskPage("p2", "제목 있음", "기타", "", "hjh@watchtek.co.kr", 0.5, "", "", 4)
	noDate.Properties.Date = nil
	valid := taskPage("p3", "유효 작업", "기타", "", "hjh@watchtek.co.kr", 0.5, "2025-11-06", "", 4)

	items := transformPages([]notion.Page{noTitle, noDate, valid}, "2025-11-06", PrimaryPolicy, testDirectory())
	if len(items) != 1 {
		t.Fatalf("제목/날짜 없는 페이지는 버려야 함, 실제 %d건", len(items))
	}
	if items[0].ID != "p3" {
		t.Errorf("유효 페이지만 남아야 함, 실제 %s", items[0].ID)
	}
}

func TestTransformPages_DefaultsByPolicy(t *testing.T) {
	pages := []notion.Page{
		taskPage("p1", "분류 없는 작업", "", "", "hjh@watchtek.co.kr", 0.5, "2025-11-06", "", 4),
	}

	primary := transformPages(pages, "2025-11-06", PrimaryPolicy, testDirectory())
	if primary[0].Group != "기타" || primary[0].SubGroup != "일반" {
		t.Errorf("기본 분류 기대 기타/일반, 실제 %s/%s", primary[0].Group, primary[0].SubGroup)
	}

	monthly := transformPages(pages, "2025-11-06", MonthlyTaskPolicy, testDirectory())
	if monthly[0].Group != "미분류" || monthly[0].SubGroup != "미분류" {
		t.Errorf("월별 목록 기본 분류 기대 미분류/미분류, 실제 %s/%s", monthly[0].Group, monthly[0].SubGroup)
	}
	if monthly[0].ProgressRate != 0.5 {
		t.Errorf("월별 목록은 진행률 원본 값 유지, 실제 %v", monthly[0].ProgressRate)
	}
}

func TestTransformPages_PersonFallback(t *testing.T) {
	noPerson := taskPage("p1", "담당자 없음", "기타", "", "", 0.5, "2025-11-06", "", 4)
	unknown := taskPage("p2", "미등록 담당자", "기타", "", "guest@example.com", 0.5, "2025-11-06", "", 4)

	items := transformPages([]notion.Page{noPerson, unknown}, "2025-11-06", PrimaryPolicy, testDirectory())
	if items[0].Person != "미지정" {
		t.Errorf("담당자 없는 작업은 미지정, 실제 %s", items[0].Person)
	}
	if items[1].Person != "guest" {
		t.Errorf("미등록 이메일은 로컬 파트 이름, 실제 %s", items[1].Person)
	}
}

func TestTransformPages_DateRangeFlags(t *testing.T) {
	// 11-05 ~ 11-07 기간 작업, 기준 날짜 11-06
	pages := []notion.Page{
		taskPage("p1", "기간 작업", "기타", "", "hjh@watchtek.co.kr", 0.5, "2025-11-05", "2025-11-07", 4),
	}

	items := transformPages(pages, "2025-11-06", PrimaryPolicy, testDirectory())
	if !items[0].IsToday {
		t.Error("기간에 기준 날짜 포함 → IsToday=true")
	}
	if !items[0].IsTomorrow {
		t.Error("기간에 다음날 포함 → IsTomorrow=true")
	}
}

func TestTransformPages_PmsNumber(t *testing.T) {
	page := withPms(
		taskPage("p1", "결함 처리", "자체결함", "", "hjh@watchtek.co.kr", 0.5, "2025-11-06", "", 4),
		1234, "https://pms.example.com/1234",
	)

	items := transformPages([]notion.Page{page}, "2025-11-06", PrimaryPolicy, testDirectory())
	if items[0].PmsNumber != 1234 {
		t.Errorf("PMS 번호 기대 1234, 실제 %d", items[0].PmsNumber)
	}
	if items[0].PmsLink != "https://pms.example.com/1234" {
		t.Errorf("PMS 링크 불일치: %s", items[0].PmsLink)
	}
}

func TestExpandMultiPerson(t *testing.T) {
	multi := taskPage("p1", "공동 작업", "회의", "회의", "", 0.5, "2025-11-06", "", 4)
	multi.Properties.Person = &notion.PeopleProp{People: []notion.Person{
		{Person: &notion.PersonEmail{Email: "hjh@watchtek.co.kr"}},
		{Person: &notion.PersonEmail{Email: "jmh@watchtek.co.kr"}},
	}}
	single := taskPage("p2", "단독 작업", "기타", "", "ldy@watchtek.co.kr", 0.5, "2025-11-06", "", 4)

	expanded := expandMultiPerson([]notion.Page{multi, single})
	if len(expanded) != 3 {
		t.Fatalf("담당자 2명 페이지는 2건으로 분리되어야 함, 전체 %d건", len(expanded))
	}

	items := transformPages(expanded, "2025-11-06", PrimaryPolicy, testDirectory())
	if items[0].Person != "허지행" || items[1].Person != "장민호" {
		t.Errorf("분리된 복제본의 담당자 불일치: %s, %s", items[0].Person, items[1].Person)
	}
	if items[0].Title != items[1].Title {
		t.Error("복제본은 제목이 같아야 함")
	}
}

func TestDateInRange(t *testing.T) {
	tests := []struct {
		target, start, end string
		want               bool
	}{
		{"2025-11-06", "2025-11-06", "", true},
		{"2025-11-06", "2025-11-05", "2025-11-07", true},
		{"2025-11-08", "2025-11-05", "2025-11-07", false},
		{"2025-11-06", "", "", false},
	}
	for _, tt := range tests {
		if got := dateInRange(tt.target, tt.start, tt.end); got != tt.want {
			t.Errorf("dateInRange(%s, %s, %s) = %v, 기대 %v", tt.target, tt.start, tt.end, got, tt.want)
		}
	}
}
