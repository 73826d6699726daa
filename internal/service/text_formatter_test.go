package service

import (
	"strings"
	"testing"

	"github.com/uhjee/watchtek-daily-report-web/internal/model"
)

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{4.5, "4.5"},
		{0, "0"},
		{2.25, "2.25"},
	}
	for _, tt := range tests {
		if got := formatHours(tt.in); got != tt.want {
			t.Errorf("formatHours(%v) = %s, 기대 %s", tt.in, got, tt.want)
		}
	}
}

func TestTextFormatter_ManHourSummary(t *testing.T) {
	f := NewTextFormatter("큐브 파트")

	got := f.ManHourSummary([]model.PersonManHour{
		{Name: "허지행", Hours: 32, IsCompleted: true},
		{Name: "장민호", Hours: 24.5},
	})

	want := "[인원별 공수]\n- 허지행: 32 m/h (작성 완료)\n- 장민호: 24.5 m/h\n"
	if got != want {
		t.Errorf("공수 요약 불일치:\n기대 %q\n실제 %q", want, got)
	}
}

func TestTextFormatter_WeeklyManHourSummary(t *testing.T) {
	f := NewTextFormatter("큐브 파트")

	got := f.WeeklyManHourSummary([]model.PersonManHour{
		{Name: "허지행", Hours: 32, LeaveInfo: "11/05(수) 반차"},
		{Name: "장민호", Hours: 40},
	})

	want := "[인원별 공수]\n- 허지행: 32 m/h (11/05(수) 반차)\n- 장민호: 40 m/h\n"
	if got != want {
		t.Errorf("주간 공수 요약 불일치:\n기대 %q\n실제 %q", want, got)
	}
}

func TestTextFormatter_ManHourByGroup(t *testing.T) {
	f := NewTextFormatter("큐브 파트")

	got := f.ManHourByGroup([]model.GroupManHour{
		{Group: "DCIM 구현", Hours: 20},
		{Group: "자체결함", Hours: 12},
	})

	// m/d = m/h ÷ 8 (소수점 1자리)
	want := "[그룹별 공수]\n- DCIM 구현: 20 m/h, 2.5 m/d\n- 자체결함: 12 m/h, 1.5 m/d\n"
	if got != want {
		t.Errorf("그룹별 공수 불일치:\n기대 %q\n실제 %q", want, got)
	}
}

func TestTextFormatter_Tasks(t *testing.T) {
	f := NewTextFormatter("큐브 파트")

	tasks := []model.GroupedTaskList{
		{Group: "DCIM 구현", SubGroup: "분석", Items: []model.DisplayItem{
			{Title: "요건 분석", Person: "허지행", Progress: 80},
		}},
		{Group: "DCIM 구현", SubGroup: "구현", Items: []model.DisplayItem{
			{Title: "화면 구현", Person: "장민호", Progress: 0},
		}},
		{Group: "기타", SubGroup: "일반", Items: []model.DisplayItem{
			{Title: "업무 지원", Person: "이동엽", Progress: 50},
		}},
	}

	got := f.Tasks(tasks, taskTypeInProgress)

	if !strings.HasPrefix(got, "업무 진행 사항\n") {
		t.Errorf("진행업무 머리말 불일치: %q", got)
	}
	// 같은 그룹의 서브그룹은 하나의 번호 아래 묶인다
	if !strings.Contains(got, "1. DCIM 구현\n[분석]\n- 요건 분석(허지행, 80%)\n[구현]\n- 화면 구현(장민호)\n") {
		t.Errorf("그룹 섹션 형식 불일치:\n%s", got)
	}
	if !strings.Contains(got, "2. 기타\n[일반]\n- 업무 지원(이동엽, 50%)\n") {
		t.Errorf("두 번째 그룹 번호 불일치:\n%s", got)
	}

	// 예정업무는 진행률을 표기하지 않는다
	planned := f.Tasks(tasks, taskTypePlanned)
	if !strings.HasPrefix(planned, "업무 계획 사항\n") {
		t.Errorf("예정업무 머리말 불일치: %q", planned)
	}
	if strings.Contains(planned, "80%") {
		t.Errorf("예정업무에 진행률이 표기됨:\n%s", planned)
	}
}

func TestTextFormatter_DailyReport(t *testing.T) {
	f := NewTextFormatter("큐브 파트")

	inProgress := []model.GroupedTaskList{
		{Group: "기타", SubGroup: "일반", Items: []model.DisplayItem{{Title: "작업", Person: "허지행", Progress: 50}}},
	}

	got := f.DailyReport("2025-11-06", inProgress, nil)

	if !strings.HasPrefix(got, "큐브 파트 일일업무 보고 (25.11.06)\n\n") {
		t.Errorf("일일 보고 제목 불일치:\n%s", got)
	}
	if !strings.Contains(got, "업무 진행 사항") || !strings.Contains(got, "업무 계획 사항") {
		t.Errorf("진행/계획 섹션 누락:\n%s", got)
	}
}

func TestTextFormatter_WeeklyReport(t *testing.T) {
	f := NewTextFormatter("큐브 파트")

	inProgress := []model.GroupedTaskList{
		{Group: "DCIM 구현", SubGroup: "구현", Items: []model.DisplayItem{{Title: "화면 구현", Person: "허지행", Progress: 50}}},
	}

	got := f.WeeklyReport("2025-11-07", inProgress)

	if !strings.HasPrefix(got, "큐브 파트 주간업무 보고 (11월 2주차)\n\n금주 진행 사항\n") {
		t.Errorf("주간 보고 형식 불일치:\n%s", got)
	}
	if !strings.Contains(got, "1. DCIM 구현\n[구현]\n- 화면 구현(허지행, 50%)\n") {
		t.Errorf("주간 목록 형식 불일치:\n%s", got)
	}
}

func TestTextFormatter_MonthlyReport(t *testing.T) {
	f := NewTextFormatter("큐브 파트")

	inProgress := []model.GroupedTaskList{
		{Group: "DCIM 구현", SubGroup: "구현", Items: []model.DisplayItem{{Title: "진행 과제", Person: "허지행", Progress: 60}}},
	}
	completed := []model.GroupedTaskList{
		{Group: "자체결함", SubGroup: "결함 처리", Items: []model.DisplayItem{{Title: "완료 과제", Person: "장민호", Progress: 100}}},
	}

	// 11-03(월)은 수요일 기준 10월 소속
	got := f.MonthlyReport("2025-11-03", inProgress, completed)

	if !strings.HasPrefix(got, "큐브 파트 월간업무 보고 (10월)\n\n") {
		t.Errorf("월간 보고 제목 불일치:\n%s", got)
	}
	if !strings.Contains(got, "진행업무\n1. DCIM 구현") {
		t.Errorf("진행업무 섹션 불일치:\n%s", got)
	}
	// 완료업무는 진행률을 표기하지 않는다
	if !strings.Contains(got, "완료업무\n1. 자체결함\n[결함 처리]\n- 완료 과제(장민호)\n") {
		t.Errorf("완료업무 섹션 불일치:\n%s", got)
	}
}
