package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/uhjee/watchtek-daily-report-web/config"
	"github.com/uhjee/watchtek-daily-report-web/internal/model"
)

// ── 내보내기 모듈 업무 오류 ──

var (
	ErrExportNoTasks      = errors.New("해당 월에 내보낼 업무가 없습니다")
	ErrExportGenerateFail = errors.New("Excel 파일 생성 실패")
)

// ExportService 내보내기 업무 인터페이스
//
// 설계 설명:
//   - 월별 업무 목록을 멤버별 시트로 나눈 Excel(.xlsx)로 만든다
//   - bytes.Buffer 로 반환하고 Handler/CLI 가 응답 헤더 설정 또는 파일 저장을 담당한다
//   - 시트 순서는 멤버 우선순위 오름차순
type ExportService interface {
	// ExportMonthlyTasks 월별 업무 목록을 Excel 로 내보낸다.
	// 반환값: buf(파일 내용), filename(권장 파일명), error
	ExportMonthlyTasks(ctx context.Context, year, month int) (*bytes.Buffer, string, error)
}

type exportService struct {
	partName string
	members  []config.MemberConfig
	monthly  MonthlyTaskService
	logger   *zap.Logger
}

// NewExportService ExportService 인스턴스를 생성한다
func NewExportService(
	partName string,
	members []config.MemberConfig,
	monthly MonthlyTaskService,
	logger *zap.Logger,
) ExportService {
	return &exportService{partName: partName, members: members, monthly: monthly, logger: logger}
}

// 시트 컬럼 정의
var exportColumns = []struct {
	Header string
	Width  float64
}{
	{"업무구분", 15},
	{"PMS 관리번호", 15},
	{"업무 내용", 50},
	{"계획 완료일", 12},
	{"완료일", 12},
	{"M/H", 8},
	{"M/D", 8},
}

func (s *exportService) ExportMonthlyTasks(ctx context.Context, year, month int) (*bytes.Buffer, string, error) {
	// 1. 월별 업무 목록 조회
	result, err := s.monthly.List(ctx, year, month)
	if err != nil {
		return nil, "", err
	}
	if result.Total == 0 {
		return nil, "", ErrExportNoTasks
	}

	// 2. 멤버별 업무 분류 (시트 순서: 우선순위 오름차순)
	members := append([]config.MemberConfig(nil), s.members...)
	sort.SliceStable(members, func(i, j int) bool { return members[i].Priority < members[j].Priority })

	tasksByMember := make(map[string][]model.ReportItem)
	for _, task := range result.Tasks {
		tasksByMember[task.Person] = append(tasksByMember[task.Person], task)
	}

	// 3. Excel 생성
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for _, m := range members {
		if _, err := f.NewSheet(m.Name); err != nil {
			s.logger.Error("시트 생성 실패", zap.String("member", m.Name), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}

		// 컬럼 너비와 헤더 행
		for i, col := range exportColumns {
			name, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(m.Name, name, name, col.Width)
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(m.Name, cell, col.Header)
			f.SetCellStyle(m.Name, cell, cell, headerStyle)
		}

		// 데이터 행
		for row, task := range tasksByMember[m.Name] {
			pmsText := "-"
			if task.PmsNumber != 0 {
				pmsText = fmt.Sprintf("#%d", task.PmsNumber)
			}
			manDay := math.Round(task.ManHour/8*10) / 10

			values := []interface{}{
				task.Group,
				pmsText,
				task.Title,
				"-", // 계획 완료일 (입력 데이터 없음)
				task.Date.Effective(),
				task.ManHour,
				manDay,
			}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(m.Name, cell, value)
			}

			// PMS 관리번호 하이퍼링크
			if task.PmsNumber != 0 && task.PmsLink != "" {
				cell, _ := excelize.CoordinatesToCellName(2, row+2)
				f.SetCellHyperLink(m.Name, cell, task.PmsLink, "External")
			}
		}
	}

	// 기본 시트 제거 후 첫 멤버 시트 활성화
	f.DeleteSheet("Sheet1")
	if len(members) > 0 {
		if idx, err := f.GetSheetIndex(members[0].Name); err == nil {
			f.SetActiveSheet(idx)
		}
	}

	// 4. 버퍼에 기록
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("Excel 기록 실패", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%d%02d_%s_업무목록.xlsx",
		year, month, strings.ReplaceAll(s.partName, " ", ""))

	s.logger.Info("월별 업무 목록 내보내기 완료",
		zap.Int("year", year), zap.Int("month", month), zap.Int("tasks", result.Total))
	return buf, filename, nil
}
