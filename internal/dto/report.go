package dto

import "github.com/uhjee/watchtek-daily-report-web/internal/model"

// GenerateReportRequest 보고서 생성 요청 본문
type GenerateReportRequest struct {
	// Date YYYY-MM-DD 형식, 생략하면 오늘
	Date string `json:"date"`
}

// PeriodReport 기간별 보고서 + 발행된 Notion 페이지 정보
type PeriodReport struct {
	model.Report
	NotionPageID  string `json:"notionPageId,omitempty"`
	NotionPageURL string `json:"notionPageUrl,omitempty"`
}

// ReportBundle 기준 날짜에 해당하는 보고서 묶음
type ReportBundle struct {
	ReportTypes model.ReportTypeDetermination `json:"reportTypes"`
	Daily       *PeriodReport                 `json:"daily"`
	Weekly      *PeriodReport                 `json:"weekly"`
	Monthly     *PeriodReport                 `json:"monthly"`
}
