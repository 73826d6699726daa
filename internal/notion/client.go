package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/uhjee/watchtek-daily-report-web/config"
)

// notionVersion Notion API 버전 헤더 값
const notionVersion = "2022-06-28"

// queryPageSize 데이터베이스 조회 시 페이지당 결과 수 (API 최대값)
const queryPageSize = 100

// Client Notion API 클라이언트
// 업무 데이터베이스 조회와 보고서 페이지 생성을 담당한다.
// rate.Limiter 로 API 호출 속도를 제한한다.
type Client struct {
	apiKey           string
	databaseID       string
	reportDatabaseID string
	baseURL          string
	httpClient       *http.Client
	limiter          *rate.Limiter
	logger           *zap.Logger
}

// NewClient Notion 클라이언트를 생성한다
// 연동 정보가 비어 있으면 서비스를 구성할 수 없으므로 생성 단계에서 실패시킨다
func NewClient(cfg config.NotionConfig, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("notion 클라이언트 생성 실패: api_key 가 비어 있습니다")
	}
	if cfg.DatabaseID == "" {
		return nil, fmt.Errorf("notion 클라이언트 생성 실패: database_id 가 비어 있습니다")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.notion.com"
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 3
	}

	return &Client{
		apiKey:           cfg.APIKey,
		databaseID:       cfg.DatabaseID,
		reportDatabaseID: cfg.ReportDatabaseID,
		baseURL:          baseURL,
		httpClient:       &http.Client{Timeout: 30 * time.Second},
		limiter:          rate.NewLimiter(rate.Limit(rps), 1),
		logger:           logger,
	}, nil
}

// do 공통 요청 처리. 속도 제한 대기 후 요청하고 응답을 out 에 디코딩한다.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("notion API 속도 제한 대기 실패: %w", err)
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("notion API 요청 직렬화 실패: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("notion API 요청 생성 실패: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion API 호출 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("notion API 오류 응답",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("notion API 오류 응답: status=%d body=%s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("notion API 응답 파싱 실패: %w", err)
		}
	}
	return nil
}

// queryRequest 데이터베이스 조회 요청 본문
type queryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size"`
}

// queryResponse 데이터베이스 조회 응답 본문
type queryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// QueryAll 업무 데이터베이스를 필터로 조회한다. 페이지네이션을 따라가며 전체 결과를 모은다.
func (c *Client) QueryAll(ctx context.Context, filter *Filter, sorts []Sort) ([]Page, error) {
	path := fmt.Sprintf("/v1/databases/%s/query", c.databaseID)

	var pages []Page
	cursor := ""
	for {
		req := queryRequest{
			Filter:      filter,
			Sorts:       sorts,
			StartCursor: cursor,
			PageSize:    queryPageSize,
		}
		var resp queryResponse
		if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
			return nil, fmt.Errorf("업무 데이터 조회 실패: %w", err)
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	c.logger.Debug("업무 데이터 조회 완료", zap.Int("count", len(pages)))
	return pages, nil
}

// PageRef 생성된 페이지 참조
type PageRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Icon 페이지 아이콘 (이모지)
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// createPageRequest 페이지 생성 요청 본문
type createPageRequest struct {
	Parent     map[string]string      `json:"parent"`
	Icon       *Icon                  `json:"icon,omitempty"`
	Properties map[string]interface{} `json:"properties"`
	Children   []Block                `json:"children,omitempty"`
}

// CreatePage 보고서 데이터베이스에 새 페이지를 생성한다
// children 은 호출 측에서 1회 요청 한도(100블록) 이하로 잘라 전달해야 한다
func (c *Client) CreatePage(ctx context.Context, properties map[string]interface{}, icon *Icon, children []Block) (PageRef, error) {
	if c.reportDatabaseID == "" {
		return PageRef{}, fmt.Errorf("보고서 페이지 생성 실패: report_database_id 가 설정되지 않았습니다")
	}
	req := createPageRequest{
		Parent:     map[string]string{"database_id": c.reportDatabaseID},
		Icon:       icon,
		Properties: properties,
		Children:   children,
	}
	var ref PageRef
	if err := c.do(ctx, http.MethodPost, "/v1/pages", req, &ref); err != nil {
		return PageRef{}, fmt.Errorf("보고서 페이지 생성 실패: %w", err)
	}
	c.logger.Info("보고서 페이지 생성 완료", zap.String("page_id", ref.ID))
	return ref, nil
}

// appendBlocksRequest 블록 추가 요청 본문
type appendBlocksRequest struct {
	Children []Block `json:"children"`
}

// AppendBlocks 기존 페이지 뒤에 블록을 추가한다
func (c *Client) AppendBlocks(ctx context.Context, pageID string, children []Block) error {
	path := fmt.Sprintf("/v1/blocks/%s/children", pageID)
	if err := c.do(ctx, http.MethodPatch, path, appendBlocksRequest{Children: children}, nil); err != nil {
		return fmt.Errorf("블록 추가 실패: %w", err)
	}
	return nil
}
