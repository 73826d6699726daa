package notion

// Notion 블록 빌더.
// 보고서 페이지 본문을 구성하는 블록 타입만 다룬다.

const (
	// MaxBlocksPerRequest 1회 요청에 담을 수 있는 최대 블록 수
	MaxBlocksPerRequest = 100
	// MaxTextLength 블록 하나에 담을 수 있는 최대 텍스트 길이
	MaxTextLength = 2000
)

// Block 페이지 본문 블록
type Block struct {
	Object           string         `json:"object"`
	Type             string         `json:"type"`
	Heading1         *HeadingBlock  `json:"heading_1,omitempty"`
	Heading2         *HeadingBlock  `json:"heading_2,omitempty"`
	Heading3         *HeadingBlock  `json:"heading_3,omitempty"`
	Paragraph        *TextBlock     `json:"paragraph,omitempty"`
	BulletedListItem *TextBlock     `json:"bulleted_list_item,omitempty"`
	Code             *CodeBlock     `json:"code,omitempty"`
	Divider          *struct{}      `json:"divider,omitempty"`
	Table            *TableBlock    `json:"table,omitempty"`
	TableRow         *TableRowBlock `json:"table_row,omitempty"`
}

// HeadingBlock 제목 블록 본문
type HeadingBlock struct {
	RichText []RichText `json:"rich_text"`
}

// TextBlock 문단/목록 블록 본문
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// CodeBlock 코드 블록 본문
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

// TableBlock 표 블록 본문
type TableBlock struct {
	TableWidth      int     `json:"table_width"`
	HasColumnHeader bool    `json:"has_column_header"`
	HasRowHeader    bool    `json:"has_row_header"`
	Children        []Block `json:"children"`
}

// TableRowBlock 표 행 블록 본문
type TableRowBlock struct {
	Cells [][]RichText `json:"cells"`
}

// TableCell 표 셀 내용. Link 가 있으면 하이퍼링크 텍스트로 만든다.
type TableCell struct {
	Text string
	Link string
}

func plainText(text string) []RichText {
	return []RichText{{Type: "text", Text: &TextContent{Content: text}}}
}

func coloredText(text, color string) []RichText {
	rt := plainText(text)
	if color != "" {
		rt[0].Annotations = &Annotations{Color: color}
	}
	return rt
}

// Heading1 제목1 블록을 생성한다. color 빈 문자열이면 기본색.
func Heading1(text, color string) Block {
	return Block{Object: "block", Type: "heading_1", Heading1: &HeadingBlock{RichText: coloredText(text, color)}}
}

// Heading2 제목2 블록을 생성한다
func Heading2(text, color string) Block {
	return Block{Object: "block", Type: "heading_2", Heading2: &HeadingBlock{RichText: coloredText(text, color)}}
}

// Heading3 제목3 블록을 생성한다
func Heading3(text, color string) Block {
	return Block{Object: "block", Type: "heading_3", Heading3: &HeadingBlock{RichText: coloredText(text, color)}}
}

// Paragraph 문단 블록을 생성한다
func Paragraph(text string) Block {
	return Block{Object: "block", Type: "paragraph", Paragraph: &TextBlock{RichText: plainText(text)}}
}

// BulletedItem 글머리 기호 목록 블록을 생성한다
func BulletedItem(text string) Block {
	return Block{Object: "block", Type: "bulleted_list_item", BulletedListItem: &TextBlock{RichText: plainText(text)}}
}

// Divider 구분선 블록을 생성한다
func Divider() Block {
	return Block{Object: "block", Type: "divider", Divider: &struct{}{}}
}

// CodeBlocks 텍스트를 길이 제한에 맞춰 나눈 코드 블록 목록을 생성한다
// 블록당 텍스트 한도(2000자)를 넘는 본문은 여러 블록으로 분할된다
func CodeBlocks(text, language string) []Block {
	chunks := SplitText(text, MaxTextLength)
	blocks := make([]Block, 0, len(chunks))
	for _, chunk := range chunks {
		blocks = append(blocks, Block{
			Object: "block",
			Type:   "code",
			Code:   &CodeBlock{RichText: plainText(chunk), Language: language},
		})
	}
	return blocks
}

// Table 표 블록을 생성한다. rows 의 각 행은 같은 길이여야 한다.
func Table(rows [][]TableCell, hasColumnHeader bool) Block {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	children := make([]Block, 0, len(rows))
	for _, row := range rows {
		cells := make([][]RichText, 0, len(row))
		for _, cell := range row {
			rt := plainText(cell.Text)
			if cell.Link != "" {
				rt[0].Text.Link = &Link{URL: cell.Link}
			}
			cells = append(cells, rt)
		}
		children = append(children, Block{
			Object:   "block",
			Type:     "table_row",
			TableRow: &TableRowBlock{Cells: cells},
		})
	}
	return Block{
		Object: "block",
		Type:   "table",
		Table: &TableBlock{
			TableWidth:      width,
			HasColumnHeader: hasColumnHeader,
			Children:        children,
		},
	}
}

// SplitText 텍스트를 최대 size 룬 단위로 분할한다
func SplitText(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}
	var chunks []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// BatchBlocks 블록 목록을 1회 요청 한도 단위로 분할한다
func BatchBlocks(blocks []Block) [][]Block {
	if len(blocks) == 0 {
		return nil
	}
	var batches [][]Block
	for start := 0; start < len(blocks); start += MaxBlocksPerRequest {
		end := start + MaxBlocksPerRequest
		if end > len(blocks) {
			end = len(blocks)
		}
		batches = append(batches, blocks[start:end])
	}
	return batches
}
