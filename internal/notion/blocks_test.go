package notion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitText(t *testing.T) {
	assert.Equal(t, []string{"짧은 텍스트"}, SplitText("짧은 텍스트", MaxTextLength))

	// 한글은 룬 단위로 잘려야 한다
	long := strings.Repeat("가", 4500)
	chunks := SplitText(long, MaxTextLength)
	require.Len(t, chunks, 3)
	assert.Equal(t, 2000, len([]rune(chunks[0])))
	assert.Equal(t, 2000, len([]rune(chunks[1])))
	assert.Equal(t, 500, len([]rune(chunks[2])))
	assert.Equal(t, long, strings.Join(chunks, ""))
}

func TestCodeBlocks(t *testing.T) {
	blocks := CodeBlocks("보고서 본문", "plain text")
	require.Len(t, blocks, 1)
	assert.Equal(t, "code", blocks[0].Type)
	assert.Equal(t, "plain text", blocks[0].Code.Language)
	assert.Equal(t, "보고서 본문", blocks[0].Code.RichText[0].Text.Content)

	// 한도 초과 본문은 여러 코드 블록으로 분할
	blocks = CodeBlocks(strings.Repeat("a", MaxTextLength+1), "plain text")
	assert.Len(t, blocks, 2)
}

func TestBatchBlocks(t *testing.T) {
	assert.Nil(t, BatchBlocks(nil))

	var blocks []Block
	for i := 0; i < 250; i++ {
		blocks = append(blocks, Paragraph("항목"))
	}
	batches := BatchBlocks(blocks)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 100)
	assert.Len(t, batches[1], 100)
	assert.Len(t, batches[2], 50)
}

func TestTable(t *testing.T) {
	rows := [][]TableCell{
		{{Text: "번호"}, {Text: "타이틀"}},
		{{Text: "#1234", Link: "https://pms.example.com/1234"}, {Text: "결함 처리"}},
	}
	block := Table(rows, true)

	assert.Equal(t, "table", block.Type)
	require.NotNil(t, block.Table)
	assert.Equal(t, 2, block.Table.TableWidth)
	assert.True(t, block.Table.HasColumnHeader)
	require.Len(t, block.Table.Children, 2)

	linkCell := block.Table.Children[1].TableRow.Cells[0][0]
	require.NotNil(t, linkCell.Text.Link)
	assert.Equal(t, "https://pms.example.com/1234", linkCell.Text.Link.URL)
}

func TestHeadingBuilders(t *testing.T) {
	h1 := Heading1("월간 보고", "")
	assert.Equal(t, "heading_1", h1.Type)
	assert.Nil(t, h1.Heading1.RichText[0].Annotations)

	h2 := Heading2("진행 중인 업무", "yellow_background")
	require.NotNil(t, h2.Heading2.RichText[0].Annotations)
	assert.Equal(t, "yellow_background", h2.Heading2.RichText[0].Annotations.Color)

	assert.Equal(t, "divider", Divider().Type)
	assert.Equal(t, "bulleted_list_item", BulletedItem("항목").Type)
}
