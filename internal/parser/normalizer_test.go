package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeTextBasicCleanup 验证字符清洗和空白折叠的基本行为
func TestNormalizeTextBasicCleanup(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "非ASCII字符被替换为空格",
			input:    "café culture",
			expected: "caf culture",
		},
		{
			name:     "排版连字符被归一为ASCII连字符",
			input:    "Aug 2018 – May 2022",
			expected: "Aug 2018 - May 2022",
		},
		{
			name:     "列表符号被保留",
			input:    "• Built the pipeline",
			expected: "• Built the pipeline",
		},
		{
			name:     "换行两侧的空白被收紧",
			input:    "first line   \n\t  second line",
			expected: "first line\nsecond line",
		},
		{
			name:     "行内连续空格被折叠",
			input:    "too    many     spaces",
			expected: "too many spaces",
		},
		{
			name:     "驼峰粘连被拆开",
			input:    "Software EngineerAcme Corp",
			expected: "Software Engineer Acme Corp",
		},
		{
			name:     "首尾空白被去除",
			input:    "  padded text  ",
			expected: "padded text",
		},
		{
			name:     "空输入返回空串",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeText(tc.input), "归一化结果不符合预期")
		})
	}
}

// TestNormalizeTextIdempotent 验证归一化函数的幂等性：对已归一化的文本再归一化应无变化
func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"John Smith\nSenior   Engineer – Acme\n• did things\tfast",
		"résumé parsing with  odd　whitespace",
		"EDUCATION\nXYZ University\nB.Tech, Aug 2018 – May 2022",
	}

	for _, input := range inputs {
		once := NormalizeText(input)
		twice := NormalizeText(once)
		require.Equal(t, once, twice, "归一化应当是幂等的，二次归一化不应改变结果")
	}
}

// TestReconstructLinesMergesWrappedText 验证被PDF提取断开的短行会被拼回
func TestReconstructLinesMergedWrappedText(t *testing.T) {
	input := "Senior Software\nEngineer"
	lines := ReconstructLines(input)

	require.Len(t, lines, 1, "被断开的短句应当被合并为一行")
	assert.Equal(t, "Senior Software Engineer", lines[0])
}

// TestReconstructLinesRefusals 验证各种不允许合并的边界情况
func TestReconstructLinesRefusals(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "章节标题不会被吸入上一行",
			input:    "Senior Developer\nEDUCATION",
			expected: []string{"Senior Developer", "EDUCATION"},
		},
		{
			name:     "章节标题行自身也不吸收后续内容",
			input:    "EDUCATION\nXYZ University",
			expected: []string{"EDUCATION", "XYZ University"},
		},
		{
			name:     "带时间段的行是新条目的起点，不参与合并",
			input:    "Software Engineer\nJan 2020 - Mar 2022",
			expected: []string{"Software Engineer", "Jan 2020 - Mar 2022"},
		},
		{
			name:     "列表项保持独立",
			input:    "Responsibilities\n• Built the ingest service",
			expected: []string{"Responsibilities", "• Built the ingest service"},
		},
		{
			name:     "列表项行自身也不吸收后续内容",
			input:    "• Built the ingest service\nand shipped it",
			expected: []string{"• Built the ingest service", "and shipped it"},
		},
		{
			name:     "含邮箱的行不吸收后续内容",
			input:    "john@example.com\nPhone: 555-123-4567",
			expected: []string{"john@example.com", "Phone: 555-123-4567"},
		},
		{
			name:     "空行被丢弃",
			input:    "EDUCATION\n\n\nXYZ University",
			expected: []string{"EDUCATION", "XYZ University"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ReconstructLines(tc.input), "行重建结果不符合预期")
		})
	}
}

// TestReconstructLinesLengthThreshold 长行视为完整句子，不再吸收后续内容
func TestReconstructLinesLengthThreshold(t *testing.T) {
	longLine := strings.Repeat("a", mergeLengthThreshold)
	input := longLine + "\nshort tail"

	lines := ReconstructLines(input)

	require.Len(t, lines, 2, "达到长度阈值的行不应继续合并")
	assert.Equal(t, longLine, lines[0])
	assert.Equal(t, "short tail", lines[1])
}
