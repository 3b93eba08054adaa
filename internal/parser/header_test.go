package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

// TestExtractName 验证姓名启发式：前三行中首个满足条件的行
func TestExtractName(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "首行即姓名",
			lines:    []string{"John Smith", "Senior Engineer"},
			expected: "John Smith",
		},
		{
			name:     "跳过不合格的行",
			lines:    []string{"resume", "Jane Elizabeth Doe"},
			expected: "Jane Elizabeth Doe",
		},
		{
			name:     "超过三行不再寻找",
			lines:    []string{"one", "two", "three", "John Smith"},
			expected: "",
		},
		{
			name:     "含数字的行被拒绝",
			lines:    []string{"John Smith 42"},
			expected: "",
		},
		{
			name:     "含邮箱符号的行被拒绝",
			lines:    []string{"John Smith @ Acme"},
			expected: "",
		},
		{
			name:     "含域名的行被拒绝",
			lines:    []string{"John Smith johnsmith.com"},
			expected: "",
		},
		{
			name:     "超过五个单词的行被拒绝",
			lines:    []string{"John Smith Is A Very Long Name"},
			expected: "",
		},
		{
			name:     "大写单词不足两个的行被拒绝",
			lines:    []string{"John"},
			expected: "",
		},
		{
			name:     "空输入",
			lines:    nil,
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractName(tc.lines), "姓名提取结果不符合预期")
		})
	}
}

// TestScanContactLine 验证单行内多渠道并存时的提取
func TestScanContactLine(t *testing.T) {
	contact := make(map[string]string)
	ScanContactLine("Reach me at john@example.com or 555-123-4567", contact)

	assert.Equal(t, "john@example.com", contact[types.ContactEmail], "应提取出邮箱")
	assert.Equal(t, "555-123-4567", contact[types.ContactPhone], "应提取出电话")
	// 泛域名兜底会命中邮箱中的域名片段，这是既定的渠道优先级行为
	assert.Equal(t, "example.com", contact[types.ContactPortfolio])
}

// TestScanContactLineFirstMatchWins 每个渠道只保留首次命中的值
func TestScanContactLineFirstMatchWins(t *testing.T) {
	contact := make(map[string]string)
	ScanContactLine("primary@example.com", contact)
	ScanContactLine("secondary@other.org", contact)

	assert.Equal(t, "primary@example.com", contact[types.ContactEmail], "后续命中不应覆盖首次结果")
}

// TestScanContactLineSocialBeforePortfolio 社交链接渠道先于泛域名兜底
func TestScanContactLineSocialBeforePortfolio(t *testing.T) {
	contact := make(map[string]string)
	ScanContactLine("linkedin.com/in/johnsmith", contact)
	ScanContactLine("github.com/johnsmith", contact)

	assert.Equal(t, "linkedin.com/in/johnsmith", contact[types.ContactLinkedIn], "应识别 LinkedIn 主页")
	assert.Equal(t, "github.com/johnsmith", contact[types.ContactGitHub], "应识别 GitHub 主页")
}

// TestScanContactLinePhoneFormats 常见电话格式均应命中
func TestScanContactLinePhoneFormats(t *testing.T) {
	for _, line := range []string{
		"+1 (555) 123-4567",
		"555.123.4567",
		"(555) 123 4567",
	} {
		contact := make(map[string]string)
		ScanContactLine(line, contact)
		require.Contains(t, contact, types.ContactPhone, "电话格式 %q 应被识别", line)
	}
}

// TestExtractContactWindow 联系方式只在页眉窗口内寻找
func TestExtractContactWindow(t *testing.T) {
	lines := make([]string, headerWindowSize)
	for i := range lines {
		lines[i] = "filler line"
	}
	lines = append(lines, "late@example.com")

	contact := make(map[string]string)
	ExtractContact(lines, contact)

	assert.NotContains(t, contact, types.ContactEmail, "窗口之外的邮箱不应被提取")

	lines[0] = "early@example.com"
	ExtractContact(lines, contact)
	assert.Equal(t, "early@example.com", contact[types.ContactEmail], "窗口之内的邮箱应被提取")
}
