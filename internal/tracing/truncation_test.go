package tracing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSafeAttributeValueMasksPII 敏感字段名的值应被掩码而不是截断
func TestSafeAttributeValueMasksPII(t *testing.T) {
	masked := SafeAttributeValue("candidate_name", "张三", DefaultMaxLength)
	assert.Equal(t, "张*", masked, "两字姓名应保留首字")

	masked = SafeAttributeValue("user_email", "myemail@example.com", DefaultMaxLength)
	assert.True(t, strings.HasPrefix(masked, "my"), "长值应保留前两位")
	assert.True(t, strings.HasSuffix(masked, "om"), "长值应保留后两位")
	assert.Contains(t, masked, "***", "中间部分应被星号覆盖")
}

// TestSafeAttributeValueTruncatesLongValues 非敏感字段超长时居中截断
func TestSafeAttributeValueTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("a", 300)
	out := SafeAttributeValue("text_preview", long, DefaultMaxLength)

	assert.LessOrEqual(t, len([]rune(out)), DefaultMaxLength, "输出不应超过上限")
	assert.Contains(t, out, "...", "截断处应有省略号")

	short := "hello"
	assert.Equal(t, short, SafeAttributeValue("text_preview", short, DefaultMaxLength), "未超长的值应原样返回")
}

// TestSafeSQLAndResumeContent SQL与简历内容各自按上限截断
func TestSafeSQLAndResumeContent(t *testing.T) {
	sql := strings.Repeat("SELECT * FROM parsed_resume_records; ", 30)
	assert.LessOrEqual(t, len([]rune(SafeSQL(sql))), MaxSQLLength)

	content := strings.Repeat("resume text ", 50)
	assert.LessOrEqual(t, len([]rune(SafeResumeContent(content))), MaxResumeLength)
}
