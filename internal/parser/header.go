package parser

import (
	"regexp"
	"strings"
	"unicode"

	"resume-parser-go/internal/types"
)

const (
	// headerWindowSize 页眉窗口：在前若干逻辑行中寻找联系方式
	headerWindowSize = 10
	// nameLineLimit 姓名只在最前面的几行中寻找
	nameLineLimit = 3
)

// contactPattern 联系渠道模式。渠道按声明顺序逐一尝试，
// linkedin/github 必须先于兜底的 portfolio，否则社交链接会被误归类。
// 每个渠道首次命中即定格，后续不再覆盖（包括泛域名与其它渠道的碰撞，
// 该优先级是既有行为，下游依赖，不做"修正"）
type contactPattern struct {
	channel string
	re      *regexp.Regexp
}

var contactPatterns = []contactPattern{
	{types.ContactEmail, emailRegex},
	{types.ContactPhone, phoneRegex},
	{types.ContactLinkedIn, linkedinRegex},
	{types.ContactGitHub, githubRegex},
	{types.ContactPortfolio, portfolioRegex},
}

// ExtractName 在最前面的几行中寻找候选姓名：
// 两个以上首字母大写的单词、不超过五个单词、不含数字/'@'/'.com'，
// 首个满足条件的行即为姓名
func ExtractName(lines []string) string {
	limit := nameLineLimit
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	if strings.ContainsAny(line, "@0123456789") {
		return false
	}
	if strings.Contains(strings.ToLower(line), ".com") {
		return false
	}
	words := strings.Fields(line)
	if len(words) > 5 {
		return false
	}
	capitalized := 0
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	return capitalized >= 2
}

// ScanContactLine 对单行执行渠道扫描，把首次命中的渠道写入 contact
func ScanContactLine(line string, contact map[string]string) {
	for _, p := range contactPatterns {
		if _, ok := contact[p.channel]; ok {
			continue
		}
		if match := p.re.FindString(line); match != "" {
			contact[p.channel] = match
		}
	}
}

// ExtractContact 扫描页眉窗口内的所有行，收集联系渠道
func ExtractContact(lines []string, contact map[string]string) {
	limit := headerWindowSize
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		ScanContactLine(line, contact)
	}
}
