package parser

import "strings"

// NormalizeText 清理 PDF 抽取产生的文本噪声，输出规范化的文本块
// 处理规则（有损，为常见的粘连词错误牺牲少量合法驼峰词）：
//  1. 非 ASCII 字符替换为单个空格（抽取常产生乱码字形）
//  2. 换行符两侧的空白收敛，避免缩进噪声制造空行
//  3. 连续水平空白折叠为单个空格
//  4. 小写字母紧跟大写字母之间补一个空格（"SoftwareEngineer" → "Software Engineer"）
//  5. 去除首尾空白
//
// 对已规范化的文本再次调用是无操作
func NormalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t' || (r >= 32 && r < 127):
			b.WriteRune(r)
		case r == '•':
			// 列表符号和排版连字符必须存活到行重建阶段，
			// 否则条目边界和时间段都无法识别
			b.WriteRune(r)
		case r == '–' || r == '—' || r == '−':
			b.WriteByte('-')
		default:
			b.WriteByte(' ')
		}
	}
	cleaned := b.String()
	cleaned = newlineWSRegex.ReplaceAllString(cleaned, "\n")
	cleaned = multiSpaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.ReplaceAll(cleaned, "\t", " ")
	cleaned = camelBoundaryRegex.ReplaceAllString(cleaned, "$1 $2")
	return strings.TrimSpace(cleaned)
}

// mergeLengthThreshold 短行阈值：缓冲行长度达到该值后不再吸收下一行
const mergeLengthThreshold = 50

// ReconstructLines 把规范化文本还原为逻辑行
// PDF 的分栏/换行排版经常把一个语义行（如职位名）拆成两物理行，
// 这里把过短的残行重新拼接，但绝不跨越章节标题、列表行和时间段行合并，
// 否则会破坏下游的条目边界识别
func ReconstructLines(text string) []string {
	var lines []string
	buffer := ""

	flush := func() {
		if buffer != "" {
			lines = append(lines, buffer)
			buffer = ""
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if canMergeInto(buffer, line) {
			buffer += " " + line
			continue
		}
		flush()
		buffer = line
	}
	flush()
	return lines
}

// canMergeInto 判断 next 行能否拼入当前缓冲行
// 缓冲行自身是标题行或列表行时也不吸收后续行，
// 否则 "EDUCATION" 这类短标题会把下一行卷进来，破坏章节识别
func canMergeInto(buffer, next string) bool {
	if buffer == "" {
		return false
	}
	if IsSectionHeader(buffer) || bulletRegex.MatchString(buffer) {
		return false
	}
	if IsSectionHeader(next) {
		return false
	}
	if dateRangeRegex.MatchString(next) {
		return false
	}
	if bulletRegex.MatchString(next) {
		return false
	}
	if len(buffer) >= mergeLengthThreshold {
		return false
	}
	if emailRegex.MatchString(buffer) {
		return false
	}
	return true
}
