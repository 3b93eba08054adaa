package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// Section 分段后的一个章节：标题行和归属于它的内容行
type Section struct {
	Kind  types.SectionKind
	Title string
	Lines []string
}

// sectionPattern 章节标题模式，按声明顺序求值，先匹配者胜出
type sectionPattern struct {
	kind types.SectionKind
	re   *regexp.Regexp
}

// 九类章节的标题模式。匹配对象是归一化后的整行（仅小写字母和空格），
// 全行锚定，避免 "Languages: Python, Java" 这类内容行被误判为标题
var sectionPatterns = []sectionPattern{
	{types.SectionContact, regexp.MustCompile(`^(?:contact(?: (?:info|information|details|me))?|get in touch|reach me)$`)},
	{types.SectionProfile, regexp.MustCompile(`^(?:(?:professional |career |personal )?(?:profile|summary|objective)|about(?: me)?|summary of qualifications)$`)},
	{types.SectionEducation, regexp.MustCompile(`^(?:education(?:al)?(?: (?:background|qualifications|details))?|academic (?:background|qualifications|details)|academics)$`)},
	{types.SectionExperience, regexp.MustCompile(`^(?:(?:work|professional|employment|relevant) (?:experience|history)|experience|employment|career history|internships?)$`)},
	{types.SectionProjects, regexp.MustCompile(`^(?:(?:personal |academic |key |selected )?projects?|project (?:work|experience))$`)},
	{types.SectionSkills, regexp.MustCompile(`^(?:(?:technical |core |key )?(?:skills?|competencies)|technologies|tech(?:nology)? stack|expertise|skills? (?:summary|highlights?))$`)},
	{types.SectionAchievements, regexp.MustCompile(`^(?:achievements?|awards?(?: and honou?rs)?|honou?rs(?: and awards?)?|accomplishments|certifications?(?: and achievements?)?)$`)},
	{types.SectionLanguages, regexp.MustCompile(`^(?:(?:spoken |foreign )?languages(?: known)?)$`)},
	{types.SectionInterests, regexp.MustCompile(`^(?:interests?|hobbies(?: and interests?)?|extracurricular activities)$`)},
}

// normalizeHeaderLine 标题匹配前的归一化：小写、去掉字母和空格以外的字符、折叠空白
func normalizeHeaderLine(line string) string {
	lowered := strings.ToLower(line)
	lowered = headerNoiseRegex.ReplaceAllString(lowered, " ")
	return strings.Join(strings.Fields(lowered), " ")
}

// DetectSectionKind 检测某行是否为章节标题，返回命中的类别
func DetectSectionKind(line string) (types.SectionKind, bool) {
	normalized := normalizeHeaderLine(line)
	if normalized == "" {
		return types.SectionUnknown, false
	}
	for _, p := range sectionPatterns {
		if p.re.MatchString(normalized) {
			return p.kind, true
		}
	}
	return types.SectionUnknown, false
}

// IsSectionHeader 判断某行是否为章节标题行
func IsSectionHeader(line string) bool {
	_, ok := DetectSectionKind(line)
	return ok
}

// SegmentLines 遍历全部逻辑行，把标题行之后的内容归入当前章节，
// 遇到新标题即封存上一章节。首个标题之前的行不归属任何章节
// （它们已被页眉提取消费）。每行只会被处理一次
func SegmentLines(lines []string) []Section {
	var sections []Section
	current := -1

	for _, line := range lines {
		if kind, ok := DetectSectionKind(line); ok {
			sections = append(sections, Section{Kind: kind, Title: line})
			current = len(sections) - 1
			continue
		}
		if current >= 0 {
			sections[current].Lines = append(sections[current].Lines, line)
		}
	}
	return sections
}
