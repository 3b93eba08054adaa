package parser

import (
	"context"
	"strings"

	"resume-parser-go/internal/types"
)

// HeuristicResumeParser 基于规则的简历解析器
// 管道从左到右单向执行：文本规范化 → 逻辑行重建 → 页眉提取 →
// 章节分段 → 各章节条目解析 → 后处理。所有模式表为只读，
// 单次调用内无共享可变状态，可并发调用
type HeuristicResumeParser struct{}

// NewHeuristicResumeParser 创建规则简历解析器
func NewHeuristicResumeParser() *HeuristicResumeParser {
	return &HeuristicResumeParser{}
}

// sectionConsumer 把某章节收集到的原始行写入记录
type sectionConsumer func(record *types.ResumeRecord, lines []string)

// sectionConsumers 章节类别到解析函数的静态分发表，编译期确定，不走反射
var sectionConsumers = map[types.SectionKind]sectionConsumer{
	types.SectionContact: func(record *types.ResumeRecord, lines []string) {
		for _, line := range lines {
			ScanContactLine(line, record.Contact)
		}
	},
	types.SectionProfile: func(record *types.ResumeRecord, lines []string) {
		text := strings.TrimSpace(strings.Join(lines, "\n"))
		if record.Profile == "" {
			record.Profile = text
		} else if text != "" {
			record.Profile += "\n" + text
		}
	},
	types.SectionEducation: func(record *types.ResumeRecord, lines []string) {
		record.Education = append(record.Education, ParseEducationSection(lines)...)
	},
	types.SectionExperience: func(record *types.ResumeRecord, lines []string) {
		record.Experience = append(record.Experience, ParseExperienceSection(lines)...)
	},
	types.SectionProjects: func(record *types.ResumeRecord, lines []string) {
		record.Projects = append(record.Projects, ParseProjectsSection(lines)...)
	},
	types.SectionSkills: func(record *types.ResumeRecord, lines []string) {
		ParseSkillsSection(lines, record.Skills)
	},
	types.SectionAchievements: func(record *types.ResumeRecord, lines []string) {
		record.Achievements = append(record.Achievements, ParseAchievementsSection(lines)...)
	},
	types.SectionLanguages: func(record *types.ResumeRecord, lines []string) {
		record.Languages = dedupeStrings(append(record.Languages, ParseDelimitedList(lines)...))
	},
	types.SectionInterests: func(record *types.ResumeRecord, lines []string) {
		record.Interests = dedupeStrings(append(record.Interests, ParseDelimitedList(lines)...))
	},
}

// Parse 执行完整解析管道，返回结构化的简历记录
// 启发式未命中的行会被忽略或并入最近的条目，不会产生错误；
// 错误保留给结构性破损的输入和真正的缺陷
func (p *HeuristicResumeParser) Parse(ctx context.Context, text string) (*types.ResumeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	record := types.NewResumeRecord()

	normalized := NormalizeText(text)
	lines := ReconstructLines(normalized)

	record.Name = ExtractName(lines)
	ExtractContact(lines, record.Contact)

	for _, section := range SegmentLines(lines) {
		if consume, ok := sectionConsumers[section.Kind]; ok {
			consume(record, section.Lines)
		}
	}

	postProcess(record)
	return record, nil
}

// postProcess 填充默认值并剪除空字段
// 注意不对称性：顶层的空数组字段整体剪除，空的联系渠道剔除，
// 但 skills 映射内的空分类保留为 []，这是输出格式兼容性要求
func postProcess(record *types.ResumeRecord) {
	if record.Name == "" {
		record.Name = types.DefaultName
	}

	for channel, value := range record.Contact {
		if value == "" {
			delete(record.Contact, channel)
		}
	}
	if len(record.Contact) == 0 {
		record.Contact = nil
	}

	if len(record.Education) == 0 {
		record.Education = nil
	}
	if len(record.Experience) == 0 {
		record.Experience = nil
	}
	if len(record.Projects) == 0 {
		record.Projects = nil
	}
	if len(record.Achievements) == 0 {
		record.Achievements = nil
	}
	if len(record.Languages) == 0 {
		record.Languages = nil
	}
	if len(record.Interests) == 0 {
		record.Interests = nil
	}

	for _, category := range types.SkillCategories {
		if record.Skills[category] == nil {
			record.Skills[category] = []string{}
		}
	}
}
