package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEducationSection 验证教育条目的拼装：院校、学位、时长、GPA 分散在多行
func TestParseEducationSection(t *testing.T) {
	lines := []string{
		"XYZ University",
		"B.Tech, Aug 2018 - May 2022",
		"GPA: 8.6",
	}

	entries := ParseEducationSection(lines)

	require.Len(t, entries, 1, "三行应拼装为同一个教育条目")
	assert.Equal(t, "XYZ University", entries[0].Institution)
	assert.Equal(t, "B.Tech", entries[0].Degree)
	assert.Equal(t, "Aug 2018 - May 2022", entries[0].Duration)
	assert.Equal(t, "8.6", entries[0].GPA)
}

// TestParseEducationSectionMultipleEntries 第二个院校行封存并开启新条目
func TestParseEducationSectionMultipleEntries(t *testing.T) {
	lines := []string{
		"XYZ University",
		"Master of Science, 2022 - 2024",
		"ABC College",
		"Bachelor of Arts, 2018 - 2022",
	}

	entries := ParseEducationSection(lines)

	require.Len(t, entries, 2, "两个院校应产生两个条目")
	assert.Equal(t, "XYZ University", entries[0].Institution)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "2022 - 2024", entries[0].Duration)
	assert.Equal(t, "ABC College", entries[1].Institution)
	assert.Equal(t, "Bachelor of Arts", entries[1].Degree)
}

// TestParseEducationSectionSingleLine 单行条目：院校、学位、时间段挤在一行
func TestParseEducationSectionSingleLine(t *testing.T) {
	entries := ParseEducationSection([]string{"B.Sc Computer Science, XYZ University, 2019 - 2023"})

	require.Len(t, entries, 1)
	assert.Equal(t, "B.Sc Computer Science, XYZ University", entries[0].Institution)
	assert.Equal(t, "2019 - 2023", entries[0].Duration)
	assert.NotEmpty(t, entries[0].Degree, "学位关键词应被识别")
}

// TestParseEducationSectionEmpty 无法识别出任何字段时不产生条目
func TestParseEducationSectionEmpty(t *testing.T) {
	assert.Empty(t, ParseEducationSection([]string{"some stray text"}), "无字段可取的行不应产生条目")
	assert.Empty(t, ParseEducationSection(nil))
}

// TestParseExperienceSection 验证工作条目的边界与字段拆分
func TestParseExperienceSection(t *testing.T) {
	lines := []string{
		"Jan 2023 - present Senior Software Engineer @ Acme Corp",
		"• Built the resume ingest pipeline",
		"• Cut p99 latency by 40 percent",
		"Backend Developer May 2019 - Dec 2020",
		"• Maintained the billing service",
	}

	entries := ParseExperienceSection(lines)

	require.Len(t, entries, 2, "两个时间段行应产生两个工作条目")

	assert.Equal(t, "Senior Software Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Jan 2023 - present", entries[0].Duration)
	require.Len(t, entries[0].Responsibilities, 2)
	assert.Equal(t, "Built the resume ingest pipeline", entries[0].Responsibilities[0])

	// 无 "@" 分隔时，时间段之前的文本作为职位，公司留空
	assert.Equal(t, "Backend Developer", entries[1].Title)
	assert.Empty(t, entries[1].Company)
	assert.Equal(t, "May 2019 - Dec 2020", entries[1].Duration)
	assert.Equal(t, []string{"Maintained the billing service"}, entries[1].Responsibilities)
}

// TestParseExperienceSectionDropsUntitled 职位为空的条目被丢弃
func TestParseExperienceSectionDropsUntitled(t *testing.T) {
	entries := ParseExperienceSection([]string{"2019 - 2020", "• orphan bullet"})
	assert.Empty(t, entries, "没有职位的时间段行不应产生条目")
}

// TestParseExperienceSectionIgnoresLooseLines 既非时间段行也非列表行的内容被忽略
func TestParseExperienceSectionIgnoresLooseLines(t *testing.T) {
	lines := []string{
		"worked on many things over the years",
		"Data Engineer Mar 2021 - Jun 2022",
		"some loose commentary",
		"• Built ETL jobs",
	}

	entries := ParseExperienceSection(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "Data Engineer", entries[0].Title)
	assert.Equal(t, []string{"Built ETL jobs"}, entries[0].Responsibilities)
}

// TestParseProjectsSection 验证项目条目：管道符拆名称与技术，列表行进描述
func TestParseProjectsSection(t *testing.T) {
	lines := []string{
		"Chat App | Go, Redis; Docker",
		"• Real-time messaging over websockets",
		"• Horizontal scaling",
		"Portfolio Site 2021 - 2022",
		"• Static site generator",
	}

	entries := ParseProjectsSection(lines)

	require.Len(t, entries, 2, "管道符行和时间段行各开启一个项目")

	assert.Equal(t, "Chat App", entries[0].Name)
	assert.Equal(t, []string{"Go", "Redis", "Docker"}, entries[0].Technologies)
	assert.Len(t, entries[0].Description, 2)

	assert.Equal(t, "Portfolio Site", entries[1].Name)
	assert.Empty(t, entries[1].Technologies)
	assert.Equal(t, []string{"Static site generator"}, entries[1].Description)
}

// TestParseProjectsSectionLinks 行内链接记入 links 且不重复
func TestParseProjectsSectionLinks(t *testing.T) {
	entries := ParseProjectsSection([]string{"Resume Builder | Python, github.com/jane/resume-builder"})

	require.Len(t, entries, 1)
	assert.Equal(t, "Resume Builder", entries[0].Name)
	require.NotEmpty(t, entries[0].Links, "行内的 github 链接应被收集")
	assert.Contains(t, entries[0].Links, "github.com/jane")
}

// TestParseProjectsSectionOrphanBullets 项目开启之前的列表行被忽略
func TestParseProjectsSectionOrphanBullets(t *testing.T) {
	entries := ParseProjectsSection([]string{"• floating bullet", "Chat App | Go"})
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Description, "项目开启之前的列表行不应计入描述")
}
