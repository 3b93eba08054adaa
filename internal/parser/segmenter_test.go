package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

// TestDetectSectionKind 验证各类标题行的识别和归类
func TestDetectSectionKind(t *testing.T) {
	testCases := []struct {
		line     string
		expected types.SectionKind
	}{
		{"Contact Information", types.SectionContact},
		{"CONTACT", types.SectionContact},
		{"Professional Summary", types.SectionProfile},
		{"About Me", types.SectionProfile},
		{"EDUCATION", types.SectionEducation},
		{"Academic Background", types.SectionEducation},
		{"Work Experience", types.SectionExperience},
		{"EMPLOYMENT HISTORY", types.SectionExperience},
		{"Internships", types.SectionExperience},
		{"Projects", types.SectionProjects},
		{"Personal Projects", types.SectionProjects},
		{"TECHNICAL SKILLS", types.SectionSkills},
		{"Core Competencies", types.SectionSkills},
		{"Tech Stack", types.SectionSkills},
		{"Achievements", types.SectionAchievements},
		{"Awards and Honors", types.SectionAchievements},
		{"Certifications", types.SectionAchievements},
		{"Languages", types.SectionLanguages},
		{"Languages Known", types.SectionLanguages},
		{"Interests", types.SectionInterests},
		{"Hobbies and Interests", types.SectionInterests},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			kind, ok := DetectSectionKind(tc.line)
			require.True(t, ok, "标题 %q 应被识别", tc.line)
			assert.Equal(t, tc.expected, kind, "标题 %q 的归类不正确", tc.line)
		})
	}
}

// TestDetectSectionKindNoise 验证标题行的噪声容忍：冒号、装饰符、多余空白
func TestDetectSectionKindNoise(t *testing.T) {
	for _, line := range []string{
		"EDUCATION:",
		"== Education ==",
		"  Work   Experience  ",
		"* TECHNOLOGIES *",
	} {
		_, ok := DetectSectionKind(line)
		assert.True(t, ok, "带噪声的标题 %q 应被识别", line)
	}
}

// TestDetectSectionKindRejectsContent 内容行不应被误判为标题
func TestDetectSectionKindRejectsContent(t *testing.T) {
	for _, line := range []string{
		"Languages: Python, Java",
		"I have experience in Go",
		"Project Phoenix shipped on time",
		"Graduated from Skills Academy of Arts",
		"",
	} {
		_, ok := DetectSectionKind(line)
		assert.False(t, ok, "内容行 %q 不应被识别为标题", line)
	}
}

// TestSegmentLines 验证逐行分桶：每行恰好归属一个章节，标题之前的行不归属任何章节
func TestSegmentLines(t *testing.T) {
	lines := []string{
		"John Smith",
		"john@example.com",
		"EDUCATION",
		"XYZ University",
		"B.Tech, Aug 2018 - May 2022",
		"SKILLS",
		"Languages: Python",
		"EDUCATION",
		"ABC College",
	}

	sections := SegmentLines(lines)

	require.Len(t, sections, 3, "应切出三个章节")

	assert.Equal(t, types.SectionEducation, sections[0].Kind)
	assert.Equal(t, "EDUCATION", sections[0].Title)
	assert.Equal(t, []string{"XYZ University", "B.Tech, Aug 2018 - May 2022"}, sections[0].Lines)

	assert.Equal(t, types.SectionSkills, sections[1].Kind)
	assert.Equal(t, []string{"Languages: Python"}, sections[1].Lines)

	// 同类标题再次出现时开启新章节，不与前一个合并
	assert.Equal(t, types.SectionEducation, sections[2].Kind)
	assert.Equal(t, []string{"ABC College"}, sections[2].Lines)

	total := 0
	for _, s := range sections {
		total += len(s.Lines)
	}
	assert.Equal(t, len(lines)-3-2, total, "标题行和页眉行之外的每一行都应恰好归属一个章节")
}

// TestSegmentLinesNoHeaders 没有任何标题时不产生章节
func TestSegmentLinesNoHeaders(t *testing.T) {
	sections := SegmentLines([]string{"just some text", "more text"})
	assert.Empty(t, sections, "没有标题行时不应产生章节")
}
