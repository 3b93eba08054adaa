package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

// TestParseSkillsSectionRouting 验证技能项按关键词表路由，未命中的进 other
func TestParseSkillsSectionRouting(t *testing.T) {
	skills := make(map[string][]string)
	ParseSkillsSection([]string{"Languages: Python, Java, Foobar"}, skills)

	assert.Equal(t, []string{"python", "java"}, skills[types.SkillLanguages], "已知语言应进 languages 分桶")
	assert.Equal(t, []string{"foobar"}, skills[types.SkillOther], "未知技能应进 other 分桶")
}

// TestParseSkillsSectionLabelIgnored 行首标签不参与路由，只有冒号之后的项被归类
func TestParseSkillsSectionLabelIgnored(t *testing.T) {
	skills := make(map[string][]string)
	ParseSkillsSection([]string{"Frameworks: MySQL"}, skills)

	assert.Empty(t, skills[types.SkillFrameworks], "标签 Frameworks 不应决定归类")
	assert.Equal(t, []string{"mysql"}, skills[types.SkillDatabases], "路由只看技能项本身")
}

// TestParseSkillsSectionNoColon 无冒号的行整行作为技能列表
func TestParseSkillsSectionNoColon(t *testing.T) {
	skills := make(map[string][]string)
	ParseSkillsSection([]string{"Docker, Git; Kubernetes"}, skills)

	assert.Equal(t, []string{"docker", "git", "kubernetes"}, skills[types.SkillTools])
}

// TestParseSkillsSectionDedup 同一分桶内大小写不敏感去重
func TestParseSkillsSectionDedup(t *testing.T) {
	skills := make(map[string][]string)
	ParseSkillsSection([]string{"Python, python, PYTHON", "Skills: Python"}, skills)

	assert.Equal(t, []string{"python"}, skills[types.SkillLanguages], "大小写变体应去重为单个小写项")
}

// TestParseSkillsSectionCamelSplitRejoined 被驼峰规则拆开的技能名去空格后仍能命中分类表，
// 并以无空格的规范形式入桶（"java script" → languages 里的 "javascript"）
func TestParseSkillsSectionCamelSplitRejoined(t *testing.T) {
	skills := make(map[string][]string)
	ParseSkillsSection([]string{"Languages: Java Script, Type Script, Foobar"}, skills)

	assert.ElementsMatch(t, []string{"javascript", "typescript"}, skills[types.SkillLanguages],
		"拆开的技能名应重新拼合后归入 languages")
	assert.Equal(t, []string{"foobar"}, skills[types.SkillOther], "真正的未知项不受重查影响")
}

// TestParseSkillsSectionBullets 列表符号被剥离后再取冒号之后的部分
func TestParseSkillsSectionBullets(t *testing.T) {
	skills := make(map[string][]string)
	ParseSkillsSection([]string{"• Databases: PostgreSQL, MongoDB"}, skills)

	assert.Equal(t, []string{"postgresql", "mongodb"}, skills[types.SkillDatabases])
}

// TestCategorizeSkillTotal 归类函数对任意输入都返回六个分桶之一
func TestCategorizeSkillTotal(t *testing.T) {
	inputs := []string{"python", "react", "mysql", "docker", "pandas", "", "  ", "总之是个词", "c++", "unheard-of-thing"}
	valid := make(map[string]bool, len(types.SkillCategories))
	for _, c := range types.SkillCategories {
		valid[c] = true
	}

	for _, input := range inputs {
		category := CategorizeSkill(input)
		assert.True(t, valid[category], "输入 %q 的归类 %q 不在固定分桶之列", input, category)
	}

	assert.Equal(t, types.SkillLanguages, CategorizeSkill("c++"))
	assert.Equal(t, types.SkillFrameworks, CategorizeSkill("react"))
	assert.Equal(t, types.SkillDatabases, CategorizeSkill("mysql"))
	assert.Equal(t, types.SkillTools, CategorizeSkill("docker"))
	assert.Equal(t, types.SkillLibraries, CategorizeSkill("pandas"))
	assert.Equal(t, types.SkillOther, CategorizeSkill("unheard-of-thing"))
}

// TestParseAchievementsSection 成就逐行收集，列表符号被剥离
func TestParseAchievementsSection(t *testing.T) {
	items := ParseAchievementsSection([]string{
		"• Won the regional hackathon",
		"Dean's list 3 semesters",
		"",
	})

	assert.Equal(t, []string{"Won the regional hackathon", "Dean's list 3 semesters"}, items)
}

// TestParseDelimitedList 语言/兴趣列表：打平、切分、区分大小写去重
func TestParseDelimitedList(t *testing.T) {
	items := ParseDelimitedList([]string{"English, Hindi", "Hindi; French"})
	assert.Equal(t, []string{"English", "Hindi", "French"}, items, "重复项应只保留首次出现")

	// 与技能分桶不同，这里保留原始大小写，"english" 和 "English" 视为不同项
	caseSensitive := ParseDelimitedList([]string{"English, english"})
	require.Len(t, caseSensitive, 2, "去重应区分大小写")
}
