package parser

import (
	"strings"

	"resume-parser-go/internal/types"
)

// ParseSkillsSection 解析技能章节，把结果并入 skills 映射
// 每行按 "<标签>: <项目列表>" 取首个冒号之后的部分，无冒号则整行作为列表；
// 项目按逗号/分号切分、小写化后路由进固定分类表，未命中的进 other。
// 标签本身不参与路由（"Languages: Foobar" 的 Foobar 仍进 other）。
// 最后对每个分类去重，保留小写形式
func ParseSkillsSection(lines []string, skills map[string][]string) {
	touched := make(map[string]bool)

	for _, line := range lines {
		items := stripBullet(line)
		if idx := strings.Index(items, ":"); idx >= 0 {
			items = items[idx+1:]
		}
		for _, item := range splitItems(items) {
			lowered := strings.ToLower(item)
			category := CategorizeSkill(lowered)
			// 文本规范化会在驼峰边界补空格（"JavaScript" → "java script"），
			// 未命中时去掉内部空格重查一次，命中则回写无空格的规范形式
			if category == types.SkillOther {
				if joined := strings.ReplaceAll(lowered, " ", ""); joined != lowered {
					if rejoined := CategorizeSkill(joined); rejoined != types.SkillOther {
						lowered, category = joined, rejoined
					}
				}
			}
			skills[category] = append(skills[category], lowered)
			touched[category] = true
		}
	}

	for category := range touched {
		skills[category] = dedupeStrings(skills[category])
	}
}

// ParseAchievementsSection 解析成就章节：逐行去掉列表符号
func ParseAchievementsSection(lines []string) []string {
	var items []string
	for _, line := range lines {
		if item := stripBullet(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParseDelimitedList 解析语言/兴趣这类简单逗号列表章节：
// 所有行打平后按逗号/分号切分，集合去重（区分大小写），丢弃行边界
func ParseDelimitedList(lines []string) []string {
	var items []string
	for _, line := range lines {
		items = append(items, splitItems(stripBullet(line))...)
	}
	return dedupeStrings(items)
}

// dedupeStrings 按精确匹配去重，保留首次出现的顺序
func dedupeStrings(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]bool, len(items))
	deduped := items[:0:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			deduped = append(deduped, item)
		}
	}
	return deduped
}
