package parser

import (
	"strings"

	"resume-parser-go/internal/types"
)

// trimEntryNoise 去掉条目字段两端的分隔符残留
func trimEntryNoise(s string) string {
	return strings.Trim(s, " \t,|:;–—-@")
}

// stripBullet 去掉行首的列表符号
func stripBullet(line string) string {
	return strings.TrimSpace(bulletRegex.ReplaceAllString(line, ""))
}

// splitItems 按逗号/分号切分并去掉空项
func splitItems(s string) []string {
	var items []string
	for _, part := range itemSplitRegex.Split(s, -1) {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParseEducationSection 解析教育章节
// 命中院校启发式的行（含院校关键词，或含时间段且不是学位行）开启新条目；
// 学位/时长/GPA 按行独立抽取，并入当前打开的条目；
// 新条目开启或章节结束时封存上一条，至少有一个字段时才保留
func ParseEducationSection(lines []string) []types.EducationEntry {
	var entries []types.EducationEntry
	var current *types.EducationEntry

	flush := func() {
		if current != nil && !current.IsEmpty() {
			entries = append(entries, *current)
		}
		current = nil
	}
	open := func() *types.EducationEntry {
		if current == nil {
			current = &types.EducationEntry{}
		}
		return current
	}

	for _, line := range lines {
		isDegree := degreeRegex.MatchString(line)
		dateMatch := dateRangeRegex.FindString(line)
		isInstitution := institutionRegex.MatchString(line) || (dateMatch != "" && !isDegree)

		// 字段取值去掉行内的时间段和GPA片段，只留下描述文本
		fieldText := line
		if dateMatch != "" {
			fieldText = strings.Replace(fieldText, dateMatch, "", 1)
		}
		if gpaFull := gpaRegex.FindString(fieldText); gpaFull != "" {
			fieldText = strings.Replace(fieldText, gpaFull, "", 1)
		}
		fieldText = trimEntryNoise(fieldText)

		if isInstitution {
			flush()
			entry := open()
			entry.Institution = fieldText
		}
		if isDegree {
			entry := open()
			if entry.Degree == "" {
				entry.Degree = fieldText
			}
		}
		if dateMatch != "" {
			entry := open()
			if entry.Duration == "" {
				entry.Duration = dateMatch
			}
		}
		if m := gpaRegex.FindStringSubmatch(line); m != nil {
			entry := open()
			if entry.GPA == "" {
				entry.GPA = m[1]
			}
		}
	}
	flush()
	return entries
}

// ParseExperienceSection 解析工作经历章节
// 含时间段的行开启新条目：时间段之前的文本作为职位；若时间段之后
// 含 "@" 分隔符，则以其后的剩余文本按首个 "@" 拆出职位和公司。
// 列表行去掉符号后追加到当前条目的职责。只保留职位非空的条目
func ParseExperienceSection(lines []string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var current *types.ExperienceEntry

	flush := func() {
		if current != nil && current.Title != "" {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range lines {
		if loc := dateRangeRegex.FindStringIndex(line); loc != nil {
			flush()
			current = &types.ExperienceEntry{Duration: line[loc[0]:loc[1]]}

			before := trimEntryNoise(line[:loc[0]])
			after := line[loc[1]:]
			if strings.Contains(after, "@") {
				parts := strings.SplitN(after, "@", 2)
				current.Title = trimEntryNoise(parts[0])
				current.Company = trimEntryNoise(parts[1])
			} else {
				current.Title = before
			}
			continue
		}
		if current != nil && bulletRegex.MatchString(line) {
			current.Responsibilities = append(current.Responsibilities, stripBullet(line))
		}
	}
	flush()
	return entries
}

// ParseProjectsSection 解析项目章节
// 含管道符或时间段的行开启新项目：首个管道符之前是项目名，之后的
// 文本按逗号/分号切出技术列表；行内命中的 github/泛域名链接记入 links。
// 列表行追加到描述。只保留名称非空的项目
func ParseProjectsSection(lines []string) []types.ProjectEntry {
	var entries []types.ProjectEntry
	var current *types.ProjectEntry

	flush := func() {
		if current != nil && current.Name != "" {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range lines {
		if bulletRegex.MatchString(line) {
			if current != nil {
				current.Description = append(current.Description, stripBullet(line))
			}
			continue
		}

		dateMatch := dateRangeRegex.FindString(line)
		pipeIdx := strings.Index(line, "|")
		if pipeIdx < 0 && dateMatch == "" {
			continue
		}

		flush()
		current = &types.ProjectEntry{}
		if pipeIdx >= 0 {
			rest := line[pipeIdx+1:]
			if dateMatch != "" {
				rest = strings.Replace(rest, dateMatch, "", 1)
			}
			current.Name = trimEntryNoise(line[:pipeIdx])
			current.Technologies = splitItems(rest)
		} else {
			current.Name = trimEntryNoise(strings.Replace(line, dateMatch, "", 1))
		}
		current.Links = appendLinks(current.Links, line)
	}
	flush()
	return entries
}

// appendLinks 收集行内的 github 链接和泛域名链接，去掉重复项
func appendLinks(links []string, line string) []string {
	seen := make(map[string]bool, len(links))
	for _, l := range links {
		seen[l] = true
	}
	add := func(matches []string) {
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				links = append(links, match)
			}
		}
	}
	add(githubRegex.FindAllString(line, -1))
	add(portfolioRegex.FindAllString(line, -1))
	return links
}
