package parser

import "regexp"

// 管道各阶段共享的模式表。Go 的 regexp 匹配不携带游标状态，
// 包级共享的已编译正则可以被并发调用安全复用。
var (
	// emailRegex 标准 local@domain.tld 形式的邮箱
	emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phoneRegex 常见的美式号码分组，可带国家码
	phoneRegex = regexp.MustCompile(`(?:\+?\d{1,2}[\s.-])?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`)

	// linkedinRegex / githubRegex 社交主页链接，scheme 和 www 可选
	linkedinRegex = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_.-]+`)
	githubRegex   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_.-]+`)

	// portfolioRegex 兜底的泛域名匹配，优先级最低，必须在 linkedin/github 之后尝试
	portfolioRegex = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[A-Za-z0-9-]+\.(?:com|net|org|io|dev|me|tech|co)\b(?:/\S*)?`)

	// dateRangeRegex 时间段，如 "Aug 2018 – May 2022"、"2020 - present"，
	// 或单独的月+年。孤立的四位年份不视为时间段，否则职责描述里的年份会误触发新条目
	dateRangeRegex = regexp.MustCompile(`(?i)(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?\d{4}\s*(?:[–—-]|to)\s*(?:(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+)?\d{4}|present|current|now)|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}`)

	// bulletRegex 列表行的起始符号
	bulletRegex = regexp.MustCompile(`^[•\-*]\s+`)

	// gpaRegex GPA 值
	gpaRegex = regexp.MustCompile(`(?i)GPA[:\s]*([\d.]+)`)

	// degreeRegex 学位关键词
	degreeRegex = regexp.MustCompile(`(?i)\b(?:b\.?\s?tech|m\.?\s?tech|b\.?\s?e\b|b\.?\s?sc?\b|m\.?\s?sc?\b|b\.?\s?a\b|m\.?\s?a\b|bachelor|master|ph\.?d|doctorate|mba|diploma|associate)`)

	// institutionRegex 院校关键词
	institutionRegex = regexp.MustCompile(`(?i)\b(?:university|college|institute|school|academy|polytechnic)\b`)

	// itemSplitRegex 逗号/分号分隔的列表项
	itemSplitRegex = regexp.MustCompile(`[,;]`)
)

// 文本规范化使用的模式
var (
	// newlineWSRegex 换行符两侧的水平空白
	newlineWSRegex = regexp.MustCompile(`[ \t]*\n[ \t]*`)

	// multiSpaceRegex 连续两个以上的水平空白
	multiSpaceRegex = regexp.MustCompile(`[ \t]{2,}`)

	// camelBoundaryRegex 小写字母紧跟大写字母的粘连词边界
	camelBoundaryRegex = regexp.MustCompile(`([a-z])([A-Z])`)

	// headerNoiseRegex 章节标题归一化时剔除的非字母字符
	headerNoiseRegex = regexp.MustCompile(`[^a-z ]+`)
)
