package types

// SectionKind 表示简历章节类型
type SectionKind string

const (
	// SectionContact 联系方式章节
	SectionContact SectionKind = "CONTACT"
	// SectionProfile 个人简介章节
	SectionProfile SectionKind = "PROFILE"
	// SectionEducation 教育经历章节
	SectionEducation SectionKind = "EDUCATION"
	// SectionExperience 工作经历章节
	SectionExperience SectionKind = "EXPERIENCE"
	// SectionProjects 项目经历章节
	SectionProjects SectionKind = "PROJECTS"
	// SectionSkills 技能章节
	SectionSkills SectionKind = "SKILLS"
	// SectionAchievements 成就/获奖章节
	SectionAchievements SectionKind = "ACHIEVEMENTS"
	// SectionLanguages 语言能力章节
	SectionLanguages SectionKind = "LANGUAGES"
	// SectionInterests 兴趣爱好章节
	SectionInterests SectionKind = "INTERESTS"
	// SectionUnknown 未分类内容
	SectionUnknown SectionKind = "UNKNOWN"
)

// 联系方式渠道的固定键名，作为输出格式的一部分不可更改
const (
	ContactEmail     = "email"
	ContactPhone     = "phone"
	ContactLinkedIn  = "linkedin"
	ContactGitHub    = "github"
	ContactPortfolio = "portfolio"
)

// 技能分类的固定键名
const (
	SkillLanguages  = "languages"
	SkillFrameworks = "frameworks"
	SkillDatabases  = "databases"
	SkillTools      = "tools"
	SkillLibraries  = "libraries"
	SkillOther      = "other"
)

// SkillCategories 技能分类的声明顺序，路由和输出都依赖该顺序
var SkillCategories = []string{
	SkillLanguages,
	SkillFrameworks,
	SkillDatabases,
	SkillTools,
	SkillLibraries,
	SkillOther,
}

// DefaultName 未识别出姓名时的占位值
const DefaultName = "Unknown"

// EducationEntry 一条教育经历
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Duration    string `json:"duration,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// IsEmpty 判断该条目是否没有任何已填充字段
func (e *EducationEntry) IsEmpty() bool {
	return e.Institution == "" && e.Degree == "" && e.Duration == "" && e.GPA == ""
}

// ExperienceEntry 一条工作经历
type ExperienceEntry struct {
	Title            string   `json:"title,omitempty"`
	Company          string   `json:"company,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// ProjectEntry 一条项目经历
type ProjectEntry struct {
	Name         string   `json:"name,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Description  []string `json:"description,omitempty"`
	Links        []string `json:"links,omitempty"`
}

// ResumeRecord 简历解析的最终结构化结果
// 字段名、渠道键名和"空值剪除"规则是下游消费方依赖的线上格式，必须保持稳定
type ResumeRecord struct {
	Name         string              `json:"name"`
	Contact      map[string]string   `json:"contact,omitempty"`
	Profile      string              `json:"profile,omitempty"`
	Education    []EducationEntry    `json:"education,omitempty"`
	Experience   []ExperienceEntry   `json:"experience,omitempty"`
	Projects     []ProjectEntry      `json:"projects,omitempty"`
	Skills       map[string][]string `json:"skills"`
	Achievements []string            `json:"achievements,omitempty"`
	Languages    []string            `json:"languages,omitempty"`
	Interests    []string            `json:"interests,omitempty"`
}

// NewResumeRecord 创建一条空记录
// skills 映射始终携带全部六个分类键（空分类不剪除，与顶层数组字段的剪除规则不同）
func NewResumeRecord() *ResumeRecord {
	skills := make(map[string][]string, len(SkillCategories))
	for _, category := range SkillCategories {
		skills[category] = []string{}
	}
	return &ResumeRecord{
		Contact: make(map[string]string),
		Skills:  skills,
	}
}
