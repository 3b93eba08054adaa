package parser

import "resume-parser-go/internal/types"

// 技能归类用的关键词表。成员判定按小写精确匹配，
// 未命中任何表的技能项落入 other 分桶
var (
	programmingLanguageSet = makeSet(
		"python", "java", "javascript", "typescript", "go", "golang", "c", "c++",
		"c#", "ruby", "php", "swift", "kotlin", "rust", "scala", "r", "matlab",
		"perl", "dart", "objective-c", "sql", "html", "css", "bash", "shell",
		"powershell", "haskell", "elixir", "erlang", "lua", "groovy", "julia",
		"fortran", "cobol", "assembly", "solidity",
	)

	frameworkSet = makeSet(
		"react", "react.js", "angular", "angular.js", "vue", "vue.js", "next.js",
		"nuxt.js", "svelte", "django", "flask", "fastapi", "spring", "spring boot",
		"express", "express.js", "nest.js", "rails", "ruby on rails", "laravel",
		"symfony", "asp.net", ".net", ".net core", "flutter", "react native",
		"gin", "echo", "fiber", "hertz", "beego", "ember", "backbone", "meteor",
		"quarkus", "micronaut", "phoenix",
	)

	databaseSet = makeSet(
		"mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite", "oracle",
		"sql server", "mssql", "mariadb", "cassandra", "dynamodb", "elasticsearch",
		"neo4j", "couchdb", "couchbase", "influxdb", "clickhouse", "snowflake",
		"bigquery", "hbase", "memcached", "cockroachdb", "firestore", "qdrant",
		"milvus", "tidb",
	)

	toolSet = makeSet(
		"git", "github", "gitlab", "bitbucket", "docker", "kubernetes", "k8s",
		"jenkins", "terraform", "ansible", "vagrant", "aws", "azure", "gcp",
		"linux", "unix", "jira", "confluence", "maven", "gradle", "npm", "yarn",
		"pnpm", "webpack", "vite", "babel", "vim", "vscode", "postman", "figma",
		"kafka", "rabbitmq", "nginx", "apache", "grafana", "prometheus", "minio",
		"helm", "argocd", "circleci", "travis ci", "excel", "tableau", "power bi",
		"airflow", "spark", "hadoop",
	)

	librarySet = makeSet(
		"numpy", "pandas", "scipy", "scikit-learn", "sklearn", "tensorflow",
		"pytorch", "keras", "matplotlib", "seaborn", "plotly", "opencv", "jquery",
		"bootstrap", "tailwind", "tailwind css", "redux", "mobx", "rxjs", "lodash",
		"axios", "requests", "beautifulsoup", "selenium", "scrapy", "spacy",
		"nltk", "gensim", "xgboost", "lightgbm", "transformers", "langchain",
		"three.js", "d3.js", "zerolog", "gorm", "testify",
	)
)

func makeSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// CategorizeSkill 把一个技能项（已小写）归入六个分桶之一
// 这是一个全函数：任何输入都恰好落入一个分桶
func CategorizeSkill(item string) string {
	if _, ok := programmingLanguageSet[item]; ok {
		return types.SkillLanguages
	}
	if _, ok := frameworkSet[item]; ok {
		return types.SkillFrameworks
	}
	if _, ok := databaseSet[item]; ok {
		return types.SkillDatabases
	}
	if _, ok := toolSet[item]; ok {
		return types.SkillTools
	}
	if _, ok := librarySet[item]; ok {
		return types.SkillLibraries
	}
	return types.SkillOther
}
