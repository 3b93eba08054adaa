package constants

import "time"

const (
	// DefaultParserVersion 解析器版本号，随启发式规则的不兼容变更递增
	DefaultParserVersion = "heuristic-v1"

	// OriginalsBucket 原始简历文件桶
	OriginalsBucket = "originals"
	// ParsedRecordsBucket 结构化解析结果桶
	ParsedRecordsBucket = "parsed-records"

	// RecordCacheDuration 结构化记录的缓存时长
	RecordCacheDuration = 24 * time.Hour

	// MaxUploadSizeBytes 上传文件大小上限
	MaxUploadSizeBytes = 10 << 20
)
