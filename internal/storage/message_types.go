package storage

import "time"

// ResumeUploadMessage 简历上传消息，发布到 resume.uploaded
type ResumeUploadMessage struct {
	SubmissionUUID      string    `json:"submission_uuid"`          // 提交UUID，主键
	SubmissionTimestamp time.Time `json:"submission_timestamp"`     // 提交时间戳
	SourceChannel       string    `json:"source_channel,omitempty"` // 来源渠道
	OriginalFilename    string    `json:"original_filename"`        // 原始文件名
	OriginalFilePathOSS string    `json:"original_file_path_oss"`   // MinIO中的对象路径
	RawFileMD5          string    `json:"raw_file_md5,omitempty"`   // 原始文件的MD5，用于失败时回滚
}

// ResumeParsedMessage 解析完成消息，发布到 resume.parsed
type ResumeParsedMessage struct {
	SubmissionUUID      string `json:"submission_uuid"`                  // 提交UUID
	ParsedRecordPathOSS string `json:"parsed_record_path_oss,omitempty"` // 结构化记录在MinIO中的路径
	ProcessingStatus    string `json:"processing_status,omitempty"`      // 处理状态
	ProcessingTime      int64  `json:"processing_time,omitempty"`        // 处理时间戳
	ParserVersion       string `json:"parser_version,omitempty"`         // 解析器版本
	Error               string `json:"error,omitempty"`                  // 错误信息
}
