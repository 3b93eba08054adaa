package models

import (
	"time"

	"gorm.io/datatypes"
)

// 处理状态机：PENDING_PARSING → PARSED / PARSE_FAILED
const (
	StatusPendingParsing = "PENDING_PARSING"
	StatusParsed         = "PARSED"
	StatusParseFailed    = "PARSE_FAILED"
)

// ResumeSubmission 简历提交/快照表
type ResumeSubmission struct {
	SubmissionUUID      string    `gorm:"type:char(36);primaryKey"`
	SubmissionTimestamp time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_rs_submission_timestamp"`
	SourceChannel       string    `gorm:"type:varchar(100)"`
	OriginalFilename    string    `gorm:"type:varchar(255)"`
	OriginalFilePathOSS string    `gorm:"type:varchar(1024)"`
	ParsedRecordPathOSS string    `gorm:"type:varchar(1024)"`
	RawFileMD5          string    `gorm:"type:char(32);index:idx_rs_raw_file_md5"`
	ProcessingStatus    string    `gorm:"type:varchar(50);default:'PENDING_PARSING';index:idx_rs_processing_status"`
	ParserVersion       string    `gorm:"type:varchar(50)"`
	CreatedAt           time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt           time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (ResumeSubmission) TableName() string {
	return "resume_submissions"
}

// ParsedResumeRecord 结构化解析结果表
// RecordJSON 存放完整的结构化记录，Name/Email/Phone 是冗余的检索列
type ParsedResumeRecord struct {
	RecordID       uint64         `gorm:"primaryKey;autoIncrement"`
	SubmissionUUID string         `gorm:"type:char(36);not null;uniqueIndex:idx_prr_submission_uuid"`
	CandidateName  string         `gorm:"type:varchar(255);index:idx_prr_candidate_name"`
	CandidateEmail string         `gorm:"type:varchar(255);index:idx_prr_candidate_email"`
	CandidatePhone string         `gorm:"type:varchar(50)"`
	RecordJSON     datatypes.JSON `gorm:"type:json;not null"`
	ParserVersion  string         `gorm:"type:varchar(50)"`
	CreatedAt      time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt      time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`

	ResumeSubmission *ResumeSubmission `gorm:"foreignKey:SubmissionUUID;references:SubmissionUUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ParsedResumeRecord) TableName() string {
	return "parsed_resume_records"
}

// StringToJSON Helper function to convert string to datatypes.JSON
func StringToJSON(s string) datatypes.JSON {
	return datatypes.JSON(s)
}
