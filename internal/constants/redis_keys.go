package constants

// Redis Key 前缀和格式常量
// 使用统一的命名规范: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix 是所有Redis Key的统一应用前缀
	AppPrefix = "app"

	// FileModulePrefix 文件模块
	FileModulePrefix = "file"
	// RecordModulePrefix 结构化记录模块
	RecordModulePrefix = "record"

	// EntityDedupSet 去重集合实体
	EntityDedupSet = "dedup_set"
	// EntityMD5ToUUID MD5到UUID的映射实体
	EntityMD5ToUUID = "md5_to_uuid"
	// EntityRecord 结构化记录实体
	EntityRecord = "parsed"

	// KeyFileMD5Set 文件MD5集合，用于上传快速去重 (SET)
	// 格式: app:file:dedup_set
	KeyFileMD5Set = AppPrefix + ":" + FileModulePrefix + ":" + EntityDedupSet

	// KeyFileMD5ToSubmissionUUID MD5到SubmissionUUID的映射 (STRING)
	// 格式: app:file:md5_to_uuid:{md5}
	KeyFileMD5ToSubmissionUUID = AppPrefix + ":" + FileModulePrefix + ":" + EntityMD5ToUUID + ":%s"

	// KeyParsedRecord 结构化记录缓存 (STRING，JSON值)
	// 格式: app:record:parsed:{submissionUUID}
	KeyParsedRecord = AppPrefix + ":" + RecordModulePrefix + ":" + EntityRecord + ":%s"
)
