package handler

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/gorm"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/processor"
	storage2 "resume-parser-go/internal/storage"
	"resume-parser-go/internal/storage/models"
	"resume-parser-go/internal/types"
)

// ResumeHandler 简历处理器，负责协调简历的上传、解析和查询流程
type ResumeHandler struct {
	cfg             *config.Config
	storage         *storage2.Storage
	processorModule *processor.ResumeProcessor
}

// NewResumeHandler 创建一个新的简历处理器
func NewResumeHandler(
	cfg *config.Config,
	storage *storage2.Storage,
	processorModule *processor.ResumeProcessor,
) *ResumeHandler {
	return &ResumeHandler{
		cfg:             cfg,
		storage:         storage,
		processorModule: processorModule,
	}
}

// ResumeUploadResponse 简历上传响应
type ResumeUploadResponse struct {
	SubmissionUUID string `json:"submission_uuid"`
	Status         string `json:"status"`
}

// 上传响应状态
const (
	StatusSubmittedForProcessing = "SUBMITTED_FOR_PROCESSING"
	StatusDuplicateFileSkipped   = "DUPLICATE_FILE_SKIPPED"
)

// ErrRecordNotReady 表示提交存在但结构化记录尚未生成
var ErrRecordNotReady = errors.New("结构化记录尚未生成")

// HandleResumeUpload 处理简历上传请求
// 按文件MD5去重，重复文件直接返回已有的提交UUID，不触发二次解析
func (h *ResumeHandler) HandleResumeUpload(ctx context.Context, reader io.Reader, fileSize int64,
	filename string, sourceChannel string) (*ResumeUploadResponse, error) {

	if fileSize > constants.MaxUploadSizeBytes {
		return nil, fmt.Errorf("文件大小超过限制 (%d > %d)", fileSize, constants.MaxUploadSizeBytes)
	}

	// 0. 读取文件内容并计算文件本身的MD5 (需要在上传MinIO前，且reader只能读一次)
	fileBytes, err := io.ReadAll(io.LimitReader(reader, constants.MaxUploadSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}
	if int64(len(fileBytes)) > constants.MaxUploadSizeBytes {
		return nil, fmt.Errorf("文件大小超过限制 (%d 字节)", constants.MaxUploadSizeBytes)
	}
	sum := md5.Sum(fileBytes)
	fileMD5Hex := hex.EncodeToString(sum[:])

	// 检查文件MD5是否已存在于Redis Set
	exists, err := h.storage.Redis.CheckRawFileMD5Exists(ctx, fileMD5Hex)
	if err != nil {
		// 去重是重要逻辑，Redis查询失败时直接报错而不是放行
		logger.Error().
			Err(err).
			Str("md5", fileMD5Hex).
			Msg("查询Redis文件MD5 Set失败")
		return nil, fmt.Errorf("检查文件MD5重复性时Redis查询失败: %w", err)
	}

	if exists {
		existingUUID, err := h.storage.Redis.GetSubmissionUUIDByMD5(ctx, fileMD5Hex)
		if err != nil && !errors.Is(err, storage2.ErrNotFound) {
			logger.Warn().Err(err).Str("md5", fileMD5Hex).Msg("查询MD5对应的提交UUID失败")
		}
		logger.Info().
			Str("md5", fileMD5Hex).
			Str("filename", filename).
			Str("existing_uuid", existingUUID).
			Msg("检测到重复的文件MD5，跳过处理")
		return &ResumeUploadResponse{
			SubmissionUUID: existingUUID,
			Status:         StatusDuplicateFileSkipped,
		}, nil
	}

	// 1. 生成UUIDv7
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	// 2. 获取文件扩展名
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".pdf" // 默认为PDF
	}

	// 3. 上传原始文件到MinIO
	originalObjectKey, err := h.storage.MinIO.UploadResumeFile(ctx, submissionUUID, ext, bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return nil, fmt.Errorf("上传简历到MinIO失败: %w", err)
	}

	// 在MinIO上传成功后，将文件MD5和UUID映射写入Redis
	// Redis写入失败只降级，去重在下次上传时可能失效，但核心文件已落盘
	if err := h.storage.Redis.AddRawFileMD5(ctx, fileMD5Hex); err != nil {
		logger.Warn().
			Err(err).
			Str("md5", fileMD5Hex).
			Str("object_key", originalObjectKey).
			Msg("添加文件MD5到Redis Set失败，文件已上传到MinIO")
	}
	if err := h.storage.Redis.SetMD5ToSubmissionUUID(ctx, fileMD5Hex, submissionUUID); err != nil {
		logger.Warn().Err(err).Str("md5", fileMD5Hex).Msg("写入MD5到UUID映射失败")
	}

	// 4. 创建提交记录
	submission := &models.ResumeSubmission{
		SubmissionUUID:      submissionUUID,
		SubmissionTimestamp: time.Now(),
		SourceChannel:       sourceChannel,
		OriginalFilename:    filename,
		OriginalFilePathOSS: originalObjectKey,
		RawFileMD5:          fileMD5Hex,
		ProcessingStatus:    models.StatusPendingParsing,
		ParserVersion:       h.cfg.ActiveParserVersion,
	}
	if err := h.storage.MySQL.CreateResumeSubmission(ctx, submission); err != nil {
		h.rollbackUpload(ctx, originalObjectKey, fileMD5Hex)
		return nil, fmt.Errorf("创建简历提交记录失败: %w", err)
	}

	// 5. 构建消息并发送到RabbitMQ
	message := storage2.ResumeUploadMessage{
		SubmissionUUID:      submissionUUID,
		SubmissionTimestamp: submission.SubmissionTimestamp,
		SourceChannel:       sourceChannel,
		OriginalFilename:    filename,
		OriginalFilePathOSS: originalObjectKey,
		RawFileMD5:          fileMD5Hex,
	}
	if err := h.storage.RabbitMQ.PublishResumeUploaded(ctx, message); err != nil {
		h.rollbackUpload(ctx, originalObjectKey, fileMD5Hex)
		return nil, fmt.Errorf("发布消息到RabbitMQ失败: %w", err)
	}

	// 6. 返回响应
	return &ResumeUploadResponse{
		SubmissionUUID: submissionUUID,
		Status:         StatusSubmittedForProcessing,
	}, nil
}

// rollbackUpload 回滚已上传的原始文件和已写入的去重MD5，
// 让同一份文件的下一次上传不会被误判为重复
func (h *ResumeHandler) rollbackUpload(ctx context.Context, objectKey, fileMD5Hex string) {
	if err := h.storage.MinIO.DeleteResumeFile(ctx, objectKey); err != nil {
		logger.Warn().Err(err).Str("object_key", objectKey).Msg("回滚删除MinIO原始文件失败")
	}
	if err := h.storage.Redis.RemoveRawFileMD5(ctx, fileMD5Hex); err != nil {
		logger.Warn().Err(err).Str("md5", fileMD5Hex).Msg("回滚清理去重MD5失败")
	}
}

// HandleSyncParse 同步解析上传的PDF，不落库不发消息，直接返回结构化记录
func (h *ResumeHandler) HandleSyncParse(ctx context.Context, reader io.Reader, filename string) (*types.ResumeRecord, error) {
	fileBytes, err := io.ReadAll(io.LimitReader(reader, constants.MaxUploadSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}
	if int64(len(fileBytes)) > constants.MaxUploadSizeBytes {
		return nil, fmt.Errorf("文件大小超过限制 (%d 字节)", constants.MaxUploadSizeBytes)
	}
	return h.processorModule.ParseResumeBytes(ctx, fileBytes, filename)
}

// HandleGetParsedRecord 查询某次提交的结构化解析结果
// 优先走Redis缓存，未命中时回源MySQL并回填缓存
func (h *ResumeHandler) HandleGetParsedRecord(ctx context.Context, submissionUUID string) (json.RawMessage, error) {
	if h.storage.Redis != nil {
		cached, err := h.storage.Redis.GetCachedParsedRecord(ctx, submissionUUID)
		if err == nil {
			return json.RawMessage(cached), nil
		}
		if !errors.Is(err, storage2.ErrNotFound) {
			logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("查询解析结果缓存失败")
		}
	}

	record, err := h.storage.MySQL.GetParsedRecordBySubmissionUUID(ctx, submissionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 结果行缺失时兜底查MinIO归档对象，提交状态为PARSED说明对象应当存在
			return h.getParsedRecordFromArchive(ctx, submissionUUID)
		}
		return nil, err
	}

	// 回填缓存，失败只记录
	if h.storage.Redis != nil {
		var parsed types.ResumeRecord
		if err := json.Unmarshal(record.RecordJSON, &parsed); err == nil {
			if err := h.storage.Redis.CacheParsedRecord(ctx, submissionUUID, &parsed); err != nil {
				logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("回填解析结果缓存失败")
			}
		}
	}

	return json.RawMessage(record.RecordJSON), nil
}

// getParsedRecordFromArchive 从MinIO归档对象兜底读取结构化记录
func (h *ResumeHandler) getParsedRecordFromArchive(ctx context.Context, submissionUUID string) (json.RawMessage, error) {
	submission, err := h.storage.MySQL.GetResumeSubmission(ctx, submissionUUID)
	if err != nil || submission.ProcessingStatus != models.StatusParsed || submission.ParsedRecordPathOSS == "" {
		return nil, ErrRecordNotReady
	}

	recordJSON, err := h.storage.MinIO.GetParsedRecord(ctx, submission.ParsedRecordPathOSS)
	if err != nil {
		logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("从MinIO读取归档解析结果失败")
		return nil, ErrRecordNotReady
	}
	return json.RawMessage(recordJSON), nil
}

// HandleGetSubmissionStatus 查询某次提交的处理状态
// 附带原始文件的预签名下载URL，生成失败时URL为空
func (h *ResumeHandler) HandleGetSubmissionStatus(ctx context.Context, submissionUUID string) (*models.ResumeSubmission, string, error) {
	submission, err := h.storage.MySQL.GetResumeSubmission(ctx, submissionUUID)
	if err != nil {
		return nil, "", err
	}

	downloadURL := ""
	if submission.OriginalFilePathOSS != "" {
		downloadURL, err = h.storage.MinIO.GetPresignedURL(ctx, submission.OriginalFilePathOSS, 15*time.Minute)
		if err != nil {
			logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("生成原始文件预签名URL失败")
			downloadURL = ""
		}
	}
	return submission, downloadURL, nil
}

// StartResumeUploadConsumer 启动简历上传消费者
func (h *ResumeHandler) StartResumeUploadConsumer(ctx context.Context, prefetchCount int) error {
	logger.Info().
		Str("exchange", h.cfg.RabbitMQ.ResumeEventsExchange).
		Str("routing_key", h.cfg.RabbitMQ.UploadedRoutingKey).
		Msg("初始化RabbitMQ配置")

	// 1. 确保交换机、队列和绑定存在
	if err := h.storage.RabbitMQ.SetupResumeTopology(); err != nil {
		return fmt.Errorf("初始化消息拓扑失败: %w", err)
	}

	logger.Info().
		Str("queue", h.cfg.RabbitMQ.RawResumeQueue).
		Int("prefetch_count", prefetchCount).
		Msg("简历上传消费者就绪")

	// 2. 启动消费者
	_, err := h.storage.RabbitMQ.StartConsumer(h.cfg.RabbitMQ.RawResumeQueue, prefetchCount, func(data []byte) bool {
		var message storage2.ResumeUploadMessage
		if err := json.Unmarshal(data, &message); err != nil {
			logger.Error().Err(err).Msg("解析消息失败")
			return false
		}

		if err := h.processorModule.ProcessUploadedResume(ctx, message); err != nil {
			logger.Error().
				Err(err).
				Str("submission_uuid", message.SubmissionUUID).
				Msg("处理上传简历失败")
			return false
		}

		return true
	})

	if err != nil {
		return fmt.Errorf("启动消费者失败: %w", err)
	}

	return nil
}
