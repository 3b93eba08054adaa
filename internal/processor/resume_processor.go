package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/storage"
	"resume-parser-go/internal/storage/models"
	"resume-parser-go/internal/tracing"
	"resume-parser-go/internal/types"
)

// 定义公共错误类型，用于整个服务
var (
	ErrStorageNotInit   = errors.New("storage is not initialized")   // 存储未初始化错误
	ErrExtractorNotInit = errors.New("extractor is not initialized") // 提取器未初始化错误
	ErrParserNotInit    = errors.New("parser is not initialized")    // 解析器未初始化错误
)

// 定义tracer
var tracer = otel.Tracer("processor")

// Components 聚合所有功能组件依赖，便于集中管理和测试替换
type Components struct {
	// 核心组件接口
	PDFExtractor PDFExtractor // PDF文本提取接口
	ResumeParser ResumeParser // 简历结构化解析接口

	// 存储层依赖
	Storage *storage.Storage // 聚合的存储服务
}

// ResumeProcessor 简历处理服务
// 负责把上传的PDF简历变成结构化记录：下载、提取文本、启发式解析、落库、发事件
type ResumeProcessor struct {
	components Components
	config     *config.Config
	logger     *zerolog.Logger
}

// NewResumeProcessor 创建简历处理服务实例
func NewResumeProcessor(ctx context.Context, cfg *config.Config, storageManager *storage.Storage, log *zerolog.Logger) (*ResumeProcessor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}
	if log == nil {
		defaultLogger := zerolog.Nop()
		log = &defaultLogger
	}

	extractTimeout := config.GetDuration(cfg.PDF.ExtractTimeout, 30*time.Second)
	extractor, err := parser.NewEinoPDFTextExtractor(ctx, parser.WithExtractTimeout(extractTimeout))
	if err != nil {
		return nil, fmt.Errorf("创建PDF提取器失败: %w", err)
	}

	return &ResumeProcessor{
		components: Components{
			PDFExtractor: extractor,
			ResumeParser: parser.NewHeuristicResumeParser(),
			Storage:      storageManager,
		},
		config: cfg,
		logger: log,
	}, nil
}

// NewResumeProcessorWithComponents 使用显式组件创建服务，主要用于测试替换
func NewResumeProcessorWithComponents(cfg *config.Config, comp Components, log *zerolog.Logger) *ResumeProcessor {
	if log == nil {
		defaultLogger := zerolog.Nop()
		log = &defaultLogger
	}
	return &ResumeProcessor{
		components: comp,
		config:     cfg,
		logger:     log,
	}
}

// CheckComponentsInitialized 检查核心组件是否就绪
func (rp *ResumeProcessor) CheckComponentsInitialized() error {
	if rp.components.Storage == nil {
		return ErrStorageNotInit
	}
	if rp.components.PDFExtractor == nil {
		return ErrExtractorNotInit
	}
	if rp.components.ResumeParser == nil {
		return ErrParserNotInit
	}
	return nil
}

// ParseResumeBytes 对内存中的PDF字节做同步抽取和结构化解析，不涉及存储
// 同步解析API和命令行工具共用该入口
func (rp *ResumeProcessor) ParseResumeBytes(ctx context.Context, data []byte, uri string) (*types.ResumeRecord, error) {
	ctx, span := tracer.Start(ctx, "ParseResumeBytes")
	defer span.End()
	span.SetAttributes(attribute.Int("file_size_bytes", len(data)))

	if rp.components.PDFExtractor == nil {
		return nil, ErrExtractorNotInit
	}
	if rp.components.ResumeParser == nil {
		return nil, ErrParserNotInit
	}

	text, _, err := rp.components.PDFExtractor.ExtractTextFromBytes(ctx, data, uri, nil)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		return nil, fmt.Errorf("提取文本失败: %w", err)
	}
	span.SetAttributes(attribute.Int("text_length", len(text)))

	record, err := rp.components.ResumeParser.Parse(ctx, text)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		return nil, fmt.Errorf("结构化解析失败: %w", err)
	}

	span.SetStatus(codes.Ok, "解析成功")
	return record, nil
}

// ProcessUploadedResume 处理一条上传事件：下载原始文件、抽取文本、结构化解析并持久化
// 该方法作为RabbitMQ消费者的处理入口，返回nil表示ack，返回错误表示nack
func (rp *ResumeProcessor) ProcessUploadedResume(ctx context.Context, message storage.ResumeUploadMessage) error {
	ctx, span := tracer.Start(ctx, "ProcessUploadedResume",
		trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()

	span.SetAttributes(
		attribute.String("submission_uuid", message.SubmissionUUID),
		attribute.String("source_channel", message.SourceChannel),
	)

	ctx = logger.WithSubmissionUUID(ctx, message.SubmissionUUID)
	log := logger.FromContext(ctx)

	log.Debug().Msg("开始处理上传的简历")

	if err := rp.CheckComponentsInitialized(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "组件未初始化")
		return err
	}

	// 1. 更新初始状态为 PENDING_PARSING
	if err := rp.components.Storage.MySQL.UpdateResumeProcessingStatus(ctx, message.SubmissionUUID, models.StatusPendingParsing); err != nil {
		log.Error().Err(err).Msg("更新简历状态为PENDING_PARSING失败")
		span.RecordError(err)
		span.SetStatus(codes.Error, "更新状态失败")
		return NewUpdateError(message.SubmissionUUID, err.Error())
	}

	// 2. 下载、抽取并解析
	record, recordJSON, err := rp.extractAndParseResume(ctx, message)
	if err == nil {
		// 3. 持久化结构化记录
		err = rp.persistParsedRecord(ctx, message, record, recordJSON)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if updateErr := rp.components.Storage.MySQL.UpdateResumeProcessingStatus(ctx, message.SubmissionUUID, models.StatusParseFailed); updateErr != nil {
			log.Error().Err(updateErr).Msg("更新状态为PARSE_FAILED时出错")
		}
		// 解析失败的文件允许重新上传，去重集合里的MD5和可能的旧缓存都要清掉
		if rp.components.Storage.Redis != nil {
			if message.RawFileMD5 != "" {
				if redisErr := rp.components.Storage.Redis.RemoveRawFileMD5(ctx, message.RawFileMD5); redisErr != nil {
					log.Warn().Err(redisErr).Msg("清理去重MD5失败")
				}
			}
			if redisErr := rp.components.Storage.Redis.InvalidateParsedRecord(ctx, message.SubmissionUUID); redisErr != nil {
				log.Warn().Err(redisErr).Msg("清理解析结果缓存失败")
			}
		}
		// 失败事件尽力通知，不影响错误返回
		rp.publishParsedEvent(ctx, storage.ResumeParsedMessage{
			SubmissionUUID:   message.SubmissionUUID,
			ProcessingStatus: models.StatusParseFailed,
			ProcessingTime:   time.Now().Unix(),
			ParserVersion:    rp.config.ActiveParserVersion,
			Error:            err.Error(),
		})
		return err
	}

	span.SetStatus(codes.Ok, "处理成功")
	log.Info().Str("candidate_name", record.Name).Msg("上传任务处理成功完成")
	return nil
}

// extractAndParseResume 从MinIO下载原始文件，抽取文本并做结构化解析
func (rp *ResumeProcessor) extractAndParseResume(ctx context.Context, message storage.ResumeUploadMessage) (*types.ResumeRecord, []byte, error) {
	ctx, span := tracer.Start(ctx, "ExtractAndParseResume")
	defer span.End()

	log := logger.FromContext(ctx)

	originalFileBytes, err := rp.components.Storage.MinIO.GetResumeFile(ctx, message.OriginalFilePathOSS)
	if err != nil {
		log.Error().Err(err).Msg("从MinIO下载简历失败")
		span.SetAttributes(attribute.String("error.type", "download_failure"))
		return nil, nil, NewDownloadError(message.SubmissionUUID, err.Error())
	}
	log.Debug().Int("size_bytes", len(originalFileBytes)).Msg("从MinIO下载简历成功")
	span.SetAttributes(attribute.Int("file_size_bytes", len(originalFileBytes)))

	text, _, err := rp.components.PDFExtractor.ExtractTextFromReader(ctx, bytes.NewReader(originalFileBytes), message.OriginalFilePathOSS, nil)
	if err != nil {
		log.Error().Err(err).Msg("提取简历文本失败")
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "extract_failure"))
		return nil, nil, NewExtractError(message.SubmissionUUID, err.Error())
	}
	log.Debug().Int("text_length", len(text)).Msg("成功提取文本")
	span.SetAttributes(
		attribute.Int("text_length", len(text)),
		attribute.String("text_preview", tracing.SafeResumeContent(text)),
	)
	span.AddEvent("text_extraction_completed")

	record, err := rp.components.ResumeParser.Parse(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("结构化解析简历失败")
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "parse_failure"))
		return nil, nil, NewParseError(message.SubmissionUUID, err.Error())
	}
	span.SetAttributes(attribute.String(
		"candidate_name",
		tracing.SafeAttributeValue("candidate_name", record.Name, tracing.DefaultMaxLength),
	))
	span.AddEvent("record_parsing_completed")

	recordJSON, err := json.Marshal(record)
	if err != nil {
		span.RecordError(err)
		return nil, nil, NewParseError(message.SubmissionUUID, fmt.Sprintf("序列化解析结果失败: %v", err))
	}

	return record, recordJSON, nil
}

// persistParsedRecord 上传结构化记录到MinIO，在同一事务内落库并更新提交状态，
// 事务提交后写Redis缓存并发布解析完成事件
func (rp *ResumeProcessor) persistParsedRecord(ctx context.Context, message storage.ResumeUploadMessage, record *types.ResumeRecord, recordJSON []byte) error {
	ctx, span := tracer.Start(ctx, "PersistParsedRecord")
	defer span.End()

	log := logger.FromContext(ctx)

	// 上传结构化记录到MinIO
	span.AddEvent("uploading_to_minio")
	recordObjectKey, err := rp.components.Storage.MinIO.UploadParsedRecord(ctx, message.SubmissionUUID, recordJSON)
	if err != nil {
		log.Error().Err(err).Msg("上传结构化记录到MinIO失败")
		span.RecordError(err)
		return NewStoreError(message.SubmissionUUID, err.Error())
	}
	log.Debug().Str("object_key", recordObjectKey).Msg("结构化记录已上传到MinIO")

	// 使用数据库事务确保记录落库和状态更新的原子性
	err = rp.components.Storage.MySQL.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		parsedRecord := &models.ParsedResumeRecord{
			SubmissionUUID: message.SubmissionUUID,
			CandidateName:  record.Name,
			CandidateEmail: record.Contact[types.ContactEmail],
			CandidatePhone: record.Contact[types.ContactPhone],
			RecordJSON:     models.StringToJSON(string(recordJSON)),
			ParserVersion:  rp.config.ActiveParserVersion,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "submission_uuid"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"candidate_name", "candidate_email", "candidate_phone", "record_json", "parser_version",
			}),
		}).Create(parsedRecord).Error; err != nil {
			return NewDatabaseError(message.SubmissionUUID, fmt.Sprintf("保存结构化记录失败: %v", err))
		}

		if err := tx.Model(&models.ResumeSubmission{}).
			Where("submission_uuid = ?", message.SubmissionUUID).
			Updates(map[string]interface{}{
				"parsed_record_path_oss": recordObjectKey,
				"processing_status":      models.StatusParsed,
				"parser_version":         rp.config.ActiveParserVersion,
			}).Error; err != nil {
			return NewDatabaseError(message.SubmissionUUID, fmt.Sprintf("更新提交记录失败: %v", err))
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("结构化记录落库事务失败")
		span.RecordError(err)
		return err
	}

	// 缓存失败只降级不中断
	if rp.components.Storage.Redis != nil {
		if err := rp.components.Storage.Redis.CacheParsedRecord(ctx, message.SubmissionUUID, record); err != nil {
			log.Warn().Err(err).Msg("写入解析结果缓存失败")
			tracing.RecordError(span, err, tracing.ErrorTypeRedis)
		}
	}

	rp.publishParsedEvent(ctx, storage.ResumeParsedMessage{
		SubmissionUUID:      message.SubmissionUUID,
		ParsedRecordPathOSS: recordObjectKey,
		ProcessingStatus:    models.StatusParsed,
		ProcessingTime:      time.Now().Unix(),
		ParserVersion:       rp.config.ActiveParserVersion,
	})

	span.SetStatus(codes.Ok, "持久化成功")
	return nil
}

// publishParsedEvent 发布解析完成事件，发布失败只记录不回滚
func (rp *ResumeProcessor) publishParsedEvent(ctx context.Context, msg storage.ResumeParsedMessage) {
	if rp.components.Storage == nil || rp.components.Storage.RabbitMQ == nil {
		return
	}
	log := logger.FromContext(ctx)
	if err := rp.components.Storage.RabbitMQ.PublishResumeParsed(ctx, msg); err != nil {
		log.Warn().Err(err).Str("submission_uuid", msg.SubmissionUUID).Msg("发布解析完成事件失败")
		span := trace.SpanFromContext(ctx)
		tracing.RecordRabbitMQNack(span, msg.SubmissionUUID, err.Error())
	}
}
