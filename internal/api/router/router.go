package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.opentelemetry.io/otel/trace"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/tracing"
)

// abortWithError 统一的错误响应，同时在当前span上标记HTTP错误
func abortWithError(c context.Context, ctx *app.RequestContext, statusCode int, err error, message string) {
	tracing.RecordHTTPError(trace.SpanFromContext(c), err, statusCode)
	ctx.JSON(statusCode, utils.H{"error": message})
}

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	// 异步上传：落盘、去重、发消息，消费者完成解析
	api.POST("/resume/upload", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			abortWithError(c, ctx, consts.StatusBadRequest, err, "文件未找到")
			return
		}

		// 获取来源渠道
		sourceChannel := ctx.PostForm("source_channel")
		if sourceChannel == "" {
			sourceChannel = "web_upload" // 默认值
		}

		file, err := fileHeader.Open()
		if err != nil {
			abortWithError(c, ctx, consts.StatusInternalServerError, err, "打开文件失败")
			return
		}
		defer file.Close()

		resp, err := resumeHandler.HandleResumeUpload(
			c,
			file,
			fileHeader.Size,
			fileHeader.Filename,
			sourceChannel,
		)
		if err != nil {
			abortWithError(c, ctx, consts.StatusInternalServerError, err, err.Error())
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	// 同步解析：直接返回结构化记录，不落库
	api.POST("/resume/parse", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			abortWithError(c, ctx, consts.StatusBadRequest, err, "文件未找到")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			abortWithError(c, ctx, consts.StatusInternalServerError, err, "打开文件失败")
			return
		}
		defer file.Close()

		record, err := resumeHandler.HandleSyncParse(c, file, fileHeader.Filename)
		if err != nil {
			abortWithError(c, ctx, consts.StatusInternalServerError, err, err.Error())
			return
		}

		ctx.JSON(consts.StatusOK, record)
	})

	// 查询结构化解析结果
	api.GET("/resume/:submission_uuid/record", func(c context.Context, ctx *app.RequestContext) {
		submissionUUID := ctx.Param("submission_uuid")
		if submissionUUID == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "submission_uuid不能为空"})
			return
		}

		recordJSON, err := resumeHandler.HandleGetParsedRecord(c, submissionUUID)
		if err != nil {
			if errors.Is(err, handler.ErrRecordNotReady) {
				ctx.JSON(consts.StatusNotFound, utils.H{"error": "结构化记录尚未生成"})
				return
			}
			abortWithError(c, ctx, consts.StatusInternalServerError, err, err.Error())
			return
		}

		ctx.Data(consts.StatusOK, "application/json; charset=utf-8", recordJSON)
	})

	// 查询提交处理状态
	api.GET("/resume/:submission_uuid/status", func(c context.Context, ctx *app.RequestContext) {
		submissionUUID := ctx.Param("submission_uuid")
		if submissionUUID == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "submission_uuid不能为空"})
			return
		}

		submission, downloadURL, err := resumeHandler.HandleGetSubmissionStatus(c, submissionUUID)
		if err != nil {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "提交记录不存在"})
			return
		}

		resp := utils.H{
			"submission_uuid":   submission.SubmissionUUID,
			"processing_status": submission.ProcessingStatus,
			"parser_version":    submission.ParserVersion,
			"original_filename": submission.OriginalFilename,
		}
		if downloadURL != "" {
			resp["original_file_url"] = downloadURL
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
