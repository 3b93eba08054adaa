package handler_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/api/handler"
	"resume-parser-go/internal/config"
	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/processor"
	"resume-parser-go/internal/types"
)

// stubExtractor 返回固定文本的PDF提取器
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	return s.text, nil, s.err
}

func (s *stubExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, extraMeta map[string]interface{}) (string, map[string]interface{}, error) {
	return s.text, nil, s.err
}

func (s *stubExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string, extraMeta map[string]interface{}) (string, map[string]interface{}, error) {
	return s.text, nil, s.err
}

const stubResumeText = `John Smith

CONTACT
john.smith@example.org

WORK EXPERIENCE
Jan 2020 - present Backend Engineer @ Initech
• Built internal billing services in Go

TECHNICAL SKILLS
Languages: Go, Python, SQL and more tooling here`

func newTestHandler(extractor processor.PDFExtractor) *handler.ResumeHandler {
	cfg := &config.Config{ActiveParserVersion: "1.0"}
	rp := processor.NewResumeProcessorWithComponents(cfg, processor.Components{
		PDFExtractor: extractor,
		ResumeParser: parser.NewHeuristicResumeParser(),
	}, nil)
	return handler.NewResumeHandler(cfg, nil, rp)
}

func TestHandleSyncParse(t *testing.T) {
	h := newTestHandler(&stubExtractor{text: stubResumeText})

	record, err := h.HandleSyncParse(context.Background(), bytes.NewReader([]byte("%PDF-1.7")), "john.pdf")
	require.NoError(t, err, "同步解析不应失败")
	require.NotNil(t, record)

	assert.Equal(t, "John Smith", record.Name, "应识别出姓名")
	assert.Equal(t, "john.smith@example.org", record.Contact[types.ContactEmail], "应识别出邮箱")
	require.Len(t, record.Experience, 1, "应解析出一条工作经历")
	assert.Equal(t, "Backend Engineer", record.Experience[0].Title)
	assert.Equal(t, "Initech", record.Experience[0].Company)
}

func TestHandleSyncParseRejectsOversizedFile(t *testing.T) {
	h := newTestHandler(&stubExtractor{text: stubResumeText})

	oversized := strings.NewReader(strings.Repeat("a", int(constants.MaxUploadSizeBytes)+1))
	_, err := h.HandleSyncParse(context.Background(), oversized, "huge.pdf")
	require.Error(t, err, "超过大小限制的文件应被拒绝")
	assert.Contains(t, err.Error(), "文件大小超过限制")
}

func TestHandleResumeUploadRejectsOversizedFile(t *testing.T) {
	h := newTestHandler(&stubExtractor{text: stubResumeText})

	// 声明的文件大小超限时应在读取前直接拒绝，不触达任何存储组件
	_, err := h.HandleResumeUpload(context.Background(), strings.NewReader("x"),
		constants.MaxUploadSizeBytes+1, "huge.pdf", "web_upload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "文件大小超过限制")
}
