package processor

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/types"
)

// MockPDFExtractor 模拟PDF提取器
type MockPDFExtractor struct {
	text     string
	metadata map[string]interface{}
	err      error
}

func (m *MockPDFExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	return m.text, m.metadata, m.err
}

func (m *MockPDFExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, extraMeta map[string]interface{}) (string, map[string]interface{}, error) {
	return m.text, m.metadata, m.err
}

func (m *MockPDFExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string, extraMeta map[string]interface{}) (string, map[string]interface{}, error) {
	return m.text, m.metadata, m.err
}

const mockExtractedText = `Jane Doe

CONTACT
jane.doe@mail.io | +1 (555) 123-4567

EDUCATION
State University
B.Sc. in Computer Science, Sep 2017 - Jun 2021

TECHNICAL SKILLS
Languages: Go, Python`

func newTestProcessor(extractor PDFExtractor) *ResumeProcessor {
	cfg := &config.Config{ActiveParserVersion: "1.0"}
	return NewResumeProcessorWithComponents(cfg, Components{
		PDFExtractor: extractor,
		ResumeParser: parser.NewHeuristicResumeParser(),
	}, nil)
}

func TestParseResumeBytes(t *testing.T) {
	rp := newTestProcessor(&MockPDFExtractor{text: mockExtractedText})

	record, err := rp.ParseResumeBytes(context.Background(), []byte("%PDF-1.7"), "jane.pdf")
	require.NoError(t, err, "同步解析不应失败")
	require.NotNil(t, record)

	assert.Equal(t, "Jane Doe", record.Name, "应从首行识别出姓名")
	assert.Equal(t, "jane.doe@mail.io", record.Contact[types.ContactEmail], "应识别出邮箱")
	assert.Len(t, record.Education, 1, "应解析出一条教育经历")
	assert.Contains(t, record.Skills[types.SkillLanguages], "go", "技能应归入languages分类")
}

func TestParseResumeBytesExtractorFailure(t *testing.T) {
	extractErr := errors.New("pdf损坏")
	rp := newTestProcessor(&MockPDFExtractor{err: extractErr})

	record, err := rp.ParseResumeBytes(context.Background(), []byte("garbage"), "broken.pdf")
	require.Error(t, err, "提取失败应向上传播")
	assert.Nil(t, record)
	assert.ErrorIs(t, err, extractErr)
}

func TestParseResumeBytesComponentsMissing(t *testing.T) {
	cfg := &config.Config{ActiveParserVersion: "1.0"}

	rp := NewResumeProcessorWithComponents(cfg, Components{
		ResumeParser: parser.NewHeuristicResumeParser(),
	}, nil)
	_, err := rp.ParseResumeBytes(context.Background(), nil, "x.pdf")
	assert.ErrorIs(t, err, ErrExtractorNotInit, "缺少提取器应返回初始化错误")

	rp = NewResumeProcessorWithComponents(cfg, Components{
		PDFExtractor: &MockPDFExtractor{},
	}, nil)
	_, err = rp.ParseResumeBytes(context.Background(), nil, "x.pdf")
	assert.ErrorIs(t, err, ErrParserNotInit, "缺少解析器应返回初始化错误")
}

func TestCheckComponentsInitialized(t *testing.T) {
	cfg := &config.Config{ActiveParserVersion: "1.0"}
	rp := NewResumeProcessorWithComponents(cfg, Components{}, nil)
	assert.ErrorIs(t, rp.CheckComponentsInitialized(), ErrStorageNotInit, "空组件应先报存储未初始化")
}

func TestResumeProcessErrorWrapping(t *testing.T) {
	err := NewParseError("uuid-123", "第3行格式异常")

	assert.ErrorIs(t, err, ErrParseRecordFailed, "errors.Is应命中基础错误")
	assert.Contains(t, err.Error(), "uuid-123", "错误信息应包含提交UUID")
	assert.Contains(t, err.Error(), "第3行格式异常", "错误信息应包含详情")

	var procErr *ResumeProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "parse", procErr.Op)

	downloadErr := NewDownloadError("uuid-456", "")
	assert.ErrorIs(t, downloadErr, ErrResumeDownloadFailed)
	assert.NotErrorIs(t, downloadErr, ErrParseRecordFailed, "不同基础错误不应互相命中")
}
