package parser

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEinoPDFTextExtractor(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	extractor, err := NewEinoPDFTextExtractor(ctx)
	require.NoError(t, err, "创建PDF提取器不应返回错误")
	require.NotNil(t, extractor, "创建的PDF提取器不应为nil")
	require.NotNil(t, extractor.parser, "PDF提取器内部的parser不应为nil")
	require.NotNil(t, extractor.logger, "PDF提取器应该有默认的logger")
	assert.Equal(t, 30*time.Second, extractor.timeout, "未配置时应使用默认超时")

	// 测试带自定义logger和超时的创建
	customLogger := log.New(os.Stdout, "[测试PDF提取器] ", log.LstdFlags)
	extractorWithOptions, err := NewEinoPDFTextExtractor(ctx,
		WithEinoLogger(customLogger),
		WithExtractTimeout(10*time.Second),
	)
	require.NoError(t, err, "创建带选项的PDF提取器不应返回错误")
	assert.Equal(t, customLogger, extractorWithOptions.logger, "应该使用提供的自定义logger")
	assert.Equal(t, 10*time.Second, extractorWithOptions.timeout, "应该使用提供的超时配置")
}

func TestExtractFromNonExistentFile(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	extractor, err := NewEinoPDFTextExtractor(ctx)
	require.NoError(t, err)

	_, _, err = extractor.ExtractFromFile(ctx, "testdata/不存在的文件.pdf")
	require.Error(t, err, "提取不存在的文件应返回错误")
	assert.Contains(t, err.Error(), "failed to open PDF file")
}

func TestExtractTextFromInvalidData(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	extractor, err := NewEinoPDFTextExtractor(ctx)
	require.NoError(t, err)

	// 非PDF内容应被底层解析器拒绝
	_, _, err = extractor.ExtractTextFromBytes(ctx, []byte("这不是一个PDF文件"), "invalid.pdf", nil)
	require.Error(t, err, "提取非PDF内容应返回错误")
}

func TestExtractTextFromEmptyReader(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	extractor, err := NewEinoPDFTextExtractor(ctx)
	require.NoError(t, err)

	_, _, err = extractor.ExtractTextFromReader(ctx, bytes.NewReader(nil), "empty.pdf", nil)
	require.Error(t, err, "空输入应返回错误")
}
