package processor

import (
	"context"
	"io"

	"resume-parser-go/internal/types"
)

//
// PDF解析相关接口
//

// PDFExtractor PDF提取器接口
type PDFExtractor interface {
	// ExtractFromFile 从PDF文件提取文本和元数据
	ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error)

	// ExtractTextFromReader 从io.Reader提取文本和元数据
	// uri 为资源标识符，用于日志或元数据；extraMeta 会合并进返回的元数据
	ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, extraMeta map[string]interface{}) (string, map[string]interface{}, error)

	// ExtractTextFromBytes 从字节数组提取文本和元数据
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string, extraMeta map[string]interface{}) (string, map[string]interface{}, error)
}

//
// 简历结构化解析相关接口
//

// ResumeParser 简历结构化解析接口
// 输入为PDF抽取出的原始文本，输出为结构化简历记录
type ResumeParser interface {
	Parse(ctx context.Context, text string) (*types.ResumeRecord, error)
}
