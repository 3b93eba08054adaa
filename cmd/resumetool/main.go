package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"resume-parser-go/internal/parser"
)

// 命令行参数定义
var (
	inputFile = pflag.StringP("file", "f", "", "输入文件路径，支持 .pdf 和已抽取的 .txt (必填)")
	command   = pflag.StringP("cmd", "c", "parse", "执行的命令: extract=仅提取文本, parse=提取并结构化解析")
	saveFile  = pflag.StringP("save", "s", "", "保存结果到文件，默认输出到stdout")
	pretty    = pflag.BoolP("pretty", "p", true, "JSON输出是否缩进")
	timeout   = pflag.DurationP("timeout", "t", 30*time.Second, "单文件处理超时")
	maxLen    = pflag.Int("maxlen", -1, "extract模式下显示的文本最大长度，-1为全部")
)

func main() {
	pflag.Parse()

	if *inputFile == "" {
		fmt.Println("错误: 必须提供输入文件路径。使用 -f 参数。")
		pflag.Usage()
		os.Exit(1)
	}

	absPath, err := filepath.Abs(*inputFile)
	if err != nil {
		fmt.Printf("无法获取文件的绝对路径: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(absPath); err != nil {
		fmt.Printf("无法访问文件 %s: %v\n", absPath, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	text, err := loadText(ctx, absPath)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	switch *command {
	case "extract":
		handleExtract(text)
	case "parse":
		handleParse(ctx, text)
	default:
		fmt.Printf("错误: 未知命令 '%s'。支持的命令: extract, parse\n", *command)
		pflag.Usage()
		os.Exit(1)
	}
}

// loadText 读取输入文件，PDF走提取器，纯文本直接读
func loadText(ctx context.Context, absPath string) (string, error) {
	if strings.EqualFold(filepath.Ext(absPath), ".txt") {
		data, err := os.ReadFile(absPath)
		if err != nil {
			return "", fmt.Errorf("读取文本文件失败: %v", err)
		}
		return string(data), nil
	}

	extractor, err := parser.NewEinoPDFTextExtractor(ctx, parser.WithExtractTimeout(*timeout))
	if err != nil {
		return "", fmt.Errorf("创建PDF提取器失败: %v", err)
	}

	fmt.Fprintf(os.Stderr, "开始从PDF提取文本: %s\n", absPath)
	startTime := time.Now()
	text, _, err := extractor.ExtractFromFile(ctx, absPath)
	if err != nil {
		return "", fmt.Errorf("提取PDF文本失败: %v", err)
	}
	fmt.Fprintf(os.Stderr, "提取完成! 耗时: %v, 共 %d 字符\n", time.Since(startTime), len(text))
	return text, nil
}

func handleExtract(text string) {
	displayText := text
	if *maxLen >= 0 && len(text) > *maxLen {
		displayText = text[:*maxLen] + "\n...(截断)"
	}
	writeOutput([]byte(displayText))
}

func handleParse(ctx context.Context, text string) {
	p := parser.NewHeuristicResumeParser()

	startTime := time.Now()
	record, err := p.Parse(ctx, text)
	if err != nil {
		fmt.Printf("结构化解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "解析完成! 耗时: %v\n", time.Since(startTime))

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(record, "", "  ")
	} else {
		out, err = json.Marshal(record)
	}
	if err != nil {
		fmt.Printf("序列化解析结果失败: %v\n", err)
		os.Exit(1)
	}
	writeOutput(out)
}

func writeOutput(data []byte) {
	if *saveFile != "" {
		if err := os.WriteFile(*saveFile, data, 0644); err != nil {
			fmt.Printf("保存结果到文件失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "结果已保存到: %s\n", *saveFile)
		return
	}
	fmt.Println(string(data))
}
