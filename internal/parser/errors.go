package parser

import (
	"fmt"
	"strings"
)

// MissingColumnsError 必需列缺失，导入中止，不返回部分数据
type MissingColumnsError struct {
	Missing []string // 缺失的列名
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("缺少必需列: %s", strings.Join(e.Missing, ", "))
}

// EmptyDatasetError CSV 解析成功但没有任何行通过有效性过滤，
// 属于用户可恢复错误（重新上传即可）
type EmptyDatasetError struct{}

func (e *EmptyDatasetError) Error() string {
	return "文件中没有有效的工时数据"
}

// MalformedFileError 文件本身无法按 CSV 解析，在行级解析开始前拒绝
type MalformedFileError struct {
	Reason string
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("文件不是有效的 CSV: %s", e.Reason)
}
