package parser

import (
	"regexp"
	"strings"
)

// 规范化后的列名常量，与 Clockify 风格导出的表头对应
const (
	ColProject         = "project"
	ColClient          = "client"
	ColDescription     = "description"
	ColTask            = "task"
	ColUser            = "user"
	ColGroup           = "group"
	ColEmail           = "email"
	ColTags            = "tags"
	ColBillable        = "billable"
	ColStartDate       = "start date"
	ColStartTime       = "start time"
	ColEndDate         = "end date"
	ColEndTime         = "end time"
	ColDurationHours   = "duration (h)"
	ColDurationDecimal = "duration (decimal)"
	ColBillableRate    = "billable rate (usd)"
	ColBillableAmount  = "billable amount (usd)"
)

// RequiredColumns 导入前必须存在的列（规范化后的名字）
var RequiredColumns = []string{
	ColProject,
	ColClient,
	ColDescription,
	ColStartDate,
	ColStartTime,
	ColEndDate,
	ColEndTime,
	ColDurationHours,
	ColDurationDecimal,
}

var spaceRe = regexp.MustCompile(`\s+`)

// NormalizeColumnName 规范化列名：去引号、去首尾空白、压缩内部空白、转小写。
// 列名匹配采用规范化后的忽略大小写精确匹配（宽松策略，见设计记录）
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Trim(name, `"`)
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	name = spaceRe.ReplaceAllString(name, " ")
	return strings.ToLower(strings.TrimSpace(name))
}

// buildColumnIndex 建立 规范化列名 -> 列下标 的映射，重复列名保留首个
func buildColumnIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := NormalizeColumnName(h)
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}
	return index
}

// missingRequired 返回缺失的必需列
func missingRequired(index map[string]int) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
